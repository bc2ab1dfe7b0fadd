package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bookmyseva/storefront/internal/catalog/domain"
	"github.com/bookmyseva/storefront/internal/catalog/usecase/query"
)

// CatalogHandler handles HTTP requests for the pooja and kit catalog
type CatalogHandler struct {
	listPoojasHandler *query.ListPoojasHandler
	getPoojaHandler   *query.GetPoojaHandler
	listKitsHandler   *query.ListKitsHandler
	getKitHandler     *query.GetKitHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(poojas domain.PoojaRepository, kits domain.KitRepository) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to catalog service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CatalogHandler{
		listPoojasHandler: query.NewListPoojasHandler(poojas),
		getPoojaHandler:   query.NewGetPoojaHandler(poojas),
		listKitsHandler:   query.NewListKitsHandler(kits),
		getKitHandler:     query.NewGetKitHandler(kits),
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// ListPoojas handles GET /v1/poojas
func (h *CatalogHandler) ListPoojas(w http.ResponseWriter, r *http.Request) {
	q := query.ListPoojasQuery{
		Search: r.URL.Query().Get("search"),
		Letter: r.URL.Query().Get("letter"),
	}

	poojas, err := h.listPoojasHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, poojas)
}

// GetPooja handles GET /v1/poojas/{slug}
func (h *CatalogHandler) GetPooja(w http.ResponseWriter, r *http.Request) {
	q := query.GetPoojaQuery{Slug: mux.Vars(r)["slug"]}

	detail, err := h.getPoojaHandler.Handle(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrPoojaNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, detail)
}

// ListKits handles GET /v1/pooja-kits
func (h *CatalogHandler) ListKits(w http.ResponseWriter, r *http.Request) {
	q := query.ListKitsQuery{
		Search: r.URL.Query().Get("search"),
		Letter: r.URL.Query().Get("letter"),
	}

	kits, err := h.listKitsHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, kits)
}

// GetKit handles GET /v1/pooja-kits/{slug}
func (h *CatalogHandler) GetKit(w http.ResponseWriter, r *http.Request) {
	q := query.GetKitQuery{Slug: mux.Vars(r)["slug"]}

	kit, err := h.getKitHandler.Handle(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrKitNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, kit)
}

// GetCheckoutOptions handles GET /v1/checkout-options. The client renders
// tiers, add-ons and slots from this instead of hardcoding prices.
func (h *CatalogHandler) GetCheckoutOptions(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"versions":  domain.Versions,
		"addOns":    domain.AddOns,
		"timeSlots": domain.TimeSlots,
	})
}

// HealthCheck handles GET /health
func (h *CatalogHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

// respondJSON sends a JSON response
func (h *CatalogHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *CatalogHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/v1/poojas", h.metricsMiddleware("/v1/poojas", h.ListPoojas)).Methods("GET")
	router.HandleFunc("/v1/poojas/{slug}", h.metricsMiddleware("/v1/poojas/{slug}", h.GetPooja)).Methods("GET")
	router.HandleFunc("/v1/pooja-kits", h.metricsMiddleware("/v1/pooja-kits", h.ListKits)).Methods("GET")
	router.HandleFunc("/v1/pooja-kits/{slug}", h.metricsMiddleware("/v1/pooja-kits/{slug}", h.GetKit)).Methods("GET")
	router.HandleFunc("/v1/checkout-options", h.metricsMiddleware("/v1/checkout-options", h.GetCheckoutOptions)).Methods("GET")
}
