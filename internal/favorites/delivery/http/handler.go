package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	customerhttp "github.com/bookmyseva/storefront/internal/customer/delivery/http"
	"github.com/bookmyseva/storefront/internal/favorites/domain"
	"github.com/bookmyseva/storefront/internal/favorites/usecase/command"
	"github.com/bookmyseva/storefront/internal/favorites/usecase/query"
)

// FavoritesHandler handles HTTP requests for the favorites list
type FavoritesHandler struct {
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler
	importHandler *command.ImportFavoritesHandler

	listHandler *query.ListFavoritesHandler
	isHandler   *query.IsFavoriteHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(repo domain.FavoriteRepository) *FavoritesHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_service_requests_total",
			Help: "Total number of requests to favorites service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "favorites_service_request_duration_seconds",
			Help:    "Duration of favorites service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &FavoritesHandler{
		addHandler:     command.NewAddFavoriteHandler(repo),
		removeHandler:  command.NewRemoveFavoriteHandler(repo),
		importHandler:  command.NewImportFavoritesHandler(repo),
		listHandler:    query.NewListFavoritesHandler(repo),
		isHandler:      query.NewIsFavoriteHandler(repo),
		requestCounter: requestCounter,
		requestLatency: requestLatency,
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
func (h *FavoritesHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

func customerID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(customerhttp.CustomerIDKey).(string)
	return id, ok
}

// List handles GET /v1/favorites
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	favorites, err := h.listHandler.Handle(r.Context(), query.ListFavoritesQuery{CustomerID: id})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, favorites)
}

// Add handles POST /v1/favorites
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	var req domain.Favorite
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.AddFavoriteCommand{CustomerID: id, Favorite: req}
	if err := h.addHandler.Handle(r.Context(), cmd); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, req)
}

// Remove handles DELETE /v1/favorites/{itemId}
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	cmd := command.RemoveFavoriteCommand{
		CustomerID: id,
		ItemID:     mux.Vars(r)["itemId"],
	}
	if err := h.removeHandler.Handle(r.Context(), cmd); err != nil {
		if errors.Is(err, domain.ErrItemIDRequired) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Favorite removed"})
}

// Import handles PUT /v1/favorites: the client replaces the stored list with
// the one it kept locally before signing in
func (h *FavoritesHandler) Import(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	var req []domain.Favorite
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// A snapshot that does not parse imports as empty
		req = nil
	}

	cmd := command.ImportFavoritesCommand{CustomerID: id, Favorites: req}
	favorites, err := h.importHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, favorites)
}

// IsFavorite handles GET /v1/favorites/{itemId}
func (h *FavoritesHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	q := query.IsFavoriteQuery{
		CustomerID: id,
		ItemID:     mux.Vars(r)["itemId"],
	}
	saved, err := h.isHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"isFavorite": saved})
}

// respondJSON sends a JSON response
func (h *FavoritesHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *FavoritesHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all favorites routes. Everything requires a
// signed-in customer.
func (h *FavoritesHandler) RegisterRoutes(router *mux.Router) {
	auth := customerhttp.AuthMiddleware
	router.HandleFunc("/v1/favorites", h.metricsMiddleware("/v1/favorites", auth(h.List))).Methods("GET")
	router.HandleFunc("/v1/favorites", h.metricsMiddleware("/v1/favorites", auth(h.Add))).Methods("POST")
	router.HandleFunc("/v1/favorites", h.metricsMiddleware("/v1/favorites", auth(h.Import))).Methods("PUT")
	router.HandleFunc("/v1/favorites/{itemId}", h.metricsMiddleware("/v1/favorites/{itemId}", auth(h.IsFavorite))).Methods("GET")
	router.HandleFunc("/v1/favorites/{itemId}", h.metricsMiddleware("/v1/favorites/{itemId}", auth(h.Remove))).Methods("DELETE")
}
