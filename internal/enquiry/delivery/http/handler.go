package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	contentdomain "github.com/bookmyseva/storefront/internal/content/domain"
	"github.com/bookmyseva/storefront/internal/enquiry/domain"
	"github.com/bookmyseva/storefront/internal/enquiry/usecase/command"
	"github.com/bookmyseva/storefront/internal/enquiry/usecase/query"
)

// EnquiryHandler handles HTTP requests for event enquiries
type EnquiryHandler struct {
	submitHandler *command.SubmitEnquiryHandler
	listHandler   *query.ListEnquiriesHandler

	requestCounter  *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	enquiriesByType *prometheus.CounterVec
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(
	enquiries domain.EnquiryRepository,
	panchangams contentdomain.PanchangamRepository,
	publisher command.EnquiryEventPublisher,
) *EnquiryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enquiry_service_requests_total",
			Help: "Total number of requests to enquiry service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "enquiry_service_request_duration_seconds",
			Help:    "Duration of enquiry service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	enquiriesByType := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enquiry_service_submissions_total",
			Help: "Enquiries submitted, by type",
		},
		[]string{"type"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(enquiriesByType)

	return &EnquiryHandler{
		submitHandler:   command.NewSubmitEnquiryHandler(enquiries, panchangams, publisher),
		listHandler:     query.NewListEnquiriesHandler(enquiries),
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		enquiriesByType: enquiriesByType,
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
func (h *EnquiryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Submit handles POST /v1/enquiries. Panchangam forms arrive as a
// label/value list; everything else as a flat object. Both normalize into
// the stored map.
func (h *EnquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type         string `json:"type"`
		FestivalID   string `json:"festivalId"`
		FestivalName string `json:"festivalName"`
		UserDetails  struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Phone string `json:"phone"`
		} `json:"userDetails"`
		FormData json.RawMessage `json:"formData"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.SubmitEnquiryCommand{
		Type:         req.Type,
		FestivalID:   req.FestivalID,
		FestivalName: req.FestivalName,
		Name:         req.UserDetails.Name,
		Email:        req.UserDetails.Email,
		Phone:        req.UserDetails.Phone,
		FormData:     decodeFormData(req.FormData),
	}

	enquiry, err := h.submitHandler.Handle(r.Context(), cmd)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, domain.ErrNameRequired) &&
			!errors.Is(err, domain.ErrPhoneRequired) &&
			!errors.Is(err, domain.ErrInvalidPhone) &&
			!errors.Is(err, domain.ErrTypeRequired) &&
			!errors.Is(err, domain.ErrInvalidFormData) {
			status = http.StatusInternalServerError
		}
		h.respondError(w, status, err.Error())
		return
	}

	h.enquiriesByType.WithLabelValues(enquiry.Type).Inc()
	h.respondJSON(w, http.StatusCreated, enquiry)
}

// decodeFormData accepts either the object shape or the panchangam list
// shape ([{label, value}]) and returns a flat map
func decodeFormData(raw json.RawMessage) domain.JSONMap {
	if len(raw) == 0 {
		return nil
	}

	var object domain.JSONMap
	if err := json.Unmarshal(raw, &object); err == nil {
		return object
	}

	var list []struct {
		Label string      `json:"label"`
		Value interface{} `json:"value"`
	}
	if err := json.Unmarshal(raw, &list); err == nil {
		object = make(domain.JSONMap, len(list))
		for _, entry := range list {
			object[entry.Label] = entry.Value
		}
		return object
	}

	return nil
}

// List handles GET /v1/enquiries
func (h *EnquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := query.ListEnquiriesQuery{Type: r.URL.Query().Get("type")}

	enquiries, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, enquiries)
}

// respondJSON sends a JSON response
func (h *EnquiryHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *EnquiryHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all enquiry routes
func (h *EnquiryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/v1/enquiries", h.metricsMiddleware("/v1/enquiries", h.Submit)).Methods("POST")
	router.HandleFunc("/v1/enquiries", h.metricsMiddleware("/v1/enquiries", h.List)).Methods("GET")
}
