package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalogdomain "github.com/bookmyseva/storefront/internal/catalog/domain"
	"github.com/bookmyseva/storefront/internal/checkout/domain"
	"github.com/bookmyseva/storefront/internal/checkout/usecase/command"
	"github.com/bookmyseva/storefront/internal/checkout/usecase/query"
	customerhttp "github.com/bookmyseva/storefront/internal/customer/delivery/http"
	customerdomain "github.com/bookmyseva/storefront/internal/customer/domain"
)

// CheckoutHandler handles HTTP requests for quotes and bookings
type CheckoutHandler struct {
	createHandler *command.CreateBookingHandler

	quoteHandler *query.GetQuoteHandler
	getHandler   *query.GetBookingHandler
	listHandler  *query.ListBookingsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	bookingsTotal  *prometheus.CounterVec
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(
	bookings domain.BookingRepository,
	poojas catalogdomain.PoojaRepository,
	kits catalogdomain.KitRepository,
	addresses customerdomain.AddressRepository,
	publisher command.BookingEventPublisher,
) *CheckoutHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_service_requests_total",
			Help: "Total number of requests to checkout service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkout_service_request_duration_seconds",
			Help:    "Duration of checkout service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	bookingsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_service_bookings_total",
			Help: "Bookings placed, by kind and payment mode",
		},
		[]string{"kind", "payment_mode"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(bookingsTotal)

	return &CheckoutHandler{
		createHandler:  command.NewCreateBookingHandler(bookings, poojas, kits, addresses, publisher),
		quoteHandler:   query.NewGetQuoteHandler(poojas, kits),
		getHandler:     query.NewGetBookingHandler(bookings),
		listHandler:    query.NewListBookingsHandler(bookings),
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		bookingsTotal:  bookingsTotal,
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
func (h *CheckoutHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, catalogdomain.ErrPoojaNotFound),
		errors.Is(err, catalogdomain.ErrKitNotFound),
		errors.Is(err, customerdomain.ErrAddressNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrInvalidPaymentMode),
		errors.Is(err, domain.ErrDateRequired),
		errors.Is(err, domain.ErrSlotRequired),
		errors.Is(err, domain.ErrAddressRequired),
		errors.Is(err, domain.ErrPastDate),
		errors.Is(err, catalogdomain.ErrUnknownVersion),
		errors.Is(err, catalogdomain.ErrUnknownAddOn),
		errors.Is(err, catalogdomain.ErrUnknownTimeSlot),
		errors.Is(err, catalogdomain.ErrUnknownPlan):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// bookingRequest is the shared wire shape for quotes and bookings
type bookingRequest struct {
	Kind        string     `json:"kind"`
	ItemSlug    string     `json:"itemSlug"`
	VersionID   string     `json:"versionId"`
	AddOnID     string     `json:"addonId"`
	Date        *time.Time `json:"date"`
	TimeSlotID  string     `json:"timeSlotId"`
	Plan        string     `json:"plan"`
	AddressID   string     `json:"addressId"`
	PaymentMode string     `json:"paymentMode"`
	UseCoins    bool       `json:"useCoins"`
	CouponCode  string     `json:"couponCode"`
}

// Quote handles POST /v1/bookings/quote
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	q := query.GetQuoteQuery{
		Kind:        req.Kind,
		ItemSlug:    req.ItemSlug,
		VersionID:   req.VersionID,
		AddOnID:     req.AddOnID,
		Plan:        req.Plan,
		UseCoins:    req.UseCoins,
		PaymentMode: req.PaymentMode,
	}

	quote, err := h.quoteHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, quote)
}

// Create handles POST /v1/bookings
func (h *CheckoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	customerID, ok := r.Context().Value(customerhttp.CustomerIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreateBookingCommand{
		CustomerID:  customerID,
		Kind:        req.Kind,
		ItemSlug:    req.ItemSlug,
		VersionID:   req.VersionID,
		AddOnID:     req.AddOnID,
		Date:        req.Date,
		TimeSlotID:  req.TimeSlotID,
		Plan:        req.Plan,
		AddressID:   req.AddressID,
		PaymentMode: req.PaymentMode,
		UseCoins:    req.UseCoins,
		CouponCode:  req.CouponCode,
	}

	booking, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.bookingsTotal.WithLabelValues(booking.Kind, booking.PaymentMode).Inc()
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"booking": booking,
		"payment": domain.NewPaymentHandoff(booking),
	})
}

// Get handles GET /v1/bookings/{id}
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID, ok := r.Context().Value(customerhttp.CustomerIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	q := query.GetBookingQuery{
		CustomerID: customerID,
		BookingID:  mux.Vars(r)["id"],
	}

	booking, err := h.getHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, booking)
}

// List handles GET /v1/bookings
func (h *CheckoutHandler) List(w http.ResponseWriter, r *http.Request) {
	customerID, ok := r.Context().Value(customerhttp.CustomerIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	bookings, err := h.listHandler.Handle(r.Context(), query.ListBookingsQuery{CustomerID: customerID})
	if err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, bookings)
}

// respondJSON sends a JSON response
func (h *CheckoutHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *CheckoutHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all checkout routes. Quoting is public so the
// wizard can price before sign-in; placing a booking is not.
func (h *CheckoutHandler) RegisterRoutes(router *mux.Router) {
	auth := customerhttp.AuthMiddleware
	router.HandleFunc("/v1/bookings/quote", h.metricsMiddleware("/v1/bookings/quote", h.Quote)).Methods("POST")
	router.HandleFunc("/v1/bookings", h.metricsMiddleware("/v1/bookings", auth(h.Create))).Methods("POST")
	router.HandleFunc("/v1/bookings", h.metricsMiddleware("/v1/bookings", auth(h.List))).Methods("GET")
	router.HandleFunc("/v1/bookings/{id}", h.metricsMiddleware("/v1/bookings/{id}", auth(h.Get))).Methods("GET")
}
