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

	"github.com/bookmyseva/storefront/internal/customer/domain"
	"github.com/bookmyseva/storefront/internal/customer/usecase/command"
	"github.com/bookmyseva/storefront/internal/customer/usecase/query"
)

// CustomerHandler handles HTTP requests for customer auth and profile
type CustomerHandler struct {
	// Command handlers
	sendOTPHandler       *command.SendOTPHandler
	verifyOTPHandler     *command.VerifyOTPHandler
	updateProfileHandler *command.UpdateProfileHandler
	upsertAddressHandler *command.UpsertAddressHandler
	deleteAddressHandler *command.DeleteAddressHandler

	// Query handlers
	getProfileHandler    *query.GetProfileHandler
	listAddressesHandler *query.ListAddressesHandler

	repo           domain.CustomerRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalCustomers prometheus.Gauge
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	repo domain.CustomerRepository,
	addresses domain.AddressRepository,
	otpStore domain.OTPStore,
	otpSender domain.OTPSender,
) *CustomerHandler {
	// Initialize command handlers
	sendOTPHandler := command.NewSendOTPHandler(repo, otpStore, otpSender)
	verifyOTPHandler := command.NewVerifyOTPHandler(repo, otpStore)
	updateProfileHandler := command.NewUpdateProfileHandler(repo)
	upsertAddressHandler := command.NewUpsertAddressHandler(addresses, repo)
	deleteAddressHandler := command.NewDeleteAddressHandler(addresses)

	// Initialize query handlers
	getProfileHandler := query.NewGetProfileHandler(repo)
	listAddressesHandler := query.NewListAddressesHandler(addresses)

	// Initialize Prometheus metrics
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "customer_service_requests_total",
			Help: "Total number of requests to customer service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "customer_service_request_duration_seconds",
			Help:    "Duration of customer service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalCustomers := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "customer_service_customers_total",
			Help: "Number of registered customers",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalCustomers)

	return &CustomerHandler{
		sendOTPHandler:       sendOTPHandler,
		verifyOTPHandler:     verifyOTPHandler,
		updateProfileHandler: updateProfileHandler,
		upsertAddressHandler: upsertAddressHandler,
		deleteAddressHandler: deleteAddressHandler,
		getProfileHandler:    getProfileHandler,
		listAddressesHandler: listAddressesHandler,
		repo:                 repo,
		requestCounter:       requestCounter,
		requestLatency:       requestLatency,
		totalCustomers:       totalCustomers,
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
func (h *CustomerHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// statusForError maps domain errors to HTTP status codes. The mapping of
// ErrCustomerNotFound to 404 with its exact message is load-bearing: the web
// client matches on "User not found" to switch login over to registration.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidMobile):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidOTP):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrCustomerNotFound), errors.Is(err, domain.ErrAddressNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMobileTaken), errors.Is(err, domain.ErrConfirmRequired):
		return http.StatusConflict
	case errors.Is(err, domain.ErrOTPCooldown):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// SendOTP handles POST /v1/customer-auth/send-otp
func (h *CustomerHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mobile   string `json:"mobile"`
		IsSignup bool   `json:"isSignup"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.SendOTPCommand{Mobile: req.Mobile, IsSignup: req.IsSignup}
	if err := h.sendOTPHandler.Handle(r.Context(), cmd); err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "OTP sent"})
}

// VerifyOTP handles POST /v1/customer-auth/verify-otp
func (h *CustomerHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mobile string `json:"mobile"`
		OTP    string `json:"otp"`
		Name   string `json:"name"`
		Email  string `json:"email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.VerifyOTPCommand{
		Mobile: req.Mobile,
		Code:   req.OTP,
		Name:   req.Name,
		Email:  req.Email,
	}

	response, err := h.verifyOTPHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.updateCustomersMetric()
	h.respondJSON(w, http.StatusOK, response)
}

// GetProfile handles GET /v1/customer-auth/profile
func (h *CustomerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	customerID, ok := r.Context().Value(CustomerIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	q := query.GetProfileQuery{CustomerID: customerID}
	customer, err := h.getProfileHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, customer)
}

// UpdateProfile handles PUT /v1/customer-auth/profile
func (h *CustomerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	customerID, ok := r.Context().Value(CustomerIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	var req struct {
		Name    string                  `json:"name"`
		Email   string                  `json:"email"`
		Address *domain.MirroredAddress `json:"address"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateProfileCommand{
		CustomerID: customerID,
		Name:       req.Name,
		Email:      req.Email,
		Address:    req.Address,
	}

	customer, err := h.updateProfileHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, customer)
}

// ListAddresses handles GET /v1/customer-auth/addresses
func (h *CustomerHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	customerID, ok := r.Context().Value(CustomerIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	q := query.ListAddressesQuery{CustomerID: customerID}
	addresses, err := h.listAddressesHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, addresses)
}

// CreateAddress handles POST /v1/customer-auth/addresses
func (h *CustomerHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	h.upsertAddress(w, r, "")
}

// UpdateAddress handles PUT /v1/customer-auth/addresses/{id}
func (h *CustomerHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	h.upsertAddress(w, r, mux.Vars(r)["id"])
}

func (h *CustomerHandler) upsertAddress(w http.ResponseWriter, r *http.Request, addressID string) {
	customerID, ok := r.Context().Value(CustomerIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	var req domain.Address
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.ID = addressID

	cmd := command.UpsertAddressCommand{
		CustomerID: customerID,
		Address:    req,
	}

	address, err := h.upsertAddressHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	status := http.StatusOK
	if addressID == "" {
		status = http.StatusCreated
	}
	h.respondJSON(w, status, address)
}

// DeleteAddress handles DELETE /v1/customer-auth/addresses/{id}. The first
// call without confirm=true answers 409 so the client shows its dialog; the
// confirmed retry deletes.
func (h *CustomerHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	customerID, ok := r.Context().Value(CustomerIDKey).(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	cmd := command.DeleteAddressCommand{
		CustomerID: customerID,
		AddressID:  mux.Vars(r)["id"],
		Confirmed:  r.URL.Query().Get("confirm") == "true",
	}

	if err := h.deleteAddressHandler.Handle(r.Context(), cmd); err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Address deleted"})
}

// HealthCheck handles GET /health
func (h *CustomerHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
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

// updateCustomersMetric updates the registered customers gauge
func (h *CustomerHandler) updateCustomersMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.totalCustomers.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func (h *CustomerHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *CustomerHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all customer routes
func (h *CustomerHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/v1/customer-auth/send-otp", h.metricsMiddleware("/v1/customer-auth/send-otp", h.SendOTP)).Methods("POST")
	router.HandleFunc("/v1/customer-auth/verify-otp", h.metricsMiddleware("/v1/customer-auth/verify-otp", h.VerifyOTP)).Methods("POST")

	// Authenticated routes
	router.HandleFunc("/v1/customer-auth/profile", h.metricsMiddleware("/v1/customer-auth/profile", AuthMiddleware(h.GetProfile))).Methods("GET")
	router.HandleFunc("/v1/customer-auth/profile", h.metricsMiddleware("/v1/customer-auth/profile", AuthMiddleware(h.UpdateProfile))).Methods("PUT")
	router.HandleFunc("/v1/customer-auth/addresses", h.metricsMiddleware("/v1/customer-auth/addresses", AuthMiddleware(h.ListAddresses))).Methods("GET")
	router.HandleFunc("/v1/customer-auth/addresses", h.metricsMiddleware("/v1/customer-auth/addresses", AuthMiddleware(h.CreateAddress))).Methods("POST")
	router.HandleFunc("/v1/customer-auth/addresses/{id}", h.metricsMiddleware("/v1/customer-auth/addresses/{id}", AuthMiddleware(h.UpdateAddress))).Methods("PUT")
	router.HandleFunc("/v1/customer-auth/addresses/{id}", h.metricsMiddleware("/v1/customer-auth/addresses/{id}", AuthMiddleware(h.DeleteAddress))).Methods("DELETE")
}

// RegisterHealthCheck registers health check endpoint
func (h *CustomerHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", h.HealthCheck(db)).Methods("GET")
}
