package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bookmyseva/storefront/internal/content/domain"
	"github.com/bookmyseva/storefront/internal/content/usecase/query"
)

// ContentHandler handles HTTP requests for blogs, pages and the almanac
type ContentHandler struct {
	listBlogsHandler      *query.ListBlogsHandler
	getBlogHandler        *query.GetBlogHandler
	listCategoriesHandler *query.ListCategoriesHandler
	getPanchangamHandler  *query.GetPanchangamHandler
	getPageHandler        *query.GetPageHandler
	listSlokasHandler     *query.ListSlokasHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewContentHandler creates a new content handler
func NewContentHandler(
	blogs domain.BlogRepository,
	panchangams domain.PanchangamRepository,
	pages domain.PageRepository,
) *ContentHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_service_requests_total",
			Help: "Total number of requests to content service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "content_service_request_duration_seconds",
			Help:    "Duration of content service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &ContentHandler{
		listBlogsHandler:      query.NewListBlogsHandler(blogs),
		getBlogHandler:        query.NewGetBlogHandler(blogs),
		listCategoriesHandler: query.NewListCategoriesHandler(blogs),
		getPanchangamHandler:  query.NewGetPanchangamHandler(panchangams),
		getPageHandler:        query.NewGetPageHandler(pages),
		listSlokasHandler:     query.NewListSlokasHandler(pages),
		requestCounter:        requestCounter,
		requestLatency:        requestLatency,
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
func (h *ContentHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// ListBlogs handles GET /v1/blogs
func (h *ContentHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	q := query.ListBlogsQuery{Status: r.URL.Query().Get("status")}

	blogs, err := h.listBlogsHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, blogs)
}

// GetBlog handles GET /v1/blogs/{id}
func (h *ContentHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	q := query.GetBlogQuery{ID: mux.Vars(r)["id"]}

	blog, err := h.getBlogHandler.Handle(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrBlogNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, blog)
}

// ListCategories handles GET /v1/categories
func (h *ContentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listCategoriesHandler.Handle(r.Context(), query.ListCategoriesQuery{})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, categories)
}

// GetPanchangam handles GET /v1/content/panchangam?date=YYYY-MM-DD. A date
// without an entry answers 200 with a message body; the client treats the
// missing fields as "no almanac today".
func (h *ContentHandler) GetPanchangam(w http.ResponseWriter, r *http.Request) {
	q := query.GetPanchangamQuery{Date: r.URL.Query().Get("date")}

	panchangam, err := h.getPanchangamHandler.Handle(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrPanchangamNotFound) {
			h.respondJSON(w, http.StatusOK, map[string]string{"message": "No panchangam available for this date"})
			return
		}
		if errors.Is(err, domain.ErrInvalidDate) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, panchangam)
}

// GetAboutUs handles GET /v1/content/about-us
func (h *ContentHandler) GetAboutUs(w http.ResponseWriter, r *http.Request) {
	page, err := h.getPageHandler.Handle(r.Context(), query.GetPageQuery{Slug: "about-us"})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, page)
}

// ListSlokas handles GET /v1/content/gita-sloka?type=gita|kids-gita
func (h *ContentHandler) ListSlokas(w http.ResponseWriter, r *http.Request) {
	q := query.ListSlokasQuery{Type: r.URL.Query().Get("type")}

	slokas, err := h.listSlokasHandler.Handle(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownSlokaType) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, slokas)
}

// respondJSON sends a JSON response
func (h *ContentHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *ContentHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all content routes
func (h *ContentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/v1/blogs", h.metricsMiddleware("/v1/blogs", h.ListBlogs)).Methods("GET")
	router.HandleFunc("/v1/blogs/{id}", h.metricsMiddleware("/v1/blogs/{id}", h.GetBlog)).Methods("GET")
	router.HandleFunc("/v1/categories", h.metricsMiddleware("/v1/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/v1/content/about-us", h.metricsMiddleware("/v1/content/about-us", h.GetAboutUs)).Methods("GET")
	router.HandleFunc("/v1/content/gita-sloka", h.metricsMiddleware("/v1/content/gita-sloka", h.ListSlokas)).Methods("GET")
	router.HandleFunc("/v1/content/panchangam", h.metricsMiddleware("/v1/content/panchangam", h.GetPanchangam)).Methods("GET")
}
