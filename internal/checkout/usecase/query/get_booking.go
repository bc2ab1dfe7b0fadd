package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/checkout/domain"
)

// GetBookingQuery represents the query to get one booking
type GetBookingQuery struct {
	CustomerID string
	BookingID  string
}

// GetBookingHandler handles booking retrieval
type GetBookingHandler struct {
	repo domain.BookingRepository
}

// NewGetBookingHandler creates a new get booking handler
func NewGetBookingHandler(repo domain.BookingRepository) *GetBookingHandler {
	return &GetBookingHandler{repo: repo}
}

// Handle returns the booking, scoped to its owner
func (h *GetBookingHandler) Handle(ctx context.Context, q GetBookingQuery) (*domain.Booking, error) {
	return h.repo.FindByID(q.CustomerID, q.BookingID)
}
