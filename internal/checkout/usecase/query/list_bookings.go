package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/checkout/domain"
)

// ListBookingsQuery represents the query to list a customer's bookings
type ListBookingsQuery struct {
	CustomerID string
}

// ListBookingsHandler handles booking listing
type ListBookingsHandler struct {
	repo domain.BookingRepository
}

// NewListBookingsHandler creates a new list bookings handler
func NewListBookingsHandler(repo domain.BookingRepository) *ListBookingsHandler {
	return &ListBookingsHandler{repo: repo}
}

// Handle returns the customer's bookings, newest first
func (h *ListBookingsHandler) Handle(ctx context.Context, q ListBookingsQuery) ([]domain.Booking, error) {
	return h.repo.ListByCustomer(q.CustomerID)
}
