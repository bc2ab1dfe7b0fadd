package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/customer/domain"
)

// GetProfileQuery represents the query to get a customer's profile
type GetProfileQuery struct {
	CustomerID string
}

// GetProfileHandler handles profile retrieval
type GetProfileHandler struct {
	repo domain.CustomerRepository
}

// NewGetProfileHandler creates a new get profile handler
func NewGetProfileHandler(repo domain.CustomerRepository) *GetProfileHandler {
	return &GetProfileHandler{repo: repo}
}

// Handle executes the get profile query
func (h *GetProfileHandler) Handle(ctx context.Context, q GetProfileQuery) (*domain.Customer, error) {
	return h.repo.FindByID(q.CustomerID)
}
