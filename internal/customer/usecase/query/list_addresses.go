package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/customer/domain"
)

// ListAddressesQuery represents the query to list a customer's address book
type ListAddressesQuery struct {
	CustomerID string
}

// ListAddressesHandler handles address book retrieval
type ListAddressesHandler struct {
	repo domain.AddressRepository
}

// NewListAddressesHandler creates a new list addresses handler
func NewListAddressesHandler(repo domain.AddressRepository) *ListAddressesHandler {
	return &ListAddressesHandler{repo: repo}
}

// Handle returns the address book in insertion order
func (h *ListAddressesHandler) Handle(ctx context.Context, q ListAddressesQuery) ([]domain.Address, error) {
	return h.repo.ListByCustomer(q.CustomerID)
}
