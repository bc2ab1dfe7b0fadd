package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/enquiry/domain"
)

// ListEnquiriesQuery represents the query to list enquiries, optionally
// narrowed to one type
type ListEnquiriesQuery struct {
	Type string
}

// ListEnquiriesHandler handles enquiry listing
type ListEnquiriesHandler struct {
	repo domain.EnquiryRepository
}

// NewListEnquiriesHandler creates a new list enquiries handler
func NewListEnquiriesHandler(repo domain.EnquiryRepository) *ListEnquiriesHandler {
	return &ListEnquiriesHandler{repo: repo}
}

// Handle returns enquiries newest first
func (h *ListEnquiriesHandler) Handle(ctx context.Context, q ListEnquiriesQuery) ([]domain.Enquiry, error) {
	return h.repo.ListByType(q.Type)
}
