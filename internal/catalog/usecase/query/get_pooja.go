package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/catalog/domain"
)

// GetPoojaQuery represents the query to get one pooja by slug
type GetPoojaQuery struct {
	Slug string
}

// PoojaDetail bundles a pooja with the checkout options shown on its page
type PoojaDetail struct {
	Pooja     *domain.Pooja          `json:"pooja"`
	Versions  []domain.VersionOption `json:"versions"`
	AddOns    []domain.AddOnOption   `json:"addOns"`
	TimeSlots []domain.TimeSlot      `json:"timeSlots"`
}

// GetPoojaHandler handles pooja detail retrieval
type GetPoojaHandler struct {
	repo domain.PoojaRepository
}

// NewGetPoojaHandler creates a new get pooja handler
func NewGetPoojaHandler(repo domain.PoojaRepository) *GetPoojaHandler {
	return &GetPoojaHandler{repo: repo}
}

// Handle returns the pooja with the fixed tier, add-on and slot options
func (h *GetPoojaHandler) Handle(ctx context.Context, q GetPoojaQuery) (*PoojaDetail, error) {
	pooja, err := h.repo.FindBySlug(q.Slug)
	if err != nil {
		return nil, err
	}
	return &PoojaDetail{
		Pooja:     pooja,
		Versions:  domain.Versions,
		AddOns:    domain.AddOns,
		TimeSlots: domain.TimeSlots,
	}, nil
}
