package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/content/domain"
)

// GetPanchangamQuery represents the query to get the almanac for a date
type GetPanchangamQuery struct {
	Date string
}

// GetPanchangamHandler handles panchangam retrieval
type GetPanchangamHandler struct {
	repo domain.PanchangamRepository
}

// NewGetPanchangamHandler creates a new get panchangam handler
func NewGetPanchangamHandler(repo domain.PanchangamRepository) *GetPanchangamHandler {
	return &GetPanchangamHandler{repo: repo}
}

// Handle returns the entry for the given YYYY-MM-DD date
func (h *GetPanchangamHandler) Handle(ctx context.Context, q GetPanchangamQuery) (*domain.Panchangam, error) {
	if err := domain.ValidateDate(q.Date); err != nil {
		return nil, err
	}
	return h.repo.FindByDate(q.Date)
}
