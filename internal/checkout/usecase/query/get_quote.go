package query

import (
	"context"

	catalogdomain "github.com/bookmyseva/storefront/internal/catalog/domain"
	"github.com/bookmyseva/storefront/internal/checkout/domain"
)

// GetQuoteQuery represents the query to price a checkout before it is
// placed. The wizard re-requests this whenever a selection changes.
type GetQuoteQuery struct {
	Kind      string
	ItemSlug  string
	VersionID string
	AddOnID   string
	Plan      string

	UseCoins    bool
	PaymentMode string
}

// GetQuoteHandler handles quote computation
type GetQuoteHandler struct {
	poojas catalogdomain.PoojaRepository
	kits   catalogdomain.KitRepository
}

// NewGetQuoteHandler creates a new get quote handler
func NewGetQuoteHandler(poojas catalogdomain.PoojaRepository, kits catalogdomain.KitRepository) *GetQuoteHandler {
	return &GetQuoteHandler{poojas: poojas, kits: kits}
}

// Handle prices the selection from the catalog, never from client-supplied
// amounts
func (h *GetQuoteHandler) Handle(ctx context.Context, q GetQuoteQuery) (*domain.Quote, error) {
	paymentMode := q.PaymentMode
	if paymentMode == "" {
		paymentMode = domain.PaymentFull
	}
	if paymentMode != domain.PaymentFull && paymentMode != domain.PaymentAdvance {
		return nil, domain.ErrInvalidPaymentMode
	}

	subTotal := 0
	switch q.Kind {
	case domain.KindPooja:
		if _, err := h.poojas.FindBySlug(q.ItemSlug); err != nil {
			return nil, err
		}
		version, err := catalogdomain.VersionByID(q.VersionID)
		if err != nil {
			return nil, err
		}
		addOn, err := catalogdomain.AddOnByID(q.AddOnID)
		if err != nil {
			return nil, err
		}
		subTotal = version.Price + addOn.Price
	case domain.KindKit:
		kit, err := h.kits.FindBySlug(q.ItemSlug)
		if err != nil {
			return nil, err
		}
		subTotal, err = kit.PlanPrice(q.Plan)
		if err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrInvalidKind
	}

	quote := domain.ComputeQuote(subTotal, q.UseCoins, paymentMode)
	return &quote, nil
}
