package query

import (
	"context"
	"errors"
	"testing"

	catalogdomain "github.com/bookmyseva/storefront/internal/catalog/domain"
	"github.com/bookmyseva/storefront/internal/checkout/domain"
)

type fakePoojaRepo struct {
	bySlug map[string]*catalogdomain.Pooja
}

func (r *fakePoojaRepo) FindAll(search, letter string) ([]catalogdomain.Pooja, error) {
	var out []catalogdomain.Pooja
	for _, p := range r.bySlug {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePoojaRepo) FindBySlug(slug string) (*catalogdomain.Pooja, error) {
	p, ok := r.bySlug[slug]
	if !ok {
		return nil, catalogdomain.ErrPoojaNotFound
	}
	return p, nil
}

type fakeKitRepo struct {
	bySlug map[string]*catalogdomain.Kit
}

func (r *fakeKitRepo) FindAll(search, letter string) ([]catalogdomain.Kit, error) {
	var out []catalogdomain.Kit
	for _, k := range r.bySlug {
		out = append(out, *k)
	}
	return out, nil
}

func (r *fakeKitRepo) FindBySlug(slug string) (*catalogdomain.Kit, error) {
	k, ok := r.bySlug[slug]
	if !ok {
		return nil, catalogdomain.ErrKitNotFound
	}
	return k, nil
}

func newQuoteHandler() *GetQuoteHandler {
	poojas := &fakePoojaRepo{bySlug: map[string]*catalogdomain.Pooja{
		"satyanarayana-vratam": {Slug: "satyanarayana-vratam", Title: "Satyanarayana Vratam", Price: 1500},
	}}
	kits := &fakeKitRepo{bySlug: map[string]*catalogdomain.Kit{
		"daily-pooja-kit": {
			Slug:           "daily-pooja-kit",
			Name:           "Daily Pooja Kit",
			PriceWeekly:    299,
			PriceMonthly:   999,
			PriceQuarterly: 2699,
			PriceYearly:    9999,
		},
	}}
	return NewGetQuoteHandler(poojas, kits)
}

func TestQuotePricesPoojaFromCatalog(t *testing.T) {
	handler := newQuoteHandler()

	quote, err := handler.Handle(context.Background(), GetQuoteQuery{
		Kind:      domain.KindPooja,
		ItemSlug:  "satyanarayana-vratam",
		VersionID: "premium",
		AddOnID:   "kit",
	})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}

	if quote.SubTotal != 4000 {
		t.Errorf("subTotal = %d, want 4000", quote.SubTotal)
	}
	if quote.GrandTotal != 4050 {
		t.Errorf("grandTotal = %d, want 4050", quote.GrandTotal)
	}
	if quote.AmountToPay != quote.GrandTotal {
		t.Errorf("amountToPay = %d, want the grand total when no mode is given", quote.AmountToPay)
	}
}

func TestQuoteAdvanceMode(t *testing.T) {
	handler := newQuoteHandler()

	quote, err := handler.Handle(context.Background(), GetQuoteQuery{
		Kind:        domain.KindPooja,
		ItemSlug:    "satyanarayana-vratam",
		VersionID:   "basic",
		AddOnID:     "none",
		PaymentMode: domain.PaymentAdvance,
	})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}

	if quote.AdvanceAmount != 310 {
		t.Errorf("advance = %d, want 310", quote.AdvanceAmount)
	}
	if quote.AmountToPay != 310 {
		t.Errorf("amountToPay = %d, want the advance amount", quote.AmountToPay)
	}
}

func TestQuoteKitPlan(t *testing.T) {
	handler := newQuoteHandler()

	quote, err := handler.Handle(context.Background(), GetQuoteQuery{
		Kind:     domain.KindKit,
		ItemSlug: "daily-pooja-kit",
		Plan:     catalogdomain.PlanQuarterly,
		UseCoins: true,
	})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}

	if quote.SubTotal != 2699 {
		t.Errorf("subTotal = %d, want 2699", quote.SubTotal)
	}
	if quote.GrandTotal != 2549 {
		t.Errorf("grandTotal = %d, want 2549", quote.GrandTotal)
	}
}

func TestQuoteRejectsBadSelections(t *testing.T) {
	handler := newQuoteHandler()

	cases := []struct {
		name string
		q    GetQuoteQuery
		want error
	}{
		{"unknown kind", GetQuoteQuery{Kind: "donation"}, domain.ErrInvalidKind},
		{"unknown pooja", GetQuoteQuery{Kind: domain.KindPooja, ItemSlug: "ghost"}, catalogdomain.ErrPoojaNotFound},
		{"unknown version", GetQuoteQuery{Kind: domain.KindPooja, ItemSlug: "satyanarayana-vratam", VersionID: "platinum"}, catalogdomain.ErrUnknownVersion},
		{"unknown kit", GetQuoteQuery{Kind: domain.KindKit, ItemSlug: "ghost"}, catalogdomain.ErrKitNotFound},
		{"unknown plan", GetQuoteQuery{Kind: domain.KindKit, ItemSlug: "daily-pooja-kit", Plan: "fortnightly"}, catalogdomain.ErrUnknownPlan},
		{"bad payment mode", GetQuoteQuery{Kind: domain.KindPooja, ItemSlug: "satyanarayana-vratam", VersionID: "basic", AddOnID: "none", PaymentMode: "emi"}, domain.ErrInvalidPaymentMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tc.q)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}
