package repository

import (
	"strings"
	"testing"

	"github.com/bookmyseva/storefront/internal/catalog/domain"
)

func TestSeedFixturesHaveValidPlanPricing(t *testing.T) {
	for _, kit := range seedKits {
		if err := validatePlanPricing(kit); err != nil {
			t.Errorf("%s: %v", kit.Slug, err)
		}
	}
}

func TestValidatePlanPricingRejectsInversions(t *testing.T) {
	kit := domain.Kit{
		Slug:           "broken-kit",
		PriceWeekly:    500,
		PriceMonthly:   400,
		PriceQuarterly: 2399,
		PriceYearly:    7999,
	}
	err := validatePlanPricing(kit)
	if err == nil || !strings.Contains(err.Error(), "broken-kit") {
		t.Errorf("got %v, want pricing inversion error naming the kit", err)
	}
}

func TestValidatePlanPricingRequiresYearlyDiscount(t *testing.T) {
	kit := domain.Kit{
		Slug:           "no-discount-kit",
		PriceWeekly:    100,
		PriceMonthly:   400,
		PriceQuarterly: 1200,
		PriceYearly:    5300, // more than 52 weekly purchases
	}
	if err := validatePlanPricing(kit); err == nil {
		t.Error("a yearly plan pricier than 52 weekly buys must be rejected")
	}
}

func TestSeedFixturesAreComplete(t *testing.T) {
	if len(seedPoojas) != 10 {
		t.Errorf("pooja fixtures = %d, want 10", len(seedPoojas))
	}
	if len(seedKits) != 8 {
		t.Errorf("kit fixtures = %d, want 8", len(seedKits))
	}

	slugs := make(map[string]bool)
	for _, p := range seedPoojas {
		if p.Slug == "" || p.Title == "" || p.Price <= 0 {
			t.Errorf("incomplete pooja fixture %+v", p)
		}
		if slugs[p.Slug] {
			t.Errorf("duplicate slug %s", p.Slug)
		}
		slugs[p.Slug] = true
	}
}
