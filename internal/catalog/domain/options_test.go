package domain

import (
	"errors"
	"testing"
)

func TestVersionLookup(t *testing.T) {
	cases := map[string]int{
		"basic":         1500,
		"premium":       2500,
		"super_premium": 5000,
	}
	for id, price := range cases {
		version, err := VersionByID(id)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if version.Price != price {
			t.Errorf("%s price = %d, want %d", id, version.Price, price)
		}
	}

	if _, err := VersionByID("platinum"); !errors.Is(err, ErrUnknownVersion) {
		t.Errorf("got %v, want ErrUnknownVersion", err)
	}
}

func TestAddOnLookup(t *testing.T) {
	addOn, err := AddOnByID("none")
	if err != nil {
		t.Fatal(err)
	}
	if addOn.Price != 0 {
		t.Errorf("none price = %d, want 0", addOn.Price)
	}

	addOn, err = AddOnByID("prasadam")
	if err != nil {
		t.Fatal(err)
	}
	if addOn.Price != 2000 {
		t.Errorf("prasadam price = %d, want 2000", addOn.Price)
	}

	if _, err := AddOnByID("gold"); !errors.Is(err, ErrUnknownAddOn) {
		t.Errorf("got %v, want ErrUnknownAddOn", err)
	}
}

func TestTimeSlotLookup(t *testing.T) {
	slot, err := TimeSlotByID("morning")
	if err != nil {
		t.Fatal(err)
	}
	if slot.Label != "Morning (06:00 AM - 11:00 AM)" {
		t.Errorf("morning label = %q", slot.Label)
	}

	if _, err := TimeSlotByID("midnight"); !errors.Is(err, ErrUnknownTimeSlot) {
		t.Errorf("got %v, want ErrUnknownTimeSlot", err)
	}
}

func TestKitPlanPrice(t *testing.T) {
	kit := Kit{
		PriceWeekly:    199,
		PriceMonthly:   599,
		PriceQuarterly: 1599,
		PriceYearly:    4999,
	}

	cases := map[string]int{
		PlanWeekly:    199,
		PlanMonthly:   599,
		PlanQuarterly: 1599,
		PlanYearly:    4999,
		PlanOneTime:   599, // charged at the monthly rate
	}
	for plan, want := range cases {
		got, err := kit.PlanPrice(plan)
		if err != nil {
			t.Fatalf("%s: %v", plan, err)
		}
		if got != want {
			t.Errorf("%s = %d, want %d", plan, got, want)
		}
	}

	if _, err := kit.PlanPrice("fortnightly"); !errors.Is(err, ErrUnknownPlan) {
		t.Errorf("got %v, want ErrUnknownPlan", err)
	}
}

func TestFillPricing(t *testing.T) {
	kit := Kit{
		PriceWeekly:    299,
		PriceMonthly:   899,
		PriceQuarterly: 2399,
		PriceYearly:    7999,
	}
	kit.FillPricing()

	if kit.Pricing.Weekly != 299 || kit.Pricing.Yearly != 7999 {
		t.Errorf("pricing %+v", kit.Pricing)
	}
}
