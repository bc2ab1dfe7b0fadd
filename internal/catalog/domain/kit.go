package domain

import "time"

// Subscription plans for pooja kits. PlanOneTime is an alias priced at the
// monthly rate.
const (
	PlanWeekly    = "weekly"
	PlanMonthly   = "monthly"
	PlanQuarterly = "quarterly"
	PlanYearly    = "yearly"
	PlanOneTime   = "one_time"
)

// Kit is a devotional kit sold on a subscription plan
type Kit struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Slug           string     `json:"slug" gorm:"uniqueIndex;not null"`
	Name           string     `json:"name" gorm:"not null"`
	Description    string     `json:"description"`
	Image          string     `json:"image"`
	Rating         float64    `json:"rating"`
	ReviewCount    int        `json:"reviewCount"`
	PriceWeekly    int        `json:"-" gorm:"not null"`
	PriceMonthly   int        `json:"-" gorm:"not null"`
	PriceQuarterly int        `json:"-" gorm:"not null"`
	PriceYearly    int        `json:"-" gorm:"not null"`
	Pricing        KitPricing `json:"pricing" gorm:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// KitPricing is the wire shape of a kit's plan prices
type KitPricing struct {
	Weekly    int `json:"weekly"`
	Monthly   int `json:"monthly"`
	Quarterly int `json:"quarterly"`
	Yearly    int `json:"yearly"`
}

// TableName specifies the table name
func (Kit) TableName() string {
	return "pooja_kits"
}

// FillPricing populates the wire pricing struct from the stored columns
func (k *Kit) FillPricing() {
	k.Pricing = KitPricing{
		Weekly:    k.PriceWeekly,
		Monthly:   k.PriceMonthly,
		Quarterly: k.PriceQuarterly,
		Yearly:    k.PriceYearly,
	}
}

// PlanPrice resolves a plan id to its price. A one-time purchase is charged
// at the monthly rate.
func (k *Kit) PlanPrice(plan string) (int, error) {
	switch plan {
	case PlanWeekly:
		return k.PriceWeekly, nil
	case PlanMonthly, PlanOneTime:
		return k.PriceMonthly, nil
	case PlanQuarterly:
		return k.PriceQuarterly, nil
	case PlanYearly:
		return k.PriceYearly, nil
	default:
		return 0, ErrUnknownPlan
	}
}

// KitRepository defines the contract for kit catalog access
type KitRepository interface {
	FindAll(search, letter string) ([]Kit, error)
	FindBySlug(slug string) (*Kit, error)
}
