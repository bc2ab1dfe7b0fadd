package domain

import "math"

// Pricing constants. The coins discount is a flat amount unlocked by the
// toggle, not a per-coin rate.
const (
	ServiceFee    = 50
	CoinsDiscount = 200
	AdvanceRate   = 0.2
)

// Payment modes
const (
	PaymentFull    = "full"
	PaymentAdvance = "advance"
)

// Quote is the price breakdown for a booking. All amounts are whole rupees.
type Quote struct {
	SubTotal      int `json:"subTotal"`
	ServiceFee    int `json:"serviceFee"`
	CoinsDiscount int `json:"coinsDiscount"`
	GrandTotal    int `json:"grandTotal"`
	AdvanceAmount int `json:"advanceAmount"`
	AmountToPay   int `json:"amountToPay"`
}

// ComputeQuote prices a booking from its item subtotal. The grand total is
// clamped at zero so a discount larger than the order never produces a
// negative charge. The advance is a fifth of the grand total, rounded up so
// full payment never undercuts it.
func ComputeQuote(subTotal int, useCoins bool, paymentMode string) Quote {
	discount := 0
	if useCoins {
		discount = CoinsDiscount
	}

	grandTotal := subTotal + ServiceFee - discount
	if grandTotal < 0 {
		grandTotal = 0
	}

	advance := int(math.Ceil(float64(grandTotal) * AdvanceRate))

	amountToPay := grandTotal
	if paymentMode == PaymentAdvance {
		amountToPay = advance
	}

	return Quote{
		SubTotal:      subTotal,
		ServiceFee:    ServiceFee,
		CoinsDiscount: discount,
		GrandTotal:    grandTotal,
		AdvanceAmount: advance,
		AmountToPay:   amountToPay,
	}
}
