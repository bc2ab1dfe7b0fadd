package domain

import "testing"

func TestPaymentHandoffCarriesAmountToPay(t *testing.T) {
	booking := &Booking{
		ID:            "bk-1",
		PaymentMode:   PaymentAdvance,
		GrandTotal:    3050,
		AdvanceAmount: 610,
		AmountToPay:   610,
	}

	handoff := NewPaymentHandoff(booking)

	if handoff.Gateway != "razorpay" {
		t.Errorf("gateway = %q, want razorpay", handoff.Gateway)
	}
	if handoff.OrderRef != "order_bk-1" {
		t.Errorf("orderRef = %q, want order_bk-1", handoff.OrderRef)
	}
	// The gateway charges the mode's settled amount, not the grand total
	if handoff.Amount != 610 {
		t.Errorf("amount = %d, want 610", handoff.Amount)
	}
	if handoff.Currency != "INR" {
		t.Errorf("currency = %q, want INR", handoff.Currency)
	}
}
