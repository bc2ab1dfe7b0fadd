package domain

import "testing"

func TestComputeQuoteFullPayment(t *testing.T) {
	// basic version (1500) + kit add-on (1500)
	quote := ComputeQuote(3000, false, PaymentFull)

	if quote.SubTotal != 3000 {
		t.Errorf("subTotal = %d, want 3000", quote.SubTotal)
	}
	if quote.ServiceFee != 50 {
		t.Errorf("serviceFee = %d, want 50", quote.ServiceFee)
	}
	if quote.CoinsDiscount != 0 {
		t.Errorf("coinsDiscount = %d, want 0", quote.CoinsDiscount)
	}
	if quote.GrandTotal != 3050 {
		t.Errorf("grandTotal = %d, want 3050", quote.GrandTotal)
	}
	if quote.AdvanceAmount != 610 {
		t.Errorf("advanceAmount = %d, want 610", quote.AdvanceAmount)
	}
	if quote.AmountToPay != 3050 {
		t.Errorf("amountToPay = %d, want 3050", quote.AmountToPay)
	}
}

func TestComputeQuoteAdvancePayment(t *testing.T) {
	quote := ComputeQuote(3000, false, PaymentAdvance)

	if quote.AmountToPay != quote.AdvanceAmount {
		t.Errorf("amountToPay = %d, want advance %d", quote.AmountToPay, quote.AdvanceAmount)
	}
	if quote.AmountToPay != 610 {
		t.Errorf("amountToPay = %d, want 610", quote.AmountToPay)
	}
}

func TestComputeQuoteCoinsDiscount(t *testing.T) {
	quote := ComputeQuote(2500, true, PaymentFull)

	if quote.CoinsDiscount != CoinsDiscount {
		t.Errorf("coinsDiscount = %d, want %d", quote.CoinsDiscount, CoinsDiscount)
	}
	if quote.GrandTotal != 2350 {
		t.Errorf("grandTotal = %d, want 2350", quote.GrandTotal)
	}
}

func TestComputeQuoteAdvanceRoundsUp(t *testing.T) {
	// grand total 151 gives 30.2, which must round up to 31
	quote := ComputeQuote(101, false, PaymentAdvance)

	if quote.GrandTotal != 151 {
		t.Fatalf("grandTotal = %d, want 151", quote.GrandTotal)
	}
	if quote.AdvanceAmount != 31 {
		t.Errorf("advanceAmount = %d, want 31", quote.AdvanceAmount)
	}
}

func TestComputeQuoteNeverNegative(t *testing.T) {
	// a discount larger than the order clamps to zero, not a refund
	quote := ComputeQuote(100, true, PaymentFull)

	if quote.GrandTotal != 0 {
		t.Errorf("grandTotal = %d, want 0", quote.GrandTotal)
	}
	if quote.AdvanceAmount != 0 {
		t.Errorf("advanceAmount = %d, want 0", quote.AdvanceAmount)
	}
	if quote.AmountToPay != 0 {
		t.Errorf("amountToPay = %d, want 0", quote.AmountToPay)
	}
}
