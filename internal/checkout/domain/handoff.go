package domain

// PaymentHandoff is the stub the client hands to the payment gateway SDK.
// The gateway integration itself lives outside this service; the booking is
// confirmed out of band once the gateway reports the capture.
type PaymentHandoff struct {
	Gateway  string `json:"gateway"`
	OrderRef string `json:"orderRef"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

// NewPaymentHandoff builds the handoff for a freshly placed booking. The
// amount is whatever the chosen payment mode settled on, in whole rupees.
func NewPaymentHandoff(booking *Booking) PaymentHandoff {
	return PaymentHandoff{
		Gateway:  "razorpay",
		OrderRef: "order_" + booking.ID,
		Amount:   booking.AmountToPay,
		Currency: "INR",
	}
}
