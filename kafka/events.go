package kafka

import "time"

// BookingCreatedEvent is published after a checkout completes and the
// booking row is committed.
type BookingCreatedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	BookingID   string    `json:"booking_id"`
	CustomerID  string    `json:"customer_id"`
	Kind        string    `json:"kind"` // pooja or kit
	ItemTitle   string    `json:"item_title"`
	PaymentMode string    `json:"payment_mode"`
	AmountToPay int       `json:"amount_to_pay"`
	GrandTotal  int       `json:"grand_total"`
	Timestamp   time.Time `json:"timestamp"`
}

// EnquirySubmittedEvent is published when a festival or panchangam enquiry
// form is accepted.
type EnquirySubmittedEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	EnquiryID    string    `json:"enquiry_id"`
	EnquiryType  string    `json:"enquiry_type"`
	FestivalID   string    `json:"festival_id"`
	FestivalName string    `json:"festival_name"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Timestamp    time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeBookingCreated   = "booking.created"
	EventTypeEnquirySubmitted = "enquiry.submitted"
)

// Kafka topics
const (
	TopicBookingCreated   = "booking-created"
	TopicEnquirySubmitted = "enquiry-submitted"
)
