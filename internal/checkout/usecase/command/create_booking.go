package command

import (
	"context"
	"time"

	"github.com/google/uuid"

	catalogdomain "github.com/bookmyseva/storefront/internal/catalog/domain"
	"github.com/bookmyseva/storefront/internal/checkout/domain"
	customerdomain "github.com/bookmyseva/storefront/internal/customer/domain"
	"github.com/bookmyseva/storefront/kafka"
	"github.com/bookmyseva/storefront/pkg/logger"
)

// BookingEventPublisher publishes booking lifecycle events
type BookingEventPublisher interface {
	PublishBookingCreated(ctx context.Context, event kafka.BookingCreatedEvent) error
}

// CreateBookingCommand represents the command to place a booking. The client
// sends its selections, never its own prices; the quote is recomputed here.
type CreateBookingCommand struct {
	CustomerID string
	Kind       string
	ItemSlug   string

	// Pooja selections
	VersionID  string
	AddOnID    string
	Date       *time.Time
	TimeSlotID string

	// Kit selections
	Plan string

	AddressID   string
	PaymentMode string
	UseCoins    bool
	CouponCode  string
}

// CreateBookingHandler handles booking creation
type CreateBookingHandler struct {
	bookings  domain.BookingRepository
	poojas    catalogdomain.PoojaRepository
	kits      catalogdomain.KitRepository
	addresses customerdomain.AddressRepository
	publisher BookingEventPublisher
}

// NewCreateBookingHandler creates a new create booking handler
func NewCreateBookingHandler(
	bookings domain.BookingRepository,
	poojas catalogdomain.PoojaRepository,
	kits catalogdomain.KitRepository,
	addresses customerdomain.AddressRepository,
	publisher BookingEventPublisher,
) *CreateBookingHandler {
	return &CreateBookingHandler{
		bookings:  bookings,
		poojas:    poojas,
		kits:      kits,
		addresses: addresses,
		publisher: publisher,
	}
}

// Handle walks the selections through the step machine, recomputes the quote
// from catalog prices and persists the booking. The payment handoff happens
// against the returned AmountToPay.
func (h *CreateBookingHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*domain.Booking, error) {
	flow, err := domain.NewFlow(cmd.Kind)
	if err != nil {
		return nil, err
	}

	if cmd.PaymentMode != domain.PaymentFull && cmd.PaymentMode != domain.PaymentAdvance {
		return nil, domain.ErrInvalidPaymentMode
	}

	booking := &domain.Booking{
		ID:          uuid.New().String(),
		CustomerID:  cmd.CustomerID,
		Kind:        cmd.Kind,
		ItemSlug:    cmd.ItemSlug,
		AddressID:   cmd.AddressID,
		PaymentMode: cmd.PaymentMode,
		UseCoins:    cmd.UseCoins,
		CouponCode:  cmd.CouponCode,
		Status:      domain.StatusPendingPayment,
	}

	subTotal := 0
	switch cmd.Kind {
	case domain.KindPooja:
		subTotal, err = h.pricePooja(cmd, booking)
	case domain.KindKit:
		subTotal, err = h.priceKit(cmd, booking)
	}
	if err != nil {
		return nil, err
	}

	// Date & time step (pooja only)
	if cmd.Kind == domain.KindPooja {
		if err := h.validateSchedule(cmd, booking); err != nil {
			return nil, err
		}
		flow.Forward(true)
	}

	// Address step
	if cmd.AddressID == "" {
		return nil, domain.ErrAddressRequired
	}
	if _, err := h.addresses.FindByID(cmd.CustomerID, cmd.AddressID); err != nil {
		return nil, err
	}
	flow.Forward(true)

	quote := domain.ComputeQuote(subTotal, cmd.UseCoins, cmd.PaymentMode)
	booking.SubTotal = quote.SubTotal
	booking.ServiceFee = quote.ServiceFee
	booking.CoinsDiscount = quote.CoinsDiscount
	booking.GrandTotal = quote.GrandTotal
	booking.AdvanceAmount = quote.AdvanceAmount
	booking.AmountToPay = quote.AmountToPay

	if err := h.bookings.Create(booking); err != nil {
		return nil, err
	}

	if err := h.publisher.PublishBookingCreated(ctx, kafka.BookingCreatedEvent{
		BookingID:   booking.ID,
		CustomerID:  booking.CustomerID,
		Kind:        booking.Kind,
		ItemTitle:   booking.ItemTitle,
		PaymentMode: booking.PaymentMode,
		AmountToPay: booking.AmountToPay,
		GrandTotal:  booking.GrandTotal,
	}); err != nil {
		// The booking stands; downstream consumers catch up from the log
		logger.Warn(ctx).
			Err(err).
			Str("booking_id", booking.ID).
			Msg("Failed to publish booking event")
	}

	logger.Info(ctx).
		Str("booking_id", booking.ID).
		Str("kind", booking.Kind).
		Int("amount_to_pay", booking.AmountToPay).
		Msg("Booking created")

	return booking, nil
}

func (h *CreateBookingHandler) pricePooja(cmd CreateBookingCommand, booking *domain.Booking) (int, error) {
	pooja, err := h.poojas.FindBySlug(cmd.ItemSlug)
	if err != nil {
		return 0, err
	}
	booking.ItemTitle = pooja.Title

	version, err := catalogdomain.VersionByID(cmd.VersionID)
	if err != nil {
		return 0, err
	}
	addOn, err := catalogdomain.AddOnByID(cmd.AddOnID)
	if err != nil {
		return 0, err
	}

	booking.VersionID = version.ID
	booking.AddOnID = addOn.ID
	return version.Price + addOn.Price, nil
}

func (h *CreateBookingHandler) priceKit(cmd CreateBookingCommand, booking *domain.Booking) (int, error) {
	kit, err := h.kits.FindBySlug(cmd.ItemSlug)
	if err != nil {
		return 0, err
	}
	booking.ItemTitle = kit.Name

	price, err := kit.PlanPrice(cmd.Plan)
	if err != nil {
		return 0, err
	}

	booking.Plan = cmd.Plan
	return price, nil
}

// Poojas are scheduled against the Indian calendar; the same-day cutoff
// follows IST no matter which timezone the request encodes its date in.
var bookingLocation = time.FixedZone("IST", 330*60)

func (h *CreateBookingHandler) validateSchedule(cmd CreateBookingCommand, booking *domain.Booking) error {
	if cmd.Date == nil {
		return domain.ErrDateRequired
	}
	today := time.Now().In(bookingLocation).Format("2006-01-02")
	if cmd.Date.In(bookingLocation).Format("2006-01-02") < today {
		return domain.ErrPastDate
	}
	if cmd.TimeSlotID == "" {
		return domain.ErrSlotRequired
	}
	slot, err := catalogdomain.TimeSlotByID(cmd.TimeSlotID)
	if err != nil {
		return err
	}

	booking.Date = cmd.Date
	booking.TimeSlotID = slot.ID
	return nil
}

// Ensure the kafka publisher satisfies the interface
var _ BookingEventPublisher = (*kafka.Publisher)(nil)
