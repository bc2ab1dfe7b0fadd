package command

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	catalogdomain "github.com/bookmyseva/storefront/internal/catalog/domain"
	"github.com/bookmyseva/storefront/internal/checkout/domain"
	customerdomain "github.com/bookmyseva/storefront/internal/customer/domain"
	"github.com/bookmyseva/storefront/kafka"
	"github.com/bookmyseva/storefront/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("checkout-command-test", false)
	os.Exit(m.Run())
}

type fakeBookingRepo struct {
	created []*domain.Booking
}

func (r *fakeBookingRepo) Create(booking *domain.Booking) error {
	r.created = append(r.created, booking)
	return nil
}

func (r *fakeBookingRepo) FindByID(customerID, id string) (*domain.Booking, error) {
	for _, b := range r.created {
		if b.ID == id && b.CustomerID == customerID {
			return b, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *fakeBookingRepo) ListByCustomer(customerID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range r.created {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

type fakePoojaRepo struct {
	poojas map[string]*catalogdomain.Pooja
}

func (r *fakePoojaRepo) FindAll(search, letter string) ([]catalogdomain.Pooja, error) {
	return nil, nil
}

func (r *fakePoojaRepo) FindBySlug(slug string) (*catalogdomain.Pooja, error) {
	p, ok := r.poojas[slug]
	if !ok {
		return nil, catalogdomain.ErrPoojaNotFound
	}
	return p, nil
}

type fakeKitRepo struct {
	kits map[string]*catalogdomain.Kit
}

func (r *fakeKitRepo) FindAll(search, letter string) ([]catalogdomain.Kit, error) {
	return nil, nil
}

func (r *fakeKitRepo) FindBySlug(slug string) (*catalogdomain.Kit, error) {
	k, ok := r.kits[slug]
	if !ok {
		return nil, catalogdomain.ErrKitNotFound
	}
	return k, nil
}

type fakeCheckoutAddressRepo struct {
	byID map[string]*customerdomain.Address
}

func (r *fakeCheckoutAddressRepo) ListByCustomer(customerID string) ([]customerdomain.Address, error) {
	return nil, nil
}

func (r *fakeCheckoutAddressRepo) FindByID(customerID, id string) (*customerdomain.Address, error) {
	a, ok := r.byID[id]
	if !ok || a.CustomerID != customerID {
		return nil, customerdomain.ErrAddressNotFound
	}
	return a, nil
}

func (r *fakeCheckoutAddressRepo) Upsert(address *customerdomain.Address) error { return nil }
func (r *fakeCheckoutAddressRepo) Delete(customerID, id string) error          { return nil }
func (r *fakeCheckoutAddressRepo) ClearDefault(customerID string) error        { return nil }
func (r *fakeCheckoutAddressRepo) CountByCustomer(customerID string) (int64, error) {
	return int64(len(r.byID)), nil
}

type fakePublisher struct {
	events []kafka.BookingCreatedEvent
	err    error
}

func (p *fakePublisher) PublishBookingCreated(_ context.Context, event kafka.BookingCreatedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func newHandler(t *testing.T) (*CreateBookingHandler, *fakeBookingRepo, *fakePublisher) {
	t.Helper()

	bookings := &fakeBookingRepo{}
	poojas := &fakePoojaRepo{poojas: map[string]*catalogdomain.Pooja{
		"satyanarayana-vratam": {Slug: "satyanarayana-vratam", Title: "Satyanarayana Vratam"},
	}}
	kits := &fakeKitRepo{kits: map[string]*catalogdomain.Kit{
		"daily-pooja-kit": {
			Slug:           "daily-pooja-kit",
			Name:           "Daily Pooja Kit",
			PriceWeekly:    299,
			PriceMonthly:   999,
			PriceQuarterly: 2699,
			PriceYearly:    9999,
		},
	}}
	addresses := &fakeCheckoutAddressRepo{byID: map[string]*customerdomain.Address{
		"addr-1": {ID: "addr-1", CustomerID: "cust-1"},
	}}
	publisher := &fakePublisher{}

	return NewCreateBookingHandler(bookings, poojas, kits, addresses, publisher), bookings, publisher
}

func tomorrow() *time.Time {
	d := time.Now().Add(24 * time.Hour)
	return &d
}

func validPoojaCommand() CreateBookingCommand {
	return CreateBookingCommand{
		CustomerID:  "cust-1",
		Kind:        domain.KindPooja,
		ItemSlug:    "satyanarayana-vratam",
		VersionID:   "basic",
		AddOnID:     "kit",
		Date:        tomorrow(),
		TimeSlotID:  "morning",
		AddressID:   "addr-1",
		PaymentMode: domain.PaymentFull,
	}
}

func TestCreateBookingPricesFromCatalog(t *testing.T) {
	handler, bookings, publisher := newHandler(t)

	booking, err := handler.Handle(context.Background(), validPoojaCommand())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// basic 1500 + kit add-on 1500
	if booking.SubTotal != 3000 {
		t.Errorf("subTotal = %d, want 3000", booking.SubTotal)
	}
	if booking.GrandTotal != 3050 {
		t.Errorf("grandTotal = %d, want 3050", booking.GrandTotal)
	}
	if booking.AmountToPay != 3050 {
		t.Errorf("amountToPay = %d, want 3050", booking.AmountToPay)
	}
	if booking.Status != domain.StatusPendingPayment {
		t.Errorf("status = %q, want pending_payment", booking.Status)
	}
	if booking.ItemTitle != "Satyanarayana Vratam" {
		t.Errorf("itemTitle = %q", booking.ItemTitle)
	}

	if len(bookings.created) != 1 {
		t.Fatal("booking not persisted")
	}
	if len(publisher.events) != 1 {
		t.Fatal("booking event not published")
	}
	if publisher.events[0].AmountToPay != 3050 {
		t.Errorf("event amountToPay = %d", publisher.events[0].AmountToPay)
	}
}

func TestCreateBookingAdvanceMode(t *testing.T) {
	handler, _, _ := newHandler(t)

	cmd := validPoojaCommand()
	cmd.PaymentMode = domain.PaymentAdvance

	booking, err := handler.Handle(context.Background(), cmd)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if booking.AmountToPay != 610 {
		t.Errorf("amountToPay = %d, want 610", booking.AmountToPay)
	}
}

func TestCreateBookingScheduleValidation(t *testing.T) {
	handler, bookings, _ := newHandler(t)

	cases := []struct {
		name   string
		mutate func(*CreateBookingCommand)
		want   error
	}{
		{"missing date", func(c *CreateBookingCommand) { c.Date = nil }, domain.ErrDateRequired},
		{"past date", func(c *CreateBookingCommand) {
			d := time.Now().Add(-48 * time.Hour)
			c.Date = &d
		}, domain.ErrPastDate},
		{"missing slot", func(c *CreateBookingCommand) { c.TimeSlotID = "" }, domain.ErrSlotRequired},
		{"unknown slot", func(c *CreateBookingCommand) { c.TimeSlotID = "midnight" }, catalogdomain.ErrUnknownTimeSlot},
		{"unknown version", func(c *CreateBookingCommand) { c.VersionID = "platinum" }, catalogdomain.ErrUnknownVersion},
		{"unknown add-on", func(c *CreateBookingCommand) { c.AddOnID = "gold" }, catalogdomain.ErrUnknownAddOn},
		{"bad payment mode", func(c *CreateBookingCommand) { c.PaymentMode = "emi" }, domain.ErrInvalidPaymentMode},
		{"missing address", func(c *CreateBookingCommand) { c.AddressID = "" }, domain.ErrAddressRequired},
		{"foreign address", func(c *CreateBookingCommand) { c.CustomerID = "cust-2" }, customerdomain.ErrAddressNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := validPoojaCommand()
			tc.mutate(&cmd)
			_, err := handler.Handle(context.Background(), cmd)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}

	if len(bookings.created) != 0 {
		t.Error("no booking may be persisted when validation fails")
	}
}

func TestCreateBookingAcceptsTodayAcrossTimezones(t *testing.T) {
	handler, _, _ := newHandler(t)

	// Today's local midnight in IST is an earlier instant than the current
	// UTC day boundary; a calendar-date comparison must still accept it
	ist := time.FixedZone("IST", 330*60)
	now := time.Now().In(ist)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, ist).UTC()

	cmd := validPoojaCommand()
	cmd.Date = &midnight

	if _, err := handler.Handle(context.Background(), cmd); err != nil {
		t.Fatalf("same-day booking rejected: %v", err)
	}
}

func TestCreateKitBookingSkipsScheduling(t *testing.T) {
	handler, _, _ := newHandler(t)

	booking, err := handler.Handle(context.Background(), CreateBookingCommand{
		CustomerID:  "cust-1",
		Kind:        domain.KindKit,
		ItemSlug:    "daily-pooja-kit",
		Plan:        catalogdomain.PlanOneTime,
		AddressID:   "addr-1",
		PaymentMode: domain.PaymentFull,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// one_time resolves to the monthly price
	if booking.SubTotal != 999 {
		t.Errorf("subTotal = %d, want 999", booking.SubTotal)
	}
	if booking.Date != nil || booking.TimeSlotID != "" {
		t.Error("kit purchase must carry no schedule")
	}
}

func TestCreateBookingSurvivesPublishFailure(t *testing.T) {
	handler, bookings, publisher := newHandler(t)
	publisher.err = errors.New("broker down")

	booking, err := handler.Handle(context.Background(), validPoojaCommand())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if booking == nil || len(bookings.created) != 1 {
		t.Fatal("booking must stand when the event log is unavailable")
	}
}
