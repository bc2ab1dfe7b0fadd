package command

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	contentdomain "github.com/bookmyseva/storefront/internal/content/domain"
	"github.com/bookmyseva/storefront/internal/enquiry/domain"
	"github.com/bookmyseva/storefront/kafka"
	"github.com/bookmyseva/storefront/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("enquiry-command-test", false)
	os.Exit(m.Run())
}

type fakeEnquiryRepo struct {
	created []*domain.Enquiry
}

func (r *fakeEnquiryRepo) Create(enquiry *domain.Enquiry) error {
	r.created = append(r.created, enquiry)
	return nil
}

func (r *fakeEnquiryRepo) ListByType(enquiryType string) ([]domain.Enquiry, error) {
	var out []domain.Enquiry
	for _, e := range r.created {
		if enquiryType == "" || e.Type == enquiryType {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakePanchangamRepo struct {
	byDate map[string]*contentdomain.Panchangam
}

func (r *fakePanchangamRepo) FindByDate(date string) (*contentdomain.Panchangam, error) {
	p, ok := r.byDate[date]
	if !ok {
		return nil, contentdomain.ErrPanchangamNotFound
	}
	return p, nil
}

type fakeEnquiryPublisher struct {
	events []kafka.EnquirySubmittedEvent
	err    error
}

func (p *fakeEnquiryPublisher) PublishEnquirySubmitted(_ context.Context, event kafka.EnquirySubmittedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func todaysPanchangam(fields contentdomain.FormFields) *fakePanchangamRepo {
	today := time.Now().Format("2006-01-02")
	return &fakePanchangamRepo{byDate: map[string]*contentdomain.Panchangam{
		today: {Date: today, FormFields: fields},
	}}
}

func TestSubmitFestivalEnquiry(t *testing.T) {
	repo := &fakeEnquiryRepo{}
	publisher := &fakeEnquiryPublisher{}
	handler := NewSubmitEnquiryHandler(repo, &fakePanchangamRepo{}, publisher)

	enquiry, err := handler.Handle(context.Background(), SubmitEnquiryCommand{
		Type:         domain.TypeFestival,
		FestivalID:   "diwali-2026",
		FestivalName: "Diwali",
		Name:         "Ramesh",
		Phone:        "9876543210",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if enquiry.ID == "" {
		t.Error("enquiry ID not assigned")
	}
	if enquiry.Status != domain.StatusNew {
		t.Errorf("status = %q, want new", enquiry.Status)
	}
	if len(repo.created) != 1 {
		t.Fatal("enquiry not persisted")
	}
	if len(publisher.events) != 1 || publisher.events[0].FestivalName != "Diwali" {
		t.Errorf("published events %+v", publisher.events)
	}
}

func TestSubmitEnquiryContactValidation(t *testing.T) {
	handler := NewSubmitEnquiryHandler(&fakeEnquiryRepo{}, &fakePanchangamRepo{}, &fakeEnquiryPublisher{})

	cases := []struct {
		name string
		cmd  SubmitEnquiryCommand
		want error
	}{
		{"missing type", SubmitEnquiryCommand{Name: "A", Phone: "9876543210"}, domain.ErrTypeRequired},
		{"missing name", SubmitEnquiryCommand{Type: domain.TypeFestival, Phone: "9876543210"}, domain.ErrNameRequired},
		{"missing phone", SubmitEnquiryCommand{Type: domain.TypeFestival, Name: "A"}, domain.ErrPhoneRequired},
		{"short phone", SubmitEnquiryCommand{Type: domain.TypeFestival, Name: "A", Phone: "12345"}, domain.ErrInvalidPhone},
		{"non-numeric phone", SubmitEnquiryCommand{Type: domain.TypeFestival, Name: "A", Phone: "98765abcde"}, domain.ErrInvalidPhone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tc.cmd)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSubmitPanchangamEnquiryValidatesDynamicFields(t *testing.T) {
	panchangams := todaysPanchangam(contentdomain.FormFields{
		{ID: "members", Label: "Family Members", Type: contentdomain.FieldText, Required: true},
		{ID: "meal", Label: "Meal", Type: contentdomain.FieldSelect, Options: "Veg,Non-Veg"},
	})
	repo := &fakeEnquiryRepo{}
	handler := NewSubmitEnquiryHandler(repo, panchangams, &fakeEnquiryPublisher{})

	_, err := handler.Handle(context.Background(), SubmitEnquiryCommand{
		Type:     domain.TypePanchangam,
		Name:     "Sita",
		Phone:    "9876543210",
		FormData: domain.JSONMap{"meal": "Veg"},
	})
	if !errors.Is(err, domain.ErrInvalidFormData) {
		t.Fatalf("missing required field: got %v, want ErrInvalidFormData", err)
	}
	if len(repo.created) != 0 {
		t.Fatal("invalid submission must not persist")
	}

	_, err = handler.Handle(context.Background(), SubmitEnquiryCommand{
		Type:     domain.TypePanchangam,
		Name:     "Sita",
		Phone:    "9876543210",
		FormData: domain.JSONMap{"members": "4", "meal": "Veg"},
	})
	if err != nil {
		t.Fatalf("valid submission: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatal("valid submission must persist")
	}
}

func TestSubmitPanchangamEnquiryWithoutTodaysForm(t *testing.T) {
	// No almanac entry for today means no constraints to enforce
	handler := NewSubmitEnquiryHandler(&fakeEnquiryRepo{}, &fakePanchangamRepo{byDate: map[string]*contentdomain.Panchangam{}}, &fakeEnquiryPublisher{})

	_, err := handler.Handle(context.Background(), SubmitEnquiryCommand{
		Type:     domain.TypePanchangam,
		Name:     "Sita",
		Phone:    "9876543210",
		FormData: domain.JSONMap{"anything": "goes"},
	})
	if err != nil {
		t.Fatalf("submit without form: %v", err)
	}
}

func TestSubmitEnquirySurvivesPublishFailure(t *testing.T) {
	repo := &fakeEnquiryRepo{}
	publisher := &fakeEnquiryPublisher{err: errors.New("broker down")}
	handler := NewSubmitEnquiryHandler(repo, &fakePanchangamRepo{}, publisher)

	_, err := handler.Handle(context.Background(), SubmitEnquiryCommand{
		Type:  domain.TypeFestival,
		Name:  "Ramesh",
		Phone: "9876543210",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatal("the enquiry must stand when the event log is unavailable")
	}
}
