package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	contentdomain "github.com/bookmyseva/storefront/internal/content/domain"
	"github.com/bookmyseva/storefront/internal/enquiry/domain"
	"github.com/bookmyseva/storefront/kafka"
	"github.com/bookmyseva/storefront/pkg/logger"
)

// EnquiryEventPublisher publishes enquiry lifecycle events
type EnquiryEventPublisher interface {
	PublishEnquirySubmitted(ctx context.Context, event kafka.EnquirySubmittedEvent) error
}

// SubmitEnquiryCommand represents the command to submit an event enquiry
type SubmitEnquiryCommand struct {
	Type         string
	FestivalID   string
	FestivalName string
	Name         string
	Email        string
	Phone        string
	FormData     domain.JSONMap
}

// SubmitEnquiryHandler handles enquiry submission. Panchangam enquiries are
// validated against the editor-defined form of today's almanac entry.
type SubmitEnquiryHandler struct {
	enquiries   domain.EnquiryRepository
	panchangams contentdomain.PanchangamRepository
	publisher   EnquiryEventPublisher
}

// NewSubmitEnquiryHandler creates a new submit enquiry handler
func NewSubmitEnquiryHandler(
	enquiries domain.EnquiryRepository,
	panchangams contentdomain.PanchangamRepository,
	publisher EnquiryEventPublisher,
) *SubmitEnquiryHandler {
	return &SubmitEnquiryHandler{
		enquiries:   enquiries,
		panchangams: panchangams,
		publisher:   publisher,
	}
}

// Handle validates and stores the enquiry, then announces it on the event
// log for the notification pipeline
func (h *SubmitEnquiryHandler) Handle(ctx context.Context, cmd SubmitEnquiryCommand) (*domain.Enquiry, error) {
	enquiry := &domain.Enquiry{
		ID:           uuid.New().String(),
		Type:         cmd.Type,
		FestivalID:   cmd.FestivalID,
		FestivalName: cmd.FestivalName,
		Name:         cmd.Name,
		Email:        cmd.Email,
		Phone:        cmd.Phone,
		FormData:     cmd.FormData,
		Status:       domain.StatusNew,
	}

	if err := enquiry.Validate(); err != nil {
		return nil, err
	}

	if cmd.Type == domain.TypePanchangam {
		if err := h.validateDynamicFields(cmd.FormData); err != nil {
			return nil, err
		}
	}

	if err := h.enquiries.Create(enquiry); err != nil {
		return nil, err
	}

	if err := h.publisher.PublishEnquirySubmitted(ctx, kafka.EnquirySubmittedEvent{
		EnquiryID:    enquiry.ID,
		EnquiryType:  enquiry.Type,
		FestivalID:   enquiry.FestivalID,
		FestivalName: enquiry.FestivalName,
		Name:         enquiry.Name,
		Phone:        enquiry.Phone,
	}); err != nil {
		// The enquiry stands; downstream consumers catch up from the log
		logger.Warn(ctx).
			Err(err).
			Str("enquiry_id", enquiry.ID).
			Msg("Failed to publish enquiry event")
	}

	logger.Info(ctx).
		Str("enquiry_id", enquiry.ID).
		Str("type", enquiry.Type).
		Msg("Enquiry submitted")

	return enquiry, nil
}

// validateDynamicFields checks submitted answers against the form definition
// on today's almanac entry. A day without a special event form accepts any
// answers; the editor removed the constraints along with the form.
func (h *SubmitEnquiryHandler) validateDynamicFields(formData domain.JSONMap) error {
	today := time.Now().Format("2006-01-02")
	panchangam, err := h.panchangams.FindByDate(today)
	if err != nil {
		if errors.Is(err, contentdomain.ErrPanchangamNotFound) {
			return nil
		}
		return err
	}

	for _, field := range panchangam.FormFields {
		if err := field.ValidateValue(formData[field.ID]); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidFormData, err)
		}
	}
	return nil
}

// Ensure the kafka publisher satisfies the interface
var _ EnquiryEventPublisher = (*kafka.Publisher)(nil)
