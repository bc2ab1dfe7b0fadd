package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bookmyseva/storefront/internal/customer/domain"
	"github.com/bookmyseva/storefront/pkg/auth"
	"github.com/bookmyseva/storefront/pkg/logger"
)

// VerifyOTPCommand represents the command to verify a passcode. Name and
// Email are only consulted on the registration path.
type VerifyOTPCommand struct {
	Mobile string
	Code   string
	Name   string
	Email  string
}

// VerifyOTPResponse represents the response after a successful verification
type VerifyOTPResponse struct {
	Token    string           `json:"token"`
	Customer *domain.Customer `json:"customer"`
}

// VerifyOTPHandler handles OTP verification for both login and registration
type VerifyOTPHandler struct {
	repo  domain.CustomerRepository
	store domain.OTPStore
}

// NewVerifyOTPHandler creates a new verify OTP handler
func NewVerifyOTPHandler(repo domain.CustomerRepository, store domain.OTPStore) *VerifyOTPHandler {
	return &VerifyOTPHandler{repo: repo, store: store}
}

// Handle checks the code against the stored hash and issues a session token.
// A login for an unknown mobile fails with ErrCustomerNotFound; the same
// request carrying a name registers the customer instead. A consumed code is
// deleted and cannot be replayed.
func (h *VerifyOTPHandler) Handle(ctx context.Context, cmd VerifyOTPCommand) (*VerifyOTPResponse, error) {
	if err := domain.ValidateMobile(cmd.Mobile); err != nil {
		return nil, err
	}
	if cmd.Code == "" {
		return nil, fmt.Errorf("%w: otp is required", domain.ErrValidation)
	}

	hash, err := h.store.Get(ctx, cmd.Mobile)
	if err != nil {
		return nil, err
	}
	if !auth.CheckOTP(hash, cmd.Code) {
		return nil, domain.ErrInvalidOTP
	}

	customer, err := h.repo.FindByMobile(cmd.Mobile)
	if err != nil {
		if err != domain.ErrCustomerNotFound {
			return nil, err
		}
		if cmd.Name == "" {
			return nil, domain.ErrCustomerNotFound
		}
		customer = &domain.Customer{
			ID:     uuid.New().String(),
			Name:   cmd.Name,
			Email:  cmd.Email,
			Mobile: cmd.Mobile,
		}
		if err := h.repo.Create(customer); err != nil {
			return nil, err
		}
		logger.Info(ctx).
			Str("customer_id", customer.ID).
			Str("mobile", customer.Mobile).
			Msg("Customer registered")
	}

	// One code, one session
	if err := h.store.Delete(ctx, cmd.Mobile); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("mobile", cmd.Mobile).
			Msg("Failed to delete consumed OTP")
	}

	token, err := auth.GenerateToken(customer.ID, customer.Mobile, customer.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &VerifyOTPResponse{
		Token:    token,
		Customer: customer,
	}, nil
}
