package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookmyseva/storefront/internal/customer/domain"
	"github.com/bookmyseva/storefront/pkg/auth"
	"github.com/bookmyseva/storefront/pkg/logger"
)

const otpLength = 4

// SendOTPCommand represents the command to send a one-time passcode.
// IsSignup distinguishes a registration request from a login request; the
// mobile's registration state is checked before any code is generated.
type SendOTPCommand struct {
	Mobile   string
	IsSignup bool
}

// SendOTPHandler handles OTP dispatch
type SendOTPHandler struct {
	customers domain.CustomerRepository
	store     domain.OTPStore
	sender    domain.OTPSender
}

// NewSendOTPHandler creates a new send OTP handler
func NewSendOTPHandler(customers domain.CustomerRepository, store domain.OTPStore, sender domain.OTPSender) *SendOTPHandler {
	return &SendOTPHandler{customers: customers, store: store, sender: sender}
}

// Handle validates the mobile number, checks it against the customer base,
// then generates a code and dispatches it. A login for an unregistered
// mobile fails with ErrCustomerNotFound so the client can switch to
// registration; a signup for a registered mobile fails with ErrMobileTaken.
// A resend inside the cooldown window is rejected without generating a code.
func (h *SendOTPHandler) Handle(ctx context.Context, cmd SendOTPCommand) error {
	if err := domain.ValidateMobile(cmd.Mobile); err != nil {
		return err
	}

	_, err := h.customers.FindByMobile(cmd.Mobile)
	switch {
	case err == nil:
		if cmd.IsSignup {
			return domain.ErrMobileTaken
		}
	case errors.Is(err, domain.ErrCustomerNotFound):
		if !cmd.IsSignup {
			return domain.ErrCustomerNotFound
		}
	default:
		return err
	}

	active, err := h.store.CooldownActive(ctx, cmd.Mobile)
	if err != nil {
		return err
	}
	if active {
		return domain.ErrOTPCooldown
	}

	code, err := auth.GenerateOTP(otpLength)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	hash, err := auth.HashOTP(code)
	if err != nil {
		return fmt.Errorf("failed to hash OTP: %w", err)
	}

	if err := h.store.Save(ctx, cmd.Mobile, hash); err != nil {
		return err
	}
	if err := h.store.StartCooldown(ctx, cmd.Mobile); err != nil {
		return err
	}

	if err := h.sender.Send(ctx, cmd.Mobile, code); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}

	logger.Info(ctx).
		Str("mobile", cmd.Mobile).
		Bool("is_signup", cmd.IsSignup).
		Msg("OTP sent")

	return nil
}
