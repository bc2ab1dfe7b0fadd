package sms

import (
	"context"

	"github.com/bookmyseva/storefront/pkg/logger"
)

// LogSender writes the passcode to the service log instead of dispatching an
// SMS. It is the default sender for local and staging environments where no
// gateway credentials are configured.
type LogSender struct{}

// NewLogSender creates a new logging OTP sender
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the code for the given mobile number
func (s *LogSender) Send(ctx context.Context, mobile, code string) error {
	logger.Info(ctx).
		Str("mobile", mobile).
		Str("code", code).
		Msg("OTP dispatched (log sender)")
	return nil
}
