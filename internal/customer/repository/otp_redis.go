package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bookmyseva/storefront/internal/customer/domain"
)

const (
	otpKeyPrefix      = "otp:"
	otpCooldownPrefix = "otp:cooldown:"
	otpTTL            = 5 * time.Minute
	otpResendCooldown = 30 * time.Second
)

// RedisOTPStore keeps bcrypt-hashed one-time passcodes in Redis. The key TTL
// doubles as the code's expiry, so an expired code simply reads as missing.
type RedisOTPStore struct {
	client *redis.Client
}

// NewRedisOTPStore creates a new Redis-backed OTP store
func NewRedisOTPStore(client *redis.Client) *RedisOTPStore {
	return &RedisOTPStore{client: client}
}

// Save stores the hashed code for a mobile number
func (s *RedisOTPStore) Save(ctx context.Context, mobile, codeHash string) error {
	if err := s.client.Set(ctx, otpKeyPrefix+mobile, codeHash, otpTTL).Err(); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	return nil
}

// Get returns the stored hash, or ErrInvalidOTP when none exists
func (s *RedisOTPStore) Get(ctx context.Context, mobile string) (string, error) {
	hash, err := s.client.Get(ctx, otpKeyPrefix+mobile).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidOTP
		}
		return "", fmt.Errorf("failed to read OTP: %w", err)
	}
	return hash, nil
}

// Delete removes a consumed code so it cannot be replayed
func (s *RedisOTPStore) Delete(ctx context.Context, mobile string) error {
	if err := s.client.Del(ctx, otpKeyPrefix+mobile).Err(); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}

// StartCooldown arms the resend window for a mobile number
func (s *RedisOTPStore) StartCooldown(ctx context.Context, mobile string) error {
	if err := s.client.Set(ctx, otpCooldownPrefix+mobile, "1", otpResendCooldown).Err(); err != nil {
		return fmt.Errorf("failed to set OTP cooldown: %w", err)
	}
	return nil
}

// CooldownActive reports whether a resend is still blocked
func (s *RedisOTPStore) CooldownActive(ctx context.Context, mobile string) (bool, error) {
	exists, err := s.client.Exists(ctx, otpCooldownPrefix+mobile).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check OTP cooldown: %w", err)
	}
	return exists > 0, nil
}
