package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bookmyseva/storefront/kafka"
	"github.com/bookmyseva/storefront/pkg/logger"
	"github.com/bookmyseva/storefront/pkg/tracing"
)

// The notifier tails the event log and dispatches customer notifications.
// Delivery here is a structured log line; swapping in an SMS or email
// provider only touches the handler bodies.
func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "notifier-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Msg("Starting notifier service")

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}

	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	groupID := getEnv("KAFKA_GROUP_ID", "notifier")
	topics := []string{kafka.TopicBookingCreated, kafka.TopicEnquirySubmitted}

	consumer, err := kafka.NewConsumer(brokers, groupID, topics)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize Kafka consumer")
	}

	consumer.RegisterHandler(kafka.EventTypeBookingCreated, handleBookingCreated)
	consumer.RegisterHandler(kafka.EventTypeEnquirySubmitted, handleEnquirySubmitted)

	ctx, cancel := context.WithCancel(context.Background())
	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down notifier...")
	cancel()
	if err := consumer.Close(); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to close consumer")
	}
	if err := tracing.Shutdown(context.Background(), tp); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
	}
}

func handleBookingCreated(ctx context.Context, payload []byte) error {
	event, err := kafka.DecodeBookingCreated(payload)
	if err != nil {
		return err
	}

	logger.Info(ctx).
		Str("booking_id", event.BookingID).
		Str("customer_id", event.CustomerID).
		Str("kind", event.Kind).
		Str("item", event.ItemTitle).
		Str("payment_mode", event.PaymentMode).
		Int("amount_to_pay", event.AmountToPay).
		Msg("Booking confirmation notification sent")
	return nil
}

func handleEnquirySubmitted(ctx context.Context, payload []byte) error {
	event, err := kafka.DecodeEnquirySubmitted(payload)
	if err != nil {
		return err
	}

	logger.Info(ctx).
		Str("enquiry_id", event.EnquiryID).
		Str("type", event.EnquiryType).
		Str("festival", event.FestivalName).
		Str("phone", event.Phone).
		Msg("Enquiry acknowledgement notification sent")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
