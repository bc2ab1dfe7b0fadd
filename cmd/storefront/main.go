package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/bookmyseva/storefront/internal/catalog"
	catalogdomain "github.com/bookmyseva/storefront/internal/catalog/domain"
	catalogrepo "github.com/bookmyseva/storefront/internal/catalog/repository"
	"github.com/bookmyseva/storefront/internal/checkout"
	checkoutdomain "github.com/bookmyseva/storefront/internal/checkout/domain"
	"github.com/bookmyseva/storefront/internal/content"
	contentdomain "github.com/bookmyseva/storefront/internal/content/domain"
	"github.com/bookmyseva/storefront/internal/customer"
	customerhttp "github.com/bookmyseva/storefront/internal/customer/delivery/http"
	customerdomain "github.com/bookmyseva/storefront/internal/customer/domain"
	"github.com/bookmyseva/storefront/internal/enquiry"
	enquirydomain "github.com/bookmyseva/storefront/internal/enquiry/domain"
	"github.com/bookmyseva/storefront/internal/favorites"
	favoritesdomain "github.com/bookmyseva/storefront/internal/favorites/domain"
	"github.com/bookmyseva/storefront/kafka"
	"github.com/bookmyseva/storefront/pkg/database"
	"github.com/bookmyseva/storefront/pkg/logger"
	"github.com/bookmyseva/storefront/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "storefront-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting storefront service")

	// Initialize tracing
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "storefrontdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&customerdomain.Customer{},
		&customerdomain.Address{},
		&catalogdomain.Pooja{},
		&catalogdomain.Kit{},
		&favoritesdomain.Favorite{},
		&checkoutdomain.Booking{},
		&contentdomain.Blog{},
		&contentdomain.Category{},
		&contentdomain.Panchangam{},
		&contentdomain.Page{},
		&contentdomain.GitaSloka{},
		&enquirydomain.Enquiry{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Seed the catalog
	if err := catalogrepo.Seed(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed catalog")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Connect to Redis for the OTP store
	redisClient := redis.NewClient(&redis.Options{
		Addr: getEnv("REDIS_ADDR", "localhost:6379"),
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Initialize Kafka publisher
	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	publisher, err := kafka.NewPublisher(brokers)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize Kafka publisher")
	}
	defer publisher.Close()

	// Initialize handlers with Wire DI
	customerHandler, err := customer.InitializeHTTPHandler(db, redisClient)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize customer handler")
	}

	catalogHandler, err := catalog.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}

	favoritesHandler, err := favorites.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize favorites handler")
	}

	checkoutHandler, err := checkout.InitializeHTTPHandler(
		db,
		catalog.ProvidePoojaRepository(db),
		catalog.ProvideKitRepository(db),
		customer.ProvideAddressRepository(db),
		publisher,
	)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize checkout handler")
	}

	contentHandler, err := content.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize content handler")
	}

	enquiryHandler, err := enquiry.InitializeHTTPHandler(
		db,
		content.ProvidePanchangamRepository(db),
		publisher,
	)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize enquiry handler")
	}

	logger.Logger.Info().Msg("Handlers initialized")

	// Setup router
	router := mux.NewRouter()
	customerHandler.RegisterRoutes(router)
	catalogHandler.RegisterRoutes(router)
	favoritesHandler.RegisterRoutes(router)
	checkoutHandler.RegisterRoutes(router)
	contentHandler.RegisterRoutes(router)
	enquiryHandler.RegisterRoutes(router)

	// Health check endpoint
	customerHandler.RegisterHealthCheck(router, sqlDB)

	// Swagger UI
	customerhttp.RegisterSwaggerDocs(router, httpSwagger.WrapHandler)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	logger.Logger.Info().
		Str("port", httpPort).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/index.html").
		Msg("HTTP server started")

	// Wrap the whole router so every request carries a server span
	handler := otelhttp.NewHandler(c.Handler(router), "storefront-http")

	go func() {
		if err := http.ListenAndServe(":"+httpPort, handler); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
