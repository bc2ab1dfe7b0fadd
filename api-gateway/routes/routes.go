package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bookmyseva/storefront/api-gateway/config"
	"github.com/bookmyseva/storefront/api-gateway/health"
	"github.com/bookmyseva/storefront/api-gateway/middleware"
	"github.com/bookmyseva/storefront/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	ServiceName string
	Description string
	RequireAuth bool
}

// Routes holds all route definitions. Order matters: /v1/bookings/quote
// must register before the authenticated /v1/bookings group so the wizard
// can price a cart before sign-in.
var Routes = []RouteDefinition{
	// Public routes (no auth required)
	{
		Prefix:      "/v1/customer-auth/send-otp",
		ServiceName: "storefront",
		Description: "OTP dispatch",
	},
	{
		Prefix:      "/v1/customer-auth/verify-otp",
		ServiceName: "storefront",
		Description: "OTP verification (login and registration)",
	},
	{
		Prefix:      "/v1/poojas",
		ServiceName: "storefront",
		Description: "Pooja catalog",
	},
	{
		Prefix:      "/v1/pooja-kits",
		ServiceName: "storefront",
		Description: "Kit catalog",
	},
	{
		Prefix:      "/v1/checkout-options",
		ServiceName: "storefront",
		Description: "Versions, add-ons and time slots",
	},
	{
		Prefix:      "/v1/bookings/quote",
		ServiceName: "storefront",
		Description: "Price quoting",
	},
	{
		Prefix:      "/v1/blogs",
		ServiceName: "storefront",
		Description: "Blog posts",
	},
	{
		Prefix:      "/v1/categories",
		ServiceName: "storefront",
		Description: "Blog categories",
	},
	{
		Prefix:      "/v1/content",
		ServiceName: "storefront",
		Description: "About, gita slokas and panchangam",
	},
	{
		Prefix:      "/v1/enquiries",
		ServiceName: "storefront",
		Description: "Festival and special event enquiries",
	},

	// Authenticated routes
	{
		Prefix:      "/v1/customer-auth/profile",
		ServiceName: "storefront",
		Description: "Customer profile",
		RequireAuth: true,
	},
	{
		Prefix:      "/v1/customer-auth/addresses",
		ServiceName: "storefront",
		Description: "Address book",
		RequireAuth: true,
	},
	{
		Prefix:      "/v1/favorites",
		ServiceName: "storefront",
		Description: "Wishlist",
		RequireAuth: true,
	},
	{
		Prefix:      "/v1/bookings",
		ServiceName: "storefront",
		Description: "Checkout and booking history",
		RequireAuth: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, cbManager *middleware.CircuitBreakerManager) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks the storefront replicas)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllInstances(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed instance health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		return c.JSON(healthChecker.CheckAllInstances(ctx))
	})

	// Circuit breaker and load balancer stats
	app.Get("/gateway/stats", func(c *fiber.Ctx) error {
		lbStats := make(map[string]interface{})
		for name, lb := range reverseProxy.LoadBalancers() {
			lbStats[name] = lb.Stats()
		}

		return c.JSON(fiber.Map{
			"circuit_breakers": cbManager.GetAllStats(),
			"load_balancers":   lbStats,
		})
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Storefront Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Register all service routes
	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	var middlewares []fiber.Handler
	if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	}

	// Create a route group for this prefix
	group := app.Group(route.Prefix, middlewares...)

	// Handle all HTTP methods with wildcard path
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}
