package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bookmyseva/storefront/pkg/auth"
)

// AuthMiddleware validates JWT tokens issued by the OTP sign-in flow
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		// Store customer info in context
		c.Locals("customer_id", claims.CustomerID)
		c.Locals("mobile", claims.Mobile)

		// Forward customer identity to the storefront
		c.Request().Header.Set("X-Customer-ID", claims.CustomerID)
		c.Request().Header.Set("X-Customer-Mobile", claims.Mobile)

		return c.Next()
	}
}

// OptionalAuthMiddleware validates a token if present but doesn't require it
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := auth.ValidateToken(parts[1]); err == nil {
				c.Locals("customer_id", claims.CustomerID)
				c.Locals("mobile", claims.Mobile)
			}
		}

		return c.Next()
	}
}
