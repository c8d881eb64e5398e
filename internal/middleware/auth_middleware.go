package middleware

import (
	"strings"

	"go-platform-admin-ws/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by RequireAuth
const (
	LocalUserID     = "user_id"
	LocalPlatformID = "platform_id"
	LocalEmail      = "email"
)

// RequireAuth validates the bearer token and attaches the resolved
// principal (user and platform id) to the request. Token issuance happens
// in the identity service; this only consumes its claims.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals(LocalUserID, claims.UserID.String())
		c.Locals(LocalPlatformID, claims.PlatformID.String())
		c.Locals(LocalEmail, claims.Email)

		return c.Next()
	}
}

// RequirePlatformParam rejects requests whose :id path parameter names a
// platform other than the principal's own.
func RequirePlatformParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principalPlatform, _ := c.Locals(LocalPlatformID).(string)
		if c.Params("id") != principalPlatform {
			return c.Status(403).JSON(fiber.Map{"error": "Forbidden: platform mismatch"})
		}
		return c.Next()
	}
}
