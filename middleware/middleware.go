package middleware

import (
	"strings"

	"databrew/models"
	"databrew/session"

	"github.com/gofiber/fiber/v2"
)

// Sessions is the store backing TokenRequired. Set in main before the
// routes are registered.
var Sessions session.Store

// TokenRequired validates the bearer token from the Authorization header
// and stores the authenticated user on the request context.
func TokenRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Missing authorization header"})
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid token format"})
	}

	user, ok := Sessions.Get(parts[1])
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid or expired token"})
	}

	c.Locals("user", user)
	c.Locals("token", parts[1])

	return c.Next()
}

// CurrentUser returns the user stored by TokenRequired.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals("user").(models.User)
	return user, ok
}

// CurrentToken returns the bearer token stored by TokenRequired.
func CurrentToken(c *fiber.Ctx) string {
	token, _ := c.Locals("token").(string)
	return token
}
