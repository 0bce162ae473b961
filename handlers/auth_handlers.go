package handlers

import (
	"log"
	"strings"
	"time"

	"databrew/config"
	"databrew/middleware"
	"databrew/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// adminUser returns the single admin account from configuration. There is
// no user table; the dashboard has exactly one login.
func adminUser() models.User {
	return models.User{
		ID:       1,
		Email:    config.AppConfig.AdminEmail,
		FullName: config.AppConfig.AdminName,
		Role:     "admin",
	}
}

// HandleLogin authenticates the admin account and issues a session token.
func HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != strings.ToLower(config.AppConfig.AdminEmail) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid email or password"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(config.AppConfig.AdminPasswordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid email or password"})
	}

	user := adminUser()
	ttl := time.Duration(config.AppConfig.TokenExpiryHours) * time.Hour
	token := middleware.Sessions.Create(user, ttl)

	log.Printf("Admin login successful for %s", user.Email)

	return c.JSON(models.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

// HandleSignup always rejects registration; only the admin account exists.
func HandleSignup(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": "Registration is not allowed. Please use admin credentials."})
}

// HandleLogout invalidates the caller's session token.
func HandleLogout(c *fiber.Ctx) error {
	middleware.Sessions.Delete(middleware.CurrentToken(c))
	return c.JSON(fiber.Map{"success": true, "message": "Logged out successfully"})
}

// HandleVerifyToken confirms the caller's token is still valid.
func HandleVerifyToken(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid or expired token"})
	}
	return c.JSON(fiber.Map{"valid": true, "user": user})
}

// HandleGetProfile returns the authenticated admin profile.
func HandleGetProfile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid or expired token"})
	}
	return c.JSON(user)
}
