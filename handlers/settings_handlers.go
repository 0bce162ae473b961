package handlers

import (
	"databrew/config"
	"databrew/middleware"

	"github.com/gofiber/fiber/v2"
)

// HandleGetSettingsProfile returns the profile block of the settings page.
// GET /settings/profile
func HandleGetSettingsProfile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid or expired token"})
	}

	return c.JSON(fiber.Map{
		"full_name": user.FullName,
		"email":     user.Email,
		"role":      user.Role,
		"phone":     "+880 1700-000000",
	})
}

// HandleUpdateSettingsProfile acknowledges profile edits. The admin account
// is configured through the environment, so changes do not persist.
// PUT /settings/profile
func HandleUpdateSettingsProfile(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "message": "Profile is managed via server configuration"})
}

// HandleGetShopSettings returns the shop details block.
// GET /settings/shop
func HandleGetShopSettings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"shop_name":      "DataBrew Coffee",
		"address":        "House 42, Road 11, Banani, Dhaka",
		"opening_time":   "07:00",
		"closing_time":   "22:00",
		"currency":       "BDT",
		"holiday_region": config.AppConfig.HolidayCountry,
	})
}

// shopDetailsRequest is the editable shop-details payload.
type shopDetailsRequest struct {
	ShopName    string `json:"shop_name"`
	Address     string `json:"address"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
	Currency    string `json:"currency"`
}

// HandleUpdateShopSettings acknowledges shop-detail edits and echoes them
// back. Shop details are not persisted server-side yet.
// PUT /settings/shop
func HandleUpdateShopSettings(c *fiber.Ctx) error {
	var req shopDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Shop details updated successfully",
		"shop":    req,
	})
}

// HandleGetNotificationSettings returns the notification toggles.
// GET /settings/notifications
func HandleGetNotificationSettings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"daily_summary_email": true,
		"low_stock_alerts":    true,
		"ai_insight_updates":  true,
		"weekly_report":       false,
	})
}

// notificationPreferencesRequest is the editable notification toggles payload.
type notificationPreferencesRequest struct {
	DailySummaryEmail bool `json:"daily_summary_email"`
	LowStockAlerts    bool `json:"low_stock_alerts"`
	AIInsightUpdates  bool `json:"ai_insight_updates"`
	WeeklyReport      bool `json:"weekly_report"`
}

// HandleUpdateNotificationSettings acknowledges notification preference
// edits and echoes them back.
// PUT /settings/notifications
func HandleUpdateNotificationSettings(c *fiber.Ctx) error {
	var req notificationPreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Notification preferences updated successfully",
		"preferences": req,
	})
}

// HandleChangePassword rejects password changes; the admin password comes
// from the environment.
// POST /settings/change-password
func HandleChangePassword(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": "Password is managed via server configuration"})
}
