package handlers

import "github.com/gofiber/fiber/v2"

// HandleRoot describes the API for anyone hitting the bare origin.
// GET /
func HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    "DataBrew Coffee Shop Analytics API",
		"status":  "running",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"auth":      "/auth/login, /auth/logout, /auth/verify, /auth/profile",
			"sales":     "/sales/dashboard-metrics, /sales/data, /sales/best-selling, /sales/forecast, /sales/transactions, /sales/weekly-summary",
			"analytics": "/analytics/sales, /analytics/cash-flow, /analytics/inventory-predictions, /analytics/customer-feedback, /analytics/barista-schedule",
			"inventory": "/inventory/ingredients, /inventory/products",
			"insights":  "/ai-insights, /generate-insights, /predictive-insights, /holidays, /weather-forecast",
			"settings":  "/settings/profile, /settings/shop, /settings/notifications",
		},
	})
}
