package routes

import (
	"databrew/handlers"
	"databrew/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers all API routes. Everything except the root status
// page and the auth entry points requires a session token.
func SetupRoutes(app *fiber.App) {
	app.Get("/", handlers.HandleRoot)

	auth := app.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)
	auth.Post("/signup", handlers.HandleSignup)
	auth.Post("/logout", middleware.TokenRequired, handlers.HandleLogout)
	auth.Get("/verify", middleware.TokenRequired, handlers.HandleVerifyToken)
	auth.Get("/profile", middleware.TokenRequired, handlers.HandleGetProfile)

	sales := app.Group("/sales", middleware.TokenRequired)
	sales.Get("/dashboard-metrics", handlers.HandleGetDashboardMetrics)
	sales.Get("/data", handlers.HandleGetSalesData)
	sales.Get("/best-selling", handlers.HandleGetBestSelling)
	sales.Get("/forecast", handlers.HandleGetForecast)
	sales.Get("/transactions", handlers.HandleListTransactions)
	sales.Get("/weekly-summary", handlers.HandleGetWeeklySummary)

	analytics := app.Group("/analytics", middleware.TokenRequired)
	analytics.Get("/sales", handlers.HandleGetSalesAnalytics)
	analytics.Get("/cash-flow", handlers.HandleGetCashFlow)
	analytics.Get("/inventory-predictions", handlers.HandleGetInventoryPredictions)
	analytics.Get("/customer-feedback", handlers.HandleGetCustomerFeedback)
	analytics.Get("/barista-schedule", handlers.HandleGetBaristaSchedule)

	inventory := app.Group("/inventory", middleware.TokenRequired)
	inventory.Get("/ingredients", handlers.HandleListIngredients)
	inventory.Post("/ingredients", handlers.HandleCreateIngredient)
	inventory.Put("/ingredients/:id", handlers.HandleUpdateIngredient)
	inventory.Delete("/ingredients/:id", handlers.HandleDeleteIngredient)
	inventory.Get("/products", handlers.HandleListProducts)
	inventory.Get("/products/:id/cost-analysis", handlers.HandleGetProductCostAnalysis)

	settings := app.Group("/settings", middleware.TokenRequired)
	settings.Get("/profile", handlers.HandleGetSettingsProfile)
	settings.Put("/profile", handlers.HandleUpdateSettingsProfile)
	settings.Get("/shop", handlers.HandleGetShopSettings)
	settings.Put("/shop", handlers.HandleUpdateShopSettings)
	settings.Get("/notifications", handlers.HandleGetNotificationSettings)
	settings.Put("/notifications", handlers.HandleUpdateNotificationSettings)
	settings.Post("/change-password", handlers.HandleChangePassword)

	app.Get("/ai-insights", middleware.TokenRequired, handlers.HandleGetAIInsights)
	app.Post("/generate-insights", middleware.TokenRequired, handlers.HandleGenerateInsights)
	app.Get("/predictive-insights", middleware.TokenRequired, handlers.HandleGetPredictiveInsights)
	app.Get("/holidays", middleware.TokenRequired, handlers.HandleGetHolidays)
	app.Get("/weather-forecast", middleware.TokenRequired, handlers.HandleGetWeatherForecast)
}
