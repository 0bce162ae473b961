package main

import (
	"databrew/config"
	"databrew/database"
	"databrew/middleware"
	"databrew/routes"
	"databrew/session"
	"log"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	config.AppConfig.Port = getEnv("PORT", "8000")
	config.AppConfig.AdminEmail = getEnv("ADMIN_EMAIL", "admin@databrew.com")
	config.AppConfig.AdminName = getEnv("ADMIN_NAME", "Admin User")
	config.AppConfig.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	config.AppConfig.WeatherAPIKey = os.Getenv("WEATHER_API_KEY")
	config.AppConfig.WeatherLatitude = getEnv("WEATHER_LATITUDE", "23.7918")
	config.AppConfig.WeatherLongitude = getEnv("WEATHER_LONGITUDE", "90.3943")
	config.AppConfig.HolidayCountry = getEnv("HOLIDAY_COUNTRY", "BD")

	expiry, err := strconv.Atoi(getEnv("TOKEN_EXPIRY_HOURS", "24"))
	if err != nil || expiry <= 0 {
		expiry = 24
	}
	config.AppConfig.TokenExpiryHours = expiry

	if config.AppConfig.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, AI insights will use fallback data")
	}

	// Hash the admin password once at startup. The dashboard has exactly one
	// admin account; there is no user table.
	adminPassword := getEnv("ADMIN_PASSWORD", "admin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	config.AppConfig.AdminPasswordHash = string(hash)

	// Initialize database
	database.Connect(databaseURL)
	defer database.Close()

	// Session store backing the token middleware
	middleware.Sessions = session.NewMemoryStore()

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Printf("DataBrew analytics API listening on :%s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
