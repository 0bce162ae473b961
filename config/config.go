package config

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	Port              string
	AdminEmail        string
	AdminName         string
	AdminPasswordHash string
	GeminiAPIKey      string
	WeatherAPIKey     string
	WeatherLatitude   string
	WeatherLongitude  string
	HolidayCountry    string
	TokenExpiryHours  int
}

// AppConfig holds the application-wide configuration
var AppConfig Config
