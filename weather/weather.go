package weather

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"databrew/config"
	"databrew/models"

	"github.com/gofiber/fiber/v2"
)

const baseURL = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline"

type timelineDay struct {
	Datetime    string  `json:"datetime"`
	Conditions  string  `json:"conditions"`
	TempMax     float64 `json:"tempmax"`
	TempMin     float64 `json:"tempmin"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windspeed"`
	Precip      float64 `json:"precip"`
	PrecipProb  float64 `json:"precipprob"`
	Description string  `json:"description"`
}

type timelineResponse struct {
	Days []timelineDay `json:"days"`
}

// FetchForecast returns the daily forecast for the shop's location for the
// next `days` days from the Visual Crossing timeline API. Any failure
// degrades to the static fallback forecast so insight generation never
// blocks on the weather service.
func FetchForecast(days int) []models.WeatherDay {
	apiKey := config.AppConfig.WeatherAPIKey
	if apiKey == "" {
		return FallbackForecast(days)
	}

	start := time.Now()
	end := start.AddDate(0, 0, days)

	url := fmt.Sprintf("%s/%s,%s/%s/%s?unitGroup=metric&key=%s&contentType=json&include=days",
		baseURL,
		config.AppConfig.WeatherLatitude, config.AppConfig.WeatherLongitude,
		start.Format("2006-01-02"), end.Format("2006-01-02"),
		apiKey)

	agent := fiber.Get(url)
	agent.Timeout(10 * time.Second)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		log.Printf("Error fetching weather data: %v", errs[0])
		return FallbackForecast(days)
	}
	if code != fiber.StatusOK {
		log.Printf("Weather API error: status %d", code)
		return FallbackForecast(days)
	}

	var data timelineResponse
	if err := json.Unmarshal(body, &data); err != nil {
		log.Printf("Error parsing weather response: %v", err)
		return FallbackForecast(days)
	}

	forecast := make([]models.WeatherDay, 0, len(data.Days))
	for _, day := range data.Days {
		forecast = append(forecast, models.WeatherDay{
			Date:            day.Datetime,
			Conditions:      day.Conditions,
			TempMax:         day.TempMax,
			TempMin:         day.TempMin,
			Humidity:        day.Humidity,
			WindSpeed:       day.WindSpeed,
			Precipitation:   day.Precip,
			PrecipitationPr: day.PrecipProb,
			Description:     day.Description,
		})
	}

	if len(forecast) == 0 {
		return FallbackForecast(days)
	}
	return forecast
}

// FallbackForecast returns a static forecast used when the weather API is
// unreachable or unconfigured.
func FallbackForecast(days int) []models.WeatherDay {
	today := time.Now()
	forecast := make([]models.WeatherDay, 0, days)

	for i := 0; i < days; i++ {
		forecast = append(forecast, models.WeatherDay{
			Date:            today.AddDate(0, 0, i).Format("2006-01-02"),
			Conditions:      "Partly cloudy",
			TempMax:         30,
			TempMin:         22,
			Humidity:        65,
			WindSpeed:       15,
			Precipitation:   0,
			PrecipitationPr: 20,
			Description:     "Weather data unavailable",
		})
	}
	return forecast
}

// FormatForAnalysis summarizes a forecast as plain text for the insight
// prompt: rainy/hot day counts plus the first three days in detail.
func FormatForAnalysis(forecast []models.WeatherDay) string {
	if len(forecast) == 0 {
		return "No weather data."
	}

	rainyDays := 0
	hotDays := 0
	for _, day := range forecast {
		if day.Precipitation > 5 {
			rainyDays++
		}
		if day.TempMax > 35 {
			hotDays++
		}
	}

	text := fmt.Sprintf("Weather (%d days): %d rainy, %d hot days\n", len(forecast), rainyDays, hotDays)

	detail := forecast
	if len(detail) > 3 {
		detail = detail[:3]
	}
	for _, day := range detail {
		text += fmt.Sprintf("%s: %s, %.0f°C, %.0fmm\n", day.Date, day.Conditions, day.TempMax, day.Precipitation)
	}

	return text
}
