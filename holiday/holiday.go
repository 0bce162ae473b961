package holiday

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"databrew/models"

	"github.com/gofiber/fiber/v2"
)

const baseURL = "https://date.nager.at/api/v3/PublicHolidays"

// horizonDays is how far ahead holidays are reported.
const horizonDays = 30

type nagerHoliday struct {
	Date      string   `json:"date"`
	LocalName string   `json:"localName"`
	Name      string   `json:"name"`
	Global    bool     `json:"global"`
	Types     []string `json:"types"`
}

// Next30Days returns the public holidays within the next 30 days for the
// given ISO 3166-1 alpha-2 country code. When the horizon crosses into the
// next year both years are fetched. Failures degrade to a static list of
// common holidays.
func Next30Days(countryCode string) []models.Holiday {
	now := time.Now()
	end := now.AddDate(0, 0, horizonDays)

	raw, err := fetchYear(now.Year(), countryCode)
	if err != nil {
		log.Printf("Error fetching holidays: %v", err)
		return Fallback()
	}

	if end.Year() > now.Year() {
		next, err := fetchYear(end.Year(), countryCode)
		if err != nil {
			log.Printf("Error fetching next year's holidays: %v", err)
		} else {
			raw = append(raw, next...)
		}
	}

	var holidays []models.Holiday
	for _, h := range raw {
		date, err := time.Parse("2006-01-02", h.Date)
		if err != nil {
			continue
		}
		if !inWindow(date, now, end) {
			continue
		}

		htype := "Public"
		if len(h.Types) > 0 {
			htype = h.Types[0]
		}
		localName := h.LocalName
		if localName == "" {
			localName = h.Name
		}

		holidays = append(holidays, models.Holiday{
			Date:      h.Date,
			Name:      h.Name,
			LocalName: localName,
			Type:      htype,
			Global:    h.Global,
		})
	}

	return holidays
}

func fetchYear(year int, countryCode string) ([]nagerHoliday, error) {
	url := fmt.Sprintf("%s/%d/%s", baseURL, year, countryCode)

	agent := fiber.Get(url)
	agent.Timeout(10 * time.Second)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, errs[0]
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d", code)
	}

	var holidays []nagerHoliday
	if err := json.Unmarshal(body, &holidays); err != nil {
		return nil, fmt.Errorf("parsing holiday response: %w", err)
	}
	return holidays, nil
}

func inWindow(date, start, end time.Time) bool {
	day := date.Format("2006-01-02")
	return day >= start.Format("2006-01-02") && day <= end.Format("2006-01-02")
}

// Fallback returns the common holidays within the next 30 days when the
// holiday API is unavailable.
func Fallback() []models.Holiday {
	now := time.Now()
	end := now.AddDate(0, 0, horizonDays)
	year := now.Year()

	common := []models.Holiday{
		{Date: fmt.Sprintf("%d-01-01", year), Name: "New Year's Day", Type: "Public"},
		{Date: fmt.Sprintf("%d-02-14", year), Name: "Valentine's Day", Type: "Observance"},
		{Date: fmt.Sprintf("%d-03-08", year), Name: "International Women's Day", Type: "Observance"},
		{Date: fmt.Sprintf("%d-04-14", year), Name: "Bengali New Year", Type: "Public"},
		{Date: fmt.Sprintf("%d-05-01", year), Name: "Labour Day", Type: "Public"},
		{Date: fmt.Sprintf("%d-08-15", year), Name: "Independence Day", Type: "Public"},
		{Date: fmt.Sprintf("%d-12-16", year), Name: "Victory Day", Type: "Public"},
		{Date: fmt.Sprintf("%d-12-25", year), Name: "Christmas Day", Type: "Public"},
		{Date: fmt.Sprintf("%d-12-31", year), Name: "New Year's Eve", Type: "Observance"},
	}

	var filtered []models.Holiday
	for _, h := range common {
		date, err := time.Parse("2006-01-02", h.Date)
		if err != nil || !inWindow(date, now, end) {
			continue
		}
		h.LocalName = h.Name
		h.Global = true
		filtered = append(filtered, h)
	}
	return filtered
}

// FormatForAnalysis summarizes upcoming holidays as plain text for the
// insight prompt.
func FormatForAnalysis(holidays []models.Holiday) string {
	if len(holidays) == 0 {
		return "No major holidays in the next 30 days."
	}

	text := fmt.Sprintf("Upcoming holidays in the next 30 days (%d total):\n", len(holidays))
	today := time.Now()

	for _, h := range holidays {
		date, err := time.Parse("2006-01-02", h.Date)
		if err != nil {
			continue
		}
		daysUntil := int(date.Sub(today).Hours() / 24)
		text += fmt.Sprintf("- %s on %s (%d days from now, %s)\n", h.Name, h.Date, daysUntil, h.Type)
	}

	return text
}
