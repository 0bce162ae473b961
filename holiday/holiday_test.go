package holiday

import (
	"strings"
	"testing"
	"time"

	"databrew/models"

	"github.com/stretchr/testify/assert"
)

func TestFallbackWithinWindow(t *testing.T) {
	holidays := Fallback()

	now := time.Now()
	end := now.AddDate(0, 0, horizonDays)

	for _, h := range holidays {
		date, err := time.Parse("2006-01-02", h.Date)
		assert.NoError(t, err)
		assert.True(t, inWindow(date, now, end), "holiday %s outside window", h.Date)
		assert.Equal(t, h.Name, h.LocalName)
		assert.True(t, h.Global)
	}
}

func TestInWindow(t *testing.T) {
	start := time.Date(2023, 6, 24, 15, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)

	// Window comparison is by calendar day, so the start day itself counts
	// even when the holiday timestamp is midnight.
	assert.True(t, inWindow(time.Date(2023, 6, 24, 0, 0, 0, 0, time.UTC), start, end))
	assert.True(t, inWindow(time.Date(2023, 7, 24, 0, 0, 0, 0, time.UTC), start, end))
	assert.False(t, inWindow(time.Date(2023, 6, 23, 0, 0, 0, 0, time.UTC), start, end))
	assert.False(t, inWindow(time.Date(2023, 7, 25, 0, 0, 0, 0, time.UTC), start, end))
}

func TestFormatForAnalysisEmpty(t *testing.T) {
	assert.Equal(t, "No major holidays in the next 30 days.", FormatForAnalysis(nil))
}

func TestFormatForAnalysis(t *testing.T) {
	date := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
	holidays := []models.Holiday{
		{Date: date, Name: "Victory Day", LocalName: "Victory Day", Type: "Public"},
	}

	text := FormatForAnalysis(holidays)

	assert.True(t, strings.HasPrefix(text, "Upcoming holidays in the next 30 days (1 total):"))
	assert.Contains(t, text, "Victory Day on "+date)
	assert.Contains(t, text, "Public")
}
