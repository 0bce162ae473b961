package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"databrew/analytics"
	"databrew/config"
	"databrew/database"
	"databrew/holiday"
	"databrew/models"
	"databrew/weather"

	"github.com/gofiber/fiber/v2"
)

// HandleGetPredictiveInsights combines the rolling sales summary with the
// weather forecast and upcoming holidays, then asks Gemini for a forward-
// looking report.
// GET /predictive-insights
func HandleGetPredictiveInsights(c *fiber.Ctx) error {
	daily, err := fetchDailyAggregates(60)
	if err != nil {
		log.Printf("Error fetching daily aggregates: %v", err)
		daily = nil
	}

	summary := analytics.SummarizeDailySales(daily, 3, 3, 5, 2)
	forecast := weather.FetchForecast(7)
	holidays := holiday.Next30Days(config.AppConfig.HolidayCountry)

	insights, err := requestPredictiveInsights(summary, forecast, holidays)
	if err != nil {
		log.Printf("Predictive insight generation failed, using fallback: %v", err)
		insights = FallbackPredictiveInsights()
	}

	insights.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	insights.DataSources = models.DataSources{
		SalesDays:     summary.DataPoints,
		WeatherDays:   len(forecast),
		HolidaysCount: len(holidays),
	}

	return c.JSON(insights)
}

// HandleGetHolidays returns upcoming public holidays within the next N days.
// GET /holidays?days=N
func HandleGetHolidays(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	if days <= 0 || days > 30 {
		days = 30
	}

	holidays := holiday.Next30Days(config.AppConfig.HolidayCountry)

	if days < 30 {
		end := time.Now().AddDate(0, 0, days).Format("2006-01-02")
		filtered := make([]models.Holiday, 0, len(holidays))
		for _, h := range holidays {
			if h.Date <= end {
				filtered = append(filtered, h)
			}
		}
		holidays = filtered
	}

	return c.JSON(fiber.Map{
		"holidays":    holidays,
		"count":       len(holidays),
		"period_days": days,
	})
}

// HandleGetWeatherForecast returns the raw weather forecast for the next N
// days.
// GET /weather-forecast?days=N
func HandleGetWeatherForecast(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days <= 0 || days > 30 {
		days = 7
	}

	forecast := weather.FetchForecast(days)
	if len(forecast) > days {
		forecast = forecast[:days]
	}

	return c.JSON(fiber.Map{
		"forecast":    forecast,
		"count":       len(forecast),
		"period_days": days,
	})
}

// fetchDailyAggregates returns per-day sales rollups for the last N days,
// newest first.
func fetchDailyAggregates(days int) ([]models.DailyAggregate, error) {
	db := database.GetDB()
	ctx := context.Background()

	query := `
		SELECT transaction_at::date AS date,
		       to_char(transaction_at::date, 'FMDay') AS day_of_week,
		       COALESCE(SUM(quantity * unit_price), 0) AS total_sales,
		       COUNT(DISTINCT transaction_id) AS order_count,
		       COALESCE(SUM(quantity), 0) AS items_sold
		FROM transactions
		WHERE transaction_at::date >= CURRENT_DATE - $1::int
		GROUP BY transaction_at::date
		ORDER BY date DESC
	`
	rows, err := db.Query(ctx, query, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aggregates []models.DailyAggregate
	for rows.Next() {
		var agg models.DailyAggregate
		if err := rows.Scan(&agg.Date, &agg.DayOfWeek, &agg.TotalSales, &agg.OrderCount, &agg.ItemsSold); err != nil {
			log.Printf("Error scanning daily aggregate: %v", err)
			continue
		}
		if agg.OrderCount > 0 {
			agg.AvgOrderValue = agg.TotalSales / float64(agg.OrderCount)
		}
		aggregates = append(aggregates, agg)
	}

	return aggregates, nil
}

// formatSalesForAnalysis renders the rolling summary for the prompt.
func formatSalesForAnalysis(s models.RollingSalesSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Sales summary (%d days of data):\n", s.DataPoints)
	fmt.Fprintf(&b, "- Total sales: %.2f, average daily sales: %.2f\n", s.TotalSales, s.AvgDailySales)
	fmt.Fprintf(&b, "- Total orders: %d, average orders per day: %.1f\n", s.TotalOrders, s.AvgOrdersPerDay)
	fmt.Fprintf(&b, "- Recent trend: %s (%.1f%%)\n", s.Trend, s.TrendPercentage)

	if len(s.BestDays) > 0 {
		b.WriteString("- Best days:")
		for _, d := range s.BestDays {
			fmt.Fprintf(&b, " %s (%.2f)", d.Date.Format("2006-01-02"), d.TotalSales)
		}
		b.WriteString("\n")
	}
	if len(s.WorstDays) > 0 {
		b.WriteString("- Worst days:")
		for _, d := range s.WorstDays {
			fmt.Fprintf(&b, " %s (%.2f)", d.Date.Format("2006-01-02"), d.TotalSales)
		}
		b.WriteString("\n")
	}
	if len(s.DayOfWeekBreakdown) > 0 {
		b.WriteString("- Day-of-week averages:")
		for day, stats := range s.DayOfWeekBreakdown {
			fmt.Fprintf(&b, " %s=%.0f", day, stats.AvgSales)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// buildPredictivePrompt assembles the full predictive analysis prompt.
func buildPredictivePrompt(salesText, weatherText, holidayText string) string {
	var b strings.Builder

	b.WriteString("You are a predictive analytics expert for a coffee shop. Analyze the following data and predict how weather and holidays will impact sales over the next 7-30 days.\n\n")
	b.WriteString(salesText)
	b.WriteString("\n")
	b.WriteString(weatherText)
	b.WriteString("\n")
	b.WriteString(holidayText)
	b.WriteString("\n\nRespond with ONLY a JSON object, no markdown, in this exact format:\n")
	b.WriteString(`{
  "weather_insights": [{"date": "YYYY-MM-DD", "impact": "positive|negative|neutral", "prediction": "...", "recommendation": "...", "confidence": "high|medium|low"}],
  "holiday_insights": [{"holiday_name": "...", "date": "YYYY-MM-DD", "expected_sales_increase": "...", "recommendation": "...", "product_suggestions": ["..."]}],
  "abnormalities": [{"date": "YYYY-MM-DD", "type": "risk|opportunity", "description": "...", "impact": "...", "mitigation": "..."}],
  "actionable_recommendations": [{"category": "inventory|staffing|marketing|operations", "priority": "high|medium|low", "recommendation": "...", "expected_outcome": "...", "timeframe": "..."}],
  "summary": {"overall_outlook": "...", "total_predicted_impact": "...", "key_dates_to_watch": ["YYYY-MM-DD"], "top_3_priorities": ["..."]}
}`)

	return b.String()
}

// requestPredictiveInsights runs the Gemini call and parses its JSON answer.
func requestPredictiveInsights(summary models.RollingSalesSummary, forecast []models.WeatherDay, holidays []models.Holiday) (models.PredictiveInsights, error) {
	var insights models.PredictiveInsights

	prompt := buildPredictivePrompt(
		formatSalesForAnalysis(summary),
		weather.FormatForAnalysis(forecast),
		holiday.FormatForAnalysis(holidays),
	)

	raw, err := geminiGenerate(prompt)
	if err != nil {
		return insights, err
	}

	jsonText := extractJSON(raw)
	if jsonText == "" {
		return insights, errors.New("no JSON object in model response")
	}

	if err := json.Unmarshal([]byte(jsonText), &insights); err != nil {
		return insights, fmt.Errorf("parsing predictive insights: %w", err)
	}

	if insights.Summary.OverallOutlook == "" && len(insights.ActionableRecommendations) == 0 {
		return insights, errors.New("model response missing summary and recommendations")
	}

	return insights, nil
}

// FallbackPredictiveInsights is returned when the AI service is unavailable.
func FallbackPredictiveInsights() models.PredictiveInsights {
	today := time.Now().Format("2006-01-02")

	return models.PredictiveInsights{
		WeatherInsights: []models.WeatherInsight{
			{
				Date:           today,
				Impact:         "neutral",
				Prediction:     "Typical weather expected; sales should follow the recent daily average.",
				Recommendation: "Maintain standard inventory and staffing levels.",
				Confidence:     "low",
			},
		},
		HolidayInsights: []models.HolidayInsight{},
		Abnormalities:   []models.Abnormality{},
		ActionableRecommendations: []models.Recommendation{
			{
				Category:        "operations",
				Priority:        "medium",
				Recommendation:  "Review daily sales reports manually while predictive analysis is unavailable.",
				ExpectedOutcome: "Early detection of demand shifts.",
				Timeframe:       "this week",
			},
		},
		Summary: models.OutlookSummary{
			OverallOutlook:       "stable",
			TotalPredictedImpact: "neutral",
			KeyDatesToWatch:      []string{},
			Top3Priorities:       []string{"Monitor daily sales", "Keep popular items stocked", "Staff for morning peak"},
		},
	}
}
