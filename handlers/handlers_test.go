package handlers

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"databrew/models"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONArrayFromFencedOutput(t *testing.T) {
	raw := "```json\n[{\"type\": \"revenue\", \"text\": \"Sales up\", \"color\": \"green\"}]\n```"

	got := extractJSONArray(raw)

	var insights []models.Insight
	assert.NoError(t, json.Unmarshal([]byte(got), &insights))
	assert.Len(t, insights, 1)
	assert.Equal(t, "revenue", insights[0].Type)
}

func TestExtractJSONObjectFromProse(t *testing.T) {
	raw := `Here is the analysis you asked for: {"summary": {"overall_outlook": "stable"}} Hope it helps!`

	got := extractJSON(raw)

	assert.Equal(t, `{"summary": {"overall_outlook": "stable"}}`, got)
}

func TestExtractJSONHandlesNestedBraces(t *testing.T) {
	raw := `{"a": {"b": {"c": 1}}, "d": "x}y"}`

	assert.Equal(t, raw, extractJSON(raw))
}

func TestExtractJSONIgnoresBracesInStrings(t *testing.T) {
	raw := `[{"text": "open { and ] inside"}]`

	assert.Equal(t, raw, extractJSONArray(raw))
}

func TestExtractJSONMissing(t *testing.T) {
	assert.Equal(t, "", extractJSON("no structured data here"))
	assert.Equal(t, "", extractJSONArray("still nothing"))
	assert.Equal(t, "", extractJSON("{unterminated"))
}

func TestBuildInsightPromptContainsSnapshot(t *testing.T) {
	snapshot := models.SalesSnapshot{
		AvgDailySales:       9500.50,
		RecentDailySales:    10200,
		WowChange:           7.3,
		Trend:               "increasing",
		TopProducts:         []string{"Iced Caramel Latte", "Cappuccino"},
		TopProductRevenue:   3200,
		PeakHours:           []string{"9AM", "10AM"},
		PeakHourCustomers:   42,
		TotalCustomersToday: 120,
		AvgOrderValue:       85,
		LowStockItems:       []string{"Oat Milk"},
	}

	prompt := buildInsightPrompt(snapshot)

	assert.Contains(t, prompt, "9500.50")
	assert.Contains(t, prompt, "Iced Caramel Latte, Cappuccino")
	assert.Contains(t, prompt, "9AM, 10AM")
	assert.Contains(t, prompt, "Oat Milk")
	assert.Contains(t, prompt, "increasing")
	assert.Contains(t, prompt, "JSON array")
}

func TestBuildInsightPromptOmitsEmptyLowStock(t *testing.T) {
	prompt := buildInsightPrompt(models.SalesSnapshot{Trend: "stable"})

	assert.NotContains(t, prompt, "Low stock ingredients")
}

func TestFallbackInsightsAreValid(t *testing.T) {
	insights := FallbackInsights()

	assert.Len(t, insights, 4)
	for _, ins := range insights {
		assert.True(t, validInsightTypes[ins.Type], "unknown type %q", ins.Type)
		assert.NotEmpty(t, ins.Text)
		assert.NotEmpty(t, ins.Color)
	}
}

func TestFallbackPredictiveInsights(t *testing.T) {
	insights := FallbackPredictiveInsights()

	assert.Equal(t, "stable", insights.Summary.OverallOutlook)
	assert.NotEmpty(t, insights.WeatherInsights)
	assert.NotEmpty(t, insights.ActionableRecommendations)
	assert.Len(t, insights.Summary.Top3Priorities, 3)
	assert.NotNil(t, insights.HolidayInsights)
	assert.NotNil(t, insights.Abnormalities)
}

func TestFormatSalesForAnalysis(t *testing.T) {
	summary := models.RollingSalesSummary{
		TotalSales:      59500,
		AvgDailySales:   8500,
		TotalOrders:     400,
		AvgOrdersPerDay: 57,
		BestDays: []models.DailyAggregate{
			{Date: time.Date(2023, 6, 24, 0, 0, 0, 0, time.UTC), TotalSales: 12000},
		},
		WorstDays: []models.DailyAggregate{
			{Date: time.Date(2023, 6, 20, 0, 0, 0, 0, time.UTC), TotalSales: 4000},
		},
		DayOfWeekBreakdown: map[string]models.DayOfWeekStats{
			"Saturday": {AvgSales: 11000, AvgOrders: 70},
		},
		Trend:           "increasing",
		TrendPercentage: 12.5,
		DataPoints:      7,
	}

	text := formatSalesForAnalysis(summary)

	assert.Contains(t, text, "7 days of data")
	assert.Contains(t, text, "increasing (12.5%)")
	assert.Contains(t, text, "2023-06-24 (12000.00)")
	assert.Contains(t, text, "2023-06-20 (4000.00)")
	assert.Contains(t, text, "Saturday=11000")
}

func TestBuildPredictivePromptLayout(t *testing.T) {
	prompt := buildPredictivePrompt("SALES", "WEATHER", "HOLIDAYS")

	assert.Contains(t, prompt, "SALES")
	assert.Contains(t, prompt, "WEATHER")
	assert.Contains(t, prompt, "HOLIDAYS")
	assert.Contains(t, prompt, "weather_insights")
	assert.Contains(t, prompt, "actionable_recommendations")
	assert.True(t, strings.Index(prompt, "SALES") < strings.Index(prompt, "WEATHER"))
}

func TestTransactionDateFilterBothBounds(t *testing.T) {
	clause, args, err := transactionDateFilter("2023-06-01", "2023-06-24")

	assert.NoError(t, err)
	assert.Equal(t, " WHERE transaction_at::date >= $1::date AND transaction_at::date <= $2::date", clause)
	assert.Len(t, args, 2)
	assert.Equal(t, time.June, args[0].(time.Time).Month())
	assert.Equal(t, 24, args[1].(time.Time).Day())
}

func TestTransactionDateFilterStartOnly(t *testing.T) {
	clause, args, err := transactionDateFilter("2023-06-01T08:30:00Z", "")

	assert.NoError(t, err)
	assert.Equal(t, " WHERE transaction_at::date >= $1::date", clause)
	assert.Len(t, args, 1)
}

func TestTransactionDateFilterEmpty(t *testing.T) {
	clause, args, err := transactionDateFilter("", "")

	assert.NoError(t, err)
	assert.Empty(t, clause)
	assert.Nil(t, args)
}

func TestTransactionDateFilterRejectsGarbage(t *testing.T) {
	_, _, err := transactionDateFilter("not-a-date", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "start_date")

	_, _, err = transactionDateFilter("", "also-bad")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "end_date")
}

func TestPeriodDays(t *testing.T) {
	assert.Equal(t, 1, periodDays("today"))
	assert.Equal(t, 7, periodDays("week"))
	assert.Equal(t, 30, periodDays("month"))
	assert.Equal(t, 30, periodDays("anything-else"))
}
