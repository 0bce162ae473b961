package analytics

import (
	"testing"
	"time"

	"databrew/models"

	"github.com/stretchr/testify/assert"
)

// dayAgg builds a DailyAggregate n days before a fixed anchor date, so
// daysAgo 0 is the most recent day.
func dayAgg(daysAgo int, sales float64, orders int) models.DailyAggregate {
	date := time.Date(2023, 6, 24, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
	return models.DailyAggregate{
		Date:          date,
		DayOfWeek:     date.Weekday().String(),
		TotalSales:    sales,
		OrderCount:    orders,
		ItemsSold:     orders * 2,
		AvgOrderValue: sales / float64(orders),
	}
}

func TestSummaryTotalsAndAverages(t *testing.T) {
	days := []models.DailyAggregate{
		dayAgg(0, 1200, 60),
		dayAgg(1, 800, 40),
		dayAgg(2, 1000, 50),
	}

	summary := SummarizeDailySales(days, 3, 3, 5, 2)

	assert.InDelta(t, 3000.0, summary.TotalSales, 1e-9)
	assert.InDelta(t, 1000.0, summary.AvgDailySales, 1e-9)
	assert.Equal(t, 150, summary.TotalOrders)
	assert.InDelta(t, 50.0, summary.AvgOrdersPerDay, 1e-9)
	assert.Equal(t, 3, summary.DataPoints)
}

func TestBestAndWorstDays(t *testing.T) {
	days := []models.DailyAggregate{
		dayAgg(0, 500, 25),
		dayAgg(1, 1500, 70),
		dayAgg(2, 900, 45),
		dayAgg(3, 1200, 55),
	}

	summary := SummarizeDailySales(days, 2, 2, 5, 2)

	assert.Len(t, summary.BestDays, 2)
	assert.InDelta(t, 1500.0, summary.BestDays[0].TotalSales, 1e-9)
	assert.InDelta(t, 1200.0, summary.BestDays[1].TotalSales, 1e-9)

	assert.Len(t, summary.WorstDays, 2)
	assert.InDelta(t, 500.0, summary.WorstDays[0].TotalSales, 1e-9)
	assert.InDelta(t, 900.0, summary.WorstDays[1].TotalSales, 1e-9)
}

func TestBestDayTiesRankByEarlierDate(t *testing.T) {
	days := []models.DailyAggregate{
		dayAgg(0, 1000, 50),
		dayAgg(1, 1000, 50),
		dayAgg(2, 400, 20),
	}

	summary := SummarizeDailySales(days, 3, 3, 5, 1)

	assert.Len(t, summary.BestDays, 1)
	assert.Equal(t, dayAgg(1, 1000, 50).Date, summary.BestDays[0].Date)
}

func TestDayOfWeekBreakdown(t *testing.T) {
	// 2023-06-24 is a Saturday; 7 and 14 days earlier are Saturdays too.
	days := []models.DailyAggregate{
		dayAgg(0, 1000, 50),
		dayAgg(7, 2000, 100),
		dayAgg(1, 600, 30),
	}

	summary := SummarizeDailySales(days, 3, 3, 5, 2)

	sat := summary.DayOfWeekBreakdown["Saturday"]
	assert.InDelta(t, 1500.0, sat.AvgSales, 1e-9)
	assert.InDelta(t, 75.0, sat.AvgOrders, 1e-9)

	fri := summary.DayOfWeekBreakdown["Friday"]
	assert.InDelta(t, 600.0, fri.AvgSales, 1e-9)
	assert.InDelta(t, 30.0, fri.AvgOrders, 1e-9)
}

func TestTrendIncreasing(t *testing.T) {
	days := []models.DailyAggregate{
		dayAgg(0, 1200, 60),
		dayAgg(1, 1200, 60),
		dayAgg(2, 1200, 60),
		dayAgg(3, 1000, 50),
		dayAgg(4, 1000, 50),
		dayAgg(5, 1000, 50),
	}

	summary := SummarizeDailySales(days, 3, 3, 5, 2)

	assert.Equal(t, TrendIncreasing, summary.Trend)
	assert.InDelta(t, 20.0, summary.TrendPercentage, 1e-9)
}

func TestTrendBoundaryIsStable(t *testing.T) {
	// recent mean 105, older mean 100, threshold 5: exactly +5.0% is not
	// strictly above the threshold, so the trend stays stable.
	days := []models.DailyAggregate{
		dayAgg(0, 105, 50),
		dayAgg(1, 105, 50),
		dayAgg(2, 105, 50),
		dayAgg(3, 100, 50),
		dayAgg(4, 100, 50),
		dayAgg(5, 100, 50),
	}

	summary := SummarizeDailySales(days, 3, 3, 5, 2)

	assert.Equal(t, TrendStable, summary.Trend)
	assert.InDelta(t, 5.0, summary.TrendPercentage, 1e-9)
}

func TestTrendOlderMeanZero(t *testing.T) {
	days := []models.DailyAggregate{
		dayAgg(0, 900, 45),
		dayAgg(1, 900, 45),
		dayAgg(2, 0, 0),
		dayAgg(3, 0, 0),
	}

	summary := SummarizeDailySales(days, 2, 2, 5, 2)

	assert.Equal(t, TrendStable, summary.Trend)
	assert.InDelta(t, 0.0, summary.TrendPercentage, 1e-9)
}

func TestEmptyInputReturnsFallback(t *testing.T) {
	summary := SummarizeDailySales(nil, 3, 3, 5, 2)

	assert.Equal(t, FallbackRollingSummary(), summary)
	assert.Equal(t, 0, summary.DataPoints)
	assert.Equal(t, TrendStable, summary.Trend)
	assert.InDelta(t, 8500.0, summary.AvgDailySales, 1e-9)
}

func TestIdenticalDaysAreStable(t *testing.T) {
	var days []models.DailyAggregate
	for i := 0; i < 7; i++ {
		days = append(days, dayAgg(i, 1000, 50))
	}

	summary := SummarizeDailySales(days, 3, 3, 5, 2)

	assert.InDelta(t, 1000.0, summary.AvgDailySales, 1e-9)
	assert.Equal(t, TrendStable, summary.Trend)
	assert.InDelta(t, 0.0, summary.TrendPercentage, 1e-9)
}

func TestInputOrderDoesNotMatter(t *testing.T) {
	// Same days supplied oldest-first; the summarizer re-sorts descending
	// before slicing recent and older windows.
	days := []models.DailyAggregate{
		dayAgg(5, 1000, 50),
		dayAgg(4, 1000, 50),
		dayAgg(3, 1000, 50),
		dayAgg(2, 1200, 60),
		dayAgg(1, 1200, 60),
		dayAgg(0, 1200, 60),
	}

	summary := SummarizeDailySales(days, 3, 3, 5, 2)

	assert.Equal(t, TrendIncreasing, summary.Trend)
	assert.InDelta(t, 20.0, summary.TrendPercentage, 1e-9)
}

func TestWindowsLargerThanData(t *testing.T) {
	days := []models.DailyAggregate{
		dayAgg(0, 1000, 50),
		dayAgg(1, 500, 25),
	}

	summary := SummarizeDailySales(days, 7, 7, 5, 5)

	// Windows clamp to the available data, so both means cover both days.
	assert.Equal(t, TrendStable, summary.Trend)
	assert.Len(t, summary.BestDays, 2)
	assert.Len(t, summary.WorstDays, 2)
}
