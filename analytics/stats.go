package analytics

import "databrew/models"

// headDays returns up to n entries from the front of days (most recent first
// when days is sorted descending by date).
func headDays(days []models.DailyAggregate, n int) []models.DailyAggregate {
	if n < 0 {
		n = 0
	}
	if n > len(days) {
		n = len(days)
	}
	return days[:n]
}

// tailDays returns up to n entries from the back of days (the oldest ones
// when days is sorted descending by date).
func tailDays(days []models.DailyAggregate, n int) []models.DailyAggregate {
	if n < 0 {
		n = 0
	}
	if n > len(days) {
		n = len(days)
	}
	return days[len(days)-n:]
}

// meanSales returns the mean of TotalSales over days, or 0 for an empty slice.
func meanSales(days []models.DailyAggregate) float64 {
	if len(days) == 0 {
		return 0
	}
	var sum float64
	for _, d := range days {
		sum += d.TotalSales
	}
	return sum / float64(len(days))
}
