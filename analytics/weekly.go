package analytics

import (
	"sort"
	"time"

	"databrew/models"
)

// WeekIndex returns the ISO 8601 week-of-year number for t (1-53). The weekly
// buckets use ISO numbering, so week boundaries fall on Mondays and the days
// around new year may belong to week 52/53 of the previous year.
func WeekIndex(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

type weekKey struct {
	productID int
	week      int
}

// ComputeWeeklyTrends groups transactions by product and ISO week and selects
// the products with the largest week-over-week increase and decrease in
// quantity sold.
//
// The percent change for a product is computed from the two most recent weeks
// present in its history, which are not necessarily consecutive week numbers.
// Products with fewer than two weeks of data, or whose second-to-last week
// sold zero units, are excluded from the ranking rather than given a default.
// When every product is excluded both summary fields are nil. Tied percent
// changes resolve to the lowest product id.
func ComputeWeeklyTrends(transactions []models.TransactionRecord) models.WeeklySalesSummary {
	buckets := make(map[weekKey]int)
	names := make(map[int]string)

	for _, tx := range transactions {
		key := weekKey{tx.ProductID, WeekIndex(tx.Timestamp)}
		buckets[key] += tx.Quantity
		names[tx.ProductID] = tx.ProductName
	}

	histories := make(map[int][]models.WeeklySalesItem)
	for key, qty := range buckets {
		histories[key.productID] = append(histories[key.productID], models.WeeklySalesItem{
			WeekIndex:     key.week,
			TotalQuantity: qty,
		})
	}

	var trends []models.WeeklyTrend
	for productID, history := range histories {
		sort.Slice(history, func(i, j int) bool {
			return history[i].WeekIndex < history[j].WeekIndex
		})

		if len(history) < 2 {
			// Need at least two weeks to compute a change.
			continue
		}

		prev := history[len(history)-2]
		curr := history[len(history)-1]

		if prev.TotalQuantity == 0 {
			// Avoid division by zero.
			continue
		}

		percentChange := float64(curr.TotalQuantity-prev.TotalQuantity) / float64(prev.TotalQuantity) * 100

		trends = append(trends, models.WeeklyTrend{
			ProductID:     productID,
			ProductName:   names[productID],
			History:       history,
			PercentChange: percentChange,
		})
	}

	if len(trends) == 0 {
		return models.WeeklySalesSummary{}
	}

	// Map iteration order is random; fix it so tied changes always resolve
	// to the lowest product id.
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].ProductID < trends[j].ProductID
	})

	topIncrease := &trends[0]
	topDecrease := &trends[0]
	for i := 1; i < len(trends); i++ {
		if trends[i].PercentChange > topIncrease.PercentChange {
			topIncrease = &trends[i]
		}
		if trends[i].PercentChange < topDecrease.PercentChange {
			topDecrease = &trends[i]
		}
	}

	return models.WeeklySalesSummary{
		TopIncrease: topIncrease,
		TopDecrease: topDecrease,
	}
}
