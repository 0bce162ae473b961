package analytics

import (
	"testing"
	"time"

	"databrew/models"

	"github.com/stretchr/testify/assert"
)

// inWeek returns a timestamp inside the given ISO week of 2023.
// 2023-01-02 is a Monday in ISO week 1.
func inWeek(week int) time.Time {
	return time.Date(2023, 1, 2, 10, 30, 0, 0, time.UTC).AddDate(0, 0, (week-1)*7)
}

func tx(productID int, name string, week, qty int) models.TransactionRecord {
	return models.TransactionRecord{
		ProductID:   productID,
		ProductName: name,
		Timestamp:   inWeek(week),
		Quantity:    qty,
		UnitPrice:   4.50,
	}
}

func TestWeekIndexISO(t *testing.T) {
	assert.Equal(t, 1, WeekIndex(time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2, WeekIndex(time.Date(2023, 1, 9, 23, 59, 0, 0, time.UTC)))
	// 2023-01-01 is a Sunday and belongs to ISO week 52 of 2022.
	assert.Equal(t, 52, WeekIndex(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestHistorySortedAscendingByWeek(t *testing.T) {
	summary := ComputeWeeklyTrends([]models.TransactionRecord{
		tx(1, "Latte", 5, 40),
		tx(1, "Latte", 2, 10),
		tx(1, "Latte", 9, 25),
		tx(1, "Latte", 3, 30),
	})

	assert.NotNil(t, summary.TopIncrease)
	history := summary.TopIncrease.History
	assert.Len(t, history, 4)
	for i := 1; i < len(history); i++ {
		assert.Less(t, history[i-1].WeekIndex, history[i].WeekIndex)
	}
}

func TestQuantitiesSummedWithinWeek(t *testing.T) {
	summary := ComputeWeeklyTrends([]models.TransactionRecord{
		tx(1, "Latte", 1, 60),
		tx(1, "Latte", 1, 40),
		tx(1, "Latte", 2, 150),
	})

	assert.NotNil(t, summary.TopIncrease)
	assert.Equal(t, []models.WeeklySalesItem{
		{WeekIndex: 1, TotalQuantity: 100},
		{WeekIndex: 2, TotalQuantity: 150},
	}, summary.TopIncrease.History)
	assert.InDelta(t, 50.0, summary.TopIncrease.PercentChange, 1e-9)
}

func TestSingleWeekProductExcluded(t *testing.T) {
	summary := ComputeWeeklyTrends([]models.TransactionRecord{
		tx(1, "Latte", 1, 100),
		tx(1, "Latte", 2, 150),
		tx(2, "Mocha", 2, 500),
	})

	assert.NotNil(t, summary.TopIncrease)
	assert.Equal(t, 1, summary.TopIncrease.ProductID)
	assert.Equal(t, 1, summary.TopDecrease.ProductID)
}

func TestZeroPreviousWeekExcluded(t *testing.T) {
	summary := ComputeWeeklyTrends([]models.TransactionRecord{
		tx(1, "Latte", 1, 80),
		tx(1, "Latte", 2, 0),
		tx(1, "Latte", 3, 50),
	})

	// The second-to-last week sold zero units, so no trend is produced.
	assert.Nil(t, summary.TopIncrease)
	assert.Nil(t, summary.TopDecrease)
}

func TestExtremumSelection(t *testing.T) {
	summary := ComputeWeeklyTrends([]models.TransactionRecord{
		tx(1, "Latte", 1, 100), tx(1, "Latte", 2, 150), // +50%
		tx(2, "Mocha", 1, 100), tx(2, "Mocha", 2, 80), // -20%
		tx(3, "Espresso", 1, 100), tx(3, "Espresso", 2, 110), // +10%
	})

	assert.NotNil(t, summary.TopIncrease)
	assert.NotNil(t, summary.TopDecrease)
	assert.InDelta(t, 50.0, summary.TopIncrease.PercentChange, 1e-9)
	assert.InDelta(t, -20.0, summary.TopDecrease.PercentChange, 1e-9)
}

func TestEmptyTrendSet(t *testing.T) {
	summary := ComputeWeeklyTrends([]models.TransactionRecord{
		tx(1, "Latte", 1, 100),
		tx(2, "Mocha", 2, 50),
	})
	assert.Nil(t, summary.TopIncrease)
	assert.Nil(t, summary.TopDecrease)

	summary = ComputeWeeklyTrends(nil)
	assert.Nil(t, summary.TopIncrease)
	assert.Nil(t, summary.TopDecrease)
}

func TestSingleTrendIsBothExtremes(t *testing.T) {
	summary := ComputeWeeklyTrends([]models.TransactionRecord{
		tx(7, "Flat White", 1, 100),
		tx(7, "Flat White", 2, 80),
	})

	assert.NotNil(t, summary.TopIncrease)
	assert.Equal(t, summary.TopIncrease, summary.TopDecrease)
	assert.InDelta(t, -20.0, summary.TopIncrease.PercentChange, 1e-9)
}

func TestDecliningProduct(t *testing.T) {
	summary := ComputeWeeklyTrends([]models.TransactionRecord{
		tx(1, "Latte", 1, 100),
		tx(1, "Latte", 2, 80),
	})

	assert.NotNil(t, summary.TopDecrease)
	assert.InDelta(t, -20.0, summary.TopDecrease.PercentChange, 1e-9)
}

func TestTwoProductsOppositeTrends(t *testing.T) {
	summary := ComputeWeeklyTrends([]models.TransactionRecord{
		tx(1, "Latte", 1, 100), tx(1, "Latte", 2, 150), // +50%
		tx(2, "Mocha", 1, 100), tx(2, "Mocha", 2, 70), // -30%
	})

	assert.Equal(t, 1, summary.TopIncrease.ProductID)
	assert.Equal(t, 2, summary.TopDecrease.ProductID)
}

func TestTiesResolveToLowestProductID(t *testing.T) {
	summary := ComputeWeeklyTrends([]models.TransactionRecord{
		tx(9, "Mocha", 1, 100), tx(9, "Mocha", 2, 150), // +50%
		tx(4, "Latte", 1, 200), tx(4, "Latte", 2, 300), // +50%
	})

	assert.Equal(t, 4, summary.TopIncrease.ProductID)
	assert.Equal(t, 4, summary.TopDecrease.ProductID)
}

func TestLastTwoWeeksNeedNotBeConsecutive(t *testing.T) {
	summary := ComputeWeeklyTrends([]models.TransactionRecord{
		tx(1, "Latte", 1, 10),
		tx(1, "Latte", 3, 50),
		tx(1, "Latte", 7, 75),
	})

	// Change is computed from weeks 3 and 7, the two most recent present.
	assert.NotNil(t, summary.TopIncrease)
	assert.InDelta(t, 50.0, summary.TopIncrease.PercentChange, 1e-9)
	assert.Len(t, summary.TopIncrease.History, 3)
}
