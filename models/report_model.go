package models

import "time"

// --- Weekly Trend Report ---

// WeeklySalesItem is one week of sales history for a product.
type WeeklySalesItem struct {
	WeekIndex     int `json:"week_index"`
	TotalQuantity int `json:"total_quantity"`
}

// WeeklyTrend holds a product's full weekly history and the percent change
// between its two most recent weeks.
type WeeklyTrend struct {
	ProductID     int               `json:"product_id"`
	ProductName   string            `json:"product_name"`
	History       []WeeklySalesItem `json:"history"`
	PercentChange float64           `json:"percent_change"`
}

// WeeklySalesSummary is the weekly-summary endpoint response: the products
// with the largest week-over-week increase and decrease. Both fields are nil
// when no product has enough history to compute a trend.
type WeeklySalesSummary struct {
	TopIncrease *WeeklyTrend `json:"top_increase"`
	TopDecrease *WeeklyTrend `json:"top_decrease"`
}

// --- Rolling Sales Summary ---

// DayOfWeekStats holds per-weekday averages across the summarized window.
type DayOfWeekStats struct {
	AvgSales  float64 `json:"avg_sales"`
	AvgOrders float64 `json:"avg_orders"`
}

// RollingSalesSummary aggregates a date-bounded window of daily sales.
type RollingSalesSummary struct {
	TotalSales         float64                   `json:"total_sales"`
	AvgDailySales      float64                   `json:"avg_daily_sales"`
	TotalOrders        int                       `json:"total_orders"`
	AvgOrdersPerDay    float64                   `json:"avg_orders_per_day"`
	BestDays           []DailyAggregate          `json:"best_days"`
	WorstDays          []DailyAggregate          `json:"worst_days"`
	DayOfWeekBreakdown map[string]DayOfWeekStats `json:"day_of_week_breakdown"`
	Trend              string                    `json:"trend"`
	TrendPercentage    float64                   `json:"trend_percentage"`
	DataPoints         int                       `json:"data_points"`
}

// --- Dashboard & Chart Payloads ---

// DashboardMetrics backs the top row of dashboard cards.
type DashboardMetrics struct {
	TotalSales     float64   `json:"total_sales"`
	SalesTrend     float64   `json:"sales_trend"`
	TotalCustomers int       `json:"total_customers"`
	ProfitMargin   float64   `json:"profit_margin"`
	ActiveBaristas int       `json:"active_baristas"`
	SalesSparkline []float64 `json:"sales_sparkline"`
}

// SalesPoint is one point on the sales trend chart.
type SalesPoint struct {
	Date  string  `json:"date"`
	Sales float64 `json:"sales"`
}

// ProductShare is a top product with its share of recent revenue.
type ProductShare struct {
	Name       string  `json:"name"`
	Sales      float64 `json:"sales"`
	Percentage int     `json:"percentage"`
}

// HourlySales is revenue for one hour of the day.
type HourlySales struct {
	Time  string  `json:"time"`
	Sales float64 `json:"sales"`
}

// MonthlySalesPoint is one day on the 30-day chart, with the target line.
type MonthlySalesPoint struct {
	Date   string  `json:"date"`
	Sales  float64 `json:"sales"`
	Target float64 `json:"target"`
}

// SalesAnalytics is the full period analytics payload.
type SalesAnalytics struct {
	Period        string              `json:"period"`
	TotalRevenue  float64             `json:"total_revenue"`
	TotalOrders   int                 `json:"total_orders"`
	AvgOrderValue float64             `json:"avg_order_value"`
	ProfitMargin  float64             `json:"profit_margin"`
	ProductSales  []ProductShare      `json:"product_sales"`
	HourlySales   []HourlySales       `json:"hourly_sales"`
	MonthlySales  []MonthlySalesPoint `json:"monthly_sales"`
}

// CashFlowEntry is income vs estimated expenses for one chart bucket.
type CashFlowEntry struct {
	Label    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// BestSelling describes today's best-selling product.
type BestSelling struct {
	ProductName   string  `json:"product_name"`
	ProductType   string  `json:"product_type"`
	UnitsSold     int     `json:"units_sold"`
	Revenue       float64 `json:"revenue"`
	ChangePercent float64 `json:"change_percent"`
}

// ForecastResponse is the naive sales forecast payload.
type ForecastResponse struct {
	ForecastNextDays []float64 `json:"forecast_next_days"`
	LastDateInData   *string   `json:"last_date_in_data"`
	DaysForecasted   int       `json:"days_forecasted"`
}

// Transaction is a raw transactions table row for the paginated listing.
type Transaction struct {
	ID          int       `json:"id"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Timestamp   time.Time `json:"timestamp"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	LineAmount  float64   `json:"line_amount"`
}
