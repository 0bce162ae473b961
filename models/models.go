package models

import "time"

// --- Core Input Records ---

// TransactionRecord is a single point-of-sale line item. Rows coming out of
// the transactions table are converted into this shape at the query boundary
// before any analytics run on them.
type TransactionRecord struct {
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Timestamp   time.Time `json:"timestamp"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
}

// LineAmount is the revenue contributed by this line item.
func (t TransactionRecord) LineAmount() float64 {
	return float64(t.Quantity) * t.UnitPrice
}

// DailyAggregate is one day of pre-grouped sales, as produced by the daily
// rollup query. The day_of_week name is derived from the date by the query.
type DailyAggregate struct {
	Date          time.Time `json:"date"`
	DayOfWeek     string    `json:"day_of_week"`
	TotalSales    float64   `json:"total_sales"`
	OrderCount    int       `json:"order_count"`
	ItemsSold     int       `json:"items_sold"`
	AvgOrderValue float64   `json:"avg_order_value"`
}

// --- Inventory ---

// Ingredient represents a stocked ingredient with its reorder threshold.
type Ingredient struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Unit          string     `json:"unit"`
	StockQuantity float64    `json:"stock_quantity"`
	ReorderLevel  float64    `json:"reorder_level"`
	UnitCost      float64    `json:"unit_cost"`
	Supplier      *string    `json:"supplier,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	IsLowStock    bool       `json:"is_low_stock"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// InventoryPrediction is one inventory row with its demand heuristic applied.
type InventoryPrediction struct {
	Product         string `json:"product"`
	CurrentStock    string `json:"current_stock"`
	PredictedDemand string `json:"predicted_demand"`
	DemandLevel     string `json:"demand_level"`
	AlertLevel      string `json:"alert_level"`
}

// Product is a sellable menu item.
type Product struct {
	ID           int        `json:"id"`
	ProductName  string     `json:"product_name"`
	ProductType  string     `json:"product_type"`
	SellingPrice float64    `json:"selling_price"`
	Description  *string    `json:"description,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// ProductCostAnalysis is the ingredient cost breakdown for one product.
type ProductCostAnalysis struct {
	ProductID       int     `json:"product_id"`
	ProductName     string  `json:"product_name"`
	SellingPrice    float64 `json:"selling_price"`
	TotalCost       float64 `json:"total_cost"`
	Profit          float64 `json:"profit"`
	ProfitMargin    float64 `json:"profit_margin"`
	IngredientsUsed *string `json:"ingredients_used"`
}

// --- Staff & Feedback ---

// BaristaShift is one barista's shift for the schedule card.
type BaristaShift struct {
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Shift       string  `json:"shift"`
	Performance float64 `json:"performance"`
}

// CustomerFeedback is a single feedback entry shown on the dashboard.
type CustomerFeedback struct {
	Customer string `json:"customer"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}
