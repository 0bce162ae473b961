package models

// --- AI Insight Cards ---

// Insight is a single AI-generated insight card for the dashboard.
type Insight struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

// InsightResponse wraps generated insights with the data they were based on,
// for transparency on the frontend.
type InsightResponse struct {
	Insights   []Insight     `json:"insights"`
	SourceData SalesSnapshot `json:"source_data"`
}

// SalesSnapshot summarizes recent sales for the insight prompt.
type SalesSnapshot struct {
	AvgDailySales       float64  `json:"avg_daily_sales"`
	RecentDailySales    float64  `json:"recent_daily_sales"`
	WowChange           float64  `json:"wow_change"`
	Trend               string   `json:"trend"`
	TopProducts         []string `json:"top_products"`
	TopProductRevenue   float64  `json:"top_product_revenue"`
	PeakHours           []string `json:"peak_hours"`
	PeakHourCustomers   int      `json:"peak_hour_customers"`
	TotalCustomersToday int      `json:"total_customers_today"`
	AvgOrderValue       float64  `json:"avg_order_value"`
	LowStockItems       []string `json:"low_stock_items"`
}

// --- External Signals ---

// WeatherDay is one day of forecast from the weather API.
type WeatherDay struct {
	Date            string  `json:"date"`
	Conditions      string  `json:"conditions"`
	TempMax         float64 `json:"temp_max"`
	TempMin         float64 `json:"temp_min"`
	Humidity        float64 `json:"humidity"`
	WindSpeed       float64 `json:"wind_speed"`
	Precipitation   float64 `json:"precipitation"`
	PrecipitationPr float64 `json:"precipitation_probability"`
	Description     string  `json:"description"`
}

// Holiday is one upcoming public holiday.
type Holiday struct {
	Date      string `json:"date"`
	Name      string `json:"name"`
	LocalName string `json:"localName"`
	Type      string `json:"type"`
	Global    bool   `json:"global"`
}

// --- Predictive Insights ---

// WeatherInsight is an AI prediction tied to a forecast day.
type WeatherInsight struct {
	Date           string `json:"date"`
	Impact         string `json:"impact"`
	Prediction     string `json:"prediction"`
	Recommendation string `json:"recommendation"`
	Confidence     string `json:"confidence"`
}

// HolidayInsight is an AI recommendation tied to an upcoming holiday.
type HolidayInsight struct {
	HolidayName           string   `json:"holiday_name"`
	Date                  string   `json:"date"`
	ExpectedSalesIncrease string   `json:"expected_sales_increase"`
	Recommendation        string   `json:"recommendation"`
	ProductSuggestions    []string `json:"product_suggestions"`
}

// Abnormality flags a risk or opportunity the AI spotted.
type Abnormality struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Mitigation  string `json:"mitigation"`
}

// Recommendation is a prioritized action item.
type Recommendation struct {
	Category        string `json:"category"`
	Priority        string `json:"priority"`
	Recommendation  string `json:"recommendation"`
	ExpectedOutcome string `json:"expected_outcome"`
	Timeframe       string `json:"timeframe"`
}

// OutlookSummary is the overall outlook block of the predictive report.
type OutlookSummary struct {
	OverallOutlook       string   `json:"overall_outlook"`
	TotalPredictedImpact string   `json:"total_predicted_impact"`
	KeyDatesToWatch      []string `json:"key_dates_to_watch"`
	Top3Priorities       []string `json:"top_3_priorities"`
}

// DataSources records how much data fed the predictive report.
type DataSources struct {
	SalesDays     int `json:"sales_days"`
	WeatherDays   int `json:"weather_days"`
	HolidaysCount int `json:"holidays_count"`
}

// PredictiveInsights is the full predictive-insights payload.
type PredictiveInsights struct {
	WeatherInsights           []WeatherInsight `json:"weather_insights"`
	HolidayInsights           []HolidayInsight `json:"holiday_insights"`
	Abnormalities             []Abnormality    `json:"abnormalities"`
	ActionableRecommendations []Recommendation `json:"actionable_recommendations"`
	Summary                   OutlookSummary   `json:"summary"`
	GeneratedAt               string           `json:"generated_at"`
	DataSources               DataSources      `json:"data_sources"`
}
