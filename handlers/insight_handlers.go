package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"databrew/config"
	"databrew/database"
	"databrew/models"
	"databrew/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.5-flash"

// validInsightTypes are the card categories the frontend knows how to render.
var validInsightTypes = map[string]bool{
	"revenue":   true,
	"traffic":   true,
	"product":   true,
	"inventory": true,
	"staffing":  true,
	"general":   true,
}

// HandleGetAIInsights returns cached-style AI insight cards for the dashboard.
// GET /ai-insights
func HandleGetAIInsights(c *fiber.Ctx) error {
	return generateInsightCards(c)
}

// HandleGenerateInsights regenerates the insight cards on demand.
// POST /generate-insights
func HandleGenerateInsights(c *fiber.Ctx) error {
	return generateInsightCards(c)
}

func generateInsightCards(c *fiber.Ctx) error {
	snapshot, err := fetchSalesSnapshot()
	if err != nil {
		log.Printf("Error building sales snapshot: %v", err)
		return c.JSON(models.InsightResponse{Insights: FallbackInsights()})
	}

	insights, err := requestInsights(snapshot)
	if err != nil {
		log.Printf("AI insight generation failed, using fallback: %v", err)
		insights = FallbackInsights()
	}

	return c.JSON(models.InsightResponse{Insights: insights, SourceData: snapshot})
}

// fetchSalesSnapshot gathers the recent numbers the insight prompt needs.
func fetchSalesSnapshot() (models.SalesSnapshot, error) {
	db := database.GetDB()
	ctx := context.Background()

	var snapshot models.SalesSnapshot

	queryDaily := `
		SELECT transaction_at::date AS date, COALESCE(SUM(quantity * unit_price), 0) AS sales
		FROM transactions
		WHERE transaction_at::date >= CURRENT_DATE - 14
		GROUP BY transaction_at::date
		ORDER BY date DESC
	`
	rows, err := db.Query(ctx, queryDaily)
	if err != nil {
		return snapshot, err
	}

	var daily []float64
	for rows.Next() {
		var date interface{}
		var sales float64
		if err := rows.Scan(&date, &sales); err != nil {
			log.Printf("Error scanning daily sales row: %v", err)
			continue
		}
		daily = append(daily, sales)
	}
	rows.Close()

	if len(daily) > 0 {
		var total float64
		for _, s := range daily {
			total += s
		}
		snapshot.AvgDailySales = total / float64(len(daily))
		snapshot.RecentDailySales = daily[0]
	}

	// Week-over-week change needs two full weeks; settle for one when that
	// is all we have.
	if len(daily) >= 14 {
		recent := meanOf(daily[:7])
		older := meanOf(daily[7:14])
		if older > 0 {
			snapshot.WowChange = (recent - older) / older * 100
		}
	} else if len(daily) >= 7 {
		recent := meanOf(daily[:len(daily)/2])
		older := meanOf(daily[len(daily)/2:])
		if older > 0 {
			snapshot.WowChange = (recent - older) / older * 100
		}
	}

	switch {
	case snapshot.WowChange > 5:
		snapshot.Trend = "increasing"
	case snapshot.WowChange < -5:
		snapshot.Trend = "decreasing"
	default:
		snapshot.Trend = "stable"
	}

	queryTop := `
		SELECT product_name, COALESCE(SUM(quantity * unit_price), 0) AS revenue
		FROM transactions
		WHERE transaction_at::date >= CURRENT_DATE - 7
		GROUP BY product_name
		ORDER BY revenue DESC
		LIMIT 3
	`
	topRows, err := db.Query(ctx, queryTop)
	if err != nil {
		return snapshot, err
	}
	for topRows.Next() {
		var name string
		var revenue float64
		if err := topRows.Scan(&name, &revenue); err != nil {
			log.Printf("Error scanning top product row: %v", err)
			continue
		}
		if len(snapshot.TopProducts) == 0 {
			snapshot.TopProductRevenue = revenue
		}
		snapshot.TopProducts = append(snapshot.TopProducts, name)
	}
	topRows.Close()

	queryPeak := `
		SELECT EXTRACT(HOUR FROM transaction_at)::int AS hour, COUNT(DISTINCT transaction_id) AS customers
		FROM transactions
		WHERE transaction_at::date >= CURRENT_DATE - 3
		GROUP BY hour
		ORDER BY customers DESC
		LIMIT 2
	`
	peakRows, err := db.Query(ctx, queryPeak)
	if err != nil {
		return snapshot, err
	}
	for peakRows.Next() {
		var hour, customers int
		if err := peakRows.Scan(&hour, &customers); err != nil {
			log.Printf("Error scanning peak hour row: %v", err)
			continue
		}
		if len(snapshot.PeakHours) == 0 {
			snapshot.PeakHourCustomers = customers
		}
		snapshot.PeakHours = append(snapshot.PeakHours, utils.HourLabel(hour))
	}
	peakRows.Close()

	queryToday := `
		SELECT COUNT(DISTINCT transaction_id), COALESCE(SUM(quantity * unit_price), 0)
		FROM transactions
		WHERE transaction_at::date = CURRENT_DATE
	`
	var todayRevenue float64
	if err := db.QueryRow(ctx, queryToday).Scan(&snapshot.TotalCustomersToday, &todayRevenue); err != nil {
		return snapshot, err
	}
	if snapshot.TotalCustomersToday > 0 {
		snapshot.AvgOrderValue = todayRevenue / float64(snapshot.TotalCustomersToday)
	}

	queryLowStock := `
		SELECT name FROM ingredients
		WHERE stock_quantity <= reorder_level
		ORDER BY name ASC
		LIMIT 5
	`
	lowRows, err := db.Query(ctx, queryLowStock)
	if err != nil {
		// Inventory table may not exist yet; insights still work without it.
		log.Printf("Error fetching low stock items: %v", err)
		return snapshot, nil
	}
	for lowRows.Next() {
		var name string
		if err := lowRows.Scan(&name); err != nil {
			continue
		}
		snapshot.LowStockItems = append(snapshot.LowStockItems, name)
	}
	lowRows.Close()

	return snapshot, nil
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// buildInsightPrompt renders the snapshot into the Gemini prompt.
func buildInsightPrompt(s models.SalesSnapshot) string {
	var b strings.Builder

	b.WriteString("You are a business analyst for a coffee shop. Based on the following sales data, generate exactly 4 short, actionable insights.\n\n")
	b.WriteString("Sales data:\n")
	fmt.Fprintf(&b, "- Average daily sales (last 14 days): %.2f\n", s.AvgDailySales)
	fmt.Fprintf(&b, "- Most recent day's sales: %.2f\n", s.RecentDailySales)
	fmt.Fprintf(&b, "- Week-over-week change: %.1f%% (%s)\n", s.WowChange, s.Trend)
	fmt.Fprintf(&b, "- Top products (7 days): %s\n", strings.Join(s.TopProducts, ", "))
	fmt.Fprintf(&b, "- Top product revenue: %.2f\n", s.TopProductRevenue)
	fmt.Fprintf(&b, "- Peak hours (3 days): %s with up to %d customers\n", strings.Join(s.PeakHours, ", "), s.PeakHourCustomers)
	fmt.Fprintf(&b, "- Customers today: %d, average order value: %.2f\n", s.TotalCustomersToday, s.AvgOrderValue)
	if len(s.LowStockItems) > 0 {
		fmt.Fprintf(&b, "- Low stock ingredients: %s\n", strings.Join(s.LowStockItems, ", "))
	}
	b.WriteString("\nRespond with ONLY a JSON array, no markdown, in this exact format:\n")
	b.WriteString(`[{"type": "revenue|traffic|product|inventory|staffing|general", "text": "insight text under 25 words", "color": "green|red|blue|orange"}]`)

	return b.String()
}

// requestInsights sends the prompt to Gemini and validates the result.
func requestInsights(snapshot models.SalesSnapshot) ([]models.Insight, error) {
	raw, err := geminiGenerate(buildInsightPrompt(snapshot))
	if err != nil {
		return nil, err
	}

	jsonText := extractJSONArray(raw)
	if jsonText == "" {
		return nil, errors.New("no JSON array in model response")
	}

	var insights []models.Insight
	if err := json.Unmarshal([]byte(jsonText), &insights); err != nil {
		return nil, fmt.Errorf("parsing insights: %w", err)
	}

	valid := make([]models.Insight, 0, len(insights))
	for _, ins := range insights {
		if ins.Text == "" || !validInsightTypes[ins.Type] {
			continue
		}
		if ins.Color == "" {
			ins.Color = "blue"
		}
		valid = append(valid, ins)
		if len(valid) == 4 {
			break
		}
	}

	if len(valid) < 2 {
		return nil, fmt.Errorf("only %d valid insights in model response", len(valid))
	}

	return valid, nil
}

// geminiGenerate sends a prompt to the configured Gemini model and returns
// the concatenated text parts of the first candidate.
func geminiGenerate(prompt string) (string, error) {
	apiKey := config.AppConfig.GeminiAPIKey
	if apiKey == "" {
		return "", errors.New("GEMINI_API_KEY is not set")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("creating genai client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(geminiModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from model")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	return b.String(), nil
}

// extractJSON pulls the first top-level JSON object out of model output that
// may be wrapped in markdown fences or prose.
func extractJSON(raw string) string {
	return extractDelimited(raw, '{', '}')
}

// extractJSONArray pulls the first top-level JSON array out of model output.
func extractJSONArray(raw string) string {
	return extractDelimited(raw, '[', ']')
}

func extractDelimited(raw string, open, close byte) string {
	start := strings.IndexByte(raw, open)
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == open:
			depth++
		case ch == close:
			depth--
			if depth == 0 {
				return raw[start : i+1]
			}
		}
	}

	return ""
}

// FallbackInsights are shown when the AI service is unavailable.
func FallbackInsights() []models.Insight {
	return []models.Insight{
		{Type: "revenue", Text: "Sales are tracking close to the recent daily average.", Color: "blue"},
		{Type: "traffic", Text: "Morning hours remain the busiest; keep the counter fully staffed before noon.", Color: "green"},
		{Type: "product", Text: "Espresso-based drinks continue to lead revenue this week.", Color: "green"},
		{Type: "general", Text: "AI insights are temporarily unavailable; showing standard guidance.", Color: "orange"},
	}
}
