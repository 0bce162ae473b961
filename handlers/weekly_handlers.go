package handlers

import (
	"context"
	"log"

	"databrew/analytics"
	"databrew/database"
	"databrew/models"

	"github.com/gofiber/fiber/v2"
)

// HandleGetWeeklySummary returns the products with the largest week-over-week
// increase and decrease in quantity sold.
// GET /sales/weekly-summary
func HandleGetWeeklySummary(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	query := `
		SELECT product_id, product_name, transaction_at, quantity, unit_price
		FROM transactions
	`
	rows, err := db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying transactions for weekly summary: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve transactions"})
	}
	defer rows.Close()

	var transactions []models.TransactionRecord
	for rows.Next() {
		var tx models.TransactionRecord
		if err := rows.Scan(&tx.ProductID, &tx.ProductName, &tx.Timestamp, &tx.Quantity, &tx.UnitPrice); err != nil {
			log.Printf("Error scanning transaction row: %v", err)
			continue
		}
		transactions = append(transactions, tx)
	}

	summary := analytics.ComputeWeeklyTrends(transactions)

	return c.JSON(summary)
}
