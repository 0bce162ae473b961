package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"math"

	"databrew/database"
	"databrew/models"
	"databrew/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// HandleListProducts returns all active menu products.
// GET /inventory/products
func HandleListProducts(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	query := `
		SELECT id, product_name, product_type, selling_price, description, is_active, created_at, updated_at
		FROM products
		WHERE is_active = TRUE
		ORDER BY product_name ASC
	`
	rows, err := db.Query(ctx, query)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve products"})
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		var description sql.NullString
		if err := rows.Scan(&p.ID, &p.ProductName, &p.ProductType, &p.SellingPrice, &description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			log.Printf("Error scanning product: %v", err)
			continue
		}
		p.Description = utils.NullStringToStringPtr(description)
		products = append(products, p)
	}

	return c.JSON(fiber.Map{"products": products})
}

// HandleGetProductCostAnalysis returns the ingredient cost breakdown and
// profit margin for one product.
// GET /inventory/products/:id/cost-analysis
func HandleGetProductCostAnalysis(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid product ID"})
	}

	db := database.GetDB()
	ctx := context.Background()

	query := `
		SELECT p.id, p.product_name, p.selling_price,
		       COALESCE(SUM(pi.quantity_needed * i.unit_cost), 0) AS total_cost,
		       string_agg(i.name || ': ' || pi.quantity_needed || ' ' || i.unit, ', ') AS ingredients_used
		FROM products p
		LEFT JOIN product_ingredients pi ON p.id = pi.product_id
		LEFT JOIN ingredients i ON pi.ingredient_id = i.id
		WHERE p.id = $1
		GROUP BY p.id, p.product_name, p.selling_price
	`

	var analysis models.ProductCostAnalysis
	var ingredientsUsed sql.NullString
	err = db.QueryRow(ctx, query, id).Scan(&analysis.ProductID, &analysis.ProductName, &analysis.SellingPrice, &analysis.TotalCost, &ingredientsUsed)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}
	if err != nil {
		log.Printf("Error fetching cost analysis for product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to calculate product cost"})
	}

	analysis.IngredientsUsed = utils.NullStringToStringPtr(ingredientsUsed)
	analysis.Profit = analysis.SellingPrice - analysis.TotalCost
	if analysis.SellingPrice > 0 {
		analysis.ProfitMargin = math.Round(analysis.Profit/analysis.SellingPrice*100*100) / 100
	}

	return c.JSON(analysis)
}
