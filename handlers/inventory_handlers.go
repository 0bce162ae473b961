package handlers

import (
	"context"
	"database/sql"
	"log"

	"databrew/database"
	"databrew/models"
	"databrew/utils"

	"github.com/gofiber/fiber/v2"
)

// ingredientRequest is the create/update payload for an ingredient.
type ingredientRequest struct {
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	StockQuantity float64 `json:"stock_quantity"`
	ReorderLevel  float64 `json:"reorder_level"`
	UnitCost      float64 `json:"unit_cost"`
	Supplier      *string `json:"supplier"`
	Notes         *string `json:"notes"`
}

// HandleListIngredients returns all ingredients with their low-stock flags.
// GET /inventory/ingredients
func HandleListIngredients(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	query := `
		SELECT id, name, unit, stock_quantity, reorder_level, unit_cost, supplier, notes, created_at, updated_at
		FROM ingredients
		ORDER BY name ASC
	`
	rows, err := db.Query(ctx, query)
	if err != nil {
		log.Printf("Error listing ingredients: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve ingredients"})
	}
	defer rows.Close()

	ingredients := make([]models.Ingredient, 0)
	for rows.Next() {
		var ing models.Ingredient
		var supplier, notes sql.NullString
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Unit, &ing.StockQuantity, &ing.ReorderLevel, &ing.UnitCost, &supplier, &notes, &ing.CreatedAt, &ing.UpdatedAt); err != nil {
			log.Printf("Error scanning ingredient: %v", err)
			continue
		}
		ing.Supplier = utils.NullStringToStringPtr(supplier)
		ing.Notes = utils.NullStringToStringPtr(notes)
		ing.IsLowStock = ing.StockQuantity <= ing.ReorderLevel
		ingredients = append(ingredients, ing)
	}

	return c.JSON(fiber.Map{"status": "success", "data": ingredients})
}

// HandleCreateIngredient adds a new ingredient.
// POST /inventory/ingredients
func HandleCreateIngredient(c *fiber.Ctx) error {
	var req ingredientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if req.Name == "" || req.Unit == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Name and unit are required"})
	}

	db := database.GetDB()
	ctx := context.Background()

	query := `
		INSERT INTO ingredients (name, unit, stock_quantity, reorder_level, unit_cost, supplier, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id
	`
	var id int
	err := db.QueryRow(ctx, query, req.Name, req.Unit, req.StockQuantity, req.ReorderLevel, req.UnitCost, req.Supplier, req.Notes).Scan(&id)
	if err != nil {
		log.Printf("Error creating ingredient: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create ingredient"})
	}

	log.Printf("Created ingredient %d %q (supplier %s)", id, req.Name, utils.PointerToString(req.Supplier))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": fiber.Map{"id": id}})
}

// HandleUpdateIngredient updates an existing ingredient.
// PUT /inventory/ingredients/:id
func HandleUpdateIngredient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid ingredient ID"})
	}

	var req ingredientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}

	db := database.GetDB()
	ctx := context.Background()

	query := `
		UPDATE ingredients
		SET name = $1, unit = $2, stock_quantity = $3, reorder_level = $4, unit_cost = $5, supplier = $6, notes = $7, updated_at = NOW()
		WHERE id = $8
	`
	tag, err := db.Exec(ctx, query, req.Name, req.Unit, req.StockQuantity, req.ReorderLevel, req.UnitCost, req.Supplier, req.Notes, id)
	if err != nil {
		log.Printf("Error updating ingredient %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update ingredient"})
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Ingredient not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Ingredient updated"})
}

// HandleDeleteIngredient removes an ingredient.
// DELETE /inventory/ingredients/:id
func HandleDeleteIngredient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid ingredient ID"})
	}

	db := database.GetDB()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "DELETE FROM ingredients WHERE id = $1", id)
	if err != nil {
		log.Printf("Error deleting ingredient %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to delete ingredient"})
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Ingredient not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Ingredient deleted"})
}
