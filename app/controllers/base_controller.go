package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MarcSteiner/BaseForge/app/repository"
)

var baseStructures repository.StructureRepository

// InitializeBaseController wires the repository the base-data handler uses.
func InitializeBaseController(structures repository.StructureRepository) {
	baseStructures = structures
}

// HandleListBaseData lists the placed structures of a user's base with their
// current levels.
// GET /api/user-base-data?userId=...
func HandleListBaseData(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return respondError(c, fiber.StatusBadRequest, "User ID is required.")
	}

	instances, err := baseStructures.ListByUserID(userID)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch user base data.")
	}

	type row struct {
		Name         string `json:"name"`
		CurrentLevel int    `json:"current_level"`
	}
	out := make([]row, 0, len(instances))
	for _, instance := range instances {
		out = append(out, row{Name: instance.Name, CurrentLevel: instance.CurrentLevel})
	}

	return c.JSON(out)
}
