package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/MarcSteiner/BaseForge/internal/pkg/metrics/counter"
	"github.com/MarcSteiner/BaseForge/internal/pkg/upgrade"
)

var upgradeEngine *upgrade.Engine

// InitializeUpgradeController wires the engine the upgrade handlers use.
func InitializeUpgradeController(engine *upgrade.Engine) {
	upgradeEngine = engine
}

type startUpgradeRequest struct {
	UserID         string `json:"user_id" validate:"required"`
	CatalogEntryID uint   `json:"catalog_entry_id" validate:"required"`
	TargetLevel    int    `json:"target_level" validate:"required,min=1"`
	InstanceName   string `json:"instance_name" validate:"required"`
}

// HandleStartUpgrade admits an upgrade request: validates the catalog entry,
// builder capacity and funds, debits the account and schedules the job.
// POST /api/user-economy/start-upgrade
func HandleStartUpgrade(c *fiber.Ctx) error {
	var req startUpgradeRequest
	if !parseAndValidate(c, &req) {
		return nil
	}

	record, err := upgradeEngine.Start(req.UserID, req.CatalogEntryID, req.TargetLevel, req.InstanceName)
	if err != nil {
		return respondEngineError(c, err)
	}

	if err := counter.AddUpgradeStarted(); err != nil {
		log.Printf("Warning: could not record upgrade-started counter: %v", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Upgrade for %s started successfully.", req.InstanceName),
		"upgrade": record,
	})
}

type completeUpgradeRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	UpgradeID    uint   `json:"upgrade_id" validate:"required"`
	InstanceName string `json:"instance_name" validate:"required"`
	TargetLevel  int    `json:"target_level" validate:"required,min=1"`
}

// HandleCompleteUpgrade resolves a finished upgrade. Safe to call more than
// once for the same job; a repeat reports "already completed" as success.
// POST /api/user-economy/complete
func HandleCompleteUpgrade(c *fiber.Ctx) error {
	var req completeUpgradeRequest
	if !parseAndValidate(c, &req) {
		return nil
	}

	message, err := upgradeEngine.Complete(req.UserID, req.UpgradeID, req.InstanceName, req.TargetLevel)
	if err != nil {
		return respondEngineError(c, err)
	}

	if err := counter.AddUpgradeCompleted(); err != nil {
		log.Printf("Warning: could not record upgrade-completed counter: %v", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// HandleInProgressUpgrades lists a user's pending upgrade jobs.
// GET /api/upgrades?userId=...
func HandleInProgressUpgrades(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return respondError(c, fiber.StatusBadRequest, "User ID is required.")
	}

	upgrades, err := upgradeEngine.InProgress(userID)
	if err != nil {
		return respondEngineError(c, err)
	}

	return c.JSON(upgrades)
}

// HandleAvailableUpgrades lists the upgrades a user could start right now.
// GET /api/upgrades/available?userId=...
func HandleAvailableUpgrades(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return respondError(c, fiber.StatusBadRequest, "User ID is required.")
	}

	candidates, err := upgradeEngine.Available(userID)
	if err != nil {
		return respondEngineError(c, err)
	}

	return c.JSON(candidates)
}

// HandleUpgradeStats reports lifetime admission and completion totals.
// GET /api/upgrades/stats
func HandleUpgradeStats(c *fiber.Ctx) error {
	started, completed, err := counter.Totals()
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Could not read upgrade counters.")
	}

	return c.JSON(fiber.Map{
		"upgrades_started":   started,
		"upgrades_completed": completed,
	})
}
