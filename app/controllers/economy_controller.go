package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MarcSteiner/BaseForge/app/models"
	"github.com/MarcSteiner/BaseForge/app/repository"
	"github.com/MarcSteiner/BaseForge/internal/pkg/clock"
)

var economyAccounts repository.AccountRepository
var economyClock clock.Clock

// InitializeEconomyController wires the repositories the economy handlers use.
func InitializeEconomyController(accounts repository.AccountRepository, clk clock.Clock) {
	economyAccounts = accounts
	economyClock = clk
}

// HandleGetEconomy returns the economy snapshot for a user, creating the
// account with zero defaults on first access. The last-seen timestamp is
// stamped on every read; the elapsed seconds and the passive production for
// that window are reported so the client can render offline gains.
// GET /api/user-economy/:userId
func HandleGetEconomy(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return respondError(c, fiber.StatusBadRequest, "User ID is required.")
	}

	account, err := economyAccounts.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		account = models.NewEconomyAccount(userID)
		if err := economyAccounts.Create(account); err != nil {
			return respondError(c, fiber.StatusInternalServerError, "Could not create economy account.")
		}
	} else if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Could not load economy account.")
	}

	now := economyClock.Now()
	var offlineSeconds int64
	if account.LastSeenAt != nil && now.After(*account.LastSeenAt) {
		offlineSeconds = int64(now.Sub(*account.LastSeenAt).Seconds())
	}
	if err := economyAccounts.TouchLastSeen(userID, now); err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Could not update economy account.")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    account,
		"offline": fiber.Map{
			"seconds":         offlineSeconds,
			"gold_produced":   offlineSeconds * models.GoldRatePerSecond,
			"elixir_produced": offlineSeconds * models.ElixirRatePerSecond,
		},
	})
}

type updateEconomyRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	GoldPass      *bool  `json:"gold_pass"`
	BuildersCount *int   `json:"builders_count" validate:"omitempty,min=1,max=10"`
	GoldAmount    *int64 `json:"gold_amount" validate:"omitempty,min=0,max=24000000"`
	ElixirAmount  *int64 `json:"elixir_amount" validate:"omitempty,min=0,max=24000000"`
}

// HandleUpdateEconomy applies a partial update to the user's economy
// settings. Only the fields present in the body are written.
// POST /api/user-economy/update
func HandleUpdateEconomy(c *fiber.Ctx) error {
	var req updateEconomyRequest
	if !parseAndValidate(c, &req) {
		return nil
	}

	account, err := economyAccounts.GetByUserID(req.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		account = models.NewEconomyAccount(req.UserID)
		if err := economyAccounts.Create(account); err != nil {
			return respondError(c, fiber.StatusInternalServerError, "Could not create economy account.")
		}
	} else if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Could not load economy account.")
	}

	if req.GoldPass != nil {
		account.GoldPass = *req.GoldPass
	}
	if req.BuildersCount != nil {
		account.BuildersCount = *req.BuildersCount
	}
	if req.GoldAmount != nil {
		account.SetBalance(models.ResourceGold, *req.GoldAmount)
	}
	if req.ElixirAmount != nil {
		account.SetBalance(models.ResourceElixir, *req.ElixirAmount)
	}

	if err := economyAccounts.Update(account); err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Could not update economy account.")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    account,
	})
}

// HandleEconomyStatus reports the account snapshot plus the total cost and
// time still needed for every remaining upgrade within the current tier.
// GET /api/economy/status?userId=...
func HandleEconomyStatus(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return respondError(c, fiber.StatusBadRequest, "User ID is required.")
	}

	summary, err := upgradeEngine.Status(userID)
	if err != nil {
		return respondEngineError(c, err)
	}

	return c.JSON(summary)
}
