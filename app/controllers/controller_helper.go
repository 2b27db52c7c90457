package controllers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/MarcSteiner/BaseForge/internal/pkg/upgrade"
)

var validate = validator.New()

// parseAndValidate decodes the JSON body into dst and runs struct validation.
// On failure it writes the 400 response and returns false.
func parseAndValidate(c *fiber.Ctx, dst interface{}) bool {
	if err := c.BodyParser(dst); err != nil {
		respondError(c, fiber.StatusBadRequest, "Invalid request body.")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		respondError(c, fiber.StatusBadRequest, "Missing or invalid required fields.")
		return false
	}
	return true
}

// respondError writes the canonical failure payload.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// respondEngineError maps engine failures onto HTTP statuses: missing
// entities become 404, admission rejections 409, anything else 500. Public
// messages carry the entity or resource name so the client can render an
// actionable message.
func respondEngineError(c *fiber.Ctx, err error) error {
	var notFound *upgrade.NotFoundError
	var insufficient *upgrade.InsufficientResourcesError

	switch {
	case errors.As(err, &notFound):
		return respondError(c, fiber.StatusNotFound, capitalize(notFound.Error())+".")
	case errors.Is(err, upgrade.ErrCapacityExceeded):
		return respondError(c, fiber.StatusConflict, "All builders are busy.")
	case errors.As(err, &insufficient):
		return respondError(c, fiber.StatusConflict, capitalize(insufficient.Error())+".")
	default:
		return respondError(c, fiber.StatusInternalServerError, "Internal server error.")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
