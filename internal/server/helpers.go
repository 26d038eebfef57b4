package server

import (
	"strconv"

	"volunteerhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID reads a positive integer route parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("invalid " + name)
	}
	return uint(id), nil
}

// statusFor maps an application error to its HTTP status. Conflicts map to
// 400 to match the API's public contract.
func statusFor(err error) int {
	appErr, ok := err.(*models.AppError)
	if !ok {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case "NOT_FOUND":
		return fiber.StatusNotFound
	case "VALIDATION_ERROR", "CONFLICT":
		return fiber.StatusBadRequest
	case "UNAUTHORIZED":
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// fail writes the standard error body for err.
func fail(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusFor(err), err)
}
