package handler

import (
	"errors"

	"pringles-wms/internal/service"
	"pringles-wms/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func invalidJSON(c *fiber.Ctx) error {
	return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
}

func validationFailed(c *fiber.Ctx, errs []*validator.ErrorResponse) error {
	return c.Status(400).JSON(fiber.Map{"error": validator.Describe(errs), "fields": errs})
}

// respondError maps service errors to HTTP statuses. Unexpected errors are logged
// and answered with a generic 500.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidReference):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidSource):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}

// stored answers 201 for a new record and 200 when an existing one was kept
func stored(c *fiber.Ctx, isNew bool, data interface{}) error {
	if isNew {
		return c.Status(201).JSON(fiber.Map{"message": "Created", "created": true, "data": data})
	}
	return c.JSON(fiber.Map{"message": "Already exists", "created": false, "data": data})
}
