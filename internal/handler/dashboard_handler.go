package handler

import (
	"pringles-wms/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	service service.SummaryService
	logger  *zap.Logger
}

func NewDashboardHandler(s service.SummaryService, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{service: s, logger: logger}
}

// GetSummary returns the cash position and profit snapshot
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.service.FinancialSummary()
	if err != nil {
		h.logger.Error("financial summary", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute financial summary"})
	}
	return c.JSON(summary)
}
