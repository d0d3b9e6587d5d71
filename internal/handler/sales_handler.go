package handler

import (
	"pringles-wms/internal/model"
	"pringles-wms/internal/service"
	"pringles-wms/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SalesHandler struct {
	service service.SalesService
	logger  *zap.Logger
}

func NewSalesHandler(s service.SalesService, logger *zap.Logger) *SalesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesHandler{service: s, logger: logger}
}

type createSaleRequest struct {
	MachineID     string          `json:"machine_id" validate:"required,notblank"`
	Quantity      int             `json:"quantity" validate:"required,gte=1"`
	CashCollected decimal.Decimal `json:"cash_collected" validate:"gte=0"`
}

func (h *SalesHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.ListSales()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if sales == nil {
		sales = []model.Sale{}
	}
	return c.JSON(sales)
}

func (h *SalesHandler) CreateSale(c *fiber.Ctx) error {
	var req createSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	sale, err := h.service.RecordSale(req.MachineID, req.Quantity, req.CashCollected)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": sale})
}
