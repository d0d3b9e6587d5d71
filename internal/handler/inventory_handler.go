package handler

import (
	"pringles-wms/internal/model"
	"pringles-wms/internal/restock"
	"pringles-wms/internal/service"
	"pringles-wms/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	service service.InventoryService
	logger  *zap.Logger
}

func NewInventoryHandler(s service.InventoryService, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{service: s, logger: logger}
}

type createFlavorRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

type intakeRequest struct {
	FlavorID   uint   `json:"flavor_id" validate:"required"`
	ExpiryDate string `json:"expiry_date" validate:"required,datetime=2006-01-02"`
	Quantity   int    `json:"quantity" validate:"required,gte=1,lte=500"`
}

func (h *InventoryHandler) GetFlavors(c *fiber.Ctx) error {
	flavors, err := h.service.ListFlavors()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(flavors)
}

func (h *InventoryHandler) CreateFlavor(c *fiber.Ctx) error {
	var req createFlavorRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	flavor, isNew, err := h.service.RegisterFlavor(req.Name)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return stored(c, isNew, flavor)
}

func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	levels, err := h.service.CurrentStock()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if levels == nil {
		levels = []model.StockLevel{}
	}
	return c.JSON(levels)
}

func (h *InventoryHandler) CreateIntake(c *fiber.Ctx) error {
	var req intakeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	units, err := h.service.Intake(req.FlavorID, req.ExpiryDate, req.Quantity)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	ids := make([]string, len(units))
	for i, u := range units {
		ids[i] = u.ID.String()
	}
	return c.Status(201).JSON(fiber.Map{"message": "Stock stored", "quantity": len(units), "unit_ids": ids})
}

// GetRestockPlan suggests full rows for one machine load from current stock
func (h *InventoryHandler) GetRestockPlan(c *fiber.Ctx) error {
	plan, err := h.service.RestockPlan()
	if err != nil {
		return respondError(c, h.logger, err)
	}

	resp := fiber.Map{
		"capacity": restock.MachineCapacity,
		"row_size": restock.RowSize,
		"entries":  plan,
		"total":    plan.Total(),
	}
	if len(plan) == 0 {
		resp["message"] = "Not enough full rows of any flavor in stock"
	}
	return c.JSON(resp)
}
