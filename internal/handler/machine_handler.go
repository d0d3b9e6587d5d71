package handler

import (
	"pringles-wms/internal/model"
	"pringles-wms/internal/service"
	"pringles-wms/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type MachineHandler struct {
	service service.MachineService
	logger  *zap.Logger
}

func NewMachineHandler(s service.MachineService, logger *zap.Logger) *MachineHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MachineHandler{service: s, logger: logger}
}

type createMachineRequest struct {
	ID       string `json:"id" validate:"required,notblank,max=64"`
	Location string `json:"location" validate:"max=255"`
}

func (h *MachineHandler) GetMachines(c *fiber.Ctx) error {
	machines, err := h.service.ListMachines()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if machines == nil {
		machines = []model.Machine{}
	}
	return c.JSON(machines)
}

func (h *MachineHandler) CreateMachine(c *fiber.Ctx) error {
	var req createMachineRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	machine, isNew, err := h.service.RegisterMachine(req.ID, req.Location)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return stored(c, isNew, machine)
}
