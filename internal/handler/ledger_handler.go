package handler

import (
	"pringles-wms/internal/model"
	"pringles-wms/internal/service"
	"pringles-wms/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type LedgerHandler struct {
	service service.LedgerService
	logger  *zap.Logger
}

func NewLedgerHandler(s service.LedgerService, logger *zap.Logger) *LedgerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerHandler{service: s, logger: logger}
}

type createExpenseRequest struct {
	Amount   decimal.Decimal     `json:"amount" validate:"gte=0"`
	Category string              `json:"category" validate:"max=100"`
	Note     string              `json:"note"`
	Source   model.FundingSource `json:"source" validate:"required,oneof=cash bank"`
}

type createMovementRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"gte=-10000,lte=10000"`
	Note   string          `json:"note"`
}

type privateAmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *LedgerHandler) GetExpenses(c *fiber.Ctx) error {
	expenses, err := h.service.ListExpenses()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}
	return c.JSON(expenses)
}

func (h *LedgerHandler) CreateExpense(c *fiber.Ctx) error {
	var req createExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	expense, err := h.service.RecordExpense(req.Amount, req.Category, req.Note, req.Source)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Expense recorded", "data": expense})
}

func (h *LedgerHandler) GetAccountMovements(c *fiber.Ctx) error {
	movements, err := h.service.ListAccountMovements()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if movements == nil {
		movements = []model.AccountMovement{}
	}
	return c.JSON(movements)
}

func (h *LedgerHandler) CreateAccountMovement(c *fiber.Ctx) error {
	var req createMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	movement, err := h.service.RecordAccountMovement(req.Amount, req.Note)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Account movement recorded", "data": movement})
}

func (h *LedgerHandler) GetPrivateWithdrawal(c *fiber.Ctx) error {
	balance, err := h.service.PrivateWithdrawalBalance()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"balance": balance})
}

// BookPrivateWithdrawal takes a signed amount: positive withdraws, negative returns
func (h *LedgerHandler) BookPrivateWithdrawal(c *fiber.Ctx) error {
	return h.privateAmount(c, h.service.BookPrivateWithdrawal)
}

func (h *LedgerHandler) TakePrivateWithdrawal(c *fiber.Ctx) error {
	return h.privateAmount(c, h.service.TakePrivateWithdrawal)
}

func (h *LedgerHandler) ReturnPrivateWithdrawal(c *fiber.Ctx) error {
	return h.privateAmount(c, h.service.ReturnPrivateWithdrawal)
}

func (h *LedgerHandler) privateAmount(c *fiber.Ctx, book func(decimal.Decimal) (decimal.Decimal, error)) error {
	var req privateAmountRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	balance, err := book(req.Amount)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"message": "Private withdrawal booked", "balance": balance})
}
