package handler

import "github.com/gofiber/fiber/v2"

type Handlers struct {
	Inventory *InventoryHandler
	Machines  *MachineHandler
	Sales     *SalesHandler
	Ledger    *LedgerHandler
	Dashboard *DashboardHandler
}

// RegisterRoutes mounts every API endpoint under router.
func RegisterRoutes(router fiber.Router, h Handlers) {
	router.Get("/flavors", h.Inventory.GetFlavors)
	router.Post("/flavors", h.Inventory.CreateFlavor)
	router.Get("/stock", h.Inventory.GetStock)
	router.Post("/stock", h.Inventory.CreateIntake)
	router.Get("/restock-plan", h.Inventory.GetRestockPlan)

	router.Get("/machines", h.Machines.GetMachines)
	router.Post("/machines", h.Machines.CreateMachine)

	router.Get("/sales", h.Sales.GetSales)
	router.Post("/sales", h.Sales.CreateSale)

	router.Get("/expenses", h.Ledger.GetExpenses)
	router.Post("/expenses", h.Ledger.CreateExpense)
	router.Get("/account-movements", h.Ledger.GetAccountMovements)
	router.Post("/account-movements", h.Ledger.CreateAccountMovement)
	router.Get("/private-withdrawal", h.Ledger.GetPrivateWithdrawal)
	router.Post("/private-withdrawal", h.Ledger.BookPrivateWithdrawal)
	router.Post("/private-withdrawal/take", h.Ledger.TakePrivateWithdrawal)
	router.Post("/private-withdrawal/return", h.Ledger.ReturnPrivateWithdrawal)

	router.Get("/summary", h.Dashboard.GetSummary)
}
