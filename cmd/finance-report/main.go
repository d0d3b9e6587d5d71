// Command finance-report prints the financial summary and the current restock
// suggestion without starting the HTTP server.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"pringles-wms/internal/config"
	"pringles-wms/internal/model"
	"pringles-wms/internal/repository"
	"pringles-wms/internal/restock"
	"pringles-wms/internal/service"
	"pringles-wms/pkg/database"
	"pringles-wms/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = log.Sync() }()

	db, err := database.Connect(cfg.DatabaseOptions())
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	summary, err := service.NewSummaryService(
		repository.NewSaleRepo(db),
		repository.NewExpenseRepo(db),
		repository.NewAccountRepo(db),
		repository.NewBalanceRepo(db),
	).FinancialSummary()
	if err != nil {
		log.Fatal("failed to compute financial summary", zap.Error(err))
	}

	inventory := service.NewInventoryService(
		repository.NewFlavorRepo(db),
		repository.NewStockRepo(db),
		service.LocalToday(cfg.Location()),
		nil,
		log.Named("svc.inventory"),
	)
	plan, err := inventory.RestockPlan()
	if err != nil {
		log.Fatal("failed to build restock plan", zap.Error(err))
	}

	printSummary(summary)
	fmt.Println()
	printPlan(plan)
}

func printSummary(s *model.FinancialSummary) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Financial summary\t\t")
	rows := []struct {
		label string
		value string
	}{
		{"Cash in", s.CashIn.StringFixed(2)},
		{"Cash expenses", s.CashExpenses.StringFixed(2)},
		{"Bank turnover", s.BankTurnover.StringFixed(2)},
		{"Bank expenses", s.BankExpenses.StringFixed(2)},
		{"Private withdrawal", s.PrivateWithdrawal.StringFixed(2)},
		{"Till balance", s.TillBalance.StringFixed(2)},
		{"Total profit", s.TotalProfit.StringFixed(2)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s:\t%s\t\n", r.label, r.value)
	}
	w.Flush()
}

func printPlan(plan restock.Plan) {
	fmt.Printf("Restock suggestion (full rows of %d, max %d cans)\n", restock.RowSize, restock.MachineCapacity)
	if len(plan) == 0 {
		fmt.Println("Not enough full rows of any flavor in stock.")
		return
	}
	for _, e := range plan {
		fmt.Printf("  %s: %d cans\n", e.FlavorName, e.Count)
	}
	fmt.Printf("Total: %d cans\n", plan.Total())
}
