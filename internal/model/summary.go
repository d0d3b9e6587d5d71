package model

import "github.com/shopspring/decimal"

// FinancialSummary is a point-in-time snapshot of cash position and profit.
// TotalProfit counts bank deposits as revenue, so capital transfers show up as profit.
type FinancialSummary struct {
	CashIn            decimal.Decimal `json:"cash_in"`
	CashExpenses      decimal.Decimal `json:"cash_expenses"`
	BankTurnover      decimal.Decimal `json:"bank_turnover"`
	BankExpenses      decimal.Decimal `json:"bank_expenses"`
	PrivateWithdrawal decimal.Decimal `json:"private_withdrawal"`
	TillBalance       decimal.Decimal `json:"till_balance"`
	TotalProfit       decimal.Decimal `json:"total_profit"`
}

// AllModels lists every persisted record set for AutoMigrate
func AllModels() []interface{} {
	return []interface{}{
		&Flavor{}, &StockUnit{}, &Machine{}, &Sale{}, &Expense{}, &AccountMovement{}, &Balance{},
	}
}
