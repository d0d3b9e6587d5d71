package model

import "github.com/shopspring/decimal"

// BalancePrivateWithdrawal is the key of the running private withdrawal total.
const BalancePrivateWithdrawal = "private_withdrawal"

// Balance is a named single-value entry mutated in place
type Balance struct {
	Name   string          `gorm:"type:varchar(50);primaryKey" json:"name"`
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
}
