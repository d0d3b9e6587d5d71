package model

import "github.com/shopspring/decimal"

type MovementKind string

const (
	KindDeposit    MovementKind = "deposit"
	KindWithdrawal MovementKind = "withdrawal"
)

// KindOf derives the movement kind from the sign of amount. Zero counts as a deposit.
func KindOf(amount decimal.Decimal) MovementKind {
	if amount.IsNegative() {
		return KindWithdrawal
	}
	return KindDeposit
}

// AccountMovement is a bank account booking. Amount keeps its sign.
type AccountMovement struct {
	BaseModel
	Date   string          `gorm:"column:booked_on;type:varchar(10);not null;index" json:"date"`
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Kind   MovementKind    `gorm:"type:varchar(20);not null" json:"kind"`
	Note   string          `gorm:"type:text" json:"note"`
}
