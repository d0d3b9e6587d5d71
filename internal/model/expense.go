package model

import "github.com/shopspring/decimal"

type FundingSource string

const (
	SourceCash FundingSource = "cash"
	SourceBank FundingSource = "bank"
)

// Valid reports whether s is one of the known funding sources
func (s FundingSource) Valid() bool {
	return s == SourceCash || s == SourceBank
}

type Expense struct {
	BaseModel
	Date     string          `gorm:"column:booked_on;type:varchar(10);not null;index" json:"date"`
	Amount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Category string          `gorm:"type:varchar(100)" json:"category"`
	Note     string          `gorm:"type:text" json:"note"`
	Source   FundingSource   `gorm:"type:varchar(10);not null;index" json:"source"`
}
