package model

import "github.com/shopspring/decimal"

// Sale is an append-only record of cans sold and cash taken out of a machine.
// Recording a sale does not touch StockUnit rows.
type Sale struct {
	BaseModel
	MachineID     string          `gorm:"type:varchar(64);not null;index" json:"machine_id"`
	Machine       *Machine        `gorm:"foreignKey:MachineID" json:"machine,omitempty"`
	Date          string          `gorm:"column:booked_on;type:varchar(10);not null;index" json:"date"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	CashCollected decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"cash_collected"`
}
