package model

// Machine is a vending machine. The ID is chosen by the operator and never changes.
type Machine struct {
	ID       string `gorm:"type:varchar(64);primaryKey" json:"id"`
	Location string `gorm:"type:varchar(255)" json:"location"`
}
