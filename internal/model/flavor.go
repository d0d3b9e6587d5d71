package model

// Flavor is a snack variety. Names are unique and rows are never deleted.
type Flavor struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}
