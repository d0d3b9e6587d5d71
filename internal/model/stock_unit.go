package model

type StockStatus string

const (
	StatusInStock   StockStatus = "in_stock"
	StatusLoaded    StockStatus = "loaded"
	StatusSold      StockStatus = "sold"
	StatusDiscarded StockStatus = "discarded"
)

// StockUnit is one physical can in the storeroom
type StockUnit struct {
	BaseModel
	FlavorID   uint        `gorm:"not null;index" json:"flavor_id"`
	Flavor     *Flavor     `gorm:"foreignKey:FlavorID" json:"flavor,omitempty"`
	ExpiryDate string      `gorm:"type:varchar(10);not null;index" json:"expiry_date"`
	Status     StockStatus `gorm:"type:varchar(20);not null;default:'in_stock';index" json:"status"`
	StoredOn   string      `gorm:"type:varchar(10);not null" json:"stored_on"`
}

// StockLevel is one row of the current stock aggregate: in-stock cans per flavor and expiry date.
type StockLevel struct {
	FlavorID   uint   `json:"flavor_id"`
	FlavorName string `json:"flavor_name"`
	ExpiryDate string `json:"expiry_date"`
	Count      int    `gorm:"column:unit_count" json:"count"`
}

// FlavorStock is the in-stock count of a flavor across all expiry dates
type FlavorStock struct {
	FlavorID   uint   `json:"flavor_id"`
	FlavorName string `json:"flavor_name"`
	Available  int    `json:"available"`
}
