package repository

import (
	"pringles-wms/internal/model"

	"gorm.io/gorm"
)

// intakeBatchSize bounds the rows per INSERT statement when storing a delivery
const intakeBatchSize = 100

type StockRepository interface {
	// CreateUnits stores every unit in a single transaction.
	CreateUnits(units []model.StockUnit) error
	// CurrentStock groups in-stock units by flavor and expiry date, ordered by flavor name then expiry.
	CurrentStock() ([]model.StockLevel, error)
	// CountByFlavor totals in-stock units per flavor, ordered by flavor name.
	CountByFlavor() ([]model.FlavorStock, error)
}

type stockRepo struct {
	db *gorm.DB
}

func NewStockRepo(db *gorm.DB) StockRepository {
	return &stockRepo{db}
}

func (r *stockRepo) CreateUnits(units []model.StockUnit) error {
	if len(units) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&units, intakeBatchSize).Error
	})
}

func (r *stockRepo) CurrentStock() ([]model.StockLevel, error) {
	var levels []model.StockLevel
	err := r.db.Table("stock_units AS s").
		Select(`
			f.id AS flavor_id,
			f.name AS flavor_name,
			s.expiry_date AS expiry_date,
			COUNT(*) AS unit_count
		`).
		Joins("JOIN flavors f ON f.id = s.flavor_id").
		Where("s.status = ?", model.StatusInStock).
		Group("f.id, f.name, s.expiry_date").
		Order("f.name ASC, s.expiry_date ASC").
		Scan(&levels).Error
	return levels, err
}

func (r *stockRepo) CountByFlavor() ([]model.FlavorStock, error) {
	var counts []model.FlavorStock
	err := r.db.Table("stock_units AS s").
		Select("f.id AS flavor_id, f.name AS flavor_name, COUNT(*) AS available").
		Joins("JOIN flavors f ON f.id = s.flavor_id").
		Where("s.status = ?", model.StatusInStock).
		Group("f.id, f.name").
		Order("f.name ASC").
		Scan(&counts).Error
	return counts, err
}
