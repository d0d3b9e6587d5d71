package repository

import (
	"pringles-wms/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BalanceRepository stores named single values. A name that was never written reads as zero.
type BalanceRepository interface {
	Get(name string) (decimal.Decimal, error)
	// Adjust replaces the value with fn(current) inside one transaction and returns the stored result.
	Adjust(name string, fn func(current decimal.Decimal) decimal.Decimal) (decimal.Decimal, error)
}

type balanceRepo struct {
	db *gorm.DB
}

func NewBalanceRepo(db *gorm.DB) BalanceRepository {
	return &balanceRepo{db}
}

func (r *balanceRepo) Get(name string) (decimal.Decimal, error) {
	return get(r.db, name)
}

func (r *balanceRepo) Adjust(name string, fn func(current decimal.Decimal) decimal.Decimal) (decimal.Decimal, error) {
	var next decimal.Decimal
	err := r.db.Transaction(func(tx *gorm.DB) error {
		current, err := get(tx, name)
		if err != nil {
			return err
		}
		next = fn(current)
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount"}),
		}).Create(&model.Balance{Name: name, Amount: next}).Error
	})
	if err != nil {
		return decimal.Zero, err
	}
	return next, nil
}

func get(db *gorm.DB, name string) (decimal.Decimal, error) {
	var rows []model.Balance
	if err := db.Where("name = ?", name).Limit(1).Find(&rows).Error; err != nil {
		return decimal.Zero, err
	}
	if len(rows) == 0 {
		return decimal.Zero, nil
	}
	return rows[0].Amount, nil
}
