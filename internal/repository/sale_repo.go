package repository

import (
	"pringles-wms/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(sale *model.Sale) error
	FindAll() ([]model.Sale, error)
	SumCashCollected() (decimal.Decimal, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(sale *model.Sale) error {
	return r.db.Create(sale).Error
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Order("booked_on ASC, created_at ASC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) SumCashCollected() (decimal.Decimal, error) {
	return sum(r.db.Model(&model.Sale{}), "cash_collected")
}

// moneyScale matches the decimal(12,2) money columns.
const moneyScale = 2

// sum scans COALESCE(SUM(column), 0) of the scoped query, so an empty table yields zero.
// sqlite stores fractional decimals as REAL and sums them as float64, so the total is
// rounded back to the column scale.
func sum(q *gorm.DB, column string) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := q.Select("COALESCE(SUM(" + column + "), 0)").Row().Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total.Round(moneyScale), nil
}
