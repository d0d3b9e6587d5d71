package repository

import (
	"pringles-wms/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(movement *model.AccountMovement) error
	// FindAll returns movements by booking date ascending; same-day rows keep insertion order.
	FindAll() ([]model.AccountMovement, error)
	// SumAmounts is the signed total of all movements.
	SumAmounts() (decimal.Decimal, error)
}

type accountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepository {
	return &accountRepo{db}
}

func (r *accountRepo) Create(movement *model.AccountMovement) error {
	return r.db.Create(movement).Error
}

func (r *accountRepo) FindAll() ([]model.AccountMovement, error) {
	var movements []model.AccountMovement
	err := r.db.Order("booked_on ASC, created_at ASC").Find(&movements).Error
	return movements, err
}

func (r *accountRepo) SumAmounts() (decimal.Decimal, error) {
	return sum(r.db.Model(&model.AccountMovement{}), "amount")
}
