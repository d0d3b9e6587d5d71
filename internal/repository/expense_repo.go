package repository

import (
	"pringles-wms/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	FindAll() ([]model.Expense, error)
	SumBySource(source model.FundingSource) (decimal.Decimal, error)
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db}
}

func (r *expenseRepo) Create(expense *model.Expense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepo) FindAll() ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.Order("booked_on ASC, created_at ASC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) SumBySource(source model.FundingSource) (decimal.Decimal, error) {
	return sum(r.db.Model(&model.Expense{}).Where("source = ?", source), "amount")
}
