package service

import (
	"fmt"

	"pringles-wms/internal/model"
	"pringles-wms/internal/repository"
)

type SummaryService interface {
	// FinancialSummary reads the ledgers at call time; nothing is cached.
	FinancialSummary() (*model.FinancialSummary, error)
}

type summaryService struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	accountRepo repository.AccountRepository
	balanceRepo repository.BalanceRepository
}

func NewSummaryService(sRepo repository.SaleRepository, eRepo repository.ExpenseRepository, aRepo repository.AccountRepository, bRepo repository.BalanceRepository) SummaryService {
	return &summaryService{
		saleRepo:    sRepo,
		expenseRepo: eRepo,
		accountRepo: aRepo,
		balanceRepo: bRepo,
	}
}

func (s *summaryService) FinancialSummary() (*model.FinancialSummary, error) {
	var sum model.FinancialSummary
	var err error

	if sum.CashIn, err = s.saleRepo.SumCashCollected(); err != nil {
		return nil, fmt.Errorf("sum cash collected: %w", err)
	}
	if sum.CashExpenses, err = s.expenseRepo.SumBySource(model.SourceCash); err != nil {
		return nil, fmt.Errorf("sum cash expenses: %w", err)
	}
	if sum.BankTurnover, err = s.accountRepo.SumAmounts(); err != nil {
		return nil, fmt.Errorf("sum account movements: %w", err)
	}
	if sum.BankExpenses, err = s.expenseRepo.SumBySource(model.SourceBank); err != nil {
		return nil, fmt.Errorf("sum bank expenses: %w", err)
	}
	if sum.PrivateWithdrawal, err = s.balanceRepo.Get(model.BalancePrivateWithdrawal); err != nil {
		return nil, fmt.Errorf("read private withdrawal: %w", err)
	}

	sum.TillBalance = sum.CashIn.Sub(sum.CashExpenses).Sub(sum.PrivateWithdrawal)
	sum.TotalProfit = sum.CashIn.Add(sum.BankTurnover).Sub(sum.CashExpenses.Add(sum.BankExpenses))
	return &sum, nil
}
