package service

import (
	"fmt"
	"strings"

	"pringles-wms/internal/model"
	"pringles-wms/internal/repository"
	"pringles-wms/internal/ws"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MaxAccountMovement bounds a single bank booking in either direction.
var MaxAccountMovement = decimal.NewFromInt(10000)

type LedgerService interface {
	RecordExpense(amount decimal.Decimal, category, note string, source model.FundingSource) (*model.Expense, error)
	ListExpenses() ([]model.Expense, error)
	RecordAccountMovement(amount decimal.Decimal, note string) (*model.AccountMovement, error)
	ListAccountMovements() ([]model.AccountMovement, error)

	TakePrivateWithdrawal(amount decimal.Decimal) (decimal.Decimal, error)
	// ReturnPrivateWithdrawal lowers the balance, never below zero.
	ReturnPrivateWithdrawal(amount decimal.Decimal) (decimal.Decimal, error)
	// BookPrivateWithdrawal takes a positive amount and returns the magnitude of a negative one.
	BookPrivateWithdrawal(signed decimal.Decimal) (decimal.Decimal, error)
	PrivateWithdrawalBalance() (decimal.Decimal, error)
}

type ledgerService struct {
	expenseRepo repository.ExpenseRepository
	accountRepo repository.AccountRepository
	balanceRepo repository.BalanceRepository
	today       Today
	events      EventPublisher
	logger      *zap.Logger
}

func NewLedgerService(eRepo repository.ExpenseRepository, aRepo repository.AccountRepository, bRepo repository.BalanceRepository, today Today, events EventPublisher, logger *zap.Logger) LedgerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ledgerService{
		expenseRepo: eRepo,
		accountRepo: aRepo,
		balanceRepo: bRepo,
		today:       today,
		events:      publisherOrNoop(events),
		logger:      logger,
	}
}

func (s *ledgerService) RecordExpense(amount decimal.Decimal, category, note string, source model.FundingSource) (*model.Expense, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: expense %s", ErrInvalidAmount, amount.StringFixed(2))
	}
	if !source.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSource, source)
	}

	expense := &model.Expense{
		Date:     s.today(),
		Amount:   amount,
		Category: strings.TrimSpace(category),
		Note:     note,
		Source:   source,
	}
	if err := s.expenseRepo.Create(expense); err != nil {
		s.logger.Error("store expense", zap.Error(err))
		return nil, fmt.Errorf("store expense: %w", err)
	}

	s.logger.Info("expense recorded",
		zap.String("expense_id", expense.ID.String()),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("category", expense.Category),
		zap.String("source", string(source)),
	)
	s.publish("expense_created", expense, fmt.Sprintf("expense of %s paid from %s", amount.StringFixed(2), source))
	return expense, nil
}

func (s *ledgerService) ListExpenses() ([]model.Expense, error) {
	return s.expenseRepo.FindAll()
}

func (s *ledgerService) RecordAccountMovement(amount decimal.Decimal, note string) (*model.AccountMovement, error) {
	if amount.Abs().GreaterThan(MaxAccountMovement) {
		return nil, fmt.Errorf("%w: account movement %s exceeds %s", ErrInvalidAmount, amount.StringFixed(2), MaxAccountMovement.StringFixed(2))
	}

	movement := &model.AccountMovement{
		Date:   s.today(),
		Amount: amount,
		Kind:   model.KindOf(amount),
		Note:   note,
	}
	if err := s.accountRepo.Create(movement); err != nil {
		s.logger.Error("store account movement", zap.Error(err))
		return nil, fmt.Errorf("store account movement: %w", err)
	}

	s.logger.Info("account movement recorded",
		zap.String("movement_id", movement.ID.String()),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("kind", string(movement.Kind)),
	)
	s.publish("account_movement_created", movement, fmt.Sprintf("bank %s of %s", movement.Kind, amount.Abs().StringFixed(2)))
	return movement, nil
}

func (s *ledgerService) ListAccountMovements() ([]model.AccountMovement, error) {
	return s.accountRepo.FindAll()
}

func (s *ledgerService) TakePrivateWithdrawal(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: withdrawal must be positive", ErrInvalidAmount)
	}
	return s.adjustPrivate("private_withdrawal_taken", amount, func(current decimal.Decimal) decimal.Decimal {
		return current.Add(amount)
	})
}

func (s *ledgerService) ReturnPrivateWithdrawal(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: return must be positive", ErrInvalidAmount)
	}
	return s.adjustPrivate("private_withdrawal_returned", amount, func(current decimal.Decimal) decimal.Decimal {
		return decimal.Max(decimal.Zero, current.Sub(amount))
	})
}

func (s *ledgerService) BookPrivateWithdrawal(signed decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case signed.IsPositive():
		return s.TakePrivateWithdrawal(signed)
	case signed.IsNegative():
		return s.ReturnPrivateWithdrawal(signed.Neg())
	default:
		return decimal.Zero, fmt.Errorf("%w: amount must not be zero", ErrInvalidAmount)
	}
}

func (s *ledgerService) PrivateWithdrawalBalance() (decimal.Decimal, error) {
	return s.balanceRepo.Get(model.BalancePrivateWithdrawal)
}

func (s *ledgerService) adjustPrivate(action string, amount decimal.Decimal, fn func(decimal.Decimal) decimal.Decimal) (decimal.Decimal, error) {
	balance, err := s.balanceRepo.Adjust(model.BalancePrivateWithdrawal, fn)
	if err != nil {
		s.logger.Error("adjust private withdrawal", zap.String("action", action), zap.Error(err))
		return decimal.Zero, fmt.Errorf("adjust private withdrawal: %w", err)
	}

	s.logger.Info("private withdrawal booked",
		zap.String("action", action),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("balance", balance.StringFixed(2)),
	)
	s.publish(action, map[string]interface{}{"amount": amount, "balance": balance},
		fmt.Sprintf("private withdrawal balance is now %s", balance.StringFixed(2)))
	return balance, nil
}

func (s *ledgerService) publish(action string, data interface{}, message string) {
	s.events.Publish(ws.Event{Type: "ledger_update", Action: action, Data: data, Message: message})
}
