package service

import (
	"errors"
	"fmt"

	"pringles-wms/internal/model"
	"pringles-wms/internal/repository"
	"pringles-wms/internal/ws"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SalesService records machine takings. Sales do not consume StockUnit rows;
// stock is reconciled by hand.
type SalesService interface {
	RecordSale(machineID string, quantity int, cashCollected decimal.Decimal) (*model.Sale, error)
	ListSales() ([]model.Sale, error)
}

type salesService struct {
	saleRepo    repository.SaleRepository
	machineRepo repository.MachineRepository
	today       Today
	events      EventPublisher
	logger      *zap.Logger
}

func NewSalesService(sRepo repository.SaleRepository, mRepo repository.MachineRepository, today Today, events EventPublisher, logger *zap.Logger) SalesService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &salesService{
		saleRepo:    sRepo,
		machineRepo: mRepo,
		today:       today,
		events:      publisherOrNoop(events),
		logger:      logger,
	}
}

func (s *salesService) RecordSale(machineID string, quantity int, cashCollected decimal.Decimal) (*model.Sale, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if cashCollected.IsNegative() {
		return nil, fmt.Errorf("%w: cash collected %s", ErrInvalidAmount, cashCollected.StringFixed(2))
	}

	if _, err := s.machineRepo.FindByID(machineID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: machine %q", ErrInvalidReference, machineID)
		}
		return nil, fmt.Errorf("load machine %q: %w", machineID, err)
	}

	sale := &model.Sale{
		MachineID:     machineID,
		Date:          s.today(),
		Quantity:      quantity,
		CashCollected: cashCollected,
	}
	if err := s.saleRepo.Create(sale); err != nil {
		s.logger.Error("store sale", zap.String("machine_id", machineID), zap.Error(err))
		return nil, fmt.Errorf("store sale: %w", err)
	}

	s.logger.Info("sale recorded",
		zap.String("sale_id", sale.ID.String()),
		zap.String("machine_id", machineID),
		zap.Int("quantity", quantity),
		zap.String("cash_collected", cashCollected.StringFixed(2)),
	)
	s.events.Publish(ws.Event{
		Type:    "sale_recorded",
		Action:  "sale_created",
		Data:    sale,
		Message: fmt.Sprintf("%d cans sold at '%s'", quantity, machineID),
	})
	return sale, nil
}

func (s *salesService) ListSales() ([]model.Sale, error) {
	return s.saleRepo.FindAll()
}
