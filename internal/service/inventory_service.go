package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pringles-wms/internal/model"
	"pringles-wms/internal/repository"
	"pringles-wms/internal/restock"
	"pringles-wms/internal/ws"

	"go.uber.org/zap"
)

// MaxIntakeQuantity caps a single delivery.
const MaxIntakeQuantity = 500

type InventoryService interface {
	// RegisterFlavor is idempotent: an existing name is returned with created=false.
	RegisterFlavor(name string) (flavor *model.Flavor, created bool, err error)
	ListFlavors() ([]model.Flavor, error)
	Intake(flavorID uint, expiryDate string, quantity int) ([]model.StockUnit, error)
	CurrentStock() ([]model.StockLevel, error)
	RestockPlan() (restock.Plan, error)
}

type inventoryService struct {
	flavorRepo repository.FlavorRepository
	stockRepo  repository.StockRepository
	today      Today
	events     EventPublisher
	logger     *zap.Logger
}

func NewInventoryService(fRepo repository.FlavorRepository, sRepo repository.StockRepository, today Today, events EventPublisher, logger *zap.Logger) InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &inventoryService{
		flavorRepo: fRepo,
		stockRepo:  sRepo,
		today:      today,
		events:     publisherOrNoop(events),
		logger:     logger,
	}
}

func (s *inventoryService) RegisterFlavor(name string) (*model.Flavor, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, ErrInvalidName
	}

	created, err := s.flavorRepo.CreateIfAbsent(&model.Flavor{Name: name})
	if err != nil {
		s.logger.Error("create flavor", zap.String("name", name), zap.Error(err))
		return nil, false, fmt.Errorf("create flavor: %w", err)
	}

	flavor, err := s.flavorRepo.FindByName(name)
	if err != nil {
		return nil, false, fmt.Errorf("load flavor %q: %w", name, err)
	}

	if created {
		s.logger.Info("flavor registered", zap.Uint("flavor_id", flavor.ID), zap.String("name", name))
		s.events.Publish(ws.Event{
			Type:    "stock_update",
			Action:  "flavor_created",
			Data:    flavor,
			Message: fmt.Sprintf("flavor '%s' registered", name),
		})
	}
	return flavor, created, nil
}

func (s *inventoryService) ListFlavors() ([]model.Flavor, error) {
	return s.flavorRepo.FindAll()
}

func (s *inventoryService) Intake(flavorID uint, expiryDate string, quantity int) ([]model.StockUnit, error) {
	if quantity <= 0 || quantity > MaxIntakeQuantity {
		return nil, fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidQuantity, quantity, MaxIntakeQuantity)
	}
	expiry, err := time.Parse(model.DateLayout, strings.TrimSpace(expiryDate))
	if err != nil {
		return nil, ErrInvalidDate
	}

	flavor, err := s.flavorRepo.FindByID(flavorID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: flavor %d", ErrInvalidReference, flavorID)
	}
	if err != nil {
		return nil, fmt.Errorf("load flavor %d: %w", flavorID, err)
	}

	storedOn := s.today()
	units := make([]model.StockUnit, quantity)
	for i := range units {
		units[i] = model.StockUnit{
			FlavorID:   flavor.ID,
			ExpiryDate: expiry.Format(model.DateLayout),
			Status:     model.StatusInStock,
			StoredOn:   storedOn,
		}
	}

	if err := s.stockRepo.CreateUnits(units); err != nil {
		s.logger.Error("store stock units", zap.Uint("flavor_id", flavor.ID), zap.Int("quantity", quantity), zap.Error(err))
		return nil, fmt.Errorf("store stock units: %w", err)
	}

	s.logger.Info("stock intake",
		zap.Uint("flavor_id", flavor.ID),
		zap.String("flavor", flavor.Name),
		zap.String("expiry_date", units[0].ExpiryDate),
		zap.Int("quantity", quantity),
	)
	s.events.Publish(ws.Event{
		Type:   "stock_update",
		Action: "stock_intake",
		Data: map[string]interface{}{
			"flavor_id":   flavor.ID,
			"flavor_name": flavor.Name,
			"expiry_date": units[0].ExpiryDate,
			"quantity":    quantity,
		},
		Message: fmt.Sprintf("%d cans of '%s' stored", quantity, flavor.Name),
	})
	return units, nil
}

func (s *inventoryService) CurrentStock() ([]model.StockLevel, error) {
	return s.stockRepo.CurrentStock()
}

func (s *inventoryService) RestockPlan() (restock.Plan, error) {
	counts, err := s.stockRepo.CountByFlavor()
	if err != nil {
		return nil, fmt.Errorf("count stock by flavor: %w", err)
	}
	return restock.Suggest(counts), nil
}
