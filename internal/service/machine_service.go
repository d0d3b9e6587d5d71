package service

import (
	"fmt"
	"strings"

	"pringles-wms/internal/model"
	"pringles-wms/internal/repository"
	"pringles-wms/internal/ws"

	"go.uber.org/zap"
)

type MachineService interface {
	// RegisterMachine is idempotent by id; an existing machine keeps its location.
	RegisterMachine(id, location string) (machine *model.Machine, created bool, err error)
	ListMachines() ([]model.Machine, error)
}

type machineService struct {
	machineRepo repository.MachineRepository
	events      EventPublisher
	logger      *zap.Logger
}

func NewMachineService(mRepo repository.MachineRepository, events EventPublisher, logger *zap.Logger) MachineService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &machineService{machineRepo: mRepo, events: publisherOrNoop(events), logger: logger}
}

func (s *machineService) RegisterMachine(id, location string) (*model.Machine, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false, ErrInvalidName
	}

	created, err := s.machineRepo.CreateIfAbsent(&model.Machine{ID: id, Location: strings.TrimSpace(location)})
	if err != nil {
		s.logger.Error("create machine", zap.String("machine_id", id), zap.Error(err))
		return nil, false, fmt.Errorf("create machine: %w", err)
	}

	machine, err := s.machineRepo.FindByID(id)
	if err != nil {
		return nil, false, fmt.Errorf("load machine %q: %w", id, err)
	}

	if created {
		s.logger.Info("machine registered", zap.String("machine_id", id), zap.String("location", machine.Location))
		s.events.Publish(ws.Event{
			Type:    "machine_update",
			Action:  "machine_created",
			Data:    machine,
			Message: fmt.Sprintf("machine '%s' registered at %s", id, machine.Location),
		})
	}
	return machine, created, nil
}

func (s *machineService) ListMachines() ([]model.Machine, error) {
	return s.machineRepo.FindAll()
}
