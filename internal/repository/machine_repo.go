package repository

import (
	"pringles-wms/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MachineRepository interface {
	CreateIfAbsent(machine *model.Machine) (bool, error)
	FindAll() ([]model.Machine, error)
	FindByID(id string) (*model.Machine, error)
}

type machineRepo struct {
	db *gorm.DB
}

func NewMachineRepo(db *gorm.DB) MachineRepository {
	return &machineRepo{db}
}

func (r *machineRepo) CreateIfAbsent(machine *model.Machine) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(machine)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *machineRepo) FindAll() ([]model.Machine, error) {
	var machines []model.Machine
	err := r.db.Find(&machines).Error
	return machines, err
}

func (r *machineRepo) FindByID(id string) (*model.Machine, error) {
	var machine model.Machine
	if err := r.db.First(&machine, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &machine, nil
}
