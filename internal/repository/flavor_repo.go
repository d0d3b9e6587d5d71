package repository

import (
	"pringles-wms/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FlavorRepository interface {
	// CreateIfAbsent inserts the flavor unless the name is taken and reports whether a row was written.
	CreateIfAbsent(flavor *model.Flavor) (bool, error)
	FindAll() ([]model.Flavor, error)
	FindByID(id uint) (*model.Flavor, error)
	FindByName(name string) (*model.Flavor, error)
}

type flavorRepo struct {
	db *gorm.DB
}

func NewFlavorRepo(db *gorm.DB) FlavorRepository {
	return &flavorRepo{db}
}

func (r *flavorRepo) CreateIfAbsent(flavor *model.Flavor) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).Create(flavor)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *flavorRepo) FindAll() ([]model.Flavor, error) {
	var flavors []model.Flavor
	err := r.db.Order("name ASC").Find(&flavors).Error
	return flavors, err
}

func (r *flavorRepo) FindByID(id uint) (*model.Flavor, error) {
	var flavor model.Flavor
	if err := r.db.First(&flavor, id).Error; err != nil {
		return nil, translate(err)
	}
	return &flavor, nil
}

func (r *flavorRepo) FindByName(name string) (*model.Flavor, error) {
	var flavor model.Flavor
	if err := r.db.Where("name = ?", name).First(&flavor).Error; err != nil {
		return nil, translate(err)
	}
	return &flavor, nil
}
