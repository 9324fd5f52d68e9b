package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/studio_go_server/internal/model"
)

type ClassRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

func (r *ClassRepository) Create(class *model.Class) error {
	return r.db.Create(class).Error
}

func (r *ClassRepository) GetByID(id int64) (*model.Class, error) {
	var class model.Class
	err := r.db.Where("id = ?", id).First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepository) GetByPublicID(tx *gorm.DB, publicID string) (*model.Class, error) {
	var class model.Class
	err := tx.Where("public_id = ?", publicID).First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepository) ListByTrainer(trainerID int64) ([]*model.Class, error) {
	var classes []*model.Class
	err := r.db.Where("trainer_id = ?", trainerID).
		Order("class_date ASC, start_time ASC").Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *ClassRepository) ListAll() ([]*model.Class, error) {
	var classes []*model.Class
	err := r.db.Order("class_date ASC, start_time ASC").Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}
