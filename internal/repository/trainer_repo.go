package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/studio_go_server/internal/model"
)

type TrainerRepository struct {
	db *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) *TrainerRepository {
	return &TrainerRepository{db: db}
}

func (r *TrainerRepository) Create(trainer *model.Trainer) error {
	return r.db.Create(trainer).Error
}

func (r *TrainerRepository) GetByID(id int64) (*model.Trainer, error) {
	var trainer model.Trainer
	err := r.db.Where("id = ?", id).First(&trainer).Error
	if err != nil {
		return nil, err
	}
	return &trainer, nil
}

func (r *TrainerRepository) GetByEmail(email string) (*model.Trainer, error) {
	var trainer model.Trainer
	err := r.db.Where("email = ?", email).First(&trainer).Error
	if err != nil {
		return nil, err
	}
	return &trainer, nil
}
