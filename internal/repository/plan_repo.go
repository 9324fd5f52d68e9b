package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/studio_go_server/internal/model"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(plan *model.Plan) error {
	return r.db.Create(plan).Error
}

func (r *PlanRepository) GetByID(id int64) (*model.Plan, error) {
	var plan model.Plan
	err := r.db.Where("id = ?", id).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) GetByPublicID(tx *gorm.DB, publicID string) (*model.Plan, error) {
	var plan model.Plan
	err := tx.Where("public_id = ?", publicID).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) List() ([]*model.Plan, error) {
	var plans []*model.Plan
	err := r.db.Order("id ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
