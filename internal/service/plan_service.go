package service

import (
	"github.com/google/uuid"

	"github.com/qs3c/studio_go_server/internal/model"
	"github.com/qs3c/studio_go_server/internal/model/dto"
	"github.com/qs3c/studio_go_server/internal/repository"
)

type PlanService struct {
	planRepo *repository.PlanRepository
}

func NewPlanService(planRepo *repository.PlanRepository) *PlanService {
	return &PlanService{planRepo: planRepo}
}

// Create 创建套餐
func (s *PlanService) Create(req *dto.CreatePlanRequest) (*model.Plan, error) {
	plan := &model.Plan{
		PublicID:     uuid.NewString(),
		Title:        req.Title,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		ClassCount:   req.ClassCount,
	}

	if err := s.planRepo.Create(plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// List 套餐列表
func (s *PlanService) List() ([]*model.Plan, error) {
	return s.planRepo.List()
}
