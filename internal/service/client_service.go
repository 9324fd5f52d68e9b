package service

import (
	"github.com/qs3c/studio_go_server/internal/model"
	"github.com/qs3c/studio_go_server/internal/repository"
)

type ClientService struct {
	userRepo *repository.UserRepository
}

func NewClientService(userRepo *repository.UserRepository) *ClientService {
	return &ClientService{userRepo: userRepo}
}

// List 会员列表（分页）
func (s *ClientService) List(page, pageSize int) ([]*model.User, int64, error) {
	return s.userRepo.List(page, pageSize)
}
