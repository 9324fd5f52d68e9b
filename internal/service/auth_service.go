package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/qs3c/studio_go_server/config"
	"github.com/qs3c/studio_go_server/internal/model"
	"github.com/qs3c/studio_go_server/internal/model/dto"
	"github.com/qs3c/studio_go_server/internal/pkg/jwt"
	"github.com/qs3c/studio_go_server/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
)

type AuthService struct {
	trainerRepo *repository.TrainerRepository
	cfg         *config.Config
}

func NewAuthService(trainerRepo *repository.TrainerRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		trainerRepo: trainerRepo,
		cfg:         cfg,
	}
}

// Login 员工（教练/管理员）登录
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	trainer, err := s.trainerRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(trainer.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 生成 Token，角色写进声明
	token, err := jwt.GenerateToken(trainer.ID, trainer.Role, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		Trainer: &dto.TrainerInfo{
			ID:    trainer.PublicID,
			Name:  trainer.Name,
			Email: trainer.Email,
			Role:  trainer.Role,
		},
	}, nil
}

// HashPassword 生成密码哈希（建号工具用）
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GetTrainerByID 根据 ID 获取员工
func (s *AuthService) GetTrainerByID(id int64) (*model.Trainer, error) {
	return s.trainerRepo.GetByID(id)
}
