package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/studio_go_server/config"
	"github.com/qs3c/studio_go_server/internal/model"
	"github.com/qs3c/studio_go_server/internal/model/dto"
	"github.com/qs3c/studio_go_server/internal/pkg/jwt"
	"github.com/qs3c/studio_go_server/internal/repository"
	"github.com/qs3c/studio_go_server/internal/testutil"
)

func setupAuthService(t *testing.T) (*AuthService, *repository.TrainerRepository, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	trainerRepo := repository.NewTrainerRepository(db)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:      "test-secret-key",
			ExpireHours: 24,
		},
	}

	service := NewAuthService(trainerRepo, cfg)

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return service, trainerRepo, cleanup
}

func TestAuthService_Login_Success(t *testing.T) {
	service, trainerRepo, cleanup := setupAuthService(t)
	defer cleanup()

	hash, err := HashPassword("password123")
	require.NoError(t, err)

	trainer := &model.Trainer{
		PublicID:     "2b6a57f8-0000-4000-8000-000000000001",
		Name:         "Coach Li",
		Email:        "coach@example.com",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	require.NoError(t, trainerRepo.Create(trainer))

	resp, err := service.Login(&dto.LoginRequest{
		Email:    "coach@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, trainer.PublicID, resp.Trainer.ID)
	assert.Equal(t, model.RoleAdmin, resp.Trainer.Role)

	// Role travels inside the token claims
	claims, err := jwt.ParseToken(resp.Token, "test-secret-key")
	require.NoError(t, err)
	assert.Equal(t, trainer.ID, claims.TrainerID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, trainerRepo, cleanup := setupAuthService(t)
	defer cleanup()

	hash, err := HashPassword("password123")
	require.NoError(t, err)

	require.NoError(t, trainerRepo.Create(&model.Trainer{
		PublicID:     "2b6a57f8-0000-4000-8000-000000000002",
		Name:         "Coach Wang",
		Email:        "wang@example.com",
		PasswordHash: hash,
		Role:         model.RoleTrainer,
	}))

	_, err = service.Login(&dto.LoginRequest{
		Email:    "wang@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service, _, cleanup := setupAuthService(t)
	defer cleanup()

	_, err := service.Login(&dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
