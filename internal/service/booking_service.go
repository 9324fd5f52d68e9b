package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/qs3c/studio_go_server/internal/model"
	"github.com/qs3c/studio_go_server/internal/model/dto"
	"github.com/qs3c/studio_go_server/internal/repository"
)

var (
	ErrBookingExists = errors.New("该会员已预约此课程")
)

type BookingService struct {
	bookingRepo *repository.BookingRepository
	classRepo   *repository.ClassRepository
	userRepo    *repository.UserRepository
	db          *gorm.DB
}

func NewBookingService(
	db *gorm.DB,
	bookingRepo *repository.BookingRepository,
	classRepo *repository.ClassRepository,
	userRepo *repository.UserRepository,
) *BookingService {
	return &BookingService{
		db:          db,
		bookingRepo: bookingRepo,
		classRepo:   classRepo,
		userRepo:    userRepo,
	}
}

// Create 给会员建一条课程预约
func (s *BookingService) Create(actor Actor, classPublicID, userPublicID string) (*dto.BookingItem, error) {
	class, err := s.classRepo.GetByPublicID(s.db, classPublicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	if !actor.IsAdmin() && class.TrainerID != actor.ID {
		return nil, ErrClassNotFound
	}

	user, err := s.userRepo.GetByPublicID(s.db, userPublicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	exists, err := s.bookingRepo.ExistsByUserAndClass(user.ID, class.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrBookingExists
	}

	booking := &model.Booking{
		PublicID: uuid.NewString(),
		UserID:   user.ID,
		ClassID:  class.ID,
		Status:   model.BookingStatusBooked,
	}
	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, err
	}

	return &dto.BookingItem{
		BookingID: booking.PublicID,
		ClassID:   class.PublicID,
		UserID:    user.PublicID,
		Status:    booking.Status,
	}, nil
}

// ListClasses 课表：管理员看全部，教练看自己的
func (s *BookingService) ListClasses(actor Actor) ([]*model.Class, error) {
	if actor.IsAdmin() {
		return s.classRepo.ListAll()
	}
	return s.classRepo.ListByTrainer(actor.ID)
}
