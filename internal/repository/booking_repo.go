package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/studio_go_server/internal/model"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(booking *model.Booking) error {
	return r.db.Create(booking).Error
}

func (r *BookingRepository) GetByID(id int64) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.Where("id = ?", id).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) GetByPublicID(tx *gorm.DB, publicID string) (*model.Booking, error) {
	var booking model.Booking
	err := tx.Where("public_id = ?", publicID).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByPublicIDForUpdate 锁定预约行后读取。同一预约的并发考勤在这里串行化
func (r *BookingRepository) GetByPublicIDForUpdate(tx *gorm.DB, publicID string) (*model.Booking, error) {
	var booking model.Booking
	err := lockForUpdate(tx).Where("public_id = ?", publicID).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) UpdateStatus(tx *gorm.DB, id int64, status string) error {
	return tx.Model(&model.Booking{}).Where("id = ?", id).Update("status", status).Error
}

func (r *BookingRepository) ExistsByUserAndClass(userID, classID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Booking{}).
		Where("user_id = ? AND class_id = ?", userID, classID).Count(&count).Error
	return count > 0, err
}

func (r *BookingRepository) ListByClass(classID int64) ([]*model.Booking, error) {
	var bookings []*model.Booking
	err := r.db.Where("class_id = ?", classID).Order("id ASC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
