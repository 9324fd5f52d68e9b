package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/qs3c/studio_go_server/internal/model"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) GetByBookingID(tx *gorm.DB, bookingID int64) (*model.Attendance, error) {
	var att model.Attendance
	err := tx.Where("booking_id = ?", bookingID).First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// Upsert 每个预约至多一条考勤：booking_id 冲突时覆写状态和时间
func (r *AttendanceRepository) Upsert(tx *gorm.DB, att *model.Attendance) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "booking_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "marked_at", "updated_at"}),
	}).Create(att).Error
}

// UserTotals 按会员汇总的出勤聚合
type UserTotals struct {
	UserID  int64
	Visits  int
	Minutes int
}

// AttendedTotals 从考勤明细重算每个会员的出勤次数与练习分钟数（对账用）
func (r *AttendanceRepository) AttendedTotals() ([]UserTotals, error) {
	var totals []UserTotals
	err := r.db.Model(&model.Attendance{}).
		Select("bookings.user_id AS user_id, COUNT(*) AS visits, SUM(classes.duration_minutes) AS minutes").
		Joins("JOIN bookings ON bookings.id = attendances.booking_id").
		Joins("JOIN classes ON classes.id = bookings.class_id").
		Where("attendances.status = ?", model.AttendanceAttended).
		Group("bookings.user_id").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}
