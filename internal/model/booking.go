package model

import (
	"time"
)

// 预约状态
const (
	BookingStatusBooked    = "booked"
	BookingStatusAttended  = "attended"
	BookingStatusAbsent    = "absent"
	BookingStatusCancelled = "cancelled"
)

// Booking 会员对某节课的预约。状态只由考勤服务变更（迟到仍按 booked 计）
type Booking struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	PublicID  string    `gorm:"size:36;uniqueIndex;not null" json:"public_id"`
	UserID    int64     `gorm:"not null;index;uniqueIndex:uniq_booking_user_class" json:"user_id"`
	ClassID   int64     `gorm:"not null;index;uniqueIndex:uniq_booking_user_class" json:"class_id"`
	Status    string    `gorm:"size:20;not null;default:booked" json:"status"` // booked, attended, absent, cancelled
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Class *Class `gorm:"foreignKey:ClassID" json:"class,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}
