package model

import (
	"time"
)

// AttendanceStatus 考勤状态。封闭枚举，避免游离字符串漏过计数调整
type AttendanceStatus string

const (
	// AttendanceNone 尚未录入考勤（attendances 表无行）
	AttendanceNone     AttendanceStatus = ""
	AttendanceAttended AttendanceStatus = "attended"
	AttendanceAbsent   AttendanceStatus = "absent"
	AttendanceLate     AttendanceStatus = "late"
)

// Valid 是否是可录入的考勤状态
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceAttended, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

// Attendance 考勤记录，每个预约至多一条（booking_id 唯一约束保证）
type Attendance struct {
	ID        int64            `gorm:"primaryKey" json:"id"`
	BookingID int64            `gorm:"not null;uniqueIndex" json:"booking_id"`
	Status    AttendanceStatus `gorm:"size:20;not null" json:"status"`
	MarkedAt  time.Time        `gorm:"not null" json:"marked_at"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}
