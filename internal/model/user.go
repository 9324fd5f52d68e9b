package model

import (
	"time"
)

// User 会员（学员）。VisitsCount / MinutesPractice 是派生聚合值，
// 只允许考勤服务在事务内修改，对账任务负责兜底修复。
type User struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	PublicID        string    `gorm:"size:36;uniqueIndex;not null" json:"public_id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Phone           string    `gorm:"size:20" json:"phone,omitempty"`
	VisitsCount     int       `gorm:"not null;default:0" json:"visits_count"`
	MinutesPractice int       `gorm:"not null;default:0" json:"minutes_practice"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
