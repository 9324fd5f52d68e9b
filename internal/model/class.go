package model

import (
	"time"
)

// Class 排课记录。ClassDate 只取日期部分，StartTime 为 "HH:MM"（24小时制，
// 补零后字符串比较即时间先后比较）
type Class struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	PublicID        string    `gorm:"size:36;uniqueIndex;not null" json:"public_id"`
	TrainerID       int64     `gorm:"not null;index" json:"trainer_id"`
	Title           string    `gorm:"size:100;not null" json:"title"`
	ClassDate       time.Time `gorm:"not null;index" json:"class_date"`
	StartTime       string    `gorm:"size:5;not null" json:"start_time"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Trainer *Trainer `gorm:"foreignKey:TrainerID" json:"trainer,omitempty"`
}

func (Class) TableName() string {
	return "classes"
}

// HasStarted 课程是否已开始：日期早于今天，或为今天且开课时间不晚于当前时间
func (c *Class) HasStarted(now time.Time) bool {
	today := now.Format("2006-01-02")
	classDay := c.ClassDate.Format("2006-01-02")

	if classDay < today {
		return true
	}
	if classDay == today {
		return c.StartTime <= now.Format("15:04")
	}
	return false
}
