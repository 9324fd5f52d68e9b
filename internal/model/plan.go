package model

import (
	"time"
)

// Plan 订阅套餐。ClassCount 为 nil 表示不限次
type Plan struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	PublicID     string    `gorm:"size:36;uniqueIndex;not null" json:"public_id"`
	Title        string    `gorm:"size:100;not null" json:"title"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationDays int       `gorm:"not null" json:"duration_days"`
	ClassCount   *int      `json:"class_count,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Plan) TableName() string {
	return "plans"
}
