package model

import (
	"time"
)

// 员工角色
const (
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

// Trainer 教练 / 管理员账号，审计日志里的操作者
type Trainer struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	PublicID     string    `gorm:"size:36;uniqueIndex;not null" json:"public_id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:20;not null;default:trainer" json:"role"` // trainer, admin
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Trainer) TableName() string {
	return "trainers"
}
