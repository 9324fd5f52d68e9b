package model

import (
	"time"
)

// Subscription 会员与套餐的绑定。
// (user_id, plan_id, start_date) 唯一，重复分配在该键上做幂等 upsert。
// "生效中" 定义为 end_date >= 今天；停用通过把 end_date 改到昨天实现（软结束，保留历史）。
type Subscription struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	PublicID  string    `gorm:"size:36;uniqueIndex;not null" json:"public_id"`
	UserID    int64     `gorm:"not null;index;uniqueIndex:uniq_sub_user_plan_start" json:"user_id"`
	PlanID    int64     `gorm:"not null;uniqueIndex:uniq_sub_user_plan_start" json:"plan_id"`
	StartDate time.Time `gorm:"not null;uniqueIndex:uniq_sub_user_plan_start" json:"start_date"`
	EndDate   time.Time `gorm:"not null;index" json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Plan *Plan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
