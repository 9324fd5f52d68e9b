package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/qs3c/studio_go_server/internal/model"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// ListActiveForUpdate 锁定并返回会员当前生效的订阅（end_date >= today）。
// 同一会员的并发分配在这把锁上串行化。
func (r *SubscriptionRepository) ListActiveForUpdate(tx *gorm.DB, userID int64, today time.Time) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	err := lockForUpdate(tx).
		Where("user_id = ? AND end_date >= ?", userID, today).
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// SoftEnd 软结束：end_date 改到过去，保留历史行
func (r *SubscriptionRepository) SoftEnd(tx *gorm.DB, id int64, endDate time.Time) error {
	return tx.Model(&model.Subscription{}).Where("id = ?", id).
		Update("end_date", endDate).Error
}

// Upsert 以 (user_id, plan_id, start_date) 为键插入或更新 end_date，
// 重放同一天的分配调用因此是幂等的
func (r *SubscriptionRepository) Upsert(tx *gorm.DB, sub *model.Subscription) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "plan_id"}, {Name: "start_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"end_date", "updated_at"}),
	}).Create(sub).Error
}

// GetByTriple 按唯一键取回 upsert 后的规范行（冲突更新时 Create 不回填 ID）
func (r *SubscriptionRepository) GetByTriple(tx *gorm.DB, userID, planID int64, startDate time.Time) (*model.Subscription, error) {
	var sub model.Subscription
	err := tx.Where("user_id = ? AND plan_id = ? AND start_date = ?", userID, planID, startDate).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetActiveByUser 查询会员当前生效的订阅（无锁，列表展示用）
func (r *SubscriptionRepository) GetActiveByUser(userID int64, today time.Time) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.Where("user_id = ? AND end_date >= ?", userID, today).
		Order("end_date DESC").First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) ListByUser(userID int64) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	err := r.db.Where("user_id = ?", userID).Order("start_date DESC").Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// CountExpired 统计已过期订阅（对账任务巡检用）
func (r *SubscriptionRepository) CountExpired(today time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("end_date < ?", today).Count(&count).Error
	return count, err
}
