package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/qs3c/studio_go_server/config"
	"github.com/qs3c/studio_go_server/internal/model"
	"github.com/qs3c/studio_go_server/internal/model/dto"
	"github.com/qs3c/studio_go_server/internal/pkg/metrics"
	"github.com/qs3c/studio_go_server/internal/repository"
)

var (
	ErrClientNotFound       = errors.New("会员不存在")
	ErrPlanNotFound         = errors.New("套餐不存在")
	ErrSubscriptionConflict = errors.New("订阅写入冲突，请重试")
)

type SubscriptionService struct {
	db        *gorm.DB
	userRepo  *repository.UserRepository
	planRepo  *repository.PlanRepository
	subRepo   *repository.SubscriptionRepository
	auditRepo *repository.AuditRepository
	cfg       *config.Config
}

func NewSubscriptionService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	planRepo *repository.PlanRepository,
	subRepo *repository.SubscriptionRepository,
	auditRepo *repository.AuditRepository,
	cfg *config.Config,
) *SubscriptionService {
	return &SubscriptionService{
		db:        db,
		userRepo:  userRepo,
		planRepo:  planRepo,
		subRepo:   subRepo,
		auditRepo: auditRepo,
		cfg:       cfg,
	}
}

// Assign 给会员分配套餐。单事务内完成：锁定该会员的订阅行，
// 软结束所有生效中的订阅，再以 (user_id, plan_id, start_date) 为键
// upsert 新订阅，最后追加一条审计记录。
// 不变量：任意时刻一个会员至多一条 end_date >= 今天的订阅。
func (s *SubscriptionService) Assign(ctx context.Context, actor Actor, userPublicID, planPublicID string) (*dto.SubscriptionDetails, error) {
	var details *dto.SubscriptionDetails

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.GetByPublicID(tx, userPublicID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			return err
		}

		plan, err := s.planRepo.GetByPublicID(tx, planPublicID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlanNotFound
			}
			return err
		}

		today := dateOnly(time.Now())

		// 锁定生效中的订阅行，并发的 Assign 在这里排队
		actives, err := s.subRepo.ListActiveForUpdate(tx, user.ID, today)
		if err != nil {
			return err
		}

		// 软结束：end_date 改到昨天，行保留
		yesterday := today.AddDate(0, 0, -1)
		for _, old := range actives {
			if err := s.subRepo.SoftEnd(tx, old.ID, yesterday); err != nil {
				return err
			}
		}

		sub := &model.Subscription{
			PublicID:  uuid.NewString(),
			UserID:    user.ID,
			PlanID:    plan.ID,
			StartDate: today,
			EndDate:   today.AddDate(0, 0, plan.DurationDays),
		}
		if err := s.subRepo.Upsert(tx, sub); err != nil {
			return ErrSubscriptionConflict
		}

		// 冲突路径下 Create 不回填主键，按唯一键取回规范行
		sub, err = s.subRepo.GetByTriple(tx, user.ID, plan.ID, today)
		if err != nil {
			return err
		}

		oldData := map[string]interface{}{"active_subscriptions": len(actives)}
		newData := map[string]interface{}{
			"subscription_id": sub.PublicID,
			"plan_id":         plan.PublicID,
			"start_date":      sub.StartDate.Format("2006-01-02"),
			"end_date":        sub.EndDate.Format("2006-01-02"),
		}
		if err := appendAudit(s.auditRepo, tx, actor, model.AuditActionAssignSubscription, "subscriptions", sub.ID, oldData, newData); err != nil {
			return err
		}

		details = buildSubscriptionDetails(sub, plan)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.SubscriptionsAssigned.Inc()
	return details, nil
}

func buildSubscriptionDetails(sub *model.Subscription, plan *model.Plan) *dto.SubscriptionDetails {
	classCount := "unlimited"
	if plan.ClassCount != nil {
		classCount = fmt.Sprintf("%d", *plan.ClassCount)
	}

	return &dto.SubscriptionDetails{
		SubscriptionID: sub.PublicID,
		PlanTitle:      plan.Title,
		DurationDays:   plan.DurationDays,
		ClassCount:     classCount,
		StartDate:      sub.StartDate.Format("2006-01-02"),
		EndDate:        sub.EndDate.Format("2006-01-02"),
	}
}

// dateOnly 截断到当天零点（UTC），所有订阅日期都用这个规范值，
// 唯一键和 end_date 比较才能跨 mysql/sqlite 一致
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
