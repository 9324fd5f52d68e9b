package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/studio_go_server/internal/pkg/metrics"
	"github.com/qs3c/studio_go_server/internal/repository"
)

// ReconcileService 聚合对账。会员的 visits_count / minutes_practice 是
// 增量维护的派生值，这里定期从考勤明细重算并修复漂移。
type ReconcileService struct {
	db       *gorm.DB
	userRepo *repository.UserRepository
	attRepo  *repository.AttendanceRepository
	subRepo  *repository.SubscriptionRepository
}

func NewReconcileService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	attRepo *repository.AttendanceRepository,
	subRepo *repository.SubscriptionRepository,
) *ReconcileService {
	return &ReconcileService{
		db:       db,
		userRepo: userRepo,
		attRepo:  attRepo,
		subRepo:  subRepo,
	}
}

// ReconcileCounters 重算所有会员的出勤聚合，返回修复的会员数
func (s *ReconcileService) ReconcileCounters() (int, error) {
	totals, err := s.attRepo.AttendedTotals()
	if err != nil {
		return 0, err
	}

	expected := make(map[int64]repository.UserTotals, len(totals))
	for _, t := range totals {
		expected[t.UserID] = t
	}

	users, err := s.userRepo.ListAll()
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, user := range users {
		want := expected[user.ID] // 没有出勤记录即全零
		if user.VisitsCount == want.Visits && user.MinutesPractice == want.Minutes {
			continue
		}

		log.Printf("Reconcile: user %d counters drifted (visits %d -> %d, minutes %d -> %d)",
			user.ID, user.VisitsCount, want.Visits, user.MinutesPractice, want.Minutes)

		if err := s.userRepo.UpdateCounters(s.db, user.ID, want.Visits, want.Minutes); err != nil {
			return repaired, err
		}
		metrics.ReconcileRepairs.Inc()
		repaired++
	}

	return repaired, nil
}

// ExpiredSubscriptionCount 过期订阅巡检（软结束的行无需清理，仅统计）
func (s *ReconcileService) ExpiredSubscriptionCount() (int64, error) {
	today := dateOnly(time.Now())
	return s.subRepo.CountExpired(today)
}
