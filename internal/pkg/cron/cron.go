package cron

import (
	"log"
	"time"

	"github.com/qs3c/studio_go_server/internal/service"
)

// Service 后台定时任务：每日聚合对账 + 每小时过期订阅巡检
type Service struct {
	reconcileService *service.ReconcileService
	reconcileHour    int
	stopChan         chan struct{}
}

func NewService(reconcileService *service.ReconcileService, reconcileHour int) *Service {
	if reconcileHour < 0 || reconcileHour > 23 {
		reconcileHour = 3
	}
	return &Service{
		reconcileService: reconcileService,
		reconcileHour:    reconcileHour,
		stopChan:         make(chan struct{}),
	}
}

// Start 启动定时任务
func (s *Service) Start() {
	go s.runDailyReconcile()
	go s.runExpirySweep()
	log.Println("Cron service started (counter reconcile + subscription sweep)")
}

// Stop 停止定时任务
func (s *Service) Stop() {
	close(s.stopChan)
	log.Println("Cron service stopped")
}

// runDailyReconcile 每日计数器对账任务
func (s *Service) runDailyReconcile() {
	now := time.Now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), s.reconcileHour, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	timer := time.NewTimer(next.Sub(now))

	for {
		select {
		case <-s.stopChan:
			timer.Stop()
			return
		case <-timer.C:
			s.reconcileCounters()
			timer.Reset(24 * time.Hour)
		}
	}
}

// reconcileCounters 从考勤明细重算会员聚合并修复漂移
func (s *Service) reconcileCounters() {
	log.Println("Starting counter reconciliation...")
	repaired, err := s.reconcileService.ReconcileCounters()
	if err != nil {
		log.Printf("Counter reconciliation failed: %v", err)
		return
	}
	log.Printf("Counter reconciliation completed, repaired=%d", repaired)
}

// runExpirySweep 每小时巡检一次过期订阅
func (s *Service) runExpirySweep() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			// 软结束的行无需清理，只记录规模
			count, err := s.reconcileService.ExpiredSubscriptionCount()
			if err != nil {
				log.Printf("Subscription sweep failed: %v", err)
				continue
			}
			if count > 0 {
				log.Printf("Subscription sweep: %d expired rows retained as history", count)
			}
		}
	}
}

// RunNow 立即执行一次对账（手动触发或 cmd/reconcile 用）
func (s *Service) RunNow() (int, error) {
	log.Println("Manual reconciliation triggered...")
	return s.reconcileService.ReconcileCounters()
}
