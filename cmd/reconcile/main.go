package main

import (
	"log"

	"github.com/qs3c/studio_go_server/config"
	"github.com/qs3c/studio_go_server/internal/database"
	"github.com/qs3c/studio_go_server/internal/repository"
	"github.com/qs3c/studio_go_server/internal/service"
)

// 一次性对账工具：从考勤明细重算会员聚合计数器后退出
func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	attRepo := repository.NewAttendanceRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	reconcileService := service.NewReconcileService(db, userRepo, attRepo, subRepo)

	repaired, err := reconcileService.ReconcileCounters()
	if err != nil {
		log.Fatalf("Reconciliation failed: %v", err)
	}
	log.Printf("Reconciliation completed, repaired=%d", repaired)

	expired, err := reconcileService.ExpiredSubscriptionCount()
	if err != nil {
		log.Fatalf("Subscription sweep failed: %v", err)
	}
	log.Printf("Expired subscriptions retained as history: %d", expired)
}
