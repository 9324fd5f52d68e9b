package main

import (
	"fmt"
	"log"

	"github.com/qs3c/studio_go_server/config"
	"github.com/qs3c/studio_go_server/internal/api"
	"github.com/qs3c/studio_go_server/internal/api/handler"
	"github.com/qs3c/studio_go_server/internal/database"
	"github.com/qs3c/studio_go_server/internal/pkg/cron"
	"github.com/qs3c/studio_go_server/internal/repository"
	"github.com/qs3c/studio_go_server/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	log.Println("Database connected")

	// 初始化 Redis（登录限流，连接失败不阻断启动）
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, login rate limiting disabled: %v", err)
		rdb = nil
	} else {
		log.Println("Redis connected")
	}

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	trainerRepo := repository.NewTrainerRepository(db)
	planRepo := repository.NewPlanRepository(db)
	classRepo := repository.NewClassRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	attRepo := repository.NewAttendanceRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// 初始化 Service
	authService := service.NewAuthService(trainerRepo, cfg)
	subscriptionService := service.NewSubscriptionService(db, userRepo, planRepo, subRepo, auditRepo, cfg)
	attendanceService := service.NewAttendanceService(db, classRepo, bookingRepo, attRepo, userRepo, auditRepo, cfg)
	planService := service.NewPlanService(planRepo)
	clientService := service.NewClientService(userRepo)
	bookingService := service.NewBookingService(db, bookingRepo, classRepo, userRepo)
	reconcileService := service.NewReconcileService(db, userRepo, attRepo, subRepo)

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(authService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	planHandler := handler.NewPlanHandler(planService)
	clientHandler := handler.NewClientHandler(clientService)
	classHandler := handler.NewClassHandler(bookingService)

	// 启动定时任务
	cronService := cron.NewService(reconcileService, cfg.Cron.ReconcileHour)
	cronService.Start()
	defer cronService.Stop()

	// 初始化 Router
	router := api.NewRouter(
		authHandler,
		subscriptionHandler,
		attendanceHandler,
		planHandler,
		clientHandler,
		classHandler,
		rdb,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
