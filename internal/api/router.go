package api

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/qs3c/studio_go_server/config"
	"github.com/qs3c/studio_go_server/internal/api/handler"
	"github.com/qs3c/studio_go_server/internal/api/middleware"
	"github.com/qs3c/studio_go_server/internal/pkg/metrics"
)

type Router struct {
	authHandler         *handler.AuthHandler
	subscriptionHandler *handler.SubscriptionHandler
	attendanceHandler   *handler.AttendanceHandler
	planHandler         *handler.PlanHandler
	clientHandler       *handler.ClientHandler
	classHandler        *handler.ClassHandler
	rdb                 *redis.Client
	cfg                 *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	attendanceHandler *handler.AttendanceHandler,
	planHandler *handler.PlanHandler,
	clientHandler *handler.ClientHandler,
	classHandler *handler.ClassHandler,
	rdb *redis.Client,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:         authHandler,
		subscriptionHandler: subscriptionHandler,
		attendanceHandler:   attendanceHandler,
		planHandler:         planHandler,
		clientHandler:       clientHandler,
		classHandler:        classHandler,
		rdb:                 rdb,
		cfg:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", metrics.Handler())

	// 公开接口 - 认证
	auth := engine.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimit(r.rdb, r.cfg.RateLimit), r.authHandler.Login)
	}

	// 管理端（仅管理员）
	admin := engine.Group("/admin")
	admin.Use(middleware.Auth(r.cfg.JWT.Secret), middleware.RequireAdmin())
	{
		admin.POST("/clients/:user_id/subscription", r.subscriptionHandler.Assign)
		admin.GET("/clients", r.clientHandler.List)
		admin.GET("/plans", r.planHandler.List)
		admin.POST("/plans", r.planHandler.Create)
	}

	// 教练端（教练/管理员）
	classes := engine.Group("/classes")
	classes.Use(middleware.Auth(r.cfg.JWT.Secret))
	{
		classes.GET("", r.classHandler.List)
		classes.POST("/:class_id/bookings", r.classHandler.CreateBooking)
		classes.POST("/:class_id/attendance/:booking_id", r.attendanceHandler.Mark)
	}

	return engine
}
