package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SubscriptionsAssigned 成功分配套餐次数
	SubscriptionsAssigned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studio_subscriptions_assigned_total",
		Help: "Total number of successful subscription assignments",
	})

	// AttendanceMarked 成功录入考勤次数，按状态区分
	AttendanceMarked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studio_attendance_marked_total",
		Help: "Total number of successful attendance marks",
	}, []string{"status"})

	// ReconcileRepairs 对账任务修复的会员计数器数量
	ReconcileRepairs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studio_reconcile_repairs_total",
		Help: "Total number of user aggregates repaired by reconciliation",
	})
)

// Handler 暴露 /metrics
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
