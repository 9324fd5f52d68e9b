package dto

// AssignSubscriptionRequest 分配套餐请求
type AssignSubscriptionRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

// SubscriptionDetails 分配成功后返回的订阅详情。
// ClassCount 为 "unlimited" 或次数字符串；日期格式 YYYY-MM-DD
type SubscriptionDetails struct {
	SubscriptionID string `json:"subscription_id"`
	PlanTitle      string `json:"plan_title"`
	DurationDays   int    `json:"duration_days"`
	ClassCount     string `json:"class_count"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
}

// CreatePlanRequest 创建套餐请求
type CreatePlanRequest struct {
	Title        string  `json:"title" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
	DurationDays int     `json:"duration_days" binding:"required"`
	ClassCount   *int    `json:"class_count"`
}
