package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/qs3c/studio_go_server/internal/model"
)

// TestUser 创建测试会员
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	user := &model.User{
		PublicID: uuid.NewString(),
		Name:     fmt.Sprintf("Test Client %d", time.Now().UnixNano()%10000),
		Phone:    "13800000000",
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithCounters 设置会员聚合计数器初始值
func WithCounters(visits, minutes int) func(*model.User) {
	return func(u *model.User) {
		u.VisitsCount = visits
		u.MinutesPractice = minutes
	}
}

// TestTrainer 创建测试教练
func TestTrainer(t *testing.T, db *gorm.DB, opts ...func(*model.Trainer)) *model.Trainer {
	t.Helper()

	trainer := &model.Trainer{
		PublicID:     uuid.NewString(),
		Name:         fmt.Sprintf("Test Trainer %d", time.Now().UnixNano()%10000),
		Email:        fmt.Sprintf("trainer_%d@example.com", time.Now().UnixNano()),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwxyz123456", // bcrypt hash placeholder
		Role:         model.RoleTrainer,
	}

	for _, opt := range opts {
		opt(trainer)
	}

	if err := db.Create(trainer).Error; err != nil {
		t.Fatalf("Failed to create test trainer: %v", err)
	}

	return trainer
}

// WithRole 设置员工角色
func WithRole(role string) func(*model.Trainer) {
	return func(tr *model.Trainer) {
		tr.Role = role
	}
}

// WithPasswordHash 设置密码哈希
func WithPasswordHash(hash string) func(*model.Trainer) {
	return func(tr *model.Trainer) {
		tr.PasswordHash = hash
	}
}

// TestPlan 创建测试套餐
func TestPlan(t *testing.T, db *gorm.DB, opts ...func(*model.Plan)) *model.Plan {
	t.Helper()

	plan := &model.Plan{
		PublicID:     uuid.NewString(),
		Title:        fmt.Sprintf("Test Plan %d", time.Now().UnixNano()%10000),
		Price:        99.0,
		DurationDays: 30,
	}

	for _, opt := range opts {
		opt(plan)
	}

	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("Failed to create test plan: %v", err)
	}

	return plan
}

// WithDurationDays 设置套餐有效期
func WithDurationDays(days int) func(*model.Plan) {
	return func(p *model.Plan) {
		p.DurationDays = days
	}
}

// WithClassCount 设置套餐次数上限
func WithClassCount(count int) func(*model.Plan) {
	return func(p *model.Plan) {
		p.ClassCount = &count
	}
}

// TestClass 创建测试课程，默认昨天已结课（可录考勤）
func TestClass(t *testing.T, db *gorm.DB, trainerID int64, opts ...func(*model.Class)) *model.Class {
	t.Helper()

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	class := &model.Class{
		PublicID:        uuid.NewString(),
		TrainerID:       trainerID,
		Title:           fmt.Sprintf("Test Class %d", time.Now().UnixNano()%10000),
		ClassDate:       time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 60,
	}

	for _, opt := range opts {
		opt(class)
	}

	if err := db.Create(class).Error; err != nil {
		t.Fatalf("Failed to create test class: %v", err)
	}

	return class
}

// WithClassDate 设置上课日期
func WithClassDate(date time.Time) func(*model.Class) {
	return func(c *model.Class) {
		c.ClassDate = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	}
}

// WithStartTime 设置开课时间（HH:MM）
func WithStartTime(startTime string) func(*model.Class) {
	return func(c *model.Class) {
		c.StartTime = startTime
	}
}

// WithDurationMinutes 设置课程时长
func WithDurationMinutes(minutes int) func(*model.Class) {
	return func(c *model.Class) {
		c.DurationMinutes = minutes
	}
}

// TestBooking 创建测试预约
func TestBooking(t *testing.T, db *gorm.DB, userID, classID int64) *model.Booking {
	t.Helper()

	booking := &model.Booking{
		PublicID: uuid.NewString(),
		UserID:   userID,
		ClassID:  classID,
		Status:   model.BookingStatusBooked,
	}

	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("Failed to create test booking: %v", err)
	}

	return booking
}

// TestSubscription 创建测试订阅
func TestSubscription(t *testing.T, db *gorm.DB, userID, planID int64, startDate, endDate time.Time) *model.Subscription {
	t.Helper()

	sub := &model.Subscription{
		PublicID:  uuid.NewString(),
		UserID:    userID,
		PlanID:    planID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("Failed to create test subscription: %v", err)
	}

	return sub
}
