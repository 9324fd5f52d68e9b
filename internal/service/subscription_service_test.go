package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qs3c/studio_go_server/config"
	"github.com/qs3c/studio_go_server/internal/model"
	"github.com/qs3c/studio_go_server/internal/repository"
	"github.com/qs3c/studio_go_server/internal/testutil"
)

func setupSubscriptionService(t *testing.T) (*SubscriptionService, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	planRepo := repository.NewPlanRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	service := NewSubscriptionService(db, userRepo, planRepo, subRepo, auditRepo, &config.Config{})

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return service, db, cleanup
}

func adminActor() Actor {
	return Actor{ID: 1, Type: "admin", IP: "127.0.0.1"}
}

func TestSubscriptionService_Assign_Success(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db, testutil.WithDurationDays(30), testutil.WithClassCount(8))

	details, err := service.Assign(context.Background(), adminActor(), user.PublicID, plan.PublicID)
	require.NoError(t, err)

	today := dateOnly(time.Now())
	assert.Equal(t, plan.Title, details.PlanTitle)
	assert.Equal(t, 30, details.DurationDays)
	assert.Equal(t, "8", details.ClassCount)
	assert.Equal(t, today.Format("2006-01-02"), details.StartDate)
	assert.Equal(t, today.AddDate(0, 0, 30).Format("2006-01-02"), details.EndDate)

	var subs []*model.Subscription
	require.NoError(t, db.Find(&subs).Error)
	require.Len(t, subs, 1)
	assert.Equal(t, user.ID, subs[0].UserID)
	assert.Equal(t, plan.ID, subs[0].PlanID)
}

func TestSubscriptionService_Assign_UnlimitedClassCount(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db, testutil.WithDurationDays(90))

	details, err := service.Assign(context.Background(), adminActor(), user.PublicID, plan.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "unlimited", details.ClassCount)
}

func TestSubscriptionService_Assign_SoftEndsPreviousSubscription(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	planA := testutil.TestPlan(t, db, testutil.WithDurationDays(30))
	planB := testutil.TestPlan(t, db, testutil.WithDurationDays(60))

	_, err := service.Assign(context.Background(), adminActor(), user.PublicID, planA.PublicID)
	require.NoError(t, err)

	_, err = service.Assign(context.Background(), adminActor(), user.PublicID, planB.PublicID)
	require.NoError(t, err)

	today := dateOnly(time.Now())
	yesterday := today.AddDate(0, 0, -1)

	// Previous subscription is retained as history, soft-ended to yesterday
	var old model.Subscription
	require.NoError(t, db.Where("user_id = ? AND plan_id = ?", user.ID, planA.ID).First(&old).Error)
	assert.Equal(t, yesterday.Format("2006-01-02"), old.EndDate.Format("2006-01-02"))

	// Exactly one subscription is active afterwards
	var actives []*model.Subscription
	require.NoError(t, db.Where("user_id = ? AND end_date >= ?", user.ID, today).Find(&actives).Error)
	require.Len(t, actives, 1)
	assert.Equal(t, planB.ID, actives[0].PlanID)
}

func TestSubscriptionService_Assign_SamePlanSameDayIdempotent(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db, testutil.WithDurationDays(30))

	first, err := service.Assign(context.Background(), adminActor(), user.PublicID, plan.PublicID)
	require.NoError(t, err)

	second, err := service.Assign(context.Background(), adminActor(), user.PublicID, plan.PublicID)
	require.NoError(t, err)

	// Replay hits the (user_id, plan_id, start_date) key: no duplicate row
	var count int64
	require.NoError(t, db.Model(&model.Subscription{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	assert.Equal(t, first.StartDate, second.StartDate)
	assert.Equal(t, first.EndDate, second.EndDate)

	today := dateOnly(time.Now())
	var actives []*model.Subscription
	require.NoError(t, db.Where("user_id = ? AND end_date >= ?", user.ID, today).Find(&actives).Error)
	assert.Len(t, actives, 1)
}

func TestSubscriptionService_Assign_ClientNotFound(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	plan := testutil.TestPlan(t, db)

	_, err := service.Assign(context.Background(), adminActor(), uuid.NewString(), plan.PublicID)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestSubscriptionService_Assign_PlanNotFound_RollsBack(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	planA := testutil.TestPlan(t, db, testutil.WithDurationDays(30))

	_, err := service.Assign(context.Background(), adminActor(), user.PublicID, planA.PublicID)
	require.NoError(t, err)

	_, err = service.Assign(context.Background(), adminActor(), user.PublicID, uuid.NewString())
	assert.ErrorIs(t, err, ErrPlanNotFound)

	// Failed call leaves no trace: existing subscription still active, no extra audit
	today := dateOnly(time.Now())
	var actives []*model.Subscription
	require.NoError(t, db.Where("user_id = ? AND end_date >= ?", user.ID, today).Find(&actives).Error)
	assert.Len(t, actives, 1)

	var auditCount int64
	require.NoError(t, db.Model(&model.AuditLog{}).
		Where("action = ?", model.AuditActionAssignSubscription).Count(&auditCount).Error)
	assert.Equal(t, int64(1), auditCount)
}

func TestSubscriptionService_Assign_AuditPerCommit(t *testing.T) {
	service, db, cleanup := setupSubscriptionService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	planA := testutil.TestPlan(t, db)
	planB := testutil.TestPlan(t, db)
	actor := Actor{ID: 42, Type: "admin", IP: "10.0.0.1"}

	_, err := service.Assign(context.Background(), actor, user.PublicID, planA.PublicID)
	require.NoError(t, err)
	_, err = service.Assign(context.Background(), actor, user.PublicID, planB.PublicID)
	require.NoError(t, err)

	auditRepo := repository.NewAuditRepository(db)
	count, err := auditRepo.CountByAction(model.AuditActionAssignSubscription)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	var entries []*model.AuditLog
	require.NoError(t, db.Where("action = ?", model.AuditActionAssignSubscription).
		Order("id ASC").Find(&entries).Error)
	require.Len(t, entries, 2)

	assert.Equal(t, int64(42), entries[0].ActorID)
	assert.Equal(t, "admin", entries[0].ActorType)
	assert.Equal(t, "10.0.0.1", entries[0].SourceIP)
	assert.Equal(t, "subscriptions", entries[0].TableName)
	assert.Contains(t, entries[1].OldData, `"active_subscriptions":1`)
	assert.Contains(t, entries[1].NewData, "subscription_id")
}
