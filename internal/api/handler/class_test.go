package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/studio_go_server/internal/api/middleware"
	"github.com/qs3c/studio_go_server/internal/model"
	"github.com/qs3c/studio_go_server/internal/model/dto"
	"github.com/qs3c/studio_go_server/internal/pkg/response"
	"github.com/qs3c/studio_go_server/internal/repository"
	"github.com/qs3c/studio_go_server/internal/service"
	"github.com/qs3c/studio_go_server/internal/testutil"
)

func setupClassHandler(t *testing.T) (*ClassHandler, *testContext, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	bookingRepo := repository.NewBookingRepository(db)
	classRepo := repository.NewClassRepository(db)
	userRepo := repository.NewUserRepository(db)

	bookingService := service.NewBookingService(db, bookingRepo, classRepo, userRepo)
	handler := NewClassHandler(bookingService)

	ctx := &testContext{DB: db}

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return handler, ctx, cleanup
}

func classRouter(handler *ClassHandler, trainerID int64, role string) *gin.Engine {
	router := gin.New()
	inject := func(c *gin.Context) {
		c.Set(middleware.TrainerIDKey, trainerID)
		c.Set(middleware.RoleKey, role)
	}
	router.GET("/classes", inject, handler.List)
	router.POST("/classes/:class_id/bookings", inject, handler.CreateBooking)
	return router
}

func TestClassHandler_List_TrainerSeesOwnClasses(t *testing.T) {
	handler, ctx, cleanup := setupClassHandler(t)
	defer cleanup()

	trainerA := testutil.TestTrainer(t, ctx.DB)
	trainerB := testutil.TestTrainer(t, ctx.DB)
	testutil.TestClass(t, ctx.DB, trainerA.ID)
	testutil.TestClass(t, ctx.DB, trainerB.ID)

	router := classRouter(handler, trainerA.ID, trainerA.Role)

	w := performRequest(router, "GET", "/classes", nil)
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusOK, w.Code)
	items, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestClassHandler_CreateBooking_Success(t *testing.T) {
	handler, ctx, cleanup := setupClassHandler(t)
	defer cleanup()

	trainer := testutil.TestTrainer(t, ctx.DB)
	user := testutil.TestUser(t, ctx.DB)
	class := testutil.TestClass(t, ctx.DB, trainer.ID)

	router := classRouter(handler, trainer.ID, trainer.Role)

	path := fmt.Sprintf("/classes/%s/bookings", class.PublicID)
	w := performRequest(router, "POST", path, dto.CreateBookingRequest{UserID: user.PublicID})
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, response.CodeSuccess, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, model.BookingStatusBooked, data["status"])
}

func TestClassHandler_CreateBooking_Duplicate(t *testing.T) {
	handler, ctx, cleanup := setupClassHandler(t)
	defer cleanup()

	trainer := testutil.TestTrainer(t, ctx.DB)
	user := testutil.TestUser(t, ctx.DB)
	class := testutil.TestClass(t, ctx.DB, trainer.ID)

	router := classRouter(handler, trainer.ID, trainer.Role)

	path := fmt.Sprintf("/classes/%s/bookings", class.PublicID)
	performRequest(router, "POST", path, dto.CreateBookingRequest{UserID: user.PublicID})

	w := performRequest(router, "POST", path, dto.CreateBookingRequest{UserID: user.PublicID})
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, response.CodeConflict, resp.Code)
}

func TestClassHandler_CreateBooking_InvalidUserID(t *testing.T) {
	handler, ctx, cleanup := setupClassHandler(t)
	defer cleanup()

	trainer := testutil.TestTrainer(t, ctx.DB)
	class := testutil.TestClass(t, ctx.DB, trainer.ID)

	router := classRouter(handler, trainer.ID, trainer.Role)

	path := fmt.Sprintf("/classes/%s/bookings", class.PublicID)
	w := performRequest(router, "POST", path, dto.CreateBookingRequest{UserID: "not-a-uuid"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
