package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qs3c/studio_go_server/internal/model/dto"
	"github.com/qs3c/studio_go_server/internal/pkg/response"
	"github.com/qs3c/studio_go_server/internal/service"
)

type ClassHandler struct {
	bookingService *service.BookingService
}

func NewClassHandler(bookingService *service.BookingService) *ClassHandler {
	return &ClassHandler{
		bookingService: bookingService,
	}
}

// List 课表
// GET /classes
func (h *ClassHandler) List(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	classes, err := h.bookingService.ListClasses(actor)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, classes)
}

// CreateBooking 给会员创建预约
// POST /classes/:class_id/bookings
func (h *ClassHandler) CreateBooking(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	classID := c.Param("class_id")
	if _, err := uuid.Parse(classID); err != nil {
		response.ParamError(c, "无效的课程ID")
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}
	if _, err := uuid.Parse(req.UserID); err != nil {
		response.ParamError(c, "无效的会员ID")
		return
	}

	booking, err := h.bookingService.Create(actor, classID, req.UserID)
	if err != nil {
		switch err {
		case service.ErrClassNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrClientNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrBookingExists:
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Created(c, "预约成功", booking)
}
