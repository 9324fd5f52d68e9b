package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qs3c/studio_go_server/internal/model"
	"github.com/qs3c/studio_go_server/internal/model/dto"
	"github.com/qs3c/studio_go_server/internal/pkg/response"
	"github.com/qs3c/studio_go_server/internal/service"
)

type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// Mark 录入考勤
// POST /classes/:class_id/attendance/:booking_id
func (h *AttendanceHandler) Mark(c *gin.Context) {
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
	bookingID := c.Param("booking_id")
	if _, err := uuid.Parse(bookingID); err != nil {
		response.ParamError(c, "无效的预约ID")
		return
	}

	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	item, err := h.attendanceService.Mark(c.Request.Context(), actor, classID, bookingID, model.AttendanceStatus(req.Status))
	if err != nil {
		switch err {
		case service.ErrInvalidAttendanceStatus:
			response.ParamError(c, err.Error())
		case service.ErrClassNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrBookingNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrClassNotStarted:
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "考勤录入成功", gin.H{"attendance": item})
}
