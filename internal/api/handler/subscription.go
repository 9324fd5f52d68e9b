package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qs3c/studio_go_server/internal/model/dto"
	"github.com/qs3c/studio_go_server/internal/pkg/response"
	"github.com/qs3c/studio_go_server/internal/service"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

// Assign 给会员分配套餐
// POST /admin/clients/:user_id/subscription
func (h *SubscriptionHandler) Assign(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	// 标识符先过格式校验，再查库
	userID := c.Param("user_id")
	if _, err := uuid.Parse(userID); err != nil {
		response.ParamError(c, "无效的会员ID")
		return
	}

	var req dto.AssignSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}
	if _, err := uuid.Parse(req.PlanID); err != nil {
		response.ParamError(c, "无效的套餐ID")
		return
	}

	details, err := h.subscriptionService.Assign(c.Request.Context(), actor, userID, req.PlanID)
	if err != nil {
		switch err {
		case service.ErrClientNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrPlanNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrSubscriptionConflict:
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Created(c, "套餐分配成功", gin.H{"details": details})
}
