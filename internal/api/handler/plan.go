package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/studio_go_server/internal/model/dto"
	"github.com/qs3c/studio_go_server/internal/pkg/response"
	"github.com/qs3c/studio_go_server/internal/service"
)

type PlanHandler struct {
	planService *service.PlanService
}

func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// List 套餐列表
// GET /admin/plans
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.planService.List()
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, plans)
}

// Create 创建套餐
// POST /admin/plans
func (h *PlanHandler) Create(c *gin.Context) {
	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	plan, err := h.planService.Create(&req)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Created(c, "套餐创建成功", plan)
}
