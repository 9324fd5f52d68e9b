package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/studio_go_server/internal/api/middleware"
	"github.com/qs3c/studio_go_server/internal/service"
)

// getActor 从认证上下文组装审计用的操作者身份
func getActor(c *gin.Context) (service.Actor, bool) {
	trainerID, ok := middleware.GetTrainerID(c)
	if !ok {
		return service.Actor{}, false
	}
	role, ok := middleware.GetRole(c)
	if !ok {
		return service.Actor{}, false
	}

	return service.Actor{
		ID:   trainerID,
		Type: role,
		IP:   c.ClientIP(),
	}, true
}
