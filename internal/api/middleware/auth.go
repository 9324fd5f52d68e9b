package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/studio_go_server/internal/pkg/jwt"
	"github.com/qs3c/studio_go_server/internal/pkg/response"
)

const (
	TrainerIDKey = "trainerID"
	RoleKey      = "role"
)

// Auth JWT 认证中间件，解析员工身份写入上下文
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AuthError(c, "请提供认证信息")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			response.AuthError(c, "认证格式错误")
			c.Abort()
			return
		}

		claims, err := jwt.ParseToken(tokenString, jwtSecret)
		if err != nil {
			response.AuthError(c, "认证失败或已过期")
			c.Abort()
			return
		}

		c.Set(TrainerIDKey, claims.TrainerID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// RequireAdmin 仅管理员可访问
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok || role != "admin" {
			response.PermissionError(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetTrainerID 从上下文获取员工 ID
func GetTrainerID(c *gin.Context) (int64, bool) {
	trainerID, exists := c.Get(TrainerIDKey)
	if !exists {
		return 0, false
	}
	id, ok := trainerID.(int64)
	return id, ok
}

// GetRole 从上下文获取员工角色
func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(RoleKey)
	if !exists {
		return "", false
	}
	r, ok := role.(string)
	return r, ok
}
