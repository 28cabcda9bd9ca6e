package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"houseadmin-http-service/internal/domain/services/container"
	"houseadmin-http-service/internal/error/code"
	"houseadmin-http-service/internal/error/response"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController(ctx *gin.Context, container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthCheckController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Ping 健康检查端点
func (h *HealthCheckController) Ping() {
	response.Success(h.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status 服务状态端点，检查数据库和Redis连接
func (h *HealthCheckController) Status() {
	dbStatus := "healthy"
	sqlDB, err := h.Container.GetDB().DB()
	if err != nil {
		dbStatus = "unhealthy: " + err.Error()
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	redisStatus := "healthy"
	if client := h.Container.GetRedisClient(); client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy: " + err.Error()
		}
	} else {
		redisStatus = "not configured"
	}

	response.Success(h.Ctx, gin.H{
		"database": dbStatus,
		"redis":    redisStatus,
		"time":     time.Now().Format(time.RFC3339),
	})
}
