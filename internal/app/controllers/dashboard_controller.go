package controllers

import (
	"strconv"

	"houseadmin-http-service/internal/domain/services"
	"houseadmin-http-service/internal/domain/services/container"
	"houseadmin-http-service/internal/error/code"
	"houseadmin-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceDashboardController 定义仪表盘控制器接口
type InterfaceDashboardController interface {
	GetStats()
	GetProvisionLogs()
}

// DashboardController 处理仪表盘相关的请求
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController 创建一个新的仪表盘控制器
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDashboardFunc 返回一个处理仪表盘请求的Gin处理函数
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "getStats":
			controller.GetStats()
		case "getProvisionLogs":
			controller.GetProvisionLogs()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetStats 获取仪表盘统计数据
// @Summary 获取仪表盘统计
// @Description 获取房屋组、成员、报名记录的汇总统计数据
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/stats [get]
func (c *DashboardController) GetStats() {
	// 获取仪表盘服务
	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	stats, err := dashboardService.GetStats()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取统计数据失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, stats)
}

// 2. GetProvisionLogs 获取成员开通日志
// @Summary 获取成员开通日志
// @Description 获取成员开通流程的执行日志，按时间倒序排列
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/provision-logs [get]
func (c *DashboardController) GetProvisionLogs() {
	// 获取分页参数
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	// 获取开通服务
	provisionService := c.Container.GetService("provision").(services.InterfaceProvisionService)
	logs, total, err := provisionService.GetProvisionLogs(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取开通日志失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        logs,
	})
}
