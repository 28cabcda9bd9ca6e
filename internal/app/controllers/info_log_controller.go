package controllers

import (
	"net/http"
	"strconv"

	"houseadmin-http-service/internal/domain/models"
	"houseadmin-http-service/internal/domain/services"
	"houseadmin-http-service/internal/domain/services/container"
	"houseadmin-http-service/internal/error/code"
	"houseadmin-http-service/internal/error/response"
	"houseadmin-http-service/utils"

	"github.com/gin-gonic/gin"
)

// InterfaceInfoLogController 定义报名记录控制器接口
type InterfaceInfoLogController interface {
	GetInfoLogs()
	GetInfoLog()
	CreateInfoLog()
	UpdateInfoLog()
	DeleteInfoLog()
}

// InfoLogController 处理报名记录相关的请求
type InfoLogController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewInfoLogController 创建一个新的报名记录控制器
func NewInfoLogController(ctx *gin.Context, container *container.ServiceContainer) *InfoLogController {
	return &InfoLogController{
		Ctx:       ctx,
		Container: container,
	}
}

// InfoLogRequest 表示报名记录请求
type InfoLogRequest struct {
	LineID           string `json:"line_id" example:"U1234567890"`
	PhoneNumber      string `json:"phone_number" example:"0912345678"`
	RegistrationDate string `json:"registration_date" example:"2025-01-15"`
	ExpirationDate   string `json:"expiration_date" example:"2026-01-15"`
	Package          string `json:"package" example:"年费"`
	PackagePrice     int    `json:"package_price" example:"990"`
	Email            string `json:"email" example:"member@example.com"`
	HouseGroup       string `json:"house_group" example:"20"`
	CustomerName     string `json:"customer_name" example:"张三"`
	Channel          string `json:"channel" example:"line"` // line, facebook, walk-in, other
	CancelledOrMoved string `json:"cancelled_or_moved" example:""`
	SyncStatus       string `json:"sync_status" example:"pending"` // ok, error, pending
	SyncNote         string `json:"sync_note" example:""`
}

// HandleInfoLogFunc 返回一个处理报名记录请求的Gin处理函数
func HandleInfoLogFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewInfoLogController(ctx, container)

		switch method {
		case "getInfoLogs":
			controller.GetInfoLogs()
		case "getInfoLog":
			controller.GetInfoLog()
		case "createInfoLog":
			controller.CreateInfoLog()
		case "updateInfoLog":
			controller.UpdateInfoLog()
		case "deleteInfoLog":
			controller.DeleteInfoLog()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetInfoLogs 获取所有报名记录列表
// @Summary 获取所有报名记录
// @Description 获取系统中所有报名记录的列表
// @Tags InfoLog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /info-logs [get]
func (c *InfoLogController) GetInfoLogs() {
	// 获取分页参数
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	// 获取报名记录服务
	infoLogService := c.Container.GetService("info_log").(services.InterfaceInfoLogService)
	logs, total, err := infoLogService.GetAllInfoLogs(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取报名记录列表失败: "+err.Error(), nil)
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

// 2. GetInfoLog 获取单条报名记录详情
// @Summary 获取报名记录详情
// @Description 根据ID获取报名记录详细信息
// @Tags InfoLog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "报名记录ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /info-logs/{id} [get]
func (c *InfoLogController) GetInfoLog() {
	id := c.Ctx.Param("id")
	logID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的报名记录ID")
		return
	}

	// 获取报名记录服务
	infoLogService := c.Container.GetService("info_log").(services.InterfaceInfoLogService)
	log, err := infoLogService.GetInfoLogByID(uint(logID))
	if err != nil {
		response.NotFound(c.Ctx, "报名记录不存在: "+err.Error())
		return
	}

	response.Success(c.Ctx, log)
}

// 3. CreateInfoLog 创建新报名记录
// @Summary 创建报名记录
// @Description 创建一条新的报名记录，创建时不触发开通
// @Tags InfoLog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param info_log body InfoLogRequest true "报名记录信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /info-logs [post]
func (c *InfoLogController) CreateInfoLog() {
	var req InfoLogRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 解析日期
	registrationDate, err := utils.ParseDate(req.RegistrationDate)
	if err != nil {
		response.ParamError(c.Ctx, "无效的注册日期: "+err.Error())
		return
	}
	expirationDate, err := utils.ParseDate(req.ExpirationDate)
	if err != nil {
		response.ParamError(c.Ctx, "无效的到期日期: "+err.Error())
		return
	}

	// 创建报名记录对象
	log := &models.InfoLog{
		LineID:           req.LineID,
		PhoneNumber:      req.PhoneNumber,
		RegistrationDate: registrationDate,
		ExpirationDate:   expirationDate,
		Package:          req.Package,
		PackagePrice:     req.PackagePrice,
		Email:            req.Email,
		HouseGroup:       req.HouseGroup,
		CustomerName:     req.CustomerName,
		Channel:          req.Channel,
		CancelledOrMoved: req.CancelledOrMoved,
		SyncStatus:       req.SyncStatus,
		SyncNote:         req.SyncNote,
	}

	// 获取报名记录服务
	infoLogService := c.Container.GetService("info_log").(services.InterfaceInfoLogService)
	if err := infoLogService.CreateInfoLog(log); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建报名记录失败: "+err.Error(), nil)
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, log)
}

// 4. UpdateInfoLog 更新报名记录
// @Summary 更新报名记录
// @Description 更新报名记录。若更新中提供了非空的房屋组编号，将触发成员开通流程，开通结果随响应返回
// @Tags InfoLog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "报名记录ID"
// @Param info_log body InfoLogRequest true "报名记录信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /info-logs/{id} [put]
func (c *InfoLogController) UpdateInfoLog() {
	id := c.Ctx.Param("id")
	logID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的报名记录ID")
		return
	}

	var req InfoLogRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建更新映射
	updates := make(map[string]interface{})
	if req.LineID != "" {
		updates["line_id"] = req.LineID
	}
	if req.PhoneNumber != "" {
		updates["phone_number"] = req.PhoneNumber
	}
	if req.RegistrationDate != "" {
		registrationDate, err := utils.ParseDate(req.RegistrationDate)
		if err != nil {
			response.ParamError(c.Ctx, "无效的注册日期: "+err.Error())
			return
		}
		updates["registration_date"] = registrationDate
	}
	if req.ExpirationDate != "" {
		expirationDate, err := utils.ParseDate(req.ExpirationDate)
		if err != nil {
			response.ParamError(c.Ctx, "无效的到期日期: "+err.Error())
			return
		}
		updates["expiration_date"] = expirationDate
	}
	if req.Package != "" {
		updates["package"] = req.Package
	}
	if req.PackagePrice > 0 {
		updates["package_price"] = req.PackagePrice
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.HouseGroup != "" {
		updates["house_group"] = req.HouseGroup
	}
	if req.CustomerName != "" {
		updates["customer_name"] = req.CustomerName
	}
	if req.Channel != "" {
		updates["channel"] = req.Channel
	}
	if req.CancelledOrMoved != "" {
		updates["cancelled_or_moved"] = req.CancelledOrMoved
	}
	if req.SyncStatus != "" {
		updates["sync_status"] = req.SyncStatus
	}
	if req.SyncNote != "" {
		updates["sync_note"] = req.SyncNote
	}

	// 获取报名记录服务
	infoLogService := c.Container.GetService("info_log").(services.InterfaceInfoLogService)
	log, provision, err := infoLogService.UpdateInfoLog(uint(logID), updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新报名记录失败: "+err.Error(), nil)
		return
	}

	// 开通结果随响应一并返回，开通失败不影响记录更新
	data := gin.H{
		"info_log": log,
	}
	if provision != nil {
		data["provision"] = provision
	}

	response.Success(c.Ctx, data)
}

// 5. DeleteInfoLog 删除报名记录
// @Summary 删除报名记录
// @Description 删除指定的报名记录
// @Tags InfoLog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "报名记录ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /info-logs/{id} [delete]
func (c *InfoLogController) DeleteInfoLog() {
	id := c.Ctx.Param("id")
	logID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的报名记录ID")
		return
	}

	// 获取报名记录服务
	infoLogService := c.Container.GetService("info_log").(services.InterfaceInfoLogService)
	if err := infoLogService.DeleteInfoLog(uint(logID)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除报名记录失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
