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

// InterfaceHouseController 定义房屋组控制器接口
type InterfaceHouseController interface {
	GetHouses()
	GetHouse()
	GetHouseByNumber()
	GetAvailableHouses()
	GetHouseMembers()
	CreateHouse()
	UpdateHouse()
	DeleteHouse()
}

// HouseController 处理房屋组相关的请求
type HouseController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHouseController 创建一个新的房屋组控制器
func NewHouseController(ctx *gin.Context, container *container.ServiceContainer) *HouseController {
	return &HouseController{
		Ctx:       ctx,
		Container: container,
	}
}

// HouseRequest 表示房屋组请求
type HouseRequest struct {
	HouseNumber      string `json:"house_number" binding:"required" example:"20"`
	AdminEmail       string `json:"admin_email" example:"house20@example.com"`
	RegistrationDate string `json:"registration_date" example:"2025-01-15"`
	Status           string `json:"status" example:"active"` // active, expired, moved, cancelled
	Note             string `json:"note" example:"备注"`
}

// HandleHouseFunc 返回一个处理房屋组请求的Gin处理函数
func HandleHouseFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHouseController(ctx, container)

		switch method {
		case "getHouses":
			controller.GetHouses()
		case "getHouse":
			controller.GetHouse()
		case "getHouseByNumber":
			controller.GetHouseByNumber()
		case "getAvailableHouses":
			controller.GetAvailableHouses()
		case "getHouseMembers":
			controller.GetHouseMembers()
		case "createHouse":
			controller.CreateHouse()
		case "updateHouse":
			controller.UpdateHouse()
		case "deleteHouse":
			controller.DeleteHouse()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetHouses 获取所有房屋组列表
// @Summary 获取所有房屋组
// @Description 获取系统中所有房屋组的列表，包含每组当前成员数
// @Tags House
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /houses [get]
func (c *HouseController) GetHouses() {
	// 获取分页参数
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	// 获取房屋组服务
	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	houses, total, err := houseService.GetHousesWithMemberCount(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取房屋组列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        houses,
	})
}

// 2. GetHouse 获取单个房屋组详情
// @Summary 获取房屋组详情
// @Description 根据ID获取房屋组详细信息
// @Tags House
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "房屋组ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /houses/{id} [get]
func (c *HouseController) GetHouse() {
	id := c.Ctx.Param("id")
	houseID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的房屋组ID")
		return
	}

	// 获取房屋组服务
	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	house, err := houseService.GetHouseByID(uint(houseID))
	if err != nil {
		response.NotFound(c.Ctx, "房屋组不存在: "+err.Error())
		return
	}

	response.Success(c.Ctx, house)
}

// 3. GetHouseByNumber 根据编号获取房屋组
// @Summary 根据编号获取房屋组
// @Description 根据房屋组编号获取房屋组详细信息
// @Tags House
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param number path string true "房屋组编号"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /houses/number/{number} [get]
func (c *HouseController) GetHouseByNumber() {
	number := c.Ctx.Param("number")
	if number == "" {
		response.ParamError(c.Ctx, "无效的房屋组编号")
		return
	}

	// 获取房屋组服务
	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	house, err := houseService.GetHouseByNumber(number)
	if err != nil {
		response.NotFound(c.Ctx, "房屋组不存在: "+err.Error())
		return
	}

	response.Success(c.Ctx, house)
}

// 4. GetAvailableHouses 获取有空余席位的房屋组
// @Summary 获取有空余席位的房屋组
// @Description 获取成员数未达到上限的房屋组列表
// @Tags House
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /houses/available [get]
func (c *HouseController) GetAvailableHouses() {
	// 获取房屋组服务
	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	houses, err := houseService.GetAvailableHouses()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取可用房屋组失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"capacity": services.HouseMemberCapacity,
		"data":     houses,
	})
}

// 5. GetHouseMembers 获取房屋组下的成员
// @Summary 获取房屋组下的成员
// @Description 获取指定房屋组下的所有成员
// @Tags House
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "房屋组ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /houses/{id}/members [get]
func (c *HouseController) GetHouseMembers() {
	id := c.Ctx.Param("id")
	houseID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的房屋组ID")
		return
	}

	// 获取房屋组服务
	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	members, err := houseService.GetHouseMembers(uint(houseID))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取房屋组成员失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, members)
}

// 6. CreateHouse 创建新房屋组
// @Summary 创建房屋组
// @Description 创建一个新的房屋组，编号不能重复
// @Tags House
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param house body HouseRequest true "房屋组信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /houses [post]
func (c *HouseController) CreateHouse() {
	var req HouseRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 解析注册日期
	registrationDate, err := utils.ParseDate(req.RegistrationDate)
	if err != nil {
		response.ParamError(c.Ctx, "无效的注册日期: "+err.Error())
		return
	}

	// 创建房屋组对象
	house := &models.House{
		HouseNumber:      req.HouseNumber,
		AdminEmail:       req.AdminEmail,
		RegistrationDate: registrationDate,
		Status:           req.Status,
		Note:             req.Note,
	}

	// 获取房屋组服务
	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	if err := houseService.CreateHouse(house); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建房屋组失败: "+err.Error(), nil)
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, house)
}

// 7. UpdateHouse 更新房屋组信息
// @Summary 更新房屋组
// @Description 更新房屋组信息
// @Tags House
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "房屋组ID"
// @Param house body HouseRequest true "房屋组信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /houses/{id} [put]
func (c *HouseController) UpdateHouse() {
	id := c.Ctx.Param("id")
	houseID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的房屋组ID")
		return
	}

	var req HouseRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建更新映射
	updates := make(map[string]interface{})
	if req.HouseNumber != "" {
		updates["house_number"] = req.HouseNumber
	}
	if req.AdminEmail != "" {
		updates["admin_email"] = req.AdminEmail
	}
	if req.RegistrationDate != "" {
		registrationDate, err := utils.ParseDate(req.RegistrationDate)
		if err != nil {
			response.ParamError(c.Ctx, "无效的注册日期: "+err.Error())
			return
		}
		updates["registration_date"] = registrationDate
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.Note != "" {
		updates["note"] = req.Note
	}

	// 获取房屋组服务
	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	house, err := houseService.UpdateHouse(uint(houseID), updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新房屋组失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, house)
}

// 8. DeleteHouse 删除房屋组
// @Summary 删除房屋组
// @Description 删除指定的房屋组
// @Tags House
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "房屋组ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /houses/{id} [delete]
func (c *HouseController) DeleteHouse() {
	id := c.Ctx.Param("id")
	houseID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的房屋组ID")
		return
	}

	// 获取房屋组服务
	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	if err := houseService.DeleteHouse(uint(houseID)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除房屋组失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
