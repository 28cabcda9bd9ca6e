package controllers

import (
	"net/http"
	"strconv"

	"houseadmin-http-service/internal/domain/models"
	"houseadmin-http-service/internal/domain/services"
	"houseadmin-http-service/internal/domain/services/container"
	"houseadmin-http-service/internal/error/code"
	"houseadmin-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAdminController 定义管理员控制器接口
type InterfaceAdminController interface {
	GetAdmins()
	GetAdmin()
	CreateAdmin()
	UpdateAdmin()
	DeleteAdmin()
}

// AdminController 处理管理员相关的请求
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController 创建一个新的管理员控制器
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// AdminRequest 表示管理员请求
type AdminRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"admin123"`
	Email    string `json:"email" example:"admin@example.com"`
	Phone    string `json:"phone" example:"0912345678"`
	Status   string `json:"status" example:"active"`
}

// HandleAdminFunc 返回一个处理管理员请求的Gin处理函数
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getAdmins":
			controller.GetAdmins()
		case "getAdmin":
			controller.GetAdmin()
		case "createAdmin":
			controller.CreateAdmin()
		case "updateAdmin":
			controller.UpdateAdmin()
		case "deleteAdmin":
			controller.DeleteAdmin()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetAdmins 获取所有管理员列表
// @Summary 获取所有管理员
// @Description 获取系统中所有管理员的列表，支持按用户名搜索
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Param search query string false "按用户名搜索"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /admins [get]
func (c *AdminController) GetAdmins() {
	// 获取分页参数
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	search := c.Ctx.Query("search")

	// 获取管理员服务
	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admins, total, err := adminService.GetAllAdmins(page, pageSize, search)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取管理员列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        admins,
	})
}

// 2. GetAdmin 获取单个管理员详情
// @Summary 获取管理员详情
// @Description 根据ID获取管理员详细信息
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "管理员ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admins/{id} [get]
func (c *AdminController) GetAdmin() {
	id := c.Ctx.Param("id")
	adminID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的管理员ID")
		return
	}

	// 获取管理员服务
	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.GetAdminByID(uint(adminID))
	if err != nil {
		response.NotFound(c.Ctx, "管理员不存在: "+err.Error())
		return
	}

	response.Success(c.Ctx, admin)
}

// 3. CreateAdmin 创建新管理员
// @Summary 创建管理员
// @Description 创建一个新的管理员账户
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param admin body AdminRequest true "管理员信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admins [post]
func (c *AdminController) CreateAdmin() {
	var req AdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	if req.Username == "" || req.Password == "" {
		response.ParamError(c.Ctx, "用户名和密码不能为空")
		return
	}

	// 创建管理员对象，密码在保存时自动加密
	admin := &models.Admin{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     "admin",
		Status:   req.Status,
	}
	if admin.Status == "" {
		admin.Status = "active"
	}

	// 获取管理员服务
	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.CreateAdmin(admin); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建管理员失败: "+err.Error(), nil)
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, admin)
}

// 4. UpdateAdmin 更新管理员信息
// @Summary 更新管理员
// @Description 更新管理员信息
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "管理员ID"
// @Param admin body AdminRequest true "管理员信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admins/{id} [put]
func (c *AdminController) UpdateAdmin() {
	id := c.Ctx.Param("id")
	adminID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的管理员ID")
		return
	}

	var req AdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建更新映射
	updates := make(map[string]interface{})
	if req.Username != "" {
		updates["username"] = req.Username
	}
	if req.Password != "" {
		updates["password"] = req.Password
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	// 获取管理员服务
	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.UpdateAdmin(uint(adminID), updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新管理员失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, admin)
}

// 5. DeleteAdmin 删除管理员
// @Summary 删除管理员
// @Description 删除指定的管理员，系统中最后一个管理员不可删除
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "管理员ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admins/{id} [delete]
func (c *AdminController) DeleteAdmin() {
	id := c.Ctx.Param("id")
	adminID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的管理员ID")
		return
	}

	// 获取管理员服务
	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.DeleteAdmin(uint(adminID)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除管理员失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
