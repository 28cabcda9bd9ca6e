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

// InterfaceMemberController 定义成员控制器接口
type InterfaceMemberController interface {
	GetMembers()
	GetMember()
	GetActiveMembers()
	GetExpiredMembers()
	CreateMember()
	UpdateMember()
	DeleteMember()
}

// MemberController 处理成员相关的请求
type MemberController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMemberController 创建一个新的成员控制器
func NewMemberController(ctx *gin.Context, container *container.ServiceContainer) *MemberController {
	return &MemberController{
		Ctx:       ctx,
		Container: container,
	}
}

// MemberRequest 表示成员请求
type MemberRequest struct {
	HouseID          uint   `json:"house_id" example:"1"`
	LineID           string `json:"line_id" example:"U1234567890"`
	MemberEmail      string `json:"member_email" example:"member@example.com"`
	CustomerName     string `json:"customer_name" example:"张三"`
	PhoneNumber      string `json:"phone_number" example:"0912345678"`
	Email            string `json:"email" example:"member@example.com"`
	RegistrationDate string `json:"registration_date" example:"2025-01-15"`
	ExpirationDate   string `json:"expiration_date" example:"2026-01-15"`
	Package          string `json:"package" example:"年费"`
	PackagePrice     int    `json:"package_price" example:"990"`
	Channel          string `json:"channel" example:"line"` // line, facebook, walk-in, other
	Note             string `json:"note" example:"备注"`
}

// HandleMemberFunc 返回一个处理成员请求的Gin处理函数
func HandleMemberFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMemberController(ctx, container)

		switch method {
		case "getMembers":
			controller.GetMembers()
		case "getMember":
			controller.GetMember()
		case "getActiveMembers":
			controller.GetActiveMembers()
		case "getExpiredMembers":
			controller.GetExpiredMembers()
		case "createMember":
			controller.CreateMember()
		case "updateMember":
			controller.UpdateMember()
		case "deleteMember":
			controller.DeleteMember()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetMembers 获取所有成员列表
// @Summary 获取所有成员
// @Description 获取系统中所有成员的列表
// @Tags Member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /members [get]
func (c *MemberController) GetMembers() {
	// 获取分页参数
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	// 获取成员服务
	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	members, total, err := memberService.GetAllMembers(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取成员列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        members,
	})
}

// 2. GetMember 获取单个成员详情
// @Summary 获取成员详情
// @Description 根据ID获取成员详细信息
// @Tags Member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "成员ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /members/{id} [get]
func (c *MemberController) GetMember() {
	id := c.Ctx.Param("id")
	memberID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的成员ID")
		return
	}

	// 获取成员服务
	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	member, err := memberService.GetMemberByID(uint(memberID))
	if err != nil {
		response.NotFound(c.Ctx, "成员不存在: "+err.Error())
		return
	}

	response.Success(c.Ctx, member)
}

// 3. GetActiveMembers 获取所有有效成员
// @Summary 获取有效成员
// @Description 获取当前未过期的所有成员，按到期日升序排列
// @Tags Member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /members/active [get]
func (c *MemberController) GetActiveMembers() {
	// 获取成员服务
	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	members, err := memberService.GetActiveMembers()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取有效成员失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(members),
		"data":  members,
	})
}

// 4. GetExpiredMembers 获取所有已过期成员
// @Summary 获取已过期成员
// @Description 获取当前已过期的所有成员，按到期日降序排列
// @Tags Member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /members/expired [get]
func (c *MemberController) GetExpiredMembers() {
	// 获取成员服务
	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	members, err := memberService.GetExpiredMembers()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取已过期成员失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(members),
		"data":  members,
	})
}

// 5. CreateMember 创建新成员
// @Summary 创建成员
// @Description 手动创建一个新成员，需要关联到房屋组
// @Tags Member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param member body MemberRequest true "成员信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /members [post]
func (c *MemberController) CreateMember() {
	var req MemberRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	if req.HouseID == 0 {
		response.ParamError(c.Ctx, "缺少房屋组ID")
		return
	}
	if req.MemberEmail == "" {
		response.ParamError(c.Ctx, "缺少成员邮箱")
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

	// 创建成员对象
	member := &models.HouseMember{
		HouseID:          req.HouseID,
		LineID:           req.LineID,
		MemberEmail:      req.MemberEmail,
		CustomerName:     req.CustomerName,
		PhoneNumber:      req.PhoneNumber,
		Email:            req.Email,
		RegistrationDate: registrationDate,
		ExpirationDate:   expirationDate,
		Package:          req.Package,
		PackagePrice:     req.PackagePrice,
		Channel:          req.Channel,
		Note:             req.Note,
	}

	// 获取成员服务
	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	if err := memberService.CreateMember(member); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建成员失败: "+err.Error(), nil)
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, member)
}

// 6. UpdateMember 更新成员信息
// @Summary 更新成员
// @Description 更新成员信息
// @Tags Member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "成员ID"
// @Param member body MemberRequest true "成员信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /members/{id} [put]
func (c *MemberController) UpdateMember() {
	id := c.Ctx.Param("id")
	memberID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的成员ID")
		return
	}

	var req MemberRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建更新映射
	updates := make(map[string]interface{})
	if req.HouseID > 0 {
		updates["house_id"] = req.HouseID
	}
	if req.LineID != "" {
		updates["line_id"] = req.LineID
	}
	if req.MemberEmail != "" {
		updates["member_email"] = req.MemberEmail
	}
	if req.CustomerName != "" {
		updates["customer_name"] = req.CustomerName
	}
	if req.PhoneNumber != "" {
		updates["phone_number"] = req.PhoneNumber
	}
	if req.Email != "" {
		updates["email"] = req.Email
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
	if req.Channel != "" {
		updates["channel"] = req.Channel
	}
	if req.Note != "" {
		updates["note"] = req.Note
	}

	// 获取成员服务
	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	member, err := memberService.UpdateMember(uint(memberID), updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新成员失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, member)
}

// 7. DeleteMember 删除成员
// @Summary 删除成员
// @Description 删除指定的成员，释放其占用的席位
// @Tags Member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "成员ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /members/{id} [delete]
func (c *MemberController) DeleteMember() {
	id := c.Ctx.Param("id")
	memberID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的成员ID")
		return
	}

	// 获取成员服务
	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	if err := memberService.DeleteMember(uint(memberID)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除成员失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
