package handlers

import (
	"errors"
	"strconv"
	"strings"

	"mtblog/internal/models"
	"mtblog/internal/services"
	"mtblog/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TenantHandler 租户管理接口（管理端）
type TenantHandler struct {
	service *services.TenantService
}

func NewTenantHandler(service *services.TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

type CreateTenantRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

// Create 创建租户
func (h *TenantHandler) Create(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}

	tenant, err := h.service.Create(req.Name, req.Code)
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "长度") ||
			strings.Contains(errMsg, "只能包含") ||
			errMsg == "租户代码已存在" {
			response.BadRequest(c, errMsg)
			return
		}
		response.ServerError(c, "创建失败")
		return
	}

	response.SuccessWithMessage(c, "租户创建成功", tenant)
}

// GetAll 租户列表
func (h *TenantHandler) GetAll(c *gin.Context) {
	tenants, err := h.service.GetAll()
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.Success(c, tenants)
}

// Activate 激活租户
func (h *TenantHandler) Activate(c *gin.Context) {
	h.setStatus(c, h.service.Activate)
}

// Deactivate 停用租户
func (h *TenantHandler) Deactivate(c *gin.Context) {
	h.setStatus(c, h.service.Deactivate)
}

func (h *TenantHandler) setStatus(c *gin.Context, action func(uint) (*models.Tenant, error)) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	tenant, err := action(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "租户不存在")
			return
		}
		response.ServerError(c, "操作失败")
		return
	}

	response.SuccessWithMessage(c, "操作成功", tenant)
}
