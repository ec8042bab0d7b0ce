package handlers

import (
	"errors"
	"strconv"
	"strings"

	"mtblog/internal/models"
	"mtblog/internal/services"
	"mtblog/pkg/pagination"
	"mtblog/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserHandler 用户管理接口（管理端）
type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type UpdateUserRequest struct {
	Name   string `json:"name" binding:"required"`
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// GetAll 用户列表
func (h *UserHandler) GetAll(c *gin.Context) {
	var tenantID *uint
	if tenantIDStr := c.Query("tenant_id"); tenantIDStr != "" {
		id, err := strconv.ParseUint(tenantIDStr, 10, 32)
		if err != nil {
			response.BadRequest(c, "租户ID格式错误")
			return
		}
		uintID := uint(id)
		tenantID = &uintID
	}

	status := c.Query("status")
	keyword := c.Query("keyword")
	pageParams := pagination.ParsePageParams(c)

	users, total, err := h.service.GetWithFiltersAndPage(tenantID, status, keyword, pageParams.Page, pageParams.PageSize)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	pageInfo := pagination.NewPageInfo(pageParams.Page, pageParams.PageSize, total)
	response.SuccessWithPage(c, users, pageInfo)
}

// GetByID 获取用户
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	user, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "用户不存在")
			return
		}
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, user)
}

// Update 更新用户
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}

	user, err := h.service.Update(uint(id), req.Name, req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "用户不存在")
			return
		}
		if strings.Contains(err.Error(), "长度") || strings.Contains(err.Error(), "状态") {
			response.BadRequest(c, err.Error())
			return
		}
		response.ServerError(c, "更新失败")
		return
	}

	response.SuccessWithMessage(c, "更新成功", user)
}

// Delete 删除用户
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		response.ServerError(c, "删除失败")
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}

// Activate 激活用户
func (h *UserHandler) Activate(c *gin.Context) {
	h.setStatus(c, h.service.Activate)
}

// Deactivate 停用用户
func (h *UserHandler) Deactivate(c *gin.Context) {
	h.setStatus(c, h.service.Deactivate)
}

func (h *UserHandler) setStatus(c *gin.Context, action func(uint) (*models.User, error)) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	user, err := action(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "用户不存在")
			return
		}
		response.ServerError(c, "操作失败")
		return
	}

	response.SuccessWithMessage(c, "操作成功", user)
}
