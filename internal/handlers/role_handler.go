package handlers

import (
	"errors"
	"strconv"

	"mtblog/internal/services"
	"mtblog/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RoleHandler 角色与权限管理接口（管理端）
type RoleHandler struct {
	service *services.RoleService
}

func NewRoleHandler(service *services.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

type GrantRoleRequest struct {
	RoleID uint `json:"role_id" binding:"required"`
}

type AssignPermissionsRequest struct {
	PermissionIDs []uint `json:"permission_ids" binding:"required"`
}

// GetAll 角色列表
func (h *RoleHandler) GetAll(c *gin.Context) {
	roles, err := h.service.GetAll()
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.Success(c, roles)
}

// GetUserRoles 某用户的角色名称集合
func (h *RoleHandler) GetUserRoles(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	roles, err := h.service.RolesOf(uint(userID))
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.Success(c, roles)
}

// Grant 给用户授予角色
func (h *RoleHandler) Grant(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	var req GrantRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}

	if err := h.service.Grant(uint(userID), req.RoleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "用户或角色不存在")
			return
		}
		if err.Error() == "用户已拥有该角色" {
			response.BadRequest(c, err.Error())
			return
		}
		response.ServerError(c, "授予失败")
		return
	}

	response.SuccessWithMessage(c, "角色授予成功", nil)
}

// Revoke 移除用户的角色
func (h *RoleHandler) Revoke(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	roleID, err := strconv.ParseUint(c.Param("role_id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "角色ID格式错误")
		return
	}

	if err := h.service.Revoke(uint(userID), uint(roleID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "用户或角色不存在")
			return
		}
		response.ServerError(c, "移除失败")
		return
	}

	response.SuccessWithMessage(c, "角色移除成功", nil)
}

// AssignPermissions 为角色分配权限
func (h *RoleHandler) AssignPermissions(c *gin.Context) {
	roleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	var req AssignPermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}

	if err := h.service.AssignPermissions(uint(roleID), req.PermissionIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "角色不存在")
			return
		}
		if err.Error() == "部分权限不存在" {
			response.BadRequest(c, err.Error())
			return
		}
		response.ServerError(c, "分配失败")
		return
	}

	response.SuccessWithMessage(c, "权限分配成功", nil)
}

// GetRolePermissions 角色的权限列表
func (h *RoleHandler) GetRolePermissions(c *gin.Context) {
	roleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	permissions, err := h.service.GetRolePermissions(uint(roleID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "角色不存在")
			return
		}
		response.ServerError(c, "查询失败")
		return
	}
	response.Success(c, permissions)
}
