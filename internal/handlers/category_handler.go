package handlers

import (
	"errors"
	"strconv"
	"strings"

	"mtblog/internal/middleware"
	"mtblog/internal/services"
	"mtblog/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	service *services.CategoryService
}

func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create 创建分类
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}

	tenantID := middleware.CurrentTenantID(c)

	category, err := h.service.Create(tenantID, req.Name)
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "长度") ||
			strings.Contains(errMsg, "slug") {
			response.BadRequest(c, errMsg)
			return
		}
		response.ServerError(c, "创建失败")
		return
	}

	response.SuccessWithMessage(c, "分类创建成功", category)
}

// GetAll 当前租户的分类列表
func (h *CategoryHandler) GetAll(c *gin.Context) {
	tenantID := middleware.CurrentTenantID(c)

	categories, err := h.service.GetByTenant(tenantID)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, categories)
}

// Delete 删除分类（管理端）
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	tenantID := middleware.CurrentTenantID(c)

	if err := h.service.Delete(tenantID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "分类不存在")
			return
		}
		if strings.Contains(err.Error(), "不能删除") {
			response.BadRequest(c, err.Error())
			return
		}
		response.ServerError(c, "删除失败")
		return
	}

	response.SuccessWithMessage(c, "分类删除成功", nil)
}
