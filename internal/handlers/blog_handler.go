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

type BlogHandler struct {
	service *services.BlogService
}

func NewBlogHandler(service *services.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

type BlogRequest struct {
	Title         string  `json:"title" binding:"required"`
	Excerpt       string  `json:"excerpt" binding:"required"`
	Content       string  `json:"content"`
	FeaturedImage *string `json:"featured_image"`
	CategoryID    *uint   `json:"category_id"`
	Status        string  `json:"status" binding:"required,oneof=draft published"`
	Tags          string  `json:"tags"` // 逗号分隔
}

func (r *BlogRequest) toInput() *services.BlogInput {
	return &services.BlogInput{
		Title:         r.Title,
		Excerpt:       r.Excerpt,
		Content:       r.Content,
		FeaturedImage: r.FeaturedImage,
		CategoryID:    r.CategoryID,
		Status:        r.Status,
		TagsInput:     r.Tags,
	}
}

// blogSaveError 统一映射博客保存路径的业务错误
func blogSaveError(c *gin.Context, err error) {
	errMsg := err.Error()

	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c, "博客不存在")
		return
	}
	if errors.Is(err, services.ErrNotOwner) {
		response.Forbidden(c, errMsg)
		return
	}
	if strings.Contains(errMsg, "长度") ||
		strings.Contains(errMsg, "不能为空") ||
		strings.Contains(errMsg, "slug") ||
		errMsg == "分类不存在" ||
		errMsg == "状态只能是draft或published" {
		response.BadRequest(c, errMsg)
		return
	}

	response.ServerError(c, "保存失败")
}

// Create 创建博客
// 租户和作者取自登录上下文，请求体里给不了
func (h *BlogHandler) Create(c *gin.Context) {
	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}

	user := middleware.CurrentUser(c)
	tenantID := middleware.CurrentTenantID(c)

	blog, err := h.service.Create(tenantID, user.ID, req.toInput())
	if err != nil {
		blogSaveError(c, err)
		return
	}

	response.SuccessWithMessage(c, "博客创建成功", blog)
}

// Update 更新博客（仅作者本人）
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}

	user := middleware.CurrentUser(c)
	tenantID := middleware.CurrentTenantID(c)

	blog, err := h.service.Update(tenantID, uint(id), user.ID, req.toInput())
	if err != nil {
		blogSaveError(c, err)
		return
	}

	response.SuccessWithMessage(c, "博客更新成功", blog)
}

// Delete 删除博客（仅作者本人）
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	user := middleware.CurrentUser(c)
	tenantID := middleware.CurrentTenantID(c)

	if err := h.service.Delete(tenantID, uint(id), user.ID); err != nil {
		blogSaveError(c, err)
		return
	}

	response.SuccessWithMessage(c, "博客删除成功", nil)
}

// GetByID 作者取自己的博客详情
func (h *BlogHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	user := middleware.CurrentUser(c)
	tenantID := middleware.CurrentTenantID(c)

	blog, err := h.service.GetByIDForAuthor(tenantID, uint(id), user.ID)
	if err != nil {
		blogSaveError(c, err)
		return
	}

	response.Success(c, blog)
}

// Mine 当前作者的全部博客
func (h *BlogHandler) Mine(c *gin.Context) {
	user := middleware.CurrentUser(c)
	tenantID := middleware.CurrentTenantID(c)

	blogs, err := h.service.GetByAuthor(tenantID, user.ID)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, blogs)
}
