package handlers

import (
	"errors"

	"mtblog/internal/services"
	"mtblog/pkg/pagination"
	"mtblog/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PublicHandler 公开读取接口
// 无需登录；租户通过查询参数指定，只返回published内容
type PublicHandler struct {
	blogService     *services.BlogService
	commentService  *services.CommentService
	categoryService *services.CategoryService
	tenantService   *services.TenantService
}

func NewPublicHandler(blogService *services.BlogService, commentService *services.CommentService,
	categoryService *services.CategoryService, tenantService *services.TenantService) *PublicHandler {
	return &PublicHandler{
		blogService:     blogService,
		commentService:  commentService,
		categoryService: categoryService,
		tenantService:   tenantService,
	}
}

// resolveTenant 解析公开页面的租户
// ?tenant=<code>，缺省落default租户
func (h *PublicHandler) resolveTenant(c *gin.Context) (uint, bool) {
	code := c.DefaultQuery("tenant", "default")
	tenant, err := h.tenantService.GetByCode(code)
	if err != nil {
		response.NotFound(c, "租户不存在")
		return 0, false
	}
	return tenant.ID, true
}

// ListBlogs 公开博客列表（仅published）
func (h *PublicHandler) ListBlogs(c *gin.Context) {
	tenantID, ok := h.resolveTenant(c)
	if !ok {
		return
	}

	categorySlug := c.Query("category")
	pageParams := pagination.ParsePageParams(c)

	blogs, total, err := h.blogService.GetPublishedWithPage(tenantID, categorySlug, pageParams.Page, pageParams.PageSize)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	pageInfo := pagination.NewPageInfo(pageParams.Page, pageParams.PageSize, total)
	response.SuccessWithPage(c, blogs, pageInfo)
}

// BlogDetail 公开博客详情
// 评论列表只含approved，评论总数包含全部状态
func (h *PublicHandler) BlogDetail(c *gin.Context) {
	tenantID, ok := h.resolveTenant(c)
	if !ok {
		return
	}

	blog, err := h.blogService.GetPublishedBySlug(tenantID, c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "博客不存在")
			return
		}
		response.ServerError(c, "查询失败")
		return
	}

	comments, err := h.commentService.GetApprovedByBlog(blog.ID)
	if err != nil {
		response.ServerError(c, "查询评论失败")
		return
	}

	total, err := h.commentService.CountByBlog(blog.ID)
	if err != nil {
		response.ServerError(c, "查询评论失败")
		return
	}

	response.Success(c, gin.H{
		"blog":          blog,
		"comments":      comments,
		"comment_count": total,
	})
}

// CategoryBlogs 某分类下的公开博客
func (h *PublicHandler) CategoryBlogs(c *gin.Context) {
	tenantID, ok := h.resolveTenant(c)
	if !ok {
		return
	}

	categorySlug := c.Param("slug")
	category, err := h.categoryService.GetBySlug(tenantID, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "分类不存在")
			return
		}
		response.ServerError(c, "查询失败")
		return
	}

	pageParams := pagination.ParsePageParams(c)
	blogs, total, err := h.blogService.GetPublishedWithPage(tenantID, categorySlug, pageParams.Page, pageParams.PageSize)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	pageInfo := pagination.NewPageInfo(pageParams.Page, pageParams.PageSize, total)
	response.SuccessWithPage(c, gin.H{"category": category, "blogs": blogs}, pageInfo)
}

// Categories 公开分类列表
func (h *PublicHandler) Categories(c *gin.Context) {
	tenantID, ok := h.resolveTenant(c)
	if !ok {
		return
	}

	categories, err := h.categoryService.GetByTenant(tenantID)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, categories)
}
