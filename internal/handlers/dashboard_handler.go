package handlers

import (
	"mtblog/internal/middleware"
	"mtblog/internal/models"
	"mtblog/internal/services"
	"mtblog/pkg/response"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 登录后的工作台
type DashboardHandler struct {
	roleService     *services.RoleService
	blogService     *services.BlogService
	commentService  *services.CommentService
	categoryService *services.CategoryService
}

func NewDashboardHandler(roleService *services.RoleService, blogService *services.BlogService,
	commentService *services.CommentService, categoryService *services.CategoryService) *DashboardHandler {
	return &DashboardHandler{
		roleService:     roleService,
		blogService:     blogService,
		commentService:  commentService,
		categoryService: categoryService,
	}
}

// Summary 工作台汇总
// 作者看写作统计，读者看自己最近的评论和分类列表
func (h *DashboardHandler) Summary(c *gin.Context) {
	user := middleware.CurrentUser(c)
	tenantID := middleware.CurrentTenantID(c)

	roles, err := h.roleService.RolesOf(user.ID)
	if err != nil {
		response.ServerError(c, "查询角色失败")
		return
	}

	isAuthor := false
	for _, role := range roles {
		if role == models.RoleAuthor {
			isAuthor = true
			break
		}
	}

	result := gin.H{
		"user":      user,
		"roles":     roles,
		"is_author": isAuthor,
	}

	if isAuthor {
		stats, err := h.blogService.GetAuthorStats(tenantID, user.ID)
		if err != nil {
			response.ServerError(c, "查询统计失败")
			return
		}
		result["stats"] = stats
	} else {
		recentComments, err := h.commentService.GetRecentByEmail(tenantID, user.Email, 5)
		if err != nil {
			response.ServerError(c, "查询评论失败")
			return
		}
		categories, err := h.categoryService.GetByTenant(tenantID)
		if err != nil {
			response.ServerError(c, "查询分类失败")
			return
		}
		result["recent_comments"] = recentComments
		result["categories"] = categories
	}

	response.Success(c, result)
}
