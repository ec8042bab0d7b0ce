package handlers

import (
	"errors"
	"strconv"
	"strings"

	"mtblog/internal/middleware"
	"mtblog/internal/models"
	"mtblog/internal/services"
	"mtblog/pkg/pagination"
	"mtblog/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentHandler struct {
	service *services.CommentService
}

func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type SubmitCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// Submit 提交评论
// 姓名和邮箱一律取自登录用户档案，客户端字段不收
func (h *CommentHandler) Submit(c *gin.Context) {
	blogID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	var req SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}

	user := middleware.CurrentUser(c)
	tenantID := middleware.CurrentTenantID(c)

	comment, err := h.service.Submit(tenantID, uint(blogID), user, req.Comment)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "博客不存在")
			return
		}
		if strings.Contains(err.Error(), "评论内容") {
			response.BadRequest(c, err.Error())
			return
		}
		response.ServerError(c, "评论提交失败")
		return
	}

	response.SuccessWithMessage(c, "评论已提交，等待审核", comment)
}

// ========== 审核接口（管理端） ==========

// GetByStatus 审核队列
func (h *CommentHandler) GetByStatus(c *gin.Context) {
	tenantID := middleware.CurrentTenantID(c)
	status := c.Query("status")
	pageParams := pagination.ParsePageParams(c)

	comments, total, err := h.service.GetByStatusWithPage(tenantID, status, pageParams.Page, pageParams.PageSize)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	pageInfo := pagination.NewPageInfo(pageParams.Page, pageParams.PageSize, total)
	response.SuccessWithPage(c, comments, pageInfo)
}

// Approve 通过评论
func (h *CommentHandler) Approve(c *gin.Context) {
	h.moderate(c, h.service.Approve)
}

// Reject 驳回评论
func (h *CommentHandler) Reject(c *gin.Context) {
	h.moderate(c, h.service.Reject)
}

func (h *CommentHandler) moderate(c *gin.Context, action func(uint, uint) (*models.Comment, error)) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return
	}

	tenantID := middleware.CurrentTenantID(c)

	comment, err := action(tenantID, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "评论不存在")
			return
		}
		response.ServerError(c, "审核失败")
		return
	}

	response.SuccessWithMessage(c, "审核完成", comment)
}
