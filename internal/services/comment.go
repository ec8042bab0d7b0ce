package services

import (
	"fmt"
	"strings"

	"mtblog/internal/models"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// ========== 评论提交 ==========

// Submit 提交评论
// 姓名和邮箱取自登录用户档案，状态强制pending，客户端无法伪造
// 目标博客必须是调用方租户内已发布的，否则返回RecordNotFound
func (s *CommentService) Submit(tenantID, blogID uint, commenter *models.User, body string) (*models.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("评论内容不能为空")
	}
	if len(body) > 2000 {
		return nil, fmt.Errorf("评论内容不能超过2000个字符")
	}

	var blog models.Blog
	err := s.db.Where("tenant_id = ? AND status = ?", tenantID, models.BlogStatusPublished).
		First(&blog, blogID).Error
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		TenantID: tenantID,
		BlogID:   blog.ID,
		Name:     commenter.Name,
		Email:    commenter.Email,
		Comment:  body,
		Status:   models.CommentStatusPending,
	}

	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// ========== 审核方法（管理端） ==========

// Approve 通过评论
func (s *CommentService) Approve(tenantID, id uint) (*models.Comment, error) {
	return s.moderate(tenantID, id, models.CommentStatusApproved)
}

// Reject 驳回评论
func (s *CommentService) Reject(tenantID, id uint) (*models.Comment, error) {
	return s.moderate(tenantID, id, models.CommentStatusRejected)
}

func (s *CommentService) moderate(tenantID, id uint, status string) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.Where("tenant_id = ?", tenantID).First(&comment, id).Error; err != nil {
		return nil, err
	}

	comment.Status = status
	err := s.db.Save(&comment).Error
	return &comment, err
}

// ========== 查询方法 ==========

// GetApprovedByBlog 博客公开页可见的评论（仅approved，按时间升序）
func (s *CommentService) GetApprovedByBlog(blogID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := s.db.Where("blog_id = ? AND status = ?", blogID, models.CommentStatusApproved).
		Order("created_at").
		Find(&comments).Error
	return comments, err
}

// CountByBlog 博客的评论总数（包含全部状态）
func (s *CommentService) CountByBlog(blogID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Comment{}).Where("blog_id = ?", blogID).Count(&count).Error
	return count, err
}

// GetByStatusWithPage 按状态查询租户内评论（审核队列，分页版本）
func (s *CommentService) GetByStatusWithPage(tenantID uint, status string, page, pageSize int) ([]*models.Comment, int64, error) {
	var comments []*models.Comment
	var total int64

	query := s.db.Model(&models.Comment{}).Where("tenant_id = ?", tenantID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Blog").
		Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// GetRecentByEmail 某用户最近的评论（读者工作台）
func (s *CommentService) GetRecentByEmail(tenantID uint, email string, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := s.db.Where("tenant_id = ? AND email = ?", tenantID, email).
		Preload("Blog").
		Order("created_at DESC").Limit(limit).
		Find(&comments).Error
	return comments, err
}
