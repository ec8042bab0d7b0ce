package services

import (
	"errors"
	"fmt"
	"time"

	"mtblog/internal/models"
	"mtblog/pkg/slug"

	"gorm.io/gorm"
)

// ErrNotOwner 非作者本人操作博客
var ErrNotOwner = errors.New("无权操作他人的博客")

type BlogService struct {
	db         *gorm.DB
	tagService *TagService
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{
		db:         db,
		tagService: NewTagService(db),
	}
}

// BlogInput 博客保存输入
// 租户和作者不在其中：二者一律来自调用方上下文，客户端给什么都不信
type BlogInput struct {
	Title         string
	Excerpt       string
	Content       string
	FeaturedImage *string
	CategoryID    *uint
	Status        string
	TagsInput     string // 逗号分隔的标签
}

// AuthorStats 作者工作台统计
type AuthorStats struct {
	TotalBlogs      int64          `json:"total_blogs"`
	PublishedBlogs  int64          `json:"published_blogs"`
	DraftBlogs      int64          `json:"draft_blogs"`
	TotalComments   int64          `json:"total_comments"`
	PendingComments int64          `json:"pending_comments"`
	RecentBlogs     []*models.Blog `json:"recent_blogs"`
}

// ========== 写路径 ==========

// Create 创建博客
// slug在创建时由标题生成一次；博客行和标签同步在同一事务内完成
func (s *BlogService) Create(tenantID, authorID uint, in *BlogInput) (*models.Blog, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	if err := s.checkCategory(tenantID, in.CategoryID); err != nil {
		return nil, err
	}

	blogSlug := slug.Make(in.Title)
	if blogSlug == "" {
		return nil, fmt.Errorf("标题无法生成有效slug")
	}

	// 检查slug是否重复（租户内）
	var count int64
	s.db.Model(&models.Blog{}).
		Where("tenant_id = ? AND slug = ?", tenantID, blogSlug).
		Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("博客slug已存在")
	}

	blog := &models.Blog{
		TenantID:      tenantID,
		Title:         in.Title,
		Slug:          blogSlug,
		Excerpt:       in.Excerpt,
		Content:       in.Content,
		FeaturedImage: in.FeaturedImage,
		Status:        in.Status,
		AuthorID:      authorID,
		CategoryID:    in.CategoryID,
	}

	if blog.Status == models.BlogStatusPublished {
		now := time.Now()
		blog.PublishedAt = &now
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(blog).Error; err != nil {
			return err
		}
		return s.syncTags(tx, blog, in.TagsInput)
	})
	if err != nil {
		return nil, err
	}

	return blog, nil
}

// Update 更新博客（仅作者本人）
// slug保持创建时的值不变，公开URL不随编辑漂移
func (s *BlogService) Update(tenantID, blogID, authorID uint, in *BlogInput) (*models.Blog, error) {
	blog, err := s.getOwned(tenantID, blogID, authorID)
	if err != nil {
		return nil, err
	}

	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	if err := s.checkCategory(tenantID, in.CategoryID); err != nil {
		return nil, err
	}

	blog.Title = in.Title
	blog.Excerpt = in.Excerpt
	blog.Content = in.Content
	blog.FeaturedImage = in.FeaturedImage
	blog.CategoryID = in.CategoryID

	// 首次转为published时落发布时间，撤回草稿不清除
	if in.Status == models.BlogStatusPublished && blog.PublishedAt == nil {
		now := time.Now()
		blog.PublishedAt = &now
	}
	blog.Status = in.Status

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(blog).Error; err != nil {
			return err
		}
		return s.syncTags(tx, blog, in.TagsInput)
	})
	if err != nil {
		return nil, err
	}

	return blog, nil
}

// Delete 删除博客（仅作者本人，硬删除）
func (s *BlogService) Delete(tenantID, blogID, authorID uint) error {
	blog, err := s.getOwned(tenantID, blogID, authorID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(blog).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", blog.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(blog).Error
	})
}

// getOwned 取租户内属于该作者的博客
// 跨租户和不存在统一返回RecordNotFound，不向外泄露其他租户是否有此ID
func (s *BlogService) getOwned(tenantID, blogID, authorID uint) (*models.Blog, error) {
	var blog models.Blog
	err := s.db.Where("tenant_id = ?", tenantID).First(&blog, blogID).Error
	if err != nil {
		return nil, err
	}

	if blog.AuthorID != authorID {
		return nil, ErrNotOwner
	}

	return &blog, nil
}

// syncTags 解析标签输入并替换博客的标签关联
func (s *BlogService) syncTags(tx *gorm.DB, blog *models.Blog, tagsInput string) error {
	names := ParseTagsInput(tagsInput)

	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		tag, err := s.tagService.GetOrCreate(tx, blog.TenantID, name)
		if err != nil {
			return err
		}
		tags = append(tags, *tag)
	}

	return tx.Model(blog).Association("Tags").Replace(tags)
}

// ========== 读路径 ==========

// GetByIDForAuthor 作者取自己的博客详情（编辑页）
func (s *BlogService) GetByIDForAuthor(tenantID, blogID, authorID uint) (*models.Blog, error) {
	blog, err := s.getOwned(tenantID, blogID, authorID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Category").Preload("Tags").First(blog, blog.ID).Error; err != nil {
		return nil, err
	}
	return blog, nil
}

// GetByAuthor 作者的全部博客（按创建时间降序）
func (s *BlogService) GetByAuthor(tenantID, authorID uint) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := s.db.Where("tenant_id = ? AND author_id = ?", tenantID, authorID).
		Preload("Category").
		Order("created_at DESC").
		Find(&blogs).Error
	return blogs, err
}

// GetPublishedWithPage 公开列表：仅published，按发布时间降序（分页版本）
// categorySlug非空时按分类过滤
func (s *BlogService) GetPublishedWithPage(tenantID uint, categorySlug string, page, pageSize int) ([]*models.Blog, int64, error) {
	var blogs []*models.Blog
	var total int64

	query := s.db.Model(&models.Blog{}).
		Where("blogs.tenant_id = ? AND blogs.status = ?", tenantID, models.BlogStatusPublished)

	if categorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = blogs.category_id").
			Where("categories.tenant_id = ? AND categories.slug = ?", tenantID, categorySlug)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Author").Preload("Category").
		Order("blogs.published_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&blogs).Error
	if err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

// GetPublishedBySlug 公开详情：按slug取租户内已发布博客
func (s *BlogService) GetPublishedBySlug(tenantID uint, blogSlug string) (*models.Blog, error) {
	var blog models.Blog
	err := s.db.Where("tenant_id = ? AND slug = ? AND status = ?",
		tenantID, blogSlug, models.BlogStatusPublished).
		Preload("Author").Preload("Category").Preload("Tags").
		First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// ========== 统计方法 ==========

// GetAuthorStats 作者工作台统计
func (s *BlogService) GetAuthorStats(tenantID, authorID uint) (*AuthorStats, error) {
	stats := &AuthorStats{}

	base := s.db.Model(&models.Blog{}).Where("tenant_id = ? AND author_id = ?", tenantID, authorID)
	base.Session(&gorm.Session{}).Count(&stats.TotalBlogs)
	base.Session(&gorm.Session{}).Where("status = ?", models.BlogStatusPublished).Count(&stats.PublishedBlogs)
	base.Session(&gorm.Session{}).Where("status = ?", models.BlogStatusDraft).Count(&stats.DraftBlogs)

	// 作者名下所有博客收到的评论
	commentQuery := s.db.Model(&models.Comment{}).
		Joins("JOIN blogs ON blogs.id = comments.blog_id").
		Where("blogs.tenant_id = ? AND blogs.author_id = ?", tenantID, authorID)
	commentQuery.Session(&gorm.Session{}).Count(&stats.TotalComments)
	commentQuery.Session(&gorm.Session{}).Where("comments.status = ?", models.CommentStatusPending).Count(&stats.PendingComments)

	err := s.db.Where("tenant_id = ? AND author_id = ?", tenantID, authorID).
		Order("created_at DESC").Limit(5).
		Find(&stats.RecentBlogs).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// ========== 验证方法 ==========

func (s *BlogService) validateInput(in *BlogInput) error {
	if len(in.Title) == 0 || len(in.Title) > 200 {
		return fmt.Errorf("标题长度必须在1-200个字符之间")
	}
	if len(in.Excerpt) == 0 || len(in.Excerpt) > 500 {
		return fmt.Errorf("摘要不能为空且不超过500个字符")
	}
	if in.Status != models.BlogStatusDraft && in.Status != models.BlogStatusPublished {
		return fmt.Errorf("状态只能是draft或published")
	}
	return nil
}

// checkCategory 分类必须属于调用方租户
func (s *BlogService) checkCategory(tenantID uint, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}

	var count int64
	s.db.Model(&models.Category{}).
		Where("id = ? AND tenant_id = ?", *categoryID, tenantID).
		Count(&count)
	if count == 0 {
		return fmt.Errorf("分类不存在")
	}
	return nil
}
