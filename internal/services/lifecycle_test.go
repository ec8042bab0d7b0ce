package services

import (
	"testing"

	"mtblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 覆盖注册到公开阅读的完整链路
func TestPublishingLifecycle(t *testing.T) {
	db := newTestDB(t)
	seedTenant(t, db, "default")

	userService := NewUserService(db)
	roleService := NewRoleService(db)
	tenantService := NewTenantService(db)
	blogService := NewBlogService(db)
	commentService := NewCommentService(db)
	categoryService := NewCategoryService(db)

	// 注册作者和读者
	author, err := userService.Register("", "Alice", "alice@example.com", "secret123", RoleChoiceAuthor)
	require.NoError(t, err)
	reader, err := userService.Register("", "Bob", "bob@example.com", "secret123", RoleChoiceReader)
	require.NoError(t, err)

	// 登录
	author, err = userService.Authenticate("alice@example.com", "secret123")
	require.NoError(t, err)
	isAuthor, err := roleService.HasRole(author.ID, models.RoleAuthor)
	require.NoError(t, err)
	require.True(t, isAuthor)

	tenant, err := tenantService.GetByCode(models.TenantDefaultCode)
	require.NoError(t, err)

	// 建分类、写草稿
	tech, err := categoryService.Create(tenant.ID, "Tech")
	require.NoError(t, err)

	blog, err := blogService.Create(tenant.ID, author.ID, &BlogInput{
		Title:      "Go Concurrency Patterns",
		Excerpt:    "channels and goroutines",
		Content:    "long form content",
		CategoryID: &tech.ID,
		Status:     models.BlogStatusDraft,
		TagsInput:  "go, concurrency",
	})
	require.NoError(t, err)

	// 草稿对公开面不可见
	_, err = blogService.GetPublishedBySlug(tenant.ID, blog.Slug)
	require.Error(t, err)

	// 发布
	blog, err = blogService.Update(tenant.ID, blog.ID, author.ID, &BlogInput{
		Title:      "Go Concurrency Patterns",
		Excerpt:    "channels and goroutines",
		Content:    "long form content",
		CategoryID: &tech.ID,
		Status:     models.BlogStatusPublished,
		TagsInput:  "go, concurrency",
	})
	require.NoError(t, err)
	require.NotNil(t, blog.PublishedAt)

	// 公开详情可见，带分类和标签
	public, err := blogService.GetPublishedBySlug(tenant.ID, "go-concurrency-patterns")
	require.NoError(t, err)
	require.NotNil(t, public.Category)
	assert.Equal(t, "tech", public.Category.Slug)
	assert.Len(t, public.Tags, 2)

	// 读者评论，审核后公开可见
	comment, err := commentService.Submit(tenant.ID, public.ID, reader, "very helpful")
	require.NoError(t, err)
	assert.Equal(t, models.CommentStatusPending, comment.Status)

	_, err = commentService.Approve(tenant.ID, comment.ID)
	require.NoError(t, err)

	visible, err := commentService.GetApprovedByBlog(public.ID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Bob", visible[0].Name)

	// 作者工作台
	stats, err := blogService.GetAuthorStats(tenant.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.PublishedBlogs)
	assert.Equal(t, int64(1), stats.TotalComments)
}
