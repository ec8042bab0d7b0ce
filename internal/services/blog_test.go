package services

import (
	"testing"

	"mtblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBlogCreateGeneratesSlug(t *testing.T) {
	db := newTestDB(t)
	tenant := seedTenant(t, db, "default")
	author := registerUser(t, db, "default", "Alice", RoleChoiceAuthor)

	service := NewBlogService(db)

	blog, err := service.Create(tenant.ID, author.ID, &BlogInput{
		Title:   "Hello, World",
		Excerpt: "intro",
		Content: "body",
		Status:  models.BlogStatusDraft,
	})
	require.NoError(t, err)

	assert.Equal(t, "hello-world", blog.Slug)
	assert.Equal(t, author.ID, blog.AuthorID)
	assert.Equal(t, tenant.ID, blog.TenantID)
	assert.Nil(t, blog.PublishedAt)
}

func TestBlogSlugStableAcrossEdits(t *testing.T) {
	db := newTestDB(t)
	tenant := seedTenant(t, db, "default")
	author := registerUser(t, db, "default", "Alice", RoleChoiceAuthor)

	service := NewBlogService(db)

	blog, err := service.Create(tenant.ID, author.ID, &BlogInput{
		Title:   "Hello, World",
		Excerpt: "intro",
		Content: "body",
		Status:  models.BlogStatusDraft,
	})
	require.NoError(t, err)

	// 标题改了，slug仍是创建时的值
	updated, err := service.Update(tenant.ID, blog.ID, author.ID, &BlogInput{
		Title:   "Totally Different Title",
		Excerpt: "intro v2",
		Content: "body v2",
		Status:  models.BlogStatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", updated.Slug)
	assert.Equal(t, "Totally Different Title", updated.Title)
}

func TestBlogPublishedAtSetOnce(t *testing.T) {
	db := newTestDB(t)
	tenant := seedTenant(t, db, "default")
	author := registerUser(t, db, "default", "Alice", RoleChoiceAuthor)

	service := NewBlogService(db)

	blog, err := service.Create(tenant.ID, author.ID, &BlogInput{
		Title: "Draft First", Excerpt: "e", Content: "c", Status: models.BlogStatusDraft,
	})
	require.NoError(t, err)
	require.Nil(t, blog.PublishedAt)

	// 首次发布落时间戳
	published, err := service.Update(tenant.ID, blog.ID, author.ID, &BlogInput{
		Title: "Draft First", Excerpt: "e", Content: "c", Status: models.BlogStatusPublished,
	})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstPublishedAt := *published.PublishedAt

	// 撤回草稿再发布，时间戳不变
	_, err = service.Update(tenant.ID, blog.ID, author.ID, &BlogInput{
		Title: "Draft First", Excerpt: "e", Content: "c", Status: models.BlogStatusDraft,
	})
	require.NoError(t, err)

	republished, err := service.Update(tenant.ID, blog.ID, author.ID, &BlogInput{
		Title: "Draft First", Excerpt: "e", Content: "c", Status: models.BlogStatusPublished,
	})
	require.NoError(t, err)
	require.NotNil(t, republished.PublishedAt)
	assert.Equal(t, firstPublishedAt.Unix(), republished.PublishedAt.Unix())
}

func TestBlogOwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	tenant := seedTenant(t, db, "default")
	alice := registerUser(t, db, "default", "Alice", RoleChoiceAuthor)
	bob := registerUser(t, db, "default", "Bob", RoleChoiceAuthor)

	service := NewBlogService(db)

	blog, err := service.Create(tenant.ID, alice.ID, &BlogInput{
		Title: "Mine", Excerpt: "e", Content: "c", Status: models.BlogStatusDraft,
	})
	require.NoError(t, err)

	// 同租户他人编辑/删除：ErrNotOwner
	_, err = service.Update(tenant.ID, blog.ID, bob.ID, &BlogInput{
		Title: "Hijacked", Excerpt: "e", Content: "c", Status: models.BlogStatusDraft,
	})
	assert.ErrorIs(t, err, ErrNotOwner)

	err = service.Delete(tenant.ID, blog.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	// 博客未被改动
	var stored models.Blog
	require.NoError(t, db.First(&stored, blog.ID).Error)
	assert.Equal(t, "Mine", stored.Title)
}

func TestBlogCrossTenantLooksLikeMissing(t *testing.T) {
	db := newTestDB(t)
	t1 := seedTenant(t, db, "one")
	t2 := seedTenant(t, db, "two")
	alice := registerUser(t, db, "one", "Alice", RoleChoiceAuthor)
	eve := registerUser(t, db, "two", "Eve", RoleChoiceAuthor)

	service := NewBlogService(db)

	blog, err := service.Create(t1.ID, alice.ID, &BlogInput{
		Title: "Secret", Excerpt: "e", Content: "c", Status: models.BlogStatusPublished,
	})
	require.NoError(t, err)

	// 跨租户访问与不存在同样返回RecordNotFound，而不是权限错误
	_, err = service.GetByIDForAuthor(t2.ID, blog.ID, eve.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = service.Update(t2.ID, blog.ID, eve.ID, &BlogInput{
		Title: "x", Excerpt: "e", Content: "c", Status: models.BlogStatusDraft,
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 公开列表同样隔离
	blogs, total, err := service.GetPublishedWithPage(t2.ID, "", 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, blogs)
}

func TestBlogDuplicateSlugRejected(t *testing.T) {
	db := newTestDB(t)
	tenant := seedTenant(t, db, "default")
	other := seedTenant(t, db, "other")
	alice := registerUser(t, db, "default", "Alice", RoleChoiceAuthor)
	eve := registerUser(t, db, "other", "Eve", RoleChoiceAuthor)

	service := NewBlogService(db)

	_, err := service.Create(tenant.ID, alice.ID, &BlogInput{
		Title: "Hello World", Excerpt: "e", Content: "c", Status: models.BlogStatusDraft,
	})
	require.NoError(t, err)

	// 租户内重复标题撞slug
	_, err = service.Create(tenant.ID, alice.ID, &BlogInput{
		Title: "Hello World", Excerpt: "e", Content: "c", Status: models.BlogStatusDraft,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slug已存在")

	// 不同租户可以同slug
	_, err = service.Create(other.ID, eve.ID, &BlogInput{
		Title: "Hello World", Excerpt: "e", Content: "c", Status: models.BlogStatusDraft,
	})
	assert.NoError(t, err)
}

func TestBlogTagSync(t *testing.T) {
	db := newTestDB(t)
	tenant := seedTenant(t, db, "default")
	author := registerUser(t, db, "default", "Alice", RoleChoiceAuthor)

	service := NewBlogService(db)

	blog, err := service.Create(tenant.ID, author.ID, &BlogInput{
		Title: "Tagged", Excerpt: "e", Content: "c", Status: models.BlogStatusDraft,
		TagsInput: "go, web , ,go",
	})
	require.NoError(t, err)

	var stored models.Blog
	require.NoError(t, db.Preload("Tags").First(&stored, blog.ID).Error)
	names := tagNames(stored.Tags)
	assert.ElementsMatch(t, []string{"go", "web"}, names)

	// 重新保存替换标签集合，旧关联被移除
	_, err = service.Update(tenant.ID, blog.ID, author.ID, &BlogInput{
		Title: "Tagged", Excerpt: "e", Content: "c", Status: models.BlogStatusDraft,
		TagsInput: "go, databases",
	})
	require.NoError(t, err)

	require.NoError(t, db.Preload("Tags").First(&stored, blog.ID).Error)
	assert.ElementsMatch(t, []string{"go", "databases"}, tagNames(stored.Tags))

	// 标签行按名称复用，不重复创建
	var tagCount int64
	db.Model(&models.Tag{}).Where("tenant_id = ? AND name = ?", tenant.ID, "go").Count(&tagCount)
	assert.Equal(t, int64(1), tagCount)
}

func TestBlogDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	tenant := seedTenant(t, db, "default")
	author := registerUser(t, db, "default", "Alice", RoleChoiceAuthor)
	reader := registerUser(t, db, "default", "Bob", RoleChoiceReader)

	blogService := NewBlogService(db)
	commentService := NewCommentService(db)

	blog, err := blogService.Create(tenant.ID, author.ID, &BlogInput{
		Title: "Doomed", Excerpt: "e", Content: "c", Status: models.BlogStatusPublished,
		TagsInput: "go",
	})
	require.NoError(t, err)

	_, err = commentService.Submit(tenant.ID, blog.ID, reader, "nice post")
	require.NoError(t, err)

	require.NoError(t, blogService.Delete(tenant.ID, blog.ID, author.ID))

	var blogCount, commentCount int64
	db.Model(&models.Blog{}).Where("id = ?", blog.ID).Count(&blogCount)
	db.Model(&models.Comment{}).Where("blog_id = ?", blog.ID).Count(&commentCount)
	assert.Zero(t, blogCount)
	assert.Zero(t, commentCount)
}

func TestGetPublishedWithPageByCategory(t *testing.T) {
	db := newTestDB(t)
	tenant := seedTenant(t, db, "default")
	author := registerUser(t, db, "default", "Alice", RoleChoiceAuthor)

	blogService := NewBlogService(db)
	categoryService := NewCategoryService(db)

	tech, err := categoryService.Create(tenant.ID, "Tech")
	require.NoError(t, err)

	_, err = blogService.Create(tenant.ID, author.ID, &BlogInput{
		Title: "In Tech", Excerpt: "e", Content: "c", Status: models.BlogStatusPublished,
		CategoryID: &tech.ID,
	})
	require.NoError(t, err)

	_, err = blogService.Create(tenant.ID, author.ID, &BlogInput{
		Title: "Uncategorized", Excerpt: "e", Content: "c", Status: models.BlogStatusPublished,
	})
	require.NoError(t, err)

	_, err = blogService.Create(tenant.ID, author.ID, &BlogInput{
		Title: "Still Draft", Excerpt: "e", Content: "c", Status: models.BlogStatusDraft,
		CategoryID: &tech.ID,
	})
	require.NoError(t, err)

	all, total, err := blogService.GetPublishedWithPage(tenant.ID, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	inTech, total, err := blogService.GetPublishedWithPage(tenant.ID, "tech", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, inTech, 1)
	assert.Equal(t, "In Tech", inTech[0].Title)
}

func TestGetAuthorStats(t *testing.T) {
	db := newTestDB(t)
	tenant := seedTenant(t, db, "default")
	author := registerUser(t, db, "default", "Alice", RoleChoiceAuthor)
	reader := registerUser(t, db, "default", "Bob", RoleChoiceReader)

	blogService := NewBlogService(db)
	commentService := NewCommentService(db)

	published, err := blogService.Create(tenant.ID, author.ID, &BlogInput{
		Title: "Published", Excerpt: "e", Content: "c", Status: models.BlogStatusPublished,
	})
	require.NoError(t, err)
	_, err = blogService.Create(tenant.ID, author.ID, &BlogInput{
		Title: "Draft", Excerpt: "e", Content: "c", Status: models.BlogStatusDraft,
	})
	require.NoError(t, err)

	comment, err := commentService.Submit(tenant.ID, published.ID, reader, "first")
	require.NoError(t, err)
	_, err = commentService.Submit(tenant.ID, published.ID, reader, "second")
	require.NoError(t, err)
	_, err = commentService.Approve(tenant.ID, comment.ID)
	require.NoError(t, err)

	stats, err := blogService.GetAuthorStats(tenant.ID, author.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalBlogs)
	assert.Equal(t, int64(1), stats.PublishedBlogs)
	assert.Equal(t, int64(1), stats.DraftBlogs)
	assert.Equal(t, int64(2), stats.TotalComments)
	assert.Equal(t, int64(1), stats.PendingComments)
	assert.Len(t, stats.RecentBlogs, 2)
}

func tagNames(tags []models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}
