package services

import (
	"testing"

	"mtblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreate(t *testing.T) {
	db := newTestDB(t)
	tenant := seedTenant(t, db, "default")

	service := NewCategoryService(db)

	category, err := service.Create(tenant.ID, "Web Development")
	require.NoError(t, err)
	assert.Equal(t, "web-development", category.Slug)

	// 租户内重名直接失败，不做消歧后缀
	_, err = service.Create(tenant.ID, "Web Development")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slug已存在")
}

func TestCategorySlugUniquePerTenant(t *testing.T) {
	db := newTestDB(t)
	t1 := seedTenant(t, db, "one")
	t2 := seedTenant(t, db, "two")

	service := NewCategoryService(db)

	_, err := service.Create(t1.ID, "Tech")
	require.NoError(t, err)

	// 不同租户可以同名
	_, err = service.Create(t2.ID, "Tech")
	require.NoError(t, err)

	one, err := service.GetByTenant(t1.ID)
	require.NoError(t, err)
	assert.Len(t, one, 1)
}

func TestCategoryDeleteRefusesWhenReferenced(t *testing.T) {
	db := newTestDB(t)
	tenant := seedTenant(t, db, "default")
	author := registerUser(t, db, "default", "Alice", RoleChoiceAuthor)

	categoryService := NewCategoryService(db)
	blogService := NewBlogService(db)

	category, err := categoryService.Create(tenant.ID, "Tech")
	require.NoError(t, err)

	_, err = blogService.Create(tenant.ID, author.ID, &BlogInput{
		Title: "Post", Excerpt: "e", Content: "c", Status: models.BlogStatusDraft,
		CategoryID: &category.ID,
	})
	require.NoError(t, err)

	err = categoryService.Delete(tenant.ID, category.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不能删除")

	empty, err := categoryService.Create(tenant.ID, "Empty")
	require.NoError(t, err)
	assert.NoError(t, categoryService.Delete(tenant.ID, empty.ID))
}

func TestParseTagsInput(t *testing.T) {
	assert.Equal(t, []string{"go", "web"}, ParseTagsInput("go, web"))
	assert.Equal(t, []string{"go"}, ParseTagsInput(" go ,, "))
	assert.Empty(t, ParseTagsInput(""))
	assert.Equal(t, []string{"Go", "go"}, ParseTagsInput("Go,go"))
}
