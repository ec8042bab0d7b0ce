package services

import (
	"fmt"

	"mtblog/internal/models"
	"mtblog/pkg/slug"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// Create 创建分类
// slug由名称生成，租户内唯一；重名不做消歧后缀，直接以重复错误返回
func (s *CategoryService) Create(tenantID uint, name string) (*models.Category, error) {
	if len(name) == 0 || len(name) > 100 {
		return nil, fmt.Errorf("分类名称长度必须在1-100个字符之间")
	}

	categorySlug := slug.Make(name)
	if categorySlug == "" {
		return nil, fmt.Errorf("分类名称无法生成有效slug")
	}

	// 检查slug是否重复（租户内）
	var count int64
	s.db.Model(&models.Category{}).
		Where("tenant_id = ? AND slug = ?", tenantID, categorySlug).
		Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("分类slug已存在")
	}

	category := &models.Category{
		TenantID: tenantID,
		Name:     name,
		Slug:     categorySlug,
	}

	err := s.db.Create(category).Error
	return category, err
}

// GetByTenant 获取租户下全部分类（按名称排序）
func (s *CategoryService) GetByTenant(tenantID uint) ([]*models.Category, error) {
	var categories []*models.Category
	err := s.db.Where("tenant_id = ?", tenantID).Order("name").Find(&categories).Error
	return categories, err
}

// GetBySlug 按slug获取租户内分类
func (s *CategoryService) GetBySlug(tenantID uint, categorySlug string) (*models.Category, error) {
	var category models.Category
	err := s.db.Where("tenant_id = ? AND slug = ?", tenantID, categorySlug).First(&category).Error
	return &category, err
}

// Delete 删除分类（仅管理端使用，作者面不暴露删除）
func (s *CategoryService) Delete(tenantID, id uint) error {
	var category models.Category
	if err := s.db.Where("tenant_id = ?", tenantID).First(&category, id).Error; err != nil {
		return err
	}

	// 仍被博客引用的分类不允许删除
	var blogCount int64
	s.db.Model(&models.Blog{}).Where("category_id = ?", category.ID).Count(&blogCount)
	if blogCount > 0 {
		return fmt.Errorf("分类下仍有博客，不能删除")
	}

	return s.db.Delete(&category).Error
}
