package services

import (
	"strings"

	"mtblog/internal/models"
	"mtblog/pkg/slug"

	"gorm.io/gorm"
)

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// ParseTagsInput 解析逗号分隔的标签输入
// 逐项去空白，空项丢弃；名称不做大小写归一
func ParseTagsInput(input string) []string {
	parts := strings.Split(input, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

// GetOrCreate 按名称精确匹配获取租户内标签，不存在则创建
// 在博客保存事务内调用，tx传入事务句柄
func (s *TagService) GetOrCreate(tx *gorm.DB, tenantID uint, name string) (*models.Tag, error) {
	var tag models.Tag
	err := tx.Where("tenant_id = ? AND name = ?", tenantID, name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	tag = models.Tag{
		TenantID: tenantID,
		Name:     name,
		Slug:     slug.Make(name),
	}
	if err := tx.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByTenant 获取租户下全部标签（按名称排序）
func (s *TagService) GetByTenant(tenantID uint) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := s.db.Where("tenant_id = ?", tenantID).Order("name").Find(&tags).Error
	return tags, err
}
