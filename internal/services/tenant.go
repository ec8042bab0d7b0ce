package services

import (
	"fmt"

	"mtblog/internal/models"

	"gorm.io/gorm"
)

type TenantService struct {
	db *gorm.DB
}

func NewTenantService(db *gorm.DB) *TenantService {
	return &TenantService{db: db}
}

// Create 创建租户
func (s *TenantService) Create(name, code string) (*models.Tenant, error) {
	if err := s.ValidateCreateParams(name, code); err != nil {
		return nil, err
	}

	// 检查租户代码是否重复
	var count int64
	s.db.Model(&models.Tenant{}).Where("code = ?", code).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("租户代码已存在")
	}

	tenant := &models.Tenant{
		Name:   name,
		Code:   code,
		Status: models.TenantStatusActive,
	}

	err := s.db.Create(tenant).Error
	return tenant, err
}

// GetByID 根据ID获取租户
func (s *TenantService) GetByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.db.First(&tenant, id).Error
	return &tenant, err
}

// GetByCode 根据代码获取租户
func (s *TenantService) GetByCode(code string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.db.Where("code = ?", code).First(&tenant).Error
	return &tenant, err
}

// GetAll 获取租户列表
func (s *TenantService) GetAll() ([]*models.Tenant, error) {
	var tenants []*models.Tenant
	err := s.db.Order("created_at DESC").Find(&tenants).Error
	return tenants, err
}

// Activate 激活租户
func (s *TenantService) Activate(id uint) (*models.Tenant, error) {
	return s.setStatus(id, models.TenantStatusActive)
}

// Deactivate 停用租户
func (s *TenantService) Deactivate(id uint) (*models.Tenant, error) {
	return s.setStatus(id, models.TenantStatusInactive)
}

func (s *TenantService) setStatus(id uint, status string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.First(&tenant, id).Error; err != nil {
		return nil, err
	}

	tenant.Status = status
	err := s.db.Save(&tenant).Error
	return &tenant, err
}

// ValidateCreateParams 验证创建租户的参数
func (s *TenantService) ValidateCreateParams(name, code string) error {
	if len(name) == 0 || len(name) > 100 {
		return fmt.Errorf("租户名称长度必须在1-100个字符之间")
	}
	if len(code) < 2 || len(code) > 50 {
		return fmt.Errorf("租户代码长度必须在2-50个字符之间")
	}
	for _, r := range code {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_') {
			return fmt.Errorf("租户代码只能包含小写字母、数字、连字符和下划线")
		}
	}
	return nil
}
