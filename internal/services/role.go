package services

import (
	"fmt"

	"mtblog/internal/models"

	"gorm.io/gorm"
)

type RoleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

// ========== 角色查询方法 ==========

// RolesOf 获取用户当前的角色名称集合
// 每次请求实时解析user_roles关联，不做缓存，管理端变更立即生效
func (s *RoleService) RolesOf(userID uint) ([]string, error) {
	var names []string
	err := s.db.Model(&models.Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Pluck("roles.name", &names).Error
	return names, err
}

// HasRole 检查用户是否持有指定角色
func (s *RoleService) HasRole(userID uint, roleName string) (bool, error) {
	var count int64
	err := s.db.Model(&models.UserRole{}).
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ? AND roles.name = ?", userID, roleName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByID 根据ID获取角色
func (s *RoleService) GetByID(id uint) (*models.Role, error) {
	var role models.Role
	err := s.db.Preload("Permissions").First(&role, id).Error
	return &role, err
}

// GetByName 根据名称获取角色
func (s *RoleService) GetByName(name string) (*models.Role, error) {
	var role models.Role
	err := s.db.Where("name = ?", name).First(&role).Error
	return &role, err
}

// GetAll 获取角色列表
func (s *RoleService) GetAll() ([]*models.Role, error) {
	var roles []*models.Role
	err := s.db.Preload("Permissions").Order("name").Find(&roles).Error
	return roles, err
}

// GetOrCreateByName 按名称获取角色，不存在则创建
// 注册时按用户选择落角色行，首个注册者触发创建
func (s *RoleService) GetOrCreateByName(tx *gorm.DB, name string) (*models.Role, error) {
	var role models.Role
	err := tx.Where("name = ?", name).First(&role).Error
	if err == nil {
		return &role, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	role = models.Role{Name: name}
	if err := tx.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// ========== 角色分配方法 ==========

// Grant 给用户授予角色
func (s *RoleService) Grant(userID, roleID uint) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return err
	}

	var role models.Role
	if err := s.db.First(&role, roleID).Error; err != nil {
		return err
	}

	// 检查用户是否已有该角色
	var count int64
	s.db.Model(&models.UserRole{}).Where("user_id = ? AND role_id = ?", userID, roleID).Count(&count)
	if count > 0 {
		return fmt.Errorf("用户已拥有该角色")
	}

	return s.db.Model(&user).Association("Roles").Append(&role)
}

// Revoke 移除用户的角色
func (s *RoleService) Revoke(userID, roleID uint) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return err
	}

	var role models.Role
	if err := s.db.First(&role, roleID).Error; err != nil {
		return err
	}

	return s.db.Model(&user).Association("Roles").Delete(&role)
}

// ========== 权限管理方法 ==========

// AssignPermissions 为角色分配权限
func (s *RoleService) AssignPermissions(roleID uint, permissionIDs []uint) error {
	var role models.Role
	if err := s.db.First(&role, roleID).Error; err != nil {
		return err
	}

	var permissions []models.Permission
	if err := s.db.Where("id IN ?", permissionIDs).Find(&permissions).Error; err != nil {
		return err
	}
	if len(permissions) != len(permissionIDs) {
		return fmt.Errorf("部分权限不存在")
	}

	// 清除现有权限，重新分配
	return s.db.Model(&role).Association("Permissions").Replace(permissions)
}

// GetRolePermissions 获取角色的权限
func (s *RoleService) GetRolePermissions(roleID uint) ([]models.Permission, error) {
	var role models.Role
	err := s.db.Preload("Permissions").First(&role, roleID).Error
	if err != nil {
		return nil, err
	}
	return role.Permissions, nil
}
