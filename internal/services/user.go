package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"mtblog/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// 注册可选的角色
const (
	RoleChoiceReader = "reader"
	RoleChoiceAuthor = "author"
)

// ========== 注册与认证 ==========

// Register 注册用户并落一条角色关联
// 用户行和user_roles行在同一事务内写入，不留半完成状态
func (s *UserService) Register(tenantCode, name, email, password, roleChoice string) (*models.User, error) {
	// 验证参数
	if err := s.ValidateRegisterParams(name, email, password, roleChoice); err != nil {
		return nil, err
	}

	if tenantCode == "" {
		tenantCode = models.TenantDefaultCode
	}

	// 定位租户
	var tenant models.Tenant
	if err := s.db.Where("code = ?", tenantCode).First(&tenant).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("租户不存在")
		}
		return nil, err
	}
	if tenant.Status != models.TenantStatusActive {
		return nil, fmt.Errorf("租户已停用")
	}

	// 检查邮箱是否重复（邮箱全局唯一，作为登录标识）
	var emailCount int64
	s.db.Model(&models.User{}).Where("email = ?", email).Count(&emailCount)
	if emailCount > 0 {
		return nil, fmt.Errorf("邮箱已被注册")
	}

	user := &models.User{
		TenantID: tenant.ID,
		Name:     name,
		Email:    email,
		Status:   models.UserStatusActive,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, fmt.Errorf("密码加密失败: %v", err)
	}

	roleName := capitalizeRoleChoice(roleChoice)
	roleService := NewRoleService(s.db)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		role, err := roleService.GetOrCreateByName(tx, roleName)
		if err != nil {
			return err
		}

		return tx.Create(&models.UserRole{UserID: user.ID, RoleID: role.ID}).Error
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate 按邮箱+密码认证
// 邮箱不存在和密码错误返回同一错误，不泄露账号是否存在
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Tenant").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("邮箱或密码错误")
	}

	if !s.IsActive(&user) {
		return nil, fmt.Errorf("用户已被禁用")
	}

	if !user.CheckPassword(password) {
		return nil, fmt.Errorf("邮箱或密码错误")
	}

	return &user, nil
}

// ========== 基础CRUD方法 ==========

// GetByID 根据ID获取用户
func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Tenant").First(&user, id).Error
	return &user, err
}

// GetByEmail 根据邮箱获取用户
func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Tenant").Where("email = ?", email).First(&user).Error
	return &user, err
}

// GetWithFiltersAndPage 组合查询（分页版本）
func (s *UserService) GetWithFiltersAndPage(tenantID *uint, status, keyword string, page, pageSize int) ([]*models.User, int64, error) {
	var users []*models.User
	var total int64

	query := s.db.Model(&models.User{})

	if tenantID != nil {
		query = query.Where("tenant_id = ?", *tenantID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if keyword != "" {
		searchPattern := fmt.Sprintf("%%%s%%", keyword)
		query = query.Where("email LIKE ? OR name LIKE ?", searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Tenant").Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update 更新用户
func (s *UserService) Update(id uint, name, status string) (*models.User, error) {
	if !s.ValidateName(name) {
		return nil, fmt.Errorf("姓名长度必须在2-100个字符之间")
	}
	if !s.IsValidStatus(status) {
		return nil, fmt.Errorf("状态只能是active或inactive")
	}

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	user.Name = name
	user.Status = status

	err := s.db.Save(&user).Error
	return &user, err
}

// Delete 删除用户
func (s *UserService) Delete(id uint) error {
	return s.db.Delete(&models.User{}, id).Error
}

// Activate 激活用户
func (s *UserService) Activate(id uint) (*models.User, error) {
	return s.setStatus(id, models.UserStatusActive)
}

// Deactivate 停用用户
func (s *UserService) Deactivate(id uint) (*models.User, error) {
	return s.setStatus(id, models.UserStatusInactive)
}

func (s *UserService) setStatus(id uint, status string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	user.Status = status
	err := s.db.Save(&user).Error
	return &user, err
}

// ========== 权限检查方法 ==========

// HasPermission 检查用户是否有特定权限（经角色间接持有）
func (s *UserService) HasPermission(userID uint, permissionCode string) (bool, error) {
	var user models.User
	err := s.db.Preload("Roles.Permissions").First(&user, userID).Error
	if err != nil {
		return false, err
	}

	for _, role := range user.Roles {
		for _, permission := range role.Permissions {
			if permission.Code == permissionCode {
				return true, nil
			}
		}
	}

	return false, nil
}

// ========== 业务逻辑方法 ==========

// IsActive 检查用户是否激活
func (s *UserService) IsActive(user *models.User) bool {
	return user.Status == models.UserStatusActive
}

// IsValidStatus 检查用户状态是否有效
func (s *UserService) IsValidStatus(status string) bool {
	switch status {
	case models.UserStatusActive, models.UserStatusInactive:
		return true
	default:
		return false
	}
}

// ========== 验证相关方法 ==========

// ValidateEmail 验证邮箱
func (s *UserService) ValidateEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".") && len(email) >= 5 && len(email) <= 150
}

// ValidatePassword 验证密码
func (s *UserService) ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("密码长度不能少于6位")
	}
	if len(password) > 72 {
		// bcrypt输入上限
		return fmt.Errorf("密码长度不能超过72位")
	}
	return nil
}

// ValidateName 验证姓名
func (s *UserService) ValidateName(name string) bool {
	runeCount := utf8.RuneCountInString(name)
	return runeCount >= 2 && runeCount <= 100
}

// ValidateRoleChoice 验证注册时的角色选择
func (s *UserService) ValidateRoleChoice(roleChoice string) bool {
	return roleChoice == RoleChoiceReader || roleChoice == RoleChoiceAuthor
}

// ValidateRegisterParams 验证注册参数
func (s *UserService) ValidateRegisterParams(name, email, password, roleChoice string) error {
	if !s.ValidateName(name) {
		return fmt.Errorf("姓名长度必须在2-100个字符之间")
	}
	if !s.ValidateEmail(email) {
		return fmt.Errorf("邮箱格式不正确")
	}
	if err := s.ValidatePassword(password); err != nil {
		return err
	}
	if !s.ValidateRoleChoice(roleChoice) {
		return fmt.Errorf("角色只能是reader或author")
	}
	return nil
}

// capitalizeRoleChoice 注册选项转角色名，"author" -> "Author"
func capitalizeRoleChoice(choice string) string {
	if choice == "" {
		return choice
	}
	return strings.ToUpper(choice[:1]) + choice[1:]
}
