package main

import (
	"fmt"

	"mtblog/internal/database"
	"mtblog/internal/models"
	"mtblog/pkg/logger"

	"gorm.io/gorm"
)

// seedData 初始化种子数据
func seedData() error {
	appLogger := logger.GetLogger()
	appLogger.Info("Starting seed data initialization...")

	db := database.GetDB()

	// 1. 创建默认租户
	if err := createDefaultTenant(db); err != nil {
		return fmt.Errorf("创建默认租户失败: %v", err)
	}

	// 2. 初始化权限
	if err := initializePermissions(db); err != nil {
		return fmt.Errorf("初始化权限失败: %v", err)
	}

	// 3. 创建预定义角色
	if err := createDefaultRoles(db); err != nil {
		return fmt.Errorf("创建预定义角色失败: %v", err)
	}

	// 4. 创建默认管理员用户
	if err := createDefaultAdmin(db); err != nil {
		return fmt.Errorf("创建默认管理员失败: %v", err)
	}

	appLogger.Info("Seed data initialization completed successfully")
	return nil
}

// createDefaultTenant 创建默认租户
func createDefaultTenant(db *gorm.DB) error {
	var count int64
	db.Model(&models.Tenant{}).Where("code = ?", models.TenantDefaultCode).Count(&count)
	if count > 0 {
		logger.GetLogger().Info("默认租户已存在，跳过创建")
		return nil
	}

	tenant := &models.Tenant{
		Name:   "默认租户",
		Code:   models.TenantDefaultCode,
		Status: models.TenantStatusActive,
	}

	if err := db.Create(tenant).Error; err != nil {
		return err
	}

	logger.GetLogger().Info("默认租户创建成功")
	return nil
}

// initializePermissions 初始化权限
func initializePermissions(db *gorm.DB) error {
	// 定义默认权限
	defaultPermissions := []models.Permission{
		// 博客管理权限
		{Code: "blog:create", Name: "创建博客", Module: models.ModuleBlog, Action: models.ActionCreate, Description: "创建新博客"},
		{Code: "blog:update", Name: "更新博客", Module: models.ModuleBlog, Action: models.ActionUpdate, Description: "更新自己的博客"},
		{Code: "blog:delete", Name: "删除博客", Module: models.ModuleBlog, Action: models.ActionDelete, Description: "删除自己的博客"},
		{Code: "blog:list", Name: "博客列表", Module: models.ModuleBlog, Action: models.ActionList, Description: "查看自己的博客列表"},

		// 分类管理权限
		{Code: "category:create", Name: "创建分类", Module: models.ModuleCategory, Action: models.ActionCreate, Description: "创建新分类"},
		{Code: "category:list", Name: "分类列表", Module: models.ModuleCategory, Action: models.ActionList, Description: "查看分类列表"},
		{Code: "category:delete", Name: "删除分类", Module: models.ModuleCategory, Action: models.ActionDelete, Description: "删除空分类"},

		// 评论权限
		{Code: "comment:create", Name: "发表评论", Module: models.ModuleComment, Action: models.ActionCreate, Description: "对已发布博客发表评论"},
		{Code: "comment:list", Name: "评论列表", Module: models.ModuleComment, Action: models.ActionList, Description: "查看审核队列"},
		{Code: "comment:moderate", Name: "审核评论", Module: models.ModuleComment, Action: models.ActionModerate, Description: "通过或拒绝评论"},

		// 用户管理权限
		{Code: "user:read", Name: "查看用户", Module: models.ModuleUser, Action: models.ActionRead, Description: "查看用户信息"},
		{Code: "user:update", Name: "更新用户", Module: models.ModuleUser, Action: models.ActionUpdate, Description: "更新用户信息"},
		{Code: "user:delete", Name: "删除用户", Module: models.ModuleUser, Action: models.ActionDelete, Description: "删除用户"},
		{Code: "user:list", Name: "用户列表", Module: models.ModuleUser, Action: models.ActionList, Description: "查看用户列表"},

		// 角色管理权限
		{Code: "role:list", Name: "角色列表", Module: models.ModuleRole, Action: models.ActionList, Description: "查看角色与权限列表"},
		{Code: "role:assign", Name: "分配角色", Module: models.ModuleRole, Action: models.ActionAssign, Description: "给用户分配或收回角色"},

		// 租户管理权限
		{Code: "tenant:create", Name: "创建租户", Module: models.ModuleTenant, Action: models.ActionCreate, Description: "创建新租户"},
		{Code: "tenant:update", Name: "更新租户", Module: models.ModuleTenant, Action: models.ActionUpdate, Description: "启用或停用租户"},
		{Code: "tenant:list", Name: "租户列表", Module: models.ModuleTenant, Action: models.ActionList, Description: "查看租户列表"},
	}

	// 批量创建权限
	for _, perm := range defaultPermissions {
		var count int64
		db.Model(&models.Permission{}).Where("code = ?", perm.Code).Count(&count)
		if count == 0 {
			if err := db.Create(&perm).Error; err != nil {
				return fmt.Errorf("创建权限 %s 失败: %v", perm.Code, err)
			}
		}
	}

	logger.GetLogger().Info("权限初始化完成")
	return nil
}

// createDefaultRoles 创建预定义角色并分配权限
func createDefaultRoles(db *gorm.DB) error {
	// 角色名 -> 权限代码
	rolePerms := map[string]struct {
		description string
		codes       []string
	}{
		models.RoleReader: {
			description: "读者：浏览已发布内容并发表评论",
			codes:       []string{"comment:create"},
		},
		models.RoleAuthor: {
			description: "作者：创建和管理自己的博客与分类",
			codes: []string{
				"blog:create", "blog:update", "blog:delete", "blog:list",
				"category:create", "category:list",
				"comment:create",
			},
		},
		models.RoleAdmin: {
			description: "管理员：系统最高权限",
			codes:       nil, // 分配全部权限
		},
	}

	for _, name := range []string{models.RoleReader, models.RoleAuthor, models.RoleAdmin} {
		def := rolePerms[name]

		var role models.Role
		err := db.Where("name = ?", name).First(&role).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		role = models.Role{
			Name:        name,
			Description: def.description,
		}
		if err := db.Create(&role).Error; err != nil {
			return err
		}

		// 分配权限
		var permissions []models.Permission
		if def.codes == nil {
			db.Find(&permissions)
		} else {
			db.Where("code IN ?", def.codes).Find(&permissions)
		}

		var rolePermissions []models.RolePermission
		for _, perm := range permissions {
			rolePermissions = append(rolePermissions, models.RolePermission{
				RoleID:       role.ID,
				PermissionID: perm.ID,
			})
		}
		if len(rolePermissions) > 0 {
			if err := db.Create(&rolePermissions).Error; err != nil {
				return err
			}
		}
	}

	logger.GetLogger().Info("预定义角色创建完成")
	return nil
}

// createDefaultAdmin 创建默认管理员用户
func createDefaultAdmin(db *gorm.DB) error {
	var count int64
	db.Model(&models.User{}).Where("email = ?", "admin@example.com").Count(&count)
	if count > 0 {
		logger.GetLogger().Info("管理员用户已存在，跳过创建")
		return nil
	}

	// 获取默认租户
	var tenant models.Tenant
	if err := db.Where("code = ?", models.TenantDefaultCode).First(&tenant).Error; err != nil {
		return fmt.Errorf("获取默认租户失败: %v", err)
	}

	// 创建用户
	user := &models.User{
		TenantID: tenant.ID,
		Email:    "admin@example.com",
		Name:     "系统管理员",
		Status:   models.UserStatusActive,
	}

	// 设置密码
	if err := user.SetPassword("Admin@123"); err != nil {
		return fmt.Errorf("设置密码失败: %v", err)
	}

	if err := db.Create(user).Error; err != nil {
		return err
	}

	// 分配管理员角色
	var role models.Role
	if err := db.Where("name = ?", models.RoleAdmin).First(&role).Error; err == nil {
		userRole := &models.UserRole{
			UserID: user.ID,
			RoleID: role.ID,
		}
		db.Create(userRole)
	}

	logger.GetLogger().Infof("默认管理员创建成功 - 邮箱: admin@example.com, 密码: Admin@123")
	return nil
}
