package database

import (
	"mtblog/internal/models"
	"mtblog/pkg/logger"
)

// Migrate 执行数据库迁移
func Migrate() error {
	appLogger := logger.GetLogger()
	appLogger.Info("Starting database migration...")

	err := DB.AutoMigrate(
		// 身份与授权
		&models.Tenant{},
		&models.User{},
		&models.Permission{},
		&models.Role{},
		&models.RolePermission{},
		&models.UserRole{},
		// 内容
		&models.Category{},
		&models.Tag{},
		&models.Blog{},
		&models.Comment{},
	)

	if err != nil {
		appLogger.Errorf("Database migration failed: %v", err)
		return err
	}

	appLogger.Info("Database migration completed successfully")

	// 种子数据初始化在 main.go 中单独调用，避免循环依赖

	return nil
}
