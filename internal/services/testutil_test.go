package services

import (
	"fmt"
	"testing"

	"mtblog/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 每个测试独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.Permission{},
		&models.Role{},
		&models.RolePermission{},
		&models.UserRole{},
		&models.Category{},
		&models.Tag{},
		&models.Blog{},
		&models.Comment{},
	)
	require.NoError(t, err)

	return db
}

// seedTenant 建一个激活状态的租户
func seedTenant(t *testing.T, db *gorm.DB, code string) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		Name:   code + " tenant",
		Code:   code,
		Status: models.TenantStatusActive,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

// registerUser 走注册路径建用户
func registerUser(t *testing.T, db *gorm.DB, tenantCode, name, roleChoice string) *models.User {
	t.Helper()

	email := fmt.Sprintf("%s-%s@example.com", tenantCode, name)
	user, err := NewUserService(db).Register(tenantCode, name, email, "secret123", roleChoice)
	require.NoError(t, err)
	return user
}
