package services

import (
	"testing"

	"mtblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesUserWithChosenRole(t *testing.T) {
	db := newTestDB(t)
	seedTenant(t, db, "default")

	roleService := NewRoleService(db)

	reader := registerUser(t, db, "default", "Alice", RoleChoiceReader)
	author := registerUser(t, db, "default", "Bob", RoleChoiceAuthor)

	isReader, err := roleService.HasRole(reader.ID, models.RoleReader)
	require.NoError(t, err)
	assert.True(t, isReader)

	isAuthor, err := roleService.HasRole(reader.ID, models.RoleAuthor)
	require.NoError(t, err)
	assert.False(t, isAuthor)

	isAuthor, err = roleService.HasRole(author.ID, models.RoleAuthor)
	require.NoError(t, err)
	assert.True(t, isAuthor)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	seedTenant(t, db, "default")

	service := NewUserService(db)

	_, err := service.Register("default", "Alice", "alice@example.com", "secret123", RoleChoiceReader)
	require.NoError(t, err)

	_, err = service.Register("default", "Alice Two", "alice@example.com", "secret123", RoleChoiceAuthor)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "邮箱已被注册")

	// 失败的注册不应留下半完成的用户行
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	seedTenant(t, db, "default")

	service := NewUserService(db)

	cases := []struct {
		name       string
		userName   string
		email      string
		password   string
		roleChoice string
	}{
		{"姓名过短", "A", "a@example.com", "secret123", RoleChoiceReader},
		{"邮箱非法", "Alice", "not-an-email", "secret123", RoleChoiceReader},
		{"密码过短", "Alice", "a@example.com", "123", RoleChoiceReader},
		{"角色非法", "Alice", "a@example.com", "secret123", "admin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Register("default", tc.userName, tc.email, tc.password, tc.roleChoice)
			assert.Error(t, err)
		})
	}
}

func TestRegisterUnknownTenant(t *testing.T) {
	db := newTestDB(t)
	seedTenant(t, db, "default")

	_, err := NewUserService(db).Register("nope", "Alice", "a@example.com", "secret123", RoleChoiceReader)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "租户不存在")
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	seedTenant(t, db, "default")

	service := NewUserService(db)
	registerUser(t, db, "default", "Alice", RoleChoiceReader)

	user, err := service.Authenticate("default-Alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	// 密码错误与账号不存在返回同一错误文案
	_, errWrongPass := service.Authenticate("default-Alice@example.com", "wrong")
	_, errNoUser := service.Authenticate("ghost@example.com", "secret123")
	require.Error(t, errWrongPass)
	require.Error(t, errNoUser)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestAuthenticateDeactivatedUser(t *testing.T) {
	db := newTestDB(t)
	seedTenant(t, db, "default")

	service := NewUserService(db)
	user := registerUser(t, db, "default", "Alice", RoleChoiceReader)

	_, err := service.Deactivate(user.ID)
	require.NoError(t, err)

	_, err = service.Authenticate("default-Alice@example.com", "secret123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "禁用")
}

func TestGrantAndRevokeRole(t *testing.T) {
	db := newTestDB(t)
	seedTenant(t, db, "default")

	roleService := NewRoleService(db)
	user := registerUser(t, db, "default", "Alice", RoleChoiceReader)

	authorRole, err := roleService.GetOrCreateByName(db, models.RoleAuthor)
	require.NoError(t, err)

	// 授予Author后立即生效
	require.NoError(t, roleService.Grant(user.ID, authorRole.ID))
	isAuthor, err := roleService.HasRole(user.ID, models.RoleAuthor)
	require.NoError(t, err)
	assert.True(t, isAuthor)

	// 重复授予报错
	err = roleService.Grant(user.ID, authorRole.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "已拥有该角色")

	// 撤销后立即失效
	require.NoError(t, roleService.Revoke(user.ID, authorRole.ID))
	isAuthor, err = roleService.HasRole(user.ID, models.RoleAuthor)
	require.NoError(t, err)
	assert.False(t, isAuthor)

	// 原有Reader角色不受影响
	names, err := roleService.RolesOf(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{models.RoleReader}, names)
}

func TestHasPermissionThroughRole(t *testing.T) {
	db := newTestDB(t)
	seedTenant(t, db, "default")

	userService := NewUserService(db)
	roleService := NewRoleService(db)
	user := registerUser(t, db, "default", "Alice", RoleChoiceAuthor)

	perm := &models.Permission{Code: "blog:create", Name: "创建博客", Module: models.ModuleBlog, Action: models.ActionCreate}
	require.NoError(t, db.Create(perm).Error)

	role, err := roleService.GetByName(models.RoleAuthor)
	require.NoError(t, err)
	require.NoError(t, roleService.AssignPermissions(role.ID, []uint{perm.ID}))

	has, err := userService.HasPermission(user.ID, "blog:create")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = userService.HasPermission(user.ID, "comment:moderate")
	require.NoError(t, err)
	assert.False(t, has)
}
