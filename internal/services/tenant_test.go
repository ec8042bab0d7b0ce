package services

import (
	"testing"

	"mtblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantCreate(t *testing.T) {
	db := newTestDB(t)

	service := NewTenantService(db)

	tenant, err := service.Create("Acme Blogs", "acme")
	require.NoError(t, err)
	assert.Equal(t, models.TenantStatusActive, tenant.Status)

	_, err = service.Create("Acme Again", "acme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "已存在")
}

func TestTenantCodeValidation(t *testing.T) {
	db := newTestDB(t)

	service := NewTenantService(db)

	for _, code := range []string{"a", "Has Space", "UPPER", "有中文"} {
		_, err := service.Create("Acme", code)
		assert.Error(t, err, "code %q should be rejected", code)
	}
}

func TestTenantDeactivateBlocksRegistration(t *testing.T) {
	db := newTestDB(t)

	service := NewTenantService(db)
	tenant, err := service.Create("Acme Blogs", "acme")
	require.NoError(t, err)

	_, err = service.Deactivate(tenant.ID)
	require.NoError(t, err)

	_, err = NewUserService(db).Register("acme", "Alice", "alice@example.com", "secret123", RoleChoiceReader)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "租户已停用")
}
