package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User 用户模型
// 是否为作者不缓存在用户上，唯一事实来源是user_roles关联
type User struct {
	BaseModel
	TenantID     uint   `json:"tenant_id" gorm:"not null;index"`
	Name         string `json:"name" gorm:"not null;size:100"`
	Email        string `json:"email" gorm:"unique;not null;size:150;index"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`
	Status       string `json:"status" gorm:"default:'active';size:20"`

	// 多对多关联
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Roles  []Role  `gorm:"many2many:user_roles;" json:"roles,omitempty"`
}

// UserRole 用户角色关联表
type UserRole struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	RoleID    uint      `gorm:"not null;index" json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 表名
func (u *User) TableName() string {
	return "users"
}

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// SetPassword 设置密码 - 数据操作方法
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword 验证密码 - 数据操作方法
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
