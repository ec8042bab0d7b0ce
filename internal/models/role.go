package models

import "time"

// Role 角色模型
// 角色是全局的（Reader/Author），能力由role_permissions关联决定
type Role struct {
	BaseModel
	Name        string `gorm:"unique;size:100;not null" json:"name"` // 角色名称，如 "Author"
	Description string `gorm:"size:255" json:"description"`

	// 关联关系
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions,omitempty"`
}

// 系统预定义角色常量
const (
	RoleReader = "Reader" // 读者：浏览与评论
	RoleAuthor = "Author" // 作者：写作与分类管理
	RoleAdmin  = "Admin"  // 管理员：用户/租户/审核管理
)

// RolePermission 角色权限关联表
type RolePermission struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RoleID       uint      `gorm:"not null;index" json:"role_id"`
	PermissionID uint      `gorm:"not null;index" json:"permission_id"`
	CreatedAt    time.Time `json:"created_at"`
}
