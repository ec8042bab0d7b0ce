package models

// Tenant 租户模型 - 内容隔离边界
type Tenant struct {
	BaseModel
	Name   string `json:"name" gorm:"not null;size:100"`
	Code   string `json:"code" gorm:"unique;not null;size:50;index"`
	Status string `json:"status" gorm:"default:'active';size:20"`
}

// TableName 表名
func (t *Tenant) TableName() string {
	return "tenants"
}

// 租户状态常量
const (
	TenantStatusActive   = "active"
	TenantStatusInactive = "inactive"
)

// 默认租户代码，注册未指定租户时落到这里
const TenantDefaultCode = "default"
