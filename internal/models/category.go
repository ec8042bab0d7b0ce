package models

// Category 分类模型
// slug在租户内唯一，重名创建在存储层失败并以重复错误返回
type Category struct {
	BaseModel
	TenantID uint   `gorm:"not null;index;uniqueIndex:idx_category_tenant_slug" json:"tenant_id"`
	Name     string `gorm:"not null;size:100" json:"name"`
	Slug     string `gorm:"not null;size:120;uniqueIndex:idx_category_tenant_slug" json:"slug"`

	// 关联
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// TableName 表名
func (Category) TableName() string {
	return "categories"
}
