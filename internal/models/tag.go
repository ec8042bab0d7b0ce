package models

// Tag 标签模型
// 名称精确匹配（区分大小写）做get-or-create，slug在租户内唯一
type Tag struct {
	BaseModel
	TenantID uint   `gorm:"not null;index;uniqueIndex:idx_tag_tenant_slug" json:"tenant_id"`
	Name     string `gorm:"not null;size:100;index" json:"name"`
	Slug     string `gorm:"not null;size:120;uniqueIndex:idx_tag_tenant_slug" json:"slug"`

	// 关联
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Blogs  []Blog  `gorm:"many2many:blog_tags;" json:"-"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}
