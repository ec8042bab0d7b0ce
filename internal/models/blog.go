package models

import "time"

// Blog 博客模型
// slug创建时由标题生成，之后保持稳定（公开URL不随编辑变化）
type Blog struct {
	BaseModel
	TenantID      uint       `gorm:"not null;index;uniqueIndex:idx_blog_tenant_slug" json:"tenant_id"`
	Title         string     `gorm:"not null;size:200" json:"title"`
	Slug          string     `gorm:"not null;size:220;uniqueIndex:idx_blog_tenant_slug" json:"slug"`
	Excerpt       string     `gorm:"not null;size:500" json:"excerpt"`
	Content       string     `gorm:"type:text" json:"content"`
	FeaturedImage *string    `gorm:"size:500" json:"featured_image"`
	Status        string     `gorm:"default:'draft';size:20;index" json:"status"`
	AuthorID      uint       `gorm:"not null;index" json:"author_id"`
	CategoryID    *uint      `gorm:"index" json:"category_id"`
	PublishedAt   *time.Time `json:"published_at"`

	// 关联
	Tenant   *Tenant   `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags     []Tag     `gorm:"many2many:blog_tags;" json:"tags,omitempty"`
}

// TableName 表名
func (Blog) TableName() string {
	return "blogs"
}

// 博客状态常量
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)
