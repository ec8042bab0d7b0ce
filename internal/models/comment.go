package models

import "time"

// Comment 评论模型
// 姓名和邮箱来自登录用户档案而非客户端输入，创建后评论者不可再修改
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	TenantID  uint      `gorm:"not null;index" json:"tenant_id"`
	BlogID    uint      `gorm:"not null;index" json:"blog_id"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	Email     string    `gorm:"not null;size:150;index" json:"email"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	Status    string    `gorm:"default:'pending';size:20;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`

	// 关联
	Blog *Blog `gorm:"foreignKey:BlogID" json:"blog,omitempty"`
}

// TableName 表名
func (Comment) TableName() string {
	return "comments"
}

// 评论状态常量
const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusRejected = "rejected"
)
