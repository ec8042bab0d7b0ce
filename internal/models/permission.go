package models

// Permission 权限模型
type Permission struct {
	BaseModel
	Code        string `gorm:"uniqueIndex;size:100;not null" json:"code"` // 权限代码，如 "blog:create"
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Module      string `gorm:"size:50;not null" json:"module"` // 所属模块，如 "blog", "category"
	Action      string `gorm:"size:50;not null" json:"action"` // 操作类型，如 "create", "delete"
}

// 权限模块常量
const (
	ModuleBlog     = "blog"     // 博客管理
	ModuleCategory = "category" // 分类管理
	ModuleComment  = "comment"  // 评论与审核
	ModuleUser     = "user"     // 用户管理
	ModuleRole     = "role"     // 角色管理
	ModuleTenant   = "tenant"   // 租户管理
)

// 权限操作常量
const (
	ActionCreate   = "create"   // 创建
	ActionRead     = "read"     // 读取
	ActionUpdate   = "update"   // 更新
	ActionDelete   = "delete"   // 删除
	ActionList     = "list"     // 列表
	ActionModerate = "moderate" // 审核
	ActionAssign   = "assign"   // 分配
)
