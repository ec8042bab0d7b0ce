package handlers

import (
	"mtblog/internal/middleware"
	"mtblog/internal/services"
	"mtblog/pkg/response"

	"github.com/gin-gonic/gin"
)

// TagHandler 标签查询接口
// 标签只通过博客保存路径创建，这里只读
type TagHandler struct {
	service *services.TagService
}

func NewTagHandler(service *services.TagService) *TagHandler {
	return &TagHandler{service: service}
}

// GetAll 当前租户的标签列表
func (h *TagHandler) GetAll(c *gin.Context) {
	tenantID := middleware.CurrentTenantID(c)

	tags, err := h.service.GetByTenant(tenantID)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, tags)
}
