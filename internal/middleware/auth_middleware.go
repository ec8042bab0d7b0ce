package middleware

import (
	"strings"

	"mtblog/internal/database"
	"mtblog/internal/models"
	"mtblog/internal/services"
	"mtblog/pkg/jwt"
	"mtblog/pkg/logger"
	"mtblog/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 权限中间件
type AuthMiddleware struct {
	userService *services.UserService
	roleService *services.RoleService
	jwtManager  *jwt.JWTManager
}

func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{
		userService: services.NewUserService(database.GetDB()),
		roleService: services.NewRoleService(database.GetDB()),
		jwtManager:  jwt.GetJWTManager(),
	}
}

// RequireLogin 要求登录
func (m *AuthMiddleware) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 从Authorization头获取JWT token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}

		// 检查Bearer格式
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c, "认证头格式错误")
			c.Abort()
			return
		}

		tokenString := authHeader[7:] // 去掉 "Bearer "

		// 验证token
		claims, err := m.jwtManager.VerifyToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Token无效或已过期")
			c.Abort()
			return
		}

		// 检查吊销表（登出后的token在这里被拦下）
		revoked, err := database.GetTokenStore().IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			// Redis不可用时放行并告警，令牌仍受过期时间约束
			logger.GetLogger().Warnf("Token revocation check failed: %v", err)
		} else if revoked {
			response.Unauthorized(c, "Token已失效")
			c.Abort()
			return
		}

		// 获取用户信息
		user, err := m.userService.GetByID(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "用户不存在")
			c.Abort()
			return
		}

		// 检查用户状态
		if !m.userService.IsActive(user) {
			response.Unauthorized(c, "用户已被禁用")
			c.Abort()
			return
		}

		// 将用户信息保存到上下文
		c.Set("user", user)
		c.Set("user_id", claims.UserID)
		c.Set("tenant_id", claims.TenantID)
		c.Set("email", claims.Email)
		c.Set("claims", claims)

		c.Next()
	}
}

// RequireRole 要求特定角色
// 角色判断是user_roles关联的集合成员检查，每次请求实时解析
func (m *AuthMiddleware) RequireRole(roleName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			response.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}

		hasRole, err := m.roleService.HasRole(userID.(uint), roleName)
		if err != nil {
			response.ServerError(c, "角色检查失败")
			c.Abort()
			return
		}

		if !hasRole {
			response.Forbidden(c, "权限不足：需要 "+roleName+" 角色")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequirePermission 要求特定权限
func (m *AuthMiddleware) RequirePermission(permissionCode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			response.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}

		hasPermission, err := m.userService.HasPermission(userID.(uint), permissionCode)
		if err != nil {
			response.ServerError(c, "权限检查失败")
			c.Abort()
			return
		}

		if !hasPermission {
			response.Forbidden(c, "权限不足：需要 "+permissionCode+" 权限")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser 从上下文取当前用户
func CurrentUser(c *gin.Context) *models.User {
	if user, exists := c.Get("user"); exists {
		return user.(*models.User)
	}
	return nil
}

// CurrentTenantID 从上下文取当前租户ID
// 所有内容查询都以此为租户过滤条件，绝不信任客户端传入的租户
func CurrentTenantID(c *gin.Context) uint {
	if tenantID, exists := c.Get("tenant_id"); exists {
		return tenantID.(uint)
	}
	return 0
}
