package handlers

import (
	"fmt"
	"strings"
	"time"

	"mtblog/internal/database"
	"mtblog/internal/middleware"
	"mtblog/internal/services"
	"mtblog/pkg/jwt"
	"mtblog/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	userService *services.UserService
	roleService *services.RoleService
	jwtManager  *jwt.JWTManager
}

func NewAuthHandler(userService *services.UserService, roleService *services.RoleService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		roleService: roleService,
		jwtManager:  jwt.GetJWTManager(),
	}
}

type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required,oneof=reader author"`
	TenantCode string `json:"tenant_code"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expires_at"`
	User      UserInfo `json:"user"`
}

type UserInfo struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	TenantID uint     `json:"tenant_id"`
	Roles    []string `json:"roles"`
}

// bindError 把验证器错误整理成字段级提示
func bindError(err error) string {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
		return "参数校验失败: " + strings.Join(fields, "; ")
	}
	return "请求参数错误: " + err.Error()
}

// Register 用户注册
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}

	user, err := h.userService.Register(req.TenantCode, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		errMsg := err.Error()

		// 参数和业务校验错误 -> 400
		if strings.Contains(errMsg, "长度") ||
			strings.Contains(errMsg, "格式") ||
			strings.Contains(errMsg, "角色只能") ||
			errMsg == "邮箱已被注册" ||
			errMsg == "租户不存在" ||
			errMsg == "租户已停用" {
			response.BadRequest(c, errMsg)
			return
		}

		response.ServerError(c, "注册失败")
		return
	}

	roles, err := h.roleService.RolesOf(user.ID)
	if err != nil {
		response.ServerError(c, "查询角色失败")
		return
	}

	response.SuccessWithMessage(c, "注册成功", UserInfo{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		TenantID: user.TenantID,
		Roles:    roles,
	})
}

// Login 用户登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		response.Unauthorized(c, err.Error())
		return
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.TenantID, user.Email, user.Name)
	if err != nil {
		response.ServerError(c, "生成Token失败")
		return
	}

	roles, err := h.roleService.RolesOf(user.ID)
	if err != nil {
		response.ServerError(c, "查询角色失败")
		return
	}

	expiresAt := time.Now().Add(h.jwtManager.GetTokenDuration()).Unix()

	response.Success(c, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: UserInfo{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			TenantID: user.TenantID,
			Roles:    roles,
		},
	})
}

// Logout 用户登出
// 按jti写入吊销表，有效期与令牌剩余寿命一致
func (h *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		// 没有有效token也算登出成功
		response.SuccessWithMessage(c, "登出成功", nil)
		return
	}

	tokenString := authHeader[7:]
	claims, err := h.jwtManager.VerifyToken(tokenString)
	if err != nil {
		response.SuccessWithMessage(c, "登出成功", nil)
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := database.GetTokenStore().Revoke(c.Request.Context(), claims.ID, ttl); err != nil {
		response.ServerError(c, "登出失败")
		return
	}

	response.SuccessWithMessage(c, "登出成功", gin.H{
		"user_id": claims.UserID,
		"email":   claims.Email,
	})
}

// Me 获取当前用户完整信息
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Unauthorized(c, "请先登录")
		return
	}

	roles, err := h.roleService.RolesOf(user.ID)
	if err != nil {
		response.ServerError(c, "查询角色失败")
		return
	}

	response.Success(c, gin.H{
		"user":  user,
		"roles": roles,
	})
}
