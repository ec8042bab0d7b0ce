package router

import (
	"time"

	"mtblog/internal/database"
	"mtblog/internal/handlers"
	"mtblog/internal/middleware"
	"mtblog/internal/models"
	"mtblog/internal/services"
	"mtblog/pkg/response"

	"github.com/gin-gonic/gin"
)

// SetupRouter 设置路由
func SetupRouter() *gin.Engine {
	router := gin.New()

	// 中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SetupCORS())

	registerRoutes(router)
	return router
}

// 注册所有路由
func registerRoutes(router *gin.Engine) {
	db := database.GetDB()

	auth := middleware.NewAuthMiddleware()

	userService := services.NewUserService(db)
	roleService := services.NewRoleService(db)
	tenantService := services.NewTenantService(db)
	blogService := services.NewBlogService(db)
	categoryService := services.NewCategoryService(db)
	commentService := services.NewCommentService(db)
	tagService := services.NewTagService(db)

	// API路由组
	api := router.Group("/api/v1")
	{
		// 健康检查接口
		api.GET("/health", healthCheck)
		api.GET("/ping", ping)

		// 认证路由（无需登录）
		authHandler := handlers.NewAuthHandler(userService, roleService)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register) // 用户注册
			authGroup.POST("/login", authHandler.Login)       // 用户登录
			authGroup.POST("/logout", authHandler.Logout)     // 用户登出（吊销token）
			authGroup.GET("/me", auth.RequireLogin(), authHandler.Me)
		}

		// 公开读取路由（无需登录，仅published内容）
		publicHandler := handlers.NewPublicHandler(blogService, commentService, categoryService, tenantService)
		public := api.Group("/public")
		{
			public.GET("/blogs", publicHandler.ListBlogs)
			public.GET("/blogs/:slug", publicHandler.BlogDetail)
			public.GET("/categories", publicHandler.Categories)
			public.GET("/categories/:slug/blogs", publicHandler.CategoryBlogs)
		}

		// 工作台
		dashboardHandler := handlers.NewDashboardHandler(roleService, blogService, commentService, categoryService)
		api.GET("/dashboard", auth.RequireLogin(), dashboardHandler.Summary)

		// 博客写路径（仅Author角色）
		blogHandler := handlers.NewBlogHandler(blogService)
		blogs := api.Group("/blogs")
		{
			blogs.POST("", auth.RequireLogin(), auth.RequireRole(models.RoleAuthor), blogHandler.Create)
			blogs.GET("/mine", auth.RequireLogin(), auth.RequireRole(models.RoleAuthor), blogHandler.Mine)
			blogs.GET("/:id", auth.RequireLogin(), auth.RequireRole(models.RoleAuthor), blogHandler.GetByID)
			blogs.PUT("/:id", auth.RequireLogin(), auth.RequireRole(models.RoleAuthor), blogHandler.Update)
			blogs.DELETE("/:id", auth.RequireLogin(), auth.RequireRole(models.RoleAuthor), blogHandler.Delete)

			// 评论提交：任何登录用户
			commentHandler := handlers.NewCommentHandler(commentService)
			blogs.POST("/:id/comments", auth.RequireLogin(), commentHandler.Submit)
		}

		// 分类（创建仅Author，列表任何登录用户）
		categoryHandler := handlers.NewCategoryHandler(categoryService)
		categories := api.Group("/categories")
		{
			categories.POST("", auth.RequireLogin(), auth.RequireRole(models.RoleAuthor), categoryHandler.Create)
			categories.GET("", auth.RequireLogin(), categoryHandler.GetAll)
		}

		// 标签（只读）
		tagHandler := handlers.NewTagHandler(tagService)
		api.GET("/tags", auth.RequireLogin(), tagHandler.GetAll)

		// ========== 管理端路由（权限门控） ==========
		admin := api.Group("/admin")
		admin.Use(auth.RequireLogin())
		{
			// 用户管理
			userHandler := handlers.NewUserHandler(userService)
			admin.GET("/users", auth.RequirePermission("user:list"), userHandler.GetAll)
			admin.GET("/users/:id", auth.RequirePermission("user:read"), userHandler.GetByID)
			admin.PUT("/users/:id", auth.RequirePermission("user:update"), userHandler.Update)
			admin.DELETE("/users/:id", auth.RequirePermission("user:delete"), userHandler.Delete)
			admin.POST("/users/:id/activate", auth.RequirePermission("user:update"), userHandler.Activate)
			admin.POST("/users/:id/deactivate", auth.RequirePermission("user:update"), userHandler.Deactivate)

			// 角色分配与权限管理
			roleHandler := handlers.NewRoleHandler(roleService)
			admin.GET("/roles", auth.RequirePermission("role:list"), roleHandler.GetAll)
			admin.GET("/users/:id/roles", auth.RequirePermission("role:list"), roleHandler.GetUserRoles)
			admin.POST("/users/:id/roles", auth.RequirePermission("role:assign"), roleHandler.Grant)
			admin.DELETE("/users/:id/roles/:role_id", auth.RequirePermission("role:assign"), roleHandler.Revoke)
			admin.GET("/roles/:id/permissions", auth.RequirePermission("role:list"), roleHandler.GetRolePermissions)
			admin.PUT("/roles/:id/permissions", auth.RequirePermission("role:assign"), roleHandler.AssignPermissions)

			// 租户管理
			tenantHandler := handlers.NewTenantHandler(tenantService)
			admin.POST("/tenants", auth.RequirePermission("tenant:create"), tenantHandler.Create)
			admin.GET("/tenants", auth.RequirePermission("tenant:list"), tenantHandler.GetAll)
			admin.POST("/tenants/:id/activate", auth.RequirePermission("tenant:update"), tenantHandler.Activate)
			admin.POST("/tenants/:id/deactivate", auth.RequirePermission("tenant:update"), tenantHandler.Deactivate)

			// 评论审核
			commentHandler := handlers.NewCommentHandler(commentService)
			admin.GET("/comments", auth.RequirePermission("comment:list"), commentHandler.GetByStatus)
			admin.POST("/comments/:id/approve", auth.RequirePermission("comment:moderate"), commentHandler.Approve)
			admin.POST("/comments/:id/reject", auth.RequirePermission("comment:moderate"), commentHandler.Reject)

			// 分类删除（作者面不暴露）
			admin.DELETE("/categories/:id", auth.RequirePermission("category:delete"), categoryHandler.Delete)
		}
	}
}

// healthCheck 健康检查
func healthCheck(c *gin.Context) {
	response.Success(c, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}

// ping 连通性检查
func ping(c *gin.Context) {
	response.Success(c, gin.H{"message": "pong"})
}
