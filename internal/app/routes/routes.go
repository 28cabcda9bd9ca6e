package routes

import (
	"time"

	_ "houseadmin-http-service/docs"
	"houseadmin-http-service/internal/app/controllers"
	"houseadmin-http-service/internal/app/middleware"
	"houseadmin-http-service/internal/domain/services/container"
	"houseadmin-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg, db)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加IP限流中间件 - 每秒允许10个请求，最多突发20个请求
	api.Use(middleware.IPRateLimiter(10, 20))

	// 健康检查路由
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping")) // 兼容Docker健康检查的路由

	// 健康状态路由组
	healthGroup := api.Group("/health")
	healthGroup.GET("/status", controllers.HandleHealthFunc(container, "status"))

	// 认证路由
	api.POST("/auth/login", controllers.HandleJWTFunc(container, "login"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin())

	// 添加通用限流中间件 - 每秒30个请求，最多突发50个请求
	auth.Use(middleware.IPRateLimiter(30, 50))

	// 管理员路由
	adminGroup := auth.Group("/admins")
	adminGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleAdminFunc(container, "getAdmins"))
	adminGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleAdminFunc(container, "getAdmin"))
	adminGroup.POST("", controllers.HandleAdminFunc(container, "createAdmin"))
	adminGroup.PUT("/:id", controllers.HandleAdminFunc(container, "updateAdmin"))
	adminGroup.DELETE("/:id", controllers.HandleAdminFunc(container, "deleteAdmin"))

	// 房屋组路由
	houseGroup := auth.Group("/houses")
	{
		houseGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleHouseFunc(container, "getHouses"))
		houseGroup.GET("/available", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleHouseFunc(container, "getAvailableHouses"))
		houseGroup.GET("/number/:number", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleHouseFunc(container, "getHouseByNumber"))
		houseGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleHouseFunc(container, "getHouse"))
		houseGroup.GET("/:id/members", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleHouseFunc(container, "getHouseMembers"))
		houseGroup.POST("", controllers.HandleHouseFunc(container, "createHouse"))
		houseGroup.PUT("/:id", controllers.HandleHouseFunc(container, "updateHouse"))
		houseGroup.DELETE("/:id", controllers.HandleHouseFunc(container, "deleteHouse"))
	}

	// 成员路由
	memberGroup := auth.Group("/members")
	memberGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleMemberFunc(container, "getMembers"))
	memberGroup.GET("/active", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleMemberFunc(container, "getActiveMembers"))
	memberGroup.GET("/expired", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleMemberFunc(container, "getExpiredMembers"))
	memberGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleMemberFunc(container, "getMember"))
	memberGroup.POST("", controllers.HandleMemberFunc(container, "createMember"))
	memberGroup.PUT("/:id", controllers.HandleMemberFunc(container, "updateMember"))
	memberGroup.DELETE("/:id", controllers.HandleMemberFunc(container, "deleteMember"))

	// 报名记录路由
	infoLogGroup := auth.Group("/info-logs")
	infoLogGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 10 * time.Second}), controllers.HandleInfoLogFunc(container, "getInfoLogs"))
	infoLogGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 10 * time.Second}), controllers.HandleInfoLogFunc(container, "getInfoLog"))
	infoLogGroup.POST("", controllers.HandleInfoLogFunc(container, "createInfoLog"))
	infoLogGroup.PUT("/:id", controllers.HandleInfoLogFunc(container, "updateInfoLog"))
	infoLogGroup.DELETE("/:id", controllers.HandleInfoLogFunc(container, "deleteInfoLog"))

	// 仪表盘路由
	dashboardGroup := auth.Group("/dashboard")
	dashboardGroup.GET("/stats", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleDashboardFunc(container, "getStats"))
	dashboardGroup.GET("/provision-logs", controllers.HandleDashboardFunc(container, "getProvisionLogs"))
}
