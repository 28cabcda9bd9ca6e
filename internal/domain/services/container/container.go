package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"houseadmin-http-service/internal/domain/services"
	"houseadmin-http-service/internal/infrastructure/config"
)

// ServiceContainer 管理所有服务的依赖注入。
// 数据库连接和Redis客户端在启动时显式构造后传入，服务不自行建连。
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// 业务服务
	adminService     services.InterfaceAdminService
	houseService     services.InterfaceHouseService
	memberService    services.InterfaceMemberService
	provisionService services.InterfaceProvisionService
	infoLogService   services.InterfaceInfoLogService
	dashboardService services.InterfaceDashboardService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config, c.db)
	c.redisService = services.NewRedisService(c.config)

	// 初始化业务服务
	c.adminService = services.NewAdminService(c.db, c.config)
	c.houseService = services.NewHouseService(c.db, c.config)
	c.memberService = services.NewMemberService(c.db, c.config)

	// 开通服务与触发它的报名记录服务
	c.provisionService = services.NewProvisionService(c.db, c.config)
	c.infoLogService = services.NewInfoLogService(c.db, c.config, c.provisionService)

	c.dashboardService = services.NewDashboardService(c.db, c.config, c.redisService)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "admin":
		return c.adminService
	case "house":
		return c.houseService
	case "member":
		return c.memberService
	case "provision":
		return c.provisionService
	case "info_log":
		return c.infoLogService
	case "dashboard":
		return c.dashboardService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetRedisClient 获取Redis客户端，未配置时返回nil
func (c *ServiceContainer) GetRedisClient() *redis.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redis
}
