package services

import (
	"time"

	"gorm.io/gorm"

	"houseadmin-http-service/internal/domain/models"
	"houseadmin-http-service/internal/infrastructure/config"
)

// DashboardStats 仪表盘统计数据
type DashboardStats struct {
	TotalHouses     int64     `json:"total_houses"`
	ExpiredHouses   int64     `json:"expired_houses"`
	AvailableHouses int64     `json:"available_houses"` // 还有空余席位的房屋组数
	TotalMembers    int64     `json:"total_members"`
	ActiveMembers   int64     `json:"active_members"`  // 按过期时间实时重算
	ExpiredMembers  int64     `json:"expired_members"` // 按过期时间实时重算
	TotalInfoLogs   int64     `json:"total_info_logs"`
	PendingInfoLogs int64     `json:"pending_info_logs"`
	ErrorInfoLogs   int64     `json:"error_info_logs"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// InterfaceDashboardService 定义仪表盘服务接口
type InterfaceDashboardService interface {
	GetStats() (*DashboardStats, error)
}

// DashboardService 汇总仪表盘统计，结果在Redis中短期缓存
type DashboardService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService
}

// NewDashboardService 创建一个新的仪表盘服务
func NewDashboardService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService) InterfaceDashboardService {
	return &DashboardService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// GetStats 获取仪表盘统计数据。
// 优先读Redis缓存，未命中时从数据库汇总并回填缓存（1分钟）。
func (s *DashboardService) GetStats() (*DashboardStats, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.GetDashboardStats(); err == nil && cached != nil {
			return cached, nil
		}
	}

	stats := &DashboardStats{GeneratedAt: time.Now()}

	if err := s.DB.Model(&models.House{}).Count(&stats.TotalHouses).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.House{}).Where("status = ?", "expired").Count(&stats.ExpiredHouses).Error; err != nil {
		return nil, err
	}

	// 成员的有效/过期按过期时间实时重算
	var members []models.HouseMember
	if err := s.DB.Find(&members).Error; err != nil {
		return nil, err
	}
	now := time.Now()
	stats.TotalMembers = int64(len(members))
	for _, m := range members {
		if IsMemberActive(&m, now) {
			stats.ActiveMembers++
		} else {
			stats.ExpiredMembers++
		}
	}

	// 统计还有空位的房屋组
	var houses []models.House
	if err := s.DB.Find(&houses).Error; err != nil {
		return nil, err
	}
	occupancy := make(map[uint]int64, len(houses))
	for _, m := range members {
		occupancy[m.HouseID]++
	}
	for _, h := range houses {
		if occupancy[h.ID] < HouseMemberCapacity {
			stats.AvailableHouses++
		}
	}

	if err := s.DB.Model(&models.InfoLog{}).Count(&stats.TotalInfoLogs).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.InfoLog{}).Where("sync_status = ?", models.SyncStatusPending).Count(&stats.PendingInfoLogs).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.InfoLog{}).Where("sync_status = ?", models.SyncStatusError).Count(&stats.ErrorInfoLogs).Error; err != nil {
		return nil, err
	}

	if s.Redis != nil {
		// 缓存失败不影响返回
		_ = s.Redis.CacheDashboardStats(stats, 1*time.Minute)
	}

	return stats, nil
}
