package services

import (
	"errors"

	"gorm.io/gorm"

	"houseadmin-http-service/internal/domain/models"
	"houseadmin-http-service/internal/infrastructure/config"
)

// InterfaceInfoLogService 定义报名记录服务接口
type InterfaceInfoLogService interface {
	GetAllInfoLogs(page, pageSize int) ([]models.InfoLog, int64, error)
	GetInfoLogByID(id uint) (*models.InfoLog, error)
	CreateInfoLog(log *models.InfoLog) error
	UpdateInfoLog(id uint, updates map[string]interface{}) (*models.InfoLog, *ProvisionResult, error)
	DeleteInfoLog(id uint) error
}

// InfoLogService 提供报名记录相关的服务
type InfoLogService struct {
	DB        *gorm.DB
	Config    *config.Config
	Provision InterfaceProvisionService
}

// NewInfoLogService 创建一个新的报名记录服务
func NewInfoLogService(db *gorm.DB, cfg *config.Config, provision InterfaceProvisionService) InterfaceInfoLogService {
	return &InfoLogService{
		DB:        db,
		Config:    cfg,
		Provision: provision,
	}
}

// 1. GetAllInfoLogs 获取所有报名记录，最新的排前面，支持分页
func (s *InfoLogService) GetAllInfoLogs(page, pageSize int) ([]models.InfoLog, int64, error) {
	var logs []models.InfoLog
	var total int64

	if err := s.DB.Model(&models.InfoLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// 2. GetInfoLogByID 根据ID获取报名记录
func (s *InfoLogService) GetInfoLogByID(id uint) (*models.InfoLog, error) {
	var log models.InfoLog
	if err := s.DB.First(&log, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("报名记录不存在")
		}
		return nil, err
	}
	return &log, nil
}

// 3. CreateInfoLog 创建新报名记录。
// 创建本身不触发开通，只有带house_group的更新才会。
func (s *InfoLogService) CreateInfoLog(log *models.InfoLog) error {
	if log.SyncStatus == "" {
		log.SyncStatus = models.SyncStatusPending
	}
	return s.DB.Create(log).Error
}

// 4. UpdateInfoLog 更新报名记录。
// 如果本次更新带有非空的house_group，持久化后重新读取记录并触发一次开通。
// 开通结果随返回值带出，但无论开通成败，记录更新本身都算成功，
// 不会因开通失败而回滚。
func (s *InfoLogService) UpdateInfoLog(id uint, updates map[string]interface{}) (*models.InfoLog, *ProvisionResult, error) {
	log, err := s.GetInfoLogByID(id)
	if err != nil {
		return nil, nil, err
	}

	if err := s.DB.Model(log).Updates(updates).Error; err != nil {
		return nil, nil, err
	}

	// 重新获取更新后的记录
	updated, err := s.GetInfoLogByID(id)
	if err != nil {
		return nil, nil, err
	}

	// 每次带非空house_group的更新都触发开通，重复触发靠去重检查兜底
	var result *ProvisionResult
	if houseGroup, ok := updates["house_group"].(string); ok && houseGroup != "" {
		result = s.Provision.ProvisionFromInfoLog(updated)
	}

	return updated, result, nil
}

// 5. DeleteInfoLog 删除报名记录
func (s *InfoLogService) DeleteInfoLog(id uint) error {
	log, err := s.GetInfoLogByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(log).Error
}
