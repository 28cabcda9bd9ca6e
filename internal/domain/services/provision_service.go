package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"houseadmin-http-service/internal/domain/models"
	"houseadmin-http-service/internal/infrastructure/config"
	Logger "houseadmin-http-service/pkg/logger"
	"houseadmin-http-service/utils"
)

// ProvisionOutcome 表示一次开通调用的结果类别
type ProvisionOutcome string

const (
	ProvisionCreated              ProvisionOutcome = "created"
	ProvisionSkippedNoHouseGroup  ProvisionOutcome = "skipped_no_house_group"
	ProvisionSkippedHouseNotFound ProvisionOutcome = "skipped_house_not_found"
	ProvisionSkippedAtCapacity    ProvisionOutcome = "skipped_at_capacity"
	ProvisionSkippedDuplicate     ProvisionOutcome = "skipped_duplicate"
	ProvisionFailed               ProvisionOutcome = "failed"
)

// ProvisionResult 一次开通调用的完整结果
type ProvisionResult struct {
	Outcome ProvisionOutcome    `json:"outcome"`
	Reason  string              `json:"reason,omitempty"`
	Member  *models.HouseMember `json:"member,omitempty"`
	TraceID string              `json:"trace_id"`
}

// InterfaceProvisionService 定义成员开通服务接口
type InterfaceProvisionService interface {
	ProvisionFromInfoLog(log *models.InfoLog) *ProvisionResult
	GetProvisionLogs(page, pageSize int) ([]models.ProvisionLog, int64, error)
}

// ProvisionService 把InfoLog转化为房屋组成员，受容量和去重约束。
// 整个检查-写入序列在单个事务内执行，避免并发开通同一房屋组时
// 两次都看到有空位而超额写入。
type ProvisionService struct {
	DB     *gorm.DB
	Config *config.Config

	// CountExpiredTowardCapacity 为真时，过期成员仍占用席位（保持原有行为）。
	// 为假时容量只统计按过期时间仍有效的成员。
	CountExpiredTowardCapacity bool
}

// NewProvisionService 创建一个新的成员开通服务
func NewProvisionService(db *gorm.DB, cfg *config.Config) InterfaceProvisionService {
	return &ProvisionService{
		DB:                         db,
		Config:                     cfg,
		CountExpiredTowardCapacity: true,
	}
}

// ProvisionFromInfoLog 尝试根据InfoLog开通一个成员席位。
// 按严格顺序短路：无house_group → 房屋组不存在 → 无空位 → 重复，
// 只有全部通过才写入一条成员记录；任何存储错误都在这里吸收，
// 以failed结果返回而不向调用方抛出。
func (s *ProvisionService) ProvisionFromInfoLog(log *models.InfoLog) *ProvisionResult {
	result := &ProvisionResult{TraceID: utils.NewTraceID()}

	if log.HouseGroup == "" {
		result.Outcome = ProvisionSkippedNoHouseGroup
		result.Reason = "InfoLog未填写房屋组编号"
		s.recordOutcome(log, result)
		return result
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// 按编号解析房屋组
		var house models.House
		if err := tx.Where("house_number = ?", log.HouseGroup).First(&house).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result.Outcome = ProvisionSkippedHouseNotFound
				result.Reason = fmt.Sprintf("房屋组 %s 不存在", log.HouseGroup)
				return nil
			}
			return err
		}

		now := time.Now()

		// 容量检查
		var count int64
		var err error
		if s.CountExpiredTowardCapacity {
			count, err = countMembersByHouse(tx, house.ID)
		} else {
			count, err = countActiveMembersByHouse(tx, house.ID, now)
		}
		if err != nil {
			return err
		}
		if count >= HouseMemberCapacity {
			result.Outcome = ProvisionSkippedAtCapacity
			result.Reason = fmt.Sprintf("房屋组 %s 已满 (%d/%d)", log.HouseGroup, count, HouseMemberCapacity)
			return nil
		}

		// 按LINE ID去重；LINE ID为空时跳过检查
		duplicate, err := memberExists(tx, house.ID, log.LineID)
		if err != nil {
			return err
		}
		if duplicate {
			result.Outcome = ProvisionSkippedDuplicate
			result.Reason = fmt.Sprintf("房屋组 %s 内已存在LINE ID为 %s 的成员", log.HouseGroup, log.LineID)
			return nil
		}

		// 从InfoLog复制描述字段，构造新成员
		member := &models.HouseMember{
			HouseID:          house.ID,
			LineID:           log.LineID,
			MemberEmail:      log.Email,
			CustomerName:     log.CustomerName,
			PhoneNumber:      log.PhoneNumber,
			Email:            log.Email,
			RegistrationDate: log.RegistrationDate,
			ExpirationDate:   log.ExpirationDate,
			Package:          log.Package,
			PackagePrice:     log.PackagePrice,
			Channel:          log.Channel,
			Status:           EvaluateMemberStatus(log.ExpirationDate, now),
		}
		member.IsActive = member.Status == models.MemberStatusActive

		if err := tx.Create(member).Error; err != nil {
			return err
		}

		result.Outcome = ProvisionCreated
		result.Member = member
		return nil
	})

	if err != nil {
		// 存储失败不向上传播，转成failed结果，由触发方继续正常返回
		result.Outcome = ProvisionFailed
		result.Reason = err.Error()
		result.Member = nil
		Logger.Error("开通成员失败: info_log_id=%d house_group=%s trace_id=%s err=%v",
			log.ID, log.HouseGroup, result.TraceID, err)
	}

	s.recordOutcome(log, result)
	return result
}

// recordOutcome 把开通结果落到provision_logs表，供运营排查。
// 记录失败只记日志，不影响开通结果本身。
func (s *ProvisionService) recordOutcome(log *models.InfoLog, result *ProvisionResult) {
	entry := &models.ProvisionLog{
		TraceID:    result.TraceID,
		InfoLogID:  log.ID,
		HouseGroup: log.HouseGroup,
		Outcome:    string(result.Outcome),
		Reason:     result.Reason,
	}
	if result.Member != nil {
		entry.MemberID = result.Member.ID
	}

	if err := s.DB.Create(entry).Error; err != nil {
		Logger.Error("写入开通记录失败: info_log_id=%d trace_id=%s err=%v", log.ID, result.TraceID, err)
	}
}

// GetProvisionLogs 获取开通记录列表，按时间倒序，支持分页
func (s *ProvisionService) GetProvisionLogs(page, pageSize int) ([]models.ProvisionLog, int64, error) {
	var logs []models.ProvisionLog
	var total int64

	if err := s.DB.Model(&models.ProvisionLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Order("id DESC").Limit(pageSize).Offset(offset).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
