package services

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"houseadmin-http-service/internal/domain/models"
	"houseadmin-http-service/internal/infrastructure/config"
)

// HouseMemberCapacity 每个房屋组的成员席位上限
const HouseMemberCapacity = 5

// InterfaceMemberService 定义成员服务接口
type InterfaceMemberService interface {
	GetAllMembers(page, pageSize int) ([]models.HouseMember, int64, error)
	GetMemberByID(id uint) (*models.HouseMember, error)
	GetMembersByHouseID(houseID uint) ([]models.HouseMember, error)
	GetActiveMembers() ([]models.HouseMember, error)
	GetExpiredMembers() ([]models.HouseMember, error)
	CreateMember(member *models.HouseMember) error
	UpdateMember(id uint, updates map[string]interface{}) (*models.HouseMember, error)
	DeleteMember(id uint) error
	CountMembersByHouseID(houseID uint) (int64, error)
	CapacityRemaining(houseID uint) (int, error)
	HasCapacity(houseID uint) (bool, error)
	IsDuplicate(houseID uint, lineID string) (bool, error)
}

// MemberService 提供成员相关的服务
type MemberService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMemberService 创建一个新的成员服务
func NewMemberService(db *gorm.DB, cfg *config.Config) InterfaceMemberService {
	return &MemberService{
		DB:     db,
		Config: cfg,
	}
}

// countMembersByHouse 统计房屋组下的成员行数。
// 无条件按行数统计：过期成员同样占用席位。
func countMembersByHouse(db *gorm.DB, houseID uint) (int64, error) {
	var count int64
	err := db.Model(&models.HouseMember{}).Where("house_id = ?", houseID).Count(&count).Error
	return count, err
}

// countActiveMembersByHouse 仅统计按过期时间仍有效的成员行数
func countActiveMembersByHouse(db *gorm.DB, houseID uint, now time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.HouseMember{}).
		Where("house_id = ?", houseID).
		Where("expiration_date IS NULL OR expiration_date >= ?", now).
		Count(&count).Error
	return count, err
}

// memberExists 判断房屋组内是否已有相同LINE ID的成员。
// lineID为空时无法判定，视为不重复。
func memberExists(db *gorm.DB, houseID uint, lineID string) (bool, error) {
	if lineID == "" {
		return false, nil
	}
	var count int64
	err := db.Model(&models.HouseMember{}).
		Where("house_id = ? AND line_id = ?", houseID, lineID).
		Count(&count).Error
	return count > 0, err
}

// 1. GetAllMembers 获取所有成员列表，支持分页
func (s *MemberService) GetAllMembers(page, pageSize int) ([]models.HouseMember, int64, error) {
	var members []models.HouseMember
	var total int64

	if err := s.DB.Model(&models.HouseMember{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Preload("House").Limit(pageSize).Offset(offset).Find(&members).Error; err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// 2. GetMemberByID 根据ID获取成员
func (s *MemberService) GetMemberByID(id uint) (*models.HouseMember, error) {
	var member models.HouseMember
	if err := s.DB.Preload("House").First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("成员不存在")
		}
		return nil, err
	}
	return &member, nil
}

// 3. GetMembersByHouseID 获取指定房屋组下的所有成员
func (s *MemberService) GetMembersByHouseID(houseID uint) ([]models.HouseMember, error) {
	var members []models.HouseMember
	if err := s.DB.Where("house_id = ?", houseID).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// 4. GetActiveMembers 获取当前有效的成员。
// 有效性按过期时间实时重算，不读存储的status字段。
func (s *MemberService) GetActiveMembers() ([]models.HouseMember, error) {
	var members []models.HouseMember
	if err := s.DB.Preload("House").Find(&members).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	active := make([]models.HouseMember, 0, len(members))
	for _, m := range members {
		if IsMemberActive(&m, now) {
			active = append(active, m)
		}
	}

	// 按过期时间升序，最先到期的排前面；永不过期的排最后
	sort.SliceStable(active, func(i, j int) bool {
		a, b := active[i].ExpirationDate, active[j].ExpirationDate
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})

	return active, nil
}

// 5. GetExpiredMembers 获取已过期的成员，按过期时间倒序（最近过期的排前面）
func (s *MemberService) GetExpiredMembers() ([]models.HouseMember, error) {
	var members []models.HouseMember
	if err := s.DB.Preload("House").Find(&members).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	expired := make([]models.HouseMember, 0)
	for _, m := range members {
		if !IsMemberActive(&m, now) {
			expired = append(expired, m)
		}
	}

	sort.SliceStable(expired, func(i, j int) bool {
		return expired[i].ExpirationDate.After(*expired[j].ExpirationDate)
	})

	return expired, nil
}

// 6. CreateMember 手工创建新成员。
// 只校验房屋组是否存在；与原有前台行为保持一致，手工路径不做容量检查。
func (s *MemberService) CreateMember(member *models.HouseMember) error {
	if member.HouseID == 0 {
		return errors.New("必须提供有效的房屋组ID")
	}

	var house models.House
	if err := s.DB.First(&house, member.HouseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("房屋组不存在")
		}
		return err
	}

	// 写入时由评估器确定存储状态
	member.Status = EvaluateMemberStatus(member.ExpirationDate, time.Now())
	member.IsActive = member.Status == models.MemberStatusActive

	return s.DB.Create(member).Error
}

// 7. UpdateMember 更新成员信息。
// 改挂其他房屋组时只校验目标房屋组存在，不重新做容量检查。
func (s *MemberService) UpdateMember(id uint, updates map[string]interface{}) (*models.HouseMember, error) {
	member, err := s.GetMemberByID(id)
	if err != nil {
		return nil, err
	}

	if houseID, ok := updates["house_id"].(uint); ok && houseID != member.HouseID {
		var house models.House
		if err := s.DB.First(&house, houseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("房屋组不存在")
			}
			return nil, err
		}
	}

	if err := s.DB.Model(member).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新获取更新后的成员信息
	return s.GetMemberByID(id)
}

// 8. DeleteMember 删除成员
func (s *MemberService) DeleteMember(id uint) error {
	member, err := s.GetMemberByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(member).Error
}

// 9. CountMembersByHouseID 统计房屋组当前占用的席位数
func (s *MemberService) CountMembersByHouseID(houseID uint) (int64, error) {
	return countMembersByHouse(s.DB, houseID)
}

// 10. CapacityRemaining 返回房屋组剩余席位数
func (s *MemberService) CapacityRemaining(houseID uint) (int, error) {
	count, err := countMembersByHouse(s.DB, houseID)
	if err != nil {
		return 0, err
	}
	remaining := HouseMemberCapacity - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// 11. HasCapacity 判断房屋组是否还有空余席位
func (s *MemberService) HasCapacity(houseID uint) (bool, error) {
	count, err := countMembersByHouse(s.DB, houseID)
	if err != nil {
		return false, err
	}
	return count < HouseMemberCapacity, nil
}

// 12. IsDuplicate 判断房屋组内是否已存在相同LINE ID的成员
func (s *MemberService) IsDuplicate(houseID uint, lineID string) (bool, error) {
	return memberExists(s.DB, houseID, lineID)
}
