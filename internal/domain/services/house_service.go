package services

import (
	"errors"

	"gorm.io/gorm"

	"houseadmin-http-service/internal/domain/models"
	"houseadmin-http-service/internal/infrastructure/config"
)

// HouseWithMemberCount 房屋组及其当前占用席位数
type HouseWithMemberCount struct {
	models.House
	MemberCount int64 `json:"member_count"`
}

// InterfaceHouseService 定义房屋组服务接口
type InterfaceHouseService interface {
	GetAllHouses(page, pageSize int) ([]models.House, int64, error)
	GetHousesWithMemberCount(page, pageSize int) ([]HouseWithMemberCount, int64, error)
	GetHouseByID(id uint) (*models.House, error)
	GetHouseByNumber(houseNumber string) (*models.House, error)
	GetAvailableHouses() ([]HouseWithMemberCount, error)
	GetHouseMembers(houseID uint) ([]models.HouseMember, error)
	CreateHouse(house *models.House) error
	UpdateHouse(id uint, updates map[string]interface{}) (*models.House, error)
	DeleteHouse(id uint) error
}

// HouseService 提供房屋组相关的服务
type HouseService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewHouseService 创建一个新的房屋组服务
func NewHouseService(db *gorm.DB, cfg *config.Config) InterfaceHouseService {
	return &HouseService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllHouses 获取所有房屋组列表，支持分页
func (s *HouseService) GetAllHouses(page, pageSize int) ([]models.House, int64, error) {
	var houses []models.House
	var total int64

	if err := s.DB.Model(&models.House{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&houses).Error; err != nil {
		return nil, 0, err
	}

	return houses, total, nil
}

// 2. GetHousesWithMemberCount 获取房屋组列表并带上各自的席位占用数
func (s *HouseService) GetHousesWithMemberCount(page, pageSize int) ([]HouseWithMemberCount, int64, error) {
	houses, total, err := s.GetAllHouses(page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]HouseWithMemberCount, 0, len(houses))
	for _, house := range houses {
		count, err := countMembersByHouse(s.DB, house.ID)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, HouseWithMemberCount{House: house, MemberCount: count})
	}

	return result, total, nil
}

// 3. GetHouseByID 根据ID获取房屋组
func (s *HouseService) GetHouseByID(id uint) (*models.House, error) {
	var house models.House
	if err := s.DB.First(&house, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("房屋组不存在")
		}
		return nil, err
	}
	return &house, nil
}

// 4. GetHouseByNumber 根据房屋组编号精确查找房屋组。
// 开通流程按编号（而不是ID）解析InfoLog里的house_group。
func (s *HouseService) GetHouseByNumber(houseNumber string) (*models.House, error) {
	var house models.House
	if err := s.DB.Where("house_number = ?", houseNumber).First(&house).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("房屋组不存在")
		}
		return nil, err
	}
	return &house, nil
}

// 5. GetAvailableHouses 获取还有空余席位的房屋组列表
func (s *HouseService) GetAvailableHouses() ([]HouseWithMemberCount, error) {
	var houses []models.House
	if err := s.DB.Find(&houses).Error; err != nil {
		return nil, err
	}

	available := make([]HouseWithMemberCount, 0)
	for _, house := range houses {
		count, err := countMembersByHouse(s.DB, house.ID)
		if err != nil {
			return nil, err
		}
		if count < HouseMemberCapacity {
			available = append(available, HouseWithMemberCount{House: house, MemberCount: count})
		}
	}

	return available, nil
}

// 6. GetHouseMembers 获取房屋组下的所有成员
func (s *HouseService) GetHouseMembers(houseID uint) ([]models.HouseMember, error) {
	if _, err := s.GetHouseByID(houseID); err != nil {
		return nil, err
	}

	var members []models.HouseMember
	if err := s.DB.Where("house_id = ?", houseID).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// 7. CreateHouse 创建新房屋组
func (s *HouseService) CreateHouse(house *models.House) error {
	// 验证房屋组编号唯一性
	var count int64
	if err := s.DB.Model(&models.House{}).Where("house_number = ?", house.HouseNumber).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("该房屋组编号已存在")
	}

	// 设置默认状态
	if house.Status == "" {
		house.Status = "active"
	}

	return s.DB.Create(house).Error
}

// 8. UpdateHouse 更新房屋组信息
func (s *HouseService) UpdateHouse(id uint, updates map[string]interface{}) (*models.House, error) {
	house, err := s.GetHouseByID(id)
	if err != nil {
		return nil, err
	}

	// 如果更新编号，需要检查唯一性
	if houseNumber, ok := updates["house_number"].(string); ok && houseNumber != house.HouseNumber {
		var count int64
		if err := s.DB.Model(&models.House{}).Where("house_number = ? AND id != ?", houseNumber, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("该房屋组编号已被其他房屋组使用")
		}
	}

	if err := s.DB.Model(house).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新获取更新后的房屋组信息
	return s.GetHouseByID(id)
}

// 9. DeleteHouse 删除房屋组。
// 只做显式删除，不级联删除成员记录。
func (s *HouseService) DeleteHouse(id uint) error {
	house, err := s.GetHouseByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(house).Error
}
