package models

import "time"

// House 表示一个房屋组，每个房屋组最多容纳5个成员席位
type House struct {
	BaseModel
	HouseNumber      string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"house_number"` // 房屋组编号，如"A101"，业务唯一键
	AdminEmail       string     `gorm:"type:varchar(100)" json:"admin_email"`                      // 房屋组管理员邮箱
	RegistrationDate *time.Time `json:"registration_date"`
	Status           string     `gorm:"type:varchar(20);default:'active'" json:"status"` // 状态：active, expired, moved, cancelled
	Note             string     `gorm:"type:varchar(255)" json:"note"`

	// Relations - 关联关系
	Members []HouseMember `gorm:"foreignKey:HouseID" json:"members,omitempty"` // 房屋组下的成员（一对多）
}
