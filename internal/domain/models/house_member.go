package models

import "time"

// 成员状态
const (
	MemberStatusActive  = "active"
	MemberStatusExpired = "expired"
)

// HouseMember 表示房屋组内的一个成员席位
type HouseMember struct {
	BaseModel
	HouseID          uint       `gorm:"index;not null" json:"house_id"`   // 所属房屋组ID
	LineID           string     `gorm:"type:varchar(100)" json:"line_id"` // LINE用户ID，仅用于组内去重
	MemberEmail      string     `gorm:"type:varchar(100);not null" json:"member_email"`
	CustomerName     string     `gorm:"type:varchar(100)" json:"customer_name"`
	PhoneNumber      string     `gorm:"type:varchar(20)" json:"phone_number"`
	Email            string     `gorm:"type:varchar(100)" json:"email"`
	RegistrationDate *time.Time `json:"registration_date"`
	ExpirationDate   *time.Time `json:"expiration_date"` // 为空表示永不过期
	Package          string     `gorm:"type:varchar(50)" json:"package"`
	PackagePrice     int        `json:"package_price"`
	Channel          string     `gorm:"type:varchar(20)" json:"channel"` // 渠道：line, facebook, walk-in, other
	Note             string     `gorm:"type:varchar(255)" json:"note"`
	Status           string     `gorm:"type:varchar(20);default:'active'" json:"status"` // 创建时由状态评估器写入，读取时实时重算
	IsActive         bool       `gorm:"default:true" json:"is_active"`

	// Relations
	House *House `gorm:"foreignKey:HouseID" json:"house,omitempty"` // 所属房屋组（多对一）
}
