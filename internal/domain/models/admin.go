package models

import (
	"gorm.io/gorm"

	"houseadmin-http-service/utils"
)

// Admin represents dashboard operators
type Admin struct {
	BaseModel
	Username string `gorm:"type:varchar(50);unique;not null" json:"username"`
	Password string `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	Email    string `gorm:"type:varchar(100);unique" json:"email"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	Role     string `gorm:"type:varchar(50);default:'admin'" json:"role"`    // Role: system_admin, admin
	Status   string `gorm:"type:varchar(20);default:'active'" json:"status"` // Status: active, inactive, locked
}

// BeforeSave 是一个GORM钩子，在保存记录前运行
func (a *Admin) BeforeSave(tx *gorm.DB) error {
	// 如果提供了密码且不是已哈希的，对其进行哈希处理
	if a.Password != "" && len(a.Password) < 60 {
		hashedPassword, err := utils.HashPassword(a.Password)
		if err != nil {
			return err
		}
		a.Password = hashedPassword
	}
	return nil
}
