package models

import "time"

// 同步状态
const (
	SyncStatusOK      = "ok"
	SyncStatusError   = "error"
	SyncStatusPending = "pending"
)

// InfoLog 表示一条原始报名/联系记录，是成员开通流程的触发源。
// 记录由外部接入渠道写入，运营人员补填house_group后触发开通。
type InfoLog struct {
	BaseModel
	LineID           string     `gorm:"type:varchar(100)" json:"line_id"`
	PhoneNumber      string     `gorm:"type:varchar(20)" json:"phone_number"`
	RegistrationDate *time.Time `json:"registration_date"`
	ExpirationDate   *time.Time `json:"expiration_date"`
	Package          string     `gorm:"type:varchar(50)" json:"package"`
	PackagePrice     int        `json:"package_price"`
	Email            string     `gorm:"type:varchar(100)" json:"email"`
	HouseGroup       string     `gorm:"type:varchar(50);index" json:"house_group"` // 对应House.HouseNumber的软引用，非外键
	CustomerName     string     `gorm:"type:varchar(100)" json:"customer_name"`
	Channel          string     `gorm:"type:varchar(20)" json:"channel"`                        // 渠道：line, facebook, walk-in, other
	CancelledOrMoved string     `gorm:"type:varchar(20)" json:"cancelled_or_moved"`             // cancelled, moved, 或空
	SyncStatus       string     `gorm:"type:varchar(20);default:'pending'" json:"sync_status"`  // 同步状态：ok, error, pending（仅供展示）
	SyncNote         string     `gorm:"type:varchar(255)" json:"sync_note"`
}
