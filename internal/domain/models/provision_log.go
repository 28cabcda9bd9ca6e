package models

// ProvisionLog 记录每一次成员开通尝试的结果，供运营人员排查。
// 开通失败不会影响触发它的InfoLog更新，结果只能在这里查到。
type ProvisionLog struct {
	BaseModel
	TraceID    string `gorm:"type:varchar(36);index" json:"trace_id"` // 单次开通调用的追踪ID
	InfoLogID  uint   `gorm:"index" json:"info_log_id"`               // 触发开通的InfoLog
	HouseGroup string `gorm:"type:varchar(50)" json:"house_group"`
	Outcome    string `gorm:"type:varchar(30);not null" json:"outcome"` // created, skipped_*, failed
	Reason     string `gorm:"type:varchar(255)" json:"reason"`
	MemberID   uint   `json:"member_id"` // Outcome为created时指向新建成员
}
