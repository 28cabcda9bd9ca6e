package services

import (
	"time"

	"houseadmin-http-service/internal/domain/models"
)

// EvaluateMemberStatus 根据过期时间和参考时间计算成员状态。
// expiration为空表示永不过期；过期时间等于参考时间时仍视为active。
// 纯函数，无副作用。
func EvaluateMemberStatus(expiration *time.Time, now time.Time) string {
	if expiration == nil {
		return models.MemberStatusActive
	}
	if expiration.Before(now) {
		return models.MemberStatusExpired
	}
	return models.MemberStatusActive
}

// IsMemberActive 按参考时间实时判断成员是否有效。
// 读取路径一律用它重算，不信任存储的status字段。
func IsMemberActive(member *models.HouseMember, now time.Time) bool {
	return EvaluateMemberStatus(member.ExpirationDate, now) == models.MemberStatusActive
}
