package services

import (
	"testing"
	"time"

	"houseadmin-http-service/internal/domain/models"
)

func TestEvaluateMemberStatus_NilExpirationIsActive(t *testing.T) {
	status := EvaluateMemberStatus(nil, time.Now())
	if status != models.MemberStatusActive {
		t.Errorf("Expected active for nil expiration, got %s", status)
	}
}

func TestEvaluateMemberStatus_FutureExpirationIsActive(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	status := EvaluateMemberStatus(&future, now)
	if status != models.MemberStatusActive {
		t.Errorf("Expected active for future expiration, got %s", status)
	}
}

func TestEvaluateMemberStatus_PastExpirationIsExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Second)
	status := EvaluateMemberStatus(&past, now)
	if status != models.MemberStatusExpired {
		t.Errorf("Expected expired for past expiration, got %s", status)
	}
}

func TestEvaluateMemberStatus_ExactBoundaryIsActive(t *testing.T) {
	// 过期时间恰好等于参考时间时仍视为有效
	now := time.Now()
	boundary := now
	status := EvaluateMemberStatus(&boundary, now)
	if status != models.MemberStatusActive {
		t.Errorf("Expected active at exact boundary, got %s", status)
	}
}

func TestIsMemberActive_IgnoresStoredStatus(t *testing.T) {
	// 存储的status字段过期，但按过期时间重算仍有效
	now := time.Now()
	future := now.Add(24 * time.Hour)
	member := &models.HouseMember{
		Status:         models.MemberStatusExpired,
		ExpirationDate: &future,
	}
	if !IsMemberActive(member, now) {
		t.Error("Expected member active regardless of stored status")
	}
}
