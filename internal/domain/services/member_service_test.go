package services

import (
	"testing"
	"time"

	"houseadmin-http-service/internal/domain/models"
)

func TestCreateMember_RequiresExistingHouse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMemberService(db, testConfig())

	member := &models.HouseMember{HouseID: 99, MemberEmail: "a@example.com"}
	if err := svc.CreateMember(member); err == nil {
		t.Error("Expected error for missing house")
	}
}

func TestCreateMember_SkipsCapacityCheck(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMemberService(db, testConfig())

	house := createTestHouse(t, db, "20")
	fillHouse(t, db, house.ID, 5, nil)

	// 手工路径允许超额，与开通路径不同
	member := &models.HouseMember{HouseID: house.ID, MemberEmail: "over@example.com"}
	if err := svc.CreateMember(member); err != nil {
		t.Fatalf("Expected manual create to bypass capacity, got %v", err)
	}

	count, err := svc.CountMembersByHouseID(house.ID)
	if err != nil {
		t.Fatalf("Failed to count members: %v", err)
	}
	if count != 6 {
		t.Errorf("Expected 6 members, got %d", count)
	}
}

func TestCreateMember_ComputesStatusFromExpiration(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMemberService(db, testConfig())

	house := createTestHouse(t, db, "20")
	past := time.Now().Add(-24 * time.Hour)

	member := &models.HouseMember{HouseID: house.ID, MemberEmail: "a@example.com", ExpirationDate: &past}
	if err := svc.CreateMember(member); err != nil {
		t.Fatalf("Failed to create member: %v", err)
	}
	if member.Status != models.MemberStatusExpired {
		t.Errorf("Expected stored status expired, got %s", member.Status)
	}
}

func TestGetActiveMembers_SortedByExpirationAscending(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMemberService(db, testConfig())

	house := createTestHouse(t, db, "20")
	now := time.Now()
	far := now.Add(30 * 24 * time.Hour)
	near := now.Add(7 * 24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	db.Create(&models.HouseMember{HouseID: house.ID, MemberEmail: "far@example.com", ExpirationDate: &far})
	db.Create(&models.HouseMember{HouseID: house.ID, MemberEmail: "never@example.com"})
	db.Create(&models.HouseMember{HouseID: house.ID, MemberEmail: "near@example.com", ExpirationDate: &near})
	db.Create(&models.HouseMember{HouseID: house.ID, MemberEmail: "gone@example.com", ExpirationDate: &past})

	active, err := svc.GetActiveMembers()
	if err != nil {
		t.Fatalf("Failed to get active members: %v", err)
	}
	if len(active) != 3 {
		t.Fatalf("Expected 3 active members, got %d", len(active))
	}
	if active[0].MemberEmail != "near@example.com" {
		t.Errorf("Expected soonest expiration first, got %s", active[0].MemberEmail)
	}
	// 永不过期的排最后
	if active[2].MemberEmail != "never@example.com" {
		t.Errorf("Expected never-expiring member last, got %s", active[2].MemberEmail)
	}
}

func TestGetExpiredMembers_SortedByExpirationDescending(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMemberService(db, testConfig())

	house := createTestHouse(t, db, "20")
	now := time.Now()
	lastWeek := now.Add(-7 * 24 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	db.Create(&models.HouseMember{HouseID: house.ID, MemberEmail: "old@example.com", ExpirationDate: &lastWeek})
	db.Create(&models.HouseMember{HouseID: house.ID, MemberEmail: "recent@example.com", ExpirationDate: &yesterday})
	db.Create(&models.HouseMember{HouseID: house.ID, MemberEmail: "alive@example.com", ExpirationDate: &future})

	expired, err := svc.GetExpiredMembers()
	if err != nil {
		t.Fatalf("Failed to get expired members: %v", err)
	}
	if len(expired) != 2 {
		t.Fatalf("Expected 2 expired members, got %d", len(expired))
	}
	if expired[0].MemberEmail != "recent@example.com" {
		t.Errorf("Expected most recently expired first, got %s", expired[0].MemberEmail)
	}
}

func TestDeleteMember_FreesSeat(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMemberService(db, testConfig())

	house := createTestHouse(t, db, "20")
	fillHouse(t, db, house.ID, 5, nil)

	hasCapacity, err := svc.HasCapacity(house.ID)
	if err != nil {
		t.Fatalf("Failed to check capacity: %v", err)
	}
	if hasCapacity {
		t.Fatal("Expected house at capacity")
	}

	var member models.HouseMember
	db.Where("house_id = ?", house.ID).First(&member)
	if err := svc.DeleteMember(member.ID); err != nil {
		t.Fatalf("Failed to delete member: %v", err)
	}

	remaining, err := svc.CapacityRemaining(house.ID)
	if err != nil {
		t.Fatalf("Failed to check remaining capacity: %v", err)
	}
	if remaining != 1 {
		t.Errorf("Expected one seat freed, got %d", remaining)
	}
}

func TestIsDuplicate_EmptyLineIDNeverMatches(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMemberService(db, testConfig())

	house := createTestHouse(t, db, "20")
	db.Create(&models.HouseMember{HouseID: house.ID, MemberEmail: "a@example.com", LineID: ""})

	dup, err := svc.IsDuplicate(house.ID, "")
	if err != nil {
		t.Fatalf("Failed to check duplicate: %v", err)
	}
	if dup {
		t.Error("Expected empty LINE ID to never count as duplicate")
	}
}

func TestUpdateMember_ReassignToMissingHouseFails(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMemberService(db, testConfig())

	house := createTestHouse(t, db, "20")
	member := &models.HouseMember{HouseID: house.ID, MemberEmail: "a@example.com"}
	db.Create(member)

	_, err := svc.UpdateMember(member.ID, map[string]interface{}{"house_id": uint(99)})
	if err == nil {
		t.Error("Expected error when reassigning to missing house")
	}
}
