package services

import (
	"testing"
	"time"

	"houseadmin-http-service/internal/domain/models"
)

func TestCreateHouse_RejectsDuplicateNumber(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHouseService(db, testConfig())

	if err := svc.CreateHouse(&models.House{HouseNumber: "20"}); err != nil {
		t.Fatalf("Failed to create house: %v", err)
	}
	if err := svc.CreateHouse(&models.House{HouseNumber: "20"}); err == nil {
		t.Error("Expected duplicate house number to be rejected")
	}
}

func TestCreateHouse_DefaultsStatusActive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHouseService(db, testConfig())

	house := &models.House{HouseNumber: "20"}
	if err := svc.CreateHouse(house); err != nil {
		t.Fatalf("Failed to create house: %v", err)
	}
	if house.Status != "active" {
		t.Errorf("Expected default status active, got %s", house.Status)
	}
}

func TestGetHouseByNumber(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHouseService(db, testConfig())

	createTestHouse(t, db, "20")

	house, err := svc.GetHouseByNumber("20")
	if err != nil {
		t.Fatalf("Failed to get house by number: %v", err)
	}
	if house.HouseNumber != "20" {
		t.Errorf("Expected house number 20, got %s", house.HouseNumber)
	}

	if _, err := svc.GetHouseByNumber("99"); err == nil {
		t.Error("Expected error for missing house number")
	}
}

func TestGetAvailableHouses_ExcludesFullHouses(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHouseService(db, testConfig())

	full := createTestHouse(t, db, "20")
	fillHouse(t, db, full.ID, 5, nil)

	open := createTestHouse(t, db, "21")
	fillHouse(t, db, open.ID, 3, nil)

	empty := createTestHouse(t, db, "22")

	available, err := svc.GetAvailableHouses()
	if err != nil {
		t.Fatalf("Failed to get available houses: %v", err)
	}
	if len(available) != 2 {
		t.Fatalf("Expected 2 available houses, got %d", len(available))
	}
	for _, h := range available {
		if h.ID == full.ID {
			t.Error("Full house should not be listed as available")
		}
	}

	counts := map[uint]int64{}
	for _, h := range available {
		counts[h.ID] = h.MemberCount
	}
	if counts[open.ID] != 3 {
		t.Errorf("Expected member count 3 for open house, got %d", counts[open.ID])
	}
	if counts[empty.ID] != 0 {
		t.Errorf("Expected member count 0 for empty house, got %d", counts[empty.ID])
	}
}

func TestGetAvailableHouses_ExpiredMembersStillCount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHouseService(db, testConfig())

	house := createTestHouse(t, db, "20")
	past := time.Now().Add(-24 * time.Hour)
	fillHouse(t, db, house.ID, 5, &past)

	available, err := svc.GetAvailableHouses()
	if err != nil {
		t.Fatalf("Failed to get available houses: %v", err)
	}
	if len(available) != 0 {
		t.Errorf("Expected full house to stay unavailable even with expired members, got %d available", len(available))
	}
}

func TestGetHouseMembers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHouseService(db, testConfig())

	house := createTestHouse(t, db, "20")
	fillHouse(t, db, house.ID, 2, nil)

	members, err := svc.GetHouseMembers(house.ID)
	if err != nil {
		t.Fatalf("Failed to get house members: %v", err)
	}
	if len(members) != 2 {
		t.Errorf("Expected 2 members, got %d", len(members))
	}

	if _, err := svc.GetHouseMembers(99); err == nil {
		t.Error("Expected error for missing house")
	}
}

func TestUpdateHouse_RejectsNumberCollision(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHouseService(db, testConfig())

	createTestHouse(t, db, "20")
	other := createTestHouse(t, db, "21")

	if _, err := svc.UpdateHouse(other.ID, map[string]interface{}{"house_number": "20"}); err == nil {
		t.Error("Expected collision with existing house number to be rejected")
	}
}

func TestDeleteHouse_DoesNotCascadeMembers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHouseService(db, testConfig())

	house := createTestHouse(t, db, "20")
	fillHouse(t, db, house.ID, 2, nil)

	if err := svc.DeleteHouse(house.ID); err != nil {
		t.Fatalf("Failed to delete house: %v", err)
	}

	var count int64
	db.Model(&models.HouseMember{}).Where("house_id = ?", house.ID).Count(&count)
	if count != 2 {
		t.Errorf("Expected member rows untouched after house delete, got %d", count)
	}
}
