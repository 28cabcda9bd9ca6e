package services

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"houseadmin-http-service/internal/domain/models"
	"houseadmin-http-service/internal/infrastructure/config"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.House{},
		&models.HouseMember{},
		&models.InfoLog{},
		&models.ProvisionLog{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{}
}

func createTestHouse(t *testing.T, db *gorm.DB, number string) *models.House {
	house := &models.House{HouseNumber: number, Status: "active"}
	if err := db.Create(house).Error; err != nil {
		t.Fatalf("Failed to create house: %v", err)
	}
	return house
}

func fillHouse(t *testing.T, db *gorm.DB, houseID uint, n int, expiration *time.Time) {
	for i := 0; i < n; i++ {
		member := &models.HouseMember{
			HouseID:        houseID,
			MemberEmail:    "seed@example.com",
			ExpirationDate: expiration,
			Status:         models.MemberStatusActive,
		}
		if err := db.Create(member).Error; err != nil {
			t.Fatalf("Failed to seed member: %v", err)
		}
	}
}

func TestProvisionFromInfoLog_NoHouseGroup(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProvisionService(db, testConfig())

	log := &models.InfoLog{LineID: "U1", Email: "a@example.com"}
	if err := db.Create(log).Error; err != nil {
		t.Fatalf("Failed to create info log: %v", err)
	}

	result := svc.ProvisionFromInfoLog(log)
	if result.Outcome != ProvisionSkippedNoHouseGroup {
		t.Errorf("Expected outcome %s, got %s", ProvisionSkippedNoHouseGroup, result.Outcome)
	}
	if result.TraceID == "" {
		t.Error("Expected non-empty trace ID")
	}

	var count int64
	db.Model(&models.HouseMember{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no members created, got %d", count)
	}
}

func TestProvisionFromInfoLog_HouseNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProvisionService(db, testConfig())

	log := &models.InfoLog{LineID: "U1", HouseGroup: "99", Email: "a@example.com"}
	db.Create(log)

	result := svc.ProvisionFromInfoLog(log)
	if result.Outcome != ProvisionSkippedHouseNotFound {
		t.Errorf("Expected outcome %s, got %s", ProvisionSkippedHouseNotFound, result.Outcome)
	}
}

func TestProvisionFromInfoLog_CreatesMember(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProvisionService(db, testConfig())

	house := createTestHouse(t, db, "20")
	fillHouse(t, db, house.ID, 4, nil)

	future := time.Now().Add(365 * 24 * time.Hour)
	log := &models.InfoLog{
		LineID:         "U-new",
		HouseGroup:     "20",
		Email:          "new@example.com",
		CustomerName:   "新成员",
		PhoneNumber:    "0912345678",
		Package:        "年费",
		PackagePrice:   990,
		Channel:        "line",
		ExpirationDate: &future,
	}
	db.Create(log)

	result := svc.ProvisionFromInfoLog(log)
	if result.Outcome != ProvisionCreated {
		t.Fatalf("Expected outcome %s, got %s (%s)", ProvisionCreated, result.Outcome, result.Reason)
	}
	if result.Member == nil {
		t.Fatal("Expected member in result")
	}
	if result.Member.HouseID != house.ID {
		t.Errorf("Expected member in house %d, got %d", house.ID, result.Member.HouseID)
	}
	if result.Member.MemberEmail != "new@example.com" || result.Member.Email != "new@example.com" {
		t.Errorf("Expected email copied to both fields, got %q / %q", result.Member.MemberEmail, result.Member.Email)
	}
	if result.Member.Status != models.MemberStatusActive {
		t.Errorf("Expected active status, got %s", result.Member.Status)
	}

	var count int64
	db.Model(&models.HouseMember{}).Where("house_id = ?", house.ID).Count(&count)
	if count != 5 {
		t.Errorf("Expected 5 members, got %d", count)
	}
}

func TestProvisionFromInfoLog_AtCapacity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProvisionService(db, testConfig())

	house := createTestHouse(t, db, "20")
	fillHouse(t, db, house.ID, 5, nil)

	log := &models.InfoLog{LineID: "U-new", HouseGroup: "20", Email: "new@example.com"}
	db.Create(log)

	result := svc.ProvisionFromInfoLog(log)
	if result.Outcome != ProvisionSkippedAtCapacity {
		t.Errorf("Expected outcome %s, got %s", ProvisionSkippedAtCapacity, result.Outcome)
	}

	// 满员时不应有任何写入
	var count int64
	db.Model(&models.HouseMember{}).Where("house_id = ?", house.ID).Count(&count)
	if count != 5 {
		t.Errorf("Expected member count to stay at 5, got %d", count)
	}
}

func TestProvisionFromInfoLog_ExpiredMembersStillOccupySeats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProvisionService(db, testConfig())

	house := createTestHouse(t, db, "20")
	past := time.Now().Add(-24 * time.Hour)
	fillHouse(t, db, house.ID, 5, &past)

	log := &models.InfoLog{LineID: "U-new", HouseGroup: "20", Email: "new@example.com"}
	db.Create(log)

	// 默认策略下过期成员仍占席位
	result := svc.ProvisionFromInfoLog(log)
	if result.Outcome != ProvisionSkippedAtCapacity {
		t.Errorf("Expected outcome %s, got %s", ProvisionSkippedAtCapacity, result.Outcome)
	}
}

func TestProvisionFromInfoLog_CapacityPolicyIgnoresExpired(t *testing.T) {
	db := setupTestDB(t)
	svc := &ProvisionService{DB: db, Config: testConfig(), CountExpiredTowardCapacity: false}

	house := createTestHouse(t, db, "20")
	past := time.Now().Add(-24 * time.Hour)
	fillHouse(t, db, house.ID, 5, &past)

	log := &models.InfoLog{LineID: "U-new", HouseGroup: "20", Email: "new@example.com"}
	db.Create(log)

	result := svc.ProvisionFromInfoLog(log)
	if result.Outcome != ProvisionCreated {
		t.Errorf("Expected outcome %s with expired seats freed, got %s (%s)", ProvisionCreated, result.Outcome, result.Reason)
	}
}

func TestProvisionFromInfoLog_DuplicateLineID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProvisionService(db, testConfig())

	createTestHouse(t, db, "20")

	log := &models.InfoLog{LineID: "U-dup", HouseGroup: "20", Email: "a@example.com"}
	db.Create(log)

	first := svc.ProvisionFromInfoLog(log)
	if first.Outcome != ProvisionCreated {
		t.Fatalf("Expected first call to create, got %s", first.Outcome)
	}

	second := svc.ProvisionFromInfoLog(log)
	if second.Outcome != ProvisionSkippedDuplicate {
		t.Errorf("Expected second call skipped as duplicate, got %s", second.Outcome)
	}

	var count int64
	db.Model(&models.HouseMember{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly one member, got %d", count)
	}
}

func TestProvisionFromInfoLog_EmptyLineIDSkipsDedup(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProvisionService(db, testConfig())

	createTestHouse(t, db, "20")

	log := &models.InfoLog{HouseGroup: "20", Email: "a@example.com"}
	db.Create(log)

	// LINE ID为空时去重检查不生效，两次都会写入
	first := svc.ProvisionFromInfoLog(log)
	second := svc.ProvisionFromInfoLog(log)
	if first.Outcome != ProvisionCreated || second.Outcome != ProvisionCreated {
		t.Errorf("Expected both calls to create, got %s and %s", first.Outcome, second.Outcome)
	}

	var count int64
	db.Model(&models.HouseMember{}).Count(&count)
	if count != 2 {
		t.Errorf("Expected two members, got %d", count)
	}
}

func TestProvisionFromInfoLog_PastExpirationStoresExpiredStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProvisionService(db, testConfig())

	createTestHouse(t, db, "20")
	past := time.Now().Add(-24 * time.Hour)

	log := &models.InfoLog{LineID: "U1", HouseGroup: "20", Email: "a@example.com", ExpirationDate: &past}
	db.Create(log)

	result := svc.ProvisionFromInfoLog(log)
	if result.Outcome != ProvisionCreated {
		t.Fatalf("Expected created, got %s", result.Outcome)
	}
	if result.Member.Status != models.MemberStatusExpired {
		t.Errorf("Expected stored status expired, got %s", result.Member.Status)
	}
	if result.Member.IsActive {
		t.Error("Expected IsActive false for expired member")
	}
}

func TestProvisionFromInfoLog_RecordsOutcome(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProvisionService(db, testConfig())

	createTestHouse(t, db, "20")

	log := &models.InfoLog{LineID: "U1", HouseGroup: "20", Email: "a@example.com"}
	db.Create(log)

	result := svc.ProvisionFromInfoLog(log)

	var entries []models.ProvisionLog
	if err := db.Find(&entries).Error; err != nil {
		t.Fatalf("Failed to read provision logs: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected one provision log entry, got %d", len(entries))
	}
	if entries[0].TraceID != result.TraceID {
		t.Errorf("Expected trace ID %s, got %s", result.TraceID, entries[0].TraceID)
	}
	if entries[0].Outcome != string(ProvisionCreated) {
		t.Errorf("Expected outcome created, got %s", entries[0].Outcome)
	}
	if entries[0].InfoLogID != log.ID {
		t.Errorf("Expected info log ID %d, got %d", log.ID, entries[0].InfoLogID)
	}
}

func TestGetProvisionLogs_Pagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProvisionService(db, testConfig())

	createTestHouse(t, db, "20")
	for i := 0; i < 3; i++ {
		log := &models.InfoLog{HouseGroup: "20", Email: "a@example.com"}
		db.Create(log)
		svc.ProvisionFromInfoLog(log)
	}

	logs, total, err := svc.GetProvisionLogs(1, 2)
	if err != nil {
		t.Fatalf("Failed to get provision logs: %v", err)
	}
	if total != 3 {
		t.Errorf("Expected total 3, got %d", total)
	}
	if len(logs) != 2 {
		t.Errorf("Expected 2 logs on first page, got %d", len(logs))
	}
	// 按时间倒序，最新的排前面
	if len(logs) == 2 && logs[0].ID < logs[1].ID {
		t.Error("Expected logs in descending order")
	}
}
