package services

import (
	"testing"

	"houseadmin-http-service/internal/domain/models"
)

func TestCreateInfoLog_DefaultsSyncStatusPending(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInfoLogService(db, testConfig(), NewProvisionService(db, testConfig()))

	log := &models.InfoLog{LineID: "U1", Email: "a@example.com"}
	if err := svc.CreateInfoLog(log); err != nil {
		t.Fatalf("Failed to create info log: %v", err)
	}
	if log.SyncStatus != models.SyncStatusPending {
		t.Errorf("Expected sync status pending, got %s", log.SyncStatus)
	}
}

func TestCreateInfoLog_DoesNotProvision(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInfoLogService(db, testConfig(), NewProvisionService(db, testConfig()))

	createTestHouse(t, db, "20")

	// 创建时即使带了house_group也不触发开通
	log := &models.InfoLog{LineID: "U1", HouseGroup: "20", Email: "a@example.com"}
	if err := svc.CreateInfoLog(log); err != nil {
		t.Fatalf("Failed to create info log: %v", err)
	}

	var count int64
	db.Model(&models.HouseMember{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no members after create, got %d", count)
	}
}

func TestUpdateInfoLog_WithHouseGroupTriggersProvisioning(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInfoLogService(db, testConfig(), NewProvisionService(db, testConfig()))

	createTestHouse(t, db, "20")

	log := &models.InfoLog{LineID: "U1", Email: "a@example.com"}
	if err := svc.CreateInfoLog(log); err != nil {
		t.Fatalf("Failed to create info log: %v", err)
	}

	updated, result, err := svc.UpdateInfoLog(log.ID, map[string]interface{}{"house_group": "20"})
	if err != nil {
		t.Fatalf("Failed to update info log: %v", err)
	}
	if updated.HouseGroup != "20" {
		t.Errorf("Expected house group 20, got %s", updated.HouseGroup)
	}
	if result == nil {
		t.Fatal("Expected provision result")
	}
	if result.Outcome != ProvisionCreated {
		t.Errorf("Expected provisioning to create member, got %s (%s)", result.Outcome, result.Reason)
	}

	var count int64
	db.Model(&models.HouseMember{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected one member, got %d", count)
	}
}

func TestUpdateInfoLog_WithoutHouseGroupDoesNotProvision(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInfoLogService(db, testConfig(), NewProvisionService(db, testConfig()))

	createTestHouse(t, db, "20")

	log := &models.InfoLog{LineID: "U1", Email: "a@example.com"}
	svc.CreateInfoLog(log)

	_, result, err := svc.UpdateInfoLog(log.ID, map[string]interface{}{"customer_name": "张三"})
	if err != nil {
		t.Fatalf("Failed to update info log: %v", err)
	}
	if result != nil {
		t.Errorf("Expected no provisioning attempt, got outcome %s", result.Outcome)
	}
}

func TestUpdateInfoLog_SecondUpdateSkipsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInfoLogService(db, testConfig(), NewProvisionService(db, testConfig()))

	createTestHouse(t, db, "20")

	log := &models.InfoLog{LineID: "U1", Email: "a@example.com"}
	svc.CreateInfoLog(log)

	_, first, err := svc.UpdateInfoLog(log.ID, map[string]interface{}{"house_group": "20"})
	if err != nil {
		t.Fatalf("First update failed: %v", err)
	}
	if first.Outcome != ProvisionCreated {
		t.Fatalf("Expected first provisioning to create, got %s", first.Outcome)
	}

	_, second, err := svc.UpdateInfoLog(log.ID, map[string]interface{}{"house_group": "20"})
	if err != nil {
		t.Fatalf("Second update failed: %v", err)
	}
	if second.Outcome != ProvisionSkippedDuplicate {
		t.Errorf("Expected duplicate skip on repeat update, got %s", second.Outcome)
	}

	var count int64
	db.Model(&models.HouseMember{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected one member after repeated updates, got %d", count)
	}
}

func TestUpdateInfoLog_MissingHouseDoesNotFailUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInfoLogService(db, testConfig(), NewProvisionService(db, testConfig()))

	log := &models.InfoLog{LineID: "U1", Email: "a@example.com"}
	svc.CreateInfoLog(log)

	// 房屋组不存在时更新本身仍成功，开通结果标记跳过
	updated, result, err := svc.UpdateInfoLog(log.ID, map[string]interface{}{"house_group": "99"})
	if err != nil {
		t.Fatalf("Expected update to succeed, got %v", err)
	}
	if updated.HouseGroup != "99" {
		t.Errorf("Expected house group persisted, got %s", updated.HouseGroup)
	}
	if result == nil || result.Outcome != ProvisionSkippedHouseNotFound {
		t.Errorf("Expected house-not-found skip, got %+v", result)
	}
}

func TestUpdateInfoLog_ProvisioningFailureAbsorbed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInfoLogService(db, testConfig(), NewProvisionService(db, testConfig()))

	createTestHouse(t, db, "20")

	log := &models.InfoLog{LineID: "U1", Email: "a@example.com"}
	svc.CreateInfoLog(log)

	// 删掉成员表让写入必然失败，更新本身仍须成功，开通结果为failed
	if err := db.Migrator().DropTable(&models.HouseMember{}); err != nil {
		t.Fatalf("Failed to drop members table: %v", err)
	}

	updated, result, err := svc.UpdateInfoLog(log.ID, map[string]interface{}{"house_group": "20"})
	if err != nil {
		t.Fatalf("Expected update to succeed despite provisioning failure, got %v", err)
	}
	if updated.HouseGroup != "20" {
		t.Errorf("Expected house group persisted, got %s", updated.HouseGroup)
	}
	if result == nil || result.Outcome != ProvisionFailed {
		t.Fatalf("Expected failed outcome, got %+v", result)
	}
	if result.Member != nil {
		t.Errorf("Expected no member on failed outcome, got %+v", result.Member)
	}

	var entry models.ProvisionLog
	if err := db.Where("trace_id = ?", result.TraceID).First(&entry).Error; err != nil {
		t.Fatalf("Expected provision log entry for failed attempt: %v", err)
	}
	if entry.Outcome != string(ProvisionFailed) {
		t.Errorf("Expected outcome failed in provision log, got %s", entry.Outcome)
	}
}

func TestUpdateInfoLog_ProvisioningDoesNotTouchSyncStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInfoLogService(db, testConfig(), NewProvisionService(db, testConfig()))

	createTestHouse(t, db, "20")

	log := &models.InfoLog{LineID: "U1", Email: "a@example.com", SyncStatus: models.SyncStatusOK}
	svc.CreateInfoLog(log)

	updated, _, err := svc.UpdateInfoLog(log.ID, map[string]interface{}{"house_group": "20"})
	if err != nil {
		t.Fatalf("Failed to update info log: %v", err)
	}
	if updated.SyncStatus != models.SyncStatusOK {
		t.Errorf("Expected sync status untouched by provisioning, got %s", updated.SyncStatus)
	}
}
