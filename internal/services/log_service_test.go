package services

import (
	"context"
	"testing"

	"gorm.io/gorm"
)

func newTestLogService(t *testing.T) (*LogService, *gorm.DB) {
	t.Helper()

	db := openTestDB(t)
	createLogsTable(t, db)

	service, err := NewLogService(db)
	if err != nil {
		t.Fatalf("NewLogService: %v", err)
	}

	return service, db
}

func TestNewLogServiceNilDB(t *testing.T) {
	if _, err := NewLogService(nil); err == nil {
		t.Fatal("NewLogService with nil db: expected error")
	}
}

func TestCreateLogAndGetLogs(t *testing.T) {
	service, _ := newTestLogService(t)
	ctx := context.Background()

	message := "building=abc final_total=84742.3"
	if err := service.CreateLog(ctx, LogActionBalanceCalc, LogOutcomeSuccess, &message); err != nil {
		t.Fatalf("CreateLog: %v", err)
	}
	if err := service.CreateLog(ctx, LogActionRecalcAll, LogOutcomeFail, nil); err != nil {
		t.Fatalf("CreateLog: %v", err)
	}

	logs, err := service.GetLogs(ctx, 10)
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("logs = %d, want 2", len(logs))
	}

	for _, entry := range logs {
		if entry.Datetime.IsZero() {
			t.Fatalf("log %s has zero datetime", entry.ID)
		}
	}
}

func TestCreateLogRejectsEmptyFields(t *testing.T) {
	service, _ := newTestLogService(t)
	ctx := context.Background()

	if err := service.CreateLog(ctx, "", LogOutcomeSuccess, nil); err == nil {
		t.Fatal("CreateLog with empty action: expected error")
	}
	if err := service.CreateLog(ctx, LogActionBalanceCalc, "", nil); err == nil {
		t.Fatal("CreateLog with empty outcome: expected error")
	}
}

func TestGetLogsLimit(t *testing.T) {
	service, _ := newTestLogService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := service.CreateLog(ctx, LogActionBalanceCalc, LogOutcomeSuccess, nil); err != nil {
			t.Fatalf("CreateLog: %v", err)
		}
	}

	logs, err := service.GetLogs(ctx, 3)
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("logs = %d, want 3", len(logs))
	}

	if _, err := service.GetLogs(ctx, 0); err == nil {
		t.Fatal("GetLogs with limit 0: expected error")
	}
}

func TestTruncateLogs(t *testing.T) {
	service, _ := newTestLogService(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if err := service.CreateLog(ctx, LogActionResultExport, LogOutcomeSuccess, nil); err != nil {
			t.Fatalf("CreateLog: %v", err)
		}
	}

	removed, err := service.TruncateLogs(ctx)
	if err != nil {
		t.Fatalf("TruncateLogs: %v", err)
	}
	if removed != 4 {
		t.Fatalf("removed = %d, want 4", removed)
	}

	logs, err := service.GetLogs(ctx, 10)
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("logs after truncate = %d, want 0", len(logs))
	}
}
