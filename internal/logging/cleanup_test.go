package logging

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jobtrail/jobtrail-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSweepExpiredRespectsRetention(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.SystemLog{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	rows := []models.SystemLog{
		{ID: uuid.New(), Timestamp: time.Now().Add(-retention - time.Hour), Level: "WARN", Message: "stale"},
		{ID: uuid.New(), Timestamp: time.Now().Add(-time.Hour), Level: "WARN", Message: "fresh"},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	sweepExpired(db)

	var kept []models.SystemLog
	if err := db.Find(&kept).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(kept) != 1 || kept[0].Message != "fresh" {
		t.Errorf("kept %v", kept)
	}
}
