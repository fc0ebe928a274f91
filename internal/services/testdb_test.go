package services

import (
	"fmt"
	"testing"

	"github.com/jobtrail/jobtrail-backend/internal/config"
	"github.com/jobtrail/jobtrail-backend/internal/mailer"
	"github.com/jobtrail/jobtrail-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an in-memory database namespaced per test so suites
// never share state. TranslateError matches the production connection,
// so unique violations surface as gorm.ErrDuplicatedKey here too.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.JobApplication{}, &models.Analysis{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func testJobService(t *testing.T) (*JobService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	analyses := NewAnalysisService(db)
	// No SMTP host, so every send is a no-op.
	m := mailer.New(&config.Config{})
	return NewJobService(db, m, analyses), db
}
