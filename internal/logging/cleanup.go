package logging

import (
	"log/slog"
	"time"

	"github.com/jobtrail/jobtrail-backend/internal/models"
	"gorm.io/gorm"
)

// retention is how long system_logs rows are kept before the daily
// sweep removes them.
const retention = 30 * 24 * time.Hour

// StartCleanup launches the daily retention sweep over system_logs.
// Closing done stops it.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sweepExpired(db)
			case <-done:
				return
			}
		}
	}()
}

func sweepExpired(db *gorm.DB) {
	cutoff := time.Now().Add(-retention)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected)
	}
}
