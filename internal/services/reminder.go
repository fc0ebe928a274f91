package services

import (
	"log/slog"
	"time"

	"github.com/jobtrail/jobtrail-backend/internal/mailer"
	"github.com/jobtrail/jobtrail-backend/internal/models"
	"gorm.io/gorm"
)

const staleAfter = 7 * 24 * time.Hour

// StartReminderSweep runs a daily goroutine that nudges users about
// applications stuck in APPLIED for a week. Send failures are logged
// and skipped; the sweep never interrupts request handling.
func StartReminderSweep(db *gorm.DB, m *mailer.Mailer, done chan struct{}) {
	if !m.Enabled() {
		slog.Info("reminder sweep disabled, no SMTP host configured")
		return
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sweepOnce(db, m)
			case <-done:
				return
			}
		}
	}()
}

func sweepOnce(db *gorm.DB, m *mailer.Mailer) {
	cutoff := time.Now().Add(-staleAfter)

	var stale []models.JobApplication
	err := db.Where("status = ? AND updated_at <= ?", models.StatusApplied, cutoff).
		Find(&stale).Error
	if err != nil {
		slog.Error("reminder sweep query failed", "error", err.Error())
		return
	}

	sent := 0
	for _, job := range stale {
		var user models.User
		if err := db.First(&user, "id = ?", job.UserID).Error; err != nil {
			continue
		}
		if err := m.SendFollowUpReminder(user.Email, job.Company); err != nil {
			slog.Warn("reminder mail failed",
				"action", "reminder_mail", "user_id", job.UserID.String(), "error", err.Error())
			continue
		}
		sent++
	}

	if sent > 0 {
		slog.Info("reminder sweep completed", "sent", sent, "candidates", len(stale))
	}
}
