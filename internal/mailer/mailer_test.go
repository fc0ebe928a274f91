package mailer

import (
	"testing"

	"github.com/jobtrail/jobtrail-backend/internal/config"
)

func TestNewWithoutSMTPHost(t *testing.T) {
	m := New(&config.Config{MailFrom: "Jobtrail <noreply@jobtrail.app>"})
	if m.Enabled() {
		t.Error("mailer should be disabled without SMTP_HOST")
	}

	// Sends through a disabled mailer are silent no-ops.
	if err := m.SendInterviewPrep("jane@example.com", "Jane", "Acme", "78", nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := m.SendFollowUpReminder("jane@example.com", "Acme"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewWithSMTPHost(t *testing.T) {
	m := New(&config.Config{
		SMTPHost: "smtp.example.com",
		SMTPPort: 587,
		SMTPUser: "app",
		SMTPPass: "secret",
		MailFrom: "Jobtrail <noreply@jobtrail.app>",
	})
	if !m.Enabled() {
		t.Error("mailer should be enabled when SMTP_HOST is set")
	}
}
