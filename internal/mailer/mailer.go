package mailer

import (
	"fmt"
	"strings"

	"github.com/jobtrail/jobtrail-backend/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer sends best-effort notification email over SMTP. When no SMTP
// host is configured every send becomes a no-op, which keeps local
// development from needing mail credentials.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg *config.Config) *Mailer {
	m := &Mailer{from: cfg.MailFrom}
	if cfg.SMTPHost != "" {
		m.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	}
	return m
}

func (m *Mailer) Enabled() bool {
	return m.dialer != nil
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	if m.dialer == nil {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

// SendInterviewPrep notifies a user that an application reached the
// interview stage, including their most recent compatibility analysis.
func (m *Mailer) SendInterviewPrep(to, userName, company, matchScore string, tips []string) error {
	if userName == "" {
		userName = "Candidate"
	}
	if len(tips) == 0 {
		tips = []string{"General interview preparation is recommended."}
	}

	var tipsHTML strings.Builder
	for _, tip := range tips {
		tipsHTML.WriteString("<li style=\"margin-bottom: 10px;\">" + tip + "</li>")
	}

	body := fmt.Sprintf(interviewPrepTemplate, userName, company, matchScore, tipsHTML.String())
	subject := fmt.Sprintf("Interview Invitation: %s Preparation Guide", company)
	return m.send(to, subject, body)
}

// SendFollowUpReminder nudges a user about an application that has sat
// in APPLIED for a week.
func (m *Mailer) SendFollowUpReminder(to, company string) error {
	subject := fmt.Sprintf("Follow-up Reminder: %s", company)
	body := fmt.Sprintf(reminderTemplate, company, company)
	return m.send(to, subject, body)
}
