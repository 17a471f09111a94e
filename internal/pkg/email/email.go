package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// Service sends transactional mail. All methods degrade to a logged no-op
// when SMTP is not configured, so callers never have to branch on it.
type Service interface {
	SendAccountDecision(to, name string, approved bool) error
	SendLeaveDecision(to, name, startDate, endDate string, approved bool, rejectReason string) error
}

type serviceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

func NewService(cfg config.SMTPConfig) (Service, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &serviceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type accountDecisionData struct {
	Name     string
	Approved bool
}

// SendAccountDecision tells a registrant whether an admin approved their
// account.
func (s *serviceImpl) SendAccountDecision(to, name string, approved bool) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "account_decision.html", accountDecisionData{
		Name:     name,
		Approved: approved,
	}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := "Your account has been approved"
	if !approved {
		subject = "Your account registration was rejected"
	}
	return s.sendHTML(to, subject, body.String())
}

type leaveDecisionData struct {
	Name         string
	StartDate    string
	EndDate      string
	Approved     bool
	RejectReason string
}

// SendLeaveDecision tells the subject how their leave request was decided.
func (s *serviceImpl) SendLeaveDecision(to, name, startDate, endDate string, approved bool, rejectReason string) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_decision.html", leaveDecisionData{
		Name:         name,
		StartDate:    startDate,
		EndDate:      endDate,
		Approved:     approved,
		RejectReason: rejectReason,
	}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := "Your leave request has been approved"
	if !approved {
		subject = "Your leave request was rejected"
	}
	return s.sendHTML(to, subject, body.String())
}

func (s *serviceImpl) sendHTML(to, subject, htmlBody string) error {
	if !s.cfg.Enabled() {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s\r\n", from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Exponential backoff: 1s, 2s, 4s
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
