package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/renalworks/dialysis-api/internal/config"
)

// Service sends the clinic's outbound notifications.
type Service interface {
	SendScriptReminder(ctx context.Context, to, patientName, expiryDate string) error
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPService(cfg config.SMTPConfig) Service {
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) SendScriptReminder(ctx context.Context, to, patientName, expiryDate string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Dialysis script for %s expires %s", patientName, expiryDate))
	m.SetBody("text/plain", fmt.Sprintf(
		"The dialysis script for %s expires on %s.\n\nPlease arrange a renewal before the expiry date.\n",
		patientName, expiryDate))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reminder to %s: %w", to, err)
	}
	return nil
}
