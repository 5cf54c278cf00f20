package mailer

import (
	"context"

	"go.uber.org/zap"

	"solene-digital.backend/internal/config"
	"solene-digital.backend/internal/domain/entities"
	"solene-digital.backend/pkg/logger"
)

// LogMailer only logs outgoing email. Used when SMTP is not configured.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, email entities.Email) error {
	logger.Info(ctx, "SMTP not configured, email not sent",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
	)
	return nil
}

// Mailer is the subset of behaviour the notifier needs.
type Mailer interface {
	Send(ctx context.Context, email entities.Email) error
}

// New picks the SMTP mailer when a host is configured and the log mailer
// otherwise.
func New(cfg config.MailConfig) (Mailer, error) {
	if !cfg.Enabled() {
		return LogMailer{}, nil
	}
	return NewSMTPMailer(cfg)
}
