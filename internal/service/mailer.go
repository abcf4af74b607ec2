package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/record-shop/internal/config"
	"github.com/spec-kit/record-shop/internal/domain"
)

// Mailer sends outbound mail to subscribers.
type Mailer interface {
	SendNewReleaseNotification(ctx context.Context, to string, record *domain.Record) error
}

// logMailer is a stand-in mailer that only logs. Swapped for a real SMTP
// client in deployments that configure one.
type logMailer struct {
	logger *zap.Logger
	cfg    config.MailConfig
}

// NewLogMailer builds the logging mailer.
func NewLogMailer(logger *zap.Logger, cfg config.MailConfig) Mailer {
	return &logMailer{logger: logger, cfg: cfg}
}

func (m *logMailer) SendNewReleaseNotification(ctx context.Context, to string, record *domain.Record) error {
	m.logger.Debug("sendNewReleaseNotification",
		zap.String("from", m.cfg.From),
		zap.String("to", to),
		zap.String("title", record.Title),
		zap.String("artist", record.Artist))
	return nil
}
