package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/record-shop/internal/domain"
	"github.com/spec-kit/record-shop/internal/repository"
	apperrors "github.com/spec-kit/record-shop/pkg/util/errorutil"
)

// SubscriberService manages the new-release mailing list.
type SubscriberService struct {
	subscribers repository.SubscriberRepository
	mailer      Mailer
	logger      *zap.Logger
}

// NewSubscriberService constructs the service.
func NewSubscriberService(subscribers repository.SubscriberRepository, mailer Mailer, logger *zap.Logger) *SubscriberService {
	return &SubscriberService{subscribers: subscribers, mailer: mailer, logger: logger}
}

// Subscribe adds an email to the list. Subscribing twice returns the
// existing subscription.
func (s *SubscriberService) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("email required", nil)
	}

	exists, err := s.subscribers.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return s.subscribers.GetByEmail(ctx, email)
	}

	subscriber := &domain.Subscriber{Email: email}
	if err := s.subscribers.Create(ctx, subscriber); err != nil {
		return nil, err
	}
	return subscriber, nil
}

// NotifyNewRelease emails every subscriber about a new record. Per-recipient
// failures are logged and do not stop the rest of the list.
func (s *SubscriberService) NotifyNewRelease(ctx context.Context, record *domain.Record) {
	subscribers, err := s.subscribers.List(ctx)
	if err != nil {
		s.logger.Error("failed to list subscribers", zap.Error(err))
		return
	}

	for _, subscriber := range subscribers {
		if err := s.mailer.SendNewReleaseNotification(ctx, subscriber.Email, record); err != nil {
			s.logger.Warn("new release mail failed",
				zap.String("email", subscriber.Email),
				zap.Error(err))
		}
	}
}
