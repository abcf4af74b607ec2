package service

import (
	"context"
	"time"

	"github.com/spec-kit/record-shop/internal/domain"
	"github.com/spec-kit/record-shop/internal/repository"
)

// PurchaseHistoryService serves completed orders and admin statistics.
type PurchaseHistoryService struct {
	purchases repository.PurchaseHistoryRepository
	now       func() time.Time
}

// NewPurchaseHistoryService constructs the service.
func NewPurchaseHistoryService(purchases repository.PurchaseHistoryRepository) *PurchaseHistoryService {
	return &PurchaseHistoryService{purchases: purchases, now: time.Now}
}

// ListForUser returns the user's orders, newest first.
func (s *PurchaseHistoryService) ListForUser(ctx context.Context, userID int64) ([]domain.PurchaseHistory, error) {
	return s.purchases.ListByUser(ctx, userID)
}

// DashboardStats aggregates order figures for the admin dashboard.
func (s *PurchaseHistoryService) DashboardStats(ctx context.Context) (*domain.AdminDashboardStats, error) {
	return s.purchases.Stats(ctx, s.now().Add(-30*24*time.Hour))
}
