package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/record-shop/internal/domain"
	"github.com/spec-kit/record-shop/internal/repository"
	apperrors "github.com/spec-kit/record-shop/pkg/util/errorutil"
)

// SearchService runs free-text searches over records and orders.
// Blank terms short-circuit to empty results.
type SearchService struct {
	records   repository.RecordRepository
	purchases repository.PurchaseHistoryRepository
	logger    *zap.Logger
}

// NewSearchService constructs the service.
func NewSearchService(records repository.RecordRepository, purchases repository.PurchaseHistoryRepository, logger *zap.Logger) *SearchService {
	return &SearchService{records: records, purchases: purchases, logger: logger}
}

// SearchRecords matches title or artist against the term.
func (s *SearchService) SearchRecords(ctx context.Context, term string) ([]domain.Record, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []domain.Record{}, nil
	}

	results, err := s.records.Search(ctx, term)
	if err != nil {
		s.logger.Error("record search failed", zap.String("term", term), zap.Error(err))
		return nil, apperrors.NewSearchFailed("records", err)
	}
	s.logger.Debug("record search", zap.String("term", term), zap.Int("results", len(results)))
	return results, nil
}

// SearchOrders matches order references and item titles against the term.
func (s *SearchService) SearchOrders(ctx context.Context, term string) ([]domain.PurchaseHistory, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []domain.PurchaseHistory{}, nil
	}

	results, err := s.purchases.Search(ctx, term)
	if err != nil {
		s.logger.Error("order search failed", zap.String("term", term), zap.Error(err))
		return nil, apperrors.NewSearchFailed("orders", err)
	}
	s.logger.Debug("order search", zap.String("term", term), zap.Int("results", len(results)))
	return results, nil
}
