package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/record-shop/internal/domain"
)

func TestSearchRecordsBlankTermReturnsEmpty(t *testing.T) {
	records := newFakeRecordRepo()
	records.searchErr = errors.New("must not be called")
	svc := NewSearchService(records, newFakePurchaseRepo(), zap.NewNop())

	for _, term := range []string{"", "   ", "\t\n"} {
		results, err := svc.SearchRecords(context.Background(), term)
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
}

func TestSearchRecordsReturnsMatches(t *testing.T) {
	records := newFakeRecordRepo()
	records.searchResults = []domain.Record{
		{ID: 1, Title: "Nevermind", Artist: "Nirvana"},
	}
	svc := NewSearchService(records, newFakePurchaseRepo(), zap.NewNop())

	results, err := svc.SearchRecords(context.Background(), "nirvana")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Nevermind", results[0].Title)
}

func TestSearchRecordsFailure(t *testing.T) {
	records := newFakeRecordRepo()
	records.searchErr = errors.New("connection reset")
	svc := NewSearchService(records, newFakePurchaseRepo(), zap.NewNop())

	_, err := svc.SearchRecords(context.Background(), "anything")
	assertErrorCode(t, err, "SEARCH_FAILED")
}

func TestSearchOrdersBlankTermReturnsEmpty(t *testing.T) {
	svc := NewSearchService(newFakeRecordRepo(), newFakePurchaseRepo(), zap.NewNop())

	results, err := svc.SearchOrders(context.Background(), "  ")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
