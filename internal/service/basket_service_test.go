package service

import (
	"context"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/record-shop/internal/domain"
	"github.com/spec-kit/record-shop/internal/events"
	"github.com/spec-kit/record-shop/internal/repository"
	apperrors "github.com/spec-kit/record-shop/pkg/util/errorutil"
)

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

type fakeBasketRepo struct {
	mu      sync.Mutex
	baskets map[int64]*domain.Basket
}

func newFakeBasketRepo() *fakeBasketRepo {
	return &fakeBasketRepo{baskets: make(map[int64]*domain.Basket)}
}

func (r *fakeBasketRepo) Get(_ context.Context, userID int64) (*domain.Basket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	basket, ok := r.baskets[userID]
	if !ok {
		return nil, repository.ErrBasketNotFound
	}
	copied := domain.Basket{UserID: basket.UserID, Items: append([]domain.BasketItem{}, basket.Items...)}
	return &copied, nil
}

func (r *fakeBasketRepo) Save(_ context.Context, basket *domain.Basket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := domain.Basket{UserID: basket.UserID, Items: append([]domain.BasketItem{}, basket.Items...)}
	r.baskets[basket.UserID] = &copied
	return nil
}

func (r *fakeBasketRepo) Delete(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.baskets, userID)
	return nil
}

type fakeRecordRepo struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]*domain.Record

	searchResults []domain.Record
	searchErr     error
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[int64]*domain.Record)}
}

func (r *fakeRecordRepo) Create(_ context.Context, record *domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	record.ID = r.nextID
	copied := *record
	r.records[record.ID] = &copied
	return nil
}

func (r *fakeRecordRepo) Update(_ context.Context, record *domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *record
	r.records[record.ID] = &copied
	return nil
}

func (r *fakeRecordRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.records, id)
	return nil
}

func (r *fakeRecordRepo) GetByID(_ context.Context, id int64) (*domain.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *record
	return &copied, nil
}

func (r *fakeRecordRepo) List(_ context.Context) ([]domain.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Record
	for _, record := range r.records {
		out = append(out, *record)
	}
	return out, nil
}

func (r *fakeRecordRepo) Search(_ context.Context, _ string) ([]domain.Record, error) {
	return r.searchResults, r.searchErr
}

func (r *fakeRecordRepo) UpdateQuantity(_ context.Context, id int64, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return pgx.ErrNoRows
	}
	record.Quantity = quantity
	return nil
}

func seedRecord(t *testing.T, records *fakeRecordRepo, title string, quantity int) *domain.Record {
	t.Helper()
	record := &domain.Record{Title: title, Artist: "Test Artist", Price: 19.99, Quantity: quantity, GenreID: 1}
	require.NoError(t, records.Create(context.Background(), record))
	return record
}

func TestAddToBasketReservesStock(t *testing.T) {
	baskets := newFakeBasketRepo()
	records := newFakeRecordRepo()
	svc := NewBasketService(baskets, records, events.NewInMemoryDispatcher())

	record := seedRecord(t, records, "Abbey Road", 10)

	require.NoError(t, svc.AddToBasket(context.Background(), 1, record.ID, 3))

	basket, err := svc.GetBasket(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, basket.ItemQuantity(record.ID))

	stored, err := records.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.Quantity)
}

func TestAddToBasketMergesPositions(t *testing.T) {
	baskets := newFakeBasketRepo()
	records := newFakeRecordRepo()
	svc := NewBasketService(baskets, records, events.NewInMemoryDispatcher())

	record := seedRecord(t, records, "Kind of Blue", 10)

	require.NoError(t, svc.AddToBasket(context.Background(), 1, record.ID, 2))
	require.NoError(t, svc.AddToBasket(context.Background(), 1, record.ID, 3))

	basket, err := svc.GetBasket(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, basket.Items, 1)
	assert.Equal(t, 5, basket.ItemQuantity(record.ID))
}

func TestAddToBasketOutOfStock(t *testing.T) {
	baskets := newFakeBasketRepo()
	records := newFakeRecordRepo()
	svc := NewBasketService(baskets, records, events.NewInMemoryDispatcher())

	record := seedRecord(t, records, "Rare Pressing", 2)

	err := svc.AddToBasket(context.Background(), 1, record.ID, 3)
	assertErrorCode(t, err, "OUT_OF_STOCK")

	// Nothing reserved on failure.
	stored, err := records.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Quantity)
}

func TestAddToBasketRejectsNonPositiveQuantity(t *testing.T) {
	svc := NewBasketService(newFakeBasketRepo(), newFakeRecordRepo(), events.NewInMemoryDispatcher())

	for _, quantity := range []int{0, -1} {
		err := svc.AddToBasket(context.Background(), 1, 1, quantity)
		assert.Error(t, err)
	}
}

func TestRemoveFromBasket(t *testing.T) {
	baskets := newFakeBasketRepo()
	records := newFakeRecordRepo()
	svc := NewBasketService(baskets, records, events.NewInMemoryDispatcher())

	record := seedRecord(t, records, "Blue Train", 5)
	require.NoError(t, svc.AddToBasket(context.Background(), 1, record.ID, 1))

	require.NoError(t, svc.RemoveFromBasket(context.Background(), 1, record.ID))

	basket, err := svc.GetBasket(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, basket.Items)

	err = svc.RemoveFromBasket(context.Background(), 1, record.ID)
	assertErrorCode(t, err, "RECORD_NOT_IN_BASKET")
}

func TestUpdateItemQuantity(t *testing.T) {
	baskets := newFakeBasketRepo()
	records := newFakeRecordRepo()
	svc := NewBasketService(baskets, records, events.NewInMemoryDispatcher())

	record := seedRecord(t, records, "Harvest", 10)
	require.NoError(t, svc.AddToBasket(context.Background(), 1, record.ID, 2))

	require.NoError(t, svc.UpdateItemQuantity(context.Background(), 1, record.ID, 4))

	basket, err := svc.GetBasket(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, basket.ItemQuantity(record.ID))
}

func TestGetBasketMissing(t *testing.T) {
	svc := NewBasketService(newFakeBasketRepo(), newFakeRecordRepo(), events.NewInMemoryDispatcher())

	_, err := svc.GetBasket(context.Background(), 99)
	assertErrorCode(t, err, "NOT_FOUND")
}
