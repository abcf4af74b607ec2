package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/record-shop/internal/domain"
)

type fakeReviewRepo struct {
	mu      sync.Mutex
	nextID  int64
	reviews map[int64]*domain.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[int64]*domain.Review)}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	review.ID = r.nextID
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	copied := *review
	r.reviews[review.ID] = &copied
	return nil
}

func (r *fakeReviewRepo) Update(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[review.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *review
	r.reviews[review.ID] = &copied
	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) GetByID(_ context.Context, id int64) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.reviews[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *review
	return &copied, nil
}

func (r *fakeReviewRepo) ListByRecord(_ context.Context, recordID int64) ([]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Review
	for _, review := range r.reviews {
		if review.RecordID == recordID {
			out = append(out, *review)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) ExistsByUserAndRecord(_ context.Context, userID, recordID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, review := range r.reviews {
		if review.UserID == userID && review.RecordID == recordID {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateReview(t *testing.T) {
	reviews := newFakeReviewRepo()
	records := newFakeRecordRepo()
	svc := NewReviewService(reviews, records)

	record := seedRecord(t, records, "OK Computer", 5)

	review, err := svc.CreateReview(context.Background(), ReviewInput{
		UserID:   1,
		RecordID: record.ID,
		Rating:   5,
		Comment:  "essential",
	})
	require.NoError(t, err)
	assert.NotZero(t, review.ID)
	assert.Equal(t, 5, review.Rating)
}

func TestCreateReviewRejectsDuplicate(t *testing.T) {
	reviews := newFakeReviewRepo()
	records := newFakeRecordRepo()
	svc := NewReviewService(reviews, records)

	record := seedRecord(t, records, "In Rainbows", 5)

	_, err := svc.CreateReview(context.Background(), ReviewInput{UserID: 1, RecordID: record.ID, Rating: 4})
	require.NoError(t, err)

	_, err = svc.CreateReview(context.Background(), ReviewInput{UserID: 1, RecordID: record.ID, Rating: 2})
	assertErrorCode(t, err, "DUPLICATE_REVIEW")

	// A different user may still review the same record.
	_, err = svc.CreateReview(context.Background(), ReviewInput{UserID: 2, RecordID: record.ID, Rating: 3})
	assert.NoError(t, err)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), newFakeRecordRepo())

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.CreateReview(context.Background(), ReviewInput{UserID: 1, RecordID: 1, Rating: rating})
		assertErrorCode(t, err, "VALIDATION_FAILED")
	}
}

func TestCreateReviewUnknownRecord(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), newFakeRecordRepo())

	_, err := svc.CreateReview(context.Background(), ReviewInput{UserID: 1, RecordID: 404, Rating: 3})
	assertErrorCode(t, err, "NOT_FOUND")
}

func TestUpdateReview(t *testing.T) {
	reviews := newFakeReviewRepo()
	records := newFakeRecordRepo()
	svc := NewReviewService(reviews, records)

	record := seedRecord(t, records, "Kid A", 5)
	created, err := svc.CreateReview(context.Background(), ReviewInput{UserID: 1, RecordID: record.ID, Rating: 3, Comment: "fine"})
	require.NoError(t, err)

	updated, err := svc.UpdateReview(context.Background(), created.ID, 5, "grew on me")
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "grew on me", updated.Comment)
	assert.Equal(t, created.UserID, updated.UserID)
	assert.Equal(t, created.RecordID, updated.RecordID)
}
