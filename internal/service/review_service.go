package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/record-shop/internal/domain"
	"github.com/spec-kit/record-shop/internal/repository"
	apperrors "github.com/spec-kit/record-shop/pkg/util/errorutil"
)

// ReviewService coordinates record reviews.
type ReviewService struct {
	reviews repository.ReviewRepository
	records repository.RecordRepository
}

// ReviewInput describes review creation payload.
type ReviewInput struct {
	UserID   int64
	RecordID int64
	Rating   int
	Comment  string
}

// NewReviewService constructs the service.
func NewReviewService(reviews repository.ReviewRepository, records repository.RecordRepository) *ReviewService {
	return &ReviewService{reviews: reviews, records: records}
}

// CreateReview stores a review, enforcing one review per user per record.
func (s *ReviewService) CreateReview(ctx context.Context, input ReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5", nil)
	}

	if _, err := s.records.GetByID(ctx, input.RecordID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("record", map[string]any{"id": input.RecordID})
		}
		return nil, err
	}

	exists, err := s.reviews.ExistsByUserAndRecord(ctx, input.UserID, input.RecordID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewDuplicateReview()
	}

	review := &domain.Review{
		UserID:   input.UserID,
		RecordID: input.RecordID,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// GetReview returns one review by id.
func (s *ReviewService) GetReview(ctx context.Context, id int64) (*domain.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("review", map[string]any{"id": id})
		}
		return nil, err
	}
	return review, nil
}

// ListReviewsByRecord returns all reviews for a record.
func (s *ReviewService) ListReviewsByRecord(ctx context.Context, recordID int64) ([]domain.Review, error) {
	return s.reviews.ListByRecord(ctx, recordID)
}

// UpdateReview changes rating and comment; author and record never change.
func (s *ReviewService) UpdateReview(ctx context.Context, id int64, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5", nil)
	}

	review, err := s.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}
	review.Rating = rating
	review.Comment = comment

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review.
func (s *ReviewService) DeleteReview(ctx context.Context, id int64) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("review", map[string]any{"id": id})
		}
		return err
	}
	return nil
}
