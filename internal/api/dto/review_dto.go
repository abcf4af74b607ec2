package dto

import (
	"time"

	"github.com/spec-kit/record-shop/internal/domain"
)

// CreateReviewRequest payload for new reviews.
type CreateReviewRequest struct {
	RecordID int64  `json:"record_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// UpdateReviewRequest payload for editing a review.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewResponse describes a review.
type ReviewResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	RecordID  int64     `json:"record_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewReviewResponse maps a domain review.
func NewReviewResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		RecordID:  review.RecordID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}
