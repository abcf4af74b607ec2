package dto

import (
	"time"

	"github.com/spec-kit/record-shop/internal/domain"
)

// RecordRequest payload for creating or updating records.
type RecordRequest struct {
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	GenreID  int64   `json:"genre_id"`
}

// RecordResponse describes a catalog record.
type RecordResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	GenreID   int64     `json:"genre_id"`
	Genre     string    `json:"genre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRecordResponse maps a domain record.
func NewRecordResponse(record *domain.Record) RecordResponse {
	return RecordResponse{
		ID:        record.ID,
		Title:     record.Title,
		Artist:    record.Artist,
		Price:     record.Price,
		Quantity:  record.Quantity,
		GenreID:   record.GenreID,
		Genre:     record.GenreName,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// NewRecordResponses maps a slice of domain records.
func NewRecordResponses(records []domain.Record) []RecordResponse {
	responses := make([]RecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, NewRecordResponse(&records[i]))
	}
	return responses
}
