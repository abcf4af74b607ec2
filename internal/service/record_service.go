package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/record-shop/internal/domain"
	"github.com/spec-kit/record-shop/internal/events"
	"github.com/spec-kit/record-shop/internal/repository"
	apperrors "github.com/spec-kit/record-shop/pkg/util/errorutil"
)

// RecordService coordinates catalog workflows.
type RecordService struct {
	records    repository.RecordRepository
	genres     repository.GenreRepository
	dispatcher events.Dispatcher
}

// RecordInput describes record creation/update payload.
type RecordInput struct {
	Title    string
	Artist   string
	Price    float64
	Quantity int
	GenreID  int64
}

// NewRecordService constructs the service.
func NewRecordService(records repository.RecordRepository, genres repository.GenreRepository, dispatcher events.Dispatcher) *RecordService {
	return &RecordService{records: records, genres: genres, dispatcher: dispatcher}
}

// CreateRecord adds a record to the catalog and announces the new release.
func (s *RecordService) CreateRecord(ctx context.Context, input RecordInput) (*domain.Record, error) {
	if err := validateRecordInput(input); err != nil {
		return nil, err
	}

	genre, err := s.genres.GetByID(ctx, input.GenreID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("genre", map[string]any{"id": input.GenreID})
		}
		return nil, err
	}

	record := &domain.Record{
		Title:     input.Title,
		Artist:    input.Artist,
		Price:     input.Price,
		Quantity:  input.Quantity,
		GenreID:   genre.ID,
		GenreName: genre.Name,
	}
	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventRecordCreated,
		Timestamp: time.Now(),
		Payload: events.RecordCreatedPayload{
			RecordID: record.ID,
			Title:    record.Title,
			Artist:   record.Artist,
			Price:    record.Price,
			Genre:    record.GenreName,
		},
	})
	s.publishInventoryChanged(ctx, record)

	return record, nil
}

// UpdateRecord modifies an existing record.
func (s *RecordService) UpdateRecord(ctx context.Context, id int64, input RecordInput) (*domain.Record, error) {
	if err := validateRecordInput(input); err != nil {
		return nil, err
	}

	record, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	genre, err := s.genres.GetByID(ctx, input.GenreID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("genre", map[string]any{"id": input.GenreID})
		}
		return nil, err
	}

	record.Title = input.Title
	record.Artist = input.Artist
	record.Price = input.Price
	record.Quantity = input.Quantity
	record.GenreID = genre.ID
	record.GenreName = genre.Name

	if err := s.records.Update(ctx, record); err != nil {
		return nil, err
	}
	s.publishInventoryChanged(ctx, record)
	return record, nil
}

// DeleteRecord removes a record from the catalog.
func (s *RecordService) DeleteRecord(ctx context.Context, id int64) error {
	if err := s.records.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("record", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

// GetRecord returns one record by id.
func (s *RecordService) GetRecord(ctx context.Context, id int64) (*domain.Record, error) {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("record", map[string]any{"id": id})
		}
		return nil, err
	}
	return record, nil
}

// ListRecords returns the full catalog.
func (s *RecordService) ListRecords(ctx context.Context) ([]domain.Record, error) {
	return s.records.List(ctx)
}

// SetQuantity updates stock and announces the change.
func (s *RecordService) SetQuantity(ctx context.Context, id int64, quantity int) error {
	if quantity < 0 {
		return apperrors.NewValidationError("quantity must not be negative", nil)
	}

	record, err := s.GetRecord(ctx, id)
	if err != nil {
		return err
	}
	if err := s.records.UpdateQuantity(ctx, id, quantity); err != nil {
		return err
	}
	record.Quantity = quantity
	s.publishInventoryChanged(ctx, record)
	return nil
}

func (s *RecordService) publishInventoryChanged(ctx context.Context, record *domain.Record) {
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventInventoryChanged,
		Timestamp: time.Now(),
		Payload: events.InventoryChangedPayload{
			Update: domain.InventoryUpdate{
				RecordID: record.ID,
				Title:    record.Title,
				Quantity: record.Quantity,
			},
		},
	})
}

func validateRecordInput(input RecordInput) error {
	if input.Title == "" || input.Artist == "" {
		return apperrors.NewValidationError("title and artist required", nil)
	}
	if input.Price < 0 {
		return apperrors.NewValidationError("price must not be negative", nil)
	}
	if input.Quantity < 0 {
		return apperrors.NewValidationError("quantity must not be negative", nil)
	}
	return nil
}
