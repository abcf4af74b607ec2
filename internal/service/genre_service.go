package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/record-shop/internal/domain"
	"github.com/spec-kit/record-shop/internal/repository"
	apperrors "github.com/spec-kit/record-shop/pkg/util/errorutil"
)

// GenreService serves the fixed genre vocabulary.
type GenreService struct {
	genres repository.GenreRepository
}

// NewGenreService builds the service.
func NewGenreService(genres repository.GenreRepository) *GenreService {
	return &GenreService{genres: genres}
}

// Seed inserts the default genres on first start. Idempotent.
func (s *GenreService) Seed(ctx context.Context) error {
	seeded, err := s.genres.ExistsAny(ctx)
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	for _, name := range domain.DefaultGenres {
		exists, err := s.genres.ExistsByName(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := s.genres.Create(ctx, &domain.Genre{Name: name}); err != nil {
			return err
		}
	}
	return nil
}

// GetGenre returns one genre by id.
func (s *GenreService) GetGenre(ctx context.Context, id int64) (*domain.Genre, error) {
	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("genre", map[string]any{"id": id})
		}
		return nil, err
	}
	return genre, nil
}

// ListGenres returns all genres.
func (s *GenreService) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	return s.genres.List(ctx)
}
