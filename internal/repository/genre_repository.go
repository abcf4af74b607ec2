package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/record-shop/internal/domain"
)

// GenreRepository defines persistence access for genres.
type GenreRepository interface {
	Create(ctx context.Context, genre *domain.Genre) error
	GetByID(ctx context.Context, id int64) (*domain.Genre, error)
	List(ctx context.Context) ([]domain.Genre, error)
	ExistsAny(ctx context.Context) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type genreRepository struct {
	pool *pgxpool.Pool
}

// NewGenreRepository returns a Postgres-backed implementation.
func NewGenreRepository(pool *pgxpool.Pool) GenreRepository {
	return &genreRepository{pool: pool}
}

func (r *genreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	const query = `INSERT INTO genres (name) VALUES ($1) RETURNING id`

	return r.pool.QueryRow(ctx, query, genre.Name).Scan(&genre.ID)
}

func (r *genreRepository) GetByID(ctx context.Context, id int64) (*domain.Genre, error) {
	const query = `SELECT id, name FROM genres WHERE id=$1`

	var genre domain.Genre
	if err := r.pool.QueryRow(ctx, query, id).Scan(&genre.ID, &genre.Name); err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) List(ctx context.Context) ([]domain.Genre, error) {
	const query = `SELECT id, name FROM genres ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []domain.Genre
	for rows.Next() {
		var genre domain.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	return genres, rows.Err()
}

func (r *genreRepository) ExistsAny(ctx context.Context) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM genres)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *genreRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM genres WHERE name=$1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
