package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/record-shop/internal/domain"
)

// RecordRepository defines persistence access for catalog records.
type RecordRepository interface {
	Create(ctx context.Context, record *domain.Record) error
	Update(ctx context.Context, record *domain.Record) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Record, error)
	List(ctx context.Context) ([]domain.Record, error)
	Search(ctx context.Context, term string) ([]domain.Record, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
}

type recordRepository struct {
	pool *pgxpool.Pool
}

// NewRecordRepository returns a Postgres-backed implementation.
func NewRecordRepository(pool *pgxpool.Pool) RecordRepository {
	return &recordRepository{pool: pool}
}

const recordColumns = `
        r.id, r.title, r.artist, r.price, r.quantity, r.genre_id, g.name,
        r.created_at, r.updated_at`

func (r *recordRepository) Create(ctx context.Context, record *domain.Record) error {
	const query = `
        INSERT INTO records (title, artist, price, quantity, genre_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		record.Title,
		record.Artist,
		record.Price,
		record.Quantity,
		record.GenreID,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
}

func (r *recordRepository) Update(ctx context.Context, record *domain.Record) error {
	const query = `
        UPDATE records SET title=$1, artist=$2, price=$3, quantity=$4, genre_id=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		record.Title,
		record.Artist,
		record.Price,
		record.Quantity,
		record.GenreID,
		record.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *recordRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM records WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *recordRepository) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	const query = `
        SELECT` + recordColumns + `
        FROM records r JOIN genres g ON g.id = r.genre_id
        WHERE r.id=$1`

	var record domain.Record
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.Title,
		&record.Artist,
		&record.Price,
		&record.Quantity,
		&record.GenreID,
		&record.GenreName,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *recordRepository) List(ctx context.Context) ([]domain.Record, error) {
	const query = `
        SELECT` + recordColumns + `
        FROM records r JOIN genres g ON g.id = r.genre_id
        ORDER BY r.id`

	return r.queryRecords(ctx, query)
}

func (r *recordRepository) Search(ctx context.Context, term string) ([]domain.Record, error) {
	const query = `
        SELECT` + recordColumns + `
        FROM records r JOIN genres g ON g.id = r.genre_id
        WHERE r.title ILIKE '%' || $1 || '%' OR r.artist ILIKE '%' || $1 || '%'
        ORDER BY r.id`

	return r.queryRecords(ctx, query, term)
}

func (r *recordRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	const query = `UPDATE records SET quantity=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, quantity, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *recordRepository) queryRecords(ctx context.Context, query string, args ...any) ([]domain.Record, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var record domain.Record
		if err := rows.Scan(
			&record.ID,
			&record.Title,
			&record.Artist,
			&record.Price,
			&record.Quantity,
			&record.GenreID,
			&record.GenreName,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
