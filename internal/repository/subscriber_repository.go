package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/record-shop/internal/domain"
)

// SubscriberRepository defines persistence access for mailing-list subscribers.
type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *domain.Subscriber) error
	GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]domain.Subscriber, error)
}

type subscriberRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriberRepository returns a Postgres-backed implementation.
func NewSubscriberRepository(pool *pgxpool.Pool) SubscriberRepository {
	return &subscriberRepository{pool: pool}
}

func (r *subscriberRepository) Create(ctx context.Context, subscriber *domain.Subscriber) error {
	const query = `
        INSERT INTO subscribers (email)
        VALUES ($1)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query, subscriber.Email).
		Scan(&subscriber.ID, &subscriber.CreatedAt)
}

func (r *subscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	const query = `SELECT id, email, created_at FROM subscribers WHERE email=$1`

	var subscriber domain.Subscriber
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&subscriber.ID,
		&subscriber.Email,
		&subscriber.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &subscriber, nil
}

func (r *subscriberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM subscribers WHERE email=$1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *subscriberRepository) List(ctx context.Context) ([]domain.Subscriber, error) {
	const query = `SELECT id, email, created_at FROM subscribers ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subscribers []domain.Subscriber
	for rows.Next() {
		var subscriber domain.Subscriber
		if err := rows.Scan(&subscriber.ID, &subscriber.Email, &subscriber.CreatedAt); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, subscriber)
	}
	return subscribers, rows.Err()
}
