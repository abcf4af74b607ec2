package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/record-shop/internal/domain"
)

// ErrBasketNotFound is returned when a user has no stored basket.
var ErrBasketNotFound = redis.Nil

// BasketRepository defines storage for shopping baskets. Baskets are
// ephemeral session state, so they live in Redis rather than Postgres.
type BasketRepository interface {
	Get(ctx context.Context, userID int64) (*domain.Basket, error)
	Save(ctx context.Context, basket *domain.Basket) error
	Delete(ctx context.Context, userID int64) error
}

type basketRepository struct {
	client *redis.Client
}

// NewBasketRepository returns a Redis-backed implementation.
func NewBasketRepository(client *redis.Client) BasketRepository {
	return &basketRepository{client: client}
}

func basketKey(userID int64) string {
	return fmt.Sprintf("basket:%d", userID)
}

func (r *basketRepository) Get(ctx context.Context, userID int64) (*domain.Basket, error) {
	raw, err := r.client.Get(ctx, basketKey(userID)).Bytes()
	if err != nil {
		return nil, err
	}

	var items []domain.BasketItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return &domain.Basket{UserID: userID, Items: items}, nil
}

func (r *basketRepository) Save(ctx context.Context, basket *domain.Basket) error {
	raw, err := json.Marshal(basket.Items)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, basketKey(basket.UserID), raw, 0).Err()
}

func (r *basketRepository) Delete(ctx context.Context, userID int64) error {
	return r.client.Del(ctx, basketKey(userID)).Err()
}
