package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/record-shop/internal/domain"
)

// CouponRepository defines persistence access for discount coupons.
type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) error
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
	HasValidCoupon(ctx context.Context, userID int64, now time.Time) (bool, error)
	MarkUsed(ctx context.Context, id int64) error
}

type couponRepository struct {
	pool *pgxpool.Pool
}

// NewCouponRepository returns a Postgres-backed implementation.
func NewCouponRepository(pool *pgxpool.Pool) CouponRepository {
	return &couponRepository{pool: pool}
}

func (r *couponRepository) Create(ctx context.Context, coupon *domain.Coupon) error {
	const query = `
        INSERT INTO coupons (user_id, code, discount_percentage, valid_until, used)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		coupon.UserID,
		coupon.Code,
		coupon.DiscountPercentage,
		coupon.ValidUntil,
		coupon.Used,
	).Scan(&coupon.ID, &coupon.CreatedAt)
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	const query = `
        SELECT id, user_id, code, discount_percentage, valid_until, used, created_at
        FROM coupons WHERE code=$1`

	var coupon domain.Coupon
	if err := r.pool.QueryRow(ctx, query, code).Scan(
		&coupon.ID,
		&coupon.UserID,
		&coupon.Code,
		&coupon.DiscountPercentage,
		&coupon.ValidUntil,
		&coupon.Used,
		&coupon.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) HasValidCoupon(ctx context.Context, userID int64, now time.Time) (bool, error) {
	const query = `
        SELECT EXISTS(SELECT 1 FROM coupons WHERE user_id=$1 AND used=FALSE AND valid_until > $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, now).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *couponRepository) MarkUsed(ctx context.Context, id int64) error {
	const query = `UPDATE coupons SET used=TRUE WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
