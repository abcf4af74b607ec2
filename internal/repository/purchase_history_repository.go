package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/record-shop/internal/domain"
)

// PurchaseHistoryRepository defines persistence access for completed orders.
type PurchaseHistoryRepository interface {
	Create(ctx context.Context, purchase *domain.PurchaseHistory) error
	ListByUser(ctx context.Context, userID int64) ([]domain.PurchaseHistory, error)
	Search(ctx context.Context, term string) ([]domain.PurchaseHistory, error)
	Stats(ctx context.Context, recentSince time.Time) (*domain.AdminDashboardStats, error)
}

type purchaseHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewPurchaseHistoryRepository returns a Postgres-backed implementation.
func NewPurchaseHistoryRepository(pool *pgxpool.Pool) PurchaseHistoryRepository {
	return &purchaseHistoryRepository{pool: pool}
}

func (r *purchaseHistoryRepository) Create(ctx context.Context, purchase *domain.PurchaseHistory) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const orderQuery = `
        INSERT INTO purchase_histories (user_id, order_ref, total)
        VALUES ($1, $2, $3)
        RETURNING id, purchased_at`

	if err := tx.QueryRow(ctx, orderQuery,
		purchase.UserID,
		purchase.OrderRef,
		purchase.Total,
	).Scan(&purchase.ID, &purchase.PurchasedAt); err != nil {
		return err
	}

	const itemQuery = `
        INSERT INTO purchase_items (purchase_id, record_id, title, quantity, unit_price)
        VALUES ($1, $2, $3, $4, $5)`

	for _, item := range purchase.Items {
		if _, err := tx.Exec(ctx, itemQuery,
			purchase.ID,
			item.RecordID,
			item.Title,
			item.Quantity,
			item.UnitPrice,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *purchaseHistoryRepository) ListByUser(ctx context.Context, userID int64) ([]domain.PurchaseHistory, error) {
	const query = `
        SELECT id, user_id, order_ref, total, purchased_at
        FROM purchase_histories WHERE user_id=$1 ORDER BY purchased_at DESC`

	return r.queryPurchases(ctx, query, userID)
}

func (r *purchaseHistoryRepository) Search(ctx context.Context, term string) ([]domain.PurchaseHistory, error) {
	const query = `
        SELECT DISTINCT p.id, p.user_id, p.order_ref, p.total, p.purchased_at
        FROM purchase_histories p
        JOIN purchase_items i ON i.purchase_id = p.id
        WHERE p.order_ref ILIKE '%' || $1 || '%' OR i.title ILIKE '%' || $1 || '%'
        ORDER BY p.purchased_at DESC`

	return r.queryPurchases(ctx, query, term)
}

func (r *purchaseHistoryRepository) Stats(ctx context.Context, recentSince time.Time) (*domain.AdminDashboardStats, error) {
	const query = `
        SELECT COUNT(*),
               COALESCE(SUM(total), 0),
               COUNT(*) FILTER (WHERE purchased_at >= $1)
        FROM purchase_histories`

	var stats domain.AdminDashboardStats
	if err := r.pool.QueryRow(ctx, query, recentSince).Scan(
		&stats.TotalOrders,
		&stats.TotalRevenue,
		&stats.OrdersLast30Days,
	); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *purchaseHistoryRepository) queryPurchases(ctx context.Context, query string, args ...any) ([]domain.PurchaseHistory, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.PurchaseHistory
	for rows.Next() {
		var purchase domain.PurchaseHistory
		if err := rows.Scan(
			&purchase.ID,
			&purchase.UserID,
			&purchase.OrderRef,
			&purchase.Total,
			&purchase.PurchasedAt,
		); err != nil {
			return nil, err
		}
		purchases = append(purchases, purchase)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range purchases {
		items, err := r.itemsForPurchase(ctx, purchases[i].ID)
		if err != nil {
			return nil, err
		}
		purchases[i].Items = items
	}
	return purchases, nil
}

func (r *purchaseHistoryRepository) itemsForPurchase(ctx context.Context, purchaseID int64) ([]domain.PurchaseItem, error) {
	const query = `
        SELECT record_id, title, quantity, unit_price
        FROM purchase_items WHERE purchase_id=$1 ORDER BY record_id`

	rows, err := r.pool.Query(ctx, query, purchaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.PurchaseItem
	for rows.Next() {
		var item domain.PurchaseItem
		if err := rows.Scan(&item.RecordID, &item.Title, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
