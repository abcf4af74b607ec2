package domain

import "time"

// PurchaseItem is one line of a completed order.
type PurchaseItem struct {
	RecordID  int64
	Title     string
	Quantity  int
	UnitPrice float64
}

// PurchaseHistory is a completed order.
type PurchaseHistory struct {
	ID          int64
	UserID      int64
	OrderRef    string
	Total       float64
	PurchasedAt time.Time
	Items       []PurchaseItem
}

// AdminDashboardStats aggregates order figures for the admin dashboard.
type AdminDashboardStats struct {
	TotalOrders      int64   `json:"total_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
	OrdersLast30Days int64   `json:"orders_last_30_days"`
}
