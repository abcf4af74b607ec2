package domain

import "time"

// Record is a vinyl record in the catalog.
type Record struct {
	ID        int64
	Title     string
	Artist    string
	Price     float64
	Quantity  int
	GenreID   int64
	GenreName string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InventoryUpdate describes a stock change pushed to dashboard watchers.
type InventoryUpdate struct {
	RecordID int64  `json:"record_id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}
