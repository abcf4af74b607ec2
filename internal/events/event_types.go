package events

import (
	"time"

	"github.com/spec-kit/record-shop/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRecordCreated    EventType = "record_created"
	EventInventoryChanged EventType = "inventory_changed"
	EventOrderPlaced      EventType = "order_placed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RecordCreatedPayload payload.
type RecordCreatedPayload struct {
	RecordID int64   `json:"record_id"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Price    float64 `json:"price"`
	Genre    string  `json:"genre"`
}

// InventoryChangedPayload payload.
type InventoryChangedPayload struct {
	Update domain.InventoryUpdate `json:"update"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	UserID   int64   `json:"user_id"`
	OrderRef string  `json:"order_ref"`
	Total    float64 `json:"total"`
	Items    int     `json:"items"`
}
