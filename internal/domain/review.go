package domain

import "time"

// Review is a user rating for a record. One review per (user, record).
type Review struct {
	ID        int64
	UserID    int64
	RecordID  int64
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
