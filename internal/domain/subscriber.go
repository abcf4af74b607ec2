package domain

import "time"

// Subscriber is a mailing-list member notified about new releases.
type Subscriber struct {
	ID        int64
	Email     string
	CreatedAt time.Time
}
