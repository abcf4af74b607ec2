package domain

import "time"

// Coupon is a discount earned by frequent shoppers.
type Coupon struct {
	ID                 int64
	UserID             int64
	Code               string
	DiscountPercentage int
	ValidUntil         time.Time
	Used               bool
	CreatedAt          time.Time
}

// ValidAt reports whether the coupon can be applied at the given time.
func (c *Coupon) ValidAt(now time.Time) bool {
	return !c.Used && now.Before(c.ValidUntil)
}
