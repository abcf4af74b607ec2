package domain

// BasketItem is a single record position in a basket.
type BasketItem struct {
	RecordID int64 `json:"record_id"`
	Quantity int   `json:"quantity"`
}

// Basket holds the current shopping basket for a user.
type Basket struct {
	UserID int64
	Items  []BasketItem
}

// ItemQuantity returns the quantity for a record, zero when absent.
func (b *Basket) ItemQuantity(recordID int64) int {
	for _, item := range b.Items {
		if item.RecordID == recordID {
			return item.Quantity
		}
	}
	return 0
}
