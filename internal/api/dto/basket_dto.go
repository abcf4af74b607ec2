package dto

import "github.com/spec-kit/record-shop/internal/domain"

// AddToBasketRequest payload for adding a record.
type AddToBasketRequest struct {
	RecordID int64 `json:"record_id"`
	Quantity int   `json:"quantity"`
}

// UpdateBasketItemRequest payload for changing a position quantity.
type UpdateBasketItemRequest struct {
	Quantity int `json:"quantity"`
}

// BasketResponse describes the current basket.
type BasketResponse struct {
	UserID int64               `json:"user_id"`
	Items  []domain.BasketItem `json:"items"`
}

// CheckoutRequest payload for completing the basket.
type CheckoutRequest struct {
	CouponCode string `json:"coupon_code,omitempty"`
}
