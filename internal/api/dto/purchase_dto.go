package dto

import (
	"time"

	"github.com/spec-kit/record-shop/internal/domain"
)

// PurchaseItemResponse is one line of an order.
type PurchaseItemResponse struct {
	RecordID  int64   `json:"record_id"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// PurchaseResponse describes a completed order.
type PurchaseResponse struct {
	ID          int64                  `json:"id"`
	OrderRef    string                 `json:"order_ref"`
	Total       float64                `json:"total"`
	PurchasedAt time.Time              `json:"purchased_at"`
	Items       []PurchaseItemResponse `json:"items"`
}

// NewPurchaseResponse maps a domain purchase.
func NewPurchaseResponse(purchase *domain.PurchaseHistory) PurchaseResponse {
	items := make([]PurchaseItemResponse, 0, len(purchase.Items))
	for _, item := range purchase.Items {
		items = append(items, PurchaseItemResponse{
			RecordID:  item.RecordID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return PurchaseResponse{
		ID:          purchase.ID,
		OrderRef:    purchase.OrderRef,
		Total:       purchase.Total,
		PurchasedAt: purchase.PurchasedAt,
		Items:       items,
	}
}

// NewPurchaseResponses maps a slice of domain purchases.
func NewPurchaseResponses(purchases []domain.PurchaseHistory) []PurchaseResponse {
	responses := make([]PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		responses = append(responses, NewPurchaseResponse(&purchases[i]))
	}
	return responses
}
