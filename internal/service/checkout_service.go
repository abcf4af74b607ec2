package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/record-shop/internal/domain"
	"github.com/spec-kit/record-shop/internal/events"
	"github.com/spec-kit/record-shop/internal/repository"
	apperrors "github.com/spec-kit/record-shop/pkg/util/errorutil"
)

// CheckoutService turns a basket into a completed order: totals the items,
// applies an optional coupon, charges the gateway, records the purchase and
// clears the basket.
type CheckoutService struct {
	baskets    repository.BasketRepository
	records    repository.RecordRepository
	purchases  repository.PurchaseHistoryRepository
	coupons    *CouponService
	gateway    PaymentGateway
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// CheckoutDependencies bundles collaborators for checkout.
type CheckoutDependencies struct {
	BasketRepo   repository.BasketRepository
	RecordRepo   repository.RecordRepository
	PurchaseRepo repository.PurchaseHistoryRepository
	Coupons      *CouponService
	Gateway      PaymentGateway
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewCheckoutService constructs the service.
func NewCheckoutService(deps CheckoutDependencies) *CheckoutService {
	return &CheckoutService{
		baskets:    deps.BasketRepo,
		records:    deps.RecordRepo,
		purchases:  deps.PurchaseRepo,
		coupons:    deps.Coupons,
		gateway:    deps.Gateway,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Checkout completes the user's basket. An empty or missing basket is a
// validation failure, not a charge.
func (s *CheckoutService) Checkout(ctx context.Context, userID int64, couponCode string) (*domain.PurchaseHistory, error) {
	basket, err := s.baskets.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBasketNotFound) {
			return nil, apperrors.NewValidationError("basket is empty", nil)
		}
		return nil, err
	}
	if len(basket.Items) == 0 {
		return nil, apperrors.NewValidationError("basket is empty", nil)
	}

	items := make([]domain.PurchaseItem, 0, len(basket.Items))
	total := 0.0
	for _, basketItem := range basket.Items {
		record, err := s.records.GetByID(ctx, basketItem.RecordID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("record", map[string]any{"id": basketItem.RecordID})
			}
			return nil, err
		}
		items = append(items, domain.PurchaseItem{
			RecordID:  record.ID,
			Title:     record.Title,
			Quantity:  basketItem.Quantity,
			UnitPrice: record.Price,
		})
		total += record.Price * float64(basketItem.Quantity)
	}

	if couponCode != "" {
		discounted, err := s.coupons.RedeemCoupon(ctx, couponCode, userID, total)
		if err != nil {
			return nil, err
		}
		total = discounted
	}

	orderRef := uuid.NewString()
	if err := s.gateway.Charge(ctx, userID, total, orderRef); err != nil {
		return nil, apperrors.NewDomainError("CHECKOUT_FAILED", "payment was declined", 402, nil)
	}

	purchase := &domain.PurchaseHistory{
		UserID:   userID,
		OrderRef: orderRef,
		Total:    total,
		Items:    items,
	}
	if err := s.purchases.Create(ctx, purchase); err != nil {
		return nil, err
	}

	if err := s.baskets.Delete(ctx, userID); err != nil {
		s.logger.Warn("failed to clear basket after checkout", zap.Int64("user_id", userID), zap.Error(err))
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventOrderPlaced,
		Timestamp: time.Now(),
		Payload: events.OrderPlacedPayload{
			UserID:   userID,
			OrderRef: orderRef,
			Total:    total,
			Items:    len(items),
		},
	})

	// Best-effort loyalty check; a failed coupon award never fails the order.
	if _, err := s.coupons.GenerateFrequentShopperCoupon(ctx, userID); err != nil {
		s.logger.Warn("coupon generation failed", zap.Int64("user_id", userID), zap.Error(err))
	}

	return purchase, nil
}
