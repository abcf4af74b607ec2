package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/record-shop/internal/domain"
	"github.com/spec-kit/record-shop/internal/events"
)

func newCheckoutFixture(t *testing.T) (*CheckoutService, *fakeBasketRepo, *fakeRecordRepo, *fakePurchaseRepo, *fakeCouponRepo) {
	t.Helper()

	baskets := newFakeBasketRepo()
	records := newFakeRecordRepo()
	purchases := newFakePurchaseRepo()
	coupons := newFakeCouponRepo()
	logger := zap.NewNop()

	svc := NewCheckoutService(CheckoutDependencies{
		BasketRepo:   baskets,
		RecordRepo:   records,
		PurchaseRepo: purchases,
		Coupons:      NewCouponService(coupons, purchases, logger),
		Gateway:      NewMockPaymentGateway(logger),
		Dispatcher:   events.NewInMemoryDispatcher(),
		Logger:       logger,
	})
	return svc, baskets, records, purchases, coupons
}

func TestCheckoutCompletesOrder(t *testing.T) {
	svc, baskets, records, purchases, _ := newCheckoutFixture(t)

	record := seedRecord(t, records, "Rumours", 10)
	require.NoError(t, baskets.Save(context.Background(), &domain.Basket{
		UserID: 1,
		Items:  []domain.BasketItem{{RecordID: record.ID, Quantity: 2}},
	}))

	purchase, err := svc.Checkout(context.Background(), 1, "")
	require.NoError(t, err)
	assert.NotEmpty(t, purchase.OrderRef)
	assert.InDelta(t, 2*19.99, purchase.Total, 0.001)
	require.Len(t, purchase.Items, 1)
	assert.Equal(t, "Rumours", purchase.Items[0].Title)
	assert.Equal(t, 2, purchase.Items[0].Quantity)

	// Basket cleared and order recorded.
	_, err = baskets.Get(context.Background(), 1)
	assert.Error(t, err)
	history, err := purchases.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestCheckoutEmptyBasket(t *testing.T) {
	svc, baskets, _, _, _ := newCheckoutFixture(t)

	// No basket at all.
	_, err := svc.Checkout(context.Background(), 1, "")
	assertErrorCode(t, err, "VALIDATION_FAILED")

	// Present but empty.
	require.NoError(t, baskets.Save(context.Background(), &domain.Basket{UserID: 2}))
	_, err = svc.Checkout(context.Background(), 2, "")
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestCheckoutAppliesCoupon(t *testing.T) {
	svc, baskets, records, _, coupons := newCheckoutFixture(t)

	record := seedRecord(t, records, "Thriller", 10)
	require.NoError(t, baskets.Save(context.Background(), &domain.Basket{
		UserID: 1,
		Items:  []domain.BasketItem{{RecordID: record.ID, Quantity: 5}},
	}))
	require.NoError(t, coupons.Create(context.Background(), &domain.Coupon{
		UserID:             1,
		Code:               "SPINAAAA1111",
		DiscountPercentage: 30,
		ValidUntil:         time.Now().Add(24 * time.Hour),
	}))

	purchase, err := svc.Checkout(context.Background(), 1, "SPINAAAA1111")
	require.NoError(t, err)
	assert.InDelta(t, 5*19.99*0.7, purchase.Total, 0.001)
}

func TestCheckoutRejectsInvalidCoupon(t *testing.T) {
	svc, baskets, records, purchases, _ := newCheckoutFixture(t)

	record := seedRecord(t, records, "Graceland", 10)
	require.NoError(t, baskets.Save(context.Background(), &domain.Basket{
		UserID: 1,
		Items:  []domain.BasketItem{{RecordID: record.ID, Quantity: 1}},
	}))

	_, err := svc.Checkout(context.Background(), 1, "SPINUNKNOWN0")
	assertErrorCode(t, err, "NOT_FOUND")

	// Nothing charged, basket untouched.
	history, err := purchases.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, history)
	basket, err := baskets.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, basket.Items, 1)
}

func TestCheckoutAwardsCouponOnThirdOrder(t *testing.T) {
	svc, baskets, records, _, coupons := newCheckoutFixture(t)

	record := seedRecord(t, records, "Back in Black", 100)
	for i := 0; i < 3; i++ {
		require.NoError(t, baskets.Save(context.Background(), &domain.Basket{
			UserID: 1,
			Items:  []domain.BasketItem{{RecordID: record.ID, Quantity: 1}},
		}))
		_, err := svc.Checkout(context.Background(), 1, "")
		require.NoError(t, err)
	}

	has, err := coupons.HasValidCoupon(context.Background(), 1, time.Now())
	require.NoError(t, err)
	assert.True(t, has)
}
