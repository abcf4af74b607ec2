package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/record-shop/internal/domain"
	"github.com/spec-kit/record-shop/internal/repository"
	apperrors "github.com/spec-kit/record-shop/pkg/util/errorutil"
)

const (
	couponDiscountPercentage = 30
	couponValidity           = 30 * 24 * time.Hour
	purchasesPerCoupon       = 3
	frequentShopperWindow    = 30 * 24 * time.Hour
)

// CouponService awards and redeems frequent-shopper coupons: every third
// purchase inside a 30-day window earns a 30% discount, at most one valid
// coupon per user at a time.
type CouponService struct {
	coupons   repository.CouponRepository
	purchases repository.PurchaseHistoryRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewCouponService constructs the service.
func NewCouponService(coupons repository.CouponRepository, purchases repository.PurchaseHistoryRepository, logger *zap.Logger) *CouponService {
	return &CouponService{coupons: coupons, purchases: purchases, logger: logger, now: time.Now}
}

// GenerateFrequentShopperCoupon awards a coupon when the user qualifies.
// Returns the new coupon or nil when no coupon was earned.
func (s *CouponService) GenerateFrequentShopperCoupon(ctx context.Context, userID int64) (*domain.Coupon, error) {
	now := s.now()

	hasValid, err := s.coupons.HasValidCoupon(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if hasValid {
		s.logger.Info("user already has a valid coupon", zap.Int64("user_id", userID))
		return nil, nil
	}

	history, err := s.purchases.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	windowStart := now.Add(-frequentShopperWindow)
	recent := 0
	for _, purchase := range history {
		if purchase.PurchasedAt.After(windowStart) {
			recent++
		}
	}
	s.logger.Info("recent purchase count", zap.Int64("user_id", userID), zap.Int("purchases", recent))

	if recent == 0 || recent%purchasesPerCoupon != 0 {
		return nil, nil
	}

	coupon := &domain.Coupon{
		UserID:             userID,
		Code:               newCouponCode(),
		DiscountPercentage: couponDiscountPercentage,
		ValidUntil:         now.Add(couponValidity),
	}
	if err := s.coupons.Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// RedeemCoupon validates a coupon for the user, marks it used and returns the
// discounted total.
func (s *CouponService) RedeemCoupon(ctx context.Context, code string, userID int64, total float64) (float64, error) {
	coupon, err := s.coupons.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFound("coupon", map[string]any{"code": code})
		}
		return 0, err
	}
	if coupon.UserID != userID {
		return 0, apperrors.NewForbidden("coupon belongs to another user")
	}
	if !coupon.ValidAt(s.now()) {
		return 0, apperrors.NewValidationError("coupon expired or already used", nil)
	}

	if err := s.coupons.MarkUsed(ctx, coupon.ID); err != nil {
		return 0, err
	}
	return total * (1 - float64(coupon.DiscountPercentage)/100), nil
}

func newCouponCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "SPIN" + raw[:8]
}
