package service

import (
	"context"

	"go.uber.org/zap"
)

// PaymentGateway charges a customer during checkout.
type PaymentGateway interface {
	Charge(ctx context.Context, userID int64, amount float64, orderRef string) error
}

// mockPaymentGateway approves every charge. Used until a real processor is
// wired in; the checkout flow only depends on the interface.
type mockPaymentGateway struct {
	logger *zap.Logger
}

// NewMockPaymentGateway builds the always-approving gateway.
func NewMockPaymentGateway(logger *zap.Logger) PaymentGateway {
	return &mockPaymentGateway{logger: logger}
}

func (g *mockPaymentGateway) Charge(ctx context.Context, userID int64, amount float64, orderRef string) error {
	g.logger.Info("mock payment approved",
		zap.Int64("user_id", userID),
		zap.Float64("amount", amount),
		zap.String("order_ref", orderRef))
	return nil
}
