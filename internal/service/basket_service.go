package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/record-shop/internal/domain"
	"github.com/spec-kit/record-shop/internal/events"
	"github.com/spec-kit/record-shop/internal/repository"
	apperrors "github.com/spec-kit/record-shop/pkg/util/errorutil"
)

// BasketService coordinates shopping basket workflows. Adding to the basket
// reserves stock immediately: the record quantity is decremented and the
// change is announced on the inventory topic.
type BasketService struct {
	baskets    repository.BasketRepository
	records    repository.RecordRepository
	dispatcher events.Dispatcher
}

// NewBasketService constructs the service.
func NewBasketService(baskets repository.BasketRepository, records repository.RecordRepository, dispatcher events.Dispatcher) *BasketService {
	return &BasketService{baskets: baskets, records: records, dispatcher: dispatcher}
}

// GetBasket returns the user's basket.
func (s *BasketService) GetBasket(ctx context.Context, userID int64) (*domain.Basket, error) {
	basket, err := s.baskets.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NewNotFound("basket", map[string]any{"user_id": userID})
		}
		return nil, err
	}
	return basket, nil
}

// AddToBasket adds quantity of a record, merging with an existing position.
func (s *BasketService) AddToBasket(ctx context.Context, userID, recordID int64, quantity int) error {
	if quantity <= 0 {
		return apperrors.NewValidationError("quantity must be greater than 0", nil)
	}

	basket, err := s.baskets.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			return err
		}
		basket = &domain.Basket{UserID: userID}
	}

	record, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("record", map[string]any{"id": recordID})
		}
		return err
	}

	requested := basket.ItemQuantity(recordID) + quantity
	if record.Quantity < requested {
		return apperrors.NewOutOfStock(record.Title, requested, record.Quantity)
	}

	updated := false
	for i := range basket.Items {
		if basket.Items[i].RecordID == recordID {
			basket.Items[i].Quantity = requested
			updated = true
			break
		}
	}
	if !updated {
		basket.Items = append(basket.Items, domain.BasketItem{RecordID: recordID, Quantity: quantity})
	}

	if err := s.baskets.Save(ctx, basket); err != nil {
		return err
	}

	record.Quantity -= quantity
	if err := s.records.UpdateQuantity(ctx, recordID, record.Quantity); err != nil {
		return err
	}
	s.publishInventoryChanged(ctx, record)
	return nil
}

// UpdateItemQuantity replaces the quantity of an existing basket position.
func (s *BasketService) UpdateItemQuantity(ctx context.Context, userID, recordID int64, quantity int) error {
	if quantity <= 0 {
		return apperrors.NewValidationError("quantity must be greater than 0", nil)
	}

	basket, err := s.GetBasket(ctx, userID)
	if err != nil {
		return err
	}

	found := false
	for i := range basket.Items {
		if basket.Items[i].RecordID == recordID {
			found = true
			record, err := s.records.GetByID(ctx, recordID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return apperrors.NewNotFound("record", map[string]any{"id": recordID})
				}
				return err
			}
			if record.Quantity < quantity {
				return apperrors.NewOutOfStock(record.Title, quantity, record.Quantity)
			}
			basket.Items[i].Quantity = quantity
			break
		}
	}
	if !found {
		return apperrors.NewRecordNotInBasket(recordID, userID)
	}

	return s.baskets.Save(ctx, basket)
}

// RemoveFromBasket drops a record position from the basket.
func (s *BasketService) RemoveFromBasket(ctx context.Context, userID, recordID int64) error {
	basket, err := s.GetBasket(ctx, userID)
	if err != nil {
		return err
	}

	items := basket.Items[:0]
	removed := false
	for _, item := range basket.Items {
		if item.RecordID == recordID {
			removed = true
			continue
		}
		items = append(items, item)
	}
	if !removed {
		return apperrors.NewRecordNotInBasket(recordID, userID)
	}
	basket.Items = items

	return s.baskets.Save(ctx, basket)
}

// ClearBasket empties the user's basket. Clearing an absent basket is fine.
func (s *BasketService) ClearBasket(ctx context.Context, userID int64) error {
	return s.baskets.Delete(ctx, userID)
}

func (s *BasketService) publishInventoryChanged(ctx context.Context, record *domain.Record) {
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventInventoryChanged,
		Timestamp: time.Now(),
		Payload: events.InventoryChangedPayload{
			Update: domain.InventoryUpdate{
				RecordID: record.ID,
				Title:    record.Title,
				Quantity: record.Quantity,
			},
		},
	})
}
