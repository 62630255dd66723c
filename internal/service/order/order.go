package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"restbucks/internal/entities"
)

type Order struct {
	repository   Repository
	drinkCatalog DrinkCatalog
	txManager    TxManager
}

func New(repository Repository, drinkCatalog DrinkCatalog, txManager TxManager) *Order {
	return &Order{
		repository:   repository,
		drinkCatalog: drinkCatalog,
		txManager:    txManager,
	}
}

func (s *Order) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	if !isValidLocation(orderCreate.Location) {
		return nil, ErrInvalidLocation
	}
	if !hasDrinks(orderCreate.DrinkIDs) {
		return nil, ErrMissingDrinks
	}

	order := entities.Order{
		ID:          uuid.New(),
		Location:    orderCreate.Location,
		Status:      entities.OrderPaymentExpected,
		OrderedDate: time.Now().UTC(),
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		lineItems, err := s.lineItems(ctx, orderCreate.DrinkIDs)
		if err != nil {
			return err
		}
		order.LineItems = lineItems

		if err := s.repository.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (s *Order) GetOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *Order) GetOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return orders, nil
}

// UpdateOrder changes location and drinks of an order that is still awaiting payment. An
// empty modification still fails for orders that can no longer be changed.
func (s *Order) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.Location != nil && !isValidLocation(*orderModify.Location) {
		return nil, ErrInvalidLocation
	}
	if orderModify.DrinkIDs != nil && !hasDrinks(orderModify.DrinkIDs) {
		return nil, ErrMissingDrinks
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, orderModify.ID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if !isModifiable(order) {
			return ErrOrderNotModifiable
		}
		if !hasChanges(orderModify) {
			updated = order
			return nil
		}

		if orderModify.Location != nil {
			order.Location = *orderModify.Location
		}
		if orderModify.DrinkIDs != nil {
			lineItems, err := s.lineItems(ctx, orderModify.DrinkIDs)
			if err != nil {
				return err
			}
			order.LineItems = lineItems
		}

		updated, err = s.repository.Update(ctx, *order)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CancelOrder removes an order the customer has not paid for yet.
func (s *Order) CancelOrder(ctx context.Context, id uuid.UUID) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if !isModifiable(order) {
			return ErrOrderNotModifiable
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
}

func (s *Order) lineItems(ctx context.Context, drinkIDs []uuid.UUID) ([]entities.LineItem, error) {
	lineItems := make([]entities.LineItem, 0, len(drinkIDs))
	for _, id := range drinkIDs {
		if id == uuid.Nil {
			return nil, fmt.Errorf("resolve drink %s: %w", id, ErrDrinkNotFound)
		}

		drink, err := s.drinkCatalog.GetDrink(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve drink %s: %w", id, err)
		}
		lineItems = append(lineItems, entities.NewLineItem(*drink))
	}
	return lineItems, nil
}
