package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidStatusTransition = errors.New("invalid order status transition")

type Order struct {
	ID             uuid.UUID
	Location       Location
	Status         OrderStatus
	OrderedDate    time.Time
	LineItems      []LineItem
	Version        int64
	PreparingSince *time.Time
}

type LineItem struct {
	DrinkID uuid.UUID
	Name    string
	Price   Money
}

func NewLineItem(drink Drink) LineItem {
	return LineItem{
		DrinkID: drink.ID,
		Name:    drink.Name,
		Price:   drink.Price,
	}
}

func (o Order) Price() Money {
	total := Money{Currency: DefaultCurrency}
	for _, item := range o.LineItems {
		total = total.Add(item.Price)
	}
	return total
}

func (o Order) IsPaid() bool {
	return o.Status != OrderPaymentExpected
}

func (o Order) IsReady() bool {
	return o.Status == OrderReady
}

func (o Order) IsTaken() bool {
	return o.Status == OrderTaken
}

// TransitionTo moves the order forward along the lifecycle.
func (o *Order) TransitionTo(next OrderStatus) error {
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, o.Status, next)
	}
	o.Status = next
	return nil
}

type OrderStatus string

const (
	OrderPaymentExpected OrderStatus = "Payment expected"
	OrderPaid            OrderStatus = "Paid"
	OrderPreparing       OrderStatus = "Preparing"
	OrderReady           OrderStatus = "Ready"
	OrderTaken           OrderStatus = "Delivered"
)

var orderTransitions = map[OrderStatus]OrderStatus{
	OrderPaymentExpected: OrderPaid,
	OrderPaid:            OrderPreparing,
	OrderPreparing:       OrderReady,
	OrderReady:           OrderTaken,
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	allowed, ok := orderTransitions[s]
	return ok && allowed == next
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPaymentExpected, OrderPaid, OrderPreparing, OrderReady, OrderTaken:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

type Location string

const (
	LocationTakeAway Location = "To go"
	LocationInStore  Location = "In store"
)

var Locations = []Location{LocationTakeAway, LocationInStore}

func (l Location) IsValid() bool {
	return l == LocationTakeAway || l == LocationInStore
}

func (l Location) String() string {
	return string(l)
}

type OrderCreate struct {
	Location Location
	DrinkIDs []uuid.UUID
}

// OrderModify carries a partial update. A nil field is left untouched.
type OrderModify struct {
	ID       uuid.UUID
	Location *Location
	DrinkIDs []uuid.UUID
}
