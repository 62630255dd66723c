package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"restbucks/internal/entities"
	"restbucks/internal/service/drink"
	"restbucks/internal/service/order"
	"restbucks/internal/service/payment"
)

type DrinkRepository struct {
	store *Store
}

func NewDrinkRepository(store *Store) *DrinkRepository {
	return &DrinkRepository{store: store}
}

func (r *DrinkRepository) GetByID(_ context.Context, id uuid.UUID) (*entities.Drink, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	d, ok := r.store.drinks[id]
	if !ok {
		return nil, drink.ErrDrinkNotFound
	}
	return &d, nil
}

func (r *DrinkRepository) GetAll(ctx context.Context) ([]entities.Drink, error) {
	return r.FindByNamePrefix(ctx, "")
}

func (r *DrinkRepository) FindByNamePrefix(_ context.Context, prefix string) ([]entities.Drink, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	prefix = strings.ToLower(prefix)
	drinks := make([]entities.Drink, 0, len(r.store.drinks))
	for _, d := range r.store.drinks {
		if strings.HasPrefix(strings.ToLower(d.Name), prefix) {
			drinks = append(drinks, d)
		}
	}

	slices.SortFunc(drinks, func(a, b entities.Drink) int {
		return strings.Compare(a.Name, b.Name)
	})
	return drinks, nil
}

type OrderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) Create(_ context.Context, o entities.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.orders[o.ID] = cloneOrder(o)
	return nil
}

func (r *OrderRepository) GetByID(_ context.Context, id uuid.UUID) (*entities.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	o, ok := r.store.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	o = cloneOrder(o)
	return &o, nil
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]entities.Order, error) {
	return r.filter(func(entities.Order) bool { return true }), nil
}

func (r *OrderRepository) GetByStatus(_ context.Context, statuses ...entities.OrderStatus) ([]entities.Order, error) {
	return r.filter(func(o entities.Order) bool {
		return slices.Contains(statuses, o.Status)
	}), nil
}

// Update applies the same optimistic version check as the postgres repository.
func (r *OrderRepository) Update(_ context.Context, o entities.Order) (*entities.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.orders[o.ID]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	if stored.Version != o.Version {
		return nil, order.ErrVersionConflict
	}

	o.Version++
	r.store.orders[o.ID] = cloneOrder(o)
	return &o, nil
}

func (r *OrderRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.orders[id]; !ok {
		return order.ErrOrderNotFound
	}
	delete(r.store.orders, id)
	delete(r.store.payments, id)
	return nil
}

func (r *OrderRepository) filter(keep func(entities.Order) bool) []entities.Order {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]entities.Order, 0, len(r.store.orders))
	for _, o := range r.store.orders {
		if keep(o) {
			orders = append(orders, cloneOrder(o))
		}
	}

	slices.SortFunc(orders, func(a, b entities.Order) int {
		if c := a.OrderedDate.Compare(b.OrderedDate); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return orders
}

// PaymentRepository stores payments keyed by order, one per order.
type PaymentRepository struct {
	store *Store
}

func NewPaymentRepository(store *Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

func (r *PaymentRepository) Create(_ context.Context, p entities.Payment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.payments[p.OrderID]; ok {
		return payment.ErrOrderAlreadyPaid
	}
	r.store.payments[p.OrderID] = p
	return nil
}

func (r *PaymentRepository) GetByOrderID(_ context.Context, orderID uuid.UUID) (*entities.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.payments[orderID]
	if !ok {
		return nil, payment.ErrPaymentNotFound
	}
	return &p, nil
}

type CreditCardRepository struct {
	store *Store
}

func NewCreditCardRepository(store *Store) *CreditCardRepository {
	return &CreditCardRepository{store: store}
}

func (r *CreditCardRepository) GetByNumber(_ context.Context, number string) (*entities.CreditCard, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	card, ok := r.store.cards[number]
	if !ok {
		return nil, payment.ErrCreditCardNotFound
	}
	return &card, nil
}
