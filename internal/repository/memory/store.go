// Package memory keeps drinks, orders and payments in process memory. It backs the
// "memory" storage driver and the end-to-end tests.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"restbucks/internal/entities"
	"restbucks/internal/repository/seed"
)

type Store struct {
	mu       sync.RWMutex
	drinks   map[uuid.UUID]entities.Drink
	orders   map[uuid.UUID]entities.Order
	payments map[uuid.UUID]entities.Payment
	cards    map[string]entities.CreditCard
}

func NewStore() *Store {
	return &Store{
		drinks:   make(map[uuid.UUID]entities.Drink),
		orders:   make(map[uuid.UUID]entities.Order),
		payments: make(map[uuid.UUID]entities.Payment),
		cards:    make(map[string]entities.CreditCard),
	}
}

// NewSeededStore returns a store holding the seed data, orders dated now.
func NewSeededStore(now time.Time) *Store {
	s := NewStore()
	for _, drink := range seed.Drinks() {
		s.drinks[drink.ID] = drink
	}
	for _, order := range seed.Orders(now) {
		s.orders[order.ID] = cloneOrder(order)
	}
	for _, card := range seed.CreditCards() {
		s.cards[card.Number] = card
	}
	return s
}

type snapshot struct {
	orders   map[uuid.UUID]entities.Order
	payments map[uuid.UUID]entities.Payment
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return snapshot{
		orders:   maps.Clone(s.orders),
		payments: maps.Clone(s.payments),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = snap.orders
	s.payments = snap.payments
}

type txKey struct{}

// TxManager serialises transactions on one store. Changes made by a failed callback are
// rolled back. Nested Do calls join the outer transaction.
type TxManager struct {
	store *Store
	mu    sync.Mutex
}

func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snap := m.store.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, m)); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

func cloneOrder(order entities.Order) entities.Order {
	order.LineItems = slices.Clone(order.LineItems)
	if order.PreparingSince != nil {
		since := *order.PreparingSince
		order.PreparingSince = &since
	}
	return order
}
