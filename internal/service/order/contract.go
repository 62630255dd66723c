//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"github.com/google/uuid"
	"restbucks/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	Update(ctx context.Context, order entities.Order) (*entities.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DrinkCatalog interface {
	GetDrink(ctx context.Context, id uuid.UUID) (*entities.Drink, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
