//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=barista_test
package barista

import (
	"context"
	"time"

	"github.com/google/uuid"
	"restbucks/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	Update(ctx context.Context, order entities.Order) (*entities.Order, error)
}

type PreparationTimeFactory interface {
	CalculateReadyAt(order entities.Order, since time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
