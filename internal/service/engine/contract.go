//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=engine_test
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"restbucks/internal/entities"
)

type Repository interface {
	GetByStatus(ctx context.Context, statuses ...entities.OrderStatus) ([]entities.Order, error)
}

type Barista interface {
	StartPreparation(ctx context.Context, orderID uuid.UUID, now time.Time) (bool, error)
	FinishPreparation(ctx context.Context, orderID uuid.UUID, now time.Time) (bool, error)
}

type (
	ExecuteFn      func(ctx context.Context, orderID uuid.UUID, now time.Time) (bool, error)
	HandlerFactory interface {
		GetHandler(status entities.OrderStatus) (ExecuteFn, error)
	}
)
