//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"github.com/google/uuid"
	"restbucks/internal/entities"
	"restbucks/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, payment entities.Payment) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.Payment, error)
}

type CreditCardRepository interface {
	GetByNumber(ctx context.Context, number string) (*entities.CreditCard, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	Update(ctx context.Context, order entities.Order) (*entities.Order, error)
}

type EventPublisher interface {
	PublishOrderPaid(ctx context.Context, event entities.OrderPaidEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
