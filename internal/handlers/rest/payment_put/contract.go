//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_put_test
package payment_put

import (
	"context"

	"github.com/google/uuid"
	"restbucks/internal/entities"
	"restbucks/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Pay(ctx context.Context, orderID uuid.UUID, cardNumber string) (*entities.Payment, error)
}
