//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_paid_test
package order_paid

import (
	"context"

	"github.com/google/uuid"
	"restbucks/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	StartPreparation(ctx context.Context, orderID uuid.UUID) error
}
