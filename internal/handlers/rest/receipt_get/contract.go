//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=receipt_get_test
package receipt_get

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
	GetReceipt(ctx context.Context, orderID uuid.UUID) (*entities.Receipt, error)
}
