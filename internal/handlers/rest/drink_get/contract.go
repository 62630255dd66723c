//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drink_get_test
package drink_get

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
	GetDrink(ctx context.Context, id uuid.UUID) (*entities.Drink, error)
}
