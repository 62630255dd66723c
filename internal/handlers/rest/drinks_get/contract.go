//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drinks_get_test
package drinks_get

import (
	"context"

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
	GetDrinks(ctx context.Context) ([]entities.Drink, error)
}
