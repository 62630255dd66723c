//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drinks_by_name_get_test
package drinks_by_name_get

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
	FindByName(ctx context.Context, query string) ([]entities.Drink, error)
}
