//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_preparation_test
package order_preparation

import (
	"context"
	"time"

	"restbucks/internal/service/engine"
	"restbucks/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Process(ctx context.Context, now time.Time) (engine.Result, error)
}
