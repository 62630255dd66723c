package order_handle

import (
	"fmt"

	"restbucks/internal/entities"
	"restbucks/internal/service/engine"
)

type StatusHandlerFactory struct {
	barista engine.Barista
}

func NewStatusHandlerFactory(barista engine.Barista) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		barista: barista,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatus) (engine.ExecuteFn, error) {
	switch status {
	case entities.OrderPaid:
		return f.barista.StartPreparation, nil
	case entities.OrderPreparing:
		return f.barista.FinishPreparation, nil
	default:
		return nil, fmt.Errorf("%w: %s", engine.ErrUndefinedStatus, status)
	}
}
