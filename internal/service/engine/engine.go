package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"restbucks/internal/entities"
)

type Result struct {
	Started  int
	Finished int
}

type Engine struct {
	repository    Repository
	statusFactory HandlerFactory
}

func New(repository Repository, statusFactory HandlerFactory) *Engine {
	return &Engine{
		repository:    repository,
		statusFactory: statusFactory,
	}
}

// StartPreparation reacts to a payment notification for a single order.
func (e *Engine) StartPreparation(ctx context.Context, orderID uuid.UUID) error {
	executeFn, err := e.statusFactory.GetHandler(entities.OrderPaid)
	if err != nil {
		return err
	}

	if _, err := executeFn(ctx, orderID, time.Now().UTC()); err != nil {
		return fmt.Errorf("start preparation of order %s: %w", orderID, err)
	}
	return nil
}

// Process advances every open order one step: paid orders are started, preparing orders
// whose time is up become ready. A failing order does not stop the others.
func (e *Engine) Process(ctx context.Context, now time.Time) (Result, error) {
	var result Result

	orders, err := e.repository.GetByStatus(ctx, entities.OrderPaid, entities.OrderPreparing)
	if err != nil {
		return result, fmt.Errorf("get open orders: %w", err)
	}

	var errs []error
	for _, order := range orders {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		executeFn, err := e.statusFactory.GetHandler(order.Status)
		if err != nil {
			if errors.Is(err, ErrUndefinedStatus) {
				continue
			}
			errs = append(errs, err)
			continue
		}

		advanced, err := executeFn(ctx, order.ID, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("order %s: %w", order.ID, err))
			continue
		}
		if !advanced {
			continue
		}

		switch order.Status {
		case entities.OrderPaid:
			result.Started++
		case entities.OrderPreparing:
			result.Finished++
		}
	}

	return result, errors.Join(errs...)
}
