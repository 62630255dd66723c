package barista

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"restbucks/internal/entities"
)

type Barista struct {
	repository  Repository
	timeFactory PreparationTimeFactory
	txManager   TxManager
}

func New(repository Repository, timeFactory PreparationTimeFactory, txManager TxManager) *Barista {
	return &Barista{
		repository:  repository,
		timeFactory: timeFactory,
		txManager:   txManager,
	}
}

// StartPreparation picks up a paid order. Orders in any other state are left alone and
// reported as not advanced, so duplicate triggers are harmless.
func (b *Barista) StartPreparation(ctx context.Context, orderID uuid.UUID, now time.Time) (bool, error) {
	var started bool
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := b.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.Status != entities.OrderPaid {
			return nil
		}

		if err := order.TransitionTo(entities.OrderPreparing); err != nil {
			return err
		}
		since := now.UTC()
		order.PreparingSince = &since

		if _, err := b.repository.Update(ctx, *order); err != nil {
			return fmt.Errorf("start preparation: %w", err)
		}
		started = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return started, nil
}

// FinishPreparation marks the order ready once its preparation time has elapsed.
func (b *Barista) FinishPreparation(ctx context.Context, orderID uuid.UUID, now time.Time) (bool, error) {
	var finished bool
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := b.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.Status != entities.OrderPreparing {
			return nil
		}

		since := order.OrderedDate
		if order.PreparingSince != nil {
			since = *order.PreparingSince
		}
		if now.Before(b.timeFactory.CalculateReadyAt(*order, since)) {
			return nil
		}

		if err := order.TransitionTo(entities.OrderReady); err != nil {
			return err
		}
		if _, err := b.repository.Update(ctx, *order); err != nil {
			return fmt.Errorf("finish preparation: %w", err)
		}
		finished = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return finished, nil
}
