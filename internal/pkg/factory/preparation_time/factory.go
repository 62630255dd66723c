package preparation_time

import (
	"time"

	"restbucks/internal/entities"
)

const DefaultPreparationTime = 5 * time.Second

type PreparationTimeFactory struct {
	base time.Duration
}

func New(base time.Duration) *PreparationTimeFactory {
	if base <= 0 {
		base = DefaultPreparationTime
	}
	return &PreparationTimeFactory{
		base: base,
	}
}

// CalculateReadyAt gives the first drink the full base time and every further drink half
// of it.
func (f *PreparationTimeFactory) CalculateReadyAt(order entities.Order, since time.Time) time.Time {
	total := f.base
	if extra := len(order.LineItems) - 1; extra > 0 {
		total += time.Duration(extra) * (f.base / 2)
	}

	return since.Add(total)
}
