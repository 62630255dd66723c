package order_preparation

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"restbucks/pkg/logger"
)

// OrderPreparation is the barista's clock: every tick paid orders are started and
// finished ones are put on the counter.
type OrderPreparation struct {
	log      handlerLogger
	service  Service
	interval time.Duration
	now      func() time.Time
}

func NewOrderPreparation(log handlerLogger, service Service, interval time.Duration) *OrderPreparation {
	return &OrderPreparation{
		log:      log.With(logger.NewField("task", "order preparation")),
		service:  service,
		interval: interval,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (o *OrderPreparation) TTL() time.Duration {
	return o.interval
}

func (o *OrderPreparation) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	timer := prometheus.NewTimer(RunDuration)
	result, err := o.service.Process(ctxWithTimeout, o.now())
	timer.ObserveDuration()

	OrdersTransitionedTotal.WithLabelValues("started").Add(float64(result.Started))
	OrdersTransitionedTotal.WithLabelValues("finished").Add(float64(result.Finished))

	if result.Started > 0 || result.Finished > 0 {
		o.log.With(
			logger.NewField("started", result.Started),
			logger.NewField("finished", result.Finished),
		).Info("order preparation")
	}

	return err
}

func (o *OrderPreparation) Info() string {
	return "order preparation"
}
