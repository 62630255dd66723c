package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"restbucks/internal/handlers/rest/drink_get"
	"restbucks/internal/handlers/rest/drinks_by_name_get"
	"restbucks/internal/handlers/rest/drinks_get"
	"restbucks/internal/handlers/rest/order_delete"
	"restbucks/internal/handlers/rest/order_get"
	"restbucks/internal/handlers/rest/order_patch"
	"restbucks/internal/handlers/rest/orders_get"
	"restbucks/internal/handlers/rest/orders_post"
	"restbucks/internal/handlers/rest/payment_put"
	"restbucks/internal/handlers/rest/receipt_delete"
	"restbucks/internal/handlers/rest/receipt_get"
	"restbucks/internal/handlers/tasks/order_preparation"
	"restbucks/internal/pkg/config"
	engineService "restbucks/internal/service/engine"
	paymentService "restbucks/internal/service/payment"
	"restbucks/pkg/background"
	"restbucks/pkg/logger"
	"restbucks/pkg/querier"
	"restbucks/pkg/tx"
)

type PreparationInterval time.Duration

type Application struct {
	ServiceDrink      ServiceDrink
	ServiceOrder      ServiceOrder
	ServicePayment    ServicePayment
	Engine            *engineService.Engine
	BackgroundWorkers *background.Worker
}

type ServiceDrink interface {
	drink_get.Service
	drinks_get.Service
	drinks_by_name_get.Service
}

type ServiceOrder interface {
	orders_get.Service
	orders_post.Service
	order_get.Service
	order_patch.Service
	order_delete.Service
}

type ServicePayment interface {
	payment_put.Service
	receipt_get.Service
	receipt_delete.Service
}

type KafkaWorkerApp struct {
	Engine *engineService.Engine
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func providePreparationInterval(cfg *config.Config) PreparationInterval {
	return PreparationInterval(cfg.Tasks.OrderPreparationInterval)
}

func providePreparationTime(cfg *config.Config) time.Duration {
	return cfg.Engine.PreparationTime
}

func providePaymentService(
	repository paymentService.Repository,
	creditCards paymentService.CreditCardRepository,
	orderRepository paymentService.OrderRepository,
	publisher paymentService.EventPublisher,
	txManager paymentService.TxManager,
	log logger.Logger,
) *paymentService.Payment {
	return paymentService.New(
		repository,
		creditCards,
		orderRepository,
		publisher,
		txManager,
		log.With(logger.NewField("component", "payment")),
	)
}

func provideOrderPreparationTask(
	log logger.Logger,
	service order_preparation.Service,
	interval PreparationInterval,
) *order_preparation.OrderPreparation {
	return order_preparation.NewOrderPreparation(log, service, time.Duration(interval))
}

func provideTaskList(
	orderPreparationTask *order_preparation.OrderPreparation,
) []background.Task {
	return []background.Task{
		orderPreparationTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
