//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"restbucks/internal/handlers/tasks/order_preparation"
	"restbucks/internal/pkg/config"
	"restbucks/internal/pkg/factory/order_handle"
	"restbucks/internal/pkg/factory/preparation_time"
	drinkRepo "restbucks/internal/repository/drink"
	"restbucks/internal/repository/memory"
	orderRepo "restbucks/internal/repository/order"
	paymentRepo "restbucks/internal/repository/payment"
	baristaService "restbucks/internal/service/barista"
	drinkService "restbucks/internal/service/drink"
	engineService "restbucks/internal/service/engine"
	orderService "restbucks/internal/service/order"
	paymentService "restbucks/internal/service/payment"
	"restbucks/pkg/logger"
	"restbucks/pkg/querier"
	"restbucks/pkg/tx"
)

// InitializeApplication wires the HTTP service (cmd/service) over PostgreSQL.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher paymentService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		providePreparationInterval,
		providePreparationTime,

		drinkRepo.New,
		orderRepo.New,
		paymentRepo.New,
		paymentRepo.NewCreditCardRepository,

		wire.Bind(new(drinkRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(orderRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(paymentRepo.Querier), new(*querier.Querier)),

		wire.Bind(new(drinkService.Repository), new(*drinkRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
		wire.Bind(new(paymentService.CreditCardRepository), new(*paymentRepo.CreditCardRepository)),
		wire.Bind(new(paymentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(baristaService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(engineService.Repository), new(*orderRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(baristaService.TxManager), new(*tx.Manager)),

		serviceSet,
	)
	return &Application{}, nil
}

// InitializeInMemoryApplication wires the same application over a process-local store
// (STORAGE_DRIVER=memory and the lifecycle tests).
func InitializeInMemoryApplication(
	ctx context.Context,
	log logger.Logger,
	store *memory.Store,
	publisher paymentService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		memory.NewTxManager,
		providePreparationInterval,
		providePreparationTime,

		memory.NewDrinkRepository,
		memory.NewOrderRepository,
		memory.NewPaymentRepository,
		memory.NewCreditCardRepository,

		wire.Bind(new(drinkService.Repository), new(*memory.DrinkRepository)),
		wire.Bind(new(orderService.Repository), new(*memory.OrderRepository)),
		wire.Bind(new(paymentService.Repository), new(*memory.PaymentRepository)),
		wire.Bind(new(paymentService.CreditCardRepository), new(*memory.CreditCardRepository)),
		wire.Bind(new(paymentService.OrderRepository), new(*memory.OrderRepository)),
		wire.Bind(new(baristaService.Repository), new(*memory.OrderRepository)),
		wire.Bind(new(engineService.Repository), new(*memory.OrderRepository)),

		wire.Bind(new(orderService.TxManager), new(*memory.TxManager)),
		wire.Bind(new(paymentService.TxManager), new(*memory.TxManager)),
		wire.Bind(new(baristaService.TxManager), new(*memory.TxManager)),

		serviceSet,
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp wires the order-paid consumer (cmd/worker-order-paid).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		providePreparationTime,

		orderRepo.New,
		wire.Bind(new(orderRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(baristaService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(engineService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(baristaService.TxManager), new(*tx.Manager)),

		engineSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

var engineSet = wire.NewSet(
	preparation_time.New,
	baristaService.New,
	order_handle.NewStatusHandlerFactory,
	engineService.New,

	wire.Bind(new(baristaService.PreparationTimeFactory), new(*preparation_time.PreparationTimeFactory)),
	wire.Bind(new(engineService.Barista), new(*baristaService.Barista)),
	wire.Bind(new(engineService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),
)

var serviceSet = wire.NewSet(
	engineSet,

	drinkService.New,
	orderService.New,
	providePaymentService,

	provideOrderPreparationTask,
	provideTaskList,
	provideBackgroundWorkers,

	wire.Bind(new(orderService.DrinkCatalog), new(*drinkService.Drink)),
	wire.Bind(new(ServiceDrink), new(*drinkService.Drink)),
	wire.Bind(new(ServiceOrder), new(*orderService.Order)),
	wire.Bind(new(ServicePayment), new(*paymentService.Payment)),
	wire.Bind(new(order_preparation.Service), new(*engineService.Engine)),

	wire.Struct(new(Application), "*"),
)
