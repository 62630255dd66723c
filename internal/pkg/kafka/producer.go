package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"restbucks/internal/dto"
	"restbucks/internal/entities"
	"restbucks/internal/pkg/config"
	"restbucks/pkg/logger"
)

// OrderPaidPublisher sends OrderPaid events keyed by order id, so every event of an order
// lands on the same partition.
type OrderPaidPublisher struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1

	return cfg, nil
}

func NewOrderPaidPublisher(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*OrderPaidPublisher, error) {
	saramaConfig, err := NewProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build sarama config: %w", err)
	}

	brokers := cfg.KafkaBrokers()
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return NewOrderPaidPublisherWithProducer(kafkaLog, producer, cfg.Topic), nil
}

func NewOrderPaidPublisherWithProducer(log logger.Logger, producer sarama.SyncProducer, topic string) *OrderPaidPublisher {
	return &OrderPaidPublisher{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

func (p *OrderPaidPublisher) PublishOrderPaid(ctx context.Context, event entities.OrderPaidEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(dto.FromOrderPaidEvent(event))
	if err != nil {
		return fmt.Errorf("marshal order paid event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID.String()),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("send order paid event: %w", err)
	}

	p.log.Info("order paid event published",
		logger.NewField("order_id", event.OrderID.String()),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
	return nil
}

func (p *OrderPaidPublisher) Close() error {
	return p.producer.Close()
}

// LogPublisher stands in for Kafka when it is disabled; the engine task still picks paid
// orders up on its next tick.
type LogPublisher struct {
	log logger.Logger
}

func NewLogPublisher(log logger.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) PublishOrderPaid(_ context.Context, event entities.OrderPaidEvent) error {
	p.log.Info("order paid",
		logger.NewField("order_id", event.OrderID.String()),
		logger.NewField("payment_id", event.PaymentID.String()),
	)
	return nil
}
