package order_paid

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"restbucks/internal/dto"
	"restbucks/internal/service/order"
	"restbucks/pkg/logger"
)

// Handler hands paid orders to the barista as soon as the payment event arrives, ahead of
// the next preparation tick.
type Handler struct {
	engine                   Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, engine Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		engine:                   engine,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.paid: claim closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.paid: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing reports true when ConsumeClaim has to stop; the message is then left
// unmarked and redelivered after the rebalance.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var msg dto.OrderPaidMessage
	if err := json.Unmarshal(message.Value, &msg); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.paid handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	event, err := msg.ToEntity()
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.paid handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID.String()),
		logger.NewField("offset", message.Offset),
	)

	err = h.engine.StartPreparation(ctx, event.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.paid handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, order.ErrOrderNotFound):
			msgLog.Warn("order.paid handler order vanished")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.paid handler failed to start preparation")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.paid: preparation started")

	sess.MarkMessage(message, "")
	return false
}
