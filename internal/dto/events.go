package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"restbucks/internal/entities"
)

type OrderPaidMessage struct {
	OrderID   string    `json:"order_id"`
	PaymentID string    `json:"payment_id"`
	PaidAt    time.Time `json:"paid_at"`
}

func FromOrderPaidEvent(event entities.OrderPaidEvent) OrderPaidMessage {
	return OrderPaidMessage{
		OrderID:   event.OrderID.String(),
		PaymentID: event.PaymentID.String(),
		PaidAt:    event.PaidAt,
	}
}

func (m OrderPaidMessage) ToEntity() (entities.OrderPaidEvent, error) {
	orderID, err := uuid.Parse(m.OrderID)
	if err != nil {
		return entities.OrderPaidEvent{}, fmt.Errorf("order_id: %w", err)
	}

	var paymentID uuid.UUID
	if m.PaymentID != "" {
		paymentID, err = uuid.Parse(m.PaymentID)
		if err != nil {
			return entities.OrderPaidEvent{}, fmt.Errorf("payment_id: %w", err)
		}
	}

	return entities.OrderPaidEvent{
		OrderID:   orderID,
		PaymentID: paymentID,
		PaidAt:    m.PaidAt,
	}, nil
}
