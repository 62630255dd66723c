package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"restbucks/internal/entities"
	"restbucks/pkg/logger"
)

type Payment struct {
	repository      Repository
	creditCards     CreditCardRepository
	orderRepository OrderRepository
	publisher       EventPublisher
	txManager       TxManager
	logger          serviceLogger
}

func New(
	repository Repository,
	creditCards CreditCardRepository,
	orderRepository OrderRepository,
	publisher EventPublisher,
	txManager TxManager,
	logger serviceLogger,
) *Payment {
	return &Payment{
		repository:      repository,
		creditCards:     creditCards,
		orderRepository: orderRepository,
		publisher:       publisher,
		txManager:       txManager,
		logger:          logger,
	}
}

// Pay charges the card for the order total and marks the order paid. The OrderPaid event
// is published after commit; a publish failure does not undo the payment.
func (s *Payment) Pay(ctx context.Context, orderID uuid.UUID, cardNumber string) (*entities.Payment, error) {
	cardNumber = strings.TrimSpace(cardNumber)

	var payment entities.Payment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orderRepository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.IsPaid() {
			return ErrOrderAlreadyPaid
		}

		if !isValidCardNumber(cardNumber) {
			return ErrInvalidCardNumber
		}
		card, err := s.creditCards.GetByNumber(ctx, cardNumber)
		if err != nil {
			return fmt.Errorf("get credit card: %w", err)
		}

		now := time.Now().UTC()
		if !card.IsValidOn(now) {
			return ErrCreditCardExpired
		}

		payment = entities.Payment{
			ID:          uuid.New(),
			OrderID:     order.ID,
			CardNumber:  card.Number,
			Amount:      order.Price(),
			PaymentDate: now,
		}
		if err := s.repository.Create(ctx, payment); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		if err := order.TransitionTo(entities.OrderPaid); err != nil {
			return err
		}
		if _, err := s.orderRepository.Update(ctx, *order); err != nil {
			return fmt.Errorf("mark order paid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := entities.OrderPaidEvent{
		OrderID:   payment.OrderID,
		PaymentID: payment.ID,
		PaidAt:    payment.PaymentDate,
	}
	if err := s.publisher.PublishOrderPaid(ctx, event); err != nil {
		s.logger.Warn("failed to publish order paid event",
			logger.NewField("order_id", payment.OrderID.String()),
			logger.NewField("error", err),
		)
	}

	return &payment, nil
}

// GetReceipt is available from payment until the receipt has been taken.
func (s *Payment) GetReceipt(ctx context.Context, orderID uuid.UUID) (*entities.Receipt, error) {
	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !order.IsPaid() || order.IsTaken() {
		return nil, ErrReceiptNotFound
	}

	return s.receipt(ctx, orderID)
}

// TakeReceipt hands the drinks over: the order must be ready and ends up taken.
func (s *Payment) TakeReceipt(ctx context.Context, orderID uuid.UUID) (*entities.Receipt, error) {
	var receipt *entities.Receipt
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orderRepository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if !order.IsPaid() || order.IsTaken() {
			return ErrReceiptNotFound
		}
		if !order.IsReady() {
			return ErrOrderNotReady
		}

		receipt, err = s.receipt(ctx, orderID)
		if err != nil {
			return err
		}

		if err := order.TransitionTo(entities.OrderTaken); err != nil {
			return err
		}
		if _, err := s.orderRepository.Update(ctx, *order); err != nil {
			return fmt.Errorf("mark order taken: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return receipt, nil
}

func (s *Payment) receipt(ctx context.Context, orderID uuid.UUID) (*entities.Receipt, error) {
	payment, err := s.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrReceiptNotFound, err)
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}

	receipt := payment.Receipt()
	return &receipt, nil
}
