package payment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"restbucks/internal/entities"
)

func ToDomain(p *PaymentDB) (*entities.Payment, error) {
	if p == nil {
		return nil, nil
	}

	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return nil, fmt.Errorf("payment %s amount: %w", p.ID, err)
	}

	return &entities.Payment{
		ID:          p.ID,
		OrderID:     p.OrderID,
		CardNumber:  p.CardNumber,
		Amount:      entities.NewMoney(p.Currency, amount),
		PaymentDate: p.PaymentDate.UTC(),
	}, nil
}

func FromDomain(p *entities.Payment) *PaymentDB {
	if p == nil {
		return nil
	}
	return &PaymentDB{
		ID:          p.ID,
		OrderID:     p.OrderID,
		CardNumber:  p.CardNumber,
		Amount:      p.Amount.Amount.String(),
		Currency:    p.Amount.Currency,
		PaymentDate: p.PaymentDate,
	}
}

func ToCreditCardDomain(c *CreditCardDB) *entities.CreditCard {
	if c == nil {
		return nil
	}
	return &entities.CreditCard{
		Number:         c.Number,
		CardHolderName: c.CardHolderName,
		ExpiryMonth:    time.Month(c.ExpiryMonth),
		ExpiryYear:     int(c.ExpiryYear),
	}
}
