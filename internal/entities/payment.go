package entities

import (
	"time"

	"github.com/google/uuid"
)

type CreditCard struct {
	Number         string
	CardHolderName string
	ExpiryMonth    time.Month
	ExpiryYear     int
}

// IsValidOn reports whether the card can still be charged at t. A card expires once its
// expiry month is over.
func (c CreditCard) IsValidOn(t time.Time) bool {
	firstInvalid := time.Date(c.ExpiryYear, c.ExpiryMonth, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.UTC().Before(firstInvalid)
}

type Payment struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	CardNumber  string
	Amount      Money
	PaymentDate time.Time
}

func (p Payment) Receipt() Receipt {
	return Receipt{
		OrderID: p.OrderID,
		Date:    p.PaymentDate,
		Amount:  p.Amount,
	}
}

type Receipt struct {
	OrderID uuid.UUID
	Date    time.Time
	Amount  Money
}

type OrderPaidEvent struct {
	OrderID   uuid.UUID
	PaymentID uuid.UUID
	PaidAt    time.Time
}
