package payment

import (
	"time"

	"github.com/google/uuid"
)

type PaymentDB struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	CardNumber  string
	Amount      string
	Currency    string
	PaymentDate time.Time
}

type CreditCardDB struct {
	Number         string
	CardHolderName string
	ExpiryMonth    int16
	ExpiryYear     int16
}
