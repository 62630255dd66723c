package payment

import (
	"errors"

	"restbucks/internal/service/order"
)

var (
	ErrOrderNotFound = order.ErrOrderNotFound

	ErrOrderAlreadyPaid   = errors.New("order already paid")
	ErrInvalidCardNumber  = errors.New("invalid credit card number")
	ErrCreditCardNotFound = errors.New("credit card not found")
	ErrCreditCardExpired  = errors.New("credit card expired")

	ErrPaymentNotFound = errors.New("payment not found")
	ErrReceiptNotFound = errors.New("receipt not found")
	ErrOrderNotReady   = errors.New("order is not ready yet")
)
