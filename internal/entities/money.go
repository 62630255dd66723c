package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "EUR"

var ErrInvalidMoney = errors.New("invalid monetary amount")

type Money struct {
	Amount   decimal.Decimal
	Currency string
}

func NewMoney(currency string, amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: currency}
}

// EUR panics on malformed input and is meant for literals.
func EUR(amount string) Money {
	return NewMoney(DefaultCurrency, decimal.RequireFromString(amount))
}

// ParseMoney reads the "EUR 4.20" form produced by String.
func ParseMoney(s string) (Money, error) {
	currency, amount, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok || len(currency) != 3 {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	return NewMoney(strings.ToUpper(currency), value), nil
}

func (m Money) Add(other Money) Money {
	currency := m.Currency
	if currency == "" {
		currency = other.Currency
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: currency}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

func (m Money) String() string {
	currency := m.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return currency + " " + m.Amount.StringFixed(2)
}
