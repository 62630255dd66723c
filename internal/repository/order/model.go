package order

import (
	"time"

	"github.com/google/uuid"
)

type OrderDB struct {
	ID             uuid.UUID
	Location       string
	Status         string
	OrderedDate    time.Time
	Version        int64
	PreparingSince *time.Time
}

type LineItemDB struct {
	OrderID       uuid.UUID
	Position      int
	DrinkID       uuid.UUID
	Name          string
	PriceAmount   string
	PriceCurrency string
}
