package drink

import "github.com/google/uuid"

type DrinkDB struct {
	ID            uuid.UUID
	Name          string
	Milk          string
	Size          string
	PriceAmount   string
	PriceCurrency string
}
