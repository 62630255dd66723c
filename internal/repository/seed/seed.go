// Package seed holds the initial catalogue, the demo orders and the accepted credit card.
// The postgres migrations insert the same rows.
package seed

import (
	"time"

	"github.com/google/uuid"
	"restbucks/internal/entities"
)

var (
	CappuchinoID = uuid.MustParse("7c8e2d0e-4b1c-4a55-9d44-3f0f1c3b9a01")
	JavaChipID   = uuid.MustParse("7c8e2d0e-4b1c-4a55-9d44-3f0f1c3b9a02")
	EspressoID   = uuid.MustParse("7c8e2d0e-4b1c-4a55-9d44-3f0f1c3b9a03")
	LatteID      = uuid.MustParse("7c8e2d0e-4b1c-4a55-9d44-3f0f1c3b9a04")

	TakeAwayOrderID = uuid.MustParse("3f5c1a9e-7b2d-4c61-9a8e-000000000001")
	InStoreOrderID  = uuid.MustParse("3f5c1a9e-7b2d-4c61-9a8e-000000000002")
)

const CardNumber = "1234123412341234"

func Drinks() []entities.Drink {
	return []entities.Drink{
		{ID: CappuchinoID, Name: "Cappuchino", Milk: entities.MilkSemi, Size: entities.SizeLarge, Price: entities.EUR("4.20")},
		{ID: JavaChipID, Name: "Java Chip", Milk: entities.MilkSemi, Size: entities.SizeLarge, Price: entities.EUR("4.20")},
		{ID: EspressoID, Name: "Espresso", Milk: entities.MilkWhole, Size: entities.SizeSmall, Price: entities.EUR("2.20")},
		{ID: LatteID, Name: "Latte", Milk: entities.MilkWhole, Size: entities.SizeMedium, Price: entities.EUR("3.70")},
	}
}

func Orders(now time.Time) []entities.Order {
	drinks := make(map[uuid.UUID]entities.Drink)
	for _, drink := range Drinks() {
		drinks[drink.ID] = drink
	}

	return []entities.Order{
		{
			ID:          TakeAwayOrderID,
			Location:    entities.LocationTakeAway,
			Status:      entities.OrderPaymentExpected,
			OrderedDate: now.UTC(),
			LineItems:   []entities.LineItem{entities.NewLineItem(drinks[JavaChipID])},
		},
		{
			ID:          InStoreOrderID,
			Location:    entities.LocationInStore,
			Status:      entities.OrderPaymentExpected,
			OrderedDate: now.UTC(),
			LineItems: []entities.LineItem{
				entities.NewLineItem(drinks[CappuchinoID]),
				entities.NewLineItem(drinks[EspressoID]),
			},
		},
	}
}

func CreditCards() []entities.CreditCard {
	return []entities.CreditCard{
		{Number: CardNumber, CardHolderName: "Oliver Gierke", ExpiryMonth: time.December, ExpiryYear: 2099},
	}
}
