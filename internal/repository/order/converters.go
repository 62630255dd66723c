package order

import (
	"fmt"

	"github.com/shopspring/decimal"
	"restbucks/internal/entities"
)

func ToDomain(o *OrderDB, items []LineItemDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	lineItems := make([]entities.LineItem, 0, len(items))
	for _, item := range items {
		amount, err := decimal.NewFromString(item.PriceAmount)
		if err != nil {
			return nil, fmt.Errorf("order %s line item %d price: %w", o.ID, item.Position, err)
		}
		lineItems = append(lineItems, entities.LineItem{
			DrinkID: item.DrinkID,
			Name:    item.Name,
			Price:   entities.NewMoney(item.PriceCurrency, amount),
		})
	}

	return &entities.Order{
		ID:             o.ID,
		Location:       entities.Location(o.Location),
		Status:         entities.OrderStatus(o.Status),
		OrderedDate:    o.OrderedDate.UTC(),
		LineItems:      lineItems,
		Version:        o.Version,
		PreparingSince: o.PreparingSince,
	}, nil
}

func FromDomain(o *entities.Order) (*OrderDB, []LineItemDB) {
	if o == nil {
		return nil, nil
	}

	items := make([]LineItemDB, 0, len(o.LineItems))
	for i, item := range o.LineItems {
		items = append(items, LineItemDB{
			OrderID:       o.ID,
			Position:      i,
			DrinkID:       item.DrinkID,
			Name:          item.Name,
			PriceAmount:   item.Price.Amount.String(),
			PriceCurrency: item.Price.Currency,
		})
	}

	return &OrderDB{
		ID:             o.ID,
		Location:       o.Location.String(),
		Status:         o.Status.String(),
		OrderedDate:    o.OrderedDate,
		Version:        o.Version,
		PreparingSince: o.PreparingSince,
	}, items
}
