package drink

import (
	"fmt"

	"github.com/shopspring/decimal"
	"restbucks/internal/entities"
)

func ToDomain(d *DrinkDB) (*entities.Drink, error) {
	if d == nil {
		return nil, nil
	}

	amount, err := decimal.NewFromString(d.PriceAmount)
	if err != nil {
		return nil, fmt.Errorf("drink %s price: %w", d.ID, err)
	}

	return &entities.Drink{
		ID:    d.ID,
		Name:  d.Name,
		Milk:  entities.Milk(d.Milk),
		Size:  entities.Size(d.Size),
		Price: entities.NewMoney(d.PriceCurrency, amount),
	}, nil
}

func ToDomainList(models []DrinkDB) ([]entities.Drink, error) {
	drinks := make([]entities.Drink, 0, len(models))
	for i := range models {
		drink, err := ToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		drinks = append(drinks, *drink)
	}
	return drinks, nil
}
