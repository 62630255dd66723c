package dto

import (
	"restbucks/internal/entities"
)

func FromOrder(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		items = append(items, LineItem{
			Name:  item.Name,
			Price: item.Price.String(),
		})
	}

	return Order{
		Location:    o.Location.String(),
		Status:      o.Status.String(),
		OrderedDate: o.OrderedDate,
		Price:       o.Price().String(),
		Items:       items,
	}
}

func FromDrink(d entities.Drink) Drink {
	return Drink{
		Name:  d.Name,
		Milk:  d.Milk.String(),
		Size:  d.Size.String(),
		Price: d.Price.String(),
	}
}

func FromPayment(p entities.Payment) Payment {
	return Payment{
		Amount:      p.Amount.String(),
		PaymentDate: p.PaymentDate,
	}
}

func FromReceipt(r entities.Receipt) Receipt {
	return Receipt{
		Date:   r.Date,
		Amount: r.Amount.String(),
	}
}
