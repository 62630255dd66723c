// Package representation turns entities into HAL documents. Which links an order carries
// depends on its status, and that is the contract clients navigate by.
package representation

import (
	"net/http"

	"restbucks/internal/dto"
	"restbucks/internal/entities"
	"restbucks/pkg/hal"
)

const curieNamespace = "restbucks"

var curies = hal.NewCurieBuilder(curieNamespace)

var (
	RelOrders  = curies.Relation("orders")
	RelOrder   = curies.Relation("order")
	RelDrinks  = curies.Relation("drinks")
	RelPayment = curies.Relation("payment")
	RelReceipt = curies.Relation("receipt")
	RelCancel  = curies.Relation("cancel")
	RelUpdate  = curies.Relation("update")
)

func newDocument(u URIs, state any, self string) *hal.Representation {
	return hal.New(state).
		AddLink(hal.RelSelf, hal.NewLink(self)).
		AddLink(hal.RelCuries, curies.Curie(u.Docs()))
}

func Root(u URIs) *hal.Representation {
	return newDocument(u, nil, u.Root()).
		AddLink(RelOrders, hal.NewLink(u.Orders())).
		AddLink(RelDrinks, hal.NewLink(u.Drinks())).
		AddTemplate(hal.DefaultTemplate, orderForm(u, http.MethodPost, u.Orders(), true))
}

func Drink(u URIs, drink entities.Drink) *hal.Representation {
	return newDocument(u, dto.FromDrink(drink), u.Drink(drink.ID))
}

func Drinks(u URIs, drinks []entities.Drink) *hal.Representation {
	items := make([]*hal.Representation, 0, len(drinks))
	for _, drink := range drinks {
		items = append(items, hal.New(dto.FromDrink(drink)).AddLink(hal.RelSelf, hal.NewLink(u.Drink(drink.ID))))
	}

	return newDocument(u, nil, u.Drinks()).Embed(RelDrinks, items...)
}

// DrinkOptions renders the HAL-FORMS options payload: drink names as prompts, drink URIs
// as values.
func DrinkOptions(u URIs, drinks []entities.Drink) []hal.Option {
	options := make([]hal.Option, 0, len(drinks))
	for _, drink := range drinks {
		options = append(options, hal.Option{
			Prompt: drink.Name + " (" + drink.Price.String() + ")",
			Value:  u.Drink(drink.ID),
		})
	}
	return options
}

func Order(u URIs, order entities.Order) *hal.Representation {
	self := u.Order(order.ID)
	doc := newDocument(u, dto.FromOrder(order), self)

	switch order.Status {
	case entities.OrderPaymentExpected:
		doc.AddLink(RelCancel, hal.NewLink(self)).
			AddLink(RelUpdate, hal.NewLink(self)).
			AddLink(RelPayment, hal.NewLink(u.Payment(order.ID))).
			AddTemplate(hal.DefaultTemplate, orderForm(u, http.MethodPatch, self, false))
	case entities.OrderReady:
		doc.AddLink(RelReceipt, hal.NewLink(u.Receipt(order.ID)))
	}

	return doc
}

func Orders(u URIs, orders []entities.Order) *hal.Representation {
	items := make([]*hal.Representation, 0, len(orders))
	for _, order := range orders {
		items = append(items, Order(u, order).WithoutTemplates())
	}

	return newDocument(u, nil, u.Orders()).Embed(RelOrders, items...)
}

func Payment(u URIs, payment entities.Payment) *hal.Representation {
	return newDocument(u, dto.FromPayment(payment), u.Payment(payment.OrderID)).
		AddLink(RelOrder, hal.NewLink(u.Order(payment.OrderID)))
}

func Receipt(u URIs, receipt entities.Receipt) *hal.Representation {
	return newDocument(u, dto.FromReceipt(receipt), u.Receipt(receipt.OrderID)).
		AddLink(RelOrder, hal.NewLink(u.Order(receipt.OrderID)))
}

func orderForm(u URIs, method, target string, required bool) hal.Template {
	minDrinks := 1
	maxLocations := 1

	drinksLink := hal.NewTemplatedLink(u.DrinksByName())
	drinksLink.Type = hal.MediaTypeHAL

	locations := make([]any, 0, len(entities.Locations))
	for _, location := range entities.Locations {
		locations = append(locations, location.String())
	}

	return hal.Template{
		Method:      method,
		ContentType: "application/json",
		Target:      target,
		Properties: []hal.Property{
			{
				Name:     "drinks",
				Prompt:   "Drinks",
				Required: required,
				Options: &hal.Options{
					Link:     &drinksLink,
					MinItems: &minDrinks,
				},
			},
			{
				Name:     "location",
				Prompt:   "Location",
				Required: required,
				Options: &hal.Options{
					Inline:   locations,
					MaxItems: &maxLocations,
				},
			},
		},
	}
}
