package order

import (
	"github.com/google/uuid"
	"restbucks/internal/entities"
)

func isValidLocation(location entities.Location) bool {
	return location.IsValid()
}

func hasDrinks(drinkIDs []uuid.UUID) bool {
	return len(drinkIDs) > 0
}

func hasChanges(orderModify entities.OrderModify) bool {
	return orderModify.Location != nil || orderModify.DrinkIDs != nil
}

func isModifiable(order *entities.Order) bool {
	return order.Status == entities.OrderPaymentExpected
}
