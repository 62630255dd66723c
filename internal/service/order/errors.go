package order

import (
	"errors"

	"restbucks/internal/service/drink"
)

var (
	ErrInvalidLocation = errors.New("invalid location")
	ErrMissingDrinks   = errors.New("order needs at least one drink")
	ErrDrinkNotFound   = drink.ErrDrinkNotFound

	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotModifiable = errors.New("order can no longer be modified")
	ErrVersionConflict    = errors.New("order was modified concurrently")
)
