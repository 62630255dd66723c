package drink

import "errors"

var ErrDrinkNotFound = errors.New("drink not found")
