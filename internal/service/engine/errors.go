package engine

import "errors"

var ErrUndefinedStatus = errors.New("no preparation step for order status")
