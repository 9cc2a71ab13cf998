package create_order

import "errors"

var (
	ErrInvalidOrder = errors.New("create_order: invalid order request")
	ErrInternal     = errors.New("create_order: internal error")
)
