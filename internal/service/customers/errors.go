package customers

import "errors"

var (
	ErrInvalidInput = errors.New("service/customers: invalid input")
	ErrInternal     = errors.New("service/customers: internal error")
)
