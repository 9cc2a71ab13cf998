package catalog

import "errors"

var (
	ErrInvalidInput = errors.New("service/catalog: invalid input")
	ErrInternal     = errors.New("service/catalog: internal error")
)
