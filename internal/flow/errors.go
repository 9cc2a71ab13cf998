package flow

import "errors"

var (
	ErrInvalidKey    = errors.New("flow: key is not a phone or plate number")
	ErrInvalidChoice = errors.New("flow: choice index out of range")
	ErrInvalidSlot   = errors.New("flow: invalid service slot")
	ErrStepLocked    = errors.New("flow: step requirements are not met")
	ErrWrongMode     = errors.New("flow: operation is not allowed in current mode")
	ErrInternal      = errors.New("flow: internal error")
)
