package identify_customer

import "errors"

var (
	// ErrInvalidKey возвращается, когда ввод не является ни телефоном,
	// ни номером машины
	ErrInvalidKey = errors.New("identify_customer: input is neither a phone nor a plate")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("identify_customer: internal error")
)
