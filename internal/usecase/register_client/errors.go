package register_client

import "errors"

var (
	// ErrInvalidInput возвращается, когда не заполнены обязательные поля
	// или телефон/номер машины не проходят валидацию
	ErrInvalidInput = errors.New("register_client: invalid input data")

	// ErrAlreadyRegistered возвращается, когда пара клиент/машина уже
	// существует (конфликт ключа зеркальной таблицы)
	ErrAlreadyRegistered = errors.New("register_client: client already registered")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_client: internal error")
)
