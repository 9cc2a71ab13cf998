package appointments

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointments.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointments.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointments.repository: failed to scan row")

	// ErrDuplicateKey возвращается, когда зеркальная вставка упала на
	// конфликте первичного ключа или уникального индекса (mssql 2627/2601)
	ErrDuplicateKey = errors.New("appointments.repository: duplicate key on mirror insert")

	// ErrMirrorRowNotFound возвращается, когда update зеркальной строки
	// не затронул ни одной записи
	ErrMirrorRowNotFound = errors.New("appointments.repository: mirror row not found")
)
