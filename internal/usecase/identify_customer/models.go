package identify_customer

import "github.com/m04kA/SMC-CarwashService/internal/domain"

// Outcome исход идентификации
type Outcome string

const (
	// OutcomeFound ровно одна запись - можно продолжать бронирование
	OutcomeFound Outcome = "found"
	// OutcomeChoose несколько кандидатов - нужен выбор пользователя
	OutcomeChoose Outcome = "choose"
	// OutcomeRegister данных нет - предлагаем регистрацию
	OutcomeRegister Outcome = "register"
)

// ChooseKind ось, по которой различаются кандидаты
type ChooseKind string

const (
	// ChooseCars один телефон - несколько машин
	ChooseCars ChooseKind = "cars"
	// ChoosePhones одна машина - несколько телефонов
	ChoosePhones ChooseKind = "phones"
)

// Result результат идентификации по свободному вводу
type Result struct {
	Outcome Outcome

	// Found: единственная запись
	Record *domain.CustomerRecord

	// Choose: кандидаты и ось различия
	Choices    []domain.CustomerRecord
	ChooseKind ChooseKind

	// Register: источник и предзаполнение (телефон или номер машины,
	// поле источника на форме блокируется)
	RegisterSource domain.KeyKind
	Prefill        domain.CustomerRecord

	// Degraded true, если часть лукапов упала и результат может быть
	// неполным ("не удалось проверить" на форме, флоу не блокируется)
	Degraded bool
}
