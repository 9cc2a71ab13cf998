package flow

import (
	"time"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/pkg/types"
)

// Mode экран, на котором находится клиент
type Mode string

const (
	// ModeInput свободный ввод телефона или номера машины
	ModeInput Mode = "input"
	// ModeChoose выбор из нескольких найденных кандидатов
	ModeChoose Mode = "choose"
	// ModeRegister форма регистрации нового клиента
	ModeRegister Mode = "register"
	// ModeFound клиент определен, идут шаги бронирования
	ModeFound Mode = "found"
	// ModeDone заказ создан
	ModeDone Mode = "done"
)

// Шаги бронирования в режиме found
const (
	StepServices = 1
	StepSchedule = 2
	StepConfirm  = 3
)

// State полное состояние одного прохода клиента по флоу.
// Мутируется только методами Flow, Generation растет на каждой мутации.
type State struct {
	Generation uint64
	Mode       Mode
	Step       int

	// Ввод и разрешенная личность
	Key      string
	KeyKind  domain.KeyKind
	Record   *domain.CustomerRecord
	Remember bool

	// Choose: кандидаты и ось различия
	Candidates []domain.CustomerRecord
	ChooseKind string

	// Register: источник, предзаполнение формы и текст "не найдено"
	RegisterSource domain.KeyKind
	Prefill        domain.CustomerRecord
	NotFoundMsg    string

	// Degraded часть лукапов упала, результат может быть неполным
	Degraded bool

	// Welcome одноразовый баннер после регистрации, сбрасывается при чтении
	Welcome bool

	// Шаг 1: каталог услуг и выбранные слоты
	Works    []domain.WorkItem
	Services []string

	// Шаг 2: филиал, дата и время
	Branches   []domain.Branch
	BranchID   int64
	BranchName string
	Date       time.Time
	Time       types.TimeString
	Slots      []types.TimeString

	// Шаг 3: комментарий и результат
	Comments string
	OrderID  *string
}

// NewState возвращает состояние свежего прохода
func NewState() *State {
	return &State{Mode: ModeInput}
}

// bump помечает состояние измененным
func (s *State) bump() {
	s.Generation++
}

// ServicesChosen true, если выбрана хотя бы одна услуга
func (s *State) ServicesChosen() bool {
	for _, svc := range s.Services {
		if svc != "" {
			return true
		}
	}
	return false
}

// ChosenServices возвращает непустые слоты в порядке выбора
func (s *State) ChosenServices() []string {
	chosen := make([]string, 0, len(s.Services))
	for _, svc := range s.Services {
		if svc != "" {
			chosen = append(chosen, svc)
		}
	}
	return chosen
}

// ScheduleChosen true, если выбраны филиал, дата и время
func (s *State) ScheduleChosen() bool {
	return s.BranchID > 0 && !s.Date.IsZero() && !s.Time.IsZero()
}

// TakeWelcome читает и сбрасывает одноразовый баннер
func (s *State) TakeWelcome() bool {
	welcome := s.Welcome
	s.Welcome = false
	return welcome
}
