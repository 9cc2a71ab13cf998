package flow

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/internal/usecase/identify_customer"
	"github.com/m04kA/SMC-CarwashService/internal/usecase/register_client"
	"github.com/m04kA/SMC-CarwashService/pkg/ptr"
	"github.com/m04kA/SMC-CarwashService/pkg/types"
)

// Текст формы регистрации, когда по ключу ничего не нашлось.
// Легаси-интерфейс показывает его на иврите.
const notFoundMsg = "לא נמצאו רשומות, נא להירשם"

// Flow движок прохода клиента: ввод ключа, разрешение личности,
// три шага бронирования и подтверждение. Сам движок состояния не хранит,
// все в State вызывающей стороны.
type Flow struct {
	identifier Identifier
	registrar  Registrar
	orders     OrderCreator
	catalog    CatalogProvider
	pref       Preference
	window     domain.Window
	clock      Clock
	logger     Logger
}

// NewFlow создает новый экземпляр движка
func NewFlow(
	identifier Identifier,
	registrar Registrar,
	orders OrderCreator,
	catalog CatalogProvider,
	pref Preference,
	window domain.Window,
	logger Logger,
) *Flow {
	return &Flow{
		identifier: identifier,
		registrar:  registrar,
		orders:     orders,
		catalog:    catalog,
		pref:       pref,
		window:     window,
		clock:      RealClock{},
		logger:     logger,
	}
}

// Resume пытается продолжить по сохраненному "запомнить меня".
// Отсутствие сохраненного ключа не ошибка: остаемся на вводе.
func (f *Flow) Resume(ctx context.Context, st *State) error {
	key, ok := f.pref.Load(ctx)
	if !ok || key == "" {
		return nil
	}
	f.logger.Info("Resume: restoring flow from remembered key")
	return f.Identify(ctx, st, key, true)
}

// Identify разрешает свободный ввод в личность клиента
func (f *Flow) Identify(ctx context.Context, st *State, key string, remember bool) error {
	if st.Mode != ModeInput {
		return ErrWrongMode
	}

	result, err := f.identifier.Execute(ctx, key)
	if err != nil {
		if errors.Is(err, identify_customer.ErrInvalidKey) {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
		f.logger.Error("Identify: usecase error for key=%s: %v", key, err)
		return fmt.Errorf("%w: identify: %v", ErrInternal, err)
	}

	st.Key = key
	st.KeyKind = domain.ClassifyKey(key)
	st.Remember = remember
	st.Degraded = result.Degraded
	st.bump()

	switch result.Outcome {
	case identify_customer.OutcomeFound:
		return f.enterFound(ctx, st, *result.Record, false)
	case identify_customer.OutcomeChoose:
		st.Mode = ModeChoose
		st.Candidates = result.Choices
		st.ChooseKind = string(result.ChooseKind)
		return nil
	case identify_customer.OutcomeRegister:
		st.Mode = ModeRegister
		st.RegisterSource = result.RegisterSource
		st.Prefill = result.Prefill
		st.NotFoundMsg = notFoundMsg
		return nil
	default:
		return fmt.Errorf("%w: unexpected outcome %q", ErrInternal, result.Outcome)
	}
}

// Choose выбирает одного из кандидатов
func (f *Flow) Choose(ctx context.Context, st *State, index int) error {
	if st.Mode != ModeChoose {
		return ErrWrongMode
	}
	if index < 0 || index >= len(st.Candidates) {
		return fmt.Errorf("%w: index=%d of %d", ErrInvalidChoice, index, len(st.Candidates))
	}
	record := st.Candidates[index]
	st.Candidates = nil
	st.ChooseKind = ""
	st.bump()
	return f.enterFound(ctx, st, record, false)
}

// Register создает нового клиента и продолжает бронирование
func (f *Flow) Register(ctx context.Context, st *State, req *register_client.Request) error {
	if st.Mode != ModeRegister {
		return ErrWrongMode
	}

	// Поле источника заблокировано на форме: подставляем ключ ввода
	switch st.RegisterSource {
	case domain.KindPhone:
		req.Phone = st.Prefill.Phone
	case domain.KindPlate:
		req.CarNum = st.Prefill.CarNum
	}

	resp, err := f.registrar.Execute(ctx, req)
	if err != nil {
		return err
	}

	st.bump()
	return f.enterFound(ctx, st, resp.Record, true)
}

// enterFound переводит флоу в режим бронирования: грузит каталог услуг
// и филиалы, сеет дефолтные дату/время
func (f *Flow) enterFound(ctx context.Context, st *State, record domain.CustomerRecord, welcome bool) error {
	carType := record.CarType
	if carType == "" {
		carType = domain.UnspecifiedCarType
	}

	works, err := f.catalog.WorksByCarType(ctx, carType)
	if err != nil {
		f.logger.Error("enterFound: load works failed for carType=%s: %v", carType, err)
		return fmt.Errorf("%w: load works: %v", ErrInternal, err)
	}

	branches, err := f.catalog.Branches(ctx)
	if err != nil {
		f.logger.Error("enterFound: load branches failed: %v", err)
		return fmt.Errorf("%w: load branches: %v", ErrInternal, err)
	}

	now := f.clock.Now()
	date, slot := f.window.Normalize(now)

	st.Mode = ModeFound
	st.Step = StepServices
	st.Record = &record
	st.Welcome = welcome
	st.NotFoundMsg = ""
	st.Works = works
	st.Services = nil
	st.Branches = branches
	st.BranchID = 0
	st.BranchName = ""
	st.Date = date
	st.Time = slot
	st.Slots = f.window.Grid(date, now)
	st.Comments = ""
	st.OrderID = nil

	if st.Remember {
		f.pref.Save(ctx, st.Key)
	}

	f.logger.Info("enterFound: car=%s carType=%s works=%d branches=%d",
		record.CarNum, carType, len(works), len(branches))
	return nil
}

// SetService выставляет слот услуги. Пустое значение убирает слот.
// Новый слот открывается только следом за заполненным, максимум пять,
// одна услуга не выбирается дважды.
func (f *Flow) SetService(st *State, slot int, value string) error {
	if st.Mode != ModeFound || st.Step != StepServices {
		return ErrWrongMode
	}
	if slot < 0 || slot >= domain.MaxServiceSlots {
		return fmt.Errorf("%w: slot=%d", ErrInvalidSlot, slot)
	}

	if value == "" {
		if slot >= len(st.Services) {
			return fmt.Errorf("%w: slot=%d is not open", ErrInvalidSlot, slot)
		}
		st.Services = append(st.Services[:slot], st.Services[slot+1:]...)
		st.bump()
		return nil
	}

	if !f.workExists(st, value) {
		return fmt.Errorf("%w: unknown service %q", ErrInvalidSlot, value)
	}
	for i, svc := range st.Services {
		if i != slot && svc == value {
			return fmt.Errorf("%w: service %q already selected", ErrInvalidSlot, value)
		}
	}

	switch {
	case slot < len(st.Services):
		st.Services[slot] = value
	case slot == len(st.Services):
		// Открыть новый слот можно, только если предыдущий заполнен
		if slot > 0 && st.Services[slot-1] == "" {
			return fmt.Errorf("%w: previous slot is empty", ErrInvalidSlot)
		}
		st.Services = append(st.Services, value)
	default:
		return fmt.Errorf("%w: slot=%d is not open", ErrInvalidSlot, slot)
	}

	st.bump()
	return nil
}

// SetBranch выбирает филиал из загруженного списка
func (f *Flow) SetBranch(st *State, branchID int64) error {
	if st.Mode != ModeFound || st.Step != StepSchedule {
		return ErrWrongMode
	}
	for _, b := range st.Branches {
		if b.ID == branchID {
			st.BranchID = b.ID
			st.BranchName = b.Name
			st.bump()
			return nil
		}
	}
	return fmt.Errorf("%w: unknown branch id=%d", ErrInvalidChoice, branchID)
}

// SetDate выбирает дату и пересеивает слоты времени.
// Если текущее время в новую сетку не попадает, берется первый слот.
func (f *Flow) SetDate(st *State, date time.Time) error {
	if st.Mode != ModeFound || st.Step != StepSchedule {
		return ErrWrongMode
	}

	now := f.clock.Now()
	slots := f.window.Grid(date, now)
	if len(slots) == 0 {
		return fmt.Errorf("%w: no slots for date %s", ErrInvalidChoice, date.Format(domain.DateFormat))
	}

	st.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	st.Slots = slots
	if !slotListed(slots, st.Time) {
		st.Time = slots[0]
	}
	st.bump()
	return nil
}

// SetTime выбирает время из сетки слотов
func (f *Flow) SetTime(st *State, t types.TimeString) error {
	if st.Mode != ModeFound || st.Step != StepSchedule {
		return ErrWrongMode
	}
	if !slotListed(st.Slots, t) {
		return fmt.Errorf("%w: time %s is not a selectable slot", ErrInvalidChoice, t)
	}
	st.Time = t
	st.bump()
	return nil
}

// SetComments выставляет комментарий клиента
func (f *Flow) SetComments(st *State, text string) error {
	if st.Mode != ModeFound {
		return ErrWrongMode
	}
	st.Comments = text
	st.bump()
	return nil
}

// Advance переходит на следующий шаг, если текущий завершен
func (f *Flow) Advance(st *State) error {
	if st.Mode != ModeFound {
		return ErrWrongMode
	}

	switch st.Step {
	case StepServices:
		if len(st.Works) == 0 {
			return fmt.Errorf("%w: no services available for this car type", ErrStepLocked)
		}
		if !st.ServicesChosen() {
			return fmt.Errorf("%w: choose at least one service", ErrStepLocked)
		}
		st.Step = StepSchedule
	case StepSchedule:
		if !st.ScheduleChosen() {
			return fmt.Errorf("%w: choose branch, date and time", ErrStepLocked)
		}
		st.Step = StepConfirm
	default:
		return fmt.Errorf("%w: step=%d", ErrWrongMode, st.Step)
	}

	st.bump()
	return nil
}

// Back возвращается на шаг назад. С первого шага - на экран ввода
// с полным сбросом личности; выбор и регистрация тоже откатываются на ввод.
func (f *Flow) Back(st *State) error {
	switch st.Mode {
	case ModeChoose, ModeRegister:
		*st = State{Generation: st.Generation, Mode: ModeInput}
	case ModeFound:
		if st.Step > StepServices {
			st.Step--
		} else {
			*st = State{Generation: st.Generation, Mode: ModeInput}
		}
	default:
		return ErrWrongMode
	}
	st.bump()
	return nil
}

// Confirm создает заказ из собранного состояния
func (f *Flow) Confirm(ctx context.Context, st *State) error {
	if st.Mode != ModeFound || st.Step != StepConfirm {
		return ErrWrongMode
	}
	if !st.ServicesChosen() || !st.ScheduleChosen() {
		return fmt.Errorf("%w: order is not fully assembled", ErrStepLocked)
	}

	req := &domain.OrderRequest{
		Record:     *st.Record,
		Services:   st.ChosenServices(),
		BranchID:   st.BranchID,
		BranchName: st.BranchName,
		Date:       st.Date,
		Time:       st.Time,
		Comments:   st.Comments,
	}

	result, err := f.orders.Execute(ctx, req)
	if err != nil {
		return err
	}

	st.OrderID = result.OrderID
	if st.OrderID == nil {
		// Заказ создан, но id прочитать не удалось: показываем
		// синтетический номер, чтобы клиенту было на что сослаться
		st.OrderID = ptr.Ptr(synthesizeOrderID())
	}
	st.Mode = ModeDone
	st.bump()

	f.logger.Info("Confirm: order created for car=%s branch=%d id=%s",
		st.Record.CarNum, st.BranchID, *st.OrderID)
	return nil
}

// Restart начинает новый проход, сохраняя счетчик поколений сессии
func (f *Flow) Restart(st *State) {
	*st = State{Generation: st.Generation, Mode: ModeInput}
	st.bump()
}

// Forget сбрасывает "запомнить меня"
func (f *Flow) Forget(ctx context.Context, st *State) {
	st.Remember = false
	f.pref.Clear(ctx)
	st.bump()
}

func (f *Flow) workExists(st *State, name string) bool {
	for _, w := range st.Works {
		if w.Name == name {
			return true
		}
	}
	return false
}

func slotListed(slots []types.TimeString, t types.TimeString) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}

// synthesizeOrderID порождает номер вида CC-123456
func synthesizeOrderID() string {
	u := uuid.New()
	n := binary.BigEndian.Uint32(u[0:4]) % 1000000
	return fmt.Sprintf("%s%06d", domain.OrderIDPrefix, n)
}
