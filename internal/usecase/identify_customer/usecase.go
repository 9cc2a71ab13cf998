package identify_customer

import (
	"context"
	"strings"
	"sync"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
)

// UseCase use case идентификации клиента по телефону или номеру машины
type UseCase struct {
	lookup CustomerLookup
	logger Logger
}

// NewUseCase создает новый экземпляр use case идентификации
func NewUseCase(lookup CustomerLookup, logger Logger) *UseCase {
	return &UseCase{
		lookup: lookup,
		logger: logger,
	}
}

// Execute классифицирует ввод и сводит результаты лукапов к одному из
// исходов: register / choose / found. Ошибки read-запросов деградируют
// до пустых списков и никогда не блокируют флоу (Result.Degraded).
func (uc *UseCase) Execute(ctx context.Context, input string) (*Result, error) {
	key := strings.TrimSpace(input)

	switch domain.ClassifyKey(key) {
	case domain.KindPhone:
		return uc.resolvePhone(ctx, key), nil
	case domain.KindPlate:
		return uc.resolvePlate(ctx, key), nil
	default:
		uc.logger.Warn("Identify: invalid key %q", key)
		return nil, ErrInvalidKey
	}
}

// resolvePhone ищет машины по телефону: два независимых источника
// (точный список по телефону и нечеткий поиск процедурой) опрашиваются
// параллельно, ошибки каждого дают пустой список
func (uc *UseCase) resolvePhone(ctx context.Context, phone string) *Result {
	var (
		wg       sync.WaitGroup
		exact    []domain.CustomerRecord
		fuzzy    []domain.CustomerRecord
		degraded bool
		mu       sync.Mutex
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		rows, err := uc.lookup.ListByPhone(ctx, phone)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			uc.logger.Warn("Identify: ListByPhone failed for phone=%s: %v", phone, err)
			degraded = true
			return
		}
		exact = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := uc.lookup.SearchByCarPhone(ctx, "", phone)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			uc.logger.Warn("Identify: SearchByCarPhone failed for phone=%s: %v", phone, err)
			degraded = true
			return
		}
		fuzzy = rows
	}()
	wg.Wait()

	merged := dedupeByCar(append(append([]domain.CustomerRecord{}, exact...), fuzzy...))
	uc.logger.Info("Identify: phone=%s resolved to %d unique cars (degraded=%v)",
		phone, len(merged), degraded)

	switch len(merged) {
	case 0:
		return &Result{
			Outcome:        OutcomeRegister,
			RegisterSource: domain.KindPhone,
			Prefill:        domain.CustomerRecord{Phone: phone},
			Degraded:       degraded,
		}
	case 1:
		rec := merged[0]
		return &Result{Outcome: OutcomeFound, Record: &rec, Degraded: degraded}
	default:
		return &Result{
			Outcome:    OutcomeChoose,
			Choices:    merged,
			ChooseKind: ChooseCars,
			Degraded:   degraded,
		}
	}
}

// resolvePlate ищет телефоны по машине: сперва все телефоны с историей
// по этому номеру, затем список машин каждого телефона параллельно,
// оставляя только строки этой машины
func (uc *UseCase) resolvePlate(ctx context.Context, plate string) *Result {
	registerResult := func(degraded bool) *Result {
		return &Result{
			Outcome:        OutcomeRegister,
			RegisterSource: domain.KindPlate,
			Prefill:        domain.CustomerRecord{CarNum: plate},
			Degraded:       degraded,
		}
	}

	phones, err := uc.lookup.PhonesByCar(ctx, plate)
	if err != nil {
		uc.logger.Warn("Identify: PhonesByCar failed for plate=%s: %v", plate, err)
		return registerResult(true)
	}
	if len(phones) == 0 {
		uc.logger.Info("Identify: plate=%s has no phone history", plate)
		return registerResult(false)
	}

	// Результаты складываются по индексу телефона, чтобы порядок
	// кандидатов не зависел от порядка завершения горутин
	var (
		wg      sync.WaitGroup
		results = make([][]domain.CustomerRecord, len(phones))
		failed  = make([]bool, len(phones))
	)
	for i, phone := range phones {
		wg.Add(1)
		go func(i int, phone string) {
			defer wg.Done()
			rows, err := uc.lookup.ListByPhone(ctx, phone)
			if err != nil {
				uc.logger.Warn("Identify: ListByPhone failed for phone=%s (plate=%s): %v", phone, plate, err)
				failed[i] = true
				return
			}
			for _, row := range rows {
				if row.CarNum == plate {
					results[i] = append(results[i], row)
				}
			}
		}(i, phone)
	}
	wg.Wait()

	degraded := false
	merged := make([]domain.CustomerRecord, 0)
	for i := range phones {
		if failed[i] {
			degraded = true
		}
		merged = append(merged, results[i]...)
	}

	unique := dedupeByCarPhone(merged)
	uc.logger.Info("Identify: plate=%s resolved to %d unique (phone, record) pairs (degraded=%v)",
		plate, len(unique), degraded)

	switch len(unique) {
	case 0:
		return registerResult(degraded)
	case 1:
		rec := unique[0]
		return &Result{Outcome: OutcomeFound, Record: &rec, Degraded: degraded}
	default:
		return &Result{
			Outcome:    OutcomeChoose,
			Choices:    unique,
			ChooseKind: ChoosePhones,
			Degraded:   degraded,
		}
	}
}

// dedupeByCar оставляет первую запись на каждый ключ (машина, тип),
// отбрасывая строки без номера машины
func dedupeByCar(records []domain.CustomerRecord) []domain.CustomerRecord {
	seen := make(map[string]struct{}, len(records))
	result := make([]domain.CustomerRecord, 0, len(records))
	for _, rec := range records {
		if rec.IsEmpty() {
			continue
		}
		key := rec.CarKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, rec)
	}
	return result
}

// dedupeByCarPhone оставляет первую запись на каждый ключ
// (машина, тип, телефон), отбрасывая строки без номера машины
func dedupeByCarPhone(records []domain.CustomerRecord) []domain.CustomerRecord {
	seen := make(map[string]struct{}, len(records))
	result := make([]domain.CustomerRecord, 0, len(records))
	for _, rec := range records {
		if rec.IsEmpty() {
			continue
		}
		key := rec.CarPhoneKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, rec)
	}
	return result
}
