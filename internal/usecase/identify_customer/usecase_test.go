package identify_customer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

// stubLookup вызывается из горутин use case, поэтому под мьютексом
type stubLookup struct {
	mu         sync.Mutex
	byPhone    map[string][]domain.CustomerRecord
	byPhoneErr error
	fuzzy      []domain.CustomerRecord
	fuzzyErr   error
	phones     []string
	phonesErr  error
	phoneCalls []string
}

func (s *stubLookup) ListByPhone(_ context.Context, phone string) ([]domain.CustomerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phoneCalls = append(s.phoneCalls, phone)
	if s.byPhoneErr != nil {
		return nil, s.byPhoneErr
	}
	return s.byPhone[phone], nil
}

func (s *stubLookup) SearchByCarPhone(_ context.Context, _, _ string) ([]domain.CustomerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fuzzyErr != nil {
		return nil, s.fuzzyErr
	}
	return s.fuzzy, nil
}

func (s *stubLookup) PhonesByCar(_ context.Context, _ string) ([]string, error) {
	if s.phonesErr != nil {
		return nil, s.phonesErr
	}
	return s.phones, nil
}

func record(car, phone, carType string) domain.CustomerRecord {
	return domain.CustomerRecord{
		CarNum:       car,
		Phone:        phone,
		DriverName:   "Дима",
		CustomerName: "Тест",
		CarType:      carType,
	}
}

func TestExecute_InvalidKey(t *testing.T) {
	uc := NewUseCase(&stubLookup{}, stubLogger{})

	_, err := uc.Execute(context.Background(), "not-a-key")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestExecute_Phone_NoMatchesGoesToRegister(t *testing.T) {
	uc := NewUseCase(&stubLookup{}, stubLogger{})

	result, err := uc.Execute(context.Background(), "0501234567")
	require.NoError(t, err)

	assert.Equal(t, OutcomeRegister, result.Outcome)
	assert.Equal(t, domain.KindPhone, result.RegisterSource)
	assert.Equal(t, "0501234567", result.Prefill.Phone)
	assert.False(t, result.Degraded)
}

func TestExecute_Phone_SingleMatchIsFound(t *testing.T) {
	lookup := &stubLookup{
		byPhone: map[string][]domain.CustomerRecord{
			"0501234567": {record("1234567", "0501234567", "פרטי")},
		},
	}
	uc := NewUseCase(lookup, stubLogger{})

	result, err := uc.Execute(context.Background(), "0501234567")
	require.NoError(t, err)

	assert.Equal(t, OutcomeFound, result.Outcome)
	require.NotNil(t, result.Record)
	assert.Equal(t, "1234567", result.Record.CarNum)
}

func TestExecute_Phone_MergesAndDedupesSources(t *testing.T) {
	// Точный список и нечеткий поиск видят одну и ту же машину,
	// плюс у нечеткого есть вторая
	lookup := &stubLookup{
		byPhone: map[string][]domain.CustomerRecord{
			"0501234567": {record("1234567", "0501234567", "פרטי")},
		},
		fuzzy: []domain.CustomerRecord{
			record("1234567", "0501234567", "פרטי"),
			record("7654321", "0501234567", "מסחרי"),
		},
	}
	uc := NewUseCase(lookup, stubLogger{})

	result, err := uc.Execute(context.Background(), "0501234567")
	require.NoError(t, err)

	assert.Equal(t, OutcomeChoose, result.Outcome)
	assert.Equal(t, ChooseCars, result.ChooseKind)
	require.Len(t, result.Choices, 2)
	assert.Equal(t, "1234567", result.Choices[0].CarNum)
	assert.Equal(t, "7654321", result.Choices[1].CarNum)
}

func TestExecute_Phone_PartialFailureDegrades(t *testing.T) {
	lookup := &stubLookup{
		byPhoneErr: errors.New("timeout"),
		fuzzy:      []domain.CustomerRecord{record("1234567", "0501234567", "פרטי")},
	}
	uc := NewUseCase(lookup, stubLogger{})

	result, err := uc.Execute(context.Background(), "0501234567")
	require.NoError(t, err)

	assert.Equal(t, OutcomeFound, result.Outcome)
	assert.True(t, result.Degraded)
}

func TestExecute_Phone_EmptyCarNumRowsAreDropped(t *testing.T) {
	lookup := &stubLookup{
		byPhone: map[string][]domain.CustomerRecord{
			"0501234567": {{Phone: "0501234567", CustomerName: "Тест"}},
		},
	}
	uc := NewUseCase(lookup, stubLogger{})

	result, err := uc.Execute(context.Background(), "0501234567")
	require.NoError(t, err)

	assert.Equal(t, OutcomeRegister, result.Outcome)
}

func TestExecute_Plate_NoHistoryGoesToRegister(t *testing.T) {
	uc := NewUseCase(&stubLookup{}, stubLogger{})

	result, err := uc.Execute(context.Background(), "1234567")
	require.NoError(t, err)

	assert.Equal(t, OutcomeRegister, result.Outcome)
	assert.Equal(t, domain.KindPlate, result.RegisterSource)
	assert.Equal(t, "1234567", result.Prefill.CarNum)
}

func TestExecute_Plate_LookupFailureDegradesToRegister(t *testing.T) {
	lookup := &stubLookup{phonesErr: errors.New("down")}
	uc := NewUseCase(lookup, stubLogger{})

	result, err := uc.Execute(context.Background(), "1234567")
	require.NoError(t, err)

	assert.Equal(t, OutcomeRegister, result.Outcome)
	assert.True(t, result.Degraded)
}

func TestExecute_Plate_SinglePhoneIsFound(t *testing.T) {
	lookup := &stubLookup{
		phones: []string{"0501234567"},
		byPhone: map[string][]domain.CustomerRecord{
			"0501234567": {
				record("1234567", "0501234567", "פרטי"),
				// Чужая машина этого телефона отфильтровывается
				record("9999999", "0501234567", "פרטי"),
			},
		},
	}
	uc := NewUseCase(lookup, stubLogger{})

	result, err := uc.Execute(context.Background(), "1234567")
	require.NoError(t, err)

	assert.Equal(t, OutcomeFound, result.Outcome)
	require.NotNil(t, result.Record)
	assert.Equal(t, "1234567", result.Record.CarNum)
	assert.Equal(t, "0501234567", result.Record.Phone)
}

func TestExecute_Plate_MultiplePhonesGoToChoose(t *testing.T) {
	lookup := &stubLookup{
		phones: []string{"0501111111", "0502222222"},
		byPhone: map[string][]domain.CustomerRecord{
			"0501111111": {record("1234567", "0501111111", "פרטי")},
			"0502222222": {record("1234567", "0502222222", "פרטי")},
		},
	}
	uc := NewUseCase(lookup, stubLogger{})

	result, err := uc.Execute(context.Background(), "1234567")
	require.NoError(t, err)

	assert.Equal(t, OutcomeChoose, result.Outcome)
	assert.Equal(t, ChoosePhones, result.ChooseKind)
	require.Len(t, result.Choices, 2)
	// Порядок кандидатов следует порядку телефонов, не порядку горутин
	assert.Equal(t, "0501111111", result.Choices[0].Phone)
	assert.Equal(t, "0502222222", result.Choices[1].Phone)
}
