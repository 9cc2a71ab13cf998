package register_client

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/internal/infra/storage/appointments"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type stubMirror struct {
	err  error
	rows []appointments.MirrorRow
}

func (s *stubMirror) MirrorInsert(_ context.Context, row appointments.MirrorRow) error {
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, row)
	return nil
}

type stubLookup struct {
	records []domain.CustomerRecord
	err     error
}

func (s *stubLookup) SearchByCarPhone(_ context.Context, _, _ string) ([]domain.CustomerRecord, error) {
	return s.records, s.err
}

func validRequest() *Request {
	return &Request{
		CustomerName: "כהן",
		DriverName:   "דוד",
		CarNum:       "1234567",
		CarType:      "פרטי",
		Phone:        "0501234567",
	}
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := NewUseCase(&stubMirror{}, &stubLookup{}, stubLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing customer name", func(r *Request) { r.CustomerName = "" }},
		{"missing driver name", func(r *Request) { r.DriverName = "" }},
		{"missing car number", func(r *Request) { r.CarNum = "" }},
		{"missing car type", func(r *Request) { r.CarType = "" }},
		{"car number too short", func(r *Request) { r.CarNum = "12345" }},
		{"car number with letters", func(r *Request) { r.CarNum = "12a4567" }},
		{"car number with decimal point", func(r *Request) { r.CarNum = "123.456" }},
		{"car number with sign", func(r *Request) { r.CarNum = "+1234567" }},
		{"phone without leading zero", func(r *Request) { r.Phone = "501234567" }},
		{"phone too short", func(r *Request) { r.Phone = "05012345" }},
		{"phone with decimal point", func(r *Request) { r.Phone = "0123.4567" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_InsertsMirrorRowWithDefaults(t *testing.T) {
	mirror := &stubMirror{}
	uc := NewUseCase(mirror, &stubLookup{}, stubLogger{})

	before := time.Now()
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, mirror.rows, 1)
	row := mirror.rows[0]
	assert.EqualValues(t, domain.DefaultCustomerID, row.CustomerID)
	assert.EqualValues(t, domain.DefaultInternalID, row.InternalID)
	assert.Equal(t, "1234567", row.CarNum)
	assert.Equal(t, "0501234567", row.Phone)
	assert.False(t, row.SetDate.Before(before))

	// Select-back не нашел строку - ответ из исходного запроса
	assert.Equal(t, "1234567", resp.Record.CarNum)
	assert.Equal(t, "פרטי", resp.Record.CarType)
}

func TestExecute_EmptyCarTypeIsRejectedBeforeWrite(t *testing.T) {
	mirror := &stubMirror{}
	uc := NewUseCase(mirror, &stubLookup{}, stubLogger{})

	req := validRequest()
	req.CarType = ""

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, mirror.rows)
}

func TestExecute_DuplicateKeyIsConflict(t *testing.T) {
	mirror := &stubMirror{
		err: fmt.Errorf("%w: pk violation", appointments.ErrDuplicateKey),
	}
	uc := NewUseCase(mirror, &stubLookup{}, stubLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestExecute_SelectBackPrefersStoredRecord(t *testing.T) {
	stored := domain.CustomerRecord{
		CarNum:       "1234567",
		Phone:        "0501234567",
		DriverName:   "דוד",
		CustomerName: "כהן בע\"מ",
		CarType:      "פרטי",
	}
	uc := NewUseCase(&stubMirror{}, &stubLookup{records: []domain.CustomerRecord{stored}}, stubLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, stored, resp.Record)
}

func TestExecute_SelectBackFailureIsNotFatal(t *testing.T) {
	uc := NewUseCase(&stubMirror{}, &stubLookup{err: errors.New("timeout")}, stubLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "1234567", resp.Record.CarNum)
}

func TestExecute_MirrorFailureIsInternal(t *testing.T) {
	uc := NewUseCase(&stubMirror{err: errors.New("connection reset")}, &stubLookup{}, stubLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
