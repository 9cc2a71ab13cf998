package create_order

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
	"github.com/m04kA/SMC-CarwashService/pkg/ptr"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type stubRepo struct {
	insertErr    error
	inserted     []appointments.Appointment
	lastID       *int64
	lastIDErr    error
	mirrorErr    error
	mirrorRows   []appointments.MirrorRow
	updateErr    error
	updatedRows  []appointments.MirrorRow
}

func (s *stubRepo) InsertAppointment(_ context.Context, a appointments.Appointment) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, a)
	return nil
}

func (s *stubRepo) LastAppointmentID(_ context.Context, _ string, _ time.Time, _ string) (*int64, error) {
	return s.lastID, s.lastIDErr
}

func (s *stubRepo) MirrorInsert(_ context.Context, row appointments.MirrorRow) error {
	if s.mirrorErr != nil {
		return s.mirrorErr
	}
	s.mirrorRows = append(s.mirrorRows, row)
	return nil
}

func (s *stubRepo) MirrorUpdate(_ context.Context, row appointments.MirrorRow) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updatedRows = append(s.updatedRows, row)
	return nil
}

type countingMetrics struct {
	orders, updates, failures int
}

func (m *countingMetrics) IncOrdersCreated()  { m.orders++ }
func (m *countingMetrics) IncMirrorUpdates()  { m.updates++ }
func (m *countingMetrics) IncMirrorFailures() { m.failures++ }

func validOrder() *domain.OrderRequest {
	return &domain.OrderRequest{
		Record: domain.CustomerRecord{
			CarNum:       "1234567",
			Phone:        "0501234567",
			DriverName:   "דוד",
			CustomerName: "כהן",
			CarType:      "פרטי",
		},
		Services:   []string{"שטיפה חיצונית", "ווקס"},
		BranchID:   3,
		BranchName: "חיפה",
		Date:       time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Time:       "10:15",
		Comments:   "בבקשה בזהירות",
	}
}

func newUseCase(repo AppointmentWriter, metrics OrderMetrics) *UseCase {
	return NewUseCase(repo, domain.DefaultWindow, metrics, stubLogger{})
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := newUseCase(&stubRepo{}, nil)

	tests := []struct {
		name   string
		mutate func(*domain.OrderRequest)
	}{
		{"unresolved record", func(r *domain.OrderRequest) { r.Record.CarNum = "" }},
		{"no branch", func(r *domain.OrderRequest) { r.BranchID = 0 }},
		{"no services", func(r *domain.OrderRequest) { r.Services = nil }},
		{"no date", func(r *domain.OrderRequest) { r.Date = time.Time{} }},
		{"time off grid", func(r *domain.OrderRequest) { r.Time = "10:07" }},
		{"time outside window", func(r *domain.OrderRequest) { r.Time = "17:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrder()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidOrder)
		})
	}
}

func TestExecute_CreatesAppointmentAndReadsBackID(t *testing.T) {
	repo := &stubRepo{lastID: ptr.Ptr(int64(4521))}
	metrics := &countingMetrics{}
	uc := newUseCase(repo, metrics)

	result, err := uc.Execute(context.Background(), validOrder())
	require.NoError(t, err)

	require.NotNil(t, result.OrderID)
	assert.Equal(t, "CC-4521", *result.OrderID)
	assert.Equal(t, 1, metrics.orders)

	require.Len(t, repo.inserted, 1)
	a := repo.inserted[0]
	assert.Equal(t, "קביעת שטיפה - חיפה", a.Name)
	assert.Equal(t, "10:15:00", a.TimeHMS)
	assert.Equal(t, "1234567", a.CarNum)
	// Комментарий клиента впереди, следом список услуг
	assert.Equal(t, "בבקשה בזהירות שירותים: שטיפה חיצונית, ווקס", a.Comments)
	require.NotNil(t, a.CustomerID)
	assert.EqualValues(t, domain.DefaultCustomerID, *a.CustomerID)
}

func TestExecute_NoCustomerCommentKeepsServicesOnly(t *testing.T) {
	repo := &stubRepo{}
	uc := newUseCase(repo, nil)

	order := validOrder()
	order.Comments = ""

	_, err := uc.Execute(context.Background(), order)
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "שירותים: שטיפה חיצונית, ווקס", repo.inserted[0].Comments)
}

func TestExecute_UnknownIDIsStillSuccess(t *testing.T) {
	tests := []struct {
		name string
		repo *stubRepo
	}{
		{"no row found", &stubRepo{lastID: nil}},
		{"read back failed", &stubRepo{lastIDErr: errors.New("timeout")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(tt.repo, nil)

			result, err := uc.Execute(context.Background(), validOrder())
			require.NoError(t, err)
			assert.Nil(t, result.OrderID)
		})
	}
}

func TestExecute_InsertFailureIsFatal(t *testing.T) {
	metrics := &countingMetrics{}
	uc := newUseCase(&stubRepo{insertErr: errors.New("deadlock")}, metrics)

	_, err := uc.Execute(context.Background(), validOrder())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, metrics.orders)
}

func TestExecute_MirrorConflictFallsBackToUpdate(t *testing.T) {
	repo := &stubRepo{
		lastID:    ptr.Ptr(int64(7)),
		mirrorErr: fmt.Errorf("%w: unique index", appointments.ErrDuplicateKey),
	}
	metrics := &countingMetrics{}
	uc := newUseCase(repo, metrics)

	result, err := uc.Execute(context.Background(), validOrder())
	require.NoError(t, err)
	require.NotNil(t, result.OrderID)

	require.Len(t, repo.updatedRows, 1)
	row := repo.updatedRows[0]
	assert.EqualValues(t, domain.DefaultCustomerID, row.CustomerID)
	assert.Equal(t, "1234567", row.CarNum)
	assert.Equal(t, time.Date(2026, 3, 12, 10, 15, 0, 0, time.UTC), row.SetDate)

	assert.Equal(t, 1, metrics.updates)
	assert.Zero(t, metrics.failures)
}

func TestExecute_MirrorFailureIsSwallowed(t *testing.T) {
	repo := &stubRepo{
		lastID:    ptr.Ptr(int64(7)),
		mirrorErr: errors.New("connection reset"),
	}
	metrics := &countingMetrics{}
	uc := newUseCase(repo, metrics)

	result, err := uc.Execute(context.Background(), validOrder())
	require.NoError(t, err, "booking succeeds even when the mirror write fails")
	assert.NotNil(t, result.OrderID)
	assert.Empty(t, repo.updatedRows)
	assert.Equal(t, 1, metrics.failures)
}

func TestExecute_MirrorUpdateFailureIsSwallowed(t *testing.T) {
	repo := &stubRepo{
		lastID:    ptr.Ptr(int64(7)),
		mirrorErr: fmt.Errorf("%w: pk", appointments.ErrDuplicateKey),
		updateErr: errors.New("row gone"),
	}
	metrics := &countingMetrics{}
	uc := newUseCase(repo, metrics)

	_, err := uc.Execute(context.Background(), validOrder())
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.updates)
	assert.Equal(t, 1, metrics.failures)
}
