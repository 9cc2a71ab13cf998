package customers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type stubRepo struct {
	active      []string
	activeErr   error
	historic    []string
	historicErr error
}

func (s *stubRepo) SearchByCarPhone(context.Context, string, string) ([]domain.CustomerRecord, error) {
	return nil, nil
}
func (s *stubRepo) ListByPhone(context.Context, string) ([]domain.CustomerRecord, error) {
	return nil, nil
}
func (s *stubRepo) PhonesByCar(context.Context, string) ([]string, error) { return nil, nil }
func (s *stubRepo) ActiveCustomerNames(context.Context) ([]string, error) {
	return s.active, s.activeErr
}
func (s *stubRepo) HistoricCustomerNames(context.Context) ([]string, error) {
	return s.historic, s.historicErr
}
func (s *stubRepo) UpcomingByCar(context.Context, string) (domain.UpcomingAppointment, error) {
	return domain.UpcomingAppointment{}, nil
}

func TestCustomerNames_MergesActiveFirst(t *testing.T) {
	svc := NewService(&stubRepo{
		active:   []string{"אלון", "כהן"},
		historic: []string{"כהן", "  ", "לוי"},
	}, stubLogger{})

	names, err := svc.CustomerNames(context.Background())
	require.NoError(t, err)

	// Активные впереди, дубликаты и пустые из истории отброшены
	assert.Equal(t, []string{"אלון", "כהן", "לוי"}, names)
}

func TestCustomerNames_HistoricFailureIsNotFatal(t *testing.T) {
	svc := NewService(&stubRepo{
		active:      []string{"אלון"},
		historicErr: errors.New("timeout"),
	}, stubLogger{})

	names, err := svc.CustomerNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"אלון"}, names)
}

func TestCustomerNames_ActiveFailureIsFatal(t *testing.T) {
	svc := NewService(&stubRepo{activeErr: errors.New("down")}, stubLogger{})

	_, err := svc.CustomerNames(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListByPhone_RequiresPhone(t *testing.T) {
	svc := NewService(&stubRepo{}, stubLogger{})

	_, err := svc.ListByPhone(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckAppointments_RequiresCarNum(t *testing.T) {
	svc := NewService(&stubRepo{}, stubLogger{})

	_, err := svc.CheckAppointments(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
