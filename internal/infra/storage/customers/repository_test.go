package customers

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestSearchByCarPhone_BuildsLikePatterns(t *testing.T) {
	repo, mock := newRepo(t)

	rows := sqlmock.NewRows([]string{"CostomerName", "DriverName", "CarNum", "TypeOfCar", "PhoneN"}).
		AddRow(" כהן ", "דוד", "1234567", "פרטי", " 0501234567 ")

	mock.ExpectQuery("dbo.CheckCarPhoneForAppointments").
		WithArgs(sql.Named("CarNum", "%1234567%"), sql.Named("PhoneN", "")).
		WillReturnRows(rows)

	records, err := repo.SearchByCarPhone(context.Background(), "1234567", "")
	require.NoError(t, err)

	require.Len(t, records, 1)
	// Легаси-колонки нормализуются: trim и скан по имени колонки
	assert.Equal(t, "כהן", records[0].CustomerName)
	assert.Equal(t, "0501234567", records[0].Phone)
	assert.Equal(t, "1234567", records[0].CarNum)
	assert.Equal(t, "פרטי", records[0].CarType)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByPhone(t *testing.T) {
	repo, mock := newRepo(t)

	rows := sqlmock.NewRows([]string{"CarNum", "PhoneN", "TypeOfCar", "DriverName", "CostomerName"}).
		AddRow("1234567", "0501234567", "פרטי", "דוד", "כהן").
		AddRow("7654321", "0501234567", "מסחרי", nil, nil)

	mock.ExpectQuery("SELECT DISTINCT CarNum, PhoneN, TypeOfCar, DriverName, CostomerName FROM Wash.dbo.InfoForAppointments").
		WithArgs("0501234567").
		WillReturnRows(rows)

	records, err := repo.ListByPhone(context.Background(), "0501234567")
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "1234567", records[0].CarNum)
	assert.Equal(t, "7654321", records[1].CarNum)
	assert.Empty(t, records[1].DriverName, "NULL становится пустой строкой")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPhonesByCar_FiltersBlankPhones(t *testing.T) {
	repo, mock := newRepo(t)

	rows := sqlmock.NewRows([]string{"PhoneN"}).
		AddRow("0501111111").
		AddRow("   ").
		AddRow("0502222222")

	mock.ExpectQuery("SELECT DISTINCT PhoneN FROM Wash.dbo.InfoForAppointments").
		WithArgs("1234567").
		WillReturnRows(rows)

	phones, err := repo.PhonesByCar(context.Background(), "1234567")
	require.NoError(t, err)
	assert.Equal(t, []string{"0501111111", "0502222222"}, phones)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpcomingByCar(t *testing.T) {
	t.Run("has future booking", func(t *testing.T) {
		repo, mock := newRepo(t)
		next := time.Date(2026, 4, 1, 10, 15, 0, 0, time.UTC)

		mock.ExpectQuery("SELECT SetDate FROM Wash.dbo.InfoForAppointments").
			WithArgs("1234567").
			WillReturnRows(sqlmock.NewRows([]string{"SetDate"}).AddRow(next))

		upcoming, err := repo.UpcomingByCar(context.Background(), "1234567")
		require.NoError(t, err)
		assert.True(t, upcoming.HasBooking)
		require.NotNil(t, upcoming.NextDate)
		assert.Equal(t, next, *upcoming.NextDate)
	})

	t.Run("no future booking", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery("SELECT SetDate FROM Wash.dbo.InfoForAppointments").
			WithArgs("1234567").
			WillReturnError(sql.ErrNoRows)

		upcoming, err := repo.UpcomingByCar(context.Background(), "1234567")
		require.NoError(t, err)
		assert.False(t, upcoming.HasBooking)
		assert.Nil(t, upcoming.NextDate)
	})
}

func TestQueryFailuresAreWrapped(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT DISTINCT CarNum").
		WithArgs("0501234567").
		WillReturnError(assert.AnError)

	_, err := repo.ListByPhone(context.Background(), "0501234567")
	assert.ErrorIs(t, err, ErrExecQuery)
}
