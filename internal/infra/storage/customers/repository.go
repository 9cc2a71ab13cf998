package customers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/pkg/mssqlbuilder"
)

// procCheckCarPhone хранимая процедура нечеткого поиска клиента
// по InfoForAppointments (LIKE по номеру машины и/или телефону)
const procCheckCarPhone = "dbo.CheckCarPhoneForAppointments"

const tableInfoForAppointments = "Wash.dbo.InfoForAppointments"

// Repository репозиторий лукапов по клиентам и машинам.
// Все строки легаси-таблиц нормализуются здесь (trim, NULL -> ""),
// наружу уходит только domain.CustomerRecord.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// SearchByCarPhone ищет записи клиентов через хранимую процедуру.
// Пустой аргумент означает "не фильтровать по этому полю" (процедура
// получает пустой шаблон вместо LIKE).
func (r *Repository) SearchByCarPhone(ctx context.Context, carNum, phone string) ([]domain.CustomerRecord, error) {
	carPattern := ""
	if carNum != "" {
		carPattern = "%" + carNum + "%"
	}
	phonePattern := ""
	if phone != "" {
		phonePattern = "%" + phone + "%"
	}

	rows, err := r.db.QueryContext(ctx, procCheckCarPhone,
		sql.Named("CarNum", carPattern),
		sql.Named("PhoneN", phonePattern),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: SearchByCarPhone - exec procedure: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRecords(rows, "SearchByCarPhone")
}

// ListByPhone возвращает все машины, привязанные к точному номеру телефона
func (r *Repository) ListByPhone(ctx context.Context, phone string) ([]domain.CustomerRecord, error) {
	query, args, err := mssqlbuilder.Select(
		"DISTINCT CarNum",
		"PhoneN",
		"TypeOfCar",
		"DriverName",
		"CostomerName",
	).
		From(tableInfoForAppointments).
		Where(squirrel.Eq{"PhoneN": phone}).
		OrderBy("CarNum").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRecords(rows, "ListByPhone")
}

// PhonesByCar возвращает DISTINCT телефоны, когда-либо записывавшиеся с этим номером машины
func (r *Repository) PhonesByCar(ctx context.Context, carNum string) ([]string, error) {
	query, args, err := mssqlbuilder.Select("DISTINCT PhoneN").
		From(tableInfoForAppointments).
		Where(squirrel.Eq{"CarNum": carNum}).
		Where("PhoneN IS NOT NULL AND LTRIM(RTRIM(PhoneN)) <> ''").
		OrderBy("PhoneN").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: PhonesByCar - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: PhonesByCar - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	phones := make([]string, 0)
	for rows.Next() {
		var phone sql.NullString
		if err := rows.Scan(&phone); err != nil {
			return nil, fmt.Errorf("%w: PhonesByCar - scan phone: %v", ErrScanRow, err)
		}
		if p := strings.TrimSpace(phone.String); p != "" {
			phones = append(phones, p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: PhonesByCar - rows error: %v", ErrScanRow, err)
	}

	return phones, nil
}

// ActiveCustomerNames возвращает имена активных клиентов из справочника Customers
// (для выпадающего списка регистрации)
func (r *Repository) ActiveCustomerNames(ctx context.Context) ([]string, error) {
	query, args, err := mssqlbuilder.Select("DISTINCT LTRIM(RTRIM([Name])) AS CustomerName").
		From("Wash.dbo.Customers").
		Where("[Name] IS NOT NULL AND LTRIM(RTRIM([Name])) <> ''").
		Where("ISNULL([NotActive], 0) = 0").
		OrderBy("LTRIM(RTRIM([Name]))").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ActiveCustomerNames - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryNames(ctx, query, args, "ActiveCustomerNames")
}

// HistoricCustomerNames возвращает имена клиентов из истории записей
// (легаси-поведение customer-list без телефона)
func (r *Repository) HistoricCustomerNames(ctx context.Context) ([]string, error) {
	query, args, err := mssqlbuilder.Select("DISTINCT CostomerName").
		From(tableInfoForAppointments).
		Where("CostomerName IS NOT NULL AND LTRIM(RTRIM(CostomerName)) <> ''").
		OrderBy("CostomerName").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: HistoricCustomerNames - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryNames(ctx, query, args, "HistoricCustomerNames")
}

// UpcomingByCar проверяет, есть ли у машины будущая запись, и возвращает
// ближайшую дату
func (r *Repository) UpcomingByCar(ctx context.Context, carNum string) (domain.UpcomingAppointment, error) {
	query, args, err := mssqlbuilder.Select("SetDate").
		From(tableInfoForAppointments).
		Where(squirrel.Eq{"CarNum": carNum}).
		Where("SetDate >= SYSDATETIME()").
		OrderBy("SetDate ASC").
		Suffix("OFFSET 0 ROWS FETCH NEXT 1 ROWS ONLY").
		ToSql()
	if err != nil {
		return domain.UpcomingAppointment{}, fmt.Errorf("%w: UpcomingByCar - build select query: %v", ErrBuildQuery, err)
	}

	var next sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&next)
	if err == sql.ErrNoRows {
		return domain.UpcomingAppointment{HasBooking: false}, nil
	}
	if err != nil {
		return domain.UpcomingAppointment{}, fmt.Errorf("%w: UpcomingByCar - scan SetDate: %v", ErrScanRow, err)
	}

	result := domain.UpcomingAppointment{HasBooking: next.Valid}
	if next.Valid {
		t := next.Time
		result.NextDate = &t
	}
	return result, nil
}

func (r *Repository) queryNames(ctx context.Context, query string, args []interface{}, op string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %s - scan name: %v", ErrScanRow, op, err)
		}
		if n := strings.TrimSpace(name.String); n != "" {
			names = append(names, n)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return names, nil
}

// scanRecords сканирует строки (CostomerName, DriverName, CarNum, TypeOfCar, PhoneN)
// процедур и SELECT-ов по InfoForAppointments в канонические записи.
// Порядок колонок у процедуры и у ListByPhone разный, поэтому сканируем по именам.
func (r *Repository) scanRecords(rows *sql.Rows, op string) ([]domain.CustomerRecord, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - columns: %v", ErrScanRow, op, err)
	}

	records := make([]domain.CustomerRecord, 0)
	for rows.Next() {
		raw := make([]sql.NullString, len(cols))
		dest := make([]interface{}, len(cols))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: %s - scan record: %v", ErrScanRow, op, err)
		}

		var rec domain.CustomerRecord
		for i, col := range cols {
			v := strings.TrimSpace(raw[i].String)
			switch strings.ToLower(col) {
			case "carnum":
				rec.CarNum = v
			case "phonen", "phone":
				rec.Phone = v
			case "drivername":
				rec.DriverName = v
			case "costomername", "customername":
				rec.CustomerName = v
			case "typeofcar", "cartype":
				rec.CarType = v
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return records, nil
}
