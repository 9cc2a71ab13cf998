package appointments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	mssql "github.com/microsoft/go-mssqldb"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/pkg/mssqlbuilder"
)

const (
	procInsertAppointment = "dbo.InsertAppointments"
	procInsertMirror      = "dbo.InsertInfoCarPhoneForAppointments"

	tableAppointments = "Wash.dbo.Appointments"
	tableMirror       = "Wash.dbo.InfoForAppointments"
)

// Коды SQL Server для конфликта ключа:
// 2627 - нарушение первичного ключа, 2601 - нарушение уникального индекса
const (
	sqlErrPrimaryKeyViolation  = 2627
	sqlErrUniqueIndexViolation = 2601
)

// Repository репозиторий записей на мойку: каноническая таблица
// Appointments и денормализованное зеркало InfoForAppointments
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// InsertAppointment создает каноническую запись через хранимую процедуру
func (r *Repository) InsertAppointment(ctx context.Context, a Appointment) error {
	_, err := r.db.ExecContext(ctx, procInsertAppointment,
		sql.Named("BranchID", a.BranchID),
		sql.Named("Name", a.Name),
		sql.Named("AppointmentDate", a.Date.Format(domain.DateFormat)),
		sql.Named("AppointmentTime", a.TimeHMS),
		sql.Named("CarNum", a.CarNum),
		sql.Named("TypeOfCar", a.CarType),
		sql.Named("DriverName", a.DriverName),
		sql.Named("DriverPhone", a.DriverPhone),
		sql.Named("GenCustName", a.GenCustName),
		sql.Named("CustomerID", a.CustomerID),
		sql.Named("InternalID", a.InternalID),
		sql.Named("Comments", a.Comments),
	)
	if err != nil {
		return fmt.Errorf("%w: InsertAppointment - exec procedure: %v", ErrExecQuery, err)
	}
	return nil
}

// LastAppointmentID возвращает id последней вставленной записи для
// (машина, дата, время). Процедура вставки id не возвращает, поэтому
// читаем его обратно последним InsertDate. nil - записи нет (id неизвестен).
func (r *Repository) LastAppointmentID(ctx context.Context, carNum string, date time.Time, timeHMS string) (*int64, error) {
	query, args, err := mssqlbuilder.Select("AppointmentID").
		From(tableAppointments).
		Where(squirrel.Eq{"CarNum": carNum}).
		Where(squirrel.Eq{"AppointmentDate": date.Format(domain.DateFormat)}).
		Where("AppointmentTime = CAST(? AS time)", timeHMS).
		OrderBy("InsertDate DESC").
		Suffix("OFFSET 0 ROWS FETCH NEXT 1 ROWS ONLY").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LastAppointmentID - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: LastAppointmentID - scan id: %v", ErrScanRow, err)
	}
	return &id, nil
}

// MirrorInsert вставляет зеркальную строку. Конфликт ключа возвращается
// как ErrDuplicateKey, чтобы вызывающая сторона перешла на update.
func (r *Repository) MirrorInsert(ctx context.Context, row MirrorRow) error {
	_, err := r.db.ExecContext(ctx, procInsertMirror,
		sql.Named("CustomerID", row.CustomerID),
		sql.Named("InternalID", row.InternalID),
		sql.Named("CarNum", row.CarNum),
		sql.Named("PhoneN", row.Phone),
		sql.Named("TypeOfCar", row.CarType),
		sql.Named("SetDate", row.SetDate),
		sql.Named("AttachedNum", row.AttachedNum),
		sql.Named("DriverName", row.DriverName),
		sql.Named("CostomerName", row.CustomerName),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
		}
		return fmt.Errorf("%w: MirrorInsert - exec procedure: %v", ErrExecQuery, err)
	}
	return nil
}

// MirrorUpdate обновляет изменяемые поля зеркальной строки по ее ключу
func (r *Repository) MirrorUpdate(ctx context.Context, row MirrorRow) error {
	query, args, err := mssqlbuilder.Update(tableMirror).
		Set("SetDate", row.SetDate).
		Set("TypeOfCar", row.CarType).
		Set("DriverName", row.DriverName).
		Set("CostomerName", row.CustomerName).
		Where(squirrel.Eq{
			"CustomerID": row.CustomerID,
			"InternalID": row.InternalID,
			"CarNum":     row.CarNum,
			"PhoneN":     row.Phone,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MirrorUpdate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MirrorUpdate - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MirrorUpdate - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrMirrorRowNotFound
	}
	return nil
}

// isDuplicateKey распознает конфликт ключа SQL Server
func isDuplicateKey(err error) bool {
	var sqlErr mssql.Error
	if !errors.As(err, &sqlErr) {
		return false
	}
	return sqlErr.Number == sqlErrPrimaryKeyViolation || sqlErr.Number == sqlErrUniqueIndexViolation
}
