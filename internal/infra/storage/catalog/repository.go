package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
)

// Справочные процедуры легаси-базы
const (
	procCarTypeList  = "dbo.CarTypeList"
	procBranchList   = "dbo.SnifList"
	procWorksForType = "dbo.FindWorksForCarType"
)

// Repository репозиторий справочников: типы машин, филиалы, услуги
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CarTypes возвращает список типов машин (колонка Dis процедуры CarTypeList)
func (r *Repository) CarTypes(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, procCarTypeList)
	if err != nil {
		return nil, fmt.Errorf("%w: CarTypes - exec procedure: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	types := make([]string, 0)
	for rows.Next() {
		var dis sql.NullString
		if err := rows.Scan(&dis); err != nil {
			return nil, fmt.Errorf("%w: CarTypes - scan type: %v", ErrScanRow, err)
		}
		if t := strings.TrimSpace(dis.String); t != "" {
			types = append(types, t)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CarTypes - rows error: %v", ErrScanRow, err)
	}

	return types, nil
}

// Branches возвращает список филиалов (WearhouseNum/Des процедуры SnifList)
func (r *Repository) Branches(ctx context.Context) ([]domain.Branch, error) {
	rows, err := r.db.QueryContext(ctx, procBranchList)
	if err != nil {
		return nil, fmt.Errorf("%w: Branches - exec procedure: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	branches := make([]domain.Branch, 0)
	for rows.Next() {
		var (
			id   int64
			name sql.NullString
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("%w: Branches - scan branch: %v", ErrScanRow, err)
		}
		branches = append(branches, domain.Branch{
			ID:   id,
			Name: strings.TrimSpace(name.String),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Branches - rows error: %v", ErrScanRow, err)
	}

	return branches, nil
}

// WorksByCarType возвращает каталог услуг, применимых к типу машины
func (r *Repository) WorksByCarType(ctx context.Context, carType string) ([]domain.WorkItem, error) {
	rows, err := r.db.QueryContext(ctx, procWorksForType,
		sql.Named("CarType", carType),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: WorksByCarType - exec procedure: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	works := make([]domain.WorkItem, 0)
	for rows.Next() {
		var (
			item    domain.WorkItem
			groupID sql.NullInt64
			name    sql.NullString
			carT    sql.NullString
		)
		if err := rows.Scan(&item.ID, &groupID, &name, &carT); err != nil {
			return nil, fmt.Errorf("%w: WorksByCarType - scan work: %v", ErrScanRow, err)
		}
		item.GroupID = groupID.Int64
		item.Name = strings.TrimSpace(name.String)
		item.CarType = strings.TrimSpace(carT.String)
		works = append(works, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: WorksByCarType - rows error: %v", ErrScanRow, err)
	}

	return works, nil
}
