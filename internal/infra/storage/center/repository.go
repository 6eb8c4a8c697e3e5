package center

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/dbmetrics"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с сервис-центрами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сервис-центров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый сервис-центр
func (r *Repository) Create(ctx context.Context, center *domain.ServiceCenter) (*domain.ServiceCenter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	capacities, err := json.Marshal(center.SlotCapacities)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal slot capacities: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("service_centers").
		Columns("name", "address", "phone", "city", "slot_capacities").
		Values(center.Name, center.Address, center.Phone, center.City, capacities).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&center.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	center.CreatedAt = createdAt.Time

	return center, nil
}

// GetByID получает сервис-центр по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ServiceCenter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	center, err := scanCenterRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrCenterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan center: %v", ErrScanRow, err)
	}

	return center, nil
}

// List получает все сервис-центры в каноническом порядке вставки
func (r *Repository) List(ctx context.Context) ([]*domain.ServiceCenter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectColumns().
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	centers := make([]*domain.ServiceCenter, 0)
	for rows.Next() {
		center, err := scanCenterRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		centers = append(centers, center)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return centers, nil
}

// First получает первый сервис-центр в каноническом порядке вставки
func (r *Repository) First(ctx context.Context) (*domain.ServiceCenter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectColumns().
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: First - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	center, err := scanCenterRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNoCenters
	}
	if err != nil {
		return nil, fmt.Errorf("%w: First - scan center: %v", ErrScanRow, err)
	}

	return center, nil
}

// Count возвращает количество сервис-центров
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("service_centers").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func selectColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"address",
		"phone",
		"city",
		"slot_capacities",
		"created_at",
	).From("service_centers")
}

func scanCenterRow(scan func(dest ...interface{}) error) (*domain.ServiceCenter, error) {
	var center domain.ServiceCenter
	var capacities []byte
	var createdAt sql.NullTime

	err := scan(
		&center.ID,
		&center.Name,
		&center.Address,
		&center.Phone,
		&center.City,
		&capacities,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if len(capacities) > 0 {
		if err := json.Unmarshal(capacities, &center.SlotCapacities); err != nil {
			return nil, err
		}
	}

	center.CreatedAt = createdAt.Time

	return &center, nil
}
