package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/dbmetrics"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с автомобилями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый автомобиль
func (r *Repository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicles").
		Columns("user_id", "make", "model", "year", "registration").
		Values(vehicle.UserID, vehicle.Make, vehicle.Model, vehicle.Year, vehicle.Registration).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&vehicle.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	vehicle.CreatedAt = createdAt.Time

	return vehicle, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByOwnerMakeModel получает автомобиль по естественному ключу upsert
// (владелец, марка, модель). Два одинаковых автомобиля одного владельца
// неразличимы этим ключом и схлопываются в одну запись.
func (r *Repository) GetByOwnerMakeModel(ctx context.Context, userID int64, make, model string) (*domain.Vehicle, error) {
	return r.getOne(ctx, squirrel.Eq{
		"user_id": userID,
		"make":    make,
		"model":   model,
	}, "GetByOwnerMakeModel")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id", "make", "model", "year", "registration", "created_at").
		From("vehicles").
		Where(where).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var vehicle domain.Vehicle
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&vehicle.ID,
		&vehicle.UserID,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.Registration,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan vehicle: %v", ErrScanRow, op, err)
	}

	vehicle.CreatedAt = createdAt.Time

	return &vehicle, nil
}
