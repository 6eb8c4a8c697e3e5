package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepository(t)

	createdAt := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(int64(1), int64(2), int64(3), "2025-06-10", "10:00", "General Service", string(domain.StatusConfirmed), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

	booking, err := repo.Create(context.Background(), &domain.Booking{
		UserID:          1,
		VehicleID:       2,
		ServiceCenterID: 3,
		Date:            "2025-06-10",
		Time:            "10:00",
		ServiceType:     "General Service",
		Status:          domain.StatusConfirmed,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), booking.ID)
	assert.Equal(t, createdAt, booking.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExecError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.Booking{
		UserID: 1, VehicleID: 1, ServiceCenterID: 1,
		Date: "2025-06-10", Time: "10:00",
		ServiceType: "General Service", Status: domain.StatusConfirmed,
	})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepository(t)

	columns := []string{
		"id", "user_id", "vehicle_id", "service_center_id",
		"date", "time", "service_type", "status", "notes", "created_at",
	}
	mock.ExpectQuery("SELECT .+ FROM bookings WHERE id = \\$1").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			int64(7), int64(1), int64(2), int64(3),
			"2025-06-10", "10:00", "Oil Change", string(domain.StatusConfirmed), nil,
			time.Date(2025, 6, 9, 18, 0, 0, 0, time.UTC)))

	booking, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), booking.ID)
	assert.Equal(t, "Oil Change", booking.ServiceType)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.Nil(t, booking.Notes)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT .+ FROM bookings WHERE id = \\$1").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList(t *testing.T) {
	repo, mock := newMockRepository(t)

	columns := []string{
		"id", "user_id", "vehicle_id", "service_center_id",
		"date", "time", "service_type", "status", "notes", "created_at",
	}
	mock.ExpectQuery("SELECT .+ FROM bookings ORDER BY date DESC, time DESC, id DESC").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(2), int64(1), int64(1), int64(1), "2025-06-11", "14:00",
				"General Service", string(domain.StatusConfirmed), nil, time.Now()).
			AddRow(int64(1), int64(1), int64(1), int64(1), "2025-06-10", "10:00",
				"General Service", string(domain.StatusCompleted), nil, time.Now()))

	list, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, int64(1), list[1].ID)
}

func TestList_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT .+ FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "vehicle_id", "service_center_id",
			"date", "time", "service_type", "status", "notes", "created_at",
		}))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCountActiveInSlot(t *testing.T) {
	repo, mock := newMockRepository(t)

	// Отмененные бронирования не считаются против вместимости слота.
	// squirrel.Eq сортирует колонки по имени: date, service_center_id, time
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WithArgs("2025-06-10", int64(1), "10:00", string(domain.StatusCancelled)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountActiveInSlot(context.Background(), "2025-06-10", "10:00", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByStatus(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT status, COUNT\\(\\*\\) FROM bookings GROUP BY status").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow(string(domain.StatusConfirmed), 4).
			AddRow(string(domain.StatusCancelled), 1))

	counts, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, counts[domain.StatusConfirmed])
	assert.Equal(t, 1, counts[domain.StatusCancelled])
	assert.Equal(t, 0, counts[domain.StatusPending])
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("UPDATE bookings SET status = \\$1 WHERE id = \\$2").
		WithArgs(string(domain.StatusCancelled), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 7, domain.StatusCancelled)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("UPDATE bookings SET status = \\$1 WHERE id = \\$2").
		WithArgs(string(domain.StatusCancelled), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 42, domain.StatusCancelled)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
