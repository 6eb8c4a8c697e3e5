// Package schema создает схему БД при старте процесса.
// MVP-подход вместо внешних миграций: таблицы создаются идемпотентно,
// сервис-центры сеются один раз, если их еще нет.
package schema

import (
	"context"
	"fmt"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/dbmetrics"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(100) NOT NULL,
		phone       VARCHAR(15)  NOT NULL UNIQUE,
		email       VARCHAR(100) NOT NULL UNIQUE,
		created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id           BIGSERIAL PRIMARY KEY,
		user_id      BIGINT      NOT NULL REFERENCES users(id),
		make         VARCHAR(50) NOT NULL,
		model        VARCHAR(50) NOT NULL,
		year         INT         NOT NULL,
		registration VARCHAR(15),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS service_centers (
		id              BIGSERIAL PRIMARY KEY,
		name            VARCHAR(100) NOT NULL,
		address         VARCHAR(200) NOT NULL,
		phone           VARCHAR(15)  NOT NULL,
		city            VARCHAR(50)  NOT NULL,
		slot_capacities JSONB,
		created_at      TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id                BIGSERIAL PRIMARY KEY,
		user_id           BIGINT       NOT NULL REFERENCES users(id),
		vehicle_id        BIGINT       NOT NULL REFERENCES vehicles(id),
		service_center_id BIGINT       NOT NULL REFERENCES service_centers(id),
		date              VARCHAR(10)  NOT NULL,
		time              VARCHAR(5)   NOT NULL,
		service_type      VARCHAR(100) NOT NULL DEFAULT 'General Service',
		status            VARCHAR(20)  NOT NULL DEFAULT 'Pending',
		notes             VARCHAR(500),
		created_at        TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_slot
		ON bookings (date, time, service_center_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id)`,
}

// Init идемпотентно создает таблицы сервиса
func Init(ctx context.Context, db dbmetrics.DBExecutor) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema: failed to execute statement: %w", err)
		}
	}
	return nil
}

// CenterRepository интерфейс репозитория сервис-центров для сидинга
type CenterRepository interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, center *domain.ServiceCenter) (*domain.ServiceCenter, error)
}

// SeedServiceCenters создает три дефолтных сервис-центра, если в системе
// нет ни одного. Выполняется один раз при старте процесса.
func SeedServiceCenters(ctx context.Context, repo CenterRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("schema: failed to count service centers: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []domain.ServiceCenter{
		{
			Name:    "EY Auto Service Center - Mumbai",
			Address: "Andheri East, Mumbai",
			Phone:   "+91-22-1234-5678",
			City:    "Mumbai",
		},
		{
			Name:    "EY Auto Service Center - Pune",
			Address: "Koregaon Park, Pune",
			Phone:   "+91-20-1234-5678",
			City:    "Pune",
		},
		{
			Name:    "EY Auto Service Center - Bangalore",
			Address: "Whitefield, Bangalore",
			Phone:   "+91-80-1234-5678",
			City:    "Bangalore",
		},
	}

	for i := range defaults {
		defaults[i].SlotCapacities = domain.DefaultSlotCapacities()
		if _, err := repo.Create(ctx, &defaults[i]); err != nil {
			return fmt.Errorf("schema: failed to seed service center %q: %w", defaults[i].Name, err)
		}
	}

	return nil
}
