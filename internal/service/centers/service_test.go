package centers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	centerRepo "github.com/autopilot-ai/AP-SchedulerService/internal/infra/storage/center"
)

type fakeCenterRepo struct {
	centers []*domain.ServiceCenter
	err     error
}

func (f *fakeCenterRepo) List(context.Context) ([]*domain.ServiceCenter, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.centers, nil
}

func (f *fakeCenterRepo) GetByID(_ context.Context, id int64) (*domain.ServiceCenter, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.centers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, centerRepo.ErrCenterNotFound
}

func (f *fakeCenterRepo) First(context.Context) (*domain.ServiceCenter, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.centers) == 0 {
		return nil, centerRepo.ErrNoCenters
	}
	return f.centers[0], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seededCenters() []*domain.ServiceCenter {
	return []*domain.ServiceCenter{
		{ID: 1, Name: "EY Auto Service Center - Mumbai", City: "Mumbai"},
		{ID: 2, Name: "EY Auto Service Center - Delhi", City: "Delhi"},
		{ID: 3, Name: "EY Auto Service Center - Bangalore", City: "Bangalore"},
	}
}

func TestList(t *testing.T) {
	svc := NewService(&fakeCenterRepo{centers: seededCenters()}, nopLogger{})

	list, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 3)
	assert.Equal(t, "Mumbai", list[0].City)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeCenterRepo{centers: seededCenters()}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrCenterNotFound)
}

func TestGetByID_RepositoryError(t *testing.T) {
	svc := NewService(&fakeCenterRepo{err: errors.New("connection reset")}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestFirstAvailable_Select(t *testing.T) {
	selector := NewFirstAvailable(&fakeCenterRepo{centers: seededCenters()}, nopLogger{})

	center, err := selector.Select(context.Background())
	require.NoError(t, err)

	// Первый центр в порядке вставки, независимо от клиента
	assert.Equal(t, int64(1), center.ID)
}

func TestFirstAvailable_NoCenters(t *testing.T) {
	selector := NewFirstAvailable(&fakeCenterRepo{}, nopLogger{})

	_, err := selector.Select(context.Background())
	assert.ErrorIs(t, err, ErrNoCenters)
}
