package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateString(t *testing.T) {
	d := NewDateString(time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, DateString("2025-06-10"), d)
}

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", d.String())

	tests := []string{"", "10-06-2025", "2025/06/10", "2025-13-01", "2025-02-30", "tomorrow"}
	for _, s := range tests {
		_, err := NewDateStringFromString(s)
		assert.ErrorIs(t, err, ErrInvalidDateString, "input %q", s)
	}
}

func TestDateString_AddDays(t *testing.T) {
	d := DateString("2025-06-30")

	next, err := d.AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-07-01"), next)

	// Горизонт назначения пересекает границу месяца
	week, err := d.AddDays(7)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-07-07"), week)

	_, err = DateString("bad").AddDays(1)
	assert.ErrorIs(t, err, ErrInvalidDateString)
}

func TestDateString_IsBefore(t *testing.T) {
	assert.True(t, DateString("2025-06-10").IsBefore("2025-06-11"))
	assert.False(t, DateString("2025-06-11").IsBefore("2025-06-10"))
	assert.False(t, DateString("2025-06-10").IsBefore("2025-06-10"))
}

func TestDateString_IsZero(t *testing.T) {
	assert.True(t, DateString("").IsZero())
	assert.False(t, DateString("2025-06-10").IsZero())
}
