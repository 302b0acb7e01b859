package bill

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRoomCharges(t *testing.T) {
	tests := []struct {
		name      string
		dailyRate int64
		checkIn   string
		checkOut  string
		expected  int64
	}{
		{
			name:      "partial second day rounds up",
			dailyRate: 100,
			checkIn:   "2025-01-01T14:00:00Z",
			checkOut:  "2025-01-03T10:00:00Z",
			expected:  200,
		},
		{
			name:      "exact whole days",
			dailyRate: 100,
			checkIn:   "2025-01-01T14:00:00Z",
			checkOut:  "2025-01-03T14:00:00Z",
			expected:  200,
		},
		{
			name:      "one hour counts as a full day",
			dailyRate: 250,
			checkIn:   "2025-01-01T14:00:00Z",
			checkOut:  "2025-01-01T15:00:00Z",
			expected:  250,
		},
		{
			name:      "just over a whole day",
			dailyRate: 100,
			checkIn:   "2025-01-01T14:00:00Z",
			checkOut:  "2025-01-02T14:00:01Z",
			expected:  200,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RoomCharges(tc.dailyRate, ts(tc.checkIn), ts(tc.checkOut))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	t.Run("rejects check-out equal to check-in", func(t *testing.T) {
		_, err := RoomCharges(100, ts("2025-01-01T14:00:00Z"), ts("2025-01-01T14:00:00Z"))
		assert.ErrorIs(t, err, ErrInvalidStayRange)
	})

	t.Run("rejects check-out before check-in", func(t *testing.T) {
		_, err := RoomCharges(100, ts("2025-01-03T10:00:00Z"), ts("2025-01-01T14:00:00Z"))
		assert.ErrorIs(t, err, ErrInvalidStayRange)
	})
}

func TestTotal(t *testing.T) {
	assert.Equal(t, int64(260), Total(200, 50, 20, 10, 20))
	assert.Equal(t, int64(0), Total(0, 0, 0, 0, 0))
	assert.Equal(t, int64(-10), Total(100, 0, 0, 0, 110))
}
