package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int, hour int) time.Time {
	return time.Date(2025, 12, d, hour, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:   "partial overlap at the front",
			aStart: day(20, 14), aEnd: day(23, 10),
			bStart: day(21, 14), bEnd: day(24, 10),
			expected: true,
		},
		{
			name:   "contained interval",
			aStart: day(20, 14), aEnd: day(25, 10),
			bStart: day(21, 14), bEnd: day(22, 10),
			expected: true,
		},
		{
			name:   "identical interval",
			aStart: day(20, 14), aEnd: day(22, 10),
			bStart: day(20, 14), bEnd: day(22, 10),
			expected: true,
		},
		{
			name:   "back-to-back turnover does not overlap",
			aStart: day(20, 14), aEnd: day(22, 10),
			bStart: day(22, 10), bEnd: day(24, 10),
			expected: false,
		},
		{
			name:   "back-to-back turnover reversed",
			aStart: day(22, 10), aEnd: day(24, 10),
			bStart: day(20, 14), bEnd: day(22, 10),
			expected: false,
		},
		{
			name:   "fully disjoint",
			aStart: day(20, 14), aEnd: day(21, 10),
			bStart: day(25, 14), bEnd: day(27, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
		})
	}
}

func TestFindConflicts(t *testing.T) {
	candidates := []*Booking{
		{ID: "b1", Status: StatusBooked, CheckIn: day(20, 14), CheckOut: day(22, 10)},
		{ID: "b2", Status: StatusCheckedIn, CheckIn: day(23, 14), CheckOut: day(26, 10)},
		{ID: "b3", Status: StatusCancelled, CheckIn: day(20, 14), CheckOut: day(28, 10)},
		{ID: "b4", Status: StatusCheckedOut, CheckIn: day(19, 14), CheckOut: day(21, 10)},
	}

	t.Run("overlapping request reports active bookings only", func(t *testing.T) {
		conflicts := FindConflicts(candidates, day(21, 14), day(24, 10))
		ids := make([]string, len(conflicts))
		for i, b := range conflicts {
			ids[i] = b.ID
		}
		assert.Equal(t, []string{"b1", "b2"}, ids)
	})

	t.Run("request between stays is free", func(t *testing.T) {
		conflicts := FindConflicts(candidates, day(22, 10), day(23, 14))
		assert.Empty(t, conflicts)
	})

	t.Run("cancelled bookings never block", func(t *testing.T) {
		conflicts := FindConflicts(candidates, day(27, 14), day(28, 10))
		assert.Empty(t, conflicts)
	})
}
