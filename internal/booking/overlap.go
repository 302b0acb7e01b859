package booking

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap, so a booking
// ending exactly when another begins is a valid back-to-back turnover.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindConflicts returns the candidates that are active and whose stay
// intersects [checkIn, checkOut). Cancelled and checked-out bookings never
// conflict.
func FindConflicts(candidates []*Booking, checkIn, checkOut time.Time) []*Booking {
	var conflicts []*Booking
	for _, b := range candidates {
		if !b.Status.Active() {
			continue
		}
		if Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}
