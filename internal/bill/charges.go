package bill

import "time"

const nanosPerDay = int64(24 * time.Hour)

// RoomCharges computes the room portion of a bill: dailyRate times the
// number of billable days in [checkIn, checkOut), where any started day
// counts as a full day. The stay dates are validated here independently of
// booking validation because a bill may be recomputed later against edited
// dates.
func RoomCharges(dailyRate int64, checkIn, checkOut time.Time) (int64, error) {
	span := checkOut.Sub(checkIn)
	if span <= 0 {
		return 0, ErrInvalidStayRange
	}

	days := int64(span) / nanosPerDay
	if int64(span)%nanosPerDay != 0 {
		days++
	}
	return dailyRate * days, nil
}

// Total combines the charge components into a bill's total amount.
func Total(roomCharges, serviceCharges, tax, lateCheckoutCharge, discount int64) int64 {
	return roomCharges + serviceCharges + tax + lateCheckoutCharge - discount
}
