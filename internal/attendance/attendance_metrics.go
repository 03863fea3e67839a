package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

var hoursPerWorkDay = decimal.NewFromInt(8)

// deriveAttendanceMetrics turns a check-in/check-out pair into worked hours
// and the work-day fraction payroll aggregates. Both values round to two
// decimals with banker's rounding; the fraction is taken from the unrounded
// hours so a 9h day yields 1.12, not 1.13.
//
// The duration is used as-is even when it crosses midnight; the record's
// work date does not move.
func deriveAttendanceMetrics(checkIn, checkOut time.Time) (workedHours, workDays decimal.Decimal) {
	hours := decimal.NewFromFloat(checkOut.Sub(checkIn).Seconds() / 3600)
	workedHours = hours.RoundBank(2)
	workDays = hours.Div(hoursPerWorkDay).RoundBank(2)
	return workedHours, workDays
}

// applyDerivedMetrics recomputes the derived fields whenever both timestamps
// are present. Called on every persist so the metrics stay consistent even if
// a timestamp was corrected after the fact.
func applyDerivedMetrics(rec *Record) {
	if rec.CheckIn == nil || rec.CheckOut == nil {
		return
	}
	rec.WorkedHours, rec.WorkDays = deriveAttendanceMetrics(*rec.CheckIn, *rec.CheckOut)
}
