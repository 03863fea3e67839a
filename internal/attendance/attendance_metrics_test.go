package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveAttendanceMetrics(t *testing.T) {
	day := func(h, m int) time.Time {
		return time.Date(2025, 3, 10, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name        string
		checkIn     time.Time
		checkOut    time.Time
		wantHours   string
		wantDays    string
	}{
		{
			name:      "full eight hour day",
			checkIn:   day(9, 0),
			checkOut:  day(17, 0),
			wantHours: "8",
			wantDays:  "1",
		},
		{
			name:      "nine hours rounds half to even",
			checkIn:   day(8, 0),
			checkOut:  day(17, 0),
			wantHours: "9",
			wantDays:  "1.12",
		},
		{
			name:      "half day",
			checkIn:   day(9, 0),
			checkOut:  day(13, 0),
			wantHours: "4",
			wantDays:  "0.5",
		},
		{
			name:      "short stint",
			checkIn:   day(9, 0),
			checkOut:  day(9, 30),
			wantHours: "0.5",
			wantDays:  "0.06",
		},
		{
			name:      "zero duration",
			checkIn:   day(9, 0),
			checkOut:  day(9, 0),
			wantHours: "0",
			wantDays:  "0",
		},
		{
			name:      "overnight shift spans midnight",
			checkIn:   day(22, 0),
			checkOut:  day(22, 0).Add(8 * time.Hour),
			wantHours: "8",
			wantDays:  "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, days := deriveAttendanceMetrics(tt.checkIn, tt.checkOut)
			assert.Equal(t, tt.wantHours, hours.String())
			assert.Equal(t, tt.wantDays, days.String())
		})
	}
}

func TestApplyDerivedMetrics_MissingTimestamps(t *testing.T) {
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	rec := &Record{CheckIn: &in}
	applyDerivedMetrics(rec)
	assert.True(t, rec.WorkedHours.IsZero())
	assert.True(t, rec.WorkDays.IsZero())

	rec = &Record{}
	applyDerivedMetrics(rec)
	assert.True(t, rec.WorkedHours.IsZero())
	assert.True(t, rec.WorkDays.IsZero())
}

func TestApplyDerivedMetrics_Recompute(t *testing.T) {
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	out := in.Add(8 * time.Hour)

	rec := &Record{CheckIn: &in, CheckOut: &out}
	applyDerivedMetrics(rec)
	first := rec.WorkDays

	// Deriving twice from the same timestamps must not drift.
	applyDerivedMetrics(rec)
	assert.True(t, first.Equal(rec.WorkDays))
	assert.Equal(t, "1", rec.WorkDays.String())
}
