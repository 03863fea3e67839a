package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeNetPay(t *testing.T) {
	d := func(s string) decimal.Decimal {
		v, err := decimal.NewFromString(s)
		assert.NoError(t, err)
		return v
	}

	tests := []struct {
		name     string
		workDays string
		salary   string
		want     string
	}{
		{
			name:     "full month equals base salary",
			workDays: "22",
			salary:   "22000000",
			want:     "22000000.00",
		},
		{
			name:     "half month",
			workDays: "11",
			salary:   "22000000",
			want:     "11000000.00",
		},
		{
			name:     "fractional work days",
			workDays: "21.5",
			salary:   "10000000",
			want:     "9772727.27",
		},
		{
			name:     "single day",
			workDays: "1",
			salary:   "22000000",
			want:     "1000000.00",
		},
		{
			name:     "salary that does not divide evenly",
			workDays: "22",
			salary:   "10000001",
			want:     "10000001.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeNetPay(d(tt.workDays), d(tt.salary))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestComputeNetPay_Idempotent(t *testing.T) {
	workDays := decimal.RequireFromString("19.38")
	salary := decimal.RequireFromString("8500000")

	first := computeNetPay(workDays, salary)
	second := computeNetPay(workDays, salary)
	assert.True(t, first.Equal(second))
}
