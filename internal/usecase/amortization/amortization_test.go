package amortization

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/homedecide-backend/internal/domain"
)

func TestMonthlyPayment_ZeroRateIsExactDivision(t *testing.T) {
	tests := []struct {
		principal float64
		years     int
	}{
		{principal: 120000, years: 10},
		{principal: 600000, years: 25},
		{principal: 1234.56, years: 1},
		{principal: 0, years: 30},
	}

	for _, tt := range tests {
		payment, err := MonthlyPayment(tt.principal, 0, tt.years)
		require.NoError(t, err)
		assert.Equal(t, tt.principal/float64(12*tt.years), payment)
	}
}

func TestMonthlyPayment_StandardMortgage(t *testing.T) {
	// 600000 at 5.5% over 25 years: r = 0.0045833.., n = 300
	payment, err := MonthlyPayment(600000, 5.5, 25)

	require.NoError(t, err)
	assert.InDelta(t, 3684.52, payment, 0.01)
}

func TestMonthlyPayment_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		errMsg    string
	}{
		{name: "negative principal", principal: -1, rate: 5, years: 10, errMsg: "principal cannot be negative"},
		{name: "zero term", principal: 1000, rate: 5, years: 0, errMsg: "termYears must be positive"},
		{name: "negative term", principal: 1000, rate: 5, years: -3, errMsg: "termYears must be positive"},
		{name: "negative rate", principal: 1000, rate: -1, years: 3, errMsg: "annualRatePercent cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MonthlyPayment(tt.principal, tt.rate, tt.years)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestAmortizeYear_PrincipalSumsToLoan(t *testing.T) {
	tests := []struct {
		name  string
		loan  float64
		rate  float64
		years int
	}{
		{name: "canonical scenario", loan: 600000, rate: 5.5, years: 25},
		{name: "short high rate", loan: 25000, rate: 12, years: 3},
		{name: "zero rate", loan: 90000, rate: 0, years: 15},
		{name: "single year", loan: 12000, rate: 7.25, years: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment, err := MonthlyPayment(tt.loan, tt.rate, tt.years)
			require.NoError(t, err)

			balance := tt.loan
			totalPrincipal := 0.0
			for y := 0; y < tt.years; y++ {
				split := AmortizeYear(balance, payment, tt.rate)
				assert.LessOrEqual(t, split.ClosingBalance, balance, "balance must not grow")
				assert.GreaterOrEqual(t, split.ClosingBalance, 0.0)
				totalPrincipal += split.Principal
				balance = split.ClosingBalance
			}

			assert.InDelta(t, tt.loan, totalPrincipal, 1e-6)
			assert.InDelta(t, 0, balance, 1e-6)
		})
	}
}

func TestAmortizeYear_FirstYearSplit(t *testing.T) {
	// 12000 at 12% paid 1000/month: interest accrues at 1% a month
	split := AmortizeYear(12000, 1000, 12)

	assert.Greater(t, split.Interest, 0.0)
	assert.InDelta(t, 12000-split.ClosingBalance, split.Principal, 1e-9)
	assert.InDelta(t, 12*1000, split.Interest+split.Principal, 1e-9)
	assert.Greater(t, split.ClosingBalance, 0.0, "1000/month does not clear 12000 at 12%")
}

func TestAmortizeYear_ClampsFinalPayment(t *testing.T) {
	// Balance smaller than a single payment: only the balance is repaid
	split := AmortizeYear(500, 1000, 6)

	assert.InDelta(t, 500, split.Principal, 1e-9)
	assert.InDelta(t, 2.5, split.Interest, 1e-9)
	assert.Equal(t, 0.0, split.ClosingBalance)
}

func TestAmortizeYear_PaidOffLoan(t *testing.T) {
	split := AmortizeYear(0, 1000, 5)

	assert.Equal(t, YearSplit{}, split)
}

func TestSchedule(t *testing.T) {
	periods, err := Schedule(600000, 5.5, 25)
	require.NoError(t, err)
	require.Len(t, periods, 300)

	first := periods[0]
	assert.Equal(t, 1, first.Number)
	assert.InDelta(t, 2750, first.Interest, 1e-9) // 600000 * 0.055 / 12
	assert.InDelta(t, 3684.52, first.Payment, 0.01)

	last := periods[len(periods)-1]
	assert.Equal(t, 300, last.Number)
	assert.InDelta(t, 0, last.Balance, 1e-6)

	for i := 1; i < len(periods); i++ {
		assert.Less(t, periods[i].Interest, periods[i-1].Interest, "interest share shrinks every month")
	}
}

func TestSchedule_MatchesAmortizeYear(t *testing.T) {
	payment, err := MonthlyPayment(250000, 4.2, 20)
	require.NoError(t, err)
	periods, err := Schedule(250000, 4.2, 20)
	require.NoError(t, err)

	split := AmortizeYear(250000, payment, 4.2)
	assert.InDelta(t, periods[11].Balance, split.ClosingBalance, 1e-9)
}

func TestSchedule_InvalidInput(t *testing.T) {
	_, err := Schedule(1000, 5, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
