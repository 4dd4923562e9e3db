// Package amortization computes level-payment mortgage figures.
package amortization

import (
	"math"

	"github.com/simaogato/homedecide-backend/internal/domain"
)

// YearSplit is the outcome of one year of monthly payments
type YearSplit struct {
	Interest       float64
	Principal      float64
	ClosingBalance float64
}

// Period is one row of an amortization schedule
type Period struct {
	Number    int     `json:"number"` // 1-based month
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// MonthlyRate converts an annual percentage into the per-month rate
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / domain.MonthsPerYear
}

// MonthlyPayment calculates the fixed payment that retires principal over termYears.
// A zero rate degenerates to principal / months.
func MonthlyPayment(principal, annualRatePercent float64, termYears int) (float64, error) {
	if principal < 0 {
		return 0, domain.NewInvalidInputError("principal", "cannot be negative")
	}
	if termYears <= 0 {
		return 0, domain.NewInvalidInputError("termYears", "must be positive")
	}
	if annualRatePercent < 0 {
		return 0, domain.NewInvalidInputError("annualRatePercent", "cannot be negative")
	}

	months := termYears * domain.MonthsPerYear
	if annualRatePercent == 0 {
		return principal / float64(months), nil
	}

	r := MonthlyRate(annualRatePercent)
	growth := math.Pow(1+r, float64(months))

	return principal * r * growth / (growth - 1), nil
}

// AmortizeYear applies twelve monthly payments to openingBalance.
// The last payment is clamped so the balance never goes below zero.
func AmortizeYear(openingBalance, monthlyPayment, annualRatePercent float64) YearSplit {
	r := MonthlyRate(annualRatePercent)
	split := YearSplit{ClosingBalance: openingBalance}

	for month := 0; month < domain.MonthsPerYear; month++ {
		interest, principal, ok := step(split.ClosingBalance, monthlyPayment, r)
		if !ok {
			break
		}
		split.Interest += interest
		split.Principal += principal
		split.ClosingBalance = math.Max(0, split.ClosingBalance-principal)
	}

	return split
}

// Schedule returns the month-by-month amortization table for a loan
func Schedule(principal, annualRatePercent float64, termYears int) ([]Period, error) {
	payment, err := MonthlyPayment(principal, annualRatePercent, termYears)
	if err != nil {
		return nil, err
	}

	r := MonthlyRate(annualRatePercent)
	months := termYears * domain.MonthsPerYear
	periods := make([]Period, 0, months)
	balance := principal

	for n := 1; n <= months; n++ {
		interest, principalPaid, ok := step(balance, payment, r)
		if !ok {
			break
		}
		balance = math.Max(0, balance-principalPaid)
		periods = append(periods, Period{
			Number:    n,
			Payment:   interest + principalPaid,
			Interest:  interest,
			Principal: principalPaid,
			Balance:   balance,
		})
	}

	return periods, nil
}

// step splits one payment into interest and principal. ok is false once the loan is repaid.
func step(balance, payment, monthlyRate float64) (interest, principal float64, ok bool) {
	if balance <= 0 {
		return 0, 0, false
	}
	interest = balance * monthlyRate
	principal = math.Min(payment-interest, balance)
	return interest, principal, true
}
