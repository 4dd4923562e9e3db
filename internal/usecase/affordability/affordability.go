// Package affordability classifies housing payments against monthly income.
package affordability

import (
	"math"

	"github.com/simaogato/homedecide-backend/internal/domain"
)

const (
	// AffordableMaxPercent is the highest share of income still considered affordable
	AffordableMaxPercent = 25.0

	// BorderlineMaxPercent is the highest share of income considered borderline
	BorderlineMaxPercent = 35.0
)

// Percent returns payment as a percentage of income, or +Inf when income is zero
func Percent(payment, income float64) float64 {
	if income == 0 {
		return math.Inf(1)
	}
	return payment / income * 100
}

// Classify maps an income share to a status
func Classify(percent float64) domain.AffordabilityStatus {
	switch {
	case percent <= AffordableMaxPercent:
		return domain.AffordabilityAffordable
	case percent <= BorderlineMaxPercent:
		return domain.AffordabilityBorderline
	default:
		return domain.AffordabilityUnaffordable
	}
}

// Assess computes and classifies the income share of a monthly payment
func Assess(payment, income float64) domain.Affordability {
	p := Percent(payment, income)
	return domain.Affordability{Percent: p, Status: Classify(p)}
}
