// Package rental projects the cost of renting and the growth of the capital a renter keeps invested.
package rental

import (
	"github.com/simaogato/homedecide-backend/internal/domain"
)

// Year is the renting side of one projected year
type Year struct {
	Rent            float64
	InvestmentValue float64 // end of year
	InvestmentGain  float64 // cumulative, relative to the invested down payment
}

// Projector advances a renting scenario one year at a time.
// The down payment a buyer would have spent is modeled as the renter's invested capital.
type Projector struct {
	input           domain.ProjectionInput
	principal       float64
	monthlyRent     float64
	investmentValue float64
}

// NewProjector creates a Projector at year zero
func NewProjector(input domain.ProjectionInput) *Projector {
	return &Projector{
		input:           input,
		principal:       input.DownPayment(),
		monthlyRent:     input.MonthlyRent,
		investmentValue: input.DownPayment(),
	}
}

// Next projects the next year. Rent compounds once per year, not monthly.
func (p *Projector) Next() Year {
	rent := p.monthlyRent * domain.MonthsPerYear

	p.monthlyRent *= 1 + p.input.RentIncreaseRatePercent/100
	p.investmentValue *= 1 + p.input.InvestmentReturnRatePercent/100

	return Year{
		Rent:            rent,
		InvestmentValue: p.investmentValue,
		InvestmentGain:  p.investmentValue - p.principal,
	}
}

// InvestmentGain returns the gain accumulated so far
func (p *Projector) InvestmentGain() float64 {
	return p.investmentValue - p.principal
}
