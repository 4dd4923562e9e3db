// Package ownership projects the yearly cost and equity of owning a home.
package ownership

import (
	"math"

	"github.com/simaogato/homedecide-backend/internal/domain"
	"github.com/simaogato/homedecide-backend/internal/usecase/amortization"
)

// Year is the ownership side of one projected loan year
type Year struct {
	Mortgage     float64
	Interest     float64
	Principal    float64
	PropertyTax  float64
	Maintenance  float64
	HomeValue    float64 // end of year
	LoanBalance  float64 // end of year
	Equity       float64
	SellingCosts float64 // if sold at HomeValue
}

// Cost returns the cash spent on ownership during the year
func (y Year) Cost() float64 {
	return y.Mortgage + y.PropertyTax + y.Maintenance
}

// Sale is the outcome of selling at the end of the projection
type Sale struct {
	FinalHomeValue float64
	SellingCosts   float64
	NetProceeds    float64
}

// Projector advances an ownership scenario one year at a time.
// A Projector is not safe for concurrent use; create one per run.
type Projector struct {
	input          domain.ProjectionInput
	monthlyPayment float64
	appreciation   float64 // capped, percent
	maintenanceInf float64 // percent
	homeValue      float64
	loanBalance    float64
	year           int // completed years
}

// NewProjector creates a Projector positioned at origination
func NewProjector(input domain.ProjectionInput) (*Projector, error) {
	payment, err := amortization.MonthlyPayment(input.LoanAmount(), input.InterestRatePercent, input.LoanTermYears)
	if err != nil {
		return nil, err
	}

	return &Projector{
		input:          input,
		monthlyPayment: payment,
		appreciation:   input.CappedAppreciationPercent(),
		maintenanceInf: input.MaintenanceInflationPercent(),
		homeValue:      input.HomePrice,
		loanBalance:    input.LoanAmount(),
	}, nil
}

// MonthlyPayment returns the fixed mortgage payment
func (p *Projector) MonthlyPayment() float64 {
	return p.monthlyPayment
}

// Next projects the next loan year.
// Property tax is charged on the value at the start of the year; appreciation is applied after.
func (p *Projector) Next() Year {
	y := Year{
		Mortgage:    p.monthlyPayment * domain.MonthsPerYear,
		PropertyTax: p.homeValue * p.input.PropertyTaxRatePercent / 100,
		Maintenance: p.input.AnnualMaintenanceCost * math.Pow(1+p.maintenanceInf/100, float64(p.year)),
	}

	split := amortization.AmortizeYear(p.loanBalance, p.monthlyPayment, p.input.InterestRatePercent)
	p.loanBalance = split.ClosingBalance
	p.homeValue *= 1 + p.appreciation/100
	p.year++

	y.Interest = split.Interest
	y.Principal = split.Principal
	y.HomeValue = p.homeValue
	y.LoanBalance = p.loanBalance
	y.Equity = p.homeValue - p.loanBalance
	y.SellingCosts = p.SellingCosts(p.homeValue)

	return y
}

// SellingCosts returns the cost of selling at value, or 0 when selling costs are excluded
func (p *Projector) SellingCosts(value float64) float64 {
	if !p.input.IncludeSellingCosts {
		return 0
	}
	return value * p.input.SellingCostPercent / 100
}

// Sale values the home after the years projected so far.
// Horizons above domain.LongHorizonYears are discounted.
func (p *Projector) Sale() Sale {
	final := DiscountedValue(p.homeValue, p.year)
	costs := p.SellingCosts(final)

	return Sale{
		FinalHomeValue: final,
		SellingCosts:   costs,
		NetProceeds:    final - costs,
	}
}

// DiscountedValue applies the long-horizon discount to a projected home value
func DiscountedValue(value float64, years int) float64 {
	if years > domain.LongHorizonYears {
		return value * domain.LongHorizonDiscount
	}
	return value
}

// MonthlyCosts returns the month-one ownership costs
func MonthlyCosts(input domain.ProjectionInput, monthlyPayment float64) domain.MonthlyCosts {
	tax := input.HomePrice * input.PropertyTaxRatePercent / 100 / domain.MonthsPerYear
	maintenance := input.AnnualMaintenanceCost / domain.MonthsPerYear

	return domain.MonthlyCosts{
		Mortgage:    monthlyPayment,
		PropertyTax: tax,
		Maintenance: maintenance,
		Total:       monthlyPayment + tax + maintenance,
		Rent:        input.MonthlyRent,
	}
}
