package domain

import (
	"math"
)

const (
	// MaxLoanTermYears bounds the projection horizon
	MaxLoanTermYears = 50

	// MaxHomeAppreciationPercent caps the annual growth applied to the home value
	MaxHomeAppreciationPercent = 4.0

	// MaxMaintenanceInflationPercent caps the annual growth applied to maintenance costs.
	// Tuned independently from MaxHomeAppreciationPercent.
	MaxMaintenanceInflationPercent = 2.0

	// LongHorizonYears is the term above which LongHorizonDiscount applies to the final home value
	LongHorizonYears = 20

	// LongHorizonDiscount is applied to the final home value for terms above LongHorizonYears
	LongHorizonDiscount = 0.95

	// MonthsPerYear is the number of payment periods in a year
	MonthsPerYear = 12
)

// ProjectionInput is the flat set of assumptions for a single rent-versus-buy run.
// Percent fields are expressed as percentages (5.5 means 5.5%).
type ProjectionInput struct {
	HomePrice           float64 `json:"homePrice" toml:"home_price"`
	DownPaymentPercent  float64 `json:"downPaymentPercent" toml:"down_payment_percent"`
	InterestRatePercent float64 `json:"interestRatePercent" toml:"interest_rate_percent"`
	LoanTermYears       int     `json:"loanTermYears" toml:"loan_term_years"`

	PropertyTaxRatePercent  float64 `json:"propertyTaxRatePercent" toml:"property_tax_rate_percent"`
	AnnualMaintenanceCost   float64 `json:"annualMaintenanceCost" toml:"annual_maintenance_cost"`
	AppreciationRatePercent float64 `json:"appreciationRatePercent" toml:"appreciation_rate_percent"`

	IncludeSellingCosts bool    `json:"includeSellingCosts" toml:"include_selling_costs"`
	SellingCostPercent  float64 `json:"sellingCostPercent" toml:"selling_cost_percent"` // used only if IncludeSellingCosts

	MonthlyRent                 float64 `json:"monthlyRent" toml:"monthly_rent"`
	RentIncreaseRatePercent     float64 `json:"rentIncreaseRatePercent" toml:"rent_increase_rate_percent"`
	InvestmentReturnRatePercent float64 `json:"investmentReturnRatePercent" toml:"investment_return_rate_percent"`

	MonthlyIncome float64 `json:"monthlyIncome" toml:"monthly_income"` // affordability only
}

// DownPayment returns the cash paid upfront
func (in ProjectionInput) DownPayment() float64 {
	return in.HomePrice * in.DownPaymentPercent / 100
}

// LoanAmount returns the financed principal
func (in ProjectionInput) LoanAmount() float64 {
	return in.HomePrice - in.DownPayment()
}

// CappedAppreciationPercent returns the appreciation rate used for home value growth
func (in ProjectionInput) CappedAppreciationPercent() float64 {
	return math.Min(in.AppreciationRatePercent, MaxHomeAppreciationPercent)
}

// MaintenanceInflationPercent returns the rate at which maintenance costs grow
func (in ProjectionInput) MaintenanceInflationPercent() float64 {
	return math.Min(in.CappedAppreciationPercent(), MaxMaintenanceInflationPercent)
}

// Validate ensures the input adheres to domain rules
// Returns an InvalidInputError for the first violated rule
func (in ProjectionInput) Validate() error {
	if !isFinite(in.HomePrice) || in.HomePrice <= 0 {
		return NewInvalidInputError("homePrice", "must be positive")
	}
	if in.LoanTermYears < 1 {
		return NewInvalidInputError("loanTermYears", "must be at least 1")
	}
	if in.LoanTermYears > MaxLoanTermYears {
		return NewInvalidInputError("loanTermYears", "exceeds the maximum projection horizon")
	}

	rates := []struct {
		field string
		value float64
	}{
		{"downPaymentPercent", in.DownPaymentPercent},
		{"interestRatePercent", in.InterestRatePercent},
		{"propertyTaxRatePercent", in.PropertyTaxRatePercent},
		{"appreciationRatePercent", in.AppreciationRatePercent},
		{"sellingCostPercent", in.SellingCostPercent},
		{"rentIncreaseRatePercent", in.RentIncreaseRatePercent},
		{"investmentReturnRatePercent", in.InvestmentReturnRatePercent},
	}
	for _, r := range rates {
		if !isFinite(r.value) || r.value < 0 {
			return NewInvalidInputError(r.field, "must be a non-negative percentage")
		}
	}

	if in.DownPaymentPercent > 100 {
		return NewInvalidInputError("downPaymentPercent", "down payment cannot exceed the home price")
	}

	amounts := []struct {
		field string
		value float64
	}{
		{"annualMaintenanceCost", in.AnnualMaintenanceCost},
		{"monthlyRent", in.MonthlyRent},
		{"monthlyIncome", in.MonthlyIncome},
	}
	for _, a := range amounts {
		if !isFinite(a.value) || a.value < 0 {
			return NewInvalidInputError(a.field, "must be a non-negative amount")
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// YearlyRecord is the state of both scenarios at the end of one loan year
type YearlyRecord struct {
	Year int `json:"year"` // 1-based

	// Buying
	MortgagePaid  float64 `json:"mortgagePaid"`
	InterestPaid  float64 `json:"interestPaid"`
	PrincipalPaid float64 `json:"principalPaid"`
	PropertyTax   float64 `json:"propertyTax"`
	Maintenance   float64 `json:"maintenance"`
	HomeValue     float64 `json:"homeValue"` // end of year
	LoanBalance   float64 `json:"loanBalance"`
	HomeEquity    float64 `json:"homeEquity"`
	SellingCosts  float64 `json:"sellingCosts"` // if sold at the end of this year

	// Renting
	RentPaid        float64 `json:"rentPaid"`
	InvestmentValue float64 `json:"investmentValue"`

	// Running comparison
	CumulativeBuying  float64 `json:"cumulativeBuying"`
	CumulativeRenting float64 `json:"cumulativeRenting"`
	BuyingPosition    float64 `json:"buyingPosition"`
	RentingPosition   float64 `json:"rentingPosition"`
}

// OwnershipCost returns what owning cost in this year
func (r YearlyRecord) OwnershipCost() float64 {
	return r.MortgagePaid + r.PropertyTax + r.Maintenance
}

// BuyingAhead reports whether buying has a lower net position than renting this year
func (r YearlyRecord) BuyingAhead() bool {
	return r.BuyingPosition < r.RentingPosition
}

// MonthlyCosts is the first-month view of ownership costs
type MonthlyCosts struct {
	Mortgage    float64 `json:"mortgage"`
	PropertyTax float64 `json:"propertyTax"`
	Maintenance float64 `json:"maintenance"`
	Total       float64 `json:"total"`
	Rent        float64 `json:"rent"`
}

// Option names a side of the comparison
type Option string

const (
	OptionBuy  Option = "buy"
	OptionRent Option = "rent"
)

// Verdict summarizes which option is cheaper over the whole horizon
type Verdict struct {
	Cheaper        Option  `json:"cheaper"`
	Savings        float64 `json:"savings"`
	SavingsPercent float64 `json:"savingsPercent"`
}

// ProjectionResult is the terminal output of a projection run
type ProjectionResult struct {
	DownPayment               float64 `json:"downPayment"`
	LoanAmount                float64 `json:"loanAmount"`
	MonthlyPayment            float64 `json:"monthlyPayment"`
	CappedAppreciationPercent float64 `json:"cappedAppreciationPercent"`

	TotalBuyingCost     float64 `json:"totalBuyingCost"`
	NetBuyingCost       float64 `json:"netBuyingCost"` // after sale proceeds
	TotalRentingCost    float64 `json:"totalRentingCost"`
	AdjustedRentingCost float64 `json:"adjustedRentingCost"` // after investment gains

	FinalHomeValue  float64 `json:"finalHomeValue"`
	SellingCosts    float64 `json:"sellingCosts"`
	NetSaleProceeds float64 `json:"netSaleProceeds"`
	InvestmentValue float64 `json:"investmentValue"`
	InvestmentGain  float64 `json:"investmentGain"`

	BreakEvenYear *int `json:"breakEvenYear"` // nil if buying never pulls ahead within the term

	Years []YearlyRecord `json:"years"`

	MortgageAffordability Affordability `json:"mortgageAffordability"`
	RentAffordability     Affordability `json:"rentAffordability"`
	MonthlyCosts          MonthlyCosts  `json:"monthlyCosts"`
	Verdict               Verdict       `json:"verdict"`
}

// HasBreakEven reports whether buying pulls ahead within the term
func (r *ProjectionResult) HasBreakEven() bool {
	return r.BreakEvenYear != nil
}
