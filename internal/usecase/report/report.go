// Package report turns a projection result into transport-neutral display figures.
package report

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/homedecide-backend/internal/domain"
)

// Bar is one headline amount
type Bar struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Metric is a labelled figure shown next to the headline bars
type Metric struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Row is one year of the breakdown table
type Row struct {
	Year            int             `json:"year"`
	OwnershipCost   decimal.Decimal `json:"ownershipCost"`
	Rent            decimal.Decimal `json:"rent"`
	HomeValue       decimal.Decimal `json:"homeValue"`
	LoanBalance     decimal.Decimal `json:"loanBalance"`
	Equity          decimal.Decimal `json:"equity"`
	InvestmentValue decimal.Decimal `json:"investmentValue"`
	BuyingPosition  decimal.Decimal `json:"buyingPosition"`
	RentingPosition decimal.Decimal `json:"rentingPosition"`
}

// Report is the presentation view of a projection
type Report struct {
	Headline              []Bar                `json:"headline"`
	Metrics               []Metric             `json:"metrics"`
	Breakdown             []Row                `json:"breakdown"`
	BreakEvenYear         *int                 `json:"breakEvenYear"`
	Summary               string               `json:"summary"`
	Verdict               domain.Verdict       `json:"verdict"`
	MortgageAffordability domain.Affordability `json:"mortgageAffordability"`
	RentAffordability     domain.Affordability `json:"rentAffordability"`
}

// Money rounds a float amount to cents
func Money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Build creates a Report from a projection result
func Build(result *domain.ProjectionResult) (*Report, error) {
	if result == nil {
		return nil, errors.New("projection result is required")
	}

	r := &Report{
		Headline: []Bar{
			{Label: "Total Buying Cost", Amount: Money(result.TotalBuyingCost)},
			{Label: "Net Buying Cost", Amount: Money(result.NetBuyingCost)},
			{Label: "Total Renting Cost", Amount: Money(result.TotalRentingCost)},
			{Label: "Adjusted Renting Cost", Amount: Money(result.AdjustedRentingCost)},
		},
		Metrics: []Metric{
			{Label: "Down Payment", Amount: Money(result.DownPayment)},
			{Label: "Loan Amount", Amount: Money(result.LoanAmount)},
			{Label: "Monthly Payment", Amount: Money(result.MonthlyPayment)},
			{Label: "Monthly Ownership Cost", Amount: Money(result.MonthlyCosts.Total)},
			{Label: "Final Home Value", Amount: Money(result.FinalHomeValue)},
			{Label: "Selling Costs", Amount: Money(result.SellingCosts)},
			{Label: "Net Sale Proceeds", Amount: Money(result.NetSaleProceeds)},
			{Label: "Investment Value", Amount: Money(result.InvestmentValue)},
			{Label: "Investment Gain", Amount: Money(result.InvestmentGain)},
		},
		Breakdown:             make([]Row, 0, len(result.Years)),
		BreakEvenYear:         result.BreakEvenYear,
		Summary:               summary(result),
		Verdict:               result.Verdict,
		MortgageAffordability: result.MortgageAffordability,
		RentAffordability:     result.RentAffordability,
	}

	for _, y := range result.Years {
		r.Breakdown = append(r.Breakdown, Row{
			Year:            y.Year,
			OwnershipCost:   Money(y.OwnershipCost()),
			Rent:            Money(y.RentPaid),
			HomeValue:       Money(y.HomeValue),
			LoanBalance:     Money(y.LoanBalance),
			Equity:          Money(y.HomeEquity),
			InvestmentValue: Money(y.InvestmentValue),
			BuyingPosition:  Money(y.BuyingPosition),
			RentingPosition: Money(y.RentingPosition),
		})
	}

	return r, nil
}

func summary(result *domain.ProjectionResult) string {
	var s string
	if result.Verdict.Cheaper == domain.OptionBuy {
		s = fmt.Sprintf("Buying is cheaper by $%s (%.1f%%) over %d years.",
			Money(result.Verdict.Savings).StringFixed(2), result.Verdict.SavingsPercent, len(result.Years))
	} else {
		s = fmt.Sprintf("Renting is cheaper by $%s (%.1f%%) over %d years.",
			Money(result.Verdict.Savings).StringFixed(2), result.Verdict.SavingsPercent, len(result.Years))
	}

	if result.BreakEvenYear != nil {
		return s + fmt.Sprintf(" Buying breaks even in year %d.", *result.BreakEvenYear)
	}
	return s + " Buying does not break even within the loan term."
}
