// Package comparator drives the ownership and rental projections in lockstep
// and determines when buying overtakes renting.
package comparator

import (
	"github.com/simaogato/homedecide-backend/internal/domain"
	"github.com/simaogato/homedecide-backend/internal/usecase/affordability"
	"github.com/simaogato/homedecide-backend/internal/usecase/ownership"
	"github.com/simaogato/homedecide-backend/internal/usecase/rental"
)

// Compare runs a full rent-versus-buy projection.
// It is a pure function of input: identical inputs produce identical results.
//
// Logic, per year 1..N:
//  1. Add the year's mortgage, tax and maintenance to the buyer's out-of-pocket total
//  2. Add the year's rent to the renter's out-of-pocket total
//  3. Buying position = out-of-pocket - (equity - selling costs at the current value)
//  4. Renting position = out-of-pocket - investment gain
//  5. The first year where buying < renting is the break-even year; later reversals are ignored
func Compare(input domain.ProjectionInput) (*domain.ProjectionResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	owner, err := ownership.NewProjector(input)
	if err != nil {
		return nil, err
	}
	renter := rental.NewProjector(input)

	downPayment := input.DownPayment()
	outOfPocketBuying := downPayment
	outOfPocketRenting := 0.0

	var breakEven *int
	records := make([]domain.YearlyRecord, 0, input.LoanTermYears)

	for year := 1; year <= input.LoanTermYears; year++ {
		own := owner.Next()
		rent := renter.Next()

		outOfPocketBuying += own.Cost()
		outOfPocketRenting += rent.Rent

		record := domain.YearlyRecord{
			Year:              year,
			MortgagePaid:      own.Mortgage,
			InterestPaid:      own.Interest,
			PrincipalPaid:     own.Principal,
			PropertyTax:       own.PropertyTax,
			Maintenance:       own.Maintenance,
			HomeValue:         own.HomeValue,
			LoanBalance:       own.LoanBalance,
			HomeEquity:        own.Equity,
			SellingCosts:      own.SellingCosts,
			RentPaid:          rent.Rent,
			InvestmentValue:   rent.InvestmentValue,
			CumulativeBuying:  outOfPocketBuying,
			CumulativeRenting: outOfPocketRenting,
			BuyingPosition:    outOfPocketBuying - (own.Equity - own.SellingCosts),
			RentingPosition:   outOfPocketRenting - rent.InvestmentGain,
		}
		records = append(records, record)

		if breakEven == nil && record.BuyingAhead() {
			y := year
			breakEven = &y
		}
	}

	sale := owner.Sale()
	totals := sumYears(records)

	result := &domain.ProjectionResult{
		DownPayment:               downPayment,
		LoanAmount:                input.LoanAmount(),
		MonthlyPayment:            owner.MonthlyPayment(),
		CappedAppreciationPercent: input.CappedAppreciationPercent(),

		TotalBuyingCost:  downPayment + totals.ownership,
		TotalRentingCost: totals.rent,

		FinalHomeValue:  sale.FinalHomeValue,
		SellingCosts:    sale.SellingCosts,
		NetSaleProceeds: sale.NetProceeds,
		InvestmentValue: records[len(records)-1].InvestmentValue,
		InvestmentGain:  renter.InvestmentGain(),

		BreakEvenYear: breakEven,
		Years:         records,

		MortgageAffordability: affordability.Assess(owner.MonthlyPayment(), input.MonthlyIncome),
		RentAffordability:     affordability.Assess(input.MonthlyRent, input.MonthlyIncome),
		MonthlyCosts:          ownership.MonthlyCosts(input, owner.MonthlyPayment()),
	}
	result.NetBuyingCost = result.TotalBuyingCost - result.NetSaleProceeds
	result.AdjustedRentingCost = result.TotalRentingCost - result.InvestmentGain
	result.Verdict = verdict(result.NetBuyingCost, result.AdjustedRentingCost)

	return result, nil
}

type yearTotals struct {
	ownership float64
	rent      float64
}

func sumYears(records []domain.YearlyRecord) yearTotals {
	var t yearTotals
	for _, r := range records {
		t.ownership += r.OwnershipCost()
		t.rent += r.RentPaid
	}
	return t
}

// verdict picks the cheaper option; a tie goes to renting
func verdict(netBuying, adjustedRenting float64) domain.Verdict {
	if netBuying < adjustedRenting {
		savings := adjustedRenting - netBuying
		return domain.Verdict{
			Cheaper:        domain.OptionBuy,
			Savings:        savings,
			SavingsPercent: savingsPercent(savings, adjustedRenting),
		}
	}

	savings := netBuying - adjustedRenting
	return domain.Verdict{
		Cheaper:        domain.OptionRent,
		Savings:        savings,
		SavingsPercent: savingsPercent(savings, netBuying),
	}
}

func savingsPercent(savings, base float64) float64 {
	if base <= 0 {
		return 0
	}
	return savings / base * 100
}
