package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/simaogato/homedecide-backend/internal/domain"
)

// Scenario is a saved set of projection assumptions, stored as TOML:
//
//	city = "Toronto"
//	bedrooms = 2
//
//	[input]
//	home_price = 750000
//	down_payment_percent = 20
type Scenario struct {
	City     string                 `toml:"city"`
	Bedrooms int                    `toml:"bedrooms"`
	Input    domain.ProjectionInput `toml:"input"`
}

// DefaultScenario returns the assumptions used when no scenario file is given
func DefaultScenario() Scenario {
	return Scenario{
		Input: domain.ProjectionInput{
			HomePrice:                   750000,
			DownPaymentPercent:          20,
			InterestRatePercent:         5.5,
			LoanTermYears:               25,
			PropertyTaxRatePercent:      0.7,
			AnnualMaintenanceCost:       5000,
			AppreciationRatePercent:     3,
			IncludeSellingCosts:         true,
			SellingCostPercent:          5,
			MonthlyRent:                 1800,
			RentIncreaseRatePercent:     3,
			InvestmentReturnRatePercent: 5,
			MonthlyIncome:               5000,
		},
	}
}

// LoadScenario reads a TOML scenario. Keys missing from the file keep their defaults,
// except that a scenario naming a city without a monthly_rent gets its rent looked up.
func LoadScenario(path string) (Scenario, error) {
	s := DefaultScenario()
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Scenario{}, fmt.Errorf("parsing scenario %s: unknown key %q", path, undecoded[0].String())
	}
	if s.City != "" && !md.IsDefined("input", "monthly_rent") {
		s.Input.MonthlyRent = 0
	}
	return s, nil
}
