package rest

import (
	"github.com/simaogato/homedecide-backend/internal/domain"
	"github.com/simaogato/homedecide-backend/internal/usecase/amortization"
	"github.com/simaogato/homedecide-backend/internal/usecase/projection"
	"github.com/simaogato/homedecide-backend/internal/usecase/report"
)

type projectionInputBody struct {
	HomePrice                   float64 `json:"homePrice" validate:"gt=0"`
	DownPaymentPercent          float64 `json:"downPaymentPercent" validate:"gte=0,lte=100"`
	InterestRatePercent         float64 `json:"interestRatePercent" validate:"gte=0"`
	LoanTermYears               int     `json:"loanTermYears" validate:"gte=1,lte=50"`
	PropertyTaxRatePercent      float64 `json:"propertyTaxRatePercent" validate:"gte=0"`
	AnnualMaintenanceCost       float64 `json:"annualMaintenanceCost" validate:"gte=0"`
	AppreciationRatePercent     float64 `json:"appreciationRatePercent" validate:"gte=0"`
	IncludeSellingCosts         bool    `json:"includeSellingCosts"`
	SellingCostPercent          float64 `json:"sellingCostPercent" validate:"gte=0"`
	MonthlyRent                 float64 `json:"monthlyRent" validate:"gte=0"`
	RentIncreaseRatePercent     float64 `json:"rentIncreaseRatePercent" validate:"gte=0"`
	InvestmentReturnRatePercent float64 `json:"investmentReturnRatePercent" validate:"gte=0"`
	MonthlyIncome               float64 `json:"monthlyIncome" validate:"gte=0"`
}

func (b projectionInputBody) toDomain() domain.ProjectionInput {
	return domain.ProjectionInput{
		HomePrice:                   b.HomePrice,
		DownPaymentPercent:          b.DownPaymentPercent,
		InterestRatePercent:         b.InterestRatePercent,
		LoanTermYears:               b.LoanTermYears,
		PropertyTaxRatePercent:      b.PropertyTaxRatePercent,
		AnnualMaintenanceCost:       b.AnnualMaintenanceCost,
		AppreciationRatePercent:     b.AppreciationRatePercent,
		IncludeSellingCosts:         b.IncludeSellingCosts,
		SellingCostPercent:          b.SellingCostPercent,
		MonthlyRent:                 b.MonthlyRent,
		RentIncreaseRatePercent:     b.RentIncreaseRatePercent,
		InvestmentReturnRatePercent: b.InvestmentReturnRatePercent,
		MonthlyIncome:               b.MonthlyIncome,
	}
}

type createProjectionRequest struct {
	Input    projectionInputBody `json:"input"`
	City     string              `json:"city"`
	Bedrooms int                 `json:"bedrooms" validate:"gte=0"`
}

type createProjectionResponse struct {
	Projection *projection.Projection `json:"projection"`
	Report     *report.Report         `json:"report"`
}

type getRentRequest struct {
	City     string `param:"city" validate:"required"`
	Bedrooms int    `param:"bedrooms" validate:"gte=0"`
}

type getRentResponse struct {
	City        string `json:"city"`
	Bedrooms    int    `json:"bedrooms"`
	AverageRent string `json:"average_rent"`
}

type listCitiesResponse struct {
	Cities []string `json:"cities"`
}

type amortizationRequest struct {
	Principal         float64 `json:"principal" validate:"gte=0"`
	AnnualRatePercent float64 `json:"annualRatePercent" validate:"gte=0"`
	TermYears         int     `json:"termYears" validate:"gte=1,lte=50"`
}

type amortizationResponse struct {
	MonthlyPayment float64               `json:"monthlyPayment"`
	Periods        []amortization.Period `json:"periods"`
}

type errorResponse struct {
	Error string `json:"error"`
}
