package grpc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/homedecide-backend/internal/domain"
	"github.com/simaogato/homedecide-backend/internal/usecase/amortization"
	"github.com/simaogato/homedecide-backend/internal/usecase/projection"
	"github.com/simaogato/homedecide-backend/internal/usecase/report"
)

// ProjectRequest is the payload of the Project RPC
type ProjectRequest struct {
	Input    domain.ProjectionInput `json:"input"`
	City     string                 `json:"city,omitempty"`
	Bedrooms int                    `json:"bedrooms,omitempty"`
}

// ProjectResponse is the payload returned by the Project RPC
type ProjectResponse struct {
	Projection *projection.Projection `json:"projection"`
	Report     *report.Report         `json:"report"`
}

// LookupRentRequest is the payload of the LookupRent RPC
type LookupRentRequest struct {
	City     string `json:"city"`
	Bedrooms int    `json:"bedrooms"`
}

// LookupRentResponse carries the rent as a decimal string
type LookupRentResponse struct {
	City        string `json:"city"`
	Bedrooms    int    `json:"bedrooms"`
	AverageRent string `json:"averageRent"`
}

// ListCitiesResponse is the payload returned by the ListCities RPC
type ListCitiesResponse struct {
	Cities []string `json:"cities"`
}

// ScheduleRequest is the payload of the AmortizationSchedule RPC
type ScheduleRequest struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TermYears         int     `json:"termYears"`
}

// ScheduleResponse is the payload returned by the AmortizationSchedule RPC
type ScheduleResponse struct {
	MonthlyPayment float64               `json:"monthlyPayment"`
	Periods        []amortization.Period `json:"periods"`
}

// decodeStruct copies a Struct payload into v, rejecting unknown fields
func decodeStruct(in *structpb.Struct, v interface{}) error {
	if in == nil {
		in = &structpb.Struct{}
	}
	raw, err := json.Marshal(in.AsMap())
	if err != nil {
		return fmt.Errorf("%w: malformed request: %v", domain.ErrInvalidInput, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// encodeStruct converts v into a Struct payload via its JSON form
func encodeStruct(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}

	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}
	return s, nil
}

// EncodeRequest builds a Struct request payload; used by clients
func EncodeRequest(v interface{}) (*structpb.Struct, error) {
	return encodeStruct(v)
}

// DecodeResponse copies a Struct response payload into v; used by clients
func DecodeResponse(in *structpb.Struct, v interface{}) error {
	raw, err := json.Marshal(in.AsMap())
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
