package grpc

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/homedecide-backend/internal/domain"
	"github.com/simaogato/homedecide-backend/internal/usecase/amortization"
	"github.com/simaogato/homedecide-backend/internal/usecase/projection"
	"github.com/simaogato/homedecide-backend/internal/usecase/rentlookup"
	"github.com/simaogato/homedecide-backend/internal/usecase/report"
)

// Server implements the ProjectionService gRPC server
type Server struct {
	ProjectionService *projection.Service
	RentLookupService *rentlookup.RentLookupService
}

// NewServer creates a new gRPC server instance
func NewServer(
	projectionService *projection.Service,
	rentLookupService *rentlookup.RentLookupService,
) *Server {
	return &Server{
		ProjectionService: projectionService,
		RentLookupService: rentLookupService,
	}
}

// Project handles the Project RPC
func (s *Server) Project(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ProjectRequest
	if err := decodeStruct(req, &in); err != nil {
		return nil, mapError(err)
	}

	// Call usecase service
	p, err := s.ProjectionService.Project(ctx, projection.Request{
		Input:    in.Input,
		City:     in.City,
		Bedrooms: in.Bedrooms,
	})
	if err != nil {
		return nil, mapError(err)
	}

	r, err := report.Build(p.Result)
	if err != nil {
		return nil, mapError(err)
	}

	// Build response
	return s.respond(ProjectResponse{Projection: p, Report: r})
}

// LookupRent handles the LookupRent RPC
func (s *Server) LookupRent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in LookupRentRequest
	if err := decodeStruct(req, &in); err != nil {
		return nil, mapError(err)
	}
	if in.City == "" {
		return nil, status.Error(codes.InvalidArgument, "city is required")
	}
	if in.Bedrooms < 0 {
		return nil, status.Error(codes.InvalidArgument, "bedrooms cannot be negative")
	}

	rent, ok, err := s.RentLookupService.AverageRent(ctx, in.City, in.Bedrooms)
	if err != nil {
		return nil, mapError(err)
	}
	if !ok {
		return nil, mapError(fmt.Errorf("%w: no rent data for %s", domain.ErrNotFound, in.City))
	}

	return s.respond(LookupRentResponse{
		City:        in.City,
		Bedrooms:    in.Bedrooms,
		AverageRent: rent.StringFixed(2),
	})
}

// ListCities handles the ListCities RPC
func (s *Server) ListCities(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	cities, err := s.RentLookupService.Cities(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return s.respond(ListCitiesResponse{Cities: cities})
}

// AmortizationSchedule handles the AmortizationSchedule RPC
func (s *Server) AmortizationSchedule(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ScheduleRequest
	if err := decodeStruct(req, &in); err != nil {
		return nil, mapError(err)
	}

	periods, err := s.ProjectionService.Schedule(ctx, in.Principal, in.AnnualRatePercent, in.TermYears)
	if err != nil {
		return nil, mapError(err)
	}

	payment, err := amortization.MonthlyPayment(in.Principal, in.AnnualRatePercent, in.TermYears)
	if err != nil {
		return nil, mapError(err)
	}

	return s.respond(ScheduleResponse{MonthlyPayment: payment, Periods: periods})
}

func (s *Server) respond(v interface{}) (*structpb.Struct, error) {
	out, err := encodeStruct(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Errorf(codes.Internal, "internal error: %v", err)
	}
}
