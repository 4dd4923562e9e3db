// Package projection resolves rent inputs, runs comparisons and caches the results.
package projection

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/homedecide-backend/internal/domain"
	"github.com/simaogato/homedecide-backend/internal/usecase/amortization"
	"github.com/simaogato/homedecide-backend/internal/usecase/comparator"
)

// DefaultMonthlyRent is used when neither the caller nor the rent data supplies a rent
const DefaultMonthlyRent = 1800.0

// projectionNamespace scopes projection IDs derived with uuid.NewSHA1
var projectionNamespace = uuid.MustParse("6f1c2d9e-8a54-4b1e-9f0a-3c7d5e2b4a10")

// RentLookup resolves an average rent for a city and bedroom count
type RentLookup interface {
	AverageRent(ctx context.Context, city string, bedrooms int) (decimal.Decimal, bool, error)
}

// Request describes one projection run.
// When Input.MonthlyRent is zero and City is set, the rent is looked up.
type Request struct {
	Input    domain.ProjectionInput
	City     string
	Bedrooms int
}

// Projection is a computed comparison together with the resolved input
type Projection struct {
	ID         uuid.UUID                `json:"id"`
	RentSource domain.RentSource        `json:"rentSource"`
	City       string                   `json:"city,omitempty"`
	Bedrooms   int                      `json:"bedrooms,omitempty"`
	Input      domain.ProjectionInput   `json:"input"`
	Result     *domain.ProjectionResult `json:"result"`
}

// Service handles projection operations
type Service struct {
	RentLookup         RentLookup
	Cache              domain.ProjectionCache
	DefaultMonthlyRent float64
	CacheTTL           time.Duration
}

// NewService creates a new projection Service. rentLookup and cache may be nil.
func NewService(rentLookup RentLookup, cache domain.ProjectionCache, defaultMonthlyRent float64, cacheTTL time.Duration) *Service {
	if defaultMonthlyRent <= 0 {
		defaultMonthlyRent = DefaultMonthlyRent
	}
	return &Service{
		RentLookup:         rentLookup,
		Cache:              cache,
		DefaultMonthlyRent: defaultMonthlyRent,
		CacheTTL:           cacheTTL,
	}
}

// Project runs a rent-versus-buy comparison.
// Logic:
//  1. Resolve the monthly rent (caller value, rent lookup, or the configured default)
//  2. Derive a deterministic ID from the resolved input and where its rent came from
//  3. Serve from cache when possible, otherwise compare and cache the result
func (s *Service) Project(ctx context.Context, req Request) (*Projection, error) {
	input, source := s.resolveRent(ctx, req)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	city, bedrooms := "", 0
	if source != domain.RentSourceCaller {
		city, bedrooms = strings.TrimSpace(req.City), req.Bedrooms
	}

	id, err := projectionID(input, source, city, bedrooms)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.fromCache(ctx, id); ok {
		return cached, nil
	}

	result, err := comparator.Compare(input)
	if err != nil {
		return nil, err
	}

	p := &Projection{
		ID:         id,
		RentSource: source,
		City:       city,
		Bedrooms:   bedrooms,
		Input:      input,
		Result:     result,
	}

	s.store(ctx, p)

	return p, nil
}

// Schedule returns the monthly amortization table of a loan
func (s *Service) Schedule(ctx context.Context, principal, annualRatePercent float64, termYears int) ([]amortization.Period, error) {
	if termYears > domain.MaxLoanTermYears {
		return nil, domain.NewInvalidInputError("termYears", fmt.Sprintf("cannot exceed %d", domain.MaxLoanTermYears))
	}
	return amortization.Schedule(principal, annualRatePercent, termYears)
}

func (s *Service) resolveRent(ctx context.Context, req Request) (domain.ProjectionInput, domain.RentSource) {
	input := req.Input
	if input.MonthlyRent != 0 || strings.TrimSpace(req.City) == "" {
		return input, domain.RentSourceCaller
	}

	if s.RentLookup != nil {
		rent, ok, err := s.RentLookup.AverageRent(ctx, req.City, req.Bedrooms)
		switch {
		case err != nil:
			log.Printf("Warning: rent lookup for %s (%d bedrooms) failed, using default: %v", req.City, req.Bedrooms, err)
		case ok:
			input.MonthlyRent = rent.InexactFloat64()
			return input, domain.RentSourceLookup
		}
	}

	input.MonthlyRent = s.DefaultMonthlyRent
	return input, domain.RentSourceDefault
}

func (s *Service) fromCache(ctx context.Context, id uuid.UUID) (*Projection, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, ok := s.Cache.Get(ctx, id.String())
	if !ok {
		return nil, false
	}

	var p Projection
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		log.Printf("Warning: discarding unreadable cached projection %s: %v", id, err)
		return nil, false
	}
	return &p, true
}

func (s *Service) store(ctx context.Context, p *Projection) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: failed to encode projection %s: %v", p.ID, err)
		return
	}
	if err := s.Cache.Set(ctx, p.ID.String(), string(raw), s.CacheTTL); err != nil {
		log.Printf("Warning: failed to cache projection %s: %v", p.ID, err)
	}
}

// projectionKey is everything a cached Projection depends on
type projectionKey struct {
	Input      domain.ProjectionInput `json:"input"`
	RentSource domain.RentSource      `json:"rentSource"`
	City       string                 `json:"city"`
	Bedrooms   int                    `json:"bedrooms"`
}

func projectionID(input domain.ProjectionInput, source domain.RentSource, city string, bedrooms int) (uuid.UUID, error) {
	raw, err := json.Marshal(projectionKey{Input: input, RentSource: source, City: city, Bedrooms: bedrooms})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode input: %w", err)
	}
	return uuid.NewSHA1(projectionNamespace, raw), nil
}
