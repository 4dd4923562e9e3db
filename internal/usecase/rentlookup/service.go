// Package rentlookup resolves average rents for a city and bedroom count.
package rentlookup

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/simaogato/homedecide-backend/internal/domain"
)

// RentLookupService answers average rent queries from a RentRepository
type RentLookupService struct {
	RentRepo domain.RentRepository
}

// NewRentLookupService creates a new RentLookupService instance
func NewRentLookupService(rentRepo domain.RentRepository) *RentLookupService {
	return &RentLookupService{RentRepo: rentRepo}
}

// AverageRent returns the average monthly rent for city and bedrooms.
// Logic:
//  1. Exact (city, bedrooms) match wins
//  2. Otherwise the nearest bedroom count in the same city (ties go to fewer bedrooms)
//  3. A city without data is reported as absent (ok == false), not as an error
func (s *RentLookupService) AverageRent(ctx context.Context, city string, bedrooms int) (decimal.Decimal, bool, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return decimal.Zero, false, nil
	}

	observations, err := s.RentRepo.ListByCity(ctx, city)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("%w: %v", domain.ErrRentDataUnavailable, err)
	}

	best := nearest(observations, bedrooms)
	if best == nil {
		return decimal.Zero, false, nil
	}

	return best.AverageRent, true, nil
}

// Cities returns the sorted set of cities with rent data
func (s *RentLookupService) Cities(ctx context.Context) ([]string, error) {
	cities, err := s.RentRepo.Cities(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRentDataUnavailable, err)
	}

	seen := make(map[string]bool, len(cities))
	unique := make([]string, 0, len(cities))
	for _, c := range cities {
		if !seen[c] {
			seen[c] = true
			unique = append(unique, c)
		}
	}
	sort.Strings(unique)

	return unique, nil
}

func nearest(observations []*domain.RentObservation, bedrooms int) *domain.RentObservation {
	var best *domain.RentObservation
	bestDistance := 0

	for _, obs := range observations {
		d := obs.Bedrooms - bedrooms
		if d < 0 {
			d = -d
		}
		switch {
		case best == nil, d < bestDistance:
			best, bestDistance = obs, d
		case d == bestDistance && obs.Bedrooms < best.Bedrooms:
			best = obs
		}
	}

	return best
}
