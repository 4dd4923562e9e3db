package seeder

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/simaogato/homedecide-backend/internal/domain"
)

const (
	// BedroomRentStep is the rent added for each bedroom above one
	BedroomRentStep = 600

	// MaxSeedBedrooms is the largest bedroom count seeded per city
	MaxSeedBedrooms = 4
)

// DefaultBaseRents holds the one-bedroom average rent (CAD) per city
var DefaultBaseRents = map[string]int64{
	"Vancouver":   2400,
	"Toronto":     2300,
	"Montreal":    1200,
	"Calgary":     1300,
	"Edmonton":    1200,
	"Ottawa":      1500,
	"Winnipeg":    1100,
	"Quebec City": 1000,
	"Hamilton":    1400,
	"Victoria":    1800,
}

// DefaultObservations expands DefaultBaseRents into 1..MaxSeedBedrooms observations per city,
// ordered by city then bedrooms
func DefaultObservations() []*domain.RentObservation {
	cities := make([]string, 0, len(DefaultBaseRents))
	for city := range DefaultBaseRents {
		cities = append(cities, city)
	}
	sort.Strings(cities)

	observations := make([]*domain.RentObservation, 0, len(cities)*MaxSeedBedrooms)
	for _, city := range cities {
		base := DefaultBaseRents[city]
		for bedrooms := 1; bedrooms <= MaxSeedBedrooms; bedrooms++ {
			observations = append(observations, &domain.RentObservation{
				City:        city,
				Bedrooms:    bedrooms,
				AverageRent: decimal.NewFromInt(base + int64(bedrooms-1)*BedroomRentStep),
			})
		}
	}

	return observations
}

// RentSeeder loads reference rent data into a RentRepository
type RentSeeder struct {
	repo         domain.RentRepository
	observations []*domain.RentObservation
}

// NewRentSeeder creates a new RentSeeder instance.
// If observations is empty, DefaultObservations is used.
func NewRentSeeder(repo domain.RentRepository, observations []*domain.RentObservation) *RentSeeder {
	if len(observations) == 0 {
		observations = DefaultObservations()
	}
	return &RentSeeder{
		repo:         repo,
		observations: observations,
	}
}

// Seed ensures every city in the seed set has rent data.
// Cities that already have observations are left untouched.
// Returns the number of observations written.
func (s *RentSeeder) Seed(ctx context.Context) (int, error) {
	byCity := make(map[string][]*domain.RentObservation)
	order := make([]string, 0)
	for _, obs := range s.observations {
		if _, ok := byCity[obs.City]; !ok {
			order = append(order, obs.City)
		}
		byCity[obs.City] = append(byCity[obs.City], obs)
	}

	written := 0
	for _, city := range order {
		existing, err := s.repo.ListByCity(ctx, city)
		if err != nil {
			return written, fmt.Errorf("failed to check rent data for %s: %w", city, err)
		}
		if len(existing) > 0 {
			continue
		}

		for _, obs := range byCity[city] {
			// Validate before creating
			if err := obs.Validate(); err != nil {
				return written, err
			}
			if err := s.repo.Upsert(ctx, obs); err != nil {
				return written, fmt.Errorf("failed to seed rent for %s/%d: %w", obs.City, obs.Bedrooms, err)
			}
			written++
		}
	}

	return written, nil
}
