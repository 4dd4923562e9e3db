// Package memory provides an in-process rent repository.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/simaogato/homedecide-backend/internal/domain"
)

type rentKey struct {
	city     string
	bedrooms int
}

// RentRepository implements domain.RentRepository on a map
type RentRepository struct {
	mu   sync.RWMutex
	data map[rentKey]domain.RentObservation
}

// NewRentRepository creates an empty repository
func NewRentRepository() *RentRepository {
	return &RentRepository{
		data: make(map[rentKey]domain.RentObservation),
	}
}

func (r *RentRepository) ListByCity(ctx context.Context, city string) ([]*domain.RentObservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	observations := make([]*domain.RentObservation, 0)
	for k, obs := range r.data {
		if k.city != city {
			continue
		}
		o := obs
		observations = append(observations, &o)
	}
	sort.Slice(observations, func(i, j int) bool {
		return observations[i].Bedrooms < observations[j].Bedrooms
	})

	return observations, nil
}

func (r *RentRepository) Cities(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	cities := make([]string, 0)
	for k := range r.data {
		if _, ok := seen[k.city]; ok {
			continue
		}
		seen[k.city] = struct{}{}
		cities = append(cities, k.city)
	}
	sort.Strings(cities)

	return cities, nil
}

func (r *RentRepository) Upsert(ctx context.Context, obs *domain.RentObservation) error {
	if err := obs.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rentKey{city: obs.City, bedrooms: obs.Bedrooms}] = *obs

	return nil
}
