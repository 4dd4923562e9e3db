package domain

import (
	"context"
	"time"
)

// RentRepository defines the interface for rent data persistence operations
type RentRepository interface {
	// ListByCity retrieves every observation for a city, ordered by bedrooms.
	// Returns an empty slice when the city has no data.
	ListByCity(ctx context.Context, city string) ([]*RentObservation, error)

	// Cities retrieves the distinct city names
	Cities(ctx context.Context) ([]string, error)

	// Upsert creates or replaces the observation for (city, bedrooms)
	Upsert(ctx context.Context, obs *RentObservation) error
}

// ProjectionCache stores serialized projections keyed by their deterministic ID
type ProjectionCache interface {
	// Get returns the cached value and whether it was present
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a value; ttl <= 0 means no expiry
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
