package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/homedecide-backend/internal/domain"
)

// rentRepository implements domain.RentRepository
type rentRepository struct {
	db *DB
}

// NewRentRepository creates a new rent repository
func NewRentRepository(db *DB) domain.RentRepository {
	return &rentRepository{db: db}
}

// ListByCity retrieves every observation for a city ordered by bedrooms
func (r *rentRepository) ListByCity(ctx context.Context, city string) ([]*domain.RentObservation, error) {
	query := `
		SELECT city, bedrooms, average_rent
		FROM rent_averages
		WHERE city = $1
		ORDER BY bedrooms
	`

	rows, err := r.db.QueryContext(ctx, query, city)
	if err != nil {
		return nil, fmt.Errorf("failed to list rent averages: %w", err)
	}
	defer rows.Close()

	observations := make([]*domain.RentObservation, 0)
	for rows.Next() {
		var obs domain.RentObservation
		var rentStr string

		if err := rows.Scan(&obs.City, &obs.Bedrooms, &rentStr); err != nil {
			return nil, fmt.Errorf("failed to scan rent average: %w", err)
		}

		// Parse average_rent (NUMERIC)
		rent, err := decimal.NewFromString(rentStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse average_rent: %w", err)
		}
		obs.AverageRent = rent

		observations = append(observations, &obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rent averages: %w", err)
	}

	return observations, nil
}

// Cities retrieves the distinct city names in alphabetical order
func (r *rentRepository) Cities(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT city FROM rent_averages ORDER BY city`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	defer rows.Close()

	cities := make([]string, 0)
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cities: %w", err)
	}

	return cities, nil
}

// Upsert creates or replaces the observation for (city, bedrooms)
func (r *rentRepository) Upsert(ctx context.Context, obs *domain.RentObservation) error {
	query := `
		INSERT INTO rent_averages (city, bedrooms, average_rent)
		VALUES ($1, $2, $3)
		ON CONFLICT (city, bedrooms) DO UPDATE SET average_rent = EXCLUDED.average_rent
	`

	_, err := r.db.ExecContext(ctx, query,
		obs.City,
		obs.Bedrooms,
		obs.AverageRent.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert rent average: %w", err)
	}

	return nil
}
