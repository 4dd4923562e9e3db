// Package sqlite provides a SQLite-backed rent repository for single-node deployments.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/simaogato/homedecide-backend/internal/domain"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS rent_averages (
	city         TEXT    NOT NULL,
	bedrooms     INTEGER NOT NULL,
	average_rent TEXT    NOT NULL,
	PRIMARY KEY (city, bedrooms)
)`

// RentRepository implements domain.RentRepository on a SQLite file
type RentRepository struct {
	db *sql.DB
}

// Open opens or creates the database at dbPath. Use ":memory:" for a throwaway store.
func Open(dbPath string) (*RentRepository, error) {
	dsn := dbPath
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return nil, fmt.Errorf("creating sqlite dir: %w", err)
		}
		dsn = dbPath + "?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	// a second connection to ":memory:" would see an empty database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &RentRepository{db: db}, nil
}

// Close closes the database
func (r *RentRepository) Close() error {
	return r.db.Close()
}

// ListByCity retrieves every observation for a city ordered by bedrooms
func (r *RentRepository) ListByCity(ctx context.Context, city string) ([]*domain.RentObservation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT city, bedrooms, average_rent FROM rent_averages WHERE city = ? ORDER BY bedrooms`, city)
	if err != nil {
		return nil, fmt.Errorf("listing rent averages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	observations := make([]*domain.RentObservation, 0)
	for rows.Next() {
		var obs domain.RentObservation
		var rentStr string
		if err := rows.Scan(&obs.City, &obs.Bedrooms, &rentStr); err != nil {
			return nil, fmt.Errorf("scanning rent average: %w", err)
		}
		rent, err := decimal.NewFromString(rentStr)
		if err != nil {
			return nil, fmt.Errorf("parsing average_rent %q: %w", rentStr, err)
		}
		obs.AverageRent = rent
		observations = append(observations, &obs)
	}

	return observations, rows.Err()
}

// Cities retrieves the distinct city names in alphabetical order
func (r *RentRepository) Cities(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT city FROM rent_averages ORDER BY city`)
	if err != nil {
		return nil, fmt.Errorf("listing cities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cities := make([]string, 0)
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("scanning city: %w", err)
		}
		cities = append(cities, city)
	}

	return cities, rows.Err()
}

// Upsert creates or replaces the observation for (city, bedrooms)
func (r *RentRepository) Upsert(ctx context.Context, obs *domain.RentObservation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rent_averages (city, bedrooms, average_rent) VALUES (?, ?, ?)
		 ON CONFLICT (city, bedrooms) DO UPDATE SET average_rent = excluded.average_rent`,
		obs.City, obs.Bedrooms, obs.AverageRent.String())
	if err != nil {
		return fmt.Errorf("upserting rent average: %w", err)
	}
	return nil
}
