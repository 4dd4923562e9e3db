//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/homedecide-backend/internal/domain"
)

func getDBConnectionString() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	dbname := getEnv("DB_NAME", "homedecide")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func TestRentRepository_Postgres(t *testing.T) {
	ctx := context.Background()

	db, err := NewDB(getDBConnectionString())
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate(ctx))

	const city = "Integration Test City"
	_, err = db.ExecContext(ctx, `DELETE FROM rent_averages WHERE city = $1`, city)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.ExecContext(context.Background(), `DELETE FROM rent_averages WHERE city = $1`, city)
	})

	repo := NewRentRepository(db)
	require.NoError(t, repo.Upsert(ctx, &domain.RentObservation{City: city, Bedrooms: 2, AverageRent: decimal.RequireFromString("1999.99")}))
	require.NoError(t, repo.Upsert(ctx, &domain.RentObservation{City: city, Bedrooms: 1, AverageRent: decimal.NewFromInt(1500)}))
	require.NoError(t, repo.Upsert(ctx, &domain.RentObservation{City: city, Bedrooms: 1, AverageRent: decimal.NewFromInt(1550)}))

	observations, err := repo.ListByCity(ctx, city)
	require.NoError(t, err)
	require.Len(t, observations, 2)
	assert.Equal(t, 1, observations[0].Bedrooms)
	assert.True(t, observations[0].AverageRent.Equal(decimal.NewFromInt(1550)))
	assert.True(t, observations[1].AverageRent.Equal(decimal.RequireFromString("1999.99")))

	cities, err := repo.Cities(ctx)
	require.NoError(t, err)
	assert.Contains(t, cities, city)
}
