package rentlookup

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/homedecide-backend/internal/domain"
)

// MockRentRepository is a mock implementation of RentRepository for testing
type MockRentRepository struct {
	mock.Mock
}

func (m *MockRentRepository) ListByCity(ctx context.Context, city string) ([]*domain.RentObservation, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RentObservation), args.Error(1)
}

func (m *MockRentRepository) Cities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRentRepository) Upsert(ctx context.Context, obs *domain.RentObservation) error {
	args := m.Called(ctx, obs)
	return args.Error(0)
}

func torontoRents() []*domain.RentObservation {
	return []*domain.RentObservation{
		{City: "Toronto", Bedrooms: 1, AverageRent: decimal.NewFromInt(2300)},
		{City: "Toronto", Bedrooms: 2, AverageRent: decimal.NewFromInt(2900)},
		{City: "Toronto", Bedrooms: 4, AverageRent: decimal.NewFromInt(4100)},
	}
}

func TestAverageRent(t *testing.T) {
	tests := []struct {
		name     string
		bedrooms int
		want     int64
	}{
		{name: "exact match", bedrooms: 2, want: 2900},
		{name: "tie goes to fewer bedrooms", bedrooms: 3, want: 2900},
		{name: "nearest above", bedrooms: 6, want: 4100},
		{name: "nearest below", bedrooms: 0, want: 2300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := new(MockRentRepository)
			repo.On("ListByCity", ctx, "Toronto").Return(torontoRents(), nil)

			service := NewRentLookupService(repo)
			rent, ok, err := service.AverageRent(ctx, "Toronto", tt.bedrooms)

			require.NoError(t, err)
			assert.True(t, ok)
			assert.True(t, rent.Equal(decimal.NewFromInt(tt.want)), "got %s", rent)
			repo.AssertExpectations(t)
		})
	}
}

func TestAverageRent_UnknownCityIsAbsent(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRentRepository)
	repo.On("ListByCity", ctx, "Atlantis").Return([]*domain.RentObservation{}, nil)

	service := NewRentLookupService(repo)
	rent, ok, err := service.AverageRent(ctx, "Atlantis", 2)

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, rent.IsZero())
}

func TestAverageRent_BlankCitySkipsRepository(t *testing.T) {
	repo := new(MockRentRepository)
	service := NewRentLookupService(repo)

	_, ok, err := service.AverageRent(context.Background(), "   ", 2)

	assert.NoError(t, err)
	assert.False(t, ok)
	repo.AssertNotCalled(t, "ListByCity")
}

func TestAverageRent_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRentRepository)
	repo.On("ListByCity", ctx, "Toronto").Return(nil, errors.New("connection refused"))

	service := NewRentLookupService(repo)
	_, ok, err := service.AverageRent(ctx, "Toronto", 2)

	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrRentDataUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCities_SortedAndUnique(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRentRepository)
	repo.On("Cities", ctx).Return([]string{"Vancouver", "Calgary", "Toronto", "Calgary"}, nil)

	service := NewRentLookupService(repo)
	cities, err := service.Cities(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"Calgary", "Toronto", "Vancouver"}, cities)
}

func TestCities_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRentRepository)
	repo.On("Cities", ctx).Return(nil, errors.New("disk error"))

	service := NewRentLookupService(repo)
	_, err := service.Cities(ctx)

	assert.ErrorIs(t, err, domain.ErrRentDataUnavailable)
}
