package projection

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/homedecide-backend/internal/domain"
)

// MockRentLookup is a mock implementation of RentLookup
type MockRentLookup struct {
	mock.Mock
}

func (m *MockRentLookup) AverageRent(ctx context.Context, city string, bedrooms int) (decimal.Decimal, bool, error) {
	args := m.Called(ctx, city, bedrooms)
	return args.Get(0).(decimal.Decimal), args.Bool(1), args.Error(2)
}

// MockCache is a mock implementation of domain.ProjectionCache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, bool) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// mapCache is an in-memory domain.ProjectionCache
type mapCache map[string]string

func (m mapCache) Get(ctx context.Context, key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	m[key] = value
	return nil
}

func sampleInput() domain.ProjectionInput {
	return domain.ProjectionInput{
		HomePrice:                   750000,
		DownPaymentPercent:          20,
		InterestRatePercent:         5.5,
		LoanTermYears:               25,
		PropertyTaxRatePercent:      0.7,
		AnnualMaintenanceCost:       5000,
		AppreciationRatePercent:     3,
		IncludeSellingCosts:         true,
		SellingCostPercent:          5,
		MonthlyRent:                 2000,
		RentIncreaseRatePercent:     2.5,
		InvestmentReturnRatePercent: 6,
		MonthlyIncome:               12000,
	}
}

func TestService_Project_CallerRent(t *testing.T) {
	lookup := new(MockRentLookup)
	svc := NewService(lookup, nil, 0, time.Minute)

	p, err := svc.Project(context.Background(), Request{Input: sampleInput(), City: "Toronto", Bedrooms: 2})
	require.NoError(t, err)

	assert.Equal(t, domain.RentSourceCaller, p.RentSource)
	assert.Equal(t, 2000.0, p.Input.MonthlyRent)
	assert.Empty(t, p.City)
	require.NotNil(t, p.Result)
	assert.Len(t, p.Result.Years, 25)
	lookup.AssertNotCalled(t, "AverageRent", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Project_LookupRent(t *testing.T) {
	ctx := context.Background()
	lookup := new(MockRentLookup)
	lookup.On("AverageRent", ctx, "Toronto", 2).Return(decimal.NewFromInt(2900), true, nil)
	svc := NewService(lookup, nil, 0, 0)

	input := sampleInput()
	input.MonthlyRent = 0

	p, err := svc.Project(ctx, Request{Input: input, City: "Toronto", Bedrooms: 2})
	require.NoError(t, err)

	assert.Equal(t, domain.RentSourceLookup, p.RentSource)
	assert.Equal(t, 2900.0, p.Input.MonthlyRent)
	assert.Equal(t, "Toronto", p.City)
	assert.Equal(t, 2, p.Bedrooms)
	lookup.AssertExpectations(t)
}

func TestService_Project_DefaultRent(t *testing.T) {
	ctx := context.Background()
	input := sampleInput()
	input.MonthlyRent = 0

	tests := []struct {
		name  string
		setup func(*MockRentLookup)
	}{
		{
			name: "unknown city",
			setup: func(m *MockRentLookup) {
				m.On("AverageRent", ctx, "Atlantis", 1).Return(decimal.Zero, false, nil)
			},
		},
		{
			name: "rent data unavailable",
			setup: func(m *MockRentLookup) {
				m.On("AverageRent", ctx, "Atlantis", 1).Return(decimal.Zero, false, domain.ErrRentDataUnavailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := new(MockRentLookup)
			tt.setup(lookup)
			svc := NewService(lookup, nil, 1750, 0)

			p, err := svc.Project(ctx, Request{Input: input, City: "Atlantis", Bedrooms: 1})
			require.NoError(t, err)
			assert.Equal(t, domain.RentSourceDefault, p.RentSource)
			assert.Equal(t, 1750.0, p.Input.MonthlyRent)
		})
	}
}

func TestService_Project_DefaultRentWithoutLookup(t *testing.T) {
	input := sampleInput()
	input.MonthlyRent = 0
	svc := NewService(nil, nil, 0, 0)

	p, err := svc.Project(context.Background(), Request{Input: input, City: "Ottawa", Bedrooms: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.RentSourceDefault, p.RentSource)
	assert.Equal(t, DefaultMonthlyRent, p.Input.MonthlyRent)
}

func TestService_Project_ZeroRentWithoutCity(t *testing.T) {
	input := sampleInput()
	input.MonthlyRent = 0
	svc := NewService(nil, nil, 0, 0)

	p, err := svc.Project(context.Background(), Request{Input: input})
	require.NoError(t, err)
	assert.Equal(t, domain.RentSourceCaller, p.RentSource)
	assert.Equal(t, 0.0, p.Result.TotalRentingCost)
}

func TestService_Project_InvalidInput(t *testing.T) {
	cache := new(MockCache)
	svc := NewService(nil, cache, 0, 0)

	input := sampleInput()
	input.LoanTermYears = 0

	_, err := svc.Project(context.Background(), Request{Input: input})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestService_Project_DeterministicID(t *testing.T) {
	svc := NewService(nil, nil, 0, 0)

	first, err := svc.Project(context.Background(), Request{Input: sampleInput()})
	require.NoError(t, err)
	second, err := svc.Project(context.Background(), Request{Input: sampleInput()})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other := sampleInput()
	other.HomePrice = 760000
	third, err := svc.Project(context.Background(), Request{Input: other})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestService_Project_CachesResult(t *testing.T) {
	ctx := context.Background()
	cache := new(MockCache)
	cache.On("Get", ctx, mock.AnythingOfType("string")).Return("", false)
	cache.On("Set", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), 5*time.Minute).Return(nil)
	svc := NewService(nil, cache, 0, 5*time.Minute)

	p, err := svc.Project(ctx, Request{Input: sampleInput()})
	require.NoError(t, err)

	cache.AssertCalled(t, "Set", ctx, p.ID.String(), mock.AnythingOfType("string"), 5*time.Minute)
}

func TestService_Project_CacheHit(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil, nil, 0, 0)
	fresh, err := svc.Project(ctx, Request{Input: sampleInput()})
	require.NoError(t, err)
	raw, err := json.Marshal(fresh)
	require.NoError(t, err)

	cache := new(MockCache)
	cache.On("Get", ctx, fresh.ID.String()).Return(string(raw), true)
	svc.Cache = cache

	cached, err := svc.Project(ctx, Request{Input: sampleInput()})
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, cached.ID)
	assert.Equal(t, fresh.Result.NetBuyingCost, cached.Result.NetBuyingCost)
	assert.Equal(t, fresh.Result.BreakEvenYear, cached.Result.BreakEvenYear)
	assert.Equal(t, fresh.Result.MortgageAffordability, cached.Result.MortgageAffordability)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Project_CacheFailuresAreNotFatal(t *testing.T) {
	ctx := context.Background()
	cache := new(MockCache)
	cache.On("Get", ctx, mock.AnythingOfType("string")).Return("{not json", true)
	cache.On("Set", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), time.Duration(0)).
		Return(errors.New("connection refused"))
	svc := NewService(nil, cache, 0, 0)

	p, err := svc.Project(ctx, Request{Input: sampleInput()})
	require.NoError(t, err)
	assert.NotNil(t, p.Result)
	cache.AssertExpectations(t)
}

func TestService_Schedule(t *testing.T) {
	svc := NewService(nil, nil, 0, 0)

	periods, err := svc.Schedule(context.Background(), 600000, 5.5, 25)
	require.NoError(t, err)
	assert.Len(t, periods, 300)
	assert.InDelta(t, 0, periods[len(periods)-1].Balance, 1e-6)

	_, err = svc.Schedule(context.Background(), 600000, 5.5, 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = svc.Schedule(context.Background(), 600000, 5.5, 51)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestService_Project_CacheSeparatesRentSources(t *testing.T) {
	ctx := context.Background()
	lookup := new(MockRentLookup)
	lookup.On("AverageRent", ctx, "Vancouver", 1).Return(decimal.NewFromInt(2400), true, nil)
	svc := NewService(lookup, mapCache{}, 0, time.Minute)

	looked := sampleInput()
	looked.MonthlyRent = 0
	first, err := svc.Project(ctx, Request{Input: looked, City: "Vancouver", Bedrooms: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.RentSourceLookup, first.RentSource)
	assert.Equal(t, "Vancouver", first.City)

	given := sampleInput()
	given.MonthlyRent = 2400
	second, err := svc.Project(ctx, Request{Input: given})
	require.NoError(t, err)
	assert.Equal(t, domain.RentSourceCaller, second.RentSource)
	assert.Empty(t, second.City)
	assert.Zero(t, second.Bedrooms)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Result.NetBuyingCost, second.Result.NetBuyingCost)

	again, err := svc.Project(ctx, Request{Input: looked, City: "Vancouver", Bedrooms: 1})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, domain.RentSourceLookup, again.RentSource)
}
