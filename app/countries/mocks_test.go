package countries

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/joefazee/atlas/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) UpsertBatch(ctx context.Context, records []models.Country) error {
	return m.Called(ctx, records).Error(0)
}

func (m *MockRepository) List(ctx context.Context, filter CountryFilter) ([]models.Country, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Country), args.Error(1)
}

func (m *MockRepository) GetByName(ctx context.Context, name string) (*models.Country, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

func (m *MockRepository) DeleteByName(ctx context.Context, name string) (*models.Country, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) LastRefreshedAt(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockRepository) TopByGDP(ctx context.Context, limit int) ([]models.Country, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Country), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) FetchCountries(ctx context.Context) ([]RawCountry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RawCountry), args.Error(1)
}

func (m *MockGateway) FetchRates(ctx context.Context) (map[string]float64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(snapshot SummarySnapshot) ([]byte, error) {
	args := m.Called(snapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) Refresh(ctx context.Context) (*RefreshResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RefreshResponse), args.Error(1)
}

func (m *MockService) ListCountries(ctx context.Context, req *ListCountriesRequest) ([]CountryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CountryResponse), args.Error(1)
}

func (m *MockService) GetCountryByName(ctx context.Context, name string) (*CountryResponse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CountryResponse), args.Error(1)
}

func (m *MockService) DeleteCountryByName(ctx context.Context, name string) (*CountryResponse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CountryResponse), args.Error(1)
}

func (m *MockService) Status(ctx context.Context) (*StatusResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StatusResponse), args.Error(1)
}

func (m *MockService) SummaryImage(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// passthroughStripper leaves text untouched; sanitization behavior is
// covered by the bluemonday policy itself.
type passthroughStripper struct{}

func (passthroughStripper) StripHTML(s string) string { return s }
