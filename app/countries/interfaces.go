package countries

import (
	"context"
	"time"

	"github.com/joefazee/atlas/models"
)

// Repository defines the interface for country data access
type Repository interface {
	// UpsertBatch persists the whole batch atomically: either every
	// record lands (insert or full-overwrite update, matched by
	// case-folded name) or the store is left untouched.
	UpsertBatch(ctx context.Context, records []models.Country) error
	List(ctx context.Context, filter CountryFilter) ([]models.Country, error)
	GetByName(ctx context.Context, name string) (*models.Country, error)
	DeleteByName(ctx context.Context, name string) (*models.Country, error)
	Count(ctx context.Context) (int64, error)
	LastRefreshedAt(ctx context.Context) (*time.Time, error)
	TopByGDP(ctx context.Context, limit int) ([]models.Country, error)
}

// Service defines the interface for the refresh pipeline and its read
// surface.
type Service interface {
	// Refresh runs one full pipeline pass: fetch both feeds, validate,
	// derive, persist, then regenerate the summary artifact.
	Refresh(ctx context.Context) (*RefreshResponse, error)
	ListCountries(ctx context.Context, req *ListCountriesRequest) ([]CountryResponse, error)
	GetCountryByName(ctx context.Context, name string) (*CountryResponse, error)
	DeleteCountryByName(ctx context.Context, name string) (*CountryResponse, error)
	Status(ctx context.Context) (*StatusResponse, error)
	SummaryImage(ctx context.Context) ([]byte, error)
}
