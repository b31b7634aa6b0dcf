package countries

import (
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/atlas/models"
)

// SortGDPDesc is the only sort order the list endpoint accepts.
const SortGDPDesc = "gdp_desc"

// ListCountriesRequest carries the optional list filters.
type ListCountriesRequest struct {
	Region       string `form:"region"`
	CurrencyCode string `form:"currency"`
	Sort         string `form:"sort" binding:"omitempty,oneof=gdp_desc"`
}

// CountryResponse represents the response for a persisted country record
type CountryResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Capital         *string   `json:"capital"`
	Region          *string   `json:"region"`
	Population      int64     `json:"population"`
	CurrencyCode    *string   `json:"currency_code"`
	ExchangeRate    *float64  `json:"exchange_rate"`
	EstimatedGDP    *float64  `json:"estimated_gdp"`
	FlagURL         *string   `json:"flag_url"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

// RefreshResponse summarizes one successful refresh.
type RefreshResponse struct {
	Message         string    `json:"message"`
	TotalCountries  int64     `json:"total_countries"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

// StatusResponse reports store totals. LastRefreshedAt is null until the
// first successful refresh.
type StatusResponse struct {
	TotalCountries  int64      `json:"total_countries"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at"`
}

// ToCountryResponse converts a models.Country to CountryResponse
func ToCountryResponse(country *models.Country) *CountryResponse {
	return &CountryResponse{
		ID:              country.ID,
		Name:            country.Name,
		Capital:         country.Capital,
		Region:          country.Region,
		Population:      country.Population,
		CurrencyCode:    country.CurrencyCode,
		ExchangeRate:    country.ExchangeRate,
		EstimatedGDP:    country.EstimatedGDP,
		FlagURL:         country.FlagURL,
		LastRefreshedAt: country.LastRefreshedAt,
	}
}

// ToCountryResponseList converts a slice of models.Country to CountryResponse
func ToCountryResponseList(countries []models.Country) []CountryResponse {
	responses := make([]CountryResponse, len(countries))
	for i := range countries {
		responses[i] = *ToCountryResponse(&countries[i])
	}
	return responses
}

// Filter translates the request into a repository filter.
func (r *ListCountriesRequest) Filter() CountryFilter {
	return CountryFilter{
		Region:       r.Region,
		CurrencyCode: r.CurrencyCode,
		SortGDPDesc:  r.Sort == SortGDPDesc,
	}
}
