package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/joefazee/atlas/models"
)

// RawCurrency is one entry of a country's currency list as the directory
// feed reports it. Only the code matters downstream.
type RawCurrency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol,omitempty"`
}

// RawCountry is one unvalidated entity from the directory feed. Population
// is a pointer because "absent" and "zero" mean different things to the
// validator.
type RawCountry struct {
	Name       string        `json:"name"`
	Capital    string        `json:"capital"`
	Region     string        `json:"region"`
	Population *int64        `json:"population"`
	Flag       string        `json:"flag"`
	Currencies []RawCurrency `json:"currencies"`
}

type ratesPayload struct {
	Rates map[string]float64 `json:"rates"`
}

// Gateway fetches the two external feeds the refresh pipeline depends on.
type Gateway interface {
	FetchCountries(ctx context.Context) ([]RawCountry, error)
	FetchRates(ctx context.Context) (map[string]float64, error)
}

// restGateway implements Gateway against the public REST feeds.
type restGateway struct {
	countriesURL string
	ratesURL     string
	client       *http.Client
}

// NewGateway creates a gateway with a bounded per-call timeout. There are
// no retries here; a failed refresh is reported and re-invoked by the
// operator.
func NewGateway(config *Config) Gateway {
	return &restGateway{
		countriesURL: config.CountriesAPIURL,
		ratesURL:     config.RatesAPIURL,
		client:       &http.Client{Timeout: config.fetchTimeout()},
	}
}

// FetchCountries returns the raw country directory.
func (g *restGateway) FetchCountries(ctx context.Context) ([]RawCountry, error) {
	var raw []RawCountry
	if err := g.getJSON(ctx, g.countriesURL, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrCountrySourceUnavailable, err)
	}
	return raw, nil
}

// FetchRates returns the currency-code to rate table. A missing or empty
// table is not an error at this layer; derivation treats absent codes as
// rate-unknown.
func (g *restGateway) FetchRates(ctx context.Context) (map[string]float64, error) {
	var payload ratesPayload
	if err := g.getJSON(ctx, g.ratesURL, &payload); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrRateSourceUnavailable, err)
	}
	return payload.Rates, nil
}

func (g *restGateway) getJSON(ctx context.Context, url string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("invalid JSON: %s", err)
	}

	return nil
}
