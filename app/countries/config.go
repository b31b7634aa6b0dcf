package countries

import "time"

const (
	defaultCountriesAPIURL = "https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies"
	defaultRatesAPIURL     = "https://open.er-api.com/v6/latest/USD"
)

// Config holds the tunables for the refresh pipeline.
type Config struct {
	CountriesAPIURL string        `env:"COUNTRIES_API_URL" env-default:"https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies"`
	RatesAPIURL     string        `env:"RATES_API_URL" env-default:"https://open.er-api.com/v6/latest/USD"`
	FetchTimeout    time.Duration `env:"COUNTRIES_FETCH_TIMEOUT" env-default:"10s"`

	// SummaryTopN is how many records the summary artifact ranks by
	// estimated GDP.
	SummaryTopN int `env:"COUNTRIES_SUMMARY_TOP_N" env-default:"5"`
}

// DefaultConfig returns the production defaults; tests override fields as
// needed.
func DefaultConfig() *Config {
	return &Config{
		CountriesAPIURL: defaultCountriesAPIURL,
		RatesAPIURL:     defaultRatesAPIURL,
		FetchTimeout:    10 * time.Second,
		SummaryTopN:     5,
	}
}

func (c *Config) fetchTimeout() time.Duration {
	if c.FetchTimeout <= 0 {
		return 10 * time.Second
	}
	return c.FetchTimeout
}

func (c *Config) summaryTopN() int {
	if c.SummaryTopN <= 0 {
		return 5
	}
	return c.SummaryTopN
}
