package countries

import (
	"math/rand/v2"
	"time"

	"github.com/joefazee/atlas/models"
)

const (
	multiplierMin = 1000
	multiplierMax = 2000
)

// MultiplierSource draws the per-entity scaling factor for the GDP
// estimate. The production source is uniform over [1000, 2000], drawn once
// per entity per refresh, which makes the estimate deliberately
// non-reproducible between refreshes. Tests inject a fixed source.
type MultiplierSource interface {
	Draw() int64
}

type uniformMultiplier struct{}

func (uniformMultiplier) Draw() int64 {
	return int64(rand.IntN(multiplierMax-multiplierMin+1) + multiplierMin)
}

// NewMultiplierSource returns the production uniform source.
func NewMultiplierSource() MultiplierSource {
	return uniformMultiplier{}
}

// FixedMultiplier always draws the same value; test helper.
type FixedMultiplier int64

func (f FixedMultiplier) Draw() int64 {
	return int64(f)
}

// deriveCountry turns a validated raw entity into a persistable record.
//
// Currency handling:
//   - no currencies at all: code, rate and estimate are all null except
//     the estimate, which is defined as 0.0
//   - first code present and found in the rate table: estimate is
//     population * draw / rate
//   - first code missing from the table (or the rate is zero): code is
//     kept, rate and estimate stay null
//
// Only the first listed currency counts; multi-currency countries are not
// modeled.
func deriveCountry(raw RawCountry, rates map[string]float64, src MultiplierSource, refreshedAt time.Time) models.Country {
	record := models.Country{
		Name:       raw.Name,
		Capital:    optionalString(raw.Capital),
		Region:     optionalString(raw.Region),
		Population: *raw.Population,
		FlagURL:    optionalString(raw.Flag),
	}
	record.SetLastRefreshedAt(refreshedAt)

	if len(raw.Currencies) == 0 {
		zero := 0.0
		record.EstimatedGDP = &zero
		return record
	}

	code := raw.Currencies[0].Code
	record.CurrencyCode = optionalString(code)
	if record.CurrencyCode == nil {
		return record
	}

	rate, ok := rates[code]
	if !ok || rate == 0 {
		// A zero rate is treated as missing, never as a division fault.
		return record
	}

	estimate := float64(record.Population) * float64(src.Draw()) / rate
	record.ExchangeRate = &rate
	record.EstimatedGDP = &estimate

	return record
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
