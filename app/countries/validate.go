package countries

import (
	"fmt"

	"github.com/joefazee/atlas/internal/validator"
)

// ValidationError aborts a refresh before anything is persisted. Fields is
// keyed by entity name, or index_<i> when the name itself is missing; each
// value names the field(s) that failed.
type ValidationError struct {
	Fields map[string]map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d entities", len(e.Fields))
}

// validateBatch checks every entity and returns nil only when the whole
// batch is clean. One bad entity rejects the entire refresh: a partially
// refreshed dataset is worse than a stale one.
func validateBatch(raw []RawCountry) *ValidationError {
	errs := make(map[string]map[string]string)

	for i, country := range raw {
		fieldErrs := make(map[string]string)
		if !validator.NotBlank(country.Name) {
			fieldErrs["name"] = "is required"
		}
		if country.Population == nil {
			fieldErrs["population"] = "is required"
		}
		if len(fieldErrs) == 0 {
			continue
		}

		key := country.Name
		if !validator.NotBlank(key) {
			key = fmt.Sprintf("index_%d", i)
		}
		errs[key] = fieldErrs
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: errs}
}
