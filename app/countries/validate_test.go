package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBatch_CleanBatch(t *testing.T) {
	raw := []RawCountry{
		{Name: "Nigeria", Population: int64Ptr(200_000_000)},
		{Name: "Ghana", Population: int64Ptr(31_000_000)},
	}

	assert.Nil(t, validateBatch(raw))
}

func TestValidateBatch_EmptyBatch(t *testing.T) {
	assert.Nil(t, validateBatch(nil))
}

func TestValidateBatch_MissingPopulation(t *testing.T) {
	raw := []RawCountry{
		{Name: "Nigeria", Population: int64Ptr(200_000_000)},
		{Name: "Ghana"},
	}

	verr := validateBatch(raw)
	assert.NotNil(t, verr)
	assert.Len(t, verr.Fields, 1)
	assert.Equal(t, map[string]string{"population": "is required"}, verr.Fields["Ghana"])
}

func TestValidateBatch_MissingNameUsesIndexKey(t *testing.T) {
	raw := []RawCountry{
		{Name: "Nigeria", Population: int64Ptr(200_000_000)},
		{Name: "", Population: int64Ptr(500)},
		{Name: "   ", Population: nil},
	}

	verr := validateBatch(raw)
	assert.NotNil(t, verr)
	assert.Len(t, verr.Fields, 2)
	assert.Equal(t, map[string]string{"name": "is required"}, verr.Fields["index_1"])
	assert.Equal(t, map[string]string{
		"name":       "is required",
		"population": "is required",
	}, verr.Fields["index_2"])
}

func TestValidateBatch_ZeroPopulationIsValid(t *testing.T) {
	raw := []RawCountry{
		{Name: "Vatican", Population: int64Ptr(0)},
	}

	assert.Nil(t, validateBatch(raw))
}

func TestValidationError_Error(t *testing.T) {
	verr := &ValidationError{Fields: map[string]map[string]string{
		"Ghana": {"population": "is required"},
	}}
	assert.Equal(t, "validation failed for 1 entities", verr.Error())
}
