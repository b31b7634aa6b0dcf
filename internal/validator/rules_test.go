package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank("value"))
	assert.True(t, NotBlank(" value "))
	assert.False(t, NotBlank(""))
	assert.False(t, NotBlank("   "))
	assert.False(t, NotBlank("\t\n"))
}

func TestIn(t *testing.T) {
	assert.True(t, In("gdp_desc", "gdp_desc"))
	assert.False(t, In("gdp_asc", "gdp_desc"))
	assert.True(t, In(2, 1, 2, 3))
	assert.False(t, In(4, 1, 2, 3))
	assert.False(t, In("anything"))
}
