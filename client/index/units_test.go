package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitDescription(t *testing.T) {
	assert.Equal(t, "EACH", UnitDescription("EA"))
	assert.Equal(t, "BOX", UnitDescription("BX"))
	assert.Equal(t, "HUNDRED", UnitDescription("HD"))

	assert.Equal(t, UnknownUnit, UnitDescription("ZZ"))
	assert.Equal(t, UnknownUnit, UnitDescription(""))
	assert.Equal(t, UnknownUnit, UnitDescription("ea"))
}

func TestUnitDescription_table(t *testing.T) {
	for code, name := range unitNames {
		assert.Equal(t, name, UnitDescription(code), code)
		assert.NotEqual(t, UnknownUnit, name, code)
	}
}
