package rusttype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripValues(t *testing.T) {
	for _, typ := range sampleTypes() {
		stripped := StripValues(typ)
		assert.True(t, Equal(typ, stripped), typ.String())
		assert.Equal(t, typ.String(), stripped.String())
		assert.Zero(t, CountValues(stripped), typ.String())
	}
}

func TestCountValues(t *testing.T) {
	typ := NewStruct([]Field{
		field("a", NewArray(NewSimple("u8", "1", "2"), Variable, "[1,2]")),
		field("b", NewEnum([]*Type{NewSimple("i64", "3")})),
	}, "{}")
	assert.Equal(t, 5, CountValues(typ))
}
