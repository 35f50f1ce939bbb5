package rusttype_test

import (
	"os"
	"testing"

	"github.com/brimdata/rusttype"
	"github.com/brimdata/rusttype/rtson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type mergeCase struct {
	Name string    `yaml:"name"`
	A    yaml.Node `yaml:"a"`
	B    yaml.Node `yaml:"b"`
	Want yaml.Node `yaml:"want"`
}

func TestMergeCases(t *testing.T) {
	b, err := os.ReadFile("testdata/merge.yaml")
	require.NoError(t, err)
	var cases []mergeCase
	require.NoError(t, yaml.Unmarshal(b, &cases))
	require.NotEmpty(t, cases)
	for _, c := range cases {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			a := unmarshalNode(t, &c.A)
			b := unmarshalNode(t, &c.B)
			merged, ok := rusttype.Merge(a, b)
			if c.Want.IsZero() {
				assert.False(t, ok)
				assert.Nil(t, merged)
				_, ok = rusttype.Merge(b, a)
				assert.False(t, ok, "reversed")
				return
			}
			require.True(t, ok)
			want := unmarshalNode(t, &c.Want)
			assert.True(t, rusttype.Equal(want, merged), "want %s, got %s", want, merged)
			assert.Equal(t, want.String(), merged.String())
			assertValues(t, want, merged)
		})
	}
}

func unmarshalNode(t *testing.T, n *yaml.Node) *rusttype.Type {
	b, err := yaml.Marshal(n)
	require.NoError(t, err)
	typ, err := rtson.Unmarshal(b)
	require.NoError(t, err)
	return typ
}

// assertValues compares values wherever want lists them.
func assertValues(t *testing.T, want, got *rusttype.Type) {
	if len(want.Values) > 0 {
		assert.Equal(t, want.Values, got.Values, want.String())
	}
	switch w := want.Shape.(type) {
	case *rusttype.Array:
		assertValues(t, w.Item, got.Shape.(*rusttype.Array).Item)
	case *rusttype.Enum:
		g := got.Shape.(*rusttype.Enum)
		for k, c := range w.Cases {
			assertValues(t, c, g.Cases[k])
		}
	case *rusttype.Struct:
		g := got.Shape.(*rusttype.Struct)
		for k, f := range w.Fields {
			assertValues(t, f.Type, g.Fields[k].Type)
		}
	}
}
