package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merge-generator/internal/schema"
)

func TestAccessorNames(t *testing.T) {
	cases := []struct {
		field          string
		isBool         bool
		getter, setter string
	}{
		{"mName", false, "getName", "setName"},
		{"name", false, "getName", "setName"},
		{"mx", false, "getMx", "setMx"},
		{"m", false, "getM", "setM"},
		{"isActive", true, "isActive", "setActive"},
		{"mIsActive", true, "isActive", "setActive"},
		{"enabled", true, "isEnabled", "setEnabled"},
		// Boolean fields never try the m-prefix pattern.
		{"mEnabled", true, "isMEnabled", "setMEnabled"},
		// Non-boolean fields never try the is-prefix pattern.
		{"isbn", false, "getIsbn", "setIsbn"},
		{"Age", false, "getAge", "setAge"},
	}

	for _, tc := range cases {
		getter, setter := AccessorNames(tc.field, tc.isBool)
		assert.Equal(t, tc.getter, getter, tc.field)
		assert.Equal(t, tc.setter, setter, tc.field)
	}
}

func TestResolveAccessors_Found(t *testing.T) {
	pair, ok := ResolveAccessors("mName", false, schema.Methods("toString", "setName", "getName"))
	require.True(t, ok)
	assert.Equal(t, "getName", pair.Getter.Name)
	assert.Equal(t, "setName", pair.Setter.Name)
}

func TestResolveAccessors_GetterOnly(t *testing.T) {
	_, ok := ResolveAccessors("mName", false, schema.Methods("getName"))
	assert.False(t, ok)
}

func TestResolveAccessors_Boolean(t *testing.T) {
	pair, ok := ResolveAccessors("isActive", true, schema.Methods("isActive", "setActive"))
	require.True(t, ok)
	assert.Equal(t, "isActive", pair.Getter.Name)

	_, ok = ResolveAccessors("isActive", true, schema.Methods("getActive", "setActive"))
	assert.False(t, ok)
}

func TestResolveAccessors_FirstMatchWins(t *testing.T) {
	methods := []schema.Method{{Name: "getName"}, {Name: "setName"}, {Name: "getName"}}
	pair, ok := ResolveAccessors("name", false, methods)
	require.True(t, ok)
	assert.Equal(t, methods[0], pair.Getter)
}

func TestResolveAccessors_Empty(t *testing.T) {
	_, ok := ResolveAccessors("name", false, nil)
	assert.False(t, ok)
}
