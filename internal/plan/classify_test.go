package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merge-generator/internal/schema"
)

func TestClassify_Excluded(t *testing.T) {
	methods := schema.Methods("getName", "setName")

	cases := map[string]schema.Field{
		"skip":    {Name: "name", Type: "string", Skip: true},
		"final":   {Name: "name", Type: "string", Final: true},
		"static":  {Name: "name", Type: "string", Static: true},
		"private": {Name: "secret", Type: "string", Visibility: schema.VisibilityPrivate},
		"protect": {Name: "secret", Type: "string", Visibility: schema.VisibilityProtected},
	}

	for name, f := range cases {
		_, ok := Classify(f, methods)
		assert.False(t, ok, name)
	}
}

func TestClassify_SkipBeatsAccessors(t *testing.T) {
	_, ok := Classify(schema.Field{Name: "mName", Type: "string", Skip: true}, schema.Methods("getName", "setName"))
	assert.False(t, ok)
}

func TestClassify_AccessorPairBeatsDirectField(t *testing.T) {
	rule, ok := Classify(schema.Field{Name: "name", Type: "string"}, schema.Methods("getName", "setName"))
	require.True(t, ok)
	assert.Equal(t, StrategyAccessorPair, rule.Strategy)
	require.NotNil(t, rule.Accessors)
	assert.Equal(t, "setName", rule.Accessors.Setter.Name)
	assert.Equal(t, "accessor pair getName/setName", rule.Explanation)
}

func TestClassify_PrivateWithAccessors(t *testing.T) {
	rule, ok := Classify(schema.Field{
		Name: "mName", Type: "string", Visibility: schema.VisibilityPrivate,
	}, schema.Methods("getName", "setName"))
	require.True(t, ok)
	assert.Equal(t, StrategyAccessorPair, rule.Strategy)
}

func TestClassify_DirectField(t *testing.T) {
	rule, ok := Classify(schema.Field{Name: "Total", Type: "int", Visibility: schema.VisibilityPublic}, nil)
	require.True(t, ok)
	assert.Equal(t, StrategyDirectField, rule.Strategy)
	assert.Nil(t, rule.Accessors)
	assert.Equal(t, "direct field (public)", rule.Explanation)
}

func TestClassify_OmitNullGuard(t *testing.T) {
	rule, ok := Classify(schema.Field{Name: "avatar", Type: "*Image", OmitNull: true, Nullable: true}, nil)
	require.True(t, ok)
	assert.True(t, rule.OmitNull)
	assert.True(t, rule.Guarded())

	// omit-null on a value that cannot be nil keeps the marker but emits no guard.
	rule, ok = Classify(schema.Field{Name: "count", Type: "int", OmitNull: true}, nil)
	require.True(t, ok)
	assert.True(t, rule.OmitNull)
	assert.False(t, rule.Guarded())
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "excluded", StrategyExcluded.String())
	assert.Equal(t, "direct_field", StrategyDirectField.String())
	assert.Equal(t, "accessor_pair", StrategyAccessorPair.String())
	assert.Equal(t, "unknown", Strategy(42).String())
}
