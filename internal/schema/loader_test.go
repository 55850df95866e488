package schema

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullEntity(t *testing.T) {
	s, err := LoadFile(filepath.Join("testdata", "users.yaml"))
	require.NoError(t, err)
	require.Len(t, s.Entities, 1)

	e := s.Entities[0]
	assert.Equal(t, TypeRef{Package: "example.com/app/store", Name: "User"}, e.Type)
	assert.Equal(t, "store", e.PackageName)
	assert.Equal(t, "./store", e.Dir)
	assert.Equal(t, NestingTopLevel, e.Nesting)
	assert.True(t, e.Generate, "listing an entity marks it for generation")
	assert.Equal(t, Methods("getName", "setName"), e.Methods)

	require.Len(t, e.Fields, 5)
	assert.Equal(t, VisibilityPrivate, e.Fields[0].Visibility)
	assert.False(t, e.Fields[0].Boolean)
	assert.True(t, e.Fields[1].Boolean)
	assert.Equal(t, VisibilityPackage, e.Fields[1].Visibility)
	assert.True(t, e.Fields[2].Skip)
	assert.True(t, e.Fields[3].Final)
	assert.True(t, e.Fields[4].OmitNull)
	assert.True(t, e.Fields[4].Nullable)
}

func TestParse_ExplicitOverrides(t *testing.T) {
	s, err := LoadFile(filepath.Join("testdata", "orders.yaml"))
	require.NoError(t, err)
	require.Len(t, s.Entities, 2)

	assert.Equal(t, "1", s.Version)

	order := s.Entities[0]
	assert.Equal(t, NestingStatic, order.Nesting)
	assert.True(t, order.Fields[0].Nullable)
	assert.Equal(t, VisibilityPublic, order.Fields[0].Visibility)
	assert.Equal(t, "GetTotal", order.Methods[0].Name)

	draft := s.Entities[1]
	assert.Equal(t, NestingInner, draft.Nesting)
	assert.False(t, draft.Generate)
	assert.True(t, draft.Fields[0].Boolean)
}

func TestParse_InvalidEnums(t *testing.T) {
	_, err := Parse([]byte(`
entities:
  - type: a/b.C
    nesting: sideways
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")

	_, err = Parse([]byte(`
entities:
  - type: a/b.C
    fields:
      - name: x
        type: int
        visibility: secret
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret")
}

func TestParse_DefaultVisibilityAlias(t *testing.T) {
	s, err := Parse([]byte(`
entities:
  - type: a/b.C
    fields:
      - {name: x, type: int, visibility: default}
`))
	require.NoError(t, err)
	assert.Equal(t, VisibilityPackage, s.Entities[0].Fields[0].Visibility)
}

func TestLoadFiles_KeepsOrder(t *testing.T) {
	s, err := LoadFiles(context.Background(),
		filepath.Join("testdata", "orders.yaml"),
		filepath.Join("testdata", "users.yaml"))
	require.NoError(t, err)
	require.Len(t, s.Entities, 3)

	assert.Equal(t, "Order", s.Entities[0].Type.Name)
	assert.Equal(t, "draft", s.Entities[1].Type.Name)
	assert.Equal(t, "User", s.Entities[2].Type.Name)
}

func TestLoadFiles_MissingFile(t *testing.T) {
	_, err := LoadFiles(context.Background(), filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestMarshal_RoundTripsMarkers(t *testing.T) {
	s, err := LoadFile(filepath.Join("testdata", "users.yaml"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(s, path))

	again, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestTypeExpr(t *testing.T) {
	for _, expr := range []string{"*User", "[]string", "map[string]int", "chan int", "func()", "interface{}", "any", "error"} {
		assert.True(t, IsNullableTypeExpr(expr), expr)
	}

	for _, expr := range []string{"string", "int", "bool", "[4]byte", "time.Time", "struct{}"} {
		assert.False(t, IsNullableTypeExpr(expr), expr)
	}

	assert.True(t, IsBooleanTypeExpr("bool"))
	assert.False(t, IsBooleanTypeExpr("*bool"))
}
