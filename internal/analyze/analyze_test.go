package analyze

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merge-generator/internal/plan"
	"merge-generator/internal/schema"
)

func TestAnalyzer_LoadPackages(t *testing.T) {
	s, err := NewAnalyzer().LoadPackages(context.Background(), "merge-generator/store", "merge-generator/warehouse")
	require.NoError(t, err)

	var names []string
	for _, e := range s.Entities {
		names = append(names, e.Type.String())
	}

	assert.Equal(t, []string{
		"merge-generator/store.cartLine",
		"merge-generator/store.Customer",
		"merge-generator/store.Order",
		"merge-generator/store.User",
		"merge-generator/warehouse.Address",
		"merge-generator/warehouse.Product",
	}, names)
}

func TestAnalyzer_UserEntity(t *testing.T) {
	s, err := NewAnalyzer().LoadPackages(context.Background(), "merge-generator/store")
	require.NoError(t, err)

	user := findEntity(t, s, "User")
	assert.Equal(t, "store", user.PackageName)
	assert.Equal(t, "store", filepath.Base(user.Dir))
	assert.True(t, user.Generate)
	assert.Equal(t, schema.NestingTopLevel, user.Nesting)

	require.Len(t, user.Fields, 4, spew.Sdump(user.Fields))
	assert.Equal(t, schema.Field{Name: "mName", Type: "string"}, user.Fields[0])
	assert.Equal(t, schema.Field{Name: "isActive", Type: "bool", Boolean: true}, user.Fields[1])
	assert.Equal(t, schema.Field{Name: "age", Type: "int", Skip: true}, user.Fields[2])
	assert.Equal(t, schema.Field{Name: "id", Type: "string", Final: true}, user.Fields[3])

	var methods []string
	for _, m := range user.Methods {
		methods = append(methods, m.Name)
	}

	assert.Equal(t, []string{"getName", "setName", "Name", "Active", "Age", "ID"}, methods)

	unit := plan.NewPlanner(plan.DefaultPlannerConfig()).PlanEntity(user)
	require.Len(t, unit.Rules, 2)
	assert.Equal(t, plan.StrategyAccessorPair, unit.Rules[0].Strategy)
	assert.Equal(t, plan.StrategyDirectField, unit.Rules[1].Strategy)
}

func TestAnalyzer_FieldKinds(t *testing.T) {
	s, err := NewAnalyzer().LoadPackages(context.Background(), "merge-generator/store", "merge-generator/warehouse")
	require.NoError(t, err)

	customer := findEntity(t, s, "Customer")
	addr := customer.Fields[3]
	assert.Equal(t, "Address", addr.Name)
	assert.Equal(t, "*string", addr.Type)
	assert.True(t, addr.Nullable)
	assert.True(t, addr.OmitNull)
	assert.Equal(t, schema.VisibilityPublic, addr.Visibility)
	assert.True(t, customer.Fields[4].Boolean)

	order := findEntity(t, s, "Order")
	assert.Equal(t, "OrderStatus", order.Fields[2].Type)
	assert.Equal(t, "[]OrderItem", order.Fields[4].Type)
	assert.True(t, order.Fields[4].Nullable)
	assert.Equal(t, "time.Time", order.Fields[5].Type)
	assert.False(t, order.Fields[5].Nullable)

	product := findEntity(t, s, "Product")
	assert.Equal(t, "map[string]string", product.Fields[8].Type)
	assert.True(t, product.Fields[8].Nullable)
}

func TestMarkerScanner_Discover(t *testing.T) {
	entries, err := NewMarkerScanner("", "merge-generator/store", "merge-generator/warehouse").
		Discover(context.Background())
	require.NoError(t, err)

	ref := func(pkg, name string) schema.TypeRef {
		return schema.TypeRef{Package: "merge-generator/" + pkg, Name: name}
	}

	assert.Equal(t, []plan.RegistryEntry{
		{Entity: ref("store", "cartLine"), Merger: ref("store", "cartLineMerger")},
		{Entity: ref("store", "Customer"), Merger: ref("store", "CustomerMerger")},
		{Entity: ref("store", "Order"), Merger: ref("store", "OrderMerger")},
		{Entity: ref("store", "User"), Merger: ref("store", "UserMerger")},
		{Entity: ref("warehouse", "Address"), Merger: ref("warehouse", "AddressMerger")},
		{Entity: ref("warehouse", "Product"), Merger: ref("warehouse", "ProductMerger")},
	}, entries)
}

func TestMarkerScanner_NoPatterns(t *testing.T) {
	entries, err := NewMarkerScanner("").Discover(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseTag(t *testing.T) {
	opts, err := ParseTag(reflect.StructTag(`json:"x" merge:"skip, omitnull,final"`))
	require.NoError(t, err)
	assert.Equal(t, TagOptions{Skip: true, OmitNull: true, Final: true}, opts)

	opts, err = ParseTag(reflect.StructTag(`json:"x"`))
	require.NoError(t, err)
	assert.Equal(t, TagOptions{}, opts)

	_, err = ParseTag(reflect.StructTag(`merge:"deep"`))
	assert.Error(t, err)
}

func findEntity(t *testing.T, s *schema.Schema, name string) *schema.Entity {
	t.Helper()

	for i := range s.Entities {
		if s.Entities[i].Type.Name == name {
			return &s.Entities[i]
		}
	}

	require.Failf(t, "entity not found", "%s in %s", name, spew.Sdump(s.Entities))

	return nil
}
