package merge

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct{ Name string }

type accountMerger struct{ tag string }

func (accountMerger) Merge(oldV, newV *account) error {
	if oldV == nil {
		return InvalidArgument("oldAccount")
	}

	if newV == nil {
		return InvalidArgument("newAccount")
	}

	oldV.Name = newV.Name

	return nil
}

type invoice struct{ Total int }

type invoiceMerger struct{}

func (invoiceMerger) Merge(oldV, newV *invoice) error {
	oldV.Total = newV.Total
	return nil
}

type unknown struct{}

func TestRegistry_LookupRegisteredType(t *testing.T) {
	a := accountMerger{tag: "a"}
	b := invoiceMerger{}
	r := NewRegistry(Bind[account](a), Bind[invoice](b))

	got, err := r.Lookup(reflect.TypeFor[account]())
	require.NoError(t, err)
	assert.Equal(t, a, got)

	got, err = r.Lookup(reflect.TypeFor[invoice]())
	require.NoError(t, err)
	assert.Equal(t, b, got)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_LookupMissingTypeNamesIt(t *testing.T) {
	r := NewRegistry(Bind[account](accountMerger{}), Bind[invoice](invoiceMerger{}))

	_, err := r.Lookup(reflect.TypeFor[unknown]())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotRegistered))
	assert.Contains(t, err.Error(), "merge.unknown")
}

func TestRegistry_ExactTypeOnly(t *testing.T) {
	r := NewRegistry(Bind[account](accountMerger{}))

	_, err := r.Lookup(reflect.TypeFor[*account]())
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestRegistry_LastDuplicateWins(t *testing.T) {
	first := accountMerger{tag: "first"}
	second := accountMerger{tag: "second"}
	r := NewRegistry(Bind[account](first), Bind[invoice](invoiceMerger{}), Bind[account](second))

	got, err := r.Lookup(reflect.TypeFor[account]())
	require.NoError(t, err)
	assert.Equal(t, second, got)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []reflect.Type{reflect.TypeFor[account](), reflect.TypeFor[invoice]()}, r.Types())
}

func TestRegistry_NilRegistry(t *testing.T) {
	var r *Registry

	_, err := r.Lookup(reflect.TypeFor[account]())
	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.Zero(t, r.Len())
	assert.Nil(t, r.Types())
}

func TestFor_And_Apply(t *testing.T) {
	r := NewRegistry(Bind[account](accountMerger{}))

	m, err := For[account](r)
	require.NoError(t, err)
	require.NotNil(t, m)

	oldV := &account{Name: "Ann"}
	require.NoError(t, Apply(r, oldV, &account{Name: "Bob"}))
	assert.Equal(t, "Bob", oldV.Name)

	err = Apply(r, &invoice{}, &invoice{Total: 3})
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestFor_MismatchedMerger(t *testing.T) {
	r := NewRegistry(Entry{Type: reflect.TypeFor[account](), Merger: invoiceMerger{}})

	_, err := For[account](r)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotRegistered)
}

func TestInvalidArgument(t *testing.T) {
	err := Apply[account](NewRegistry(Bind[account](accountMerger{})), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "oldAccount", argErr.Name)
	assert.Equal(t, "oldAccount must not be nil", err.Error())
}
