package merge

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotRegistered is matched by lookups for a type without a merger.
var ErrNotRegistered = errors.New("merge: merger not registered")

// Entry pairs a type with its merger.
type Entry struct {
	Type   reflect.Type
	Merger any
}

// Bind creates an Entry for m keyed by T.
func Bind[T any](m Merger[T]) Entry {
	return Entry{Type: reflect.TypeFor[T](), Merger: m}
}

// Registry maps a type to its merger.
//
// A Registry is filled once by NewRegistry and never changes afterwards, so
// it is safe for concurrent lookups without locking. Generated code publishes
// a single instance through sync.OnceValue.
type Registry struct {
	mergers map[reflect.Type]any
	order   []reflect.Type
}

// NewRegistry builds a registry from entries in order.
// When two entries share a type the later one replaces the earlier one.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{mergers: make(map[reflect.Type]any, len(entries))}

	for _, e := range entries {
		if e.Type == nil {
			continue
		}

		if _, ok := r.mergers[e.Type]; !ok {
			r.order = append(r.order, e.Type)
		}

		r.mergers[e.Type] = e.Merger
	}

	return r
}

// Lookup returns the merger registered for exactly t.
// Supertypes, interfaces and pointer types are not consulted.
func (r *Registry) Lookup(t reflect.Type) (any, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: <nil> type", ErrNotRegistered)
	}

	if r != nil {
		if m, ok := r.mergers[t]; ok {
			return m, nil
		}
	}

	return nil, fmt.Errorf("%w: no merger for %s", ErrNotRegistered, t)
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.mergers)
}

// Types returns the registered types in first-registration order.
func (r *Registry) Types() []reflect.Type {
	if r == nil {
		return nil
	}

	out := make([]reflect.Type, len(r.order))
	copy(out, r.order)

	return out
}

// For returns the merger registered for T.
func For[T any](r *Registry) (Merger[T], error) {
	t := reflect.TypeFor[T]()

	m, err := r.Lookup(t)
	if err != nil {
		return nil, err
	}

	typed, ok := m.(Merger[T])
	if !ok {
		return nil, fmt.Errorf("merger %T registered for %s does not merge %s", m, t, t)
	}

	return typed, nil
}

// Apply looks up the merger for T and merges newV into oldV.
func Apply[T any](r *Registry, oldV, newV *T) error {
	m, err := For[T](r)
	if err != nil {
		return err
	}

	return m.Merge(oldV, newV)
}
