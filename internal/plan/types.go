package plan

import (
	"merge-generator/internal/common"
	"merge-generator/internal/diagnostic"
	"merge-generator/internal/schema"
)

// Plan is the output of planning one schema.
type Plan struct {
	// Units holds one merge unit per entity with the generate marker, in
	// schema order.
	Units []MergeUnit
	// Diagnostics contains validation problems; invalid entities have no unit.
	Diagnostics diagnostic.Diagnostics
}

// Strategy describes how a field is copied.
type Strategy int

const (
	// StrategyExcluded - the field is never touched.
	StrategyExcluded Strategy = iota
	// StrategyDirectField - old.f = new.f.
	StrategyDirectField
	// StrategyAccessorPair - old.setF(new.getF()).
	StrategyAccessorPair
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyExcluded:
		return "excluded"
	case StrategyDirectField:
		return "direct_field"
	case StrategyAccessorPair:
		return "accessor_pair"
	default:
		return common.UnknownStr
	}
}

// AccessorPair is a field's getter and setter.
type AccessorPair struct {
	Getter schema.Method
	Setter schema.Method
}

// MergeRule says how one field is merged.
type MergeRule struct {
	// Field is the field being merged.
	Field schema.Field
	// Strategy is StrategyDirectField or StrategyAccessorPair.
	Strategy Strategy
	// OmitNull skips the field when the newer value is nil.
	OmitNull bool
	// Accessors is set for StrategyAccessorPair.
	Accessors *AccessorPair
	// Explanation describes why this strategy was chosen.
	Explanation string
}

// Guarded reports whether the emitted statement is wrapped in a nil check.
// OmitNull has no effect on fields whose type cannot hold nil.
func (r MergeRule) Guarded() bool {
	return r.OmitNull && r.Field.Nullable
}

// ExcludedField records a field that got no rule.
type ExcludedField struct {
	Field  schema.Field
	Reason string
}

// MergeUnit is everything needed to synthesize one merger.
type MergeUnit struct {
	// Entity is the identity of the merged type.
	Entity schema.TypeRef
	// PackageName is the Go package name of the entity's package.
	PackageName string
	// Dir is where the merger is written.
	Dir string
	// MergerName is the generated merger type name.
	MergerName string
	// Rules in field declaration order.
	Rules []MergeRule
	// Excluded lists fields without a rule, in declaration order.
	Excluded []ExcludedField
	// RegistryEligible is true for top-level and static nested entities only.
	RegistryEligible bool
}

// Namespace is the import path the merger is generated into.
func (u *MergeUnit) Namespace() string {
	return u.Entity.Package
}

// Merger is the identity of the generated merger type.
func (u *MergeUnit) Merger() schema.TypeRef {
	return schema.TypeRef{Package: u.Entity.Package, Name: u.MergerName}
}

// RegistryEntry returns the unit's registry entry, if it may have one.
func (u *MergeUnit) RegistryEntry() (RegistryEntry, bool) {
	if !u.RegistryEligible {
		return RegistryEntry{}, false
	}

	return RegistryEntry{Entity: u.Entity, Merger: u.Merger()}, true
}

// RegistryEntry pairs an entity with its merger.
type RegistryEntry struct {
	Entity schema.TypeRef `yaml:"entity"`
	Merger schema.TypeRef `yaml:"merger"`
}

// RegistryEntries is an insertion-ordered set of registry entries.
//
// Identical entries are stored once. Two entries for the same entity with
// different mergers are both kept; the registry built from them resolves the
// conflict by letting the later one win.
type RegistryEntries struct {
	entries []RegistryEntry
	seen    map[RegistryEntry]struct{}
}

// Add appends e unless an identical entry is already present.
func (s *RegistryEntries) Add(e RegistryEntry) bool {
	if s.seen == nil {
		s.seen = make(map[RegistryEntry]struct{})
	}

	if _, ok := s.seen[e]; ok {
		return false
	}

	s.seen[e] = struct{}{}
	s.entries = append(s.entries, e)

	return true
}

// AddAll adds entries in order.
func (s *RegistryEntries) AddAll(entries ...RegistryEntry) {
	for _, e := range entries {
		s.Add(e)
	}
}

// Entries returns the entries in insertion order.
func (s *RegistryEntries) Entries() []RegistryEntry {
	out := make([]RegistryEntry, len(s.entries))
	copy(out, s.entries)

	return out
}

// Len returns the number of entries.
func (s *RegistryEntries) Len() int {
	return len(s.entries)
}
