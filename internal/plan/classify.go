package plan

import (
	"fmt"
	"slices"
	"strings"

	"merge-generator/internal/match"
	"merge-generator/internal/schema"
)

// Exclusion reasons.
const (
	reasonSkip         = "skip marker"
	reasonFinal        = "final field"
	reasonStatic       = "static field"
	reasonInaccessible = "no accessor pair and not directly assignable"
)

// maxAccessorTypo is the largest edit distance reported as a likely typo.
const maxAccessorTypo = 2

// Classify decides how field is merged given the entity's methods.
// It returns false when the field is excluded.
func Classify(field schema.Field, methods []schema.Method) (MergeRule, bool) {
	rule, _, ok := classify(field, methods)
	return rule, ok
}

// classify is Classify that also reports why a field was excluded.
func classify(field schema.Field, methods []schema.Method) (MergeRule, string, bool) {
	switch {
	case field.Skip:
		return MergeRule{}, reasonSkip, false
	case field.Final:
		return MergeRule{}, reasonFinal, false
	case field.Static:
		return MergeRule{}, reasonStatic, false
	}

	rule := MergeRule{
		Field:    field,
		OmitNull: field.OmitNull,
	}

	if pair, ok := ResolveAccessors(field.Name, field.Boolean, methods); ok {
		rule.Strategy = StrategyAccessorPair
		rule.Accessors = &pair
		rule.Explanation = fmt.Sprintf("accessor pair %s/%s", pair.Getter.Name, pair.Setter.Name)

		return rule, "", true
	}

	// Private and protected fields without accessors are left alone on purpose.
	if !field.Visibility.Accessible() {
		return MergeRule{}, reasonInaccessible + ": " + missingAccessors(field, methods), false
	}

	rule.Strategy = StrategyDirectField
	rule.Explanation = fmt.Sprintf("direct field (%s)", field.Visibility)

	return rule, "", true
}

// missingAccessors names the accessors a field lacks, with the closest
// declared method when one looks like a typo.
func missingAccessors(field schema.Field, methods []schema.Method) string {
	getter, setter := AccessorNames(field.Name, field.Boolean)

	var names, others []string

	for _, m := range methods {
		names = append(names, m.Name)
		if m.Name != getter && m.Name != setter {
			others = append(others, m.Name)
		}
	}

	var missing []string

	for _, want := range []string{getter, setter} {
		if slices.Contains(names, want) {
			continue
		}

		msg := "no " + want
		if near, ok := match.Nearest(want, others, maxAccessorTypo); ok {
			msg += " (closest: " + near + ")"
		}

		missing = append(missing, msg)
	}

	return strings.Join(missing, ", ")
}
