package plan

import (
	"regexp"

	"merge-generator/internal/common"
	"merge-generator/internal/schema"
)

// Accessor naming patterns.
var (
	// mName -> getName / setName
	memberFieldPattern = regexp.MustCompile(`^m([A-Z]\w*)$`)
	// isActive, mIsActive -> isActive / setActive
	booleanFieldPattern = regexp.MustCompile(`^(?:mIs|is)(\w+)$`)
)

const (
	getterPrefix     = "get"
	boolGetterPrefix = "is"
	setterPrefix     = "set"
)

// AccessorNames returns the getter and setter names a field is expected to
// have. Boolean fields only try the is-prefix pattern; other fields only try
// the m-prefix pattern. Without a match the capitalized field name is used.
func AccessorNames(fieldName string, isBool bool) (getter, setter string) {
	prefix := getterPrefix
	pattern := memberFieldPattern

	if isBool {
		prefix = boolGetterPrefix
		pattern = booleanFieldPattern
	}

	stem := common.Capitalize(fieldName)
	if m := pattern.FindStringSubmatch(fieldName); m != nil {
		stem = m[1]
	}

	return prefix + stem, setterPrefix + stem
}

// ResolveAccessors looks up a field's getter and setter in methods.
//
// The inventory is scanned once in order and the first method carrying each
// name wins, so with duplicate names the result depends on inventory order.
// Both accessors must be present for a pair to be returned.
func ResolveAccessors(fieldName string, isBool bool, methods []schema.Method) (AccessorPair, bool) {
	getterName, setterName := AccessorNames(fieldName, isBool)

	var (
		pair                     AccessorPair
		getterFound, setterFound bool
	)

	for _, m := range methods {
		if getterFound && setterFound {
			break
		}

		switch {
		case !getterFound && m.Name == getterName:
			pair.Getter = m
			getterFound = true
		case !setterFound && m.Name == setterName:
			pair.Setter = m
			setterFound = true
		}
	}

	if !getterFound || !setterFound {
		return AccessorPair{}, false
	}

	return pair, true
}
