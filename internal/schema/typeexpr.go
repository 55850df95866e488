package schema

import "strings"

// IsBooleanTypeExpr reports whether a Go type expression is the bool type.
func IsBooleanTypeExpr(expr string) bool {
	return strings.TrimSpace(expr) == "bool"
}

// IsNullableTypeExpr reports whether a Go type expression denotes a type that
// can hold nil: pointers, slices, maps, channels, functions and interfaces.
// Named types are not resolved; their nullability must be stated explicitly.
func IsNullableTypeExpr(expr string) bool {
	expr = strings.TrimSpace(expr)

	switch expr {
	case "any", "error":
		return true
	}

	for _, prefix := range []string{"*", "[]", "map[", "chan ", "chan<-", "<-chan", "func(", "interface{", "interface {"} {
		if strings.HasPrefix(expr, prefix) {
			return true
		}
	}

	return false
}
