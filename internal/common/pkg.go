package common

import (
	"path"
	"strings"
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SplitQualified splits "import/path.Name" at its last dot.
// A string without a dot yields an empty package path.
func SplitQualified(qualified string) (pkgPath, name string) {
	i := strings.LastIndex(qualified, ".")
	if i < 0 {
		return "", qualified
	}

	// A dot inside the last path element ("example.com") is part of the path.
	if strings.LastIndex(qualified, "/") > i {
		return "", qualified
	}

	return qualified[:i], qualified[i+1:]
}
