package analyze

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/packages"

	"merge-generator/internal/plan"
	"merge-generator/internal/schema"
)

// ScanMode only needs syntax: markers must be found even while a package
// does not type-check, e.g. before its registry has been regenerated.
const ScanMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax

// MarkerScanner discovers mergers through their entity directive.
type MarkerScanner struct {
	// Dir is the directory packages are resolved from.
	Dir string
	// Patterns are the packages to scan.
	Patterns []string
}

// NewMarkerScanner creates a scanner for the given package patterns.
func NewMarkerScanner(dir string, patterns ...string) *MarkerScanner {
	return &MarkerScanner{Dir: dir, Patterns: patterns}
}

// Discover returns a registry entry for every merger type carrying the entity
// directive, in package path then source order. No patterns means no entries.
func (s *MarkerScanner) Discover(ctx context.Context) ([]plan.RegistryEntry, error) {
	if len(s.Patterns) == 0 {
		return nil, nil
	}

	pkgs, err := load(ctx, s.Dir, ScanMode, s.Patterns)
	if err != nil {
		return nil, err
	}

	var entries []plan.RegistryEntry

	for _, pkg := range pkgs {
		found, err := scanPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("scanning package %s: %w", pkg.PkgPath, err)
		}

		entries = append(entries, found...)
	}

	return entries, nil
}

func scanPackage(pkg *packages.Package) ([]plan.RegistryEntry, error) {
	var entries []plan.RegistryEntry

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)

				arg, marked := directive(typeDoc(gd, ts), EntityDirective)
				if !marked {
					continue
				}

				entity := schema.ParseTypeRef(arg)
				if entity.Package == "" || entity.Name == "" {
					return nil, fmt.Errorf("merger %s: malformed entity directive %q", ts.Name.Name, arg)
				}

				entries = append(entries, plan.RegistryEntry{
					Entity: entity,
					Merger: schema.TypeRef{Package: pkg.PkgPath, Name: ts.Name.Name},
				})
			}
		}
	}

	return entries, nil
}
