package gen

import (
	"errors"
	"fmt"

	"github.com/dave/jennifer/jen"

	"merge-generator/internal/diagnostic"
	"merge-generator/internal/plan"
	"merge-generator/internal/schema"
)

// GenerateRegistry renders the registry file for entries, in order.
// Entries the registry package cannot name are left out with a warning.
// A file is produced even when no entry remains.
func (g *Generator) GenerateRegistry(entries []plan.RegistryEntry) (*GeneratedFile, *diagnostic.Diagnostics, error) {
	diags := &diagnostic.Diagnostics{}

	if g.config.RegistryPackage == "" {
		return nil, diags, errors.New("registry package is not configured")
	}

	var binds []jen.Code

	for _, e := range entries {
		if !g.reachable(e.Entity) || !g.reachable(e.Merger) {
			diags.AddWarning(diagnostic.CodeRegistryUnreachable,
				fmt.Sprintf("merger %s is not visible from %s", e.Merger, g.config.RegistryPackage),
				e.Entity.String(), "")

			continue
		}

		binds = append(binds, g.runtime("Bind").
			Types(jen.Qual(e.Entity.Package, e.Entity.Name)).
			Call(jen.Qual(e.Merger.Package, e.Merger.Name).Values()))
	}

	newRegistry := g.runtime("NewRegistry")
	if len(binds) == 0 {
		newRegistry = newRegistry.Call()
	} else {
		newRegistry = newRegistry.Custom(jen.Options{
			Open:      "(",
			Close:     ")",
			Separator: ",",
			Multi:     true,
		}, binds...)
	}

	f := g.newFile(g.config.RegistryPackage, g.config.RegistryPackageName)
	f.Commentf("%s returns the merger registry. It is built on first use and never changes.",
		g.config.RegistryFunc)
	f.Var().Id(g.config.RegistryFunc).Op("=").Qual("sync", "OnceValue").Call(
		jen.Func().Params().Op("*").Add(g.runtime("Registry")).Block(
			jen.Return(newRegistry),
		),
	)

	content, err := g.render(f, g.config.RegistryFile)
	if err != nil {
		return nil, diags, fmt.Errorf("generating registry: %w", err)
	}

	return &GeneratedFile{
		Package:  g.config.RegistryPackage,
		Dir:      g.config.RegistryDir,
		Filename: g.config.RegistryFile,
		Content:  content,
	}, diags, nil
}

// reachable reports whether the registry package can refer to t.
func (g *Generator) reachable(t schema.TypeRef) bool {
	return t.Exported() || t.Package == g.config.RegistryPackage
}
