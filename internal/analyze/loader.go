package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"sort"

	"golang.org/x/tools/go/packages"

	"merge-generator/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and builds a schema of their marked entities.
type Analyzer struct {
	// Dir is the directory packages are resolved from; empty means the
	// working directory.
	Dir string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// LoadPackages loads the specified packages and returns every struct type
// carrying the generate directive, in package path then source order.
// Patterns are standard Go package patterns (e.g., "./store", "merge-generator/store").
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*schema.Schema, error) {
	pkgs, err := load(ctx, a.Dir, LoadMode, patterns)
	if err != nil {
		return nil, err
	}

	s := &schema.Schema{Version: schema.CurrentVersion}

	for _, pkg := range pkgs {
		entities, err := a.processPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		s.Entities = append(s.Entities, entities...)
	}

	return s, nil
}

// load runs packages.Load and fails on any package error. Packages are
// returned sorted by import path.
func load(ctx context.Context, dir string, mode packages.LoadMode, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:    mode,
		Context: ctx,
		Dir:     dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	sort.Slice(pkgs, func(i, j int) bool {
		return pkgs[i].PkgPath < pkgs[j].PkgPath
	})

	return pkgs, nil
}

// processPackage extracts marked entities from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) ([]schema.Entity, error) {
	methods := map[string][]schema.Method{}

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}

			if recv := receiverName(fn); recv != "" {
				methods[recv] = append(methods[recv], schema.Method{Name: fn.Name.Name})
			}
		}
	}

	var entities []schema.Entity

	for _, file := range pkg.Syntax {
		dir := filepath.Dir(pkg.Fset.Position(file.Package).Filename)

		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				if _, marked := directive(typeDoc(gd, ts), GenerateDirective); !marked {
					continue
				}

				e, err := a.entity(pkg, ts, methods[ts.Name.Name])
				if err != nil {
					return nil, err
				}

				e.Dir = dir
				entities = append(entities, e)
			}
		}
	}

	return entities, nil
}

// entity builds the schema entity of a marked type declaration.
func (a *Analyzer) entity(pkg *packages.Package, ts *ast.TypeSpec, methods []schema.Method) (schema.Entity, error) {
	name := ts.Name.Name

	obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return schema.Entity{}, fmt.Errorf("type %s has no type information", name)
	}

	if ts.TypeParams != nil || ts.Assign.IsValid() {
		return schema.Entity{}, fmt.Errorf("type %s: generic types and aliases cannot be merged", name)
	}

	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return schema.Entity{}, fmt.Errorf("type %s is not a struct", name)
	}

	e := schema.Entity{
		Type:        schema.TypeRef{Package: pkg.PkgPath, Name: name},
		PackageName: pkg.Name,
		Nesting:     schema.NestingTopLevel,
		Generate:    true,
		Methods:     methods,
	}

	fields, err := structFields(name, st, types.RelativeTo(pkg.Types))
	if err != nil {
		return schema.Entity{}, err
	}

	e.Fields = fields

	return e, nil
}

// structFields converts the fields of st in declaration order.
// Blank fields cannot be read or assigned and are left out.
func structFields(name string, st *types.Struct, qualifier types.Qualifier) ([]schema.Field, error) {
	var fields []schema.Field

	for i := range st.NumFields() {
		v := st.Field(i)
		if v.Name() == "_" {
			continue
		}

		opts, err := ParseTag(reflect.StructTag(st.Tag(i)))
		if err != nil {
			return nil, fmt.Errorf("type %s field %s: %w", name, v.Name(), err)
		}

		visibility := schema.VisibilityPackage
		if v.Exported() {
			visibility = schema.VisibilityPublic
		}

		fields = append(fields, schema.Field{
			Name:       v.Name(),
			Type:       types.TypeString(v.Type(), qualifier),
			Visibility: visibility,
			Final:      opts.Final,
			Skip:       opts.Skip,
			OmitNull:   opts.OmitNull,
			Boolean:    isBoolean(v.Type()),
			Nullable:   isNullable(v.Type()),
		})
	}

	return fields, nil
}
