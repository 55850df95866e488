package schema

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"merge-generator/internal/common"
)

// CurrentVersion is the schema file version written by Marshal.
const CurrentVersion = "1"

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// LoadFiles reads several schema files concurrently and concatenates their
// entities in argument order.
func LoadFiles(ctx context.Context, paths ...string) (*Schema, error) {
	loaded := make([]*Schema, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s, err := LoadFile(path)
			if err != nil {
				return err
			}

			loaded[i] = s

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Concat(loaded...), nil
}

// Parse parses YAML data into a Schema.
func Parse(data []byte) (*Schema, error) {
	var s Schema

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	ApplyDefaults(&s)

	return &s, nil
}

// ApplyDefaults fills in values that can be derived from others.
func ApplyDefaults(s *Schema) {
	if s.Version == "" {
		s.Version = CurrentVersion
	}

	for i := range s.Entities {
		e := &s.Entities[i]
		if e.PackageName == "" {
			e.PackageName = common.PkgAlias(e.Type.Package)
		}

		for j := range e.Fields {
			f := &e.Fields[j]
			f.Boolean = f.Boolean || IsBooleanTypeExpr(f.Type)
			f.Nullable = f.Nullable || IsNullableTypeExpr(f.Type)
		}
	}
}

// Concat joins schemas, keeping entity order. Nil schemas are ignored.
func Concat(schemas ...*Schema) *Schema {
	out := &Schema{Version: CurrentVersion}

	for _, s := range schemas {
		if s == nil {
			continue
		}

		out.Entities = append(out.Entities, s.Entities...)
	}

	return out
}

// Marshal serializes a Schema to YAML.
func Marshal(s *Schema) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteFile writes a Schema to the given path.
func WriteFile(s *Schema, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}
