package schema

import (
	"fmt"

	"merge-generator/internal/diagnostic"
)

// Validate checks the structural integrity of a schema.
// Entities that fail validation should not be generated; the rest of the
// schema stays usable.
func Validate(s *Schema) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError(diagnostic.CodeEntityInvalid, "schema is nil", "", "")
		return res
	}

	seen := map[TypeRef]int{}

	for i := range s.Entities {
		e := &s.Entities[i]
		id := e.Type.String()

		if e.Type.IsZero() {
			res.AddError(diagnostic.CodeEntityInvalid, fmt.Sprintf("entity #%d has no type name", i), id, "")
			continue
		}

		if e.Type.Package == "" {
			res.AddError(diagnostic.CodeEntityInvalid, "entity has no package path", id, "")
		}

		if prev, ok := seen[e.Type]; ok {
			res.AddWarning(diagnostic.CodeDuplicateEntity,
				fmt.Sprintf("entity is also declared at #%d", prev), id, "")
		} else {
			seen[e.Type] = i
		}

		fields := map[string]struct{}{}

		for j := range e.Fields {
			f := &e.Fields[j]
			if f.Name == "" {
				res.AddError(diagnostic.CodeFieldInvalid, "field has no name", id, fmt.Sprintf("#%d", j))
				continue
			}

			if f.Name == "_" {
				res.AddError(diagnostic.CodeFieldInvalid, "blank field cannot be merged", id, f.Name)
				continue
			}

			if _, ok := fields[f.Name]; ok {
				res.AddError(diagnostic.CodeFieldInvalid, "duplicate field", id, f.Name)
				continue
			}

			fields[f.Name] = struct{}{}

			if f.Type == "" {
				res.AddError(diagnostic.CodeFieldInvalid, "field has no type", id, f.Name)
			}
		}
	}

	return res
}
