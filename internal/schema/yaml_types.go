package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// --- TypeRef YAML methods ---

// UnmarshalYAML reads a TypeRef from its "pkgpath.Name" form.
func (t *TypeRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected type reference string, got %v", node.Line, node.Kind)
	}

	*t = ParseTypeRef(strings.TrimSpace(node.Value))

	return nil
}

// MarshalYAML writes a TypeRef in its "pkgpath.Name" form.
func (t TypeRef) MarshalYAML() (any, error) {
	return t.String(), nil
}

// --- NestingKind YAML methods ---

// ParseNestingKind parses the String form of a NestingKind.
func ParseNestingKind(s string) (NestingKind, error) {
	for k := NestingTopLevel; k <= NestingAnonymous; k++ {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown nesting kind %q", s)
}

// UnmarshalYAML implements custom YAML unmarshaling for NestingKind.
func (k *NestingKind) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected nesting kind, got %v", node.Line, node.Kind)
	}

	if node.Value == "" {
		*k = NestingTopLevel
		return nil
	}

	parsed, err := ParseNestingKind(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*k = parsed

	return nil
}

// MarshalYAML implements custom YAML marshaling for NestingKind.
func (k NestingKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// --- Visibility YAML methods ---

// ParseVisibility parses the String form of a Visibility.
// "default" is accepted as an alias of "package".
func ParseVisibility(s string) (Visibility, error) {
	if s == "default" {
		return VisibilityPackage, nil
	}

	for v := VisibilityPackage; v <= VisibilityPrivate; v++ {
		if v.String() == s {
			return v, nil
		}
	}

	return 0, fmt.Errorf("unknown visibility %q", s)
}

// UnmarshalYAML implements custom YAML unmarshaling for Visibility.
func (v *Visibility) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected visibility, got %v", node.Line, node.Kind)
	}

	if node.Value == "" {
		*v = VisibilityPackage
		return nil
	}

	parsed, err := ParseVisibility(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*v = parsed

	return nil
}

// MarshalYAML implements custom YAML marshaling for Visibility.
func (v Visibility) MarshalYAML() (any, error) {
	return v.String(), nil
}

// --- Method YAML methods ---

// UnmarshalYAML accepts either a bare method name or {name: ...}.
func (m *Method) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		m.Name = node.Value
		return nil

	case yaml.MappingNode:
		type plain Method

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*m = Method(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected method name, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes a method as its bare name.
func (m Method) MarshalYAML() (any, error) {
	return m.Name, nil
}

// --- Entity YAML methods ---

// UnmarshalYAML decodes an entity with Generate defaulting to true: listing
// an entity in a schema file is the request to generate its merger.
func (e *Entity) UnmarshalYAML(node *yaml.Node) error {
	type plain Entity

	p := plain{Generate: true}
	if err := node.Decode(&p); err != nil {
		return err
	}

	*e = Entity(p)

	return nil
}
