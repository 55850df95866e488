package schema

import (
	"merge-generator/internal/common"
)

//go:generate go tool stringer -type=NestingKind -linecomment -output=nestingkind_string.go
//go:generate go tool stringer -type=Visibility -linecomment -output=visibility_string.go

// Schema is the full input of one generation run.
type Schema struct {
	Version  string   `yaml:"version"`
	Entities []Entity `yaml:"entities"`
}

// TypeRef identifies a named type by import path and name.
type TypeRef struct {
	Package string // e.g., "example.com/app/store"
	Name    string // e.g., "User"
}

// String returns "pkgpath.Name", or just the name without a package.
func (t TypeRef) String() string {
	if t.Package == "" {
		return t.Name
	}

	return t.Package + "." + t.Name
}

// IsZero reports whether t names nothing.
func (t TypeRef) IsZero() bool {
	return t.Name == ""
}

// Exported reports whether the type can be referenced from another package.
func (t TypeRef) Exported() bool {
	return common.IsExported(t.Name)
}

// ParseTypeRef parses the String form of a TypeRef.
func ParseTypeRef(s string) TypeRef {
	pkg, name := common.SplitQualified(s)
	return TypeRef{Package: pkg, Name: name}
}

// NestingKind describes where a type is declared.
type NestingKind int

const (
	NestingTopLevel  NestingKind = iota // top-level
	NestingStatic                       // static
	NestingInner                        // inner
	NestingLocal                        // local
	NestingAnonymous                    // anonymous
)

// Referenceable reports whether a type with this nesting can be named
// without an enclosing instance or scope.
func (k NestingKind) Referenceable() bool {
	return k == NestingTopLevel || k == NestingStatic
}

// Visibility is the access level of a field.
type Visibility int

const (
	VisibilityPackage   Visibility = iota // package
	VisibilityPublic                      // public
	VisibilityProtected                   // protected
	VisibilityPrivate                     // private
)

// Accessible reports whether code in the declaring package may assign the
// field directly.
func (v Visibility) Accessible() bool {
	return v == VisibilityPackage || v == VisibilityPublic
}

// Entity describes one struct type.
type Entity struct {
	// Type is the identity of the entity.
	Type TypeRef `yaml:"type"`
	// PackageName is the Go package name; defaults to the last path element.
	PackageName string `yaml:"package_name,omitempty"`
	// Dir is the directory generated files for this entity are written to.
	Dir string `yaml:"dir,omitempty"`
	// Nesting is where the type is declared.
	Nesting NestingKind `yaml:"nesting,omitempty"`
	// Generate is the "generate a merger for me" marker.
	Generate bool `yaml:"generate"`
	// Fields in declaration order.
	Fields []Field `yaml:"fields"`
	// Methods in declaration order.
	Methods []Method `yaml:"methods,omitempty"`
}

// Field describes one declared field.
type Field struct {
	Name       string     `yaml:"name"`
	Type       string     `yaml:"type"`
	Visibility Visibility `yaml:"visibility,omitempty"`
	Final      bool       `yaml:"final,omitempty"`
	Static     bool       `yaml:"static,omitempty"`
	Skip       bool       `yaml:"skip,omitempty"`
	OmitNull   bool       `yaml:"omit_null,omitempty"`
	// Boolean is true when the field's type is bool.
	Boolean bool `yaml:"boolean,omitempty"`
	// Nullable is true when the field's type can hold nil.
	Nullable bool `yaml:"nullable,omitempty"`
}

// Method is a declared method of an entity.
type Method struct {
	Name string `yaml:"name"`
}

// Methods builds a method inventory from names.
func Methods(names ...string) []Method {
	out := make([]Method, 0, len(names))
	for _, n := range names {
		out = append(out, Method{Name: n})
	}

	return out
}
