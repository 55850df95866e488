// Package analyze reads entity descriptions out of Go source.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to turn
// struct types carrying the generate directive into schema entities, and to
// find generated mergers through their entity directive.
//
// Source conventions:
//   - //merge:generate in a type's doc comment marks it for generation
//   - merge:"skip,omitnull,final" struct tags set field markers
//   - //merge:entity <pkgpath>.<Name> marks a merger for the registry
package analyze
