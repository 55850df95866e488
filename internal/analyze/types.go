package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strings"
)

// Source directives.
const (
	GenerateDirective = "//merge:generate"
	EntityDirective   = "//merge:entity"
)

// TagKey is the struct tag key holding field markers.
const TagKey = "merge"

// Field marker options.
const (
	OptionSkip     = "skip"
	OptionOmitNull = "omitnull"
	OptionFinal    = "final"
)

// TagOptions are the parsed merge tag of a field.
type TagOptions struct {
	Skip     bool
	OmitNull bool
	Final    bool
}

// ParseTag parses the merge key of a raw struct tag.
func ParseTag(tag reflect.StructTag) (TagOptions, error) {
	var opts TagOptions

	value, ok := tag.Lookup(TagKey)
	if !ok {
		return opts, nil
	}

	for _, opt := range strings.Split(value, ",") {
		switch strings.TrimSpace(opt) {
		case "":
		case OptionSkip:
			opts.Skip = true
		case OptionOmitNull:
			opts.OmitNull = true
		case OptionFinal:
			opts.Final = true
		default:
			return opts, fmt.Errorf("unknown %s tag option %q", TagKey, opt)
		}
	}

	return opts, nil
}

// directive returns the argument of the first doc comment line that is
// exactly name or name followed by a space.
func directive(doc *ast.CommentGroup, name string) (string, bool) {
	if doc == nil {
		return "", false
	}

	for _, c := range doc.List {
		if c.Text == name {
			return "", true
		}

		if rest, ok := strings.CutPrefix(c.Text, name+" "); ok {
			return strings.TrimSpace(rest), true
		}
	}

	return "", false
}

// typeDoc returns the doc comment of spec. For an unparenthesized
// declaration the comment belongs to the GenDecl.
func typeDoc(decl *ast.GenDecl, spec *ast.TypeSpec) *ast.CommentGroup {
	if spec.Doc != nil {
		return spec.Doc
	}

	if decl.Lparen == token.NoPos {
		return decl.Doc
	}

	return nil
}

// receiverName returns the base type name of a method receiver.
func receiverName(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return ""
	}

	expr := fn.Recv.List[0].Type
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.Ident:
			return e.Name
		default:
			return ""
		}
	}
}

// isBoolean reports whether t is bool or a named type over bool.
func isBoolean(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsBoolean != 0
}

// isNullable reports whether a value of type t can be nil.
func isNullable(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Pointer, *types.Slice, *types.Map, *types.Chan, *types.Signature, *types.Interface:
		return true
	case *types.Basic:
		return u.Kind() == types.UnsafePointer
	default:
		return false
	}
}
