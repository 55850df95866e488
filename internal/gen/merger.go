package gen

import (
	"errors"
	"fmt"

	"github.com/dave/jennifer/jen"

	"merge-generator/internal/common"
	"merge-generator/internal/plan"
)

// GenerateMerger renders the merger for one unit.
func (g *Generator) GenerateMerger(unit *plan.MergeUnit) (*GeneratedFile, error) {
	if unit == nil || unit.Entity.IsZero() {
		return nil, errors.New("merge unit has no entity")
	}

	name := unit.Entity.Name
	filename := common.SnakeCase(name) + g.config.FileSuffix

	dir := unit.Dir
	if dir == "" {
		dir = g.config.OutputDir
	}

	pkgName := unit.PackageName
	if pkgName == "" {
		pkgName = common.PkgAlias(unit.Entity.Package)
	}

	f := g.newFile(unit.Entity.Package, pkgName)
	g.mergerType(f, unit)

	content, err := g.render(f, filename)
	if err != nil {
		return nil, fmt.Errorf("generating merger for %s: %w", unit.Entity, err)
	}

	return &GeneratedFile{
		Package:  unit.Entity.Package,
		Dir:      dir,
		Filename: filename,
		Content:  content,
	}, nil
}

// mergerType adds the merger type, its interface assertion and Merge method.
func (g *Generator) mergerType(f *jen.File, unit *plan.MergeUnit) {
	name := unit.Entity.Name
	oldName := "old" + common.Capitalize(name)
	newName := "new" + common.Capitalize(name)

	f.Commentf("%s copies updatable fields of a newer %s into an older one.", unit.MergerName, name)

	if unit.RegistryEligible {
		f.Comment("//")
		f.Comment(EntityMarker + unit.Entity.String())
	}

	f.Type().Id(unit.MergerName).Struct()
	f.Line()

	f.Var().Id("_").Add(g.runtime("Merger")).Types(jen.Id(name)).Op("=").Id(unit.MergerName).Values()

	body := []jen.Code{
		nilGuard(g, oldName),
		nilGuard(g, newName),
	}

	for i := range unit.Rules {
		rule := &unit.Rules[i]

		stmt := mergeStatement(rule, oldName, newName)
		if g.config.GenerateComments {
			body = append(body, jen.Commentf("%s: %s", rule.Field.Name, rule.Explanation))
		}

		body = append(body, stmt)
	}

	body = append(body, jen.Return(jen.Nil()))

	f.Line()

	f.Commentf("Merge copies the fields of %s into %s. %s is not modified.", newName, oldName, newName)
	f.Func().Params(jen.Id(unit.MergerName)).Id("Merge").
		Params(jen.List(jen.Id(oldName), jen.Id(newName)).Op("*").Id(name)).
		Error().
		Block(body...)
}

func nilGuard(g *Generator, param string) jen.Code {
	return jen.If(jen.Id(param).Op("==").Nil()).Block(
		jen.Return(g.runtime("InvalidArgument").Call(jen.Lit(param))),
	)
}

// mergeStatement renders one rule, wrapped in a nil check when guarded.
func mergeStatement(rule *plan.MergeRule, oldName, newName string) jen.Code {
	var value, assign *jen.Statement

	switch rule.Strategy {
	case plan.StrategyAccessorPair:
		value = jen.Id(newName).Dot(rule.Accessors.Getter.Name).Call()
		assign = jen.Id(oldName).Dot(rule.Accessors.Setter.Name).Call(
			jen.Id(newName).Dot(rule.Accessors.Getter.Name).Call(),
		)
	default:
		value = jen.Id(newName).Dot(rule.Field.Name)
		assign = jen.Id(oldName).Dot(rule.Field.Name).Op("=").Id(newName).Dot(rule.Field.Name)
	}

	if !rule.Guarded() {
		return assign
	}

	return jen.If(value.Op("!=").Nil()).Block(assign)
}
