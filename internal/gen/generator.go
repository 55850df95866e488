package gen

import (
	"bytes"
	"fmt"
	"go/format"

	"github.com/dave/jennifer/jen"

	"merge-generator/internal/common"
)

// HeaderComment starts every generated file.
const HeaderComment = "Code generated by merge-generator. DO NOT EDIT."

// EntityMarker prefixes the directive placed on registry-eligible mergers.
const EntityMarker = "//merge:entity "

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// RuntimePackage is the import path of the merge runtime library.
	RuntimePackage string
	// FileSuffix is appended to the snake-cased entity name to name merger files.
	FileSuffix string
	// OutputDir is used for units that carry no directory of their own.
	OutputDir string
	// GenerateComments emits a comment above each merge statement.
	GenerateComments bool

	// RegistryPackage is the import path the registry is generated into.
	RegistryPackage string
	// RegistryPackageName is its package name; defaults to the last path element.
	RegistryPackageName string
	// RegistryDir is the directory the registry file is written to.
	RegistryDir string
	// RegistryFile is the registry file name.
	RegistryFile string
	// RegistryFunc is the name of the generated registry accessor.
	RegistryFunc string

	// DebugDir receives unformatted sources when formatting fails.
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RuntimePackage:   "merge-generator/merge",
		FileSuffix:       "_merger.go",
		OutputDir:        ".",
		GenerateComments: true,
		RegistryFile:     "merge_registry.go",
		RegistryFunc:     "Registry",
	}
}

// Generator renders merge units and registries.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	def := DefaultGeneratorConfig()

	if config.RuntimePackage == "" {
		config.RuntimePackage = def.RuntimePackage
	}

	if config.FileSuffix == "" {
		config.FileSuffix = def.FileSuffix
	}

	if config.RegistryFile == "" {
		config.RegistryFile = def.RegistryFile
	}

	if config.RegistryFunc == "" {
		config.RegistryFunc = def.RegistryFunc
	}

	if config.RegistryPackageName == "" {
		config.RegistryPackageName = common.PkgAlias(config.RegistryPackage)
	}

	return &Generator{config: config}
}

// Config returns the effective configuration.
func (g *Generator) Config() GeneratorConfig {
	return g.config
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Package is the import path of the file's package.
	Package string
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "user_merger.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// newFile starts a jennifer file with the shared header and runtime import.
func (g *Generator) newFile(pkgPath, pkgName string) *jen.File {
	f := jen.NewFilePathName(pkgPath, pkgName)
	f.HeaderComment(HeaderComment)
	f.ImportName(g.config.RuntimePackage, common.PkgAlias(g.config.RuntimePackage))

	return f
}

// render formats f. When formatting fails the raw source is written to the
// debug directory, if one is configured.
func (g *Generator) render(f *jen.File, filename string) ([]byte, error) {
	f.NoFormat = true

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", filename, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugDir != "" {
			_ = writeDebugUnformatted(g.config.DebugDir, filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting %s: %w", filename, err)
	}

	return formatted, nil
}

func (g *Generator) runtime(name string) *jen.Statement {
	return jen.Qual(g.config.RuntimePackage, name)
}
