// Package config loads generator settings from a YAML file, MERGEGEN_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"path/filepath"

	"merge-generator/internal/gen"
	"merge-generator/internal/pipeline"
	"merge-generator/internal/plan"
)

// Config is the full generator configuration.
type Config struct {
	// Dir is the working directory; relative paths resolve against it.
	Dir string `mapstructure:"dir"`
	// Schemas are YAML schema files.
	Schemas []string `mapstructure:"schemas"`
	// Packages are Go package patterns searched for //merge:generate types.
	Packages []string `mapstructure:"packages"`
	// Scan are Go package patterns searched for existing mergers in Pass B.
	Scan []string `mapstructure:"scan"`
	// Manifest is where Pass A writes and Pass B reads the manifest.
	Manifest string `mapstructure:"manifest"`
	// Runtime is the import path of the merge runtime library.
	Runtime string `mapstructure:"runtime"`

	Merger   MergerConfig   `mapstructure:"merger"`
	Output   OutputConfig   `mapstructure:"output"`
	Registry RegistryConfig `mapstructure:"registry"`
	Log      LogConfig      `mapstructure:"log"`
}

// MergerConfig names generated mergers.
type MergerConfig struct {
	Suffix     string `mapstructure:"suffix"`
	FileSuffix string `mapstructure:"fileSuffix"`
	Comments   bool   `mapstructure:"comments"`
}

// OutputConfig controls where files go.
type OutputConfig struct {
	// Dir is used for entities without a directory of their own.
	Dir string `mapstructure:"dir"`
	// DebugDir receives unformatted sources when formatting fails.
	DebugDir string `mapstructure:"debugDir"`
}

// RegistryConfig places the generated registry.
type RegistryConfig struct {
	Package string `mapstructure:"package"`
	Name    string `mapstructure:"name"`
	Dir     string `mapstructure:"dir"`
	File    string `mapstructure:"file"`
	Func    string `mapstructure:"func"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Path resolves p against Dir. Absolute and empty paths are returned as is.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Dir == "" {
		return p
	}

	return filepath.Join(c.Dir, p)
}

// Paths resolves every element of ps against Dir.
func (c *Config) Paths(ps []string) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = c.Path(p)
	}

	return out
}

// Pipeline converts c into a pipeline configuration.
func (c *Config) Pipeline() pipeline.Config {
	return pipeline.Config{
		Planner: plan.PlannerConfig{
			MergerSuffix: c.Merger.Suffix,
		},
		Generator: gen.GeneratorConfig{
			RuntimePackage:      c.Runtime,
			FileSuffix:          c.Merger.FileSuffix,
			OutputDir:           c.Output.Dir,
			GenerateComments:    c.Merger.Comments,
			RegistryPackage:     c.Registry.Package,
			RegistryPackageName: c.Registry.Name,
			RegistryDir:         c.Registry.Dir,
			RegistryFile:        c.Registry.File,
			RegistryFunc:        c.Registry.Func,
			DebugDir:            c.Path(c.Output.DebugDir),
		},
	}
}
