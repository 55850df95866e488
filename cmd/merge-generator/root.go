package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"merge-generator/internal/analyze"
	"merge-generator/internal/config"
	"merge-generator/internal/diagnostic"
	"merge-generator/internal/gen"
	"merge-generator/internal/logx"
	"merge-generator/internal/pipeline"
	"merge-generator/internal/schema"
)

// app is the state shared by all commands once configuration is loaded.
type app struct {
	v          *viper.Viper
	configPath string

	cfg    *config.Config
	logger *logx.ZapLogger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:           "merge-generator",
		Short:         "Generate field mergers and a merger registry for Go structs",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./merge-generator.yaml if present)")
	flags.String("dir", "", "working directory; relative paths resolve against it")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("manifest", "", "manifest file written by Pass A and read by Pass B")

	for key, name := range map[string]string{
		"dir":       "dir",
		"log.level": "log-level",
		"manifest":  "manifest",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		newGenCmd(a),
		newMergersCmd(a),
		newRegistryCmd(a),
		newPlanCmd(a),
	)

	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}

	logger, err := logx.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}

// loadSchema merges the configured YAML schemas with entities read from Go
// packages, YAML first.
func (a *app) loadSchema(ctx context.Context) (*schema.Schema, error) {
	fromFiles, err := schema.LoadFiles(ctx, a.cfg.Paths(a.cfg.Schemas)...)
	if err != nil {
		return nil, err
	}

	if len(a.cfg.Packages) == 0 {
		return fromFiles, nil
	}

	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = a.cfg.Dir

	fromSource, err := analyzer.LoadPackages(ctx, a.cfg.Packages...)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("schema loaded",
		zap.Int("yaml_entities", len(fromFiles.Entities)),
		zap.Int("source_entities", len(fromSource.Entities)))

	return schema.Concat(fromFiles, fromSource), nil
}

func (a *app) pipeline() *pipeline.Pipeline {
	opts := []pipeline.Option{pipeline.WithLogger(a.logger)}
	if len(a.cfg.Scan) > 0 {
		opts = append(opts, pipeline.WithDiscoverer(analyze.NewMarkerScanner(a.cfg.Dir, a.cfg.Scan...)))
	}

	return pipeline.New(a.cfg.Pipeline(), &gen.FileEmitter{BaseDir: a.cfg.Dir}, opts...)
}

// report logs every diagnostic and returns an error when any is an error.
func (a *app) report(diags *diagnostic.Diagnostics) error {
	for _, d := range diags.Errors {
		a.logger.Error(d.Message, diagFields(d)...)
	}

	for _, d := range diags.Warnings {
		a.logger.Warn(d.Message, diagFields(d)...)
	}

	for _, d := range diags.Infos {
		a.logger.Info(d.Message, diagFields(d)...)
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("generation finished with %d error(s): %w", len(diags.Errors), err)
	}

	return nil
}

func diagFields(d diagnostic.Diagnostic) []zap.Field {
	fields := []zap.Field{zap.String("code", d.Code)}
	if d.Entity != "" {
		fields = append(fields, zap.String("entity", d.Entity))
	}

	if d.Field != "" {
		fields = append(fields, zap.String("field", d.Field))
	}

	return fields
}

var errNoManifest = errors.New("no manifest configured (use --manifest or the manifest key)")
