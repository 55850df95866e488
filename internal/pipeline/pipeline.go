package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"merge-generator/internal/diagnostic"
	"merge-generator/internal/gen"
	"merge-generator/internal/logx"
	"merge-generator/internal/plan"
	"merge-generator/internal/schema"
)

// Emitter receives generated files.
type Emitter interface {
	Emit(file *gen.GeneratedFile) error
}

// Discoverer finds registry entries for mergers that already exist, such as
// those produced by earlier or concurrent generation runs.
type Discoverer interface {
	Discover(ctx context.Context) ([]plan.RegistryEntry, error)
}

// Config holds configuration for both passes.
type Config struct {
	Planner   plan.PlannerConfig
	Generator gen.GeneratorConfig
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Planner:   plan.DefaultPlannerConfig(),
		Generator: gen.DefaultGeneratorConfig(),
	}
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger.
func WithLogger(l logx.Logger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// WithDiscoverer adds a source of registry entries consulted by Pass B, in
// the order added and before the manifest.
func WithDiscoverer(d Discoverer) Option {
	return func(p *Pipeline) {
		p.discoverers = append(p.discoverers, d)
	}
}

// Pipeline orchestrates merger and registry generation.
// A Pipeline is not safe for concurrent use.
type Pipeline struct {
	planner     *plan.Planner
	generator   *gen.Generator
	emitter     Emitter
	discoverers []Discoverer
	logger      logx.Logger

	registryGenerated bool
}

// New creates a Pipeline emitting to emitter.
func New(config Config, emitter Emitter, opts ...Option) *Pipeline {
	p := &Pipeline{
		planner:   plan.NewPlanner(config.Planner),
		generator: gen.NewGenerator(config.Generator),
		emitter:   emitter,
		logger:    logx.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Plan runs planning only.
func (p *Pipeline) Plan(s *schema.Schema) *plan.Plan {
	return p.planner.Plan(s)
}

// GenerateMergers is Pass A. Every planned unit is rendered and emitted; a
// unit that fails is reported and skipped while the others continue. Only
// emitted, registry-eligible units are recorded in the returned manifest.
func (p *Pipeline) GenerateMergers(ctx context.Context, s *schema.Schema) (*Manifest, *diagnostic.Diagnostics) {
	planned := p.planner.Plan(s)

	diags := &diagnostic.Diagnostics{}
	diags.Merge(planned.Diagnostics)

	manifest := NewManifest()
	emitted := 0

	for i := range planned.Units {
		unit := &planned.Units[i]
		entity := unit.Entity.String()
		log := p.logger.With(zap.String("entity", entity))

		if err := ctx.Err(); err != nil {
			diags.AddError(diagnostic.CodeGenerateFailed, err.Error(), entity, "")
			continue
		}

		file, err := p.generator.GenerateMerger(unit)
		if err != nil {
			log.Error("merger generation failed", zap.Error(err))
			diags.AddError(diagnostic.CodeGenerateFailed, err.Error(), entity, "")

			continue
		}

		if err := p.emitter.Emit(file); err != nil {
			log.Error("merger emission failed", zap.Error(err))
			diags.AddError(diagnostic.CodeEmitFailed, fmt.Sprintf("emitting %s: %v", file.Filename, err), entity, "")

			continue
		}

		emitted++

		log.Debug("merger emitted",
			zap.String("file", file.Filename),
			zap.Int("rules", len(unit.Rules)),
			zap.Bool("registry", unit.RegistryEligible))

		if entry, ok := unit.RegistryEntry(); ok {
			manifest.Add(entry)
		}
	}

	p.logger.Info("mergers generated",
		zap.Int("units", len(planned.Units)),
		zap.Int("emitted", emitted),
		zap.Int("errors", len(diags.Errors)))

	return manifest, diags
}

// GenerateRegistry is Pass B. Entries from the discoverers come first,
// followed by the manifest; identical entries are kept once. The registry is
// emitted even when there are no entries.
//
// It panics when called twice on the same Pipeline.
func (p *Pipeline) GenerateRegistry(ctx context.Context, manifest *Manifest) (*diagnostic.Diagnostics, error) {
	if p.registryGenerated {
		panic("pipeline: registry generated twice")
	}

	p.registryGenerated = true

	diags := &diagnostic.Diagnostics{}

	var entries plan.RegistryEntries

	for _, d := range p.discoverers {
		found, err := d.Discover(ctx)
		if err != nil {
			p.logger.Error("discovery failed", zap.Error(err))
			diags.AddError(diagnostic.CodeDiscoverFailed, err.Error(), "", "")

			continue
		}

		entries.AddAll(found...)
	}

	if manifest != nil {
		entries.AddAll(manifest.Entries...)
	}

	file, genDiags, err := p.generator.GenerateRegistry(entries.Entries())
	diags.Merge(*genDiags)

	for _, w := range genDiags.Warnings {
		p.logger.Warn(w.Message, zap.String("entity", w.Entity), zap.String("code", w.Code))
	}

	if err != nil {
		return diags, err
	}

	if err := p.emitter.Emit(file); err != nil {
		return diags, fmt.Errorf("emitting registry: %w", err)
	}

	p.logger.Info("registry generated",
		zap.String("file", file.Filename),
		zap.Int("entries", entries.Len()-len(genDiags.Warnings)))

	return diags, nil
}

// Run performs Pass A then Pass B.
func (p *Pipeline) Run(ctx context.Context, s *schema.Schema) (*Manifest, *diagnostic.Diagnostics, error) {
	manifest, diags := p.GenerateMergers(ctx, s)

	regDiags, err := p.GenerateRegistry(ctx, manifest)
	diags.Merge(*regDiags)

	return manifest, diags, err
}
