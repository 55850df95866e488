package plan

import (
	"merge-generator/internal/schema"
)

// PlannerConfig holds configuration for planning.
type PlannerConfig struct {
	// MergerSuffix is appended to the entity name to name its merger.
	MergerSuffix string
}

// DefaultPlannerConfig returns the default planner configuration.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		MergerSuffix: "Merger",
	}
}

// Planner builds merge units from a schema.
type Planner struct {
	config PlannerConfig
}

// NewPlanner creates a new Planner.
func NewPlanner(config PlannerConfig) *Planner {
	if config.MergerSuffix == "" {
		config.MergerSuffix = DefaultPlannerConfig().MergerSuffix
	}

	return &Planner{config: config}
}

// Plan validates s and builds a unit for every valid entity that carries the
// generate marker.
func (p *Planner) Plan(s *schema.Schema) *Plan {
	out := &Plan{}

	res := schema.Validate(s)
	out.Diagnostics.Merge(*res)

	if s == nil {
		return out
	}

	invalid := map[string]bool{}
	for _, d := range res.Errors {
		invalid[d.Entity] = true
	}

	for i := range s.Entities {
		e := &s.Entities[i]
		if !e.Generate || invalid[e.Type.String()] {
			continue
		}

		out.Units = append(out.Units, p.PlanEntity(e))
	}

	return out
}

// PlanEntity builds the merge unit for a single entity.
// Rules keep the entity's field declaration order.
func (p *Planner) PlanEntity(e *schema.Entity) MergeUnit {
	unit := MergeUnit{
		Entity:           e.Type,
		PackageName:      e.PackageName,
		Dir:              e.Dir,
		MergerName:       e.Type.Name + p.config.MergerSuffix,
		RegistryEligible: e.Nesting.Referenceable(),
	}

	for _, f := range e.Fields {
		rule, reason, ok := classify(f, e.Methods)
		if !ok {
			unit.Excluded = append(unit.Excluded, ExcludedField{Field: f, Reason: reason})
			continue
		}

		unit.Rules = append(unit.Rules, rule)
	}

	return unit
}
