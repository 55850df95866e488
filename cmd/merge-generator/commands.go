package main

import (
	"errors"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"merge-generator/internal/pipeline"
	"merge-generator/internal/plan"
)

func newGenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gen",
		Short: "Generate mergers and the registry",
		Long: `Generate a merger for every entity marked for generation, then the
registry. The registry binds mergers found in the scanned packages followed by
the ones generated in this run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSchema(cmd.Context())
			if err != nil {
				return err
			}

			manifest, diags, runErr := a.pipeline().Run(cmd.Context(), s)

			// the manifest records Pass A even when the registry failed
			if path := a.cfg.Path(a.cfg.Manifest); path != "" {
				if err := manifest.WriteFile(path); err != nil {
					return errors.Join(runErr, err)
				}
			}

			if runErr != nil {
				return errors.Join(runErr, a.report(diags))
			}

			return a.report(diags)
		},
	}
}

func newMergersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mergers",
		Short: "Generate mergers only and write the manifest (Pass A)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.cfg.Path(a.cfg.Manifest)
			if path == "" {
				return errNoManifest
			}

			s, err := a.loadSchema(cmd.Context())
			if err != nil {
				return err
			}

			manifest, diags := a.pipeline().GenerateMergers(cmd.Context(), s)
			if err := manifest.WriteFile(path); err != nil {
				return err
			}

			return a.report(diags)
		},
	}
}

func newRegistryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "registry",
		Short: "Generate the registry from the manifest and scanned packages (Pass B)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest := pipeline.NewManifest()

			if path := a.cfg.Path(a.cfg.Manifest); path != "" {
				loaded, err := pipeline.LoadManifest(path)
				if err != nil {
					return err
				}

				manifest = loaded
			}

			diags, err := a.pipeline().GenerateRegistry(cmd.Context(), manifest)
			if err != nil {
				return errors.Join(err, a.report(diags))
			}

			return a.report(diags)
		},
	}
}

// planRule is the printed form of a merge rule.
type planRule struct {
	Field       string `yaml:"field"`
	Strategy    string `yaml:"strategy"`
	Guarded     bool   `yaml:"guarded,omitempty"`
	Explanation string `yaml:"explanation"`
}

// planExcluded is the printed form of an excluded field.
type planExcluded struct {
	Field  string `yaml:"field"`
	Reason string `yaml:"reason"`
}

// planUnit is the printed form of a merge unit.
type planUnit struct {
	Entity   string         `yaml:"entity"`
	Merger   string         `yaml:"merger"`
	Registry bool           `yaml:"registry"`
	Rules    []planRule     `yaml:"rules"`
	Excluded []planExcluded `yaml:"excluded,omitempty"`
}

func newPlanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the merge rules of every entity as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSchema(cmd.Context())
			if err != nil {
				return err
			}

			p := a.pipeline().Plan(s)

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)

			if err := enc.Encode(describePlan(p)); err != nil {
				return err
			}

			if err := enc.Close(); err != nil {
				return err
			}

			return a.report(&p.Diagnostics)
		},
	}
}

func describePlan(p *plan.Plan) []planUnit {
	out := make([]planUnit, 0, len(p.Units))

	for _, u := range p.Units {
		pu := planUnit{
			Entity:   u.Entity.String(),
			Merger:   u.Merger().String(),
			Registry: u.RegistryEligible,
			Rules:    make([]planRule, 0, len(u.Rules)),
		}

		for _, r := range u.Rules {
			pu.Rules = append(pu.Rules, planRule{
				Field:       r.Field.Name,
				Strategy:    r.Strategy.String(),
				Guarded:     r.Guarded(),
				Explanation: r.Explanation,
			})
		}

		for _, e := range u.Excluded {
			pu.Excluded = append(pu.Excluded, planExcluded{Field: e.Field.Name, Reason: e.Reason})
		}

		out = append(out, pu)
	}

	return out
}
