package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vectorgen/internal/campaign"
	"vectorgen/internal/demographics"
	"vectorgen/internal/interventions/spraying"
	"vectorgen/internal/services/experiment"
	"vectorgen/internal/simconfig"
	"vectorgen/internal/sweep"
)

// Campaign parameters the sweep command understands. Anything else in the
// spec still lands in the simulation tags and the config patch.
const (
	paramStartDay         = "start_day"
	paramSprayCoverage    = "spray_coverage"
	paramKillingInitial   = "killing_initial_effect"
	paramRepellingInitial = "repelling_initial_effect"
	paramRunNumber        = "run_number"
	paramIndoorFeeding    = "indoor_feeding_fraction"
)

func sweepCmd() *cobra.Command {
	var (
		specPath string
		name     string
		runNow   bool
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Expand a YAML sweep spec into a materialized experiment",
		Long: `Expand a YAML sweep spec into one simulation per parameter combination.

Each simulation gets a space-spraying and spatial-repellent campaign built
from the point's parameters (start_day, spray_coverage,
killing_initial_effect, repelling_initial_effect) and a config patched with
run_number and indoor_feeding_fraction.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := sweep.Load(specPath)
			if err != nil {
				return err
			}
			if name == "" {
				name = spec.Name
			}
			if name == "" {
				name = "vectorgen sweep"
			}

			exp, err := appCtx.Runner.Build(cmd.Context(), name, spec.Points(), experiment.Builders{
				Campaign:     sweepCampaign,
				Config:       sweepConfig,
				Demographics: demographics.FromTemplateNode(0, 0, 10000, "1", 1),
			})
			if err != nil {
				return err
			}
			fmt.Printf("Experiment %s created with %d simulations\n", exp.ID, len(exp.Simulations))

			if runNow {
				if err := appCtx.Runner.Run(cmd.Context(), exp); err != nil {
					return err
				}
				fmt.Printf("Experiment %s finished\n", exp.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&specPath, "spec", "sweep.yaml", "sweep spec file")
	cmd.Flags().StringVar(&name, "name", "", "experiment name (default from spec)")
	cmd.Flags().BoolVar(&runNow, "run", false, "run the experiment after materializing")
	return cmd
}

// sweepCampaign builds the spraying + repellent campaign for one point,
// falling back to the builder defaults for absent parameters.
func sweepCampaign(c *campaign.Campaign, p sweep.Point) error {
	startDay := float64(1)
	if _, ok := p[paramStartDay]; ok {
		v, err := p.Float(paramStartDay)
		if err != nil {
			return err
		}
		startDay = v
	}

	sched := spraying.DefaultScheduleOptions()
	sched.StartDay = startDay

	spray := spraying.DefaultOptions()
	if _, ok := p[paramSprayCoverage]; ok {
		v, err := p.Float(paramSprayCoverage)
		if err != nil {
			return err
		}
		spray.SprayCoverage = v
	}
	if _, ok := p[paramKillingInitial]; ok {
		v, err := p.Float(paramKillingInitial)
		if err != nil {
			return err
		}
		spray.EffectInitial = v
	}
	if err := spraying.AddScheduledSpaceSpraying(c, sched, spray); err != nil {
		return err
	}

	repel := spraying.DefaultOptions()
	repel.SprayCoverage = spray.SprayCoverage
	if _, ok := p[paramRepellingInitial]; ok {
		v, err := p.Float(paramRepellingInitial)
		if err != nil {
			return err
		}
		repel.EffectInitial = v
	}
	return spraying.AddScheduledSpatialRepellent(c, sched, repel)
}

// sweepConfig builds the per-point simulator config: team defaults, one
// species, and the point's run number and indoor feeding fraction.
func sweepConfig(p sweep.Point) (*simconfig.Config, error) {
	cfg := simconfig.TeamDefaults()
	if err := cfg.AddSpecies("gambiae"); err != nil {
		return nil, err
	}
	if _, ok := p[paramRunNumber]; ok {
		n, err := p.Int(paramRunNumber)
		if err != nil {
			return nil, err
		}
		cfg.Set("Run_Number", n)
	}
	if _, ok := p[paramIndoorFeeding]; ok {
		f, err := p.Float(paramIndoorFeeding)
		if err != nil {
			return nil, err
		}
		if err := cfg.SetIndoorFeedingFraction("gambiae", f); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
