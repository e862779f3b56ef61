package commands

import (
	"github.com/spf13/cobra"

	"vectorgen/internal/app"
)

var (
	workDir       string
	simulatorPath string
	schemaPath    string
	platformURL   string
	jobs          int
	verbose       bool

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "vectorgen",
		Short: "Campaign and sweep generation for the vector-borne disease simulator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.FromEnv()
			if err != nil {
				return err
			}
			if workDir != "" {
				cfg.WorkDir = workDir
			}
			if simulatorPath != "" {
				cfg.SimulatorPath = simulatorPath
			}
			if schemaPath != "" {
				cfg.SchemaPath = schemaPath
			}
			if platformURL != "" {
				cfg.PlatformURL = platformURL
			}
			if cmd.Flags().Changed("jobs") {
				cfg.Jobs = jobs
			}
			if verbose {
				cfg.Verbose = true
			}

			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&workDir, "workdir", "", "working directory for experiments (default .)")
	root.PersistentFlags().StringVar(&simulatorPath, "simulator", "", "simulator binary to run per simulation")
	root.PersistentFlags().StringVar(&schemaPath, "schema", "", "simulator schema the campaign targets")
	root.PersistentFlags().StringVar(&platformURL, "platform", "", "remote platform base URL (default local)")
	root.PersistentFlags().IntVar(&jobs, "jobs", 4, "max concurrent simulator runs")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(buildCmd(), sweepCmd(), runCmd(), inspectCmd())
	return root.Execute()
}
