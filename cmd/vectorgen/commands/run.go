package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vectorgen/internal/domain"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [experiment-id]",
		Short: "Execute a materialized experiment",
		Long: `Execute every simulation of a materialized experiment with the configured
simulator. Without an id, the most recently created experiment runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id domain.ExperimentID
			if len(args) == 1 {
				id = domain.ExperimentID(args[0])
			}
			exp, err := appCtx.Runner.Load(id)
			if err != nil {
				return err
			}
			if err := appCtx.Runner.Run(cmd.Context(), exp); err != nil {
				return err
			}
			if !exp.Succeeded() {
				return fmt.Errorf("experiment %s did not succeed", exp.ID)
			}
			fmt.Printf("Experiment %s succeeded.\n", exp.ID)
			return nil
		},
	}
	return cmd
}
