package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vectorgen/internal/campaign"
	"vectorgen/internal/interventions/spraying"
)

func buildCmd() *cobra.Command {
	var (
		out      string
		startDay float64
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write a campaign file with a default space-spraying event",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := campaign.New("SpaceSpraying")
			c.SetSchemaPath(schemaPath)
			path, err := spraying.NewInterventionAsFile(c, startDay, out)
			if err != nil {
				return err
			}
			fmt.Printf("Campaign written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "SpaceSpraying.json", "output file")
	cmd.Flags().Float64Var(&startDay, "start-day", 0, "day the spraying is distributed")
	return cmd
}
