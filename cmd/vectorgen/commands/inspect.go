package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vectorgen/internal/campaign"
)

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <campaign.json>",
		Short: "Summarize a campaign file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := campaign.Load(args[0])
			if err != nil {
				return err
			}
			if len(c.Events) == 0 {
				return fmt.Errorf("%s has no campaign events", args[0])
			}
			fmt.Printf("Campaign: %s (%d events)\n", c.CampaignName, len(c.Events))
			for i, ev := range c.Events {
				nodes := "all nodes"
				if len(ev.NodesetConfig.NodeList) > 0 {
					nodes = fmt.Sprintf("%d nodes", len(ev.NodesetConfig.NodeList))
				}
				fmt.Printf("  %2d. day %-6.0f %-24s %s\n", i+1, ev.StartDay, ev.EventName, nodes)
			}
			return nil
		},
	}
	return cmd
}
