package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/covcheck/internal/domain"
	m "github.com/mouse-blink/covcheck/internal/model"
)

// demoCmd represents the demo command.
var demoCmd = newDemoCmd()

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in Mammal[] as Animal[] example under both policies",
		Args:  cobra.ExactArgs(0),
		RunE: func(c *cobra.Command, _ []string) error {
			return getWorkflow(c).Check(c.Context(), domain.CheckArgs{
				Policies: m.AllPolicies,
				Threads:  1,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
