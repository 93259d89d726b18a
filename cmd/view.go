package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/covcheck/internal/domain"
	m "github.com/mouse-blink/covcheck/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved check results",
		Long:  "View check results saved with `covcheck check --save` from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(c *cobra.Command, _ []string) error {
			return getWorkflow(c).View(domain.ViewArgs{Reports: m.Path(reportsOutputDirFlag)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
