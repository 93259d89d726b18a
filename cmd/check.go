package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/covcheck/internal/domain"
	m "github.com/mouse-blink/covcheck/internal/model"
)

const checkLongDescription = `Replay every scenario of a suite file under the selected policies.

Without a suite file the built-in Animal/Mammal/Cat/Crocodile suite is used.
A violation is a finding, not a failure: the command exits 0 unless
--fail-on-violation is set.`

var checkPolicyFlags []string
var checkParallelFlag int
var checkSaveFlag bool
var checkFailFlag bool

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [suite.yaml]",
		Short: "Check the scenarios of a suite",
		Long:  checkLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			policies, err := parsePolicies(checkPolicyFlags)
			if err != nil {
				return err
			}

			checkArgs := domain.CheckArgs{
				Suite:           suiteArg(args),
				Policies:        policies,
				Threads:         checkParallelFlag,
				FailOnViolation: checkFailFlag,
			}
			if checkSaveFlag {
				checkArgs.Reports = m.Path(reportsOutputDirFlag)
			}

			return getWorkflow(c).Check(c.Context(), checkArgs)
		},
	}
	cmd.Flags().StringArrayVarP(&checkPolicyFlags, "policy", "P", nil, "policy to run (unsound, sound); repeatable, default both")
	cmd.Flags().IntVarP(&checkParallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().BoolVar(&checkSaveFlag, "save", false, "save results to the reports directory")
	cmd.Flags().BoolVar(&checkFailFlag, "fail-on-violation", false, "exit non-zero when any run is violated")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func suiteArg(args []string) m.Path {
	if len(args) == 0 {
		return ""
	}

	return m.Path(args[0])
}

func parsePolicies(names []string) ([]m.Policy, error) {
	policies := make([]m.Policy, 0, len(names))

	for _, name := range names {
		p, err := m.ParsePolicy(name)
		if err != nil {
			return nil, err
		}

		policies = append(policies, p)
	}

	return policies, nil
}
