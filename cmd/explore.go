package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/covcheck/internal/domain"
	m "github.com/mouse-blink/covcheck/internal/model"
)

const exploreLongDescription = `Enumerate every create, bind and write scenario the suite's hierarchy
admits and run them under one policy.

Each scenario creates a one-slot array, widens it through up to --depth
ancestor views and writes one value through the widest view. The sound
policy never reports a violation; the unsound one does for any hierarchy
with a subclass and a sibling.`

var explorePolicyFlag string
var exploreDepthFlag int
var exploreParallelFlag int
var exploreShardFlag string

// exploreCmd represents the explore command.
var exploreCmd = newExploreCmd()

func newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore [suite.yaml]",
		Short: "Exhaustively explore scenarios over a hierarchy",
		Long:  exploreLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			policy, err := m.ParsePolicy(explorePolicyFlag)
			if err != nil {
				return err
			}

			shardIndex, totalShards := parseShardFlag(exploreShardFlag)

			return getWorkflow(c).Explore(c.Context(), domain.ExploreArgs{
				Suite:           suiteArg(args),
				Policy:          policy,
				Depth:           exploreDepthFlag,
				Threads:         exploreParallelFlag,
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
			})
		},
	}
	cmd.Flags().StringVarP(&explorePolicyFlag, "policy", "P", string(m.PolicyUnsound), "policy to run (unsound, sound)")
	cmd.Flags().IntVarP(&exploreDepthFlag, "depth", "d", 2, "maximum number of widening binds per scenario")
	cmd.Flags().IntVarP(&exploreParallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().StringVarP(&exploreShardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")

	return cmd
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
