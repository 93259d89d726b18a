// Package cmd provides the root command and CLI setup for covcheck.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/covcheck/internal/adapter"
	"github.com/mouse-blink/covcheck/internal/controller"
	"github.com/mouse-blink/covcheck/internal/domain"
)

const defaultReportsDir = ".covcheck-reports"

// workflow is built lazily from the persistent flags; tests replace it.
var workflow domain.Workflow

var logLevel = new(slog.LevelVar)
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

var verboseFlag bool
var formatFlag string
var reportsOutputDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "covcheck",
		Short: "Covariant array soundness checker",
		Long: `Covcheck models classes, subtype edges and arrays, and checks whether
covariant array assignment lets a write store a value the array was never
created to hold.

Scenarios are replayed under two write policies:
  - unsound   writes are checked against the static type of the reference only
  - sound     writes are checked against the element type the array was created with`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logLevel.Set(slog.LevelWarn)
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			}

			_, err := controller.ParseFormat(formatFlag)

			return err
		},
	}
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging on stderr")
	cmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", string(controller.FormatText), "output format: text or json")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", defaultReportsDir, "directory for saved reports")

	return cmd
}

// getWorkflow returns the injected workflow or builds one for cmd's output.
func getWorkflow(cmd *cobra.Command) domain.Workflow {
	if workflow != nil {
		return workflow
	}

	ui := controller.NewUI(cmd, controller.Format(formatFlag), controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(adapter.NewSuiteStore(), adapter.NewReportStore(), ui, logger)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
