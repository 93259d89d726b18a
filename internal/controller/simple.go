package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/covcheck/internal/model"
)

// SimpleUI implements UI with plain tables written through the cobra command.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayResults prints a verdict table followed by every violation report.
func (s *SimpleUI) DisplayResults(results []m.Result) error {
	if len(results) == 0 {
		s.printf("No scenarios to check\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Scenario", "Policy", "Verdict", "Rejected"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	violated, rejected := 0, 0

	for _, result := range results {
		if result.Violated() {
			violated++
		}

		rejected += len(result.Rejected)

		table.Append([]string{
			result.Scenario,
			string(result.Policy),
			string(result.Verdict),
			fmt.Sprintf("%d", len(result.Rejected)),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Runs %d", len(results)),
		"",
		fmt.Sprintf("%d violated", violated),
		fmt.Sprintf("%d", rejected),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	for _, result := range results {
		if result.Report != nil {
			s.printf("\n%s", result.Report.Format())
		}
	}

	return nil
}

// DisplayExploration prints exploration totals and the violation reports found.
func (s *SimpleUI) DisplayExploration(summary m.ExploreSummary) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Policy", "Classes", "Scenarios", "Violations", "Rejected"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.Append([]string{
		string(summary.Policy),
		fmt.Sprintf("%d", summary.Classes),
		fmt.Sprintf("%d", summary.Scenarios),
		fmt.Sprintf("%d", summary.Violations),
		fmt.Sprintf("%d", summary.Rejected),
	})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	for _, report := range summary.Reports {
		s.printf("\n%s", report.Format())
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
