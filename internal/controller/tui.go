package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/covcheck/internal/model"
)

// TUI implements UI with lipgloss styling for interactive terminals.
// Output taller than the terminal is shown in a scrollable pager.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayResults shows one styled line per run followed by violation reports.
func (t *TUI) DisplayResults(results []m.Result) error {
	if len(results) == 0 {
		return t.show("Results", mutedStyle.Render("No scenarios to check")+"\n")
	}

	var b strings.Builder

	width := 0
	for _, result := range results {
		width = max(width, len(result.Scenario))
	}

	violated := 0

	for _, result := range results {
		verdict := safeStyle.Render(string(result.Verdict))
		if result.Violated() {
			verdict = violatedStyle.Render(string(result.Verdict))
			violated++
		}

		fmt.Fprintf(&b, "%-*s  %-8s %s", width, result.Scenario, result.Policy, verdict)

		if n := len(result.Rejected); n > 0 {
			b.WriteString(rejectedStyle.Render(fmt.Sprintf("  %d write(s) rejected", n)))
		}

		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%s\n", mutedStyle.Render(fmt.Sprintf("%d run(s), %d violated", len(results), violated)))

	for _, result := range results {
		if result.Report != nil {
			b.WriteString(renderReport(*result.Report))
			b.WriteString("\n")
		}
	}

	return t.show("Results", b.String())
}

// DisplayExploration shows exploration totals and the violations found.
func (t *TUI) DisplayExploration(summary m.ExploreSummary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "policy %s: %d scenario(s) over %d class(es)\n", summary.Policy, summary.Scenarios, summary.Classes)

	if summary.Violations == 0 {
		b.WriteString(safeStyle.Render("no violations"))
	} else {
		b.WriteString(violatedStyle.Render(fmt.Sprintf("%d violation(s)", summary.Violations)))
	}

	if summary.Rejected > 0 {
		b.WriteString(rejectedStyle.Render(fmt.Sprintf(", %d write(s) rejected", summary.Rejected)))
	}

	b.WriteString("\n\n")

	for _, report := range summary.Reports {
		b.WriteString(renderReport(report))
		b.WriteString("\n")
	}

	return t.show("Exploration", b.String())
}

// show prints content, or pages it when it does not fit the terminal.
func (t *TUI) show(title, content string) error {
	_, height := t.terminalSize()
	lines := strings.Count(content, "\n") + pagerChromeLines

	if height == 0 || lines <= height {
		_, err := fmt.Fprint(t.output, titleStyle.Render(title)+"\n"+content)
		return err
	}

	program := tea.NewProgram(newPagerModel(title, content), tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (t *TUI) terminalSize() (int, int) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

func renderReport(report m.Report) string {
	return reportStyle.Render(strings.TrimRight(report.Format(), "\n"))
}
