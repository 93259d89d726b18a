package controller

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewUI picks a UI for the command output.
// JSON wins over everything; otherwise a terminal gets the styled TUI and
// anything else (files, pipes, buffers) gets plain tables.
func NewUI(cmd *cobra.Command, format Format, useTTY bool) UI {
	if format == FormatJSON {
		return NewJSONUI(cmd.OutOrStdout())
	}

	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is an interactive terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
