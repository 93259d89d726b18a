// Package controller provides output adapters for displaying soundness check results.
package controller

import (
	"fmt"

	m "github.com/mouse-blink/covcheck/internal/model"
)

// Format selects how results are rendered.
type Format string

// Available Format values.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat converts a --format flag value into a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %q or %q)", name, FormatText, FormatJSON)
	}
}

// UI defines the interface for displaying check results.
// Implementations can use different output methods (plain tables, styled TUI, JSON).
type UI interface {
	DisplayResults(results []m.Result) error
	DisplayExploration(summary m.ExploreSummary) error
}
