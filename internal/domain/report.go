package domain

import (
	m "github.com/mouse-blink/covcheck/internal/model"
)

// BuildReport turns a violation into a counterexample report.
// It is a pure function of its inputs.
func BuildReport(graph *TypeGraph, scenario string, policy m.Policy, v Violation) m.Report {
	report := m.Report{
		Scenario:          scenario,
		Policy:            policy,
		ActualElementType: v.Actual,
		StaticElementType: v.Static,
		WrittenValueType:  v.Value,
		Steps:             make([]m.StepTrace, len(v.Steps)),
	}

	for i, step := range v.Steps {
		report.Steps[i] = m.StepTrace{
			Kind:   step.Kind,
			Types:  append([]m.ClassID(nil), step.Types...),
			Detail: step.Detail,
		}
	}

	if ancestor, ok := graph.CommonAncestor(v.Value, v.Actual); ok {
		report.CommonAncestor = ancestor
		report.ValuePath = graph.pathTo(v.Value, ancestor)
		report.ArrayPath = graph.pathTo(v.Actual, ancestor)
	}

	return report
}
