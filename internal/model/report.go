package model

import (
	"fmt"
	"strings"
)

// Verdict is the terminal outcome of a run.
type Verdict string

const (
	// VerdictSafe means replay finished without any violation.
	VerdictSafe Verdict = "safe"
	// VerdictViolated means a permitted write broke the array's actual element type.
	VerdictViolated Verdict = "violated"
)

// StepTrace is one entry of an ordered step trace.
//
// Types lists the classes involved: create [actual], bind [source static, static],
// write [static, value].
type StepTrace struct {
	Kind   StepKind
	Types  []ClassID
	Detail string
}

// Report describes a violation as a counterexample.
type Report struct {
	Scenario          string
	Policy            Policy
	ActualElementType ClassID
	StaticElementType ClassID
	WrittenValueType  ClassID
	// CommonAncestor is empty when the written type and the actual element
	// type live in different trees.
	CommonAncestor ClassID
	// ValuePath runs from the written type up to, not including, the common ancestor.
	ValuePath []ClassID
	// ArrayPath runs from the actual element type up to, not including, the common ancestor.
	ArrayPath []ClassID
	Steps     []StepTrace
}

// Result is the outcome of replaying one scenario under one policy.
type Result struct {
	Scenario string
	Policy   Policy
	Verdict  Verdict
	Report   *Report     // set when Verdict is VerdictViolated
	Rejected []StepTrace // writes refused by the policy
}

// Violated reports whether the run found a violation.
func (r Result) Violated() bool {
	return r.Verdict == VerdictViolated
}

// Format renders the report as deterministic plain text.
func (r Report) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "scenario %s (policy %s): violation\n", r.Scenario, r.Policy)
	fmt.Fprintf(&b, "  actual element type: %s\n", r.ActualElementType)
	fmt.Fprintf(&b, "  static element type: %s\n", r.StaticElementType)
	fmt.Fprintf(&b, "  written value type:  %s\n", r.WrittenValueType)

	if r.CommonAncestor != "" {
		fmt.Fprintf(&b, "  hierarchy: %s\n", r.hierarchyPath())
	} else {
		fmt.Fprintf(&b, "  hierarchy: %s and %s share no ancestor\n", r.WrittenValueType, r.ActualElementType)
	}

	b.WriteString("  trace:\n")

	for i, step := range r.Steps {
		fmt.Fprintf(&b, "    %d. %s %s", i+1, step.Kind, joinClasses(step.Types, ", "))

		if step.Detail != "" {
			fmt.Fprintf(&b, " (%s)", step.Detail)
		}

		b.WriteString("\n")
	}

	return b.String()
}

// hierarchyPath renders "Value -> Ancestor <- Actual" with empty legs omitted.
func (r Report) hierarchyPath() string {
	var b strings.Builder

	if len(r.ValuePath) > 0 {
		b.WriteString(joinClasses(r.ValuePath, " -> "))
		b.WriteString(" -> ")
	}

	b.WriteString(string(r.CommonAncestor))

	if len(r.ArrayPath) > 0 {
		b.WriteString(" <- ")
		b.WriteString(joinClasses(reversed(r.ArrayPath), " <- "))
	}

	return b.String()
}

func joinClasses(ids []ClassID, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}

	return strings.Join(parts, sep)
}

func reversed(ids []ClassID) []ClassID {
	out := make([]ClassID, len(ids))
	for i, id := range ids {
		out[len(ids)-1-i] = id
	}

	return out
}

// ExploreSummary aggregates an exhaustive exploration under one policy.
type ExploreSummary struct {
	Policy     Policy
	Classes    int
	Scenarios  int
	Violations int
	Rejected   int
	Reports    []Report
}
