package controller

import (
	"encoding/json"
	"io"

	m "github.com/mouse-blink/covcheck/internal/model"
)

// JSONUI implements UI by writing indented JSON documents.
type JSONUI struct {
	output io.Writer
}

// NewJSONUI creates a new JSONUI.
func NewJSONUI(output io.Writer) *JSONUI {
	return &JSONUI{output: output}
}

type resultJSON struct {
	Scenario string          `json:"scenario"`
	Policy   string          `json:"policy"`
	Verdict  string          `json:"verdict"`
	Report   *reportJSON     `json:"report,omitempty"`
	Rejected []stepTraceJSON `json:"rejected,omitempty"`
}

type reportJSON struct {
	ActualElementType string          `json:"actualElementType"`
	StaticElementType string          `json:"staticElementType"`
	WrittenValueType  string          `json:"writtenValueType"`
	CommonAncestor    string          `json:"commonAncestor,omitempty"`
	ValuePath         []m.ClassID     `json:"valuePath,omitempty"`
	ArrayPath         []m.ClassID     `json:"arrayPath,omitempty"`
	Steps             []stepTraceJSON `json:"steps"`
}

type stepTraceJSON struct {
	Kind   string      `json:"kind"`
	Types  []m.ClassID `json:"types"`
	Detail string      `json:"detail,omitempty"`
}

type explorationJSON struct {
	Policy     string       `json:"policy"`
	Classes    int          `json:"classes"`
	Scenarios  int          `json:"scenarios"`
	Violations int          `json:"violations"`
	Rejected   int          `json:"rejected"`
	Reports    []reportJSON `json:"reports"`
}

// DisplayResults writes the results as a JSON array.
func (j *JSONUI) DisplayResults(results []m.Result) error {
	out := make([]resultJSON, 0, len(results))

	for _, result := range results {
		entry := resultJSON{
			Scenario: result.Scenario,
			Policy:   string(result.Policy),
			Verdict:  string(result.Verdict),
			Rejected: toStepsJSON(result.Rejected),
		}

		if result.Report != nil {
			report := toReportJSON(*result.Report)
			entry.Report = &report
		}

		out = append(out, entry)
	}

	return j.encode(out)
}

// DisplayExploration writes the exploration summary as a JSON object.
func (j *JSONUI) DisplayExploration(summary m.ExploreSummary) error {
	out := explorationJSON{
		Policy:     string(summary.Policy),
		Classes:    summary.Classes,
		Scenarios:  summary.Scenarios,
		Violations: summary.Violations,
		Rejected:   summary.Rejected,
		Reports:    make([]reportJSON, 0, len(summary.Reports)),
	}

	for _, report := range summary.Reports {
		out.Reports = append(out.Reports, toReportJSON(report))
	}

	return j.encode(out)
}

func (j *JSONUI) encode(v any) error {
	enc := json.NewEncoder(j.output)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func toReportJSON(r m.Report) reportJSON {
	return reportJSON{
		ActualElementType: string(r.ActualElementType),
		StaticElementType: string(r.StaticElementType),
		WrittenValueType:  string(r.WrittenValueType),
		CommonAncestor:    string(r.CommonAncestor),
		ValuePath:         r.ValuePath,
		ArrayPath:         r.ArrayPath,
		Steps:             toStepsJSON(r.Steps),
	}
}

func toStepsJSON(steps []m.StepTrace) []stepTraceJSON {
	if len(steps) == 0 {
		return nil
	}

	out := make([]stepTraceJSON, len(steps))
	for i, step := range steps {
		out[i] = stepTraceJSON{Kind: string(step.Kind), Types: step.Types, Detail: step.Detail}
	}

	return out
}
