package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/covcheck/internal/model"
)

const (
	reportExt     = ".yaml"
	indexFileName = "_index.yaml"
	reportFileMod = 0o600
	reportDirMod  = 0o750
)

// reportFileName matches the files SaveReports writes. Nothing else in the
// reports directory is read or removed.
var reportFileName = regexp.MustCompile(`^[0-9a-f]{16}\.yaml$`)

// ReportStore persists and retrieves run results.
type ReportStore interface {
	SaveReports(path m.Path, results []m.Result) error
	LoadReports(path m.Path) ([]m.Result, error)
	RegenerateIndex(path m.Path) error
	CleanReports(path m.Path) error
}

// LocalReportStore writes one YAML file per result, named by a hash of the
// result's scenario and policy.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type resultYAML struct {
	Scenario string          `yaml:"scenario"`
	Policy   string          `yaml:"policy"`
	Verdict  string          `yaml:"verdict"`
	Report   *reportYAML     `yaml:"report,omitempty"`
	Rejected []stepTraceYAML `yaml:"rejected,omitempty"`
}

type reportYAML struct {
	ActualElementType string          `yaml:"actual_element_type"`
	StaticElementType string          `yaml:"static_element_type"`
	WrittenValueType  string          `yaml:"written_value_type"`
	CommonAncestor    string          `yaml:"common_ancestor,omitempty"`
	ValuePath         []string        `yaml:"value_path,omitempty"`
	ArrayPath         []string        `yaml:"array_path,omitempty"`
	Steps             []stepTraceYAML `yaml:"steps"`
}

type stepTraceYAML struct {
	Kind   string   `yaml:"kind"`
	Types  []string `yaml:"types"`
	Detail string   `yaml:"detail,omitempty"`
}

type indexEntry struct {
	TotalRuns    int      `yaml:"total_runs"`
	ViolatedRuns int      `yaml:"violated_runs"`
	SafeRuns     int      `yaml:"safe_runs"`
	Rejected     int      `yaml:"rejected_writes"`
	Reports      []string `yaml:"reports"`
}

func (rs *LocalReportStore) SaveReports(path m.Path, results []m.Result) error {
	if path == "" {
		return errors.New("reports path is empty")
	}

	if err := os.MkdirAll(string(path), reportDirMod); err != nil {
		return fmt.Errorf("failed to create reports dir %s: %w", path, err)
	}

	written := make(map[string]m.Result, len(results))

	for _, result := range results {
		name := rs.computeReportHash(reportKey(result)) + reportExt
		if prev, exists := written[name]; exists {
			return fmt.Errorf("duplicate result %s/%s collides with %s/%s in %s",
				result.Scenario, result.Policy, prev.Scenario, prev.Policy, name)
		}

		written[name] = result

		data, err := yaml.Marshal(toResultYAML(result))
		if err != nil {
			return fmt.Errorf("failed to encode result %s/%s: %w", result.Scenario, result.Policy, err)
		}

		file := filepath.Join(string(path), name)
		if err := os.WriteFile(file, data, reportFileMod); err != nil {
			return fmt.Errorf("failed to write report %s: %w", file, err)
		}
	}

	return nil
}

func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.Result, error) {
	files, err := rs.reportFiles(path)
	if err != nil {
		return nil, err
	}

	results := make([]m.Result, 0, len(files))

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read report %s: %w", file, err)
		}

		var raw resultYAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", file, err)
		}

		results = append(results, raw.toModel())
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Scenario != results[j].Scenario {
			return results[i].Scenario < results[j].Scenario
		}

		return results[i].Policy < results[j].Policy
	})

	return results, nil
}

// RegenerateIndex rewrites _index.yaml from the reports currently on disk.
func (rs *LocalReportStore) RegenerateIndex(path m.Path) error {
	files, err := rs.reportFiles(path)
	if err != nil {
		return err
	}

	results, err := rs.LoadReports(path)
	if err != nil {
		return err
	}

	idx := indexEntry{TotalRuns: len(results)}

	for _, file := range files {
		idx.Reports = append(idx.Reports, filepath.Base(file))
	}

	for _, result := range results {
		idx.Rejected += len(result.Rejected)

		if result.Violated() {
			idx.ViolatedRuns++
		} else {
			idx.SafeRuns++
		}
	}

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}

	indexPath := filepath.Join(string(path), indexFileName)
	if err := os.WriteFile(indexPath, data, reportFileMod); err != nil {
		return fmt.Errorf("failed to write index %s: %w", indexPath, err)
	}

	return nil
}

// CleanReports removes the report files and the index. Other files in the
// directory are left alone. A missing directory is not an error.
func (rs *LocalReportStore) CleanReports(path m.Path) error {
	if path == "" {
		return errors.New("reports path is empty")
	}

	entries, err := os.ReadDir(string(path))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to read reports dir %s: %w", path, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (name != indexFileName && !reportFileName.MatchString(name)) {
			continue
		}

		if err := os.Remove(filepath.Join(string(path), name)); err != nil {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}

	return nil
}

// reportFiles lists report files in path, sorted. The index and foreign files are skipped.
func (rs *LocalReportStore) reportFiles(path m.Path) ([]string, error) {
	if path == "" {
		return nil, errors.New("reports path is empty")
	}

	entries, err := os.ReadDir(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read reports dir %s: %w", path, err)
	}

	var files []string

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !reportFileName.MatchString(name) {
			continue
		}

		files = append(files, filepath.Join(string(path), name))
	}

	sort.Strings(files)

	return files, nil
}

// reportKey identifies a result within one save: a suite has unique scenario
// names and each scenario runs once per policy.
func reportKey(result m.Result) []byte {
	return []byte(result.Scenario + "\x00" + string(result.Policy))
}

// computeReportHash returns the first 16 hex chars of the SHA-256 of data.
func (rs *LocalReportStore) computeReportHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}

func toResultYAML(result m.Result) resultYAML {
	out := resultYAML{
		Scenario: result.Scenario,
		Policy:   string(result.Policy),
		Verdict:  string(result.Verdict),
		Rejected: toStepsYAML(result.Rejected),
	}

	if r := result.Report; r != nil {
		out.Report = &reportYAML{
			ActualElementType: string(r.ActualElementType),
			StaticElementType: string(r.StaticElementType),
			WrittenValueType:  string(r.WrittenValueType),
			CommonAncestor:    string(r.CommonAncestor),
			ValuePath:         classStrings(r.ValuePath),
			ArrayPath:         classStrings(r.ArrayPath),
			Steps:             toStepsYAML(r.Steps),
		}
	}

	return out
}

func (raw resultYAML) toModel() m.Result {
	result := m.Result{
		Scenario: raw.Scenario,
		Policy:   m.Policy(raw.Policy),
		Verdict:  m.Verdict(raw.Verdict),
		Rejected: fromStepsYAML(raw.Rejected),
	}

	if r := raw.Report; r != nil {
		result.Report = &m.Report{
			Scenario:          raw.Scenario,
			Policy:            m.Policy(raw.Policy),
			ActualElementType: m.ClassID(r.ActualElementType),
			StaticElementType: m.ClassID(r.StaticElementType),
			WrittenValueType:  m.ClassID(r.WrittenValueType),
			CommonAncestor:    m.ClassID(r.CommonAncestor),
			ValuePath:         classIDs(r.ValuePath),
			ArrayPath:         classIDs(r.ArrayPath),
			Steps:             fromStepsYAML(r.Steps),
		}
	}

	return result
}

func toStepsYAML(steps []m.StepTrace) []stepTraceYAML {
	if len(steps) == 0 {
		return nil
	}

	out := make([]stepTraceYAML, len(steps))
	for i, step := range steps {
		out[i] = stepTraceYAML{Kind: string(step.Kind), Types: classStrings(step.Types), Detail: step.Detail}
	}

	return out
}

func fromStepsYAML(steps []stepTraceYAML) []m.StepTrace {
	if len(steps) == 0 {
		return nil
	}

	out := make([]m.StepTrace, len(steps))
	for i, step := range steps {
		out[i] = m.StepTrace{Kind: m.StepKind(step.Kind), Types: classIDs(step.Types), Detail: step.Detail}
	}

	return out
}

func classStrings(ids []m.ClassID) []string {
	if len(ids) == 0 {
		return nil
	}

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}

	return out
}

func classIDs(names []string) []m.ClassID {
	if len(names) == 0 {
		return nil
	}

	out := make([]m.ClassID, len(names))
	for i, name := range names {
		out[i] = m.ClassID(name)
	}

	return out
}
