// Package adapter contains infrastructure adapters for the covcheck CLI:
// suite loading and report persistence.
package adapter

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/covcheck/internal/model"
)

// MaxSuiteFileSize caps the size of a suite file read from disk (1MB).
const MaxSuiteFileSize = 1024 * 1024

//go:embed suites/unsound.yaml
var builtinSuiteYAML []byte

// SuiteStore loads class hierarchies and scenarios.
type SuiteStore interface {
	// LoadSuite reads a suite file. An empty path yields the built-in suite.
	LoadSuite(path m.Path) (m.Suite, error)
	// Builtin returns the embedded Animal/Mammal/Cat/Crocodile suite.
	Builtin() (m.Suite, error)
}

// LocalSuiteStore reads YAML suites from the local filesystem.
type LocalSuiteStore struct {
	validate *validator.Validate
}

// NewSuiteStore constructs a SuiteStore implementation.
func NewSuiteStore() SuiteStore {
	return &LocalSuiteStore{validate: validator.New(validator.WithRequiredStructEnabled())}
}

type suiteYAML struct {
	Name      string         `yaml:"name"`
	Classes   []classYAML    `yaml:"classes" validate:"required,min=1,dive"`
	Scenarios []scenarioYAML `yaml:"scenarios" validate:"unique=Name,dive"`
}

type classYAML struct {
	Name   string `yaml:"name" validate:"required"`
	Parent string `yaml:"parent,omitempty"`
}

type scenarioYAML struct {
	Name     string     `yaml:"name" validate:"required"`
	Policies []string   `yaml:"policies,omitempty" validate:"dive,oneof=unsound sound"`
	Steps    []stepYAML `yaml:"steps" validate:"required,min=1,dive"`
}

type stepYAML struct {
	Op      string   `yaml:"op" validate:"required,oneof=create bind write"`
	Ref     string   `yaml:"ref" validate:"required"`
	Source  string   `yaml:"source,omitempty" validate:"required_if=Op bind"`
	Element string   `yaml:"element,omitempty" validate:"required_unless=Op write"`
	Length  int      `yaml:"length,omitempty" validate:"min=0"`
	Values  []string `yaml:"values,omitempty" validate:"dive,required"`
	Index   int      `yaml:"index,omitempty" validate:"min=0"`
	Value   string   `yaml:"value,omitempty" validate:"required_if=Op write"`
}

func (s *LocalSuiteStore) LoadSuite(path m.Path) (m.Suite, error) {
	if path == "" {
		return s.Builtin()
	}

	info, err := os.Stat(string(path))
	if err != nil {
		return m.Suite{}, fmt.Errorf("failed to stat suite %s: %w", path, err)
	}

	if info.Size() > MaxSuiteFileSize {
		return m.Suite{}, fmt.Errorf("suite %s is %d bytes, limit is %d", path, info.Size(), MaxSuiteFileSize)
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Suite{}, fmt.Errorf("failed to read suite %s: %w", path, err)
	}

	suite, err := s.parse(data)
	if err != nil {
		return m.Suite{}, fmt.Errorf("invalid suite %s: %w", path, err)
	}

	return suite, nil
}

func (s *LocalSuiteStore) Builtin() (m.Suite, error) {
	return s.parse(builtinSuiteYAML)
}

func (s *LocalSuiteStore) parse(data []byte) (m.Suite, error) {
	var raw suiteYAML

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&raw); err != nil {
		return m.Suite{}, fmt.Errorf("decode YAML: %w", err)
	}

	if err := s.validate.Struct(raw); err != nil {
		return m.Suite{}, describeValidation(err)
	}

	return raw.toModel(), nil
}

// describeValidation flattens validator errors into one readable error.
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}

	return fmt.Errorf("validation: %s", strings.Join(msgs, "; "))
}

func (raw suiteYAML) toModel() m.Suite {
	suite := m.Suite{
		Name:      raw.Name,
		Classes:   make([]m.ClassDecl, len(raw.Classes)),
		Scenarios: make([]m.Scenario, len(raw.Scenarios)),
	}

	for i, c := range raw.Classes {
		suite.Classes[i] = m.ClassDecl{Name: m.ClassID(c.Name), Parent: m.ClassID(c.Parent)}
	}

	for i, sc := range raw.Scenarios {
		scenario := m.Scenario{Name: sc.Name, Steps: make([]m.Step, len(sc.Steps))}

		for _, p := range sc.Policies {
			scenario.Policies = append(scenario.Policies, m.Policy(p))
		}

		for j, st := range sc.Steps {
			step := m.Step{
				Kind:    m.StepKind(st.Op),
				Ref:     st.Ref,
				Source:  st.Source,
				Element: m.ClassID(st.Element),
				Length:  st.Length,
				Index:   st.Index,
				Value:   m.ClassID(st.Value),
			}

			for _, v := range st.Values {
				step.Values = append(step.Values, m.ClassID(v))
			}

			scenario.Steps[j] = step
		}

		suite.Scenarios[i] = scenario
	}

	return suite
}
