package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/covcheck/internal/model"
)

func writeSuite(t *testing.T, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return m.Path(path)
}

func TestLocalSuiteStore_Builtin(t *testing.T) {
	store := NewSuiteStore()

	suite, err := store.LoadSuite("")
	require.NoError(t, err)

	assert.Equal(t, "unsound-arrays", suite.Name)
	assert.Equal(t, []m.ClassDecl{
		{Name: "Animal"},
		{Name: "Mammal", Parent: "Animal"},
		{Name: "Cat", Parent: "Mammal"},
		{Name: "Crocodile", Parent: "Animal"},
	}, suite.Classes)

	require.NotEmpty(t, suite.Scenarios)
	assert.Equal(t, m.Scenario{
		Name: "mammals-as-animals",
		Steps: []m.Step{
			m.Create("mammals", "Mammal", "Cat"),
			m.Bind("animals", "mammals", "Animal"),
			m.Write("animals", 0, "Crocodile"),
		},
	}, suite.Scenarios[0])
}

func TestLocalSuiteStore_LoadSuite(t *testing.T) {
	path := writeSuite(t, `
name: shapes
classes:
  - name: Shape
  - name: Circle
    parent: Shape
  - name: Square
    parent: Shape
scenarios:
  - name: circles
    policies: [sound]
    steps:
      - {op: create, ref: circles, element: Circle, length: 2}
      - {op: bind, ref: shapes, source: circles, element: Shape}
      - {op: write, ref: shapes, index: 1, value: Square}
`)

	suite, err := NewSuiteStore().LoadSuite(path)
	require.NoError(t, err)

	assert.Equal(t, "shapes", suite.Name)
	require.Len(t, suite.Scenarios, 1)

	scenario := suite.Scenarios[0]
	assert.Equal(t, []m.Policy{m.PolicySound}, scenario.Policies)
	assert.Equal(t, m.Step{Kind: m.StepCreate, Ref: "circles", Element: "Circle", Length: 2}, scenario.Steps[0])
	assert.Equal(t, m.Write("shapes", 1, "Square"), scenario.Steps[2])
}

func TestLocalSuiteStore_LoadSuite_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "no classes",
			content: "name: empty\n",
			want:    "Classes",
		},
		{
			name: "unknown op",
			content: `
classes: [{name: A}]
scenarios:
  - name: s
    steps: [{op: read, ref: a}]
`,
			want: "oneof",
		},
		{
			name: "bind without source",
			content: `
classes: [{name: A}]
scenarios:
  - name: s
    steps: [{op: bind, ref: b, element: A}]
`,
			want: "Source",
		},
		{
			name: "write without value",
			content: `
classes: [{name: A}]
scenarios:
  - name: s
    steps: [{op: write, ref: a}]
`,
			want: "Value",
		},
		{
			name: "create without element",
			content: `
classes: [{name: A}]
scenarios:
  - name: s
    steps: [{op: create, ref: a}]
`,
			want: "Element",
		},
		{
			name: "negative index",
			content: `
classes: [{name: A}]
scenarios:
  - name: s
    steps: [{op: write, ref: a, index: -1, value: A}]
`,
			want: "Index",
		},
		{
			name: "unknown policy",
			content: `
classes: [{name: A}]
scenarios:
  - name: s
    policies: [lenient]
    steps: [{op: create, ref: a, element: A}]
`,
			want: "Policies",
		},
		{
			name: "duplicate scenario name",
			content: `
classes: [{name: A}]
scenarios:
  - name: x
    steps: [{op: create, ref: a, element: A}]
  - name: x
    steps: [{op: create, ref: b, element: A}]
`,
			want: `Scenarios failed "unique"`,
		},
		{
			name:    "unknown field",
			content: "classes: [{name: A, super: B}]\n",
			want:    "super",
		},
		{
			name:    "malformed yaml",
			content: "classes: [\n",
			want:    "decode YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSuiteStore().LoadSuite(writeSuite(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLocalSuiteStore_LoadSuite_FileErrors(t *testing.T) {
	_, err := NewSuiteStore().LoadSuite(m.Path(filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, err)

	big := writeSuite(t, "name: big\n"+strings.Repeat("#", MaxSuiteFileSize))
	_, err = NewSuiteStore().LoadSuite(big)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}
