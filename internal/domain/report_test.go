package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/covcheck/internal/model"
)

func TestBuildReport(t *testing.T) {
	graph := animalGraph(t)
	violation := Violation{
		Actual: cat,
		Static: animal,
		Value:  crocodile,
		Steps: []m.StepTrace{
			{Kind: m.StepCreate, Types: []m.ClassID{cat}},
			{Kind: m.StepBind, Types: []m.ClassID{cat, animal}},
			{Kind: m.StepWrite, Types: []m.ClassID{animal, crocodile}},
		},
	}

	report := BuildReport(graph, "cats", m.PolicyUnsound, violation)

	assert.Equal(t, "cats", report.Scenario)
	assert.Equal(t, m.PolicyUnsound, report.Policy)
	assert.Equal(t, animal, report.CommonAncestor)
	assert.Equal(t, []m.ClassID{crocodile}, report.ValuePath)
	assert.Equal(t, []m.ClassID{cat, mammal}, report.ArrayPath)
	assert.Equal(t, violation.Steps, report.Steps)

	// The report owns its trace.
	violation.Steps[0].Types[0] = "Changed"
	assert.Equal(t, cat, report.Steps[0].Types[0])

	again := BuildReport(graph, "cats", m.PolicyUnsound, violation)
	again.Steps[0].Types[0] = cat
	assert.Equal(t, report, again)
}

func TestBuildReport_DisjointTrees(t *testing.T) {
	graph, err := BuildTypeGraph([]m.ClassDecl{{Name: animal}, {Name: "Rock"}})
	require.NoError(t, err)

	report := BuildReport(graph, "rocks", m.PolicyUnsound, Violation{Actual: animal, Static: animal, Value: "Rock"})

	assert.Empty(t, report.CommonAncestor)
	assert.Nil(t, report.ValuePath)
	assert.Nil(t, report.ArrayPath)
	assert.Contains(t, report.Format(), "Rock and Animal share no ancestor")
}
