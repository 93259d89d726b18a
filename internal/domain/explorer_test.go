package domain

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/covcheck/internal/model"
)

func TestExplorer_Scenarios(t *testing.T) {
	explorer := NewExplorer(NewChecker(animalGraph(t)))

	scenarios := explorer.Scenarios(2)
	// 9 widening chains (Animal 1, Mammal 2, Cat 4, Crocodile 2) times 4 written types.
	require.Len(t, scenarios, 36)

	names := make(map[string]bool, len(scenarios))
	for _, scenario := range scenarios {
		names[scenario.Name] = true
	}

	assert.Len(t, names, 36, "scenario names must be unique")
	assert.True(t, names["Mammal[] as Animal[] <- Crocodile"])
	assert.True(t, names["Cat[] as Mammal[] as Animal[] <- Crocodile"])
	assert.True(t, names["Animal[] <- Cat"])

	assert.Len(t, explorer.Scenarios(0), 16)
	assert.Len(t, explorer.Scenarios(-1), 36)
}

func TestExplorer_Explore(t *testing.T) {
	explorer := NewExplorer(NewChecker(animalGraph(t)))

	tests := []struct {
		policy     m.Policy
		violations int
		rejected   int
	}{
		{policy: m.PolicyUnsound, violations: 12, rejected: 10},
		{policy: m.PolicySound, violations: 0, rejected: 22},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			summary, err := explorer.Explore(context.Background(), ExploreOptions{
				Policy:  tt.policy,
				Depth:   2,
				Threads: 4,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.policy, summary.Policy)
			assert.Equal(t, 4, summary.Classes)
			assert.Equal(t, 36, summary.Scenarios)
			assert.Equal(t, tt.violations, summary.Violations)
			assert.Equal(t, tt.rejected, summary.Rejected)
			assert.Len(t, summary.Reports, tt.violations)
			assert.True(t, slices.IsSortedFunc(summary.Reports, func(a, b m.Report) int {
				return strings.Compare(a.Scenario, b.Scenario)
			}), "reports must be sorted by scenario name")
		})
	}
}

func TestExplorer_SoundPolicyNeverViolates(t *testing.T) {
	graph, err := BuildTypeGraph([]m.ClassDecl{
		{Name: "Object"},
		{Name: "A", Parent: "Object"},
		{Name: "B", Parent: "A"},
		{Name: "C", Parent: "B"},
		{Name: "D", Parent: "A"},
		{Name: "E", Parent: "Object"},
		{Name: "F", Parent: "E"},
		{Name: "Island"},
		{Name: "Shore", Parent: "Island"},
	})
	require.NoError(t, err)

	summary, err := NewExplorer(NewChecker(graph)).Explore(context.Background(), ExploreOptions{
		Policy:  m.PolicySound,
		Depth:   -1,
		Threads: 3,
	})
	require.NoError(t, err)

	assert.NotZero(t, summary.Scenarios)
	assert.Zero(t, summary.Violations)
	assert.Empty(t, summary.Reports)
}

func TestExplorer_ShardsPartitionScenarios(t *testing.T) {
	explorer := NewExplorer(NewChecker(animalGraph(t)))

	scenarios, violations := 0, 0

	for shard := range 3 {
		summary, err := explorer.Explore(context.Background(), ExploreOptions{
			Policy:          m.PolicyUnsound,
			Depth:           2,
			Threads:         2,
			ShardIndex:      shard,
			TotalShardCount: 3,
		})
		require.NoError(t, err)

		assert.Equal(t, 12, summary.Scenarios)

		scenarios += summary.Scenarios
		violations += summary.Violations
	}

	assert.Equal(t, 36, scenarios)
	assert.Equal(t, 12, violations)
}

func TestExplorer_Explore_Errors(t *testing.T) {
	explorer := NewExplorer(NewChecker(animalGraph(t)))

	_, err := explorer.Explore(context.Background(), ExploreOptions{Policy: "lenient"})
	require.ErrorIs(t, err, ErrUnknownPolicy)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = explorer.Explore(ctx, ExploreOptions{Policy: m.PolicySound, Depth: 2})
	assert.ErrorIs(t, err, context.Canceled)
}
