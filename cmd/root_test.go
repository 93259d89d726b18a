package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/covcheck/internal/domain"
	domainmocks "github.com/mouse-blink/covcheck/internal/domain/mocks"
	m "github.com/mouse-blink/covcheck/internal/model"
)

// newTestRoot builds a fresh command tree wired to mockWorkflow.
func newTestRoot(t *testing.T, mockWorkflow domain.Workflow) *cobra.Command {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd(), newExploreCmd(), newViewCmd(), newDemoCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return cmd
}

func TestRootCmd_InvalidFormat(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow)

	cmd.SetArgs([]string{"--format", "xml", "check"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestRootCmd_VerboseSetsDebugLevel(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow)

	mockWorkflow.On("View", mock.Anything).Return(nil)

	cmd.SetArgs([]string{"--verbose", "view"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "DEBUG", logLevel.Level().String())
}

func TestCheckCmd_DefaultsToBuiltinSuite(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow)

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Suite == "" &&
			len(args.Policies) == 0 &&
			args.Threads == 1 &&
			args.Reports == "" &&
			!args.FailOnViolation
	})).Return(nil)

	cmd.SetArgs([]string{"check"})
	require.NoError(t, cmd.Execute())
}

func TestCheckCmd_PassesFlagsThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow)

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Suite == m.Path("suite.yaml") &&
			len(args.Policies) == 1 && args.Policies[0] == m.PolicySound &&
			args.Threads == 4 &&
			args.Reports == m.Path("out") &&
			args.FailOnViolation
	})).Return(nil)

	cmd.SetArgs([]string{"--reports", "out", "check", "-P", "sound", "-p", "4", "--save", "--fail-on-violation", "suite.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestCheckCmd_SaveUsesDefaultReportsDir(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow)

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Reports == m.Path(defaultReportsDir)
	})).Return(nil)

	cmd.SetArgs([]string{"check", "--save"})
	require.NoError(t, cmd.Execute())
}

func TestCheckCmd_UnknownPolicy(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow)

	cmd.SetArgs([]string{"check", "--policy", "lenient"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lenient")
}

func TestCheckCmd_PropagatesViolationError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow)

	failure := fmt.Errorf("%w: 1 of 2 run(s)", domain.ErrViolationsFound)
	mockWorkflow.On("Check", mock.Anything, mock.Anything).Return(failure)

	cmd.SetArgs([]string{"check", "--fail-on-violation"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrViolationsFound))
}

func TestCheckCmd_TooManyArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow)

	cmd.SetArgs([]string{"check", "a.yaml", "b.yaml"})
	require.Error(t, cmd.Execute())
}

func TestExploreCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow)

	mockWorkflow.On("Explore", mock.Anything, mock.MatchedBy(func(args domain.ExploreArgs) bool {
		return args.Suite == "" &&
			args.Policy == m.PolicyUnsound &&
			args.Depth == 2 &&
			args.Threads == 1 &&
			args.ShardIndex == 0 &&
			args.TotalShardCount == 1
	})).Return(nil)

	cmd.SetArgs([]string{"explore"})
	require.NoError(t, cmd.Execute())
}

func TestExploreCmd_WithShardAndPolicy(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow)

	mockWorkflow.On("Explore", mock.Anything, mock.MatchedBy(func(args domain.ExploreArgs) bool {
		return args.Suite == m.Path("zoo.yaml") &&
			args.Policy == m.PolicySound &&
			args.Depth == 3 &&
			args.Threads == 2 &&
			args.ShardIndex == 1 &&
			args.TotalShardCount == 3
	})).Return(nil)

	cmd.SetArgs([]string{"explore", "--policy", "sound", "--depth", "3", "--parallel", "2", "--shard", "1/3", "zoo.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestExploreCmd_UnknownPolicy(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow)

	cmd.SetArgs([]string{"explore", "--policy", "strict"})
	require.Error(t, cmd.Execute())
}

func TestDemoCmd_ChecksBuiltinUnderBothPolicies(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow)

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Suite == "" &&
			assert.ObjectsAreEqual(m.AllPolicies, args.Policies) &&
			args.Threads == 1
	})).Return(nil)

	cmd.SetArgs([]string{"demo"})
	require.NoError(t, cmd.Execute())
}

func TestParseShardFlag(t *testing.T) {
	tests := []struct {
		name      string
		shard     string
		wantIndex int
		wantTotal int
	}{
		{"empty", "", 0, 1},
		{"valid", "2/4", 2, 4},
		{"index out of range", "4/4", 0, 1},
		{"negative index", "-1/3", 0, 1},
		{"zero total", "0/0", 0, 1},
		{"garbage", "two/three", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, total := parseShardFlag(tt.shard)
			if index != tt.wantIndex || total != tt.wantTotal {
				t.Fatalf("parseShardFlag(%q) = %d/%d, want %d/%d", tt.shard, index, total, tt.wantIndex, tt.wantTotal)
			}
		})
	}
}

func TestParsePolicies(t *testing.T) {
	policies, err := parsePolicies([]string{"sound", "unsound"})
	require.NoError(t, err)
	assert.Equal(t, []m.Policy{m.PolicySound, m.PolicyUnsound}, policies)

	policies, err = parsePolicies(nil)
	require.NoError(t, err)
	assert.Empty(t, policies)

	_, err = parsePolicies([]string{"sound", "bogus"})
	require.Error(t, err)
}

func TestSuiteArg(t *testing.T) {
	assert.Equal(t, m.Path(""), suiteArg(nil))
	assert.Equal(t, m.Path("x.yaml"), suiteArg([]string{"x.yaml"}))
}
