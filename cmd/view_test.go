package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/covcheck/internal/domain"
	domainmocks "github.com/mouse-blink/covcheck/internal/domain/mocks"
	m "github.com/mouse-blink/covcheck/internal/model"
)

func TestViewCmd_UsesRootReportsFlagByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow)

	mockWorkflow.On("View", mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path(defaultReportsDir)
	})).Return(nil)

	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RootReportsFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow)

	mockWorkflow.On("View", mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path("saved")
	})).Return(nil)

	cmd.SetArgs([]string{"--reports", "saved", "view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RejectsArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow)

	cmd.SetArgs([]string{"view", "extra"})
	require.Error(t, cmd.Execute())
}
