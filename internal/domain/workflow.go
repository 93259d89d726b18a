// Package domain implements the covariance soundness checker: the type graph,
// the covariance rules and write policies, scenario replay, report building,
// exhaustive exploration and the workflow tying them to adapters and UI.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/covcheck/internal/adapter"
	"github.com/mouse-blink/covcheck/internal/controller"
	m "github.com/mouse-blink/covcheck/internal/model"
)

// CheckArgs configures a Check run.
type CheckArgs struct {
	Suite           m.Path // empty selects the built-in suite
	Policies        []m.Policy
	Threads         int
	Reports         m.Path // empty disables persistence
	FailOnViolation bool
}

// ExploreArgs configures an Explore run.
type ExploreArgs struct {
	Suite           m.Path
	Policy          m.Policy
	Depth           int
	Threads         int
	ShardIndex      int
	TotalShardCount int
}

// ViewArgs configures a View run.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the top-level operations of the CLI.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) error
	Explore(ctx context.Context, args ExploreArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	suites  adapter.SuiteStore
	reports adapter.ReportStore
	ui      controller.UI
	logger  *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(suites adapter.SuiteStore, reports adapter.ReportStore, ui controller.UI, logger *slog.Logger) Workflow {
	if logger == nil {
		logger = slog.Default()
	}

	return &workflow{
		suites:  suites,
		reports: reports,
		ui:      ui,
		logger:  logger,
	}
}

// runJob is one scenario to replay under one policy.
type runJob struct {
	scenario m.Scenario
	policy   m.Policy
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	suite, checker, err := w.load(args.Suite)
	if err != nil {
		return err
	}

	policies := args.Policies
	if len(policies) == 0 {
		policies = m.AllPolicies
	}

	jobs := planRuns(suite.Scenarios, policies)
	w.logger.Info("checking suite", "suite", suite.Name, "classes", checker.Graph().Len(), "runs", len(jobs))

	results, err := w.runAll(ctx, checker, jobs, args.Threads)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayResults(results); err != nil {
		return err
	}

	if args.Reports != "" {
		if err := w.persist(args.Reports, results); err != nil {
			return err
		}
	}

	violated := 0

	for _, result := range results {
		if result.Violated() {
			violated++
		}
	}

	w.logger.Info("check finished", "runs", len(results), "violated", violated)

	if args.FailOnViolation && violated > 0 {
		return fmt.Errorf("%w: %d of %d run(s)", ErrViolationsFound, violated, len(results))
	}

	return nil
}

func (w *workflow) Explore(ctx context.Context, args ExploreArgs) error {
	suite, checker, err := w.load(args.Suite)
	if err != nil {
		return err
	}

	w.logger.Info("exploring suite",
		"suite", suite.Name,
		"policy", args.Policy,
		"depth", args.Depth,
		"shard", fmt.Sprintf("%d/%d", args.ShardIndex, max(args.TotalShardCount, 1)))

	summary, err := NewExplorer(checker).Explore(ctx, ExploreOptions{
		Policy:          args.Policy,
		Depth:           args.Depth,
		Threads:         args.Threads,
		ShardIndex:      args.ShardIndex,
		TotalShardCount: args.TotalShardCount,
	})
	if err != nil {
		return err
	}

	w.logger.Info("exploration finished", "scenarios", summary.Scenarios, "violations", summary.Violations)

	return w.ui.DisplayExploration(summary)
}

func (w *workflow) View(args ViewArgs) error {
	results, err := w.reports.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}

	w.logger.Debug("loaded reports", "path", args.Reports, "count", len(results))

	return w.ui.DisplayResults(results)
}

// load reads a suite and builds a checker over its hierarchy.
func (w *workflow) load(path m.Path) (m.Suite, *Checker, error) {
	suite, err := w.suites.LoadSuite(path)
	if err != nil {
		return m.Suite{}, nil, fmt.Errorf("failed to load suite: %w", err)
	}

	graph, err := BuildTypeGraph(suite.Classes)
	if err != nil {
		return m.Suite{}, nil, fmt.Errorf("invalid hierarchy in suite %q: %w", suite.Name, err)
	}

	return suite, NewChecker(graph), nil
}

// planRuns pairs every scenario with each requested policy it allows.
// Repeated policies run once.
func planRuns(scenarios []m.Scenario, policies []m.Policy) []runJob {
	var jobs []runJob

	var unique []m.Policy
	for _, policy := range policies {
		if !slices.Contains(unique, policy) {
			unique = append(unique, policy)
		}
	}

	policies = unique

	for _, scenario := range scenarios {
		for _, policy := range policies {
			if len(scenario.Policies) > 0 && !slices.Contains(scenario.Policies, policy) {
				continue
			}

			jobs = append(jobs, runJob{scenario: scenario, policy: policy})
		}
	}

	return jobs
}

// runAll replays jobs on a bounded worker pool, keeping results in job order.
func (w *workflow) runAll(ctx context.Context, checker *Checker, jobs []runJob, threads int) ([]m.Result, error) {
	if threads <= 0 {
		threads = 1
	}

	results := make([]m.Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := checker.Run(job.scenario, job.policy)
			if err != nil {
				return err
			}

			w.logger.Debug("run finished", "scenario", job.scenario.Name, "policy", job.policy, "verdict", result.Verdict)
			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// persist replaces the reports directory content with results.
func (w *workflow) persist(path m.Path, results []m.Result) error {
	if err := w.reports.CleanReports(path); err != nil {
		return fmt.Errorf("failed to clean reports: %w", err)
	}

	if err := w.reports.SaveReports(path, results); err != nil {
		return fmt.Errorf("failed to save reports: %w", err)
	}

	if err := w.reports.RegenerateIndex(path); err != nil {
		return fmt.Errorf("failed to index reports: %w", err)
	}

	w.logger.Info("reports saved", "path", path, "count", len(results))

	return nil
}
