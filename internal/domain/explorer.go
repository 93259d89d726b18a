package domain

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/covcheck/internal/model"
)

// ExploreOptions configures an exhaustive exploration.
type ExploreOptions struct {
	Policy          m.Policy
	Depth           int // maximum number of widening binds per scenario
	Threads         int
	ShardIndex      int
	TotalShardCount int
}

// Explorer enumerates every create/bind/write scenario a hierarchy admits
// and runs them under a policy.
type Explorer interface {
	Explore(ctx context.Context, opts ExploreOptions) (m.ExploreSummary, error)
	Scenarios(depth int) []m.Scenario
}

type explorer struct {
	checker *Checker
}

// NewExplorer creates an Explorer driving checker.
func NewExplorer(checker *Checker) Explorer {
	return &explorer{checker: checker}
}

// Scenarios lists, in a stable order, every scenario of the form
// create(E) -> bind(S1) -> ... -> bind(Sk) -> write(W) with 0 <= k <= depth,
// where each Si is a strict ancestor of the previous static type. A negative
// depth places no limit on the chain length.
func (e *explorer) Scenarios(depth int) []m.Scenario {
	graph := e.checker.Graph()
	classes := graph.Classes()

	var scenarios []m.Scenario

	for _, elem := range classes {
		for _, chain := range widenings(graph, elem, depth) {
			for _, value := range classes {
				scenarios = append(scenarios, exploredScenario(elem, chain, value))
			}
		}
	}

	return scenarios
}

func (e *explorer) Explore(ctx context.Context, opts ExploreOptions) (m.ExploreSummary, error) {
	if _, err := PolicyFor(opts.Policy); err != nil {
		return m.ExploreSummary{}, err
	}

	threads := opts.Threads
	if threads <= 0 {
		threads = 1
	}

	shards := opts.TotalShardCount
	if shards <= 0 {
		shards = 1
	}

	var selected []m.Scenario

	for i, scenario := range e.Scenarios(opts.Depth) {
		if i%shards == opts.ShardIndex {
			selected = append(selected, scenario)
		}
	}

	results := make([]m.Result, len(selected))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, scenario := range selected {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := e.checker.Run(scenario, opts.Policy)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return m.ExploreSummary{}, fmt.Errorf("exploration failed: %w", err)
	}

	summary := m.ExploreSummary{
		Policy:    opts.Policy,
		Classes:   e.checker.Graph().Len(),
		Scenarios: len(results),
	}

	for _, res := range results {
		summary.Rejected += len(res.Rejected)

		if res.Violated() {
			summary.Violations++
			summary.Reports = append(summary.Reports, *res.Report)
		}
	}

	slices.SortFunc(summary.Reports, func(a, b m.Report) int {
		return strings.Compare(a.Scenario, b.Scenario)
	})

	return summary, nil
}

// widenings returns every chain of strict ancestors of elem, each element an
// ancestor of the previous one, of length 0 to depth.
func widenings(graph *TypeGraph, elem m.ClassID, depth int) [][]m.ClassID {
	chains := [][]m.ClassID{nil}

	var walk func(from m.ClassID, chain []m.ClassID)

	walk = func(from m.ClassID, chain []m.ClassID) {
		if len(chain) == depth {
			return
		}

		for _, ancestor := range graph.Ancestors(from)[1:] {
			next := append(append([]m.ClassID(nil), chain...), ancestor)
			chains = append(chains, next)
			walk(ancestor, next)
		}
	}

	walk(elem, nil)

	return chains
}

func exploredScenario(elem m.ClassID, chain []m.ClassID, value m.ClassID) m.Scenario {
	name := []string{string(elem) + "[]"}
	steps := []m.Step{{Kind: m.StepCreate, Ref: "a0", Element: elem, Length: 1}}

	for i, static := range chain {
		name = append(name, string(static)+"[]")
		steps = append(steps, m.Bind(fmt.Sprintf("a%d", i+1), fmt.Sprintf("a%d", i), static))
	}

	steps = append(steps, m.Write(fmt.Sprintf("a%d", len(chain)), 0, value))

	return m.Scenario{
		Name:  strings.Join(name, " as ") + " <- " + string(value),
		Steps: steps,
	}
}
