package domain

import (
	"fmt"

	m "github.com/mouse-blink/covcheck/internal/model"
)

// ArrayInstance is an array whose actual element type is fixed at creation.
type ArrayInstance struct {
	actual m.ClassID
	slots  []m.Value
	trace  []m.StepTrace
}

// Actual returns the element type the array was created with.
func (a *ArrayInstance) Actual() m.ClassID {
	return a.actual
}

// Len returns the number of slots.
func (a *ArrayInstance) Len() int {
	return len(a.slots)
}

// Slot returns the value stored at index i.
func (a *ArrayInstance) Slot(i int) m.Value {
	return a.slots[i]
}

func (a *ArrayInstance) record(step m.StepTrace) {
	a.trace = append(a.trace, step)
}

// View is a reference to an array under a static element type.
type View struct {
	array  *ArrayInstance
	static m.ClassID
}

// Array returns the underlying array.
func (v *View) Array() *ArrayInstance {
	return v.array
}

// Static returns the element type the view exposes.
func (v *View) Static() m.ClassID {
	return v.static
}

// Violation records a permitted write that broke the array's actual element type.
type Violation struct {
	Actual m.ClassID
	Static m.ClassID
	Value  m.ClassID
	Index  int
	Steps  []m.StepTrace
}

// Checker replays scenarios against a type graph. It holds no per-run state
// and is safe for concurrent use once the graph is built.
type Checker struct {
	graph *TypeGraph
	rules *RuleEngine
}

// NewChecker creates a checker over graph.
func NewChecker(graph *TypeGraph) *Checker {
	return &Checker{graph: graph, rules: NewRuleEngine(graph)}
}

// Graph returns the type graph the checker runs against.
func (c *Checker) Graph() *TypeGraph {
	return c.graph
}

// Session is the state of a single replay.
type Session struct {
	graph    *TypeGraph
	rules    *RuleEngine
	policy   WritePolicy
	rejected []m.StepTrace
}

// NewSession starts a fresh replay under policy p.
func (c *Checker) NewSession(p m.Policy) (*Session, error) {
	policy, err := PolicyFor(p)
	if err != nil {
		return nil, err
	}

	return &Session{graph: c.graph, rules: c.rules, policy: policy}, nil
}

// Rejected returns the writes the policy refused so far.
func (s *Session) Rejected() []m.StepTrace {
	out := make([]m.StepTrace, len(s.rejected))
	copy(out, s.rejected)

	return out
}

// Create allocates an array of element type elem with max(length, len(values))
// slots. Initial values must be subtypes of elem.
func (s *Session) Create(elem m.ClassID, length int, values ...m.ClassID) (*View, error) {
	if !s.graph.Has(elem) {
		return nil, inputError(ErrInvalidElementType, string(elem))
	}

	if length < 0 {
		return nil, inputErrorf(ErrInvalidStep, fmt.Sprint(length), "negative array length")
	}

	array := &ArrayInstance{
		actual: elem,
		slots:  make([]m.Value, max(length, len(values))),
	}

	for i, value := range values {
		if !s.graph.Has(value) {
			return nil, inputError(ErrUnknownClass, string(value))
		}

		if !s.graph.IsSubtype(value, elem) {
			return nil, inputErrorf(ErrInvalidInitialValue, string(value), "slot %d of %s array", i, elem)
		}

		array.slots[i] = m.Value{Type: value}
	}

	array.record(m.StepTrace{
		Kind:   m.StepCreate,
		Types:  []m.ClassID{elem},
		Detail: fmt.Sprintf("length %d", array.Len()),
	})

	return &View{array: array, static: elem}, nil
}

// Bind views the array behind view under static element type static.
// The array's actual element type must be a subtype of static; the source
// view's static type only appears in the trace.
func (s *Session) Bind(view *View, static m.ClassID) (*View, error) {
	if !s.graph.Has(static) {
		return nil, inputError(ErrInvalidElementType, string(static))
	}

	if !s.rules.CanAssign(view.array.actual, static) {
		return nil, inputErrorf(ErrIncompatibleBinding, string(static), "%s array is not assignable to %s array", view.array.actual, static)
	}

	view.array.record(m.StepTrace{
		Kind:  m.StepBind,
		Types: []m.ClassID{view.static, static},
	})

	return &View{array: view.array, static: static}, nil
}

// Write stores value at index through view. The policy decides whether the
// write happens; a permitted write is then checked against the array's
// actual element type and a Violation is returned if it does not fit.
// A nil Violation with a nil error means the write was either safe or rejected.
func (s *Session) Write(view *View, index int, value m.ClassID) (*Violation, error) {
	if !s.graph.Has(value) {
		return nil, inputError(ErrUnknownClass, string(value))
	}

	array := view.array
	if index < 0 || index >= array.Len() {
		return nil, inputErrorf(ErrIndexOutOfRange, fmt.Sprint(index), "array has %d slot(s)", array.Len())
	}

	target := WriteTarget{Actual: array.actual, Static: view.static}
	step := m.StepTrace{
		Kind:   m.StepWrite,
		Types:  []m.ClassID{view.static, value},
		Detail: fmt.Sprintf("slot %d", index),
	}

	if !s.policy.Permits(s.rules, target, value) {
		step.Detail = fmt.Sprintf("slot %d, rejected by %s policy", index, s.policy.Policy())
		array.record(step)
		s.rejected = append(s.rejected, step)

		return nil, nil
	}

	array.slots[index] = m.Value{Type: value}
	array.record(step)

	if s.graph.IsSubtype(value, array.actual) {
		return nil, nil
	}

	steps := make([]m.StepTrace, len(array.trace))
	copy(steps, array.trace)

	return &Violation{
		Actual: array.actual,
		Static: view.static,
		Value:  value,
		Index:  index,
		Steps:  steps,
	}, nil
}

// Run replays scenario under policy p. Replay stops at the first violation.
func (c *Checker) Run(scenario m.Scenario, p m.Policy) (m.Result, error) {
	session, err := c.NewSession(p)
	if err != nil {
		return m.Result{}, err
	}

	refs := make(map[string]*View)

	for i, step := range scenario.Steps {
		violation, err := session.apply(refs, step)
		if err != nil {
			return m.Result{}, fmt.Errorf("scenario %q step %d (%s): %w", scenario.Name, i+1, step.Kind, err)
		}

		if violation != nil {
			report := BuildReport(c.graph, scenario.Name, p, *violation)

			return m.Result{
				Scenario: scenario.Name,
				Policy:   p,
				Verdict:  m.VerdictViolated,
				Report:   &report,
				Rejected: session.Rejected(),
			}, nil
		}
	}

	return m.Result{
		Scenario: scenario.Name,
		Policy:   p,
		Verdict:  m.VerdictSafe,
		Rejected: session.Rejected(),
	}, nil
}

// apply executes one scenario step against the named references.
func (s *Session) apply(refs map[string]*View, step m.Step) (*Violation, error) {
	if step.Ref == "" {
		return nil, inputErrorf(ErrInvalidStep, string(step.Kind), "missing reference name")
	}

	switch step.Kind {
	case m.StepCreate:
		if _, exists := refs[step.Ref]; exists {
			return nil, inputError(ErrDuplicateReference, step.Ref)
		}

		view, err := s.Create(step.Element, step.Length, step.Values...)
		if err != nil {
			return nil, err
		}

		refs[step.Ref] = view

		return nil, nil
	case m.StepBind:
		if _, exists := refs[step.Ref]; exists {
			return nil, inputError(ErrDuplicateReference, step.Ref)
		}

		source, ok := refs[step.Source]
		if !ok {
			return nil, inputError(ErrUnknownReference, step.Source)
		}

		view, err := s.Bind(source, step.Element)
		if err != nil {
			return nil, err
		}

		refs[step.Ref] = view

		return nil, nil
	case m.StepWrite:
		view, ok := refs[step.Ref]
		if !ok {
			return nil, inputError(ErrUnknownReference, step.Ref)
		}

		return s.Write(view, step.Index, step.Value)
	default:
		return nil, inputErrorf(ErrInvalidStep, string(step.Kind), "unknown step kind")
	}
}
