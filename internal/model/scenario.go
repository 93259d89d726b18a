package model

// StepKind identifies the operation a scenario step performs.
type StepKind string

const (
	// StepCreate allocates an array with a fixed actual element type.
	StepCreate StepKind = "create"
	// StepBind views an existing reference under a (possibly wider) static element type.
	StepBind StepKind = "bind"
	// StepWrite stores a value into a slot through a reference.
	StepWrite StepKind = "write"
)

// Step is a single operation of a scenario.
//
// Ref names the reference the step defines (create, bind) or uses (write).
// Source is the reference a bind step widens. Element is the actual element
// type for create and the static element type for bind.
type Step struct {
	Kind    StepKind
	Ref     string
	Source  string
	Element ClassID
	Length  int
	Values  []ClassID
	Index   int
	Value   ClassID
}

// Create builds a create step.
func Create(ref string, element ClassID, values ...ClassID) Step {
	return Step{Kind: StepCreate, Ref: ref, Element: element, Values: values}
}

// Bind builds a bind step.
func Bind(ref, source string, static ClassID) Step {
	return Step{Kind: StepBind, Ref: ref, Source: source, Element: static}
}

// Write builds a write step.
func Write(ref string, index int, value ClassID) Step {
	return Step{Kind: StepWrite, Ref: ref, Index: index, Value: value}
}

// Scenario is an ordered list of steps replayed by the checker.
// Policies optionally restricts which policies the scenario runs under.
type Scenario struct {
	Name     string
	Policies []Policy
	Steps    []Step
}

// Suite bundles a class hierarchy with the scenarios to check against it.
type Suite struct {
	Name      string
	Classes   []ClassDecl
	Scenarios []Scenario
}
