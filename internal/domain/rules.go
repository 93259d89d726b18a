package domain

import (
	m "github.com/mouse-blink/covcheck/internal/model"
)

// RuleEngine answers covariance questions against a type graph.
type RuleEngine struct {
	graph *TypeGraph
}

// NewRuleEngine creates a rule engine backed by graph.
func NewRuleEngine(graph *TypeGraph) *RuleEngine {
	return &RuleEngine{graph: graph}
}

// CanAssign reports whether an array of sourceElem may be assigned to a
// variable of array-of-targetElem type. Arrays are covariant here.
func (r *RuleEngine) CanAssign(sourceElem, targetElem m.ClassID) bool {
	return r.graph.IsSubtype(sourceElem, targetElem)
}

// CanWriteUnsound checks a write only against the static element type of the
// reference used at the access site.
func (r *RuleEngine) CanWriteUnsound(staticElem, valueType m.ClassID) bool {
	return r.graph.IsSubtype(valueType, staticElem)
}

// CanWriteSound checks a write against the element type the array was created with.
func (r *RuleEngine) CanWriteSound(actualElem, valueType m.ClassID) bool {
	return r.graph.IsSubtype(valueType, actualElem)
}
