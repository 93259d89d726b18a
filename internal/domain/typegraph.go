package domain

import (
	m "github.com/mouse-blink/covcheck/internal/model"
)

// TypeGraph is a nominal single-inheritance hierarchy keyed by class id.
// Nodes reference their parent by id, so the graph holds no pointer cycles.
// It is not safe for concurrent mutation; once built it is read-only and
// may be shared freely.
type TypeGraph struct {
	nodes map[m.ClassID]m.ClassNode
	order []m.ClassID
}

// NewTypeGraph creates an empty type graph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{nodes: make(map[m.ClassID]m.ClassNode)}
}

// BuildTypeGraph builds a graph from declarations given in any order.
// Duplicates are reported before parent resolution. Declarations whose
// parent never resolves, including members of a cycle, fail with
// ErrUnknownParent.
func BuildTypeGraph(decls []m.ClassDecl) (*TypeGraph, error) {
	seen := make(map[m.ClassID]bool, len(decls))

	for _, decl := range decls {
		if decl.Name == "" {
			return nil, ErrEmptyClassName
		}

		if seen[decl.Name] {
			return nil, inputError(ErrDuplicateClass, string(decl.Name))
		}

		seen[decl.Name] = true
	}

	graph := NewTypeGraph()
	pending := decls

	for len(pending) > 0 {
		var next []m.ClassDecl

		for _, decl := range pending {
			if decl.Parent != "" && !graph.Has(decl.Parent) {
				next = append(next, decl)
				continue
			}

			if err := graph.AddClass(decl.Name, decl.Parent); err != nil {
				return nil, err
			}
		}

		if len(next) == len(pending) {
			first := next[0]
			return nil, inputErrorf(ErrUnknownParent, string(first.Parent), "declared as parent of %s", first.Name)
		}

		pending = next
	}

	return graph, nil
}

// AddClass adds a class. An empty parent makes the class a root.
func (g *TypeGraph) AddClass(id, parent m.ClassID) error {
	if id == "" {
		return ErrEmptyClassName
	}

	if _, exists := g.nodes[id]; exists {
		return inputError(ErrDuplicateClass, string(id))
	}

	if parent != "" {
		if _, exists := g.nodes[parent]; !exists {
			return inputErrorf(ErrUnknownParent, string(parent), "declared as parent of %s", id)
		}
	}

	g.nodes[id] = m.ClassNode{ID: id, Parent: parent}
	g.order = append(g.order, id)

	return nil
}

// Has reports whether id is a known class.
func (g *TypeGraph) Has(id m.ClassID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of classes.
func (g *TypeGraph) Len() int {
	return len(g.nodes)
}

// Classes returns all class ids in the order they were added.
func (g *TypeGraph) Classes() []m.ClassID {
	out := make([]m.ClassID, len(g.order))
	copy(out, g.order)

	return out
}

// IsSubtype reports whether a is b or b is on a's ancestor chain.
// Unknown classes are subtypes of nothing.
func (g *TypeGraph) IsSubtype(a, b m.ClassID) bool {
	if !g.Has(a) || !g.Has(b) {
		return false
	}

	for current := a; current != ""; current = g.nodes[current].Parent {
		if current == b {
			return true
		}
	}

	return false
}

// Ancestors returns the chain from id (inclusive) up to its root.
func (g *TypeGraph) Ancestors(id m.ClassID) []m.ClassID {
	if !g.Has(id) {
		return nil
	}

	var chain []m.ClassID
	for current := id; current != ""; current = g.nodes[current].Parent {
		chain = append(chain, current)
	}

	return chain
}

// CommonAncestor returns the nearest class on both ancestor chains.
// The second result is false when a and b live in different trees.
func (g *TypeGraph) CommonAncestor(a, b m.ClassID) (m.ClassID, bool) {
	onA := make(map[m.ClassID]bool)
	for _, id := range g.Ancestors(a) {
		onA[id] = true
	}

	for _, id := range g.Ancestors(b) {
		if onA[id] {
			return id, true
		}
	}

	return "", false
}

// pathTo returns the chain from id up to, not including, ancestor.
func (g *TypeGraph) pathTo(id, ancestor m.ClassID) []m.ClassID {
	var path []m.ClassID

	for _, current := range g.Ancestors(id) {
		if current == ancestor {
			break
		}

		path = append(path, current)
	}

	return path
}
