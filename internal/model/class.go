// Package model defines the data structures for covariance soundness checking.
package model

// Path represents a file system path.
type Path string

// ClassID is the unique name of a class in a hierarchy.
type ClassID string

// ClassDecl declares a class and its optional parent.
// An empty Parent marks a root of the hierarchy.
type ClassDecl struct {
	Name   ClassID
	Parent ClassID
}

// ClassNode is a class as stored in a type graph. Immutable once added.
type ClassNode struct {
	ID     ClassID
	Parent ClassID
}

// Value is a runtime-tagged instance. Type is its dynamic (exact) class.
type Value struct {
	Type ClassID
}

// IsEmpty reports whether the value represents an unfilled array slot.
func (v Value) IsEmpty() bool {
	return v.Type == ""
}
