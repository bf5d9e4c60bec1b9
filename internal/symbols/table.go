// Package symbols implements the read-only symbol table shape inference and
// preamble resolution use to map a matrix name to its descriptor.
package symbols

import "github.com/cortexlang/matrizer/internal/mat"

// Table maps single-character matrix names to resolved descriptors. A Table
// produced by Extend shadows its parent: lookups fall through to the
// parent only when the child has no binding of its own, giving Let the
// scoped-shadow semantics spec.md requires without ever mutating the
// table an enclosing scope is still holding a reference to.
type Table struct {
	outer *Table
	vals  map[string]mat.Matrix
}

// New returns an empty, top-level symbol table.
func New() *Table {
	return &Table{vals: make(map[string]mat.Matrix)}
}

// Get looks up name, searching outward through enclosing scopes.
func (t *Table) Get(name string) (mat.Matrix, bool) {
	for s := t; s != nil; s = s.outer {
		if m, ok := s.vals[name]; ok {
			return m, true
		}
	}
	return mat.Matrix{}, false
}

// Define binds name to m in this table (used by the preamble resolver,
// which builds a table once before any inference runs).
func (t *Table) Define(name string, m mat.Matrix) {
	t.vals[name] = m
}

// Extend returns a new table that shadows t with a single additional
// binding, for the scope of a Let body.
func (t *Table) Extend(name string, m mat.Matrix) *Table {
	return &Table{outer: t, vals: map[string]mat.Matrix{name: m}}
}
