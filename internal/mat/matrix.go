// Package mat defines the matrix descriptor used throughout analysis:
// a shape (rows, cols) plus a small set of structural properties.
package mat

import (
	"fmt"
	"strings"
)

// Property is a bitset over the structural properties a matrix may carry.
// The canonical external ordering is Symmetric, PosDef, Diagonal,
// LowerTriangular (see String).
type Property uint8

const (
	Symmetric Property = 1 << iota
	PosDef
	Diagonal
	LowerTriangular
)

// Has reports whether p carries every bit set in q.
func (p Property) Has(q Property) bool { return p&q == q }

// Any reports whether p and q share at least one bit.
func (p Property) Any(q Property) bool { return p&q != 0 }

// String renders the set in canonical order, e.g. "{Symmetric,Diagonal}".
func (p Property) String() string {
	var names []string
	if p.Has(Symmetric) {
		names = append(names, "Symmetric")
	}
	if p.Has(PosDef) {
		names = append(names, "PosDef")
	}
	if p.Has(Diagonal) {
		names = append(names, "Diagonal")
	}
	if p.Has(LowerTriangular) {
		names = append(names, "LowerTriangular")
	}
	if len(names) == 0 {
		return "{}"
	}
	return "{" + strings.Join(names, ",") + "}"
}

// AllProps is the full property set, used by identity leaves.
const AllProps = Symmetric | PosDef | Diagonal | LowerTriangular

// Matrix is the descriptor produced by shape inference for a sub-expression:
// its dimensions and the structural properties it is known to have.
//
// Invariants:
//   - Diagonal or Symmetric implies Rows == Cols.
//   - PosDef implies Rows == Cols and Symmetric.
//
// New enforces only that PosDef carries Symmetric; it does not check that
// a descriptor with Diagonal, Symmetric or PosDef is square.
type Matrix struct {
	Rows, Cols int
	Props      Property
}

// New builds a Matrix descriptor, normalizing PosDef to also carry Symmetric
// per the spec's "treated as positive-definite in the symmetric sense" rule.
func New(rows, cols int, props Property) Matrix {
	if props.Has(PosDef) {
		props |= Symmetric
	}
	return Matrix{Rows: rows, Cols: cols, Props: props}
}

// Square reports whether the descriptor is for a square matrix.
func (m Matrix) Square() bool { return m.Rows == m.Cols }

// Scalar reports whether the descriptor is for a 1x1 matrix.
func (m Matrix) Scalar() bool { return m.Rows == 1 && m.Cols == 1 }

// Intersect returns the subset of m's properties that are also in mask.
func (m Matrix) Intersect(mask Property) Property { return m.Props & mask }

// String renders the descriptor as e.g. "Matrix(3,3,{Symmetric,PosDef})".
func (m Matrix) String() string {
	return fmt.Sprintf("Matrix(%d,%d,%s)", m.Rows, m.Cols, m.Props)
}

// Identity is the descriptor for an n x n identity matrix: every property
// set, per spec.
func Identity(n int) Matrix {
	return New(n, n, AllProps)
}

// Literal is the descriptor for a scalar literal: Matrix(1,1,{Sym,Diag,LTri}).
func Literal() Matrix {
	return New(1, 1, Symmetric|Diagonal|LowerTriangular)
}
