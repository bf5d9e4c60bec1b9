// Package preamble resolves the matrix-declaration preamble (the part of a
// Matrizer program that precedes the expression) into a symbol table.
package preamble

import "github.com/cortexlang/matrizer/internal/mat"

// Line is one parsed line of the preamble. It is a closed sum type, the
// same way ast.Expr is.
type Line interface {
	isLine()
}

// Dim is one dimension token of a MatrixSym: either a decimal literal or a
// single-letter symbol to resolve against the collected SymbolLines.
type Dim struct {
	Token string
}

// MatrixSym is the right-hand side of a MatrixLine: two dimensions plus the
// structural properties the declaration asserts.
type MatrixSym struct {
	Dim1, Dim2 Dim
	Props      mat.Property
}

// MatrixLine declares a matrix symbol, e.g. "A: n x n symmetric".
type MatrixLine struct {
	Name string
	Sym  MatrixSym
}

func (MatrixLine) isLine() {}

// SymbolLine declares a dimension symbol, e.g. "n = 100" or "n ~ 100".
type SymbolLine struct {
	Name string
	N    int
}

func (SymbolLine) isLine() {}

// BlankLine is a comment or empty line, kept only so positions in the
// source preamble are preserved for potential diagnostics upstream.
type BlankLine struct{}

func (BlankLine) isLine() {}
