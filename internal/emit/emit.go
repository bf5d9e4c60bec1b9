// Package emit renders an Expr tree as NumPy source, per spec.md §6's target
// mapping. The printer is a small buffer-based writer in the style of
// funxy's prettyprinter: write the pieces in order, parenthesizing an infix
// child only when its own precedence would otherwise change how the
// expression parses.
package emit

import (
	"strconv"
	"strings"

	"github.com/cortexlang/matrizer/internal/ast"
)

// Emit renders e as a single NumPy expression.
func Emit(e ast.Expr) string {
	var b strings.Builder
	write(&b, e, 0)
	return b.String()
}

// precedence: Sum binds loosest (2); everything else is either a leaf, a
// function call, or a postfix/prefix form that never needs parenthesizing
// around its own operand, so they all sit above the one operator that
// does: infix +.
const sumPrec = 2

func write(b *strings.Builder, e ast.Expr, parentPrec int) {
	switch n := e.(type) {
	case ast.Leaf:
		if n.Name == "I" {
			b.WriteString("np.eye(n)")
			return
		}
		b.WriteString(n.Name)

	case ast.IdentityLeaf:
		b.WriteString("np.eye(")
		b.WriteString(strconv.Itoa(n.N))
		b.WriteString(")")

	case ast.LiteralScalar:
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))

	case ast.Branch1:
		writeBranch1(b, n)

	case ast.Branch2:
		writeBranch2(b, n, parentPrec)

	case ast.Branch3:
		b.WriteString("np.linalg.multi_dot([")
		write(b, n.A, 0)
		b.WriteString(", ")
		write(b, n.B, 0)
		b.WriteString(", ")
		write(b, n.C, 0)
		b.WriteString("])")

	case ast.Let:
		// Emit only ever renders a single expression; a Let reaching it means
		// the caller chose not to lower temporaries to statements first.
		b.WriteString(n.Name)
		b.WriteString(" = ")
		write(b, n.Rhs, 0)
		b.WriteString("; ")
		write(b, n.Body, 0)

	default:
		b.WriteString("<?>")
	}
}

func writeBranch1(b *strings.Builder, n ast.Branch1) {
	switch n.Op {
	case ast.Inverse:
		b.WriteString("np.linalg.inv(")
		write(b, n.Child, 0)
		b.WriteString(")")

	case ast.Transpose:
		write(b, n.Child, 100)
		b.WriteString(".T")

	case ast.Negate:
		b.WriteString("-")
		write(b, n.Child, 100)

	case ast.Chol:
		b.WriteString("np.linalg.cholesky(")
		write(b, n.Child, 0)
		b.WriteString(")")
	}
}

func writeBranch2(b *strings.Builder, n ast.Branch2, parentPrec int) {
	switch n.Op {
	case ast.Product:
		b.WriteString("np.dot(")
		write(b, n.Left, 0)
		b.WriteString(", ")
		write(b, n.Right, 0)
		b.WriteString(")")

	case ast.ScalarProduct:
		write(b, n.Left, 100)
		b.WriteString(" * ")
		write(b, n.Right, 100)

	case ast.Sum:
		needParens := sumPrec < parentPrec
		if needParens {
			b.WriteString("(")
		}
		write(b, n.Left, sumPrec)
		b.WriteString(" + ")
		write(b, n.Right, sumPrec)
		if needParens {
			b.WriteString(")")
		}

	case ast.LinSolve:
		b.WriteString("np.linalg.solve(")
		write(b, n.Left, 0)
		b.WriteString(", ")
		write(b, n.Right, 0)
		b.WriteString(")")

	case ast.CholSolve:
		b.WriteString("scipy.linalg.cho_solve((")
		write(b, n.Left, 0)
		b.WriteString(", True), ")
		write(b, n.Right, 0)
		b.WriteString(")")
	}
}
