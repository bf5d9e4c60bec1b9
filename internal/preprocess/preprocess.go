// Package preprocess implements spec.md §4.4: identity-leaf size inference
// and scalar-product reclassification, run once before the rewriter sees a
// tree.
package preprocess

import (
	"github.com/cortexlang/matrizer/internal/analyzer"
	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/mat"
	"github.com/cortexlang/matrizer/internal/symbols"
)

// Preprocess normalizes e under table. It is idempotent: re-running it on
// its own output returns an identical tree.
func Preprocess(e ast.Expr, table *symbols.Table) (ast.Expr, ast.MError) {
	switch n := e.(type) {
	case ast.Leaf:
		if n.Name == "I" {
			return nil, ast.NewAnalysisError(`identity leaf "I" has no contextual size`)
		}
		return n, nil

	case ast.IdentityLeaf:
		return n, nil

	case ast.LiteralScalar:
		return n, nil

	case ast.Branch1:
		child, err := Preprocess(n.Child, table)
		if err != nil {
			return nil, err
		}
		return ast.Branch1{Op: n.Op, Child: child}, nil

	case ast.Branch2:
		return preprocessBranch2(n, table)

	case ast.Branch3:
		// The parser is contracted never to emit Branch3; if it does anyway,
		// surface an analysis error rather than guessing at semantics.
		return nil, ast.NewAnalysisError("ternary product reached the preprocessor from the parser")

	case ast.Let:
		rhs, err := Preprocess(n.Rhs, table)
		if err != nil {
			return nil, err
		}
		rhsDesc, derr := analyzer.DescriptorOf(rhs, table)
		if derr != nil {
			return nil, derr
		}
		body, err := Preprocess(n.Body, table.Extend(n.Name, rhsDesc))
		if err != nil {
			return nil, err
		}
		return ast.Let{Name: n.Name, Rhs: rhs, IsTemp: n.IsTemp, Body: body}, nil
	}
	return nil, ast.NewAnalysisError("preprocess: unknown expression node")
}

func isLeafI(e ast.Expr) bool {
	l, ok := e.(ast.Leaf)
	return ok && l.Name == "I"
}

func preprocessBranch2(n ast.Branch2, table *symbols.Table) (ast.Expr, ast.MError) {
	leftIsI := isLeafI(n.Left)
	rightIsI := isLeafI(n.Right)

	switch {
	case leftIsI && !rightIsI:
		x, err := Preprocess(n.Right, table)
		if err != nil {
			return nil, err
		}
		xd, derr := analyzer.DescriptorOf(x, table)
		if derr != nil {
			return nil, derr
		}
		size, ierr := identitySize(n.Op, xd, true)
		if ierr != nil {
			return nil, ierr
		}
		return finishBranch2(n.Op, ast.IdentityLeaf{N: size}, x, table)

	case rightIsI && !leftIsI:
		x, err := Preprocess(n.Left, table)
		if err != nil {
			return nil, err
		}
		xd, derr := analyzer.DescriptorOf(x, table)
		if derr != nil {
			return nil, derr
		}
		size, ierr := identitySize(n.Op, xd, false)
		if ierr != nil {
			return nil, ierr
		}
		return finishBranch2(n.Op, x, ast.IdentityLeaf{N: size}, table)

	default:
		left, err := Preprocess(n.Left, table)
		if err != nil {
			return nil, err
		}
		right, err := Preprocess(n.Right, table)
		if err != nil {
			return nil, err
		}
		return finishBranch2(n.Op, left, right, table)
	}
}

// identitySize implements the per-op, per-side table from spec.md §4.4.
func identitySize(op ast.BinaryOp, xd mat.Matrix, identityOnLeft bool) (int, ast.MError) {
	switch op {
	case ast.Product:
		if identityOnLeft {
			return xd.Rows, nil
		}
		return xd.Cols, nil
	case ast.Sum:
		return xd.Rows, nil
	case ast.LinSolve, ast.CholSolve:
		if identityOnLeft {
			return xd.Cols, nil
		}
		return xd.Rows, nil
	}
	return 0, ast.NewAnalysisError(`identity leaf "I" used with an unsupported operator`)
}

// finishBranch2 applies stage 2 of §4.4 (scalar-product reclassification)
// when op is Product; every other operator passes through unchanged.
func finishBranch2(op ast.BinaryOp, left, right ast.Expr, table *symbols.Table) (ast.Expr, ast.MError) {
	if op != ast.Product {
		return ast.Branch2{Op: op, Left: left, Right: right}, nil
	}

	ld, err := analyzer.DescriptorOf(left, table)
	if err != nil {
		return nil, err
	}
	if ld.Scalar() {
		return ast.Branch2{Op: ast.ScalarProduct, Left: left, Right: right}, nil
	}

	rd, err := analyzer.DescriptorOf(right, table)
	if err != nil {
		return nil, err
	}
	if rd.Scalar() {
		return ast.Branch2{Op: ast.ScalarProduct, Left: right, Right: left}, nil
	}

	return ast.Branch2{Op: ast.Product, Left: left, Right: right}, nil
}
