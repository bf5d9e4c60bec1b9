// Package cost implements the FLOP cost model of spec.md §4.5: a
// non-negative integer estimate of the floating-point operations a tree
// costs to evaluate, used by the rewriter to rank equivalent trees.
package cost

import (
	"github.com/cortexlang/matrizer/internal/analyzer"
	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/mat"
	"github.com/cortexlang/matrizer/internal/symbols"
)

// Flops computes the FLOP cost of e under table, or the first typed shape
// error encountered while sizing a sub-expression. All division in the
// formulas below is Go's native truncating integer division, per spec.
func Flops(e ast.Expr, table *symbols.Table) (int, ast.MError) {
	switch n := e.(type) {
	case ast.Leaf:
		return 0, nil
	case ast.LiteralScalar:
		return 0, nil
	case ast.IdentityLeaf:
		return n.N * n.N, nil
	case ast.Branch1:
		return flopsBranch1(n, table)
	case ast.Branch2:
		return flopsBranch2(n, table)
	case ast.Branch3:
		// TernaryProduct(a,b,c) costs exactly as much as the left-associated
		// binary chain it's shorthand for.
		nested := ast.Branch2{
			Op:    ast.Product,
			Left:  ast.Branch2{Op: ast.Product, Left: n.A, Right: n.B},
			Right: n.C,
		}
		return Flops(nested, table)
	case ast.Let:
		rhsCost, err := Flops(n.Rhs, table)
		if err != nil {
			return 0, err
		}
		rhsDesc, derr := analyzer.DescriptorOf(n.Rhs, table)
		if derr != nil {
			return 0, derr
		}
		bodyCost, err := Flops(n.Body, table.Extend(n.Name, rhsDesc))
		if err != nil {
			return 0, err
		}
		return rhsCost + bodyCost + 1, nil
	}
	return 0, ast.NewAnalysisError("flops: unknown expression node")
}

func flopsBranch1(n ast.Branch1, table *symbols.Table) (int, ast.MError) {
	childCost, err := Flops(n.Child, table)
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case ast.Inverse:
		d, derr := analyzer.DescriptorOf(n.Child, table)
		if derr != nil {
			return 0, derr
		}
		r := d.Rows
		if d.Props.Has(mat.LowerTriangular) {
			return (r*r+r)/2 + childCost, nil
		}
		return 3*r*r*r/4 + childCost, nil

	case ast.Transpose:
		return childCost + 1, nil

	case ast.Negate:
		return childCost, nil

	case ast.Chol:
		d, derr := analyzer.DescriptorOf(n.Child, table)
		if derr != nil {
			return 0, derr
		}
		r := d.Rows
		return r*r*r/3 + childCost, nil
	}
	return 0, ast.NewAnalysisError("flops: unknown unary operator")
}

func flopsBranch2(n ast.Branch2, table *symbols.Table) (int, ast.MError) {
	lc, err := Flops(n.Left, table)
	if err != nil {
		return 0, err
	}
	rc, err := Flops(n.Right, table)
	if err != nil {
		return 0, err
	}
	ld, derr := analyzer.DescriptorOf(n.Left, table)
	if derr != nil {
		return 0, derr
	}
	rd, derr := analyzer.DescriptorOf(n.Right, table)
	if derr != nil {
		return 0, derr
	}

	switch n.Op {
	case ast.Product:
		r1, c1, c2 := ld.Rows, ld.Cols, rd.Cols
		return r1*c2*(2*c1-1) + lc + rc, nil

	case ast.ScalarProduct:
		r, c := rd.Rows, rd.Cols
		return r*c + lc + rc, nil

	case ast.Sum:
		r, c := ld.Rows, ld.Cols
		return r*c + lc + rc, nil

	case ast.LinSolve:
		r, c := ld.Rows, rd.Cols
		return 2*(r*r*r/3+c*r*r) + lc + rc, nil

	case ast.CholSolve:
		r, c := ld.Rows, rd.Cols
		return 2*c*r*r + lc + rc, nil
	}
	return 0, ast.NewAnalysisError("flops: unknown binary operator")
}
