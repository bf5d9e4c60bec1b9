// Package analyzer computes the shape-and-property descriptor of any
// sub-expression under a symbol table (spec.md §4.2), and the syntactic
// property-inference rules for products (§4.3).
package analyzer

import (
	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/mat"
	"github.com/cortexlang/matrizer/internal/symbols"
)

// DescriptorOf computes the Matrix descriptor of e under table, or the
// first typed error encountered. It is structurally recursive and never
// attempts recovery: the first failure on any path aborts the call.
func DescriptorOf(e ast.Expr, table *symbols.Table) (mat.Matrix, ast.MError) {
	switch n := e.(type) {
	case ast.Leaf:
		m, ok := table.Get(n.Name)
		if !ok {
			return mat.Matrix{}, ast.NewUnboundNameError(n.Name)
		}
		return m, nil

	case ast.IdentityLeaf:
		return mat.Identity(n.N), nil

	case ast.LiteralScalar:
		return mat.Literal(), nil

	case ast.Branch1:
		return descriptorBranch1(n, table)

	case ast.Branch2:
		return descriptorBranch2(n, table)

	case ast.Branch3:
		return descriptorBranch3(n, table)

	case ast.Let:
		rhs, err := DescriptorOf(n.Rhs, table)
		if err != nil {
			return mat.Matrix{}, err
		}
		return DescriptorOf(n.Body, table.Extend(n.Name, rhs))
	}
	return mat.Matrix{}, ast.NewAnalysisError("descriptor_of: unknown expression node")
}

func descriptorBranch1(n ast.Branch1, table *symbols.Table) (mat.Matrix, ast.MError) {
	m, err := DescriptorOf(n.Child, table)
	if err != nil {
		return mat.Matrix{}, err
	}

	switch n.Op {
	case ast.Inverse:
		if !m.Square() {
			return mat.Matrix{}, ast.NewInvalidOpError("Inverse", m)
		}
		return mat.New(m.Rows, m.Cols, m.Intersect(mat.Diagonal|mat.Symmetric|mat.PosDef|mat.LowerTriangular)), nil

	case ast.Transpose:
		return mat.New(m.Cols, m.Rows, m.Intersect(mat.Diagonal|mat.Symmetric|mat.PosDef)), nil

	case ast.Negate:
		if !m.Square() {
			return mat.Matrix{}, ast.NewInvalidOpError("Negate", m)
		}
		return mat.New(m.Rows, m.Cols, m.Intersect(mat.Diagonal|mat.Symmetric)), nil

	case ast.Chol:
		if !m.Square() {
			return mat.Matrix{}, ast.NewInvalidOpError("Chol", m)
		}
		if !m.Props.Has(mat.PosDef) {
			return mat.Matrix{}, ast.NewWrongProperties1Error("Chol", m.Props, n.Child)
		}
		return mat.New(m.Rows, m.Cols, mat.LowerTriangular|(m.Intersect(mat.Diagonal))), nil
	}
	return mat.Matrix{}, ast.NewAnalysisError("descriptor_of: unknown unary operator")
}

func descriptorBranch2(n ast.Branch2, table *symbols.Table) (mat.Matrix, ast.MError) {
	l, err := DescriptorOf(n.Left, table)
	if err != nil {
		return mat.Matrix{}, err
	}
	r, err := DescriptorOf(n.Right, table)
	if err != nil {
		return mat.Matrix{}, err
	}

	switch n.Op {
	case ast.Product:
		if l.Cols != r.Rows {
			return mat.Matrix{}, ast.NewSizeMismatchError("Product", l, r, n.Left, n.Right)
		}
		return mat.New(l.Rows, r.Cols, productProps(n.Left, n.Right, l.Props, r.Props)), nil

	case ast.ScalarProduct:
		// §9: label the operator ScalarProduct in error messages, not Product.
		// The size rule is that the left operand is 1x1; the result takes the
		// right operand's shape and its Sym/Diag/LTri properties.
		if !l.Scalar() {
			return mat.Matrix{}, ast.NewSizeMismatchError("ScalarProduct", l, r, n.Left, n.Right)
		}
		return mat.New(r.Rows, r.Cols, r.Intersect(mat.Symmetric|mat.Diagonal|mat.LowerTriangular)), nil

	case ast.Sum:
		if l.Rows != r.Rows || l.Cols != r.Cols {
			return mat.Matrix{}, ast.NewSizeMismatchError("Sum", l, r, n.Left, n.Right)
		}
		return mat.New(l.Rows, l.Cols, l.Intersect(r.Props)&(mat.Diagonal|mat.Symmetric|mat.PosDef|mat.LowerTriangular)), nil

	case ast.LinSolve:
		if !l.Square() || l.Rows != r.Rows {
			return mat.Matrix{}, ast.NewSizeMismatchError("LinSolve", l, r, n.Left, n.Right)
		}
		return mat.New(l.Cols, r.Cols, 0), nil

	case ast.CholSolve:
		if !l.Square() || l.Rows != r.Rows {
			return mat.Matrix{}, ast.NewSizeMismatchError("CholSolve", l, r, n.Left, n.Right)
		}
		if !l.Props.Has(mat.LowerTriangular) {
			return mat.Matrix{}, ast.NewWrongPropertiesError("CholSolve", l.Props, r.Props, n.Left, n.Right)
		}
		return mat.New(l.Cols, r.Cols, 0), nil
	}
	return mat.Matrix{}, ast.NewAnalysisError("descriptor_of: unknown binary operator")
}

func descriptorBranch3(n ast.Branch3, table *symbols.Table) (mat.Matrix, ast.MError) {
	a, err := DescriptorOf(n.A, table)
	if err != nil {
		return mat.Matrix{}, err
	}
	b, err := DescriptorOf(n.B, table)
	if err != nil {
		return mat.Matrix{}, err
	}
	c, err := DescriptorOf(n.C, table)
	if err != nil {
		return mat.Matrix{}, err
	}

	if a.Cols != b.Rows || b.Cols != c.Rows {
		return mat.Matrix{}, ast.NewSizeMismatchTernError("TernaryProduct", a, b, c)
	}
	return mat.New(a.Rows, c.Cols, ternaryProductProps(n.A, n.B, n.C, a.Props, b.Props, c.Props)), nil
}
