package analyzer

import (
	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/mat"
)

// productProps implements spec.md §4.3's property inference for a binary
// product: a closed intersection over {Diag, LTri}, plus PosDef inferred by
// the syntactic AᵀA test. PosDef is never inferred by anything but that
// syntactic test — it does not follow from pl/pr alone.
func productProps(l, r ast.Expr, pl, pr mat.Property) mat.Property {
	cl := pl & pr & (mat.Diagonal | mat.LowerTriangular)
	if isTransposePair(l, r) {
		cl |= mat.PosDef
	}
	return cl
}

// isTransposePair reports whether l == Transpose(r) or r == Transpose(l).
func isTransposePair(l, r ast.Expr) bool {
	return isTranspose(l, r) || isTranspose(r, l)
}

// isTranspose reports whether x is syntactically Transpose(y).
func isTranspose(x, y ast.Expr) bool {
	b, ok := x.(ast.Branch1)
	return ok && b.Op == ast.Transpose && b.Child == y
}

// isInverse reports whether x is syntactically Inverse(y).
func isInverse(x, y ast.Expr) bool {
	b, ok := x.(ast.Branch1)
	return ok && b.Op == ast.Inverse && b.Child == y
}

// ternaryProductProps implements spec.md §4.3's property inference for
// TernaryProduct(a,b,c): the closed {Diag,LTri} intersection across all
// three operands, plus PosDef from the five syntactic patterns on (a,b,c).
func ternaryProductProps(a, b, c ast.Expr, pa, pb, pc mat.Property) mat.Property {
	cl := pa & pb & pc & (mat.Diagonal | mat.LowerTriangular)

	pd := pb.Has(mat.PosDef) && (isTranspose(a, c) || isTranspose(c, a) || isInverse(a, c) || isInverse(c, a))
	pd = pd || (pa.Has(mat.PosDef) && pb.Has(mat.PosDef) && a == c)

	if pd {
		cl |= mat.PosDef
	}
	return cl
}
