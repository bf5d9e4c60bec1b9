package emit

import (
	"testing"

	"github.com/cortexlang/matrizer/internal/ast"
)

func TestEmit(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{
			"leaf",
			ast.Leaf{Name: "A"},
			"A",
		},
		{
			"product",
			ast.Branch2{Op: ast.Product, Left: ast.Leaf{Name: "A"}, Right: ast.Leaf{Name: "B"}},
			"np.dot(A, B)",
		},
		{
			"sum",
			ast.Branch2{Op: ast.Sum, Left: ast.Leaf{Name: "A"}, Right: ast.Leaf{Name: "B"}},
			"A + B",
		},
		{
			"inverse",
			ast.Branch1{Op: ast.Inverse, Child: ast.Leaf{Name: "A"}},
			"np.linalg.inv(A)",
		},
		{
			"transpose",
			ast.Branch1{Op: ast.Transpose, Child: ast.Leaf{Name: "A"}},
			"A.T",
		},
		{
			"negate",
			ast.Branch1{Op: ast.Negate, Child: ast.Leaf{Name: "A"}},
			"-A",
		},
		{
			"negate of a sum needs parens",
			ast.Branch1{Op: ast.Negate, Child: ast.Branch2{Op: ast.Sum, Left: ast.Leaf{Name: "A"}, Right: ast.Leaf{Name: "B"}}},
			"-(A + B)",
		},
		{
			"transpose of a product needs no parens, np.dot already groups",
			ast.Branch1{Op: ast.Transpose, Child: ast.Branch2{Op: ast.Product, Left: ast.Leaf{Name: "A"}, Right: ast.Leaf{Name: "B"}}},
			"np.dot(A, B).T",
		},
		{
			"identity leaf with inferred size",
			ast.IdentityLeaf{N: 3},
			"np.eye(3)",
		},
		{
			"scalar product",
			ast.Branch2{Op: ast.ScalarProduct, Left: ast.LiteralScalar{Value: 2}, Right: ast.Leaf{Name: "A"}},
			"2 * A",
		},
		{
			"linsolve",
			ast.Branch2{Op: ast.LinSolve, Left: ast.Leaf{Name: "A"}, Right: ast.Leaf{Name: "b"}},
			"np.linalg.solve(A, b)",
		},
		{
			"cholsolve",
			ast.Branch2{Op: ast.CholSolve, Left: ast.Leaf{Name: "L"}, Right: ast.Leaf{Name: "b"}},
			"scipy.linalg.cho_solve((L, True), b)",
		},
		{
			"cholesky",
			ast.Branch1{Op: ast.Chol, Child: ast.Leaf{Name: "A"}},
			"np.linalg.cholesky(A)",
		},
		{
			"ternary product",
			ast.Branch3{Op: ast.TernaryProduct, A: ast.Leaf{Name: "A"}, B: ast.Leaf{Name: "B"}, C: ast.Leaf{Name: "C"}},
			"np.linalg.multi_dot([A, B, C])",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Emit(tt.expr)
			if got != tt.want {
				t.Errorf("Emit(%v) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}
