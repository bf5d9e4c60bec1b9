package cost

import (
	"testing"

	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/mat"
	"github.com/cortexlang/matrizer/internal/symbols"
)

func tableWith(entries map[string]mat.Matrix) *symbols.Table {
	t := symbols.New()
	for name, m := range entries {
		t.Define(name, m)
	}
	return t
}

func TestFlopsLeavesAreFree(t *testing.T) {
	table := tableWith(map[string]mat.Matrix{"A": mat.New(3, 3, 0)})
	for _, e := range []ast.Expr{ast.Leaf{Name: "A"}, ast.LiteralScalar{Value: 4}} {
		c, err := Flops(e, table)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", e, err)
		}
		if c != 0 {
			t.Errorf("Flops(%v) = %d, want 0", e, c)
		}
	}
}

func TestFlopsIdentityLeaf(t *testing.T) {
	c, err := Flops(ast.IdentityLeaf{N: 6}, symbols.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != 36 {
		t.Errorf("Flops(I_6) = %d, want 36", c)
	}
}

// TestFlopsProductFormula checks the r1*c2*(2*c1-1) formula from spec.md
// §4.5 against a hand-computed 2x3 * 3x4 product.
func TestFlopsProductFormula(t *testing.T) {
	table := tableWith(map[string]mat.Matrix{
		"A": mat.New(2, 3, 0),
		"B": mat.New(3, 4, 0),
	})
	c, err := Flops(ast.Branch2{Op: ast.Product, Left: ast.Leaf{Name: "A"}, Right: ast.Leaf{Name: "B"}}, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 2 * 4 * (2*3 - 1)
	if c != want {
		t.Errorf("Flops(A*B) = %d, want %d", c, want)
	}
}

func TestFlopsSumFormula(t *testing.T) {
	table := tableWith(map[string]mat.Matrix{
		"A": mat.New(2, 3, 0),
		"B": mat.New(2, 3, 0),
	})
	c, err := Flops(ast.Branch2{Op: ast.Sum, Left: ast.Leaf{Name: "A"}, Right: ast.Leaf{Name: "B"}}, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != 6 {
		t.Errorf("Flops(A+B) = %d, want 6", c)
	}
}

// TestFlopsInverseTriangularIsCheaperThanGeneral checks spec.md §4.5's
// forward-substitution shortcut: Inverse of a LowerTriangular matrix costs
// (r^2+r)/2, far less than the general 3r^3/4 case.
func TestFlopsInverseTriangularIsCheaperThanGeneral(t *testing.T) {
	general := tableWith(map[string]mat.Matrix{"A": mat.New(10, 10, 0)})
	triangular := tableWith(map[string]mat.Matrix{"A": mat.New(10, 10, mat.LowerTriangular)})

	gc, err := Flops(ast.Branch1{Op: ast.Inverse, Child: ast.Leaf{Name: "A"}}, general)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tc, err := Flops(ast.Branch1{Op: ast.Inverse, Child: ast.Leaf{Name: "A"}}, triangular)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tc != 55 {
		t.Errorf("Flops(Inverse(L)) = %d, want 55", tc)
	}
	if gc != 750 {
		t.Errorf("Flops(Inverse(A)) = %d, want 750", gc)
	}
	if tc >= gc {
		t.Errorf("triangular inverse (%d) should be cheaper than general inverse (%d)", tc, gc)
	}
}

func TestFlopsTransposeAndNegate(t *testing.T) {
	table := tableWith(map[string]mat.Matrix{"A": mat.New(3, 3, 0)})
	tc, err := Flops(ast.Branch1{Op: ast.Transpose, Child: ast.Leaf{Name: "A"}}, table)
	if err != nil || tc != 1 {
		t.Errorf("Flops(A') = %d, %v, want 1, nil", tc, err)
	}
	nc, err := Flops(ast.Branch1{Op: ast.Negate, Child: ast.Leaf{Name: "A"}}, table)
	if err != nil || nc != 0 {
		t.Errorf("Flops(-A) = %d, %v, want 0, nil", nc, err)
	}
}

func TestFlopsTernaryProductMatchesLeftAssociatedChain(t *testing.T) {
	table := tableWith(map[string]mat.Matrix{
		"A": mat.New(2, 3, 0),
		"B": mat.New(3, 4, 0),
		"C": mat.New(4, 5, 0),
	})
	tern := ast.Branch3{Op: ast.TernaryProduct, A: ast.Leaf{Name: "A"}, B: ast.Leaf{Name: "B"}, C: ast.Leaf{Name: "C"}}
	chain := ast.Branch2{
		Op:    ast.Product,
		Left:  ast.Branch2{Op: ast.Product, Left: ast.Leaf{Name: "A"}, Right: ast.Leaf{Name: "B"}},
		Right: ast.Leaf{Name: "C"},
	}

	tc, err := Flops(tern, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cc, err := Flops(chain, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tc != cc {
		t.Errorf("Flops(TernaryProduct) = %d, want %d (the equivalent left-associated chain)", tc, cc)
	}
}

func TestFlopsLetAddsOverheadOfOne(t *testing.T) {
	table := tableWith(map[string]mat.Matrix{"A": mat.New(2, 2, 0)})
	tree := ast.Let{Name: "t", Rhs: ast.Leaf{Name: "A"}, Body: ast.Leaf{Name: "t"}}
	c, err := Flops(tree, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != 1 {
		t.Errorf("Flops(let t = A in t) = %d, want 1 (0 rhs + 0 body + 1)", c)
	}
}
