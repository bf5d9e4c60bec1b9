package parser

import (
	"testing"

	"github.com/cortexlang/matrizer/internal/ast"
)

func TestParseExprJuxtapositionIsProduct(t *testing.T) {
	e, err := ParseExpr("A B x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ast.Branch2{
		Op:   ast.Product,
		Left: ast.Leaf{Name: "A"},
		Right: ast.Branch2{
			Op:    ast.Product,
			Left:  ast.Leaf{Name: "B"},
			Right: ast.Leaf{Name: "x"},
		},
	}
	if ast.Key(e) != ast.Key(want) {
		t.Errorf("ParseExpr(%q) = %s, want %s", "A B x", ast.Key(e), ast.Key(want))
	}
}

func TestParseExprExplicitStarEquivalentToJuxtaposition(t *testing.T) {
	implicit, err := ParseExpr("A B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	explicit, err := ParseExpr("A * B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ast.Key(implicit) != ast.Key(explicit) {
		t.Errorf("%q and %q parsed to different trees", "A B", "A * B")
	}
}

func TestParseExprPlusIsLeftAssociativeSum(t *testing.T) {
	e, err := ParseExpr("A + B + C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ast.Branch2{
		Op:   ast.Sum,
		Left: ast.Branch2{Op: ast.Sum, Left: ast.Leaf{Name: "A"}, Right: ast.Leaf{Name: "B"}},
		Right: ast.Leaf{Name: "C"},
	}
	if ast.Key(e) != ast.Key(want) {
		t.Errorf("ParseExpr(%q) = %s, want %s", "A + B + C", ast.Key(e), ast.Key(want))
	}
}

func TestParseExprParenthesesOverrideAssociativity(t *testing.T) {
	e, err := ParseExpr("A (B + C)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ast.Branch2{
		Op:   ast.Product,
		Left: ast.Leaf{Name: "A"},
		Right: ast.Branch2{Op: ast.Sum, Left: ast.Leaf{Name: "B"}, Right: ast.Leaf{Name: "C"}},
	}
	if ast.Key(e) != ast.Key(want) {
		t.Errorf("ParseExpr(%q) = %s, want %s", "A (B + C)", ast.Key(e), ast.Key(want))
	}
}

func TestParseExprTransposeAndInverse(t *testing.T) {
	e, err := ParseExpr("A'^-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ast.Branch1{Op: ast.Inverse, Child: ast.Branch1{Op: ast.Transpose, Child: ast.Leaf{Name: "A"}}}
	if ast.Key(e) != ast.Key(want) {
		t.Errorf("ParseExpr(%q) = %s, want %s", "A'^-1", ast.Key(e), ast.Key(want))
	}
}

func TestParseExprUnaryMinus(t *testing.T) {
	e, err := ParseExpr("-A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ast.Branch1{Op: ast.Negate, Child: ast.Leaf{Name: "A"}}
	if ast.Key(e) != ast.Key(want) {
		t.Errorf("ParseExpr(%q) = %s, want %s", "-A", ast.Key(e), ast.Key(want))
	}
}

func TestParseExprCholAndSolveForms(t *testing.T) {
	e, err := ParseExpr("chol(A)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := e.(ast.Branch1); !ok {
		t.Fatalf("chol(A) did not parse to a Branch1: %#v", e)
	}

	e, err = ParseExpr("linsolve(A, B)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b2, ok := e.(ast.Branch2)
	if !ok || b2.Op != ast.LinSolve {
		t.Fatalf("linsolve(A, B) = %#v, want a LinSolve Branch2", e)
	}

	e, err = ParseExpr("cholsolve(A, B)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b2, ok = e.(ast.Branch2)
	if !ok || b2.Op != ast.CholSolve {
		t.Fatalf("cholsolve(A, B) = %#v, want a CholSolve Branch2", e)
	}
}

func TestParseExprLetAndTmp(t *testing.T) {
	e, err := ParseExpr("let t = A B in t + t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	let, ok := e.(ast.Let)
	if !ok {
		t.Fatalf("expected ast.Let, got %#v", e)
	}
	if let.Name != "t" || let.IsTemp {
		t.Errorf("Let = %#v, want Name %q, IsTemp false", let, "t")
	}

	e, err = ParseExpr("tmp u = A in u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	let, ok = e.(ast.Let)
	if !ok || !let.IsTemp {
		t.Errorf("tmp binding should set IsTemp: %#v", e)
	}
}

func TestParseExprRejectsMultiLetterMatrixName(t *testing.T) {
	if _, err := ParseExpr("AB"); err == nil {
		t.Error("expected a parser error for a multi-letter bare identifier")
	}
}

func TestParseExprRejectsTrailingGarbage(t *testing.T) {
	if _, err := ParseExpr("A )"); err == nil {
		t.Error("expected a parser error for an unmatched trailing token")
	}
}
