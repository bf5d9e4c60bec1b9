package preamble

import (
	"testing"

	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/mat"
)

func dim(tok string) Dim { return Dim{Token: tok} }

// TestResolveLiteralAndSymbolDims mirrors spec.md's S6 scenario: a symbol
// line defines "n", and a matrix line references it alongside a literal.
func TestResolveLiteralAndSymbolDims(t *testing.T) {
	lines := []Line{
		SymbolLine{Name: "n", N: 100},
		MatrixLine{Name: "A", Sym: MatrixSym{Dim1: dim("n"), Dim2: dim("50"), Props: 0}},
	}

	table, err := Resolve(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := table.Get("A")
	if !ok {
		t.Fatal("A not defined in resolved table")
	}
	if m != mat.New(100, 50, 0) {
		t.Errorf("A = %v, want Matrix(100,50,{})", m)
	}
}

func TestResolveUnboundSymbol(t *testing.T) {
	lines := []Line{
		MatrixLine{Name: "A", Sym: MatrixSym{Dim1: dim("n"), Dim2: dim("3")}},
	}
	_, err := Resolve(lines)
	if err == nil {
		t.Fatal("expected UnboundNameError for undeclared dimension symbol")
	}
	if _, ok := err.(*ast.UnboundNameError); !ok {
		t.Errorf("expected *ast.UnboundNameError, got %T", err)
	}
}

func TestResolveBadDimensionToken(t *testing.T) {
	lines := []Line{
		MatrixLine{Name: "A", Sym: MatrixSym{Dim1: dim("nn"), Dim2: dim("3")}},
	}
	_, err := Resolve(lines)
	if err == nil {
		t.Fatal("expected BadDimensionError for a multi-letter dimension token")
	}
	if _, ok := err.(*ast.BadDimensionError); !ok {
		t.Errorf("expected *ast.BadDimensionError, got %T", err)
	}
}

// TestResolveLastWriterWins checks spec.md §4.1's duplicate-name rule.
func TestResolveLastWriterWins(t *testing.T) {
	lines := []Line{
		MatrixLine{Name: "A", Sym: MatrixSym{Dim1: dim("2"), Dim2: dim("2")}},
		MatrixLine{Name: "A", Sym: MatrixSym{Dim1: dim("3"), Dim2: dim("3"), Props: mat.Symmetric}},
	}
	table, err := Resolve(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, _ := table.Get("A")
	if m != mat.New(3, 3, mat.Symmetric) {
		t.Errorf("A = %v, want the second declaration to win", m)
	}
}

func TestResolveBlankLinesIgnored(t *testing.T) {
	lines := []Line{
		BlankLine{},
		MatrixLine{Name: "A", Sym: MatrixSym{Dim1: dim("2"), Dim2: dim("2")}},
		BlankLine{},
	}
	table, err := Resolve(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := table.Get("A"); !ok {
		t.Error("A should still be defined among blank lines")
	}
}

func TestResolvePosDefImpliesSymmetric(t *testing.T) {
	lines := []Line{
		MatrixLine{Name: "A", Sym: MatrixSym{Dim1: dim("2"), Dim2: dim("2"), Props: mat.PosDef}},
	}
	table, err := Resolve(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, _ := table.Get("A")
	if !m.Props.Has(mat.Symmetric) {
		t.Errorf("PosDef declaration %v should imply Symmetric", m)
	}
}
