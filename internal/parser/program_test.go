package parser

import (
	"testing"

	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/preamble"
)

func TestParseSourceSplitsPreambleFromExpression(t *testing.T) {
	src := "n = 100\nA: n x n symmetric\nA A"
	lines, expr, err := ParseSource(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d preamble lines, want 2", len(lines))
	}
	if _, ok := lines[0].(preamble.SymbolLine); !ok {
		t.Errorf("lines[0] = %#v, want a SymbolLine", lines[0])
	}
	if _, ok := lines[1].(preamble.MatrixLine); !ok {
		t.Errorf("lines[1] = %#v, want a MatrixLine", lines[1])
	}

	want := ast.Branch2{Op: ast.Product, Left: ast.Leaf{Name: "A"}, Right: ast.Leaf{Name: "A"}}
	if ast.Key(expr) != ast.Key(want) {
		t.Errorf("expr = %s, want %s", ast.Key(expr), ast.Key(want))
	}
}

func TestParseSourceIgnoresCommentsAndBlankLines(t *testing.T) {
	src := "# a comment\n\nA: 2 x 2\nA\n"
	lines, _, err := ParseSource(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (comment, blank, matrix)", len(lines))
	}
}

func TestParsePreambleLinesRejectsExpressionText(t *testing.T) {
	_, err := ParsePreambleLines([]string{"A: 2 x 2", "A + B"})
	if err == nil {
		t.Fatal("expected a parser error: \"A + B\" is not a valid preamble line")
	}
	if _, ok := err.(*ast.ParserError); !ok {
		t.Errorf("expected *ast.ParserError, got %T", err)
	}
}
