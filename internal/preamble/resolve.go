package preamble

import (
	"strconv"

	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/mat"
	"github.com/cortexlang/matrizer/internal/symbols"
)

// Resolve turns an ordered list of preamble lines into a symbol table,
// per spec.md §4.1. Duplicate MatrixLine names are last-writer-wins, since
// lines are applied in order into the same table.
func Resolve(lines []Line) (*symbols.Table, ast.MError) {
	dims := make(map[string]int)
	for _, l := range lines {
		if sl, ok := l.(SymbolLine); ok {
			dims[sl.Name] = sl.N
		}
	}

	table := symbols.New()
	for _, l := range lines {
		ml, ok := l.(MatrixLine)
		if !ok {
			continue
		}
		n1, err := resolveDim(ml.Sym.Dim1, dims)
		if err != nil {
			return nil, err
		}
		n2, err := resolveDim(ml.Sym.Dim2, dims)
		if err != nil {
			return nil, err
		}
		table.Define(ml.Name, mat.New(n1, n2, ml.Sym.Props))
	}
	return table, nil
}

// resolveDim applies the three-way rule from spec.md §4.1: a full decimal
// literal, then a single-letter symbol looked up in dims, then failure.
func resolveDim(d Dim, dims map[string]int) (int, ast.MError) {
	if n, ok := parseNonNegInt(d.Token); ok {
		return n, nil
	}
	if len(d.Token) == 1 && isLetter(d.Token[0]) {
		if n, ok := dims[d.Token]; ok {
			return n, nil
		}
		return 0, ast.NewUnboundNameError(d.Token)
	}
	return 0, ast.NewBadDimensionError(d.Token)
}

func parseNonNegInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
