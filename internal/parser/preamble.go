package parser

import (
	"strconv"
	"strings"

	"github.com/cortexlang/matrizer/internal/mat"
	"github.com/cortexlang/matrizer/internal/preamble"
)

// scanPreambleLine classifies one line of source text against the three
// preamble productions in SPEC_FULL.md §14. The second return value is
// false when the line matches none of them, signaling that the preamble
// has ended and this line begins the expression body.
func scanPreambleLine(raw string) (preamble.Line, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return preamble.BlankLine{}, true
	}

	if ml, ok := scanMatrixLine(trimmed); ok {
		return ml, true
	}
	if sl, ok := scanSymbolLine(trimmed); ok {
		return sl, true
	}
	return nil, false
}

// scanMatrixLine recognizes "<letter>:dim x dim [props]".
func scanMatrixLine(trimmed string) (preamble.Line, bool) {
	if len(trimmed) < 2 || !isNameLetter(trimmed[0]) || trimmed[1] != ':' {
		return nil, false
	}
	name := trimmed[0:1]
	fields := strings.Fields(trimmed[2:])
	if len(fields) == 0 {
		return nil, false
	}

	var props mat.Property
	end := len(fields)
	for end > 0 {
		p, ok := propToken(strings.ToLower(fields[end-1]))
		if !ok {
			break
		}
		props |= p
		end--
	}
	if end == 0 {
		return nil, false
	}

	dims := strings.Join(fields[:end], "")
	parts := strings.SplitN(dims, "x", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, false
	}

	return preamble.MatrixLine{
		Name: name,
		Sym: preamble.MatrixSym{
			Dim1:  preamble.Dim{Token: parts[0]},
			Dim2:  preamble.Dim{Token: parts[1]},
			Props: props,
		},
	}, true
}

// scanSymbolLine recognizes "<letter> ('=' | '~') <digits>".
func scanSymbolLine(trimmed string) (preamble.Line, bool) {
	idx := strings.IndexAny(trimmed, "=~")
	if idx <= 0 {
		return nil, false
	}
	name := strings.TrimSpace(trimmed[:idx])
	if len(name) != 1 || !isNameLetter(name[0]) {
		return nil, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(trimmed[idx+1:]))
	if err != nil || n < 0 {
		return nil, false
	}
	return preamble.SymbolLine{Name: name, N: n}, true
}

func propToken(s string) (mat.Property, bool) {
	switch s {
	case "symmetric", "sym":
		return mat.Symmetric, true
	case "posdef", "pd":
		return mat.PosDef, true
	case "diag":
		return mat.Diagonal, true
	}
	return 0, false
}

func isNameLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
