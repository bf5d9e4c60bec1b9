package parser

import (
	"fmt"
	"strings"

	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/preamble"
)

// ParseSource splits src into its preamble lines and its trailing matrix
// expression, per the CLI contract in spec.md §6: preamble lines run until
// the first line that matches none of the three preamble productions, and
// everything from there on is the expression body.
func ParseSource(src string) ([]preamble.Line, ast.Expr, ast.MError) {
	raw := strings.Split(src, "\n")

	i := 0
	var lines []preamble.Line
	for ; i < len(raw); i++ {
		line, ok := scanPreambleLine(raw[i])
		if !ok {
			break
		}
		lines = append(lines, line)
	}

	expr, err := ParseExpr(strings.Join(raw[i:], "\n"))
	if err != nil {
		return nil, nil, err
	}
	return lines, expr, nil
}

// ParsePreambleLines parses every line in raws as a preamble line, failing
// if any one of them matches none of the three preamble productions. Use
// this (rather than ParseSource) when the caller has already separated the
// preamble text from the expression body.
func ParsePreambleLines(raws []string) ([]preamble.Line, ast.MError) {
	lines := make([]preamble.Line, 0, len(raws))
	for _, raw := range raws {
		line, ok := scanPreambleLine(raw)
		if !ok {
			return nil, ast.NewParserError(fmt.Errorf("not a valid preamble line: %q", raw))
		}
		lines = append(lines, line)
	}
	return lines, nil
}
