// Package trace provides an opt-in, human-readable narration of the
// rewrite search: which rule fired, at what cost, and which tree was
// finally selected. It never influences the search itself — a Tracer only
// observes internal/rewrite.OptimizeTraced, so discarding it changes
// nothing about the returned (cost, tree) pair.
package trace

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Tracer narrates one Optimize call, tagged with a request ID so output
// from concurrent callers can be told apart.
type Tracer struct {
	out       io.Writer
	requestID string
	colorize  bool
}

// New returns a Tracer writing to out, tagging every line with requestID.
// Rule names and the final selection are colorized only when out is a
// terminal, the same gate funxy/internal/evaluator's terminal-aware
// builtins use github.com/mattn/go-isatty for.
func New(out io.Writer, requestID string) *Tracer {
	colorize := false
	if f, ok := out.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Tracer{out: out, requestID: requestID, colorize: colorize}
}

// Discard returns a Tracer that narrates nothing. Use it whenever tracing
// hasn't been explicitly requested, so the search pays no formatting cost.
func Discard() *Tracer {
	return &Tracer{out: io.Discard}
}

// Rule narrates one rewrite rule firing during the search.
func (t *Tracer) Rule(rule string, cost int, tree string) {
	if t.out == io.Discard {
		return
	}
	if t.colorize {
		fmt.Fprintf(t.out, "[%s] \x1b[36m%s\x1b[0m -> cost %d: %s\n", t.requestID, rule, cost, tree)
		return
	}
	fmt.Fprintf(t.out, "[%s] %s -> cost %d: %s\n", t.requestID, rule, cost, tree)
}

// Selected narrates the tree the search finally picked.
func (t *Tracer) Selected(cost int, tree string) {
	if t.out == io.Discard {
		return
	}
	if t.colorize {
		fmt.Fprintf(t.out, "[%s] \x1b[32mselected\x1b[0m cost %d: %s\n", t.requestID, cost, tree)
		return
	}
	fmt.Fprintf(t.out, "[%s] selected cost %d: %s\n", t.requestID, cost, tree)
}
