// Package rewrite implements spec.md §4.6: the finite rule set, the
// breadcrumb-path (zipper) walk that applies each rule at every position in
// a tree, and the tabu-bounded breadth-first search over the resulting
// rewrite closure.
package rewrite

import (
	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/cost"
	"github.com/cortexlang/matrizer/internal/symbols"
)

// rewriteOnce returns every tree reachable from e by applying exactly one
// rule at exactly one position.
func rewriteOnce(e ast.Expr) []ast.Expr {
	var out []ast.Expr
	walk(zipTop(e), func(z zipper) {
		for _, r := range rules {
			if g, ok := r(z.focus); ok {
				out = append(out, z.rebuildWhole(g))
			}
		}
	})
	return out
}

// Closure returns the full rewrite closure of t0: every tree reachable by
// any number of rule applications, each appearing once, in the order first
// discovered by a breadth-first search. The search is tabu-bounded by seen,
// which exploits Expr's comparable-struct design to use a plain Go map
// instead of a hand-rolled equality or hash function.
//
// maxSize caps the closure; 0 means unbounded. Exceeding it reports an
// analysis error rather than silently truncating, so a runaway closure
// never passes for a complete one.
func Closure(t0 ast.Expr, maxSize int) ([]ast.Expr, ast.MError) {
	seen := map[ast.Expr]bool{t0: true}
	order := []ast.Expr{t0}
	queue := []ast.Expr{t0}

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		for _, g := range rewriteOnce(t) {
			if seen[g] {
				continue
			}
			if maxSize > 0 && len(order) >= maxSize {
				return nil, ast.NewAnalysisError("rewrite search space exceeded the configured limit")
			}
			seen[g] = true
			order = append(order, g)
			queue = append(queue, g)
		}
	}
	return order, nil
}

// Optimize returns the lowest-FLOP tree in t0's rewrite closure under
// table, along with its cost. Ties are broken by ast.Key so the result is
// deterministic regardless of map or slice iteration order.
func Optimize(t0 ast.Expr, table *symbols.Table, maxClosureSize int) (int, ast.Expr, ast.MError) {
	closure, err := Closure(t0, maxClosureSize)
	if err != nil {
		return 0, nil, err
	}

	bestCost := -1
	var best ast.Expr
	var bestKey string

	for _, g := range closure {
		c, cerr := cost.Flops(g, table)
		if cerr != nil {
			return 0, nil, cerr
		}
		k := ast.Key(g)
		if bestCost == -1 || c < bestCost || (c == bestCost && k < bestKey) {
			bestCost, best, bestKey = c, g, k
		}
	}
	return bestCost, best, nil
}
