package rewrite

import (
	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/cost"
	"github.com/cortexlang/matrizer/internal/engine"
	"github.com/cortexlang/matrizer/internal/symbols"
	"github.com/cortexlang/matrizer/internal/trace"
)

// OptimizeTraced is Optimize generalized to an engine.Config (closure cap,
// disabled rules) and narrated through tr as the search proceeds. Passing
// trace.Discard() makes it behave exactly like Optimize with the config's
// cap and rule set applied; it never changes the returned (cost, tree)
// pair based on whether tr narrates anything.
func OptimizeTraced(t0 ast.Expr, table *symbols.Table, cfg engine.Config, tr *trace.Tracer) (int, ast.Expr, ast.MError) {
	active := filterNamedRules(cfg.DisabledRules)

	seen := map[ast.Expr]bool{t0: true}
	order := []ast.Expr{t0}
	queue := []ast.Expr{t0}

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		for _, st := range rewriteOnceNamed(t, active) {
			if seen[st.tree] {
				continue
			}
			if cfg.MaxClosureSize > 0 && len(order) >= cfg.MaxClosureSize {
				return 0, nil, ast.NewAnalysisError("rewrite search space exceeded the configured limit")
			}
			seen[st.tree] = true
			order = append(order, st.tree)
			queue = append(queue, st.tree)

			c, cerr := cost.Flops(st.tree, table)
			if cerr != nil {
				return 0, nil, cerr
			}
			tr.Rule(st.rule, c, ast.Key(st.tree))
		}
	}

	bestCost := -1
	var best ast.Expr
	var bestKey string
	for _, g := range order {
		c, cerr := cost.Flops(g, table)
		if cerr != nil {
			return 0, nil, cerr
		}
		k := ast.Key(g)
		if bestCost == -1 || c < bestCost || (c == bestCost && k < bestKey) {
			bestCost, best, bestKey = c, g, k
		}
	}
	tr.Selected(bestCost, bestKey)
	return bestCost, best, nil
}
