package rewrite

import "github.com/cortexlang/matrizer/internal/ast"

// Rule names as referenced by engine.Config.DisabledRules. Exported so a
// config document can name a rule without reaching into this package's
// unexported rule table.
const (
	RuleAssocMultLeft     = "assoc-mult-left"
	RuleAssocMultRight    = "assoc-mult-right"
	RuleCommonFactorLeft  = "common-factor-left"
	RuleCommonFactorRight = "common-factor-right"
)

// namedRule pairs a rule with the name config uses to refer to it.
type namedRule struct {
	name string
	fn   rule
}

var namedRules = []namedRule{
	{RuleAssocMultLeft, assocMultLeft},
	{RuleAssocMultRight, assocMultRight},
	{RuleCommonFactorLeft, commonFactorLeft},
	{RuleCommonFactorRight, commonFactorRight},
}

// filterNamedRules returns namedRules with every entry in disabled removed.
func filterNamedRules(disabled []string) []namedRule {
	if len(disabled) == 0 {
		return namedRules
	}
	skip := make(map[string]bool, len(disabled))
	for _, d := range disabled {
		skip[d] = true
	}
	out := make([]namedRule, 0, len(namedRules))
	for _, nr := range namedRules {
		if !skip[nr.name] {
			out = append(out, nr)
		}
	}
	return out
}

// step is one discovered rewrite: the tree it produced and the rule that
// fired to produce it, used only for narration (internal/trace).
type step struct {
	tree ast.Expr
	rule string
}

// rewriteOnceNamed is rewriteOnce's counterpart that also reports which
// rule produced each successor, for OptimizeTraced.
func rewriteOnceNamed(e ast.Expr, rs []namedRule) []step {
	var out []step
	walk(zipTop(e), func(z zipper) {
		for _, nr := range rs {
			if g, ok := nr.fn(z.focus); ok {
				out = append(out, step{tree: z.rebuildWhole(g), rule: nr.name})
			}
		}
	})
	return out
}
