// Package matrizer is the embeddable, consumer-facing facade over
// Matrizer's analysis pipeline: spec.md §6's ResolvePreamble, Preprocess,
// DescriptorOf, Flops, Optimize, and Emit. It is the thin public wrapper
// other Go programs import instead of reaching into internal/*, the same
// role funxy/pkg/embed plays for the Funxy VM.
package matrizer

import (
	"github.com/cortexlang/matrizer/internal/analyzer"
	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/cache"
	"github.com/cortexlang/matrizer/internal/cost"
	"github.com/cortexlang/matrizer/internal/emit"
	"github.com/cortexlang/matrizer/internal/engine"
	"github.com/cortexlang/matrizer/internal/mat"
	"github.com/cortexlang/matrizer/internal/parser"
	"github.com/cortexlang/matrizer/internal/pipeline"
	"github.com/cortexlang/matrizer/internal/preamble"
	"github.com/cortexlang/matrizer/internal/preprocess"
	"github.com/cortexlang/matrizer/internal/rewrite"
	"github.com/cortexlang/matrizer/internal/symbols"
	"github.com/cortexlang/matrizer/internal/trace"
)

// Expr, SymbolTable, Matrix and Error alias their internal/* counterparts
// so callers of this package never need an internal/* import of their own.
type (
	Expr        = ast.Expr
	SymbolTable = symbols.Table
	Matrix      = mat.Matrix
	Error       = ast.MError
)

// ResolvePreamble turns already-separated preamble lines into a symbol
// table, per spec.md §4.1.
func ResolvePreamble(lines []string) (*SymbolTable, Error) {
	parsed, err := parser.ParsePreambleLines(lines)
	if err != nil {
		return nil, err
	}
	return preamble.Resolve(parsed)
}

// Preprocess normalizes expr under table: identity-leaf size inference and
// scalar-product reclassification (spec.md §4.4).
func Preprocess(expr Expr, table *SymbolTable) (Expr, Error) {
	return preprocess.Preprocess(expr, table)
}

// DescriptorOf computes the Matrix descriptor of expr under table (spec.md
// §4.2).
func DescriptorOf(expr Expr, table *SymbolTable) (Matrix, Error) {
	return analyzer.DescriptorOf(expr, table)
}

// Flops computes the FLOP cost of expr under table (spec.md §4.5).
func Flops(expr Expr, table *SymbolTable) (int, Error) {
	return cost.Flops(expr, table)
}

// Optimize searches expr's rewrite closure under table and returns the
// lowest-FLOP equivalent tree and its cost (spec.md §4.6), using the
// engine's default configuration and no search narration.
func Optimize(expr Expr, table *SymbolTable) (int, Expr, Error) {
	return rewrite.OptimizeTraced(expr, table, engine.Default(), trace.Discard())
}

// OptimizeWithConfig is Optimize generalized to an explicit engine.Config
// (closure cap, disabled rules) and narrated through tr. Pass trace.Discard()
// to opt out of narration while still applying cfg.
func OptimizeWithConfig(expr Expr, table *SymbolTable, cfg engine.Config, tr *trace.Tracer) (int, Expr, Error) {
	return rewrite.OptimizeTraced(expr, table, cfg, tr)
}

// Emit renders expr as NumPy source, per spec.md §6's target mapping.
func Emit(expr Expr) string {
	return emit.Emit(expr)
}

// ParseProgram splits src into its preamble and matrix expression, parses
// both, and resolves the preamble to a symbol table — the supplemented
// surface syntax from SPEC_FULL.md §14. It is the one-call convenience a
// CLI or REPL driving a whole source file reaches for instead of chaining
// ResolvePreamble and a bare parser itself. declared is every matrix name
// the preamble declared, in source order, for callers (e.g. a result cache)
// that need to know exactly which symbol table entries an expression can
// depend on.
func ParseProgram(src string) (table *SymbolTable, declared []string, expr Expr, err Error) {
	lines, expr, err := parser.ParseSource(src)
	if err != nil {
		return nil, nil, nil, err
	}
	table, err = preamble.Resolve(lines)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, l := range lines {
		if ml, ok := l.(preamble.MatrixLine); ok {
			declared = append(declared, ml.Name)
		}
	}
	return table, declared, expr, nil
}

// Result is the outcome of running a whole Matrizer source file through
// Run: the lowest-FLOP equivalent tree found, its cost, and its rendering.
type Result struct {
	Cost     int
	Tree     Expr
	Rendered string
	// Cached reports whether store (if non-nil) already held this result.
	Cached bool
}

// Run drives the full parse -> resolve -> preprocess -> optimize -> emit
// chain over src using internal/pipeline's Processor chain, the same
// sequence ParseProgram plus the other facade calls would run by hand. Pass
// a nil store to skip the result cache. This is the one-call convenience an
// embedder reaches for instead of assembling ResolvePreamble, Preprocess,
// Optimize and Emit itself.
func Run(src string, cfg engine.Config, tr *trace.Tracer, store *cache.Store) (Result, Error) {
	ctx := &pipeline.PipelineContext{Source: src, Config: cfg, Tracer: tr, Cache: store}
	ctx = pipeline.New(
		pipeline.ParseProcessor{},
		pipeline.ResolveProcessor{},
		pipeline.PreprocessProcessor{},
		pipeline.OptimizeProcessor{},
		pipeline.EmitProcessor{},
	).Run(ctx)
	if ctx.Err != nil {
		return Result{}, ctx.Err
	}
	return Result{Cost: ctx.Cost, Tree: ctx.Best, Rendered: ctx.Rendered, Cached: ctx.Cached}, nil
}
