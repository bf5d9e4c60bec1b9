package pipeline

import (
	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/cache"
	"github.com/cortexlang/matrizer/internal/engine"
	"github.com/cortexlang/matrizer/internal/preamble"
	"github.com/cortexlang/matrizer/internal/symbols"
	"github.com/cortexlang/matrizer/internal/trace"
)

// PipelineContext carries one source file's state through every stage,
// the same shared-mutable-context shape funxy/internal/pipeline.PipelineContext
// plays for its lex/parse/analyze chain.
type PipelineContext struct {
	// Source is the raw program text. Set by the caller before Run.
	Source string

	// Config and Tracer configure the OptimizeProcessor stage. Set by the
	// caller before Run; Tracer defaults to trace.Discard() if left nil.
	Config engine.Config
	Tracer *trace.Tracer

	// Cache is an optional result store consulted by OptimizeProcessor; a
	// nil Cache simply disables memoization.
	Cache *cache.Store

	Lines    []preamble.Line
	Table    *symbols.Table
	Declared []string

	Raw ast.Expr
	Pre ast.Expr

	Cost int
	Best ast.Expr

	// Cached reports whether Best was served from Cache rather than found by
	// a fresh OptimizeProcessor search.
	Cached bool

	// Rendered is ctx.Best in the target library's syntax, set by
	// EmitProcessor.
	Rendered string

	Err ast.MError
}
