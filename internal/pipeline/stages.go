package pipeline

import (
	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/cache"
	"github.com/cortexlang/matrizer/internal/emit"
	"github.com/cortexlang/matrizer/internal/parser"
	"github.com/cortexlang/matrizer/internal/preamble"
	"github.com/cortexlang/matrizer/internal/preprocess"
	"github.com/cortexlang/matrizer/internal/rewrite"
	"github.com/cortexlang/matrizer/internal/trace"
)

// cacheLookupError wraps a plain database/sql error as an ast.MError so
// every PipelineContext.Err is always the same interface, regardless of
// which stage set it.
func cacheLookupError(err error) ast.MError {
	return ast.NewAnalysisError("cache: " + err.Error())
}

// ParseProcessor splits ctx.Source into preamble lines and a raw expression,
// grounded on funxy/internal/parser.ParserProcessor's role as the pipeline's
// first stage.
type ParseProcessor struct{}

func (ParseProcessor) Process(ctx *PipelineContext) *PipelineContext {
	lines, expr, err := parser.ParseSource(ctx.Source)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Lines, ctx.Raw = lines, expr
	return ctx
}

// ResolveProcessor resolves ctx.Lines into a symbol table, grounded on
// funxy/internal/analyzer.SemanticAnalyzerProcessor's role as the stage that
// turns parsed syntax into a populated symbol table.
type ResolveProcessor struct{}

func (ResolveProcessor) Process(ctx *PipelineContext) *PipelineContext {
	table, err := preamble.Resolve(ctx.Lines)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Table = table
	for _, l := range ctx.Lines {
		if ml, ok := l.(preamble.MatrixLine); ok {
			ctx.Declared = append(ctx.Declared, ml.Name)
		}
	}
	return ctx
}

// PreprocessProcessor normalizes ctx.Raw under ctx.Table (spec.md §4.4).
type PreprocessProcessor struct{}

func (PreprocessProcessor) Process(ctx *PipelineContext) *PipelineContext {
	pre, err := preprocess.Preprocess(ctx.Raw, ctx.Table)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Pre = pre
	return ctx
}

// OptimizeProcessor runs the tabu-bounded rewrite search on ctx.Pre,
// consulting ctx.Cache first when one is configured and populating it on a
// miss. It never changes ctx.Best based on whether a cache is present — only
// whether the search is redone.
type OptimizeProcessor struct {
	// Key, when Cache is set, is the cache key for this context's input.
	// Left empty, OptimizeProcessor computes it from ctx.Pre/ctx.Table/
	// ctx.Declared on demand.
	Key string
}

func (op OptimizeProcessor) Process(ctx *PipelineContext) *PipelineContext {
	tr := ctx.Tracer
	if tr == nil {
		tr = trace.Discard()
	}

	if ctx.Cache != nil {
		key := op.Key
		if key == "" {
			key = cache.Key(ctx.Pre, ctx.Table, ctx.Declared)
		}
		if cost, tree, ok, err := ctx.Cache.Lookup(key); err != nil {
			ctx.Err = cacheLookupError(err)
			return ctx
		} else if ok {
			ctx.Cost, ctx.Best, ctx.Cached = cost, tree, true
			return ctx
		}

		best, tree, err := rewrite.OptimizeTraced(ctx.Pre, ctx.Table, ctx.Config, tr)
		if err != nil {
			ctx.Err = err
			return ctx
		}
		ctx.Cost, ctx.Best = best, tree
		if perr := ctx.Cache.Put(key, best, tree); perr != nil {
			ctx.Err = cacheLookupError(perr)
		}
		return ctx
	}

	best, tree, err := rewrite.OptimizeTraced(ctx.Pre, ctx.Table, ctx.Config, tr)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Cost, ctx.Best = best, tree
	return ctx
}

// EmitProcessor renders ctx.Best into the target library's syntax. It is
// always the pipeline's last stage: nothing downstream reads ctx.Pre or
// ctx.Best once Rendered is set.
type EmitProcessor struct{}

func (EmitProcessor) Process(ctx *PipelineContext) *PipelineContext {
	ctx.Rendered = emit.Emit(ctx.Best)
	return ctx
}
