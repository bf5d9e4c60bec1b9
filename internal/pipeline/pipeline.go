// Package pipeline chains Matrizer's CLI stages — parse, resolve, preprocess,
// optimize, emit — as independently testable Processor values sharing one
// mutable PipelineContext, the same Processor/Pipeline shape
// funxy/internal/pipeline uses to chain its own lex/parse/analyze stages.
//
// Unlike funxy's Pipeline, which keeps running every stage so an LSP client
// can collect diagnostics from parsing and analysis in the same pass,
// Matrizer's Run stops at the first stage that sets ctx.Err: spec.md §7
// specifies strict first-failure propagation for a single source file, not
// best-effort multi-diagnostic collection.
package pipeline

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline runs a fixed sequence of Processors over one PipelineContext.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from processors, run in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline starting from initialCtx, short-circuiting as
// soon as a stage leaves ctx.Err set.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
		if ctx.Err != nil {
			return ctx
		}
	}
	return ctx
}
