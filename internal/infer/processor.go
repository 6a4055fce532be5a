package infer

import (
	"github.com/funvibe/funxy-inferrer/internal/pipeline"
)

// InferProcessor is the pipeline stage that runs the parenthesis
// inference pass over ctx.AstRoot, replacing the teacher's
// SemanticAnalyzerProcessor — there is no type checking here, only
// arity-driven rewriting (§1).
type InferProcessor struct {
	Runner DeclaratorRunner
	Tracer Tracer
}

func (ip *InferProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}
	st := New(ctx.FilePath, ip.Runner, ip.Tracer)
	// Per §7, every error Run can return was already pushed to st.Sink
	// at the point it occurred, so there is nothing further to record
	// here — Run's error return only tells the caller the pass stopped
	// early, it does not carry information the sink lacks.
	_ = st.Run(ctx.AstRoot)
	ctx.RootScope = st.Scopes
	ctx.Errors = append(ctx.Errors, st.Sink.Errors()...)
	return ctx
}
