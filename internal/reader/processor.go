package reader

import (
	"github.com/funvibe/funxy-inferrer/internal/diagnostics"
	"github.com/funvibe/funxy-inferrer/internal/pipeline"
)

// ReaderProcessor is the pipeline stage that turns ctx.TokenStream into
// ctx.AstRoot, replacing the teacher's full-grammar ParserProcessor —
// this reader only groups parens and tags leaf kinds (§6), it does not
// parse a grammar.
type ReaderProcessor struct{}

func (rp *ReaderProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		ctx.Errors = append(ctx.Errors, diagnostics.NewReaderError(diagnostics.ErrR002, ctx.FilePath, 0, "<no token stream>"))
		return ctx
	}
	sink := diagnostics.NewSink()
	r := New(ctx.TokenStream, sink, ctx.FilePath)
	ctx.AstRoot = r.ReadProgram()
	ctx.Errors = append(ctx.Errors, sink.Errors()...)
	return ctx
}
