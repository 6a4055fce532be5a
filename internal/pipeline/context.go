package pipeline

import (
	"github.com/funvibe/funxy-inferrer/internal/ast"
	"github.com/funvibe/funxy-inferrer/internal/declscope"
	"github.com/funvibe/funxy-inferrer/internal/diagnostics"
)

// PipelineContext holds all the data passed between pipeline stages:
// lexer -> reader -> infer.
type PipelineContext struct {
	SourceCode  string
	FilePath    string // path to the source file, if any
	TokenStream TokenStream
	AstRoot     *ast.CompoundExpression
	RootScope   *declscope.Stack
	Errors      []*diagnostics.DiagnosticError
}

// NewPipelineContext creates and initializes a new PipelineContext.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		SourceCode: source,
		Errors:     []*diagnostics.DiagnosticError{},
	}
}
