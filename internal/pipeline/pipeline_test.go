package pipeline_test

import (
	"testing"

	"github.com/funvibe/funxy-inferrer/internal/infer"
	"github.com/funvibe/funxy-inferrer/internal/lexer"
	"github.com/funvibe/funxy-inferrer/internal/pipeline"
	"github.com/funvibe/funxy-inferrer/internal/prettyprinter"
	"github.com/funvibe/funxy-inferrer/internal/reader"
)

func TestPipelineRunsAllThreeStages(t *testing.T) {
	p := pipeline.New(
		&lexer.LexerProcessor{},
		&reader.ReaderProcessor{},
		&infer.InferProcessor{},
	)

	ctx := pipeline.NewPipelineContext(`(declare if (I I I)) if true 1 2`)
	ctx.FilePath = "f.duck"
	ctx = p.Run(ctx)

	if len(ctx.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", ctx.Errors)
	}
	if ctx.AstRoot == nil {
		t.Fatal("expected AstRoot to be populated")
	}
	if ctx.RootScope == nil {
		t.Fatal("expected RootScope to be populated")
	}

	want := `((declare if (I I I)) (if true 1 2))`
	if got := prettyprinter.Print(ctx.AstRoot); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPipelineSurfacesReaderErrors(t *testing.T) {
	p := pipeline.New(
		&lexer.LexerProcessor{},
		&reader.ReaderProcessor{},
		&infer.InferProcessor{},
	)

	ctx := pipeline.NewPipelineContext(`(foo bar`)
	ctx.FilePath = "f.duck"
	ctx = p.Run(ctx)

	if len(ctx.Errors) == 0 {
		t.Fatal("expected an unbalanced-parenthesis error to surface")
	}
}
