// Command funxy-infer runs the parenthesis inference pass over a
// duck-lisp-style source file (or stdin) and prints the rewritten,
// fully-parenthesized program.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/funvibe/funxy-inferrer/internal/infer"
	"github.com/funvibe/funxy-inferrer/internal/lexer"
	"github.com/funvibe/funxy-inferrer/internal/pipeline"
	"github.com/funvibe/funxy-inferrer/internal/prettyprinter"
	"github.com/funvibe/funxy-inferrer/internal/reader"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") != "" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "funxy-infer: internal error: %v\n", r)
			os.Exit(2)
		}
	}()

	args := os.Args[1:]
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		handleHelp()
		return
	}

	trace := false
	tree := false
	var fileArgs []string
	for _, a := range args {
		switch a {
		case "-trace":
			trace = true
		case "-tree":
			tree = true
		default:
			fileArgs = append(fileArgs, a)
		}
	}

	source, file, err := readInputFromArgs(fileArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "funxy-infer: %v\n", err)
		os.Exit(1)
	}

	ctx := runPipeline(source, file, trace)

	if len(ctx.Errors) > 0 {
		for _, e := range ctx.Errors {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(1)
	}

	if tree {
		fmt.Println(prettyprinter.PrintTree(ctx.AstRoot))
	} else {
		fmt.Println(prettyprinter.Print(ctx.AstRoot))
	}
}

func handleHelp() {
	fmt.Println(`funxy-infer - parenthesis inference for duck-lisp-style source

Usage:
  funxy-infer [flags] [file]

If no file is given, source is read from stdin.

Flags:
  -trace   print one line per inference dispatch decision to stderr
  -tree    print the rewritten program as an indented tree instead of
           flat surface syntax
  -h, --help  show this message`)
}

func readInputFromArgs(args []string) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), path, nil
}

type stderrTracer struct{}

func (stderrTracer) Event(kind, detail string) {
	fmt.Fprintf(os.Stderr, "trace: %-12s %s\n", kind, detail)
}

func runPipeline(source, file string, trace bool) *pipeline.PipelineContext {
	var tracer infer.Tracer
	if trace {
		tracer = stderrTracer{}
	}

	p := pipeline.New(
		&lexer.LexerProcessor{},
		&reader.ReaderProcessor{},
		&infer.InferProcessor{Tracer: tracer},
	)

	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = file
	return p.Run(ctx)
}
