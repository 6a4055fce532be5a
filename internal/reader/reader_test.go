package reader_test

import (
	"testing"

	"github.com/funvibe/funxy-inferrer/internal/ast"
	"github.com/funvibe/funxy-inferrer/internal/diagnostics"
	"github.com/funvibe/funxy-inferrer/internal/lexer"
	"github.com/funvibe/funxy-inferrer/internal/reader"
)

func readProgram(t *testing.T, input string) (*ast.CompoundExpression, *diagnostics.Sink) {
	t.Helper()
	l := lexer.New(input)
	ts := lexer.NewTokenStream(l)
	sink := diagnostics.NewSink()
	r := reader.New(ts, sink, "f.duck")
	return r.ReadProgram(), sink
}

func TestReadProgramFlatSiblings(t *testing.T) {
	root, sink := readProgram(t, "a b c")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
	if root.Kind != ast.Expression {
		t.Fatalf("got root kind %v", root.Kind)
	}
	if len(root.Children) != 3 {
		t.Fatalf("got %d top-level children, want 3", len(root.Children))
	}
	for i, name := range []string{"a", "b", "c"} {
		if root.Children[i].Kind != ast.Identifier || string(root.Children[i].Name) != name {
			t.Errorf("child %d: got %+v", i, root.Children[i])
		}
	}
}

func TestReadProgramParenGroupIsLiteralExpression(t *testing.T) {
	root, sink := readProgram(t, "(foo bar)")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
	if len(root.Children) != 1 {
		t.Fatalf("got %d top-level children, want 1", len(root.Children))
	}
	group := root.Children[0]
	if group.Kind != ast.LiteralExpression {
		t.Fatalf("got kind %v, want LiteralExpression", group.Kind)
	}
	if len(group.Children) != 2 {
		t.Fatalf("got %d children in group, want 2", len(group.Children))
	}
}

func TestReadProgramLeafKinds(t *testing.T) {
	root, sink := readProgram(t, `5 2.5 "s" true false #cb ident`)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
	want := []ast.Kind{ast.Integer, ast.Float, ast.String, ast.Bool, ast.Bool, ast.Callback, ast.Identifier}
	if len(root.Children) != len(want) {
		t.Fatalf("got %d children, want %d", len(root.Children), len(want))
	}
	for i, k := range want {
		if root.Children[i].Kind != k {
			t.Errorf("child %d: got kind %v, want %v", i, root.Children[i].Kind, k)
		}
	}
	if !root.Children[3].Bool || root.Children[4].Bool {
		t.Errorf("boolean literals parsed wrong: %+v %+v", root.Children[3], root.Children[4])
	}
}

func TestReadProgramUnbalancedParens(t *testing.T) {
	_, sink := readProgram(t, "(foo bar")
	if !sink.HasErrors() {
		t.Fatal("expected an unbalanced-parenthesis diagnostic")
	}
	if sink.Errors()[0].Code != diagnostics.ErrR001 {
		t.Errorf("got error code %v, want %v", sink.Errors()[0].Code, diagnostics.ErrR001)
	}
}

func TestReadProgramUnexpectedCloseParen(t *testing.T) {
	_, sink := readProgram(t, "foo)")
	if !sink.HasErrors() {
		t.Fatal("expected an unexpected-token diagnostic")
	}
	if sink.Errors()[0].Code != diagnostics.ErrR002 {
		t.Errorf("got error code %v, want %v", sink.Errors()[0].Code, diagnostics.ErrR002)
	}
}
