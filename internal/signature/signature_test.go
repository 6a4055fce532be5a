package signature_test

import (
	"errors"
	"testing"

	"github.com/funvibe/funxy-inferrer/internal/ast"
	"github.com/funvibe/funxy-inferrer/internal/diagnostics"
	"github.com/funvibe/funxy-inferrer/internal/signature"
)

func ident(name string) ast.CompoundExpression { return ast.NewIdentifier([]byte(name)) }

func TestBuildBareSymbols(t *testing.T) {
	sink := diagnostics.NewSink()

	sig, err := signature.Build(ident("L"), sink, "f.duck")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.Kind != signature.KindSymbol || sig.Symbol != signature.SymbolL {
		t.Errorf("got %+v", sig)
	}

	sig, err = signature.Build(ident("I"), sink, "f.duck")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.Kind != signature.KindSymbol || sig.Symbol != signature.SymbolI {
		t.Errorf("got %+v", sig)
	}

	if sink.HasErrors() {
		t.Errorf("did not expect diagnostics, got %v", sink.Errors())
	}
}

func TestBuildInvalidSymbol(t *testing.T) {
	sink := diagnostics.NewSink()
	_, err := signature.Build(ident("Q"), sink, "f.duck")
	if !errors.Is(err, signature.ErrInvalidSignatureSymbol) {
		t.Fatalf("got error %v", err)
	}
	if !sink.HasErrors() {
		t.Error("expected a diagnostic to be pushed")
	}
}

func TestBuildPositionalOnly(t *testing.T) {
	sink := diagnostics.NewSink()
	children := []ast.CompoundExpression{ident("I"), ident("I"), ident("L")}
	sig, err := signature.Build(ast.NewExpression(children), sink, "f.duck")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.Kind != signature.KindExpression {
		t.Fatalf("got kind %v", sig.Kind)
	}
	if len(sig.Positional) != 3 {
		t.Fatalf("got %d positional slots, want 3", len(sig.Positional))
	}
	if sig.Variadic {
		t.Error("did not expect a variadic signature")
	}
}

func TestBuildAcceptsLiteralExpressionAsSignature(t *testing.T) {
	sink := diagnostics.NewSink()
	children := []ast.CompoundExpression{ident("I"), ident("I"), ident("I")}

	viaExpression, err := signature.Build(ast.NewExpression(children), sink, "f.duck")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	viaLiteral, err := signature.Build(ast.NewLiteralExpression(children), sink, "f.duck")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(viaExpression.Positional) != len(viaLiteral.Positional) {
		t.Errorf("LiteralExpression and Expression signatures diverged: %+v vs %+v", viaExpression, viaLiteral)
	}
}

func TestBuildWithRest(t *testing.T) {
	sink := diagnostics.NewSink()
	children := []ast.CompoundExpression{
		ident("L"), ident("L"),
		ident("&rest"), ast.NewInteger(0), ident("I"),
	}
	sig, err := signature.Build(ast.NewExpression(children), sink, "f.duck")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sig.Positional) != 2 {
		t.Fatalf("got %d positional slots, want 2", len(sig.Positional))
	}
	if !sig.Variadic {
		t.Fatal("expected a variadic signature")
	}
	if sig.DefaultRestCount != 0 {
		t.Errorf("got DefaultRestCount %d, want 0", sig.DefaultRestCount)
	}
	if sig.Rest == nil || sig.Rest.Symbol != signature.SymbolI {
		t.Errorf("got rest slot %+v", sig.Rest)
	}
}

// TestBuildDuplicateRest: a second &rest marker can never sit at the
// one valid rest position (len-3), so two &rest markers in the same
// signature always surface as a misplaced marker (RestArity) — the
// earlier one is caught by the position check before duplicate
// detection would ever run.
func TestBuildDuplicateRest(t *testing.T) {
	sink := diagnostics.NewSink()
	children := []ast.CompoundExpression{
		ident("&rest"), ast.NewInteger(1), ident("I"),
		ident("&rest"), ast.NewInteger(2), ident("I"),
	}
	_, err := signature.Build(ast.NewExpression(children), sink, "f.duck")
	if !errors.Is(err, signature.ErrRestArity) {
		t.Fatalf("got error %v", err)
	}
}

// TestBuildMisplacedRest checks spec.md:58's requirement directly: a
// &rest marker must sit at position len-3 or the whole signature is
// rejected with RestArity, rather than being silently accepted as an
// extra positional slot ahead of the rest.
func TestBuildMisplacedRest(t *testing.T) {
	sink := diagnostics.NewSink()
	children := []ast.CompoundExpression{ident("I"), ident("&rest"), ast.NewInteger(0), ident("I"), ident("I")}
	_, err := signature.Build(ast.NewExpression(children), sink, "f.duck")
	if !errors.Is(err, signature.ErrRestArity) {
		t.Fatalf("got error %v", err)
	}
	if !sink.HasErrors() {
		t.Error("expected a diagnostic to be pushed for the misplaced &rest marker")
	}
}

func TestBuildRestCountNotInteger(t *testing.T) {
	sink := diagnostics.NewSink()
	children := []ast.CompoundExpression{ident("&rest"), ident("oops"), ident("I")}
	_, err := signature.Build(ast.NewExpression(children), sink, "f.duck")
	if !errors.Is(err, signature.ErrRestCountNotInteger) {
		t.Fatalf("got error %v", err)
	}
}

func TestBuildRestCountNegative(t *testing.T) {
	sink := diagnostics.NewSink()
	children := []ast.CompoundExpression{ident("&rest"), ast.NewInteger(-1), ident("I")}
	_, err := signature.Build(ast.NewExpression(children), sink, "f.duck")
	if !errors.Is(err, signature.ErrRestArity) {
		t.Fatalf("got error %v", err)
	}
}

func TestBuildLiteralValueAsSignatureIsInvalid(t *testing.T) {
	sink := diagnostics.NewSink()
	_, err := signature.Build(ast.NewInteger(5), sink, "f.duck")
	if !errors.Is(err, signature.ErrInvalidSignature) {
		t.Fatalf("got error %v", err)
	}
}
