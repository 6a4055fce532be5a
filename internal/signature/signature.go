// Package signature implements the arity-signature data model and the
// signature builder that reads one off an AST fragment (§4.1 of the
// design): the shape a declared identifier's call must take before the
// inference engine will rewrite bare sibling runs into it.
package signature

import (
	"errors"
	"fmt"

	"github.com/funvibe/funxy-inferrer/internal/ast"
	"github.com/funvibe/funxy-inferrer/internal/config"
	"github.com/funvibe/funxy-inferrer/internal/diagnostics"
)

// Kind distinguishes a leaf arity symbol from an expression-shaped
// signature (a function's full argument list).
type Kind int

const (
	KindSymbol Kind = iota
	KindExpression
)

// Symbol is the payload of a KindSymbol signature: L marks a slot whose
// argument is taken literally (never descended into for inference), I
// marks a slot whose argument is itself inferred.
type Symbol int

const (
	SymbolL Symbol = iota
	SymbolI
)

func (s Symbol) String() string {
	if s == SymbolL {
		return "L"
	}
	return "I"
}

// Signature is the tagged variant described in the design notes:
// either a bare L/I symbol, or an expression shape carrying a
// positional list and an optional variadic rest.
type Signature struct {
	Kind Kind

	// Valid when Kind == KindSymbol.
	Symbol Symbol

	// Valid when Kind == KindExpression.
	Positional       []Signature
	Rest             *Signature
	DefaultRestCount int
	Variadic         bool
}

var (
	ErrInvalidSignatureSymbol = errors.New("invalid signature symbol")
	ErrInvalidSignature       = errors.New("invalid signature")
	ErrDuplicateRest          = errors.New("duplicate &rest marker")
	ErrRestArity              = errors.New("&rest default count out of range")
	ErrRestCountNotInteger    = errors.New("&rest default count is not an integer")
)

// Build reads a Signature off ce. ce may be Identifier/Callback (a bare
// L/I symbol) or Expression/LiteralExpression (a function's full
// argument shape, scanning for an optional trailing &rest marker).
// LiteralExpression is accepted on equal footing with Expression: by
// the time a signature reaches this builder its outer tag only records
// how the reader first saw it, not whether it describes a type.
// Every rejection pushes one diagnostic to sink before returning an
// error.
func Build(ce ast.CompoundExpression, sink *diagnostics.Sink, file string) (Signature, error) {
	switch ce.Kind {
	case ast.Identifier, ast.Callback:
		switch string(ce.Name) {
		case config.SignatureSymbolL:
			return Signature{Kind: KindSymbol, Symbol: SymbolL}, nil
		case config.SignatureSymbolI:
			return Signature{Kind: KindSymbol, Symbol: SymbolI}, nil
		default:
			sink.Push(diagnostics.NewInferenceError(diagnostics.ErrI005, file, string(ce.Name)))
			return Signature{}, fmt.Errorf("%w: %q", ErrInvalidSignatureSymbol, ce.Name)
		}

	case ast.Expression, ast.LiteralExpression:
		return buildExpressionSignature(ce.Children, sink, file)

	default:
		sink.Push(diagnostics.NewInferenceError(diagnostics.ErrI006, file, "literal value used as a signature"))
		return Signature{}, fmt.Errorf("%w: literal value used as a signature", ErrInvalidSignature)
	}
}

func buildExpressionSignature(children []ast.CompoundExpression, sink *diagnostics.Sink, file string) (Signature, error) {
	var positional []Signature
	var rest *Signature
	defaultRestCount := 0
	variadic := false
	restSeen := false

	i := 0
	for i < len(children) {
		child := children[i]
		isRestMarker := child.Kind == ast.Identifier && string(child.Name) == config.RestKeyword

		if isRestMarker && i != len(children)-3 {
			// &rest only introduces the variadic tail when it marks the
			// last three elements (&rest <count> <type>); anywhere else
			// it is a misplaced marker, not a positional slot (spec §5.8).
			sink.Push(diagnostics.NewInferenceError(diagnostics.ErrI008, file, "misplaced &rest marker"))
			return Signature{}, ErrRestArity
		}

		if isRestMarker {
			if restSeen {
				sink.Push(diagnostics.NewInferenceError(diagnostics.ErrI007, file))
				return Signature{}, ErrDuplicateRest
			}
			restSeen = true
			i++

			if i >= len(children) {
				sink.Push(diagnostics.NewInferenceError(diagnostics.ErrI006, file, "&rest missing default count"))
				return Signature{}, fmt.Errorf("%w: &rest missing default count", ErrInvalidSignature)
			}
			countNode := children[i]
			if countNode.Kind != ast.Integer {
				sink.Push(diagnostics.NewInferenceError(diagnostics.ErrI009, file))
				return Signature{}, ErrRestCountNotInteger
			}
			if countNode.Integer < 0 {
				sink.Push(diagnostics.NewInferenceError(diagnostics.ErrI008, file, countNode.Integer))
				return Signature{}, ErrRestArity
			}
			defaultRestCount = int(countNode.Integer)
			i++

			if i >= len(children) {
				sink.Push(diagnostics.NewInferenceError(diagnostics.ErrI006, file, "&rest missing element type"))
				return Signature{}, fmt.Errorf("%w: &rest missing element type", ErrInvalidSignature)
			}
			restSig, err := Build(children[i], sink, file)
			if err != nil {
				return Signature{}, err
			}
			rest = &restSig
			variadic = true
			i++
			continue
		}

		sig, err := Build(child, sink, file)
		if err != nil {
			return Signature{}, err
		}
		positional = append(positional, sig)
		i++
	}

	return Signature{
		Kind:             KindExpression,
		Positional:       positional,
		Rest:             rest,
		DefaultRestCount: defaultRestCount,
		Variadic:         variadic,
	}, nil
}
