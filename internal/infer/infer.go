// Package infer implements the parenthesis inference pass: it walks a
// partially-parenthesized sibling-list AST and rewrites bare
// (Forth-style) call forms into fully-parenthesized Expression nodes,
// driven by arity signatures registered through `declare` forms
// encountered along the way (§4.4).
package infer

import (
	"github.com/google/uuid"

	"github.com/funvibe/funxy-inferrer/internal/ast"
	"github.com/funvibe/funxy-inferrer/internal/config"
	"github.com/funvibe/funxy-inferrer/internal/declscope"
	"github.com/funvibe/funxy-inferrer/internal/diagnostics"
	"github.com/funvibe/funxy-inferrer/internal/signature"
)

// Tracer receives one event per dispatch decision the engine makes.
// It is a zero-cost, optional observer: nil by default, wired to the
// CLI's -trace flag. This supplements spec.md's description of the
// pass's resource model without contradicting it — there are no
// timers or cancellation points, only an observer of completed steps.
type Tracer interface {
	Event(kind, detail string)
}

// DeclaratorRunner is the capability seam reserved for a declarator
// script runner (§6, §9): the four reserved hook names
// (declare-identifier, infer-and-get-next-argument,
// push-declaration-scope, pop-declaration-scope) and the
// declaration-scope generator belong to whatever implements this
// interface. Run is invoked only when a DeclarationEntry carries
// non-empty Bytecode, which never happens today — the signature
// builder never populates it — so NoopDeclaratorRunner is observably
// identical to the pass's actual behavior.
type DeclaratorRunner interface {
	Run(entry declscope.DeclarationEntry, args []ast.CompoundExpression) error
}

// NoopDeclaratorRunner is the default DeclaratorRunner: it is never
// actually invoked, since no DeclarationEntry ever carries bytecode,
// but it gives the reserved hook names (§6) a concrete type rather
// than leaving them as prose.
type NoopDeclaratorRunner struct{}

// Run does nothing and always succeeds.
func (NoopDeclaratorRunner) Run(declscope.DeclarationEntry, []ast.CompoundExpression) error {
	return nil
}

// State is the inference engine's run-local state: the scope stack,
// the error sink, the file name used in diagnostics, and the two
// optional seams (DeclaratorRunner, Tracer).
type State struct {
	Scopes   *declscope.Stack
	Sink     *diagnostics.Sink
	File     string
	Runner   DeclaratorRunner
	Tracer   Tracer
	RunID    uuid.UUID
}

// New builds a State with a fresh scope stack and error sink. If
// runner is nil, NoopDeclaratorRunner is used. tracer may be nil.
func New(file string, runner DeclaratorRunner, tracer Tracer) *State {
	if runner == nil {
		runner = NoopDeclaratorRunner{}
	}
	return &State{
		Scopes: declscope.NewStack(),
		Sink:   diagnostics.NewSink(),
		File:   file,
		Runner: runner,
		Tracer: tracer,
		RunID:  uuid.New(),
	}
}

// declareSignature is the built-in arity of the `declare` meta-form
// itself: two literal positional slots (the identifier being declared,
// and its signature expression), followed by a variadic, inferred rest
// whose default count is zero — so an ordinary three-element declare
// form (declare name signature) never consumes a rest element at all;
// see DESIGN.md for why the fourth (declarator-script body) slot is
// only ever produced by an explicit, fully-parenthesized declare form.
var declareSignature = signature.Signature{
	Kind: signature.KindExpression,
	Positional: []signature.Signature{
		{Kind: signature.KindSymbol, Symbol: signature.SymbolL},
		{Kind: signature.KindSymbol, Symbol: signature.SymbolL},
	},
	Rest:             &signature.Signature{Kind: signature.KindSymbol, Symbol: signature.SymbolI},
	DefaultRestCount: 0,
	Variadic:         true,
}

// Run is the entry point (§4.4's entry point, §2's 5% allocation): it
// seeds a root declaration scope with `declare` itself, then infers
// root's sibling list as one flat argument stream, in place.
func (st *State) Run(root *ast.CompoundExpression) error {
	rootScope := declscope.NewScope()
	rootScope.Declare(declscope.DeclarationEntry{
		Name:      []byte(config.DeclareName),
		Signature: declareSignature,
	})
	st.Scopes.Push(rootScope)
	defer st.Scopes.Pop()

	st.trace("run-start", st.RunID.String())
	err := st.inferArguments(&root.Children, 0, true)
	st.trace("run-end", st.RunID.String())
	return err
}

func (st *State) trace(kind, detail string) {
	if st.Tracer != nil {
		st.Tracer.Event(kind, detail)
	}
}

// inferCompoundExpression is the top-level dispatcher (§4.4): it
// normalizes Callback nodes to Identifier unconditionally, and
// descends into Expression-like nodes. Scalar leaves (Bool, Integer,
// Float, String) and plain Identifiers require no further work.
func (st *State) inferCompoundExpression(node *ast.CompoundExpression, infer bool) error {
	switch node.Kind {
	case ast.Bool, ast.Integer, ast.Float, ast.String, ast.Identifier:
		return nil

	case ast.Callback:
		node.Kind = ast.Identifier
		return nil

	case ast.LiteralExpression:
		return st.inferLiteralExpression(node, infer)

	case ast.Expression:
		// An Expression node only ever arrives here already built by
		// consumeDeclaredCall, with its own arguments already inferred
		// as part of being consumed — nothing further to do.
		return nil

	default:
		err := diagnostics.NewInferenceError(diagnostics.ErrI003, st.File, node.Kind.String())
		st.Sink.Push(err)
		return err
	}
}

// inferLiteralExpression retags a user-parenthesized form to
// Expression, normalizing its head and inferring its own arguments
// under infer=false — a user-parenthesized call opts out of
// arity-driven rewriting for itself, but its arguments are still
// walked (§4.4 rule 2, §8's literal pass-through invariant: every ci
// is inferred under infer=false, so none of them is ever expanded via
// a declared-call lookup, and the child count never changes).
func (st *State) inferLiteralExpression(node *ast.CompoundExpression, infer bool) error {
	if !infer || len(node.Children) == 0 {
		return nil
	}

	head := &node.Children[0]
	if head.Kind == ast.Callback {
		head.Kind = ast.Identifier
	}

	if err := st.inferArguments(&node.Children, 1, false); err != nil {
		return err
	}

	node.Kind = ast.Expression
	return nil
}

// inferArguments walks the sibling run xs[start:] as a flat argument
// stream, consuming and rewriting bare declared calls in place (§4.5).
// infer controls whether a bare Identifier in this stream may be
// expanded via a declared-call lookup at all: true for a top-level
// program (a declared call's own I-slot arguments get the same
// treatment through consumeSlot's call to inferArgument), false for the
// arguments of a user-parenthesized (literal) form, which opted out of
// arity-driven rewriting for itself and its direct arguments alike
// (§4.4 rule 2).
func (st *State) inferArguments(xs *[]ast.CompoundExpression, start int, infer bool) error {
	i := start
	for i < len(*xs) {
		checkIdx := i
		next, err := st.inferArgument(xs, i, infer)
		if err != nil {
			return err
		}
		i = next
		if err := st.maybeDeclare(xs, checkIdx); err != nil {
			return err
		}
	}
	return nil
}

// inferArgument consumes exactly one logical argument starting at
// cursor, returning the index to resume scanning from. If xs[cursor]
// is a bare Identifier that resolves to a declared, callable signature
// and infer is true, it is expanded into a fresh Expression node that
// swallows however many subsequent siblings its signature calls for
// (§4.5). Otherwise the node is processed in place via the generic
// dispatcher and exactly one sibling is consumed.
func (st *State) inferArgument(xs *[]ast.CompoundExpression, cursor int, infer bool) (int, error) {
	x := &(*xs)[cursor]

	if x.Kind == ast.Identifier && infer {
		if entry, ok := st.Scopes.Find(x.Name); ok {
			st.trace("resolve", string(x.Name))
			return st.consumeDeclaredCall(xs, cursor, entry)
		}
		st.trace("undeclared", string(x.Name))
	}

	if err := st.inferCompoundExpression(x, infer); err != nil {
		return 0, err
	}
	return cursor + 1, nil
}

// maybeDeclare checks whether the argument just produced at index idx
// is itself a declare form — an Expression of three or four children
// whose first two children are identifiers, the first spelled
// "declare" — and if so, builds its signature and records it in the
// innermost scope (§4.4's declare recognition).
func (st *State) maybeDeclare(xs *[]ast.CompoundExpression, idx int) error {
	if idx >= len(*xs) {
		return nil
	}
	ce := &(*xs)[idx]
	if ce.Kind != ast.Expression {
		return nil
	}
	children := ce.Children
	if len(children) != 3 && len(children) != 4 {
		return nil
	}
	if children[0].Kind != ast.Identifier || children[1].Kind != ast.Identifier {
		return nil
	}
	if string(children[0].Name) != config.DeclareName {
		return nil
	}

	name := children[1].Name
	sig, err := signature.Build(children[2], st.Sink, st.File)
	if err != nil {
		// Build already pushed a diagnostic; per §7 every error both
		// lands in the sink and unwinds the pass, so it is returned
		// here too rather than swallowed.
		return err
	}

	entry := declscope.DeclarationEntry{Name: name, Signature: sig}
	st.Scopes.Declare(entry)
	st.trace("declare", string(name))

	if len(children) == 4 && len(entry.Bytecode) > 0 {
		if err := st.Runner.Run(entry, children[3:]); err != nil {
			return err
		}
	}
	return nil
}
