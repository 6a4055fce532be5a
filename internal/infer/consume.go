package infer

import (
	"github.com/funvibe/funxy-inferrer/internal/ast"
	"github.com/funvibe/funxy-inferrer/internal/declscope"
	"github.com/funvibe/funxy-inferrer/internal/diagnostics"
	"github.com/funvibe/funxy-inferrer/internal/signature"
)

// consumeDeclaredCall expands the bare identifier at xs[cursor] into a
// fresh Expression node headed by that identifier, consuming as many
// subsequent stream elements as entry.Signature calls for: one per
// positional slot, then exactly entry.Signature.DefaultRestCount more
// if the signature is variadic. Literal (L) slots are consumed
// verbatim; inferred (I) slots go through inferArgument, so a bare
// declared identifier in such a slot is itself expanded into a nested
// call before being attached. The consumed region (cursor+1 .. end of what was taken) is
// spliced out of xs and replaced by the single new node, shifting
// trailing siblings left (§4.5).
func (st *State) consumeDeclaredCall(xs *[]ast.CompoundExpression, cursor int, entry declscope.DeclarationEntry) (int, error) {
	sig := entry.Signature
	if sig.Kind == signature.KindSymbol {
		// Declared as a plain value, not a callable shape: the bare
		// identifier stands on its own, consuming nothing further.
		return cursor + 1, nil
	}

	children := make([]ast.CompoundExpression, 0, len(sig.Positional)+2)
	children = append(children, (*xs)[cursor])

	idx := cursor + 1
	for _, slot := range sig.Positional {
		arg, next, err := st.consumeSlot(xs, idx, slot)
		if err != nil {
			return 0, err
		}
		children = append(children, arg)
		idx = next
	}

	if sig.Variadic {
		if sig.Rest == nil {
			err := diagnostics.NewInferenceError(diagnostics.ErrI004, st.File)
			st.Sink.Push(err)
			return 0, err
		}
		for n := 0; n < sig.DefaultRestCount; n++ {
			arg, next, err := st.consumeSlot(xs, idx, *sig.Rest)
			if err != nil {
				return 0, err
			}
			children = append(children, arg)
			idx = next
		}
	}

	tail := (*xs)[idx:]
	rebuilt := make([]ast.CompoundExpression, cursor+1+len(tail))
	copy(rebuilt[:cursor], (*xs)[:cursor])
	rebuilt[cursor] = ast.NewExpression(children)
	copy(rebuilt[cursor+1:], tail)
	*xs = rebuilt

	st.trace("consume", string((*xs)[cursor].Children[0].Name))
	return cursor + 1, nil
}

// consumeSlot takes one logical argument starting at idx and returns it
// plus the next index. For an L slot that is the single element at idx,
// untouched. For an I slot it is whatever inferArgument leaves at idx:
// a bare declared identifier there is expanded in place into a nested
// call (swallowing its own arguments from xs), anything else is
// inferred in place as one element. A nested Expression-shaped slot is a
// reserved, not-yet-supported feature (§4.1, §9's declarator-script
// seam). Per §7, every rejection here both pushes a diagnostic and
// returns a non-nil error, unwinding the rest of the pass rather than
// continuing with a fabricated placeholder.
func (st *State) consumeSlot(xs *[]ast.CompoundExpression, idx int, slot signature.Signature) (ast.CompoundExpression, int, error) {
	if idx >= len(*xs) {
		err := diagnostics.NewInferenceError(diagnostics.ErrI001, st.File, "not enough arguments")
		st.Sink.Push(err)
		return ast.CompoundExpression{}, idx, err
	}

	if slot.Kind == signature.KindExpression {
		err := diagnostics.NewInferenceError(diagnostics.ErrI002, st.File, "nested signature positional slots are reserved")
		st.Sink.Push(err)
		return ast.CompoundExpression{}, idx, err
	}

	if slot.Symbol == signature.SymbolI {
		next, err := st.inferArgument(xs, idx, true)
		if err != nil {
			return ast.CompoundExpression{}, idx, err
		}
		return (*xs)[idx], next, nil
	}
	return (*xs)[idx], idx + 1, nil
}
