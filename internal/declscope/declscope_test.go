package declscope_test

import (
	"testing"

	"github.com/funvibe/funxy-inferrer/internal/declscope"
	"github.com/funvibe/funxy-inferrer/internal/signature"
)

func lSig() signature.Signature { return signature.Signature{Kind: signature.KindSymbol, Symbol: signature.SymbolL} }

func TestScopeDeclareAndFind(t *testing.T) {
	s := declscope.NewScope()
	s.Declare(declscope.DeclarationEntry{Name: []byte("foo"), Signature: lSig()})

	entry, ok := s.Find([]byte("foo"))
	if !ok {
		t.Fatal("expected to find declared name")
	}
	if entry.Signature.Symbol != signature.SymbolL {
		t.Errorf("got signature %+v", entry.Signature)
	}

	if _, ok := s.Find([]byte("bar")); ok {
		t.Error("did not expect to find undeclared name")
	}
}

func TestScopeShadowing(t *testing.T) {
	s := declscope.NewScope()
	s.Declare(declscope.DeclarationEntry{Name: []byte("foo"), Signature: lSig()})
	s.Declare(declscope.DeclarationEntry{Name: []byte("foo"), Signature: signature.Signature{Kind: signature.KindSymbol, Symbol: signature.SymbolI}})

	entry, ok := s.Find([]byte("foo"))
	if !ok {
		t.Fatal("expected to find declared name")
	}
	if entry.Signature.Symbol != signature.SymbolI {
		t.Errorf("re-declaring foo should shadow the earlier entry, got %+v", entry.Signature)
	}
}

func TestStackInnermostFirst(t *testing.T) {
	st := declscope.NewStack()

	outer := declscope.NewScope()
	outer.Declare(declscope.DeclarationEntry{Name: []byte("x"), Signature: lSig()})
	st.Push(outer)

	inner := declscope.NewScope()
	inner.Declare(declscope.DeclarationEntry{Name: []byte("x"), Signature: signature.Signature{Kind: signature.KindSymbol, Symbol: signature.SymbolI}})
	st.Push(inner)

	entry, ok := st.Find([]byte("x"))
	if !ok {
		t.Fatal("expected to find x")
	}
	if entry.Signature.Symbol != signature.SymbolI {
		t.Errorf("expected innermost declaration to win, got %+v", entry.Signature)
	}

	st.Pop()
	entry, ok = st.Find([]byte("x"))
	if !ok {
		t.Fatal("expected to still find x in outer scope")
	}
	if entry.Signature.Symbol != signature.SymbolL {
		t.Errorf("expected outer declaration after popping inner, got %+v", entry.Signature)
	}
}

func TestStackFindMiss(t *testing.T) {
	st := declscope.NewStack()
	st.Push(declscope.NewScope())
	if _, ok := st.Find([]byte("nope")); ok {
		t.Error("did not expect to find anything in an empty stack of scopes")
	}
}

func TestStackDeclareGoesToInnermost(t *testing.T) {
	st := declscope.NewStack()
	st.Push(declscope.NewScope())
	st.Push(declscope.NewScope())

	st.Declare(declscope.DeclarationEntry{Name: []byte("y"), Signature: lSig()})

	if _, ok := st.Find([]byte("y")); !ok {
		t.Fatal("expected to find y after declaring into the stack")
	}

	st.Pop()
	if _, ok := st.Find([]byte("y")); ok {
		t.Error("y should have been declared in the innermost scope, not the outer one")
	}
}
