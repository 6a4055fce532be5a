// Package declscope implements the lexical declaration scope (§4.2) and
// scope stack (§4.3): a trie-indexed table of declared identifier
// signatures, and a stack of such tables searched innermost-first.
package declscope

import "github.com/funvibe/funxy-inferrer/internal/signature"

const nullIndex = -1

// DeclarationEntry is what a single `declare` form records for an
// identifier: the arity signature the inference engine rewrites calls
// to that identifier against, plus an (always-empty, in this pass)
// declarator-script bytecode slot reserved for a future declarator
// runner (§6, §9).
type DeclarationEntry struct {
	Name      []byte
	Signature signature.Signature
	Bytecode  []byte
}

// Scope is one lexical declaration scope: an append-only list of
// entries plus a trie mapping identifier bytes to the index of the
// most recently declared entry under that name.
type Scope struct {
	entries []DeclarationEntry
	names   *trie
}

// NewScope returns an empty declaration scope.
func NewScope() *Scope {
	return &Scope{names: newTrie(nullIndex)}
}

// Declare records a new entry, shadowing any prior entry with the same
// name within this scope.
func (s *Scope) Declare(entry DeclarationEntry) {
	s.entries = append(s.entries, entry)
	s.names.insert(entry.Name, len(s.entries)-1)
}

// Find looks up name within this scope only (no outer scopes).
func (s *Scope) Find(name []byte) (DeclarationEntry, bool) {
	idx := s.names.find(name)
	if idx == nullIndex {
		return DeclarationEntry{}, false
	}
	return s.entries[idx], true
}

// Stack is a stack of declaration scopes searched innermost (top of
// stack) first, then outward (§4.3).
type Stack struct {
	scopes []*Scope
}

// NewStack returns an empty scope stack.
func NewStack() *Stack { return &Stack{} }

// Push pushes a new innermost scope.
func (s *Stack) Push(sc *Scope) { s.scopes = append(s.scopes, sc) }

// Pop removes and returns the innermost scope. Pop panics if the stack
// is empty — the engine never pops a scope it did not push (§4.3).
func (s *Stack) Pop() *Scope {
	n := len(s.scopes)
	top := s.scopes[n-1]
	s.scopes = s.scopes[:n-1]
	return top
}

// Len reports the current stack depth.
func (s *Stack) Len() int { return len(s.scopes) }

// Find searches from the innermost scope outward, returning the first
// match.
func (s *Stack) Find(name []byte) (DeclarationEntry, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if entry, ok := s.scopes[i].Find(name); ok {
			return entry, true
		}
	}
	return DeclarationEntry{}, false
}

// Declare records entry in the innermost scope. Declare panics if the
// stack is empty — the entry point always seeds a root scope before
// inference begins (§4.4's entry point).
func (s *Stack) Declare(entry DeclarationEntry) {
	s.scopes[len(s.scopes)-1].Declare(entry)
}
