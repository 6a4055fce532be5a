// Package reader turns a token stream into the partially-parenthesized
// sibling-list AST the inference pass expects (§3, §6): it groups
// user-written parens into LiteralExpression nodes and leaves bare
// (Forth-style) runs of atoms as flat siblings for the inferrer to
// reshape. It is intentionally thin — full grammar parsing is out of
// scope (§1) — existing only so a runnable CLI has something to read.
package reader

import (
	"strconv"

	"github.com/funvibe/funxy-inferrer/internal/ast"
	"github.com/funvibe/funxy-inferrer/internal/diagnostics"
	"github.com/funvibe/funxy-inferrer/internal/pipeline"
	"github.com/funvibe/funxy-inferrer/internal/token"
)

// Reader holds the state of the reader: a buffered token stream plus
// the file name used when reporting diagnostics.
type Reader struct {
	stream pipeline.TokenStream
	cur    token.Token
	sink   *diagnostics.Sink
	file   string
}

// New builds a Reader over stream, reporting diagnostics into sink.
func New(stream pipeline.TokenStream, sink *diagnostics.Sink, file string) *Reader {
	r := &Reader{stream: stream, sink: sink, file: file}
	r.next()
	return r
}

func (r *Reader) next() {
	r.cur = r.stream.Next()
}

// ReadProgram reads every top-level form until EOF and returns them as
// the children of one root Expression node — the program's top-level
// sibling list inference operates on directly (§4.4's entry point).
func (r *Reader) ReadProgram() *ast.CompoundExpression {
	var children []ast.CompoundExpression
	for r.cur.Type != token.EOF {
		ce, ok := r.readForm()
		if !ok {
			break
		}
		children = append(children, ce)
	}
	root := ast.NewExpression(children)
	return &root
}

// readForm reads exactly one compound expression: an atom, or a
// parenthesized run of sibling forms (a LiteralExpression).
func (r *Reader) readForm() (ast.CompoundExpression, bool) {
	switch r.cur.Type {
	case token.LPAREN:
		return r.readParenthesized()
	case token.RPAREN:
		r.sink.Push(diagnostics.NewReaderError(diagnostics.ErrR002, r.file, r.cur.Offset, ")"))
		r.next()
		return ast.CompoundExpression{}, false
	case token.IDENT:
		ce := ast.NewIdentifier([]byte(r.cur.Lexeme))
		ce.Token = r.cur
		r.next()
		return ce, true
	case token.CALLBACK:
		ce := ast.NewCallback([]byte(r.cur.Lexeme))
		ce.Token = r.cur
		r.next()
		return ce, true
	case token.STRING:
		ce := ast.NewString(r.cur.Lexeme)
		ce.Token = r.cur
		r.next()
		return ce, true
	case token.BOOL:
		ce := ast.NewBool(r.cur.Lexeme == "true")
		ce.Token = r.cur
		r.next()
		return ce, true
	case token.INT:
		v, _ := strconv.ParseInt(r.cur.Lexeme, 10, 64)
		ce := ast.NewInteger(v)
		ce.Token = r.cur
		r.next()
		return ce, true
	case token.FLOAT:
		v, _ := strconv.ParseFloat(r.cur.Lexeme, 64)
		ce := ast.NewFloat(v)
		ce.Token = r.cur
		r.next()
		return ce, true
	default:
		r.sink.Push(diagnostics.NewReaderError(diagnostics.ErrR002, r.file, r.cur.Offset, r.cur.Lexeme))
		r.next()
		return ast.CompoundExpression{}, false
	}
}

// readParenthesized reads a user-written `( ... )` group into a
// LiteralExpression — the tag that tells the inference pass this form
// already opted out of arity-driven rewriting for its head (§3).
func (r *Reader) readParenthesized() (ast.CompoundExpression, bool) {
	open := r.cur
	r.next() // consume '('

	var children []ast.CompoundExpression
	for r.cur.Type != token.RPAREN {
		if r.cur.Type == token.EOF {
			r.sink.Push(diagnostics.NewReaderError(diagnostics.ErrR001, r.file, open.Offset))
			return ast.CompoundExpression{}, false
		}
		ce, ok := r.readForm()
		if !ok {
			continue
		}
		children = append(children, ce)
	}
	r.next() // consume ')'

	ce := ast.NewLiteralExpression(children)
	ce.Token = open
	return ce, true
}
