// Package prettyprinter renders a CompoundExpression tree back to
// duck-lisp surface syntax, supplementing the pass with the original's
// final ast_print_compoundExpression step (§12) — useful both for the
// CLI's output and for the round-trip tests in §8.
package prettyprinter

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/funvibe/funxy-inferrer/internal/ast"
)

// CodePrinter renders a CompoundExpression tree as duck-lisp source
// text. Unlike the teacher's CodePrinter there is no operator
// precedence table to consult — every compound form prints as a
// parenthesized prefix list.
type CodePrinter struct {
	buf bytes.Buffer
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

// Print renders ce and returns the resulting text.
func Print(ce *ast.CompoundExpression) string {
	p := NewCodePrinter()
	p.write(ce)
	return p.String()
}

func (p *CodePrinter) write(ce *ast.CompoundExpression) {
	switch ce.Kind {
	case ast.Bool:
		if ce.Bool {
			p.buf.WriteString("true")
		} else {
			p.buf.WriteString("false")
		}
	case ast.Integer:
		p.buf.WriteString(strconv.FormatInt(ce.Integer, 10))
	case ast.Float:
		p.buf.WriteString(strconv.FormatFloat(ce.Float, 'g', -1, 64))
	case ast.String:
		p.buf.WriteString(fmt.Sprintf("%q", ce.Str))
	case ast.Identifier:
		p.buf.Write(ce.Name)
	case ast.Callback:
		p.buf.WriteByte('#')
		p.buf.Write(ce.Name)
	case ast.Expression, ast.LiteralExpression:
		p.writeChildren(ce.Children)
	default:
		p.buf.WriteString("<?>")
	}
}

func (p *CodePrinter) writeChildren(children []ast.CompoundExpression) {
	p.buf.WriteByte('(')
	for i := range children {
		if i > 0 {
			p.buf.WriteByte(' ')
		}
		p.write(&children[i])
	}
	p.buf.WriteByte(')')
}
