package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/funvibe/funxy-inferrer/internal/ast"
)

// TreePrinter renders a CompoundExpression as an indented tree, one
// node per line — used for the CLI's -tree output and debugging, where the
// flat CodePrinter view hides which nodes are still LiteralExpression
// versus already-inferred Expression.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

// PrintTree renders ce as an indented tree and returns the text.
func PrintTree(ce *ast.CompoundExpression) string {
	p := NewTreePrinter()
	p.visit(ce)
	return p.String()
}

func (p *TreePrinter) writeIndent() {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
}

func (p *TreePrinter) visit(ce *ast.CompoundExpression) {
	p.writeIndent()
	switch ce.Kind {
	case ast.Bool:
		fmt.Fprintf(&p.buf, "Bool %v\n", ce.Bool)
	case ast.Integer:
		fmt.Fprintf(&p.buf, "Integer %d\n", ce.Integer)
	case ast.Float:
		fmt.Fprintf(&p.buf, "Float %g\n", ce.Float)
	case ast.String:
		fmt.Fprintf(&p.buf, "String %q\n", ce.Str)
	case ast.Identifier:
		fmt.Fprintf(&p.buf, "Identifier %s\n", ce.Name)
	case ast.Callback:
		fmt.Fprintf(&p.buf, "Callback #%s\n", ce.Name)
	case ast.Expression:
		fmt.Fprintf(&p.buf, "Expression (%d children)\n", len(ce.Children))
		p.indent++
		for i := range ce.Children {
			p.visit(&ce.Children[i])
		}
		p.indent--
	case ast.LiteralExpression:
		fmt.Fprintf(&p.buf, "LiteralExpression (%d children)\n", len(ce.Children))
		p.indent++
		for i := range ce.Children {
			p.visit(&ce.Children[i])
		}
		p.indent--
	default:
		p.buf.WriteString("<unknown node>\n")
	}
}
