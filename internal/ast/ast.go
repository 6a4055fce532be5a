// Package ast defines the compound-expression tree the inference pass
// reads and rewrites in place: the partially-parenthesized "sibling
// list" AST produced by a reader front end, before and after the
// parenthesis inference pass has run over it.
package ast

import "github.com/funvibe/funxy-inferrer/internal/token"

// Kind tags which variant of CompoundExpression a node holds.
type Kind int

const (
	Bool Kind = iota
	Integer
	Float
	String
	Identifier
	Callback
	Expression
	LiteralExpression
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "Bool"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case String:
		return "String"
	case Identifier:
		return "Identifier"
	case Callback:
		return "Callback"
	case Expression:
		return "Expression"
	case LiteralExpression:
		return "LiteralExpression"
	default:
		return "Unknown"
	}
}

// CompoundExpression is one node of the AST. It is a tagged variant:
// only the fields relevant to Kind are meaningful. Expression and
// LiteralExpression nodes own their Children outright (an arena/vector
// style tree, not a pointer graph) so the inference engine can rewrite
// a sibling run in place by slicing and reassigning Children, the way
// the original inferrer rewrites a vector of sibling nodes.
//
// CompoundExpression is a value type on purpose: a parent's Children
// slice is the sole owner of each child, matching the "single owner,
// no sharing" note in the design notes.
type CompoundExpression struct {
	Kind Kind

	Bool    bool
	Integer int64
	Float   float64
	Str     string

	// Name holds the byte spelling for Identifier and Callback nodes.
	// A Callback's Name excludes the leading '#' marker.
	Name []byte

	// Children holds the ordered sibling list for Expression and
	// LiteralExpression nodes.
	Children []CompoundExpression

	// Token is the lexeme that introduced this node, kept for error
	// reporting and round-trip printing. It is not semantically
	// significant to inference.
	Token token.Token
}

// IsAtom reports whether ce is a leaf node (not an expression of any
// kind).
func (ce *CompoundExpression) IsAtom() bool {
	switch ce.Kind {
	case Expression, LiteralExpression:
		return false
	default:
		return true
	}
}

// NewIdentifier builds an Identifier node with the given byte spelling.
func NewIdentifier(name []byte) CompoundExpression {
	return CompoundExpression{Kind: Identifier, Name: name}
}

// NewCallback builds a Callback node with the given byte spelling
// (excluding the leading '#').
func NewCallback(name []byte) CompoundExpression {
	return CompoundExpression{Kind: Callback, Name: name}
}

// NewExpression builds an Expression node from an already-ordered
// child list.
func NewExpression(children []CompoundExpression) CompoundExpression {
	return CompoundExpression{Kind: Expression, Children: children}
}

// NewLiteralExpression builds a LiteralExpression node — a
// user-parenthesized form the reader has not yet had inference applied
// to.
func NewLiteralExpression(children []CompoundExpression) CompoundExpression {
	return CompoundExpression{Kind: LiteralExpression, Children: children}
}

// NewBool, NewInteger, NewFloat, NewString build the scalar leaf kinds.
func NewBool(v bool) CompoundExpression       { return CompoundExpression{Kind: Bool, Bool: v} }
func NewInteger(v int64) CompoundExpression   { return CompoundExpression{Kind: Integer, Integer: v} }
func NewFloat(v float64) CompoundExpression   { return CompoundExpression{Kind: Float, Float: v} }
func NewString(v string) CompoundExpression   { return CompoundExpression{Kind: String, Str: v} }

// IsExpressionLike reports whether ce is Expression or LiteralExpression
// — the two variants carrying a Children list.
func (ce *CompoundExpression) IsExpressionLike() bool {
	return ce.Kind == Expression || ce.Kind == LiteralExpression
}
