package diagnostics

import "fmt"

// Phase identifies which stage of the pipeline raised a diagnostic.
type Phase string

const (
	PhaseLexer     Phase = "lexer"
	PhaseReader    Phase = "reader"
	PhaseInference Phase = "inference"
)

type ErrorCode string

const (
	// Lexer errors
	ErrL001 ErrorCode = "L001" // invalid character

	// Reader errors
	ErrR001 ErrorCode = "R001" // unbalanced parenthesis
	ErrR002 ErrorCode = "R002" // unexpected token

	// Inference errors (§7)
	ErrI001 ErrorCode = "I001" // arity mismatch
	ErrI002 ErrorCode = "I002" // unsupported nested signature
	ErrI003 ErrorCode = "I003" // illegal node type
	ErrI004 ErrorCode = "I004" // none node type
	ErrI005 ErrorCode = "I005" // invalid signature symbol
	ErrI006 ErrorCode = "I006" // invalid signature shape
	ErrI007 ErrorCode = "I007" // duplicate &rest marker
	ErrI008 ErrorCode = "I008" // rest count out of range
	ErrI009 ErrorCode = "I009" // rest count not an integer
)

var errorTemplates = map[ErrorCode]string{
	ErrL001: "invalid character: '%s'",
	ErrR001: "unbalanced parenthesis",
	ErrR002: "unexpected token: '%s'",
	ErrI001: "arity mismatch: %s",
	ErrI002: "unsupported nested signature: %s",
	ErrI003: "illegal node type: %s",
	ErrI004: "node has no type",
	ErrI005: "invalid signature symbol: '%s'",
	ErrI006: "invalid signature shape: %s",
	ErrI007: "duplicate &rest marker in signature",
	ErrI008: "&rest default count out of range: %s",
	ErrI009: "&rest default count is not an integer",
}

// DiagnosticError is one entry pushed to a Sink. Start and End are byte
// offsets into the source file; the inferrer always reports both as -1
// (§6), since it works purely on an in-memory tree that no longer
// carries reliable source spans once the reader has built it.
type DiagnosticError struct {
	Code  ErrorCode
	Phase Phase
	Args  []interface{}
	File  string
	Start int
	End   int
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	message := e.Code.String()
	if ok {
		message = fmt.Sprintf(template, e.Args...)
	}

	prefix := ""
	if e.Phase == PhaseInference {
		prefix = "Inference error: "
	}

	file := e.File
	if file == "" {
		file = "<input>"
	}

	return fmt.Sprintf("%s%s:%d:%d: %s", prefix, file, e.Start, e.End, message)
}

func (c ErrorCode) String() string { return string(c) }

// Sink is the push-only, accumulating record of every diagnostic a
// component has reported. It is not itself a control-flow mechanism —
// appending to it never stops a caller — but per §7 nothing in this
// pass ever pushes a diagnostic without also returning a non-nil error
// from the same call, so in practice a push always unwinds the pass.
type Sink struct {
	errors []*DiagnosticError
}

// NewSink returns an empty sink.
func NewSink() *Sink { return &Sink{} }

// Push appends e to the sink.
func (s *Sink) Push(e *DiagnosticError) { s.errors = append(s.errors, e) }

// Errors returns every diagnostic pushed so far, in push order.
func (s *Sink) Errors() []*DiagnosticError { return s.errors }

// HasErrors reports whether anything has been pushed.
func (s *Sink) HasErrors() bool { return len(s.errors) > 0 }

// NewLexerError builds a lexer-phase diagnostic.
func NewLexerError(code ErrorCode, file string, offset int, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Phase: PhaseLexer, File: file, Start: offset, End: offset, Args: args}
}

// NewReaderError builds a reader-phase diagnostic.
func NewReaderError(code ErrorCode, file string, offset int, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Phase: PhaseReader, File: file, Start: offset, End: offset, Args: args}
}

// NewInferenceError builds an inference-phase diagnostic. Start and End
// are always -1: the inferrer has no reliable source span for a node
// once sibling lists have been rewritten in place (§6).
func NewInferenceError(code ErrorCode, file string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Phase: PhaseInference, File: file, Start: -1, End: -1, Args: args}
}
