package config

// SourceFileExt is the canonical extension used when none is given.
const SourceFileExt = ".duck"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".duck", ".dl"}

// DeclareName is the identifier a declaration form's head must match for
// the inference engine to treat it as a declare meta-form rather than an
// ordinary call.
const DeclareName = "declare"

// Reserved declarator-script hook names (§6, §9 of the design). Their
// operational semantics belong to a declarator script runner, not to
// this pass; the names are reserved here so nothing in the engine
// hardcodes them as plain string literals.
const (
	DeclareIdentifierHook      = "declare-identifier"
	InferAndGetNextArgumentHook = "infer-and-get-next-argument"
	PushDeclarationScopeHook   = "push-declaration-scope"
	PopDeclarationScopeHook    = "pop-declaration-scope"
	DeclarationScopeGenerator  = "declaration-scope"
)

// Arity-signature symbol spellings (§4.1).
const (
	SignatureSymbolL = "L"
	SignatureSymbolI = "I"
)

// RestKeyword introduces the variadic tail of a signature expression:
// (L L &rest 0 I) declares a two-positional, variadic-rest signature.
const RestKeyword = "&rest"
