package compiler

import "corepy/token"

// Kind classifies a Diagnostic by the pipeline stage that raised it.
type Kind string

const (
	KindLexical       Kind = "lexical"
	KindSyntactic     Kind = "syntactic"
	KindSemantic      Kind = "semantic"
	KindUnimplemented Kind = "unimplemented"
	KindIO            Kind = "io"
	KindWarning       Kind = "warning"
)

// Diagnostic is one message produced while compiling a source file,
// fatal or not. Warnings (e.g. the imported-function signature
// heuristic) ride alongside the fatal error, if any, in a Result.
type Diagnostic struct {
	Kind     Kind
	Location *token.Location
	Message  string
}

func (d Diagnostic) String() string {
	if d.Location == nil {
		return string(d.Kind) + ": " + d.Message
	}
	return string(d.Kind) + " at " + d.Location.String() + ": " + d.Message
}

// Result is what Compile returns: the module bytes on success, plus
// every diagnostic collected along the way (warnings always; the
// fatal diagnostic too, when Compile's error is non-nil).
type Result struct {
	Wasm        []byte
	Diagnostics []Diagnostic
}
