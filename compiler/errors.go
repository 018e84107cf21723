package compiler

import (
	"corepy/codegen"
	"corepy/lexer"
	"corepy/parser"
	"corepy/sema"
	"corepy/token"
)

// The five diagnostic-producing failure shapes a compile can end on.
// Each wraps the originating stage's own typed error so callers that
// care can still type-switch or Unwrap down to it; Compile itself only
// ever needs their common Error() surface.

type LexicalError struct{ err lexer.Error }

func (e LexicalError) Error() string          { return e.err.Error() }
func (e LexicalError) Unwrap() error          { return e.err }
func (e LexicalError) Location() *token.Location { return e.err.Location() }

type SyntaxError struct{ err parser.Error }

func (e SyntaxError) Error() string             { return e.err.Error() }
func (e SyntaxError) Unwrap() error             { return e.err }
func (e SyntaxError) Location() *token.Location { return e.err.Location() }

type SemanticError struct{ err sema.Error }

func (e SemanticError) Error() string             { return e.err.Error() }
func (e SemanticError) Unwrap() error             { return e.err }
func (e SemanticError) Location() *token.Location { return e.err.Location() }

type UnimplementedError struct{ err error }

func (e UnimplementedError) Error() string { return e.err.Error() }
func (e UnimplementedError) Unwrap() error { return e.err }

// IOError wraps a failure to read the source itself, the one stage
// before any of the pipeline's own typed errors can apply.
type IOError struct {
	Message string
}

func (e IOError) Error() string { return "📄 IOError: " + e.Message }

// diagnosticForError classifies any error a pipeline stage can return
// into a Diagnostic, wrapping it in the matching compiler-local error
// type so callers see one small hierarchy regardless of which stage
// failed. Anything unrecognized degrades to a locationless semantic
// diagnostic rather than being dropped.
func diagnosticForError(err error) (Diagnostic, error) {
	switch e := err.(type) {
	case lexer.Error:
		wrapped := LexicalError{err: e}
		return Diagnostic{Kind: KindLexical, Location: e.Location(), Message: wrapped.Error()}, wrapped
	case parser.Error:
		wrapped := SyntaxError{err: e}
		return Diagnostic{Kind: KindSyntactic, Location: e.Location(), Message: wrapped.Error()}, wrapped
	case sema.Error:
		wrapped := SemanticError{err: e}
		return Diagnostic{Kind: KindSemantic, Location: e.Location(), Message: wrapped.Error()}, wrapped
	case sema.UnimplementedError:
		wrapped := UnimplementedError{err: e}
		return Diagnostic{Kind: KindUnimplemented, Location: e.Location(), Message: wrapped.Error()}, wrapped
	case codegen.Error:
		wrapped := UnimplementedError{err: e}
		return Diagnostic{Kind: KindUnimplemented, Message: wrapped.Error()}, wrapped
	case IOError:
		return Diagnostic{Kind: KindIO, Message: e.Error()}, e
	default:
		return Diagnostic{Kind: KindSemantic, Message: err.Error()}, err
	}
}
