package sema

import "corepy/token"

// Error is a semantic failure: a type mismatch, an undefined name, an
// arity/argument-type mismatch, or any other rule violation the
// analyzer enforces.
type Error struct {
	Loc     token.Location
	Message string
}

func (e Error) Error() string {
	return "💥 SemanticError at " + e.Loc.String() + ": " + e.Message
}

func (e Error) Location() *token.Location { l := e.Loc; return &l }
func (e Error) Kind() string              { return "semantic" }

// UnimplementedError marks a grammar production the analyzer
// recognizes but deliberately does not support (classes, break,
// continue, pass).
type UnimplementedError struct {
	Loc     token.Location
	Feature string
}

func (e UnimplementedError) Error() string {
	return "🤖 Unimplemented at " + e.Loc.String() + ": " + e.Feature + " is not supported"
}

func (e UnimplementedError) Location() *token.Location { l := e.Loc; return &l }
func (e UnimplementedError) Kind() string              { return "unimplemented" }
