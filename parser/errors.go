package parser

import "corepy/token"

// Error is a syntactic failure: an unexpected token, an unexpected
// EOF, an invalid token, or an extra trailing token.
type Error struct {
	Loc     token.Location
	Message string
}

func (e Error) Error() string {
	return "💥 SyntaxError at " + e.Loc.String() + ": " + e.Message
}

func (e Error) Location() *token.Location { l := e.Loc; return &l }
func (e Error) Kind() string              { return "syntactic" }
