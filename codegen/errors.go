package codegen

// Error marks a construct codegen deliberately does not lower:
// generic string literals (no heap string representation is
// implemented) and float equality/inequality (no IEEE-754 equality
// semantics are emitted, by design).
type Error struct {
	Message string
}

func (e Error) Error() string { return "🤖 " + e.Message }
