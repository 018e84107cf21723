package lexer

import (
	"testing"

	"corepy/token"
)

func types(tokens []token.Token) []token.Type {
	out := make([]token.Type, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func assertTypes(t *testing.T, source string, want []token.Type) {
	t.Helper()
	toks, err := New(source).Scan()
	if err != nil {
		t.Fatalf("Scan(%q) returned error: %v", source, err)
	}
	got := types(toks)
	if len(got) != len(want) {
		t.Fatalf("Scan(%q) = %v, want %v", source, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Scan(%q)[%d] = %v, want %v", source, i, got[i], want[i])
		}
	}
}

func TestIdentityFunction(t *testing.T) {
	source := "def id(x: int) -> int:\n    return x\n"
	assertTypes(t, source, []token.Type{
		token.DEF, token.IDENTIFIER, token.LPAREN, token.IDENTIFIER, token.COLON, token.IDENTIFIER, token.RPAREN,
		token.ARROW, token.IDENTIFIER, token.COLON, token.NEWLINE,
		token.INDENT, token.RETURN, token.IDENTIFIER, token.NEWLINE,
		token.DEDENT, token.EOF,
	})
}

func TestBlankLinesAndComments(t *testing.T) {
	source := "def f():\n\n    # a comment\n    pass\n"
	assertTypes(t, source, []token.Type{
		token.DEF, token.IDENTIFIER, token.LPAREN, token.RPAREN, token.COLON, token.NEWLINE,
		token.INDENT, token.PASS, token.NEWLINE,
		token.DEDENT, token.EOF,
	})
}

func TestWhitespaceOnlyLineEmitsNoNewline(t *testing.T) {
	source := "def f():\n    pass\n   \n"
	assertTypes(t, source, []token.Type{
		token.DEF, token.IDENTIFIER, token.LPAREN, token.RPAREN, token.COLON, token.NEWLINE,
		token.INDENT, token.PASS, token.NEWLINE,
		token.DEDENT, token.EOF,
	})
}

func TestParenSuppressesIndentation(t *testing.T) {
	source := "def f(\n    a: int,\n    b: int\n):\n    pass\n"
	assertTypes(t, source, []token.Type{
		token.DEF, token.IDENTIFIER, token.LPAREN,
		token.IDENTIFIER, token.COLON, token.IDENTIFIER, token.COMMA,
		token.IDENTIFIER, token.COLON, token.IDENTIFIER,
		token.RPAREN, token.COLON, token.NEWLINE,
		token.INDENT, token.PASS, token.NEWLINE,
		token.DEDENT, token.EOF,
	})
}

func TestMismatchedDedentIsLexicalError(t *testing.T) {
	source := "def f():\n    if x:\n        pass\n      pass\n"
	_, err := New(source).Scan()
	if err == nil {
		t.Fatalf("expected a lexical error for mismatched indentation")
	}
	lexErr, ok := err.(Error)
	if !ok {
		t.Fatalf("expected lexer.Error, got %T", err)
	}
	if lexErr.Loc.Row != 4 {
		t.Errorf("error row = %d, want 4", lexErr.Loc.Row)
	}
}

func TestOrdConstantAndHexAndFloat(t *testing.T) {
	toks, err := New("0x1F 3.14 'A'").Scan()
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if toks[0].Type != token.INTEGER || toks[0].IntValue != 0x1F {
		t.Errorf("hex literal = %+v", toks[0])
	}
	if toks[1].Type != token.FLOAT || toks[1].FloatValue != 3.14 {
		t.Errorf("float literal = %+v", toks[1])
	}
	if toks[2].Type != token.STRING || toks[2].StrValue != "A" {
		t.Errorf("string literal = %+v", toks[2])
	}
}
