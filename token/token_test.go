package token

import "testing"

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{DEF, "def"},
		{ARROW, "->"},
		{IDENTIFIER, "IDENTIFIER"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestKeywordsLookup(t *testing.T) {
	for word, typ := range Keywords {
		if typ.String() != word {
			t.Errorf("Keywords[%q] = %v, String() = %q", word, typ, typ.String())
		}
	}
}

func TestLocationString(t *testing.T) {
	loc := Location{Row: 3, Column: 10}
	if got, want := loc.String(), "3:10"; got != want {
		t.Errorf("Location.String() = %q, want %q", got, want)
	}
}
