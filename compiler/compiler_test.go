package compiler

import "testing"

func TestCompileEndToEnd(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr bool
	}{
		{
			name:   "identity function",
			source: "def identity(x: int) -> int:\n    return x\n",
		},
		{
			name:   "arithmetic expression",
			source: "def add(a: int, b: int) -> int:\n    return a + b * 2\n",
		},
		{
			name: "while loop accumulator",
			source: "def sum_to(n: int) -> int:\n" +
				"    total = 0\n" +
				"    i = 0\n" +
				"    while i < n:\n" +
				"        total = total + i\n" +
				"        i = i + 1\n" +
				"    return total\n",
		},
		{
			name: "list literal and index",
			source: "def first_two_sum() -> int:\n" +
				"    xs = [1, 2, 3]\n" +
				"    return xs[0] + xs[1]\n",
		},
		{
			name: "imported sink",
			source: "from env import log_i64\n" +
				"def report(x: int) -> int:\n" +
				"    log_i64(x)\n" +
				"    return x\n",
		},
		{
			name:    "indentation error",
			source:  "def broken(x: int) -> int:\n    return x\n   return x\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compile(tt.source)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got a %d-byte module", len(result.Wasm))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v (diagnostics: %v)", err, result.Diagnostics)
			}
			if len(result.Wasm) < 8 {
				t.Fatalf("expected at least a wasm header, got %d bytes", len(result.Wasm))
			}
			if string(result.Wasm[:4]) != "\x00asm" {
				t.Fatalf("expected the wasm magic number, got %v", result.Wasm[:4])
			}
		})
	}
}

func TestCompileSemanticErrorIsDiagnosed(t *testing.T) {
	result, err := Compile("def f() -> int:\n    return y\n")
	if err == nil {
		t.Fatal("expected a semantic error for an undefined name")
	}
	if _, ok := err.(SemanticError); !ok {
		t.Fatalf("expected a SemanticError, got %T", err)
	}
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Kind != KindSemantic {
		t.Fatalf("expected a single semantic diagnostic, got %+v", result.Diagnostics)
	}
}

func TestCompileUnimplementedClassIsDiagnosed(t *testing.T) {
	result, err := Compile("class Point:\n    pass\n")
	if err == nil {
		t.Fatal("expected an unimplemented-feature error for a class definition")
	}
	if _, ok := err.(UnimplementedError); !ok {
		t.Fatalf("expected an UnimplementedError, got %T", err)
	}
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Kind != KindUnimplemented {
		t.Fatalf("expected a single unimplemented diagnostic, got %+v", result.Diagnostics)
	}
}

func TestCompileImportHeuristicSurfacesWarning(t *testing.T) {
	result, err := Compile("from math import float_sqrt\ndef f() -> int:\n    return 0\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	foundWarning := false
	for _, d := range result.Diagnostics {
		if d.Kind == KindWarning {
			foundWarning = true
		}
	}
	if !foundWarning {
		t.Fatalf("expected a warning diagnostic for the inferred import signature, got %+v", result.Diagnostics)
	}
}
