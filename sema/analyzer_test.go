package sema

import (
	"testing"

	"corepy/ir"
	"corepy/lexer"
	"corepy/parser"
)

func analyzeSource(t *testing.T, src string) (*ir.Program, []Warning, error) {
	t.Helper()
	toks, err := lexer.New(src).Scan()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	prog, err := parser.New(toks).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return New().Analyze(prog)
}

func TestAnalyzeIdentityFunction(t *testing.T) {
	prog, _, err := analyzeSource(t, "def identity(x: int) -> int:\n    return x\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(prog.Functions))
	}
	fn := prog.Functions[0]
	if fn.ReturnType == nil || fn.ReturnType.Kind != ir.Integer {
		t.Fatalf("expected int return type, got %+v", fn.ReturnType)
	}
}

func TestAnalyzeImportProducesWarning(t *testing.T) {
	_, warnings, err := analyzeSource(t, "from env import log_i64\ndef f() -> int:\n    return 0\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning for the import heuristic, got %d", len(warnings))
	}
}

func TestAnalyzeImportFloatHeuristic(t *testing.T) {
	prog, _, err := analyzeSource(t, "from math import float_sqrt\ndef f() -> int:\n    return 0\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Imports) != 1 || prog.Imports[0].Params[0].Kind != ir.Float {
		t.Fatalf("expected inferred float parameter, got %+v", prog.Imports[0].Params)
	}
}

func TestAnalyzeUndefinedNameIsError(t *testing.T) {
	_, _, err := analyzeSource(t, "def f() -> int:\n    return y\n")
	if err == nil {
		t.Fatal("expected an error for an undefined name")
	}
}

func TestAnalyzeTypeMismatchInBinaryOp(t *testing.T) {
	_, _, err := analyzeSource(t, "def f(x: int, y: float) -> int:\n    return x + y\n")
	if err == nil {
		t.Fatal("expected a type mismatch error")
	}
}

func TestAnalyzeClassDefIsUnimplemented(t *testing.T) {
	_, _, err := analyzeSource(t, "class C:\n    pass\n")
	if err == nil {
		t.Fatal("expected an unimplemented error for class definitions")
	}
	if _, ok := err.(UnimplementedError); !ok {
		t.Fatalf("expected UnimplementedError, got %T", err)
	}
}

func TestAnalyzeOrdFoldsAtAnalysisTime(t *testing.T) {
	prog, _, err := analyzeSource(t, "def code() -> int:\n    return ord('A')\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ret, ok := prog.Functions[0].Body[0].(ir.Return)
	if !ok {
		t.Fatalf("expected Return statement, got %T", prog.Functions[0].Body[0])
	}
	lit, ok := ret.Value.(ir.CharLiteral)
	if !ok {
		t.Fatalf("expected ord() to fold to CharLiteral, got %T", ret.Value)
	}
	if lit.Value != 65 {
		t.Fatalf("expected ord('A') == 65, got %d", lit.Value)
	}
}

func TestAnalyzeListLiteralRequiresUniformType(t *testing.T) {
	_, _, err := analyzeSource(t, "def f() -> int:\n    xs = [1, 2.0]\n    return 0\n")
	if err == nil {
		t.Fatal("expected an error for mixed-type list elements")
	}
}

func TestAnalyzeIndexRequiresListOrTuple(t *testing.T) {
	_, _, err := analyzeSource(t, "def f(x: int) -> int:\n    return x[0]\n")
	if err == nil {
		t.Fatal("expected an error for indexing a non-list, non-tuple value")
	}
}

func TestAnalyzeCallArityMismatch(t *testing.T) {
	_, _, err := analyzeSource(t, "def add(a: int, b: int) -> int:\n    return a + b\n\ndef f() -> int:\n    return add(1)\n")
	if err == nil {
		t.Fatal("expected an arity mismatch error")
	}
}

func TestAnalyzeRecursiveCall(t *testing.T) {
	_, _, err := analyzeSource(t, "def fact(n: int) -> int:\n    if n < 1:\n        return 1\n    return n * fact(n - 1)\n")
	if err != nil {
		t.Fatalf("expected recursion to analyze cleanly, got: %v", err)
	}
}

func TestAnalyzeForOverList(t *testing.T) {
	_, _, err := analyzeSource(t, "def sum_list(xs: list[int]) -> int:\n    total = 0\n    for x in xs:\n        total = total + x\n    return total\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnalyzeLenBuiltin(t *testing.T) {
	prog, _, err := analyzeSource(t, "def f(xs: list[int]) -> int:\n    return len(xs)\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ret := prog.Functions[0].Body[0].(ir.Return)
	call, ok := ret.Value.(ir.Call)
	if !ok {
		t.Fatalf("expected len() to produce a Call, got %T", ret.Value)
	}
	if _, ok := call.Callee.(ir.Builtin); !ok {
		t.Fatalf("expected Builtin callee, got %T", call.Callee)
	}
}
