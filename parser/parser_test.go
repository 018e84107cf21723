package parser

import (
	"testing"

	"corepy/ast"
	"corepy/lexer"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, err := lexer.New(src).Scan()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	prog, err := New(toks).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return prog
}

func TestParseIdentityFunction(t *testing.T) {
	src := "def identity(x: int) -> int:\n    return x\n"
	prog := mustParse(t, src)
	if len(prog.TopLevels) != 1 {
		t.Fatalf("expected 1 top-level decl, got %d", len(prog.TopLevels))
	}
	fn, ok := prog.TopLevels[0].(*ast.FunctionDef)
	if !ok {
		t.Fatalf("expected FunctionDef, got %T", prog.TopLevels[0])
	}
	if fn.Name != "identity" || len(fn.Parameters) != 1 || fn.Parameters[0].Name != "x" {
		t.Fatalf("unexpected function shape: %+v", fn)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body))
	}
	ret, ok := fn.Body[0].(*ast.Return)
	if !ok {
		t.Fatalf("expected Return, got %T", fn.Body[0])
	}
	if _, ok := ret.Value.(*ast.Identifier); !ok {
		t.Fatalf("expected Identifier return value, got %T", ret.Value)
	}
}

func TestParseImport(t *testing.T) {
	prog := mustParse(t, "from env import log_i64\n")
	imp, ok := prog.TopLevels[0].(*ast.Import)
	if !ok {
		t.Fatalf("expected Import, got %T", prog.TopLevels[0])
	}
	if imp.Module != "env" || imp.Name != "log_i64" {
		t.Fatalf("unexpected import shape: %+v", imp)
	}
}

func TestParseWhileLoopAndAssignment(t *testing.T) {
	src := "def countdown(n: int) -> int:\n    total = 0\n    while n > 0:\n        total = total + n\n        n = n - 1\n    return total\n"
	prog := mustParse(t, src)
	fn := prog.TopLevels[0].(*ast.FunctionDef)
	if len(fn.Body) != 3 {
		t.Fatalf("expected 3 body statements, got %d", len(fn.Body))
	}
	if _, ok := fn.Body[0].(*ast.Assignment); !ok {
		t.Fatalf("expected Assignment, got %T", fn.Body[0])
	}
	loop, ok := fn.Body[1].(*ast.While)
	if !ok {
		t.Fatalf("expected While, got %T", fn.Body[1])
	}
	if len(loop.Body) != 2 {
		t.Fatalf("expected 2 statements in loop body, got %d", len(loop.Body))
	}
}

func TestParseListLiteralAndIndex(t *testing.T) {
	src := "def first(xs: list[int]) -> int:\n    return xs[0]\n"
	prog := mustParse(t, src)
	fn := prog.TopLevels[0].(*ast.FunctionDef)
	ret := fn.Body[0].(*ast.Return)
	idx, ok := ret.Value.(*ast.Index)
	if !ok {
		t.Fatalf("expected Index, got %T", ret.Value)
	}
	if _, ok := idx.Base.(*ast.Identifier); !ok {
		t.Fatalf("expected Identifier base, got %T", idx.Base)
	}
}

func TestParseIfElse(t *testing.T) {
	src := "def sign(n: int) -> int:\n    if n < 0:\n        return 0\n    else:\n        return 1\n"
	prog := mustParse(t, src)
	fn := prog.TopLevels[0].(*ast.FunctionDef)
	ifStmt, ok := fn.Body[0].(*ast.If)
	if !ok {
		t.Fatalf("expected If, got %T", fn.Body[0])
	}
	if len(ifStmt.Then) != 1 || len(ifStmt.Else) != 1 {
		t.Fatalf("unexpected if shape: %+v", ifStmt)
	}
}

func TestParseRejectsChainedComparison(t *testing.T) {
	src := "def f(a: int, b: int, c: int) -> int:\n    return a < b < c\n"
	toks, err := lexer.New(src).Scan()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	if _, err := New(toks).Parse(); err == nil {
		t.Fatal("expected a syntax error for a chained comparison")
	}
}

func TestParseCallExpression(t *testing.T) {
	src := "def twice(n: int) -> int:\n    return add(n, n)\n"
	prog := mustParse(t, src)
	fn := prog.TopLevels[0].(*ast.FunctionDef)
	ret := fn.Body[0].(*ast.Return)
	call, ok := ret.Value.(*ast.Call)
	if !ok {
		t.Fatalf("expected Call, got %T", ret.Value)
	}
	if call.Callee.Name != "add" || len(call.Args) != 2 {
		t.Fatalf("unexpected call shape: %+v", call)
	}
}
