package codegen

import (
	"testing"

	"corepy/ir"
)

func TestGenerateIdentityFunction(t *testing.T) {
	param := ir.Parameter{Name: "x", Type: ir.Int(), Index: 0}
	ret := ir.Int()
	fn := &ir.Function{
		Name:       "identity",
		Params:     []ir.Parameter{param},
		ReturnType: &ret,
		Index:      0,
		Body:       []ir.Statement{ir.Return{Value: ir.Identifier{Sym: param, Typ: ir.Int()}}},
	}
	prog := &ir.Program{Functions: []*ir.Function{fn}}

	mod, err := Generate(prog)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(mod.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(mod.Functions))
	}
	if len(mod.Exports) != 1 || mod.Exports[0].Name != "identity" {
		t.Fatalf("unexpected exports: %+v", mod.Exports)
	}
	if !mod.Memory {
		t.Fatal("expected memory to always be emitted")
	}
	if len(mod.Data) != 0 {
		t.Fatal("expected no data section when no list literal is used")
	}
}

func TestGenerateRejectsFloatEquality(t *testing.T) {
	ret := ir.Boolean()
	fn := &ir.Function{
		Name:       "eq",
		ReturnType: &ret,
		Index:      0,
		Body: []ir.Statement{ir.Return{Value: ir.Comparison{
			Left:  ir.FloatLiteral{Value: 1.0},
			Op:    ir.CmpEq,
			Right: ir.FloatLiteral{Value: 1.0},
		}}},
	}
	prog := &ir.Program{Functions: []*ir.Function{fn}}

	if _, err := Generate(prog); err == nil {
		t.Fatal("expected an error for float equality")
	}
}

func TestGenerateListLiteralUsesAllocatorAndData(t *testing.T) {
	elem := ir.Int()
	helper := ir.Local{Type: ir.Int(), Index: 0}
	listType := ir.ListOf(elem)
	ret := listType
	fn := &ir.Function{
		Name:       "make_list",
		ReturnType: &ret,
		Index:      0,
		Locals:     []ir.Local{helper},
		Body: []ir.Statement{ir.Return{Value: ir.ListLiteral{
			Elements:    []ir.Expression{ir.IntLiteral{Value: 1}, ir.IntLiteral{Value: 2}},
			ElemType:    elem,
			HelperLocal: helper,
		}}},
	}
	prog := &ir.Program{Functions: []*ir.Function{fn}}

	mod, err := Generate(prog)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(mod.Data) != 1 {
		t.Fatalf("expected a data segment initializing the allocator, got %d", len(mod.Data))
	}
	if mod.Data[0].Offset != 0 || len(mod.Data[0].Bytes) != 4 || mod.Data[0].Bytes[0] != 8 {
		t.Fatalf("unexpected allocator init segment: %+v", mod.Data[0])
	}
}

func TestGenerateImportOffsetsFunctionIndex(t *testing.T) {
	extRet := ir.Int()
	ext := &ir.ExternFunction{Module: "env", Name: "log_i64", Params: []ir.Type{ir.Int()}, ReturnType: &extRet, Index: 0}

	ret := ir.Int()
	fn := &ir.Function{
		Name:       "call_log",
		ReturnType: &ret,
		Index:      0,
		Body: []ir.Statement{ir.Return{Value: ir.Call{
			Callee: ext,
			Args:   []ir.Expression{ir.IntLiteral{Value: 42}},
			Typ:    ir.Int(),
		}}},
	}
	prog := &ir.Program{Imports: []*ir.ExternFunction{ext}, Functions: []*ir.Function{fn}}

	mod, err := Generate(prog)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if mod.Exports[0].Index != 1 {
		t.Fatalf("expected exported function index 1 (after 1 import), got %d", mod.Exports[0].Index)
	}
}
