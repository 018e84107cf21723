package codegen

import (
	"corepy/ir"
	"corepy/wasm"
)

// generator holds the whole-module state codegen accumulates across
// every function: whether any function used the bump allocator (which
// decides whether a Data section is emitted at all).
type generator struct {
	usedAllocator bool
	numImports    uint32
}

// Generate lowers a fully analyzed Program into a ready-to-encode wasm
// Module. It panics on constructs this code generator does not lower
// (generic strings, float equality); Generate is the single recovery
// point, matching the panic/recover style the analyzer also uses for
// its own single-pass walk.
func Generate(prog *ir.Program) (mod *wasm.Module, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				mod, err = nil, e
				return
			}
			panic(r)
		}
	}()

	g := &generator{}
	m := &wasm.Module{Memory: true}

	for _, ext := range prog.Imports {
		typeIdx := uint32(len(m.Types))
		m.Types = append(m.Types, wasm.FuncType{
			Params:  wasmTypes(ext.Params),
			Results: wasmTypes([]ir.Type{*ext.ReturnType}),
		})
		m.Imports = append(m.Imports, wasm.Import{Module: ext.Module, Field: ext.Name, TypeIdx: typeIdx})
	}

	numImports := uint32(len(prog.Imports))
	g.numImports = numImports

	for _, fn := range prog.Functions {
		typeIdx := uint32(len(m.Types))
		m.Types = append(m.Types, wasm.FuncType{
			Params:  wasmTypes(fn.ParamTypes()),
			Results: resultTypes(fn),
		})
		m.Functions = append(m.Functions, typeIdx)

		body := g.emitFunction(fn)
		m.Bodies = append(m.Bodies, body)

		m.Exports = append(m.Exports, wasm.Export{
			Name:  fn.Name,
			Kind:  wasm.ExternFunc,
			Index: numImports + uint32(fn.Index),
		})
	}

	if g.usedAllocator {
		m.Data = append(m.Data, wasm.DataSegment{Offset: 0, Bytes: []byte{8, 0, 0, 0}})
	}

	return m, nil
}

func resultTypes(fn *ir.Function) []wasm.ValType {
	if fn.ReturnType == nil {
		return nil
	}
	return []wasm.ValType{wasmType(*fn.ReturnType)}
}

// emitFunction builds one function's local declarations and
// instruction stream, including the implicit fallback return value
// every function with a declared result needs (a well-typed function
// body may fall off the end without an explicit `return`).
func (g *generator) emitFunction(fn *ir.Function) wasm.FunctionBody {
	b := wasm.NewBuilder()
	fcg := &funcCodegen{gen: g, builder: b}
	for _, stmt := range fn.Body {
		fcg.emitStatement(stmt)
	}
	if fn.ReturnType != nil {
		fcg.emitZeroValue(*fn.ReturnType)
	}

	locals := make([]wasm.ValType, len(fn.Locals))
	for i, l := range fn.Locals {
		locals[i] = wasmType(l.Type)
	}

	return wasm.FunctionBody{Locals: locals, Code: b.Bytes()}
}

// emitZeroValue pushes the fallback value a function with no explicit
// return falls through to: zero for scalars, a null (zero) pointer
// for every heap-allocated shape per this compiler's resolution of
// what that case should do.
func (fc *funcCodegen) emitZeroValue(t ir.Type) {
	if t.Kind == ir.Float {
		fc.builder.F64Const(0)
		return
	}
	fc.builder.I32Const(0)
}
