package codegen

import (
	"corepy/ir"
	"corepy/wasm"
)

// funcCodegen holds the per-function emission state: the generator
// (for whole-module flags like usedAllocator) and the instruction
// builder the current function body is being written into.
type funcCodegen struct {
	gen     *generator
	builder *wasm.Builder
}

func (fc *funcCodegen) emitStatement(s ir.Statement) {
	switch st := s.(type) {
	case ir.Return:
		fc.emitExpr(st.Value)
		fc.builder.Return()
	case ir.ExprStatement:
		fc.emitExpr(st.Value)
		fc.builder.Drop()
	case ir.If:
		fc.emitExpr(st.Cond)
		fc.builder.If()
		for _, inner := range st.Then {
			fc.emitStatement(inner)
		}
		if len(st.Else) > 0 {
			fc.builder.Else()
			for _, inner := range st.Else {
				fc.emitStatement(inner)
			}
		}
		fc.builder.End()
	case ir.While:
		fc.builder.Block()
		fc.builder.Loop()
		fc.emitExpr(st.Cond)
		fc.builder.Op(wasm.OpI32Eqz)
		fc.builder.BrIf(1)
		for _, inner := range st.Body {
			fc.emitStatement(inner)
		}
		fc.builder.Br(0)
		fc.builder.End()
		fc.builder.End()
	case ir.For:
		fc.emitFor(st)
	case ir.Assignment:
		fc.emitExpr(st.Value)
		fc.builder.LocalSet(uint32(st.Target.SlotIndex()))
	default:
		panic(Error{Message: "unrecognized statement in code generation"})
	}
}

func (fc *funcCodegen) emitFor(st ir.For) {
	elemType := st.LoopVar.Type
	elemSize := elementSize(elemType)
	offset := uint32(dataStart(elemType))

	fc.emitExpr(st.Iter)
	fc.builder.LocalSet(uint32(st.IterVar.Index))
	fc.builder.I32Const(0)
	fc.builder.LocalSet(uint32(st.IndexVar.Index))

	fc.builder.Loop()

	fc.builder.LocalGet(uint32(st.IterVar.Index))
	fc.builder.LocalGet(uint32(st.IndexVar.Index))
	fc.builder.I32Const(elemSize)
	fc.builder.Op(wasm.OpI32Mul)
	fc.builder.Op(wasm.OpI32Add)
	fc.emitLoad(elemType, offset)
	fc.builder.LocalSet(uint32(st.LoopVar.Index))

	for _, inner := range st.Body {
		fc.emitStatement(inner)
	}

	fc.builder.LocalGet(uint32(st.IndexVar.Index))
	fc.builder.I32Const(1)
	fc.builder.Op(wasm.OpI32Add)
	fc.builder.LocalSet(uint32(st.IndexVar.Index))

	fc.builder.LocalGet(uint32(st.IndexVar.Index))
	fc.builder.LocalGet(uint32(st.IterVar.Index))
	fc.builder.I32Load(0)
	fc.builder.Op(wasm.OpI32LtS)
	fc.builder.BrIf(0)

	fc.builder.End()
}

// emitLoad appends the load instruction matching t's wasm type.
func (fc *funcCodegen) emitLoad(t ir.Type, offset uint32) {
	if wasmType(t) == wasm.ValF64 {
		fc.builder.F64Load(offset)
		return
	}
	fc.builder.I32Load(offset)
}

// emitStore appends the store instruction matching t's wasm type.
func (fc *funcCodegen) emitStore(t ir.Type, offset uint32) {
	if wasmType(t) == wasm.ValF64 {
		fc.builder.F64Store(offset)
		return
	}
	fc.builder.I32Store(offset)
}
