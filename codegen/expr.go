package codegen

import (
	"corepy/ir"
	"corepy/wasm"
)

func (fc *funcCodegen) emitExpr(e ir.Expression) {
	switch ex := e.(type) {
	case ir.IntLiteral:
		fc.builder.I32Const(int32(ex.Value))
	case ir.CharLiteral:
		fc.builder.I32Const(int32(ex.Value))
	case ir.FloatLiteral:
		fc.builder.F64Const(ex.Value)
	case ir.StringLiteral:
		panic(Error{Message: "string literal code generation is not implemented"})
	case ir.Identifier:
		slot, ok := ex.Sym.(ir.Slot)
		if !ok {
			panic(Error{Message: "identifier does not resolve to a local slot"})
		}
		fc.builder.LocalGet(uint32(slot.SlotIndex()))
	case ir.ListLiteral:
		fc.emitListLiteral(ex)
	case ir.Comparison:
		fc.emitComparison(ex)
	case ir.BinaryOp:
		fc.emitBinaryOp(ex)
	case ir.BoolOp:
		fc.emitBoolOp(ex)
	case ir.Call:
		fc.emitCall(ex)
	case ir.Indexed:
		fc.emitIndexed(ex)
	default:
		panic(Error{Message: "unrecognized expression in code generation"})
	}
}

func (fc *funcCodegen) emitComparison(ex ir.Comparison) {
	leftType := ex.Left.ExprType()
	fc.emitExpr(ex.Left)
	fc.emitExpr(ex.Right)
	isFloat := wasmType(leftType) == wasm.ValF64
	switch ex.Op {
	case ir.CmpLt:
		if isFloat {
			fc.builder.Op(wasm.OpF64Lt)
		} else {
			fc.builder.Op(wasm.OpI32LtS)
		}
	case ir.CmpGt:
		if isFloat {
			fc.builder.Op(wasm.OpF64Gt)
		} else {
			fc.builder.Op(wasm.OpI32GtS)
		}
	case ir.CmpLe:
		if isFloat {
			fc.builder.Op(wasm.OpF64Le)
		} else {
			fc.builder.Op(wasm.OpI32LeS)
		}
	case ir.CmpGe:
		if isFloat {
			fc.builder.Op(wasm.OpF64Ge)
		} else {
			fc.builder.Op(wasm.OpI32GeS)
		}
	case ir.CmpEq:
		if isFloat {
			panic(Error{Message: "floating-point equality is not supported"})
		}
		fc.builder.Op(wasm.OpI32Eq)
	case ir.CmpNe:
		if isFloat {
			panic(Error{Message: "floating-point inequality is not supported"})
		}
		fc.builder.Op(wasm.OpI32Ne)
	}
}

func (fc *funcCodegen) emitBinaryOp(ex ir.BinaryOp) {
	fc.emitExpr(ex.Left)
	fc.emitExpr(ex.Right)
	isFloat := wasmType(ex.Typ) == wasm.ValF64
	switch ex.Op {
	case ir.ArithAdd:
		if isFloat {
			fc.builder.Op(wasm.OpF64Add)
		} else {
			fc.builder.Op(wasm.OpI32Add)
		}
	case ir.ArithSub:
		if isFloat {
			fc.builder.Op(wasm.OpF64Sub)
		} else {
			fc.builder.Op(wasm.OpI32Sub)
		}
	case ir.ArithMul:
		if isFloat {
			fc.builder.Op(wasm.OpF64Mul)
		} else {
			fc.builder.Op(wasm.OpI32Mul)
		}
	case ir.ArithDiv:
		if isFloat {
			fc.builder.Op(wasm.OpF64Div)
		} else {
			fc.builder.Op(wasm.OpI32DivS)
		}
	}
}

func (fc *funcCodegen) emitBoolOp(ex ir.BoolOp) {
	fc.emitExpr(ex.Left)
	fc.emitExpr(ex.Right)
	if ex.Op == ir.ConnAnd {
		fc.builder.Op(wasm.OpI32And)
	} else {
		fc.builder.Op(wasm.OpI32Or)
	}
}

func (fc *funcCodegen) emitCall(ex ir.Call) {
	for _, arg := range ex.Args {
		fc.emitExpr(arg)
	}
	switch callee := ex.Callee.(type) {
	case *ir.Function:
		fc.builder.Call(uint32(callee.Index) + fc.importOffsetFor(callee))
	case *ir.ExternFunction:
		fc.builder.Call(uint32(callee.Index))
	case ir.Builtin:
		if callee.Name != ir.BuiltinLen {
			panic(Error{Message: "ord should have been folded away during analysis"})
		}
		fc.builder.I32Load(0)
	default:
		panic(Error{Message: "unrecognized call target in code generation"})
	}
}

// importOffsetFor returns how many wasm function-space slots precede
// user functions. Tracked on the generator so every call site agrees
// without threading the import count through every funcCodegen call.
func (fc *funcCodegen) importOffsetFor(*ir.Function) uint32 {
	return fc.gen.numImports
}

func (fc *funcCodegen) emitIndexed(ex ir.Indexed) {
	elemSize := elementSize(ex.Typ)
	offset := uint32(dataStart(ex.Typ))
	fc.emitExpr(ex.Base)
	fc.emitExpr(ex.Index)
	fc.builder.I32Const(elemSize)
	fc.builder.Op(wasm.OpI32Mul)
	fc.builder.Op(wasm.OpI32Add)
	fc.emitLoad(ex.Typ, offset)
}

// emitListLiteral bump-allocates a block sized for the header plus
// every element, stores the element count and each element's value
// into it, and leaves the block's base pointer on the stack.
func (fc *funcCodegen) emitListLiteral(ex ir.ListLiteral) {
	fc.gen.usedAllocator = true

	elemSize := elementSize(ex.ElemType)
	start := dataStart(ex.ElemType)
	total := elemSize*int32(len(ex.Elements)) + start
	helper := uint32(ex.HelperLocal.Index)

	// ptr = load(0); store(0, ptr + align_up(total, 8)); helper = ptr
	fc.builder.I32Const(0)
	fc.builder.I32Load(0)
	fc.builder.LocalSet(helper)
	fc.builder.I32Const(0)
	fc.builder.LocalGet(helper)
	fc.builder.I32Const(alignUp(total, 8))
	fc.builder.Op(wasm.OpI32Add)
	fc.builder.I32Store(0)

	// header: element count
	fc.builder.LocalGet(helper)
	fc.builder.I32Const(int32(len(ex.Elements)))
	fc.builder.I32Store(0)

	for i, el := range ex.Elements {
		fc.builder.LocalGet(helper)
		fc.emitExpr(el)
		fc.emitStore(ex.ElemType, uint32(start+int32(i)*elemSize))
	}

	fc.builder.LocalGet(helper)
}
