// Package codegen walks a typed ir.Program and produces a wasm.Module:
// one wasm function per ir.Function, plus the inline bump allocator
// list literals need and the imports/memory/exports every module in
// this compiler carries.
package codegen

import (
	"corepy/ir"
	"corepy/wasm"
)

// wasmType maps a source Type to the wasm value type its values
// occupy on the stack and in locals: Integer/Bool to i32, Float to
// f64, and every heap-allocated shape (Str, Bytes, List, Tuple) to an
// i32 pointer into linear memory.
func wasmType(t ir.Type) wasm.ValType {
	if t.Kind == ir.Float {
		return wasm.ValF64
	}
	return wasm.ValI32
}

func wasmTypes(types []ir.Type) []wasm.ValType {
	out := make([]wasm.ValType, len(types))
	for i, t := range types {
		out[i] = wasmType(t)
	}
	return out
}

// elementSize is the number of bytes one value of t occupies in
// linear memory: 8 for Float, 4 for everything else (i32 scalars and
// pointers alike).
func elementSize(t ir.Type) int32 {
	if t.Kind == ir.Float {
		return 8
	}
	return 4
}

func alignUp(n, align int32) int32 {
	return (n + align - 1) / align * align
}

// dataStart is the byte offset, within one list/tuple's allocated
// block, at which element data begins — past the 4-byte element-count
// header, padded up to the element type's own alignment.
func dataStart(elemType ir.Type) int32 {
	return alignUp(4, elementSize(elemType))
}
