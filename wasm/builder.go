package wasm

import "math"

// Builder accumulates a single function body's instruction stream
// into a scratch byte buffer, matching the "scratch-buffer-then-wrap"
// pattern the rest of this package's section writers use.
type Builder struct {
	buf []byte
}

// NewBuilder returns an empty instruction builder.
func NewBuilder() *Builder { return &Builder{} }

// Bytes returns the accumulated instruction stream.
func (b *Builder) Bytes() []byte { return b.buf }

func (b *Builder) op(o Opcode) *Builder {
	b.buf = append(b.buf, byte(o))
	return b
}

// Op appends a bare opcode with no operand (end, drop, return, the
// arithmetic/comparison family, ...).
func (b *Builder) Op(o Opcode) *Builder { return b.op(o) }

// Block opens a `block` with the empty block type.
func (b *Builder) Block() *Builder { return b.op(OpBlock).byteOp(BlockTypeEmpty) }

// Loop opens a `loop` with the empty block type.
func (b *Builder) Loop() *Builder { return b.op(OpLoop).byteOp(BlockTypeEmpty) }

// If opens an `if` with the empty block type.
func (b *Builder) If() *Builder { return b.op(OpIf).byteOp(BlockTypeEmpty) }

// Else appends the `else` opcode between an if's two arms.
func (b *Builder) Else() *Builder { return b.op(OpElse) }

// End closes the innermost open block/loop/if, or the function body.
func (b *Builder) End() *Builder { return b.op(OpEnd) }

func (b *Builder) byteOp(v byte) *Builder {
	b.buf = append(b.buf, v)
	return b
}

// Br appends an unconditional branch to the block `depth` levels out.
func (b *Builder) Br(depth uint32) *Builder {
	b.op(OpBr)
	b.buf = putUvarint(b.buf, uint64(depth))
	return b
}

// BrIf appends a conditional branch to the block `depth` levels out.
func (b *Builder) BrIf(depth uint32) *Builder {
	b.op(OpBrIf)
	b.buf = putUvarint(b.buf, uint64(depth))
	return b
}

// Return appends the `return` opcode.
func (b *Builder) Return() *Builder { return b.op(OpReturn) }

// Drop appends the `drop` opcode.
func (b *Builder) Drop() *Builder { return b.op(OpDrop) }

// Call appends a `call` to the wasm function space index funcIdx.
func (b *Builder) Call(funcIdx uint32) *Builder {
	b.op(OpCall)
	b.buf = putUvarint(b.buf, uint64(funcIdx))
	return b
}

// LocalGet/LocalSet append their respective opcode plus the local index.
func (b *Builder) LocalGet(idx uint32) *Builder {
	b.op(OpLocalGet)
	b.buf = putUvarint(b.buf, uint64(idx))
	return b
}

func (b *Builder) LocalSet(idx uint32) *Builder {
	b.op(OpLocalSet)
	b.buf = putUvarint(b.buf, uint64(idx))
	return b
}

// I32Const/F64Const append a constant push.
func (b *Builder) I32Const(v int32) *Builder {
	b.op(OpI32Const)
	b.buf = putVarint(b.buf, int64(v))
	return b
}

func (b *Builder) F64Const(v float64) *Builder {
	b.op(OpF64Const)
	bits := math.Float64bits(v)
	for i := 0; i < 8; i++ {
		b.buf = append(b.buf, byte(bits>>(8*i)))
	}
	return b
}

// memArg appends a memory instruction's (align, offset) immediate pair.
func (b *Builder) memArg(align, offset uint32) *Builder {
	b.buf = putUvarint(b.buf, uint64(align))
	b.buf = putUvarint(b.buf, uint64(offset))
	return b
}

func (b *Builder) I32Load(offset uint32) *Builder {
	b.op(OpI32Load)
	return b.memArg(I32Align, offset)
}

func (b *Builder) F64Load(offset uint32) *Builder {
	b.op(OpF64Load)
	return b.memArg(F64Align, offset)
}

func (b *Builder) I32Store(offset uint32) *Builder {
	b.op(OpI32Store)
	return b.memArg(I32Align, offset)
}

func (b *Builder) F64Store(offset uint32) *Builder {
	b.op(OpF64Store)
	return b.memArg(F64Align, offset)
}
