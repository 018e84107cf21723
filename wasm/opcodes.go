package wasm

// Opcode is a single WebAssembly instruction byte. Unlike the flat
// fixed-width bytecode the teacher's own VM uses (see
// compiler.OpCodeDefinition), wasm instructions carry heterogeneous,
// variable-width LEB128 operands, so instructions here are built with
// a Builder rather than looked up in a width table.
type Opcode byte

const (
	OpBlock  Opcode = 0x02
	OpLoop   Opcode = 0x03
	OpIf     Opcode = 0x04
	OpElse   Opcode = 0x05
	OpEnd    Opcode = 0x0B
	OpBr     Opcode = 0x0C
	OpBrIf   Opcode = 0x0D
	OpReturn Opcode = 0x0F
	OpCall   Opcode = 0x10
	OpDrop   Opcode = 0x1A

	OpLocalGet Opcode = 0x20
	OpLocalSet Opcode = 0x21
	OpLocalTee Opcode = 0x22

	OpI32Load  Opcode = 0x28
	OpI64Load  Opcode = 0x29
	OpF64Load  Opcode = 0x2B
	OpI32Store Opcode = 0x36
	OpF64Store Opcode = 0x39

	OpI32Const Opcode = 0x41
	OpF64Const Opcode = 0x44

	OpI32Eqz  Opcode = 0x45
	OpI32Eq   Opcode = 0x46
	OpI32Ne   Opcode = 0x47
	OpI32LtS  Opcode = 0x48
	OpI32GtS  Opcode = 0x4A
	OpI32LeS  Opcode = 0x4C
	OpI32GeS  Opcode = 0x4E

	OpF64Eq Opcode = 0x61
	OpF64Ne Opcode = 0x62
	OpF64Lt Opcode = 0x63
	OpF64Gt Opcode = 0x64
	OpF64Le Opcode = 0x65
	OpF64Ge Opcode = 0x66

	OpI32Add  Opcode = 0x6A
	OpI32Sub  Opcode = 0x6B
	OpI32Mul  Opcode = 0x6C
	OpI32DivS Opcode = 0x6D
	OpI32And  Opcode = 0x71
	OpI32Or   Opcode = 0x72

	OpF64Add Opcode = 0xA0
	OpF64Sub Opcode = 0xA1
	OpF64Mul Opcode = 0xA2
	OpF64Div Opcode = 0xA3
)

// ValType is a wasm value type byte.
type ValType byte

const (
	ValI32 ValType = 0x7F
	ValF64 ValType = 0x7C
)

// BlockTypeEmpty is the byte for the empty block type (no result).
const BlockTypeEmpty byte = 0x40

// Section ids, in the canonical order this emitter uses them.
const (
	SecType     byte = 1
	SecImport   byte = 2
	SecFunction byte = 3
	SecMemory   byte = 5
	SecExport   byte = 7
	SecCode     byte = 10
	SecData     byte = 11
)

// ExternKind distinguishes the kinds of entries an Import or Export
// descriptor can name. Only function (0x00) and memory (0x02) are
// used by this emitter.
type ExternKind byte

const (
	ExternFunc   ExternKind = 0x00
	ExternMemory ExternKind = 0x02
)

// I32Align / F64Align are the natural alignment exponents this
// emitter uses for every memory access: i32 values are 4-byte
// aligned (2^2), f64 values are 8-byte aligned (2^3).
const (
	I32Align uint32 = 2
	F64Align uint32 = 3
)
