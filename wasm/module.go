// Package wasm emits a WebAssembly 1.0 binary module: opcode table,
// LEB128 varints, and the section-by-section encoder itself. Nothing
// in this package knows about the source language; it consumes
// already-resolved types, instruction streams, and indices.
package wasm

// FuncType is one entry in the Type section: a function signature.
type FuncType struct {
	Params  []ValType
	Results []ValType
}

// Import is one entry in the Import section. Only function imports
// are produced by this compiler.
type Import struct {
	Module  string
	Field   string
	TypeIdx uint32
}

// FunctionBody is one entry in the Code section: the function's
// locals (already including its parameters' worth of offset, but not
// the parameters themselves — only additional locals are declared
// here) and its instruction stream.
type FunctionBody struct {
	Locals []ValType
	Code   []byte
}

// Export is one entry in the Export section.
type Export struct {
	Name  string
	Kind  ExternKind
	Index uint32
}

// DataSegment is one entry in the Data section: bytes to place at a
// fixed linear-memory offset on instantiation.
type DataSegment struct {
	Offset int32
	Bytes  []byte
}

// Module is the fully assembled, ready-to-encode wasm module. Fields
// map directly onto the sections the emitter writes.
type Module struct {
	Types     []FuncType
	Imports   []Import // always function imports, always first in the function space
	Functions []uint32 // one type index per user function, in declaration order
	Bodies    []FunctionBody
	Exports   []Export
	Memory    bool // always true for this compiler: a single page minimum
	Data      []DataSegment
}

// Encode serializes the module to a complete WebAssembly 1.0 binary:
// magic, version, then sections in the canonical order, each written
// to a scratch buffer before being wrapped with its id and length.
func (m *Module) Encode() []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}

	out = append(out, writeSection(SecType, m.encodeTypeSection())...)
	if len(m.Imports) > 0 {
		out = append(out, writeSection(SecImport, m.encodeImportSection())...)
	}
	out = append(out, writeSection(SecFunction, m.encodeFunctionSection())...)
	if m.Memory {
		out = append(out, writeSection(SecMemory, m.encodeMemorySection())...)
	}
	out = append(out, writeSection(SecExport, m.encodeExportSection())...)
	out = append(out, writeSection(SecCode, m.encodeCodeSection())...)
	if len(m.Data) > 0 {
		out = append(out, writeSection(SecData, m.encodeDataSection())...)
	}
	return out
}

// writeSection wraps an already-encoded section body with its id byte
// and a LEB128-encoded length prefix.
func writeSection(id byte, body []byte) []byte {
	out := []byte{id}
	out = putUvarint(out, uint64(len(body)))
	return append(out, body...)
}

// encodeVector prefixes n LEB128-encoded items already concatenated
// into contents with their count.
func encodeVector(count int, contents []byte) []byte {
	out := putUvarint(nil, uint64(count))
	return append(out, contents...)
}

// encodeName writes a length-prefixed UTF-8 string, the shape every
// wasm name (import/export fields) uses.
func encodeName(s string) []byte {
	out := putUvarint(nil, uint64(len(s)))
	return append(out, []byte(s)...)
}

func (t ValType) encode() byte { return byte(t) }

func encodeValTypes(types []ValType) []byte {
	out := make([]byte, 0, len(types))
	for _, t := range types {
		out = append(out, t.encode())
	}
	return out
}

func (m *Module) encodeTypeSection() []byte {
	var contents []byte
	for _, ft := range m.Types {
		entry := []byte{0x60}
		entry = append(entry, encodeVector(len(ft.Params), encodeValTypes(ft.Params))...)
		entry = append(entry, encodeVector(len(ft.Results), encodeValTypes(ft.Results))...)
		contents = append(contents, entry...)
	}
	return encodeVector(len(m.Types), contents)
}

func (m *Module) encodeImportSection() []byte {
	var contents []byte
	for _, imp := range m.Imports {
		entry := encodeName(imp.Module)
		entry = append(entry, encodeName(imp.Field)...)
		entry = append(entry, byte(ExternFunc))
		entry = putUvarint(entry, uint64(imp.TypeIdx))
		contents = append(contents, entry...)
	}
	return encodeVector(len(m.Imports), contents)
}

func (m *Module) encodeFunctionSection() []byte {
	var contents []byte
	for _, typeIdx := range m.Functions {
		contents = putUvarint(contents, uint64(typeIdx))
	}
	return encodeVector(len(m.Functions), contents)
}

func (m *Module) encodeMemorySection() []byte {
	// limits: flag 0x00 (min only), min = 1 page
	limits := []byte{0x00}
	limits = putUvarint(limits, 1)
	return encodeVector(1, limits)
}

func (m *Module) encodeExportSection() []byte {
	var contents []byte
	for _, exp := range m.Exports {
		entry := encodeName(exp.Name)
		entry = append(entry, byte(exp.Kind))
		entry = putUvarint(entry, uint64(exp.Index))
		contents = append(contents, entry...)
	}
	contents = append(contents, encodeName("memory")...)
	contents = append(contents, byte(ExternMemory))
	contents = putUvarint(contents, 0)
	return encodeVector(len(m.Exports)+1, contents)
}

// encodeCodeSection writes, per spec, one local-group per declared
// local (count always 1) rather than grouping consecutive same-typed
// locals — simpler, and the group count stays within spec's explicit
// wire-format description.
func (m *Module) encodeCodeSection() []byte {
	var contents []byte
	for _, body := range m.Bodies {
		var fn []byte
		localGroups := encodeVector(len(body.Locals), encodeLocalGroups(body.Locals))
		fn = append(fn, localGroups...)
		fn = append(fn, body.Code...)
		fn = append(fn, byte(OpEnd))
		contents = putUvarint(contents, uint64(len(fn)))
		contents = append(contents, fn...)
	}
	return encodeVector(len(m.Bodies), contents)
}

func encodeLocalGroups(locals []ValType) []byte {
	var out []byte
	for _, t := range locals {
		out = putUvarint(out, 1)
		out = append(out, t.encode())
	}
	return out
}

func (m *Module) encodeDataSection() []byte {
	var contents []byte
	for _, seg := range m.Data {
		entry := []byte{0x00} // active segment, memory index 0 implied
		entry = append(entry, byte(OpI32Const))
		entry = putVarint(entry, int64(seg.Offset))
		entry = append(entry, byte(OpEnd))
		entry = append(entry, encodeVector(len(seg.Bytes), seg.Bytes)...)
		contents = append(contents, entry...)
	}
	return encodeVector(len(m.Data), contents)
}
