package ir

// BuiltinName identifies one of the two builtin functions the
// language recognizes without an import.
type BuiltinName int

const (
	BuiltinOrd BuiltinName = iota
	BuiltinLen
)

func (b BuiltinName) String() string {
	if b == BuiltinOrd {
		return "ord"
	}
	return "len"
}

// Symbol is whatever a name can be bound to in a Scope. The index on
// Parameter and Local is the wasm local index; the index on
// ExternFunction is its wasm function-space index, and the index on
// Function is offset by the import count there.
type Symbol interface {
	isSymbol()
}

// Slot is implemented by the two symbol kinds that occupy a wasm
// local index (Parameter and Local), so an assignment target can be
// either without codegen needing to care which.
type Slot interface {
	SlotIndex() int
	SlotType() Type
}

// Parameter is a function parameter, bound to a fixed wasm local slot
// for the lifetime of the function.
type Parameter struct {
	Name  string
	Type  Type
	Index int
}

func (Parameter) isSymbol()         {}
func (p Parameter) SlotIndex() int  { return p.Index }
func (p Parameter) SlotType() Type  { return p.Type }

// Local is a name introduced by assignment inside a function body,
// bound to a wasm local slot after all parameters.
type Local struct {
	Name  string
	Type  Type
	Index int
}

func (Local) isSymbol()        {}
func (l Local) SlotIndex() int { return l.Index }
func (l Local) SlotType() Type { return l.Type }

// Function is a user-defined function. Index counts user functions
// from 0; its wasm function-space index is Index plus the number of
// imports, which all come first. Body and Locals are
// filled in once the analyzer finishes walking the function.
type Function struct {
	Name       string
	Params     []Parameter
	ReturnType *Type // nil when the function is declared void
	Index      int
	Body       []Statement
	Locals     []Local
}

// ParamTypes returns the parameter types in declaration order, the
// shape codegen and the analyzer's call-argument check both need.
func (f *Function) ParamTypes() []Type {
	types := make([]Type, len(f.Params))
	for i, p := range f.Params {
		types[i] = p.Type
	}
	return types
}

func (*Function) isSymbol() {}

// ExternFunction is an imported function, addressable in the wasm
// function space at Index (before all user functions).
type ExternFunction struct {
	Module     string
	Name       string
	Params     []Type
	ReturnType *Type
	Index      int
}

func (*ExternFunction) isSymbol() {}

// Builtin is one of the two compiler-recognized intrinsics, resolved
// entirely at analysis or codegen time rather than through the wasm
// function space.
type Builtin struct {
	Name BuiltinName
}

func (Builtin) isSymbol() {}
