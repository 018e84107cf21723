package ir

import "corepy/token"

// Expression is a typed expression node: every variant carries the
// Type the analyzer resolved for it, so codegen never re-derives types.
type Expression interface {
	ExprType() Type
}

type IntLiteral struct {
	Value int64
}

func (IntLiteral) ExprType() Type { return Int() }

type FloatLiteral struct {
	Value float64
}

func (FloatLiteral) ExprType() Type { return Flt() }

// CharLiteral is the result of constant-folding a single-character
// string literal through `ord` at analysis time.
type CharLiteral struct {
	Value int64
}

func (CharLiteral) ExprType() Type { return Int() }

// StringLiteral is a string or bytes literal. Codegen has no lowering
// for it and reports an error when one reaches a function body.
type StringLiteral struct {
	Value string
	Bytes bool
}

func (s StringLiteral) ExprType() Type {
	if s.Bytes {
		return ByteStr()
	}
	return String()
}

// Identifier resolves a name to the Symbol bound for it, found by a
// full top-down traversal of the scope stack.
type Identifier struct {
	Sym Symbol
	Typ Type
}

func (i Identifier) ExprType() Type { return i.Typ }

// ListLiteral is `[e0, e1, ...]`, all elements of the same type. The
// helper local holds the runtime base pointer codegen bump-allocates
// into; the analyzer reserves its index, codegen fills its value.
type ListLiteral struct {
	Elements    []Expression
	ElemType    Type
	HelperLocal Local
}

func (l ListLiteral) ExprType() Type { return ListOf(l.ElemType) }

type CompareOp int

const (
	CmpLt CompareOp = iota
	CmpGt
	CmpLe
	CmpGe
	CmpEq
	CmpNe
)

type Comparison struct {
	Left  Expression
	Op    CompareOp
	Right Expression
}

func (Comparison) ExprType() Type { return Boolean() }

type ArithOp int

const (
	ArithAdd ArithOp = iota
	ArithSub
	ArithMul
	ArithDiv
)

type BinaryOp struct {
	Left  Expression
	Op    ArithOp
	Right Expression
	Typ   Type
}

func (b BinaryOp) ExprType() Type { return b.Typ }

type BoolConn int

const (
	ConnAnd BoolConn = iota
	ConnOr
)

type BoolOp struct {
	Left  Expression
	Op    BoolConn
	Right Expression
}

func (BoolOp) ExprType() Type { return Boolean() }

// Call is either a user/extern function call or a builtin invocation.
// Callee is one of *Function, *ExternFunction, or Builtin.
type Call struct {
	Callee Symbol
	Args   []Expression
	Typ    Type
	Loc    token.Location
}

func (c Call) ExprType() Type { return c.Typ }

// Indexed is `base[index]`, base typed List or Tuple.
type Indexed struct {
	Base  Expression
	Index Expression
	Typ   Type
}

func (i Indexed) ExprType() Type { return i.Typ }
