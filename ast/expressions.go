package ast

import "corepy/token"

// IntLiteral is a decimal or hex integer literal.
type IntLiteral struct {
	Value    int64
	Location token.Location
}

func (e *IntLiteral) Loc() token.Location      { return e.Location }
func (e *IntLiteral) Accept(v ExprVisitor) any { return v.VisitInt(e) }

// FloatLiteral is a decimal float literal.
type FloatLiteral struct {
	Value    float64
	Location token.Location
}

func (e *FloatLiteral) Loc() token.Location      { return e.Location }
func (e *FloatLiteral) Accept(v ExprVisitor) any { return v.VisitFloat(e) }

// StringLiteral is a single- or triple-quoted string literal, quotes
// already stripped by the lexer.
type StringLiteral struct {
	Value    string
	Location token.Location
}

func (e *StringLiteral) Loc() token.Location      { return e.Location }
func (e *StringLiteral) Accept(v ExprVisitor) any { return v.VisitString(e) }

// Identifier is a bare name reference.
type Identifier struct {
	Name     string
	Location token.Location
}

func (e *Identifier) Loc() token.Location      { return e.Location }
func (e *Identifier) Accept(v ExprVisitor) any { return v.VisitIdentifier(e) }

// ListLiteral is `[ e0, e1, ... ]`.
type ListLiteral struct {
	Elements []Expr
	Location token.Location
}

func (e *ListLiteral) Loc() token.Location      { return e.Location }
func (e *ListLiteral) Accept(v ExprVisitor) any { return v.VisitListLiteral(e) }

// Comparison is a non-chaining comparison: < > <= >= == !=.
type Comparison struct {
	Left     Expr
	Op       token.Type
	Right    Expr
	Location token.Location
}

func (e *Comparison) Loc() token.Location      { return e.Location }
func (e *Comparison) Accept(v ExprVisitor) any { return v.VisitComparison(e) }

// BinaryOp is an arithmetic binary expression: + - * /.
type BinaryOp struct {
	Left     Expr
	Op       token.Type
	Right    Expr
	Location token.Location
}

func (e *BinaryOp) Loc() token.Location      { return e.Location }
func (e *BinaryOp) Accept(v ExprVisitor) any { return v.VisitBinaryOp(e) }

// BoolOp is a boolean connective: `and` / `or`.
type BoolOp struct {
	Left     Expr
	Op       token.Type
	Right    Expr
	Location token.Location
}

func (e *BoolOp) Loc() token.Location      { return e.Location }
func (e *BoolOp) Accept(v ExprVisitor) any { return v.VisitBoolOp(e) }

// Call is `callee ( args... )`. The grammar restricts callee to a bare
// identifier, and the Callee field's type carries that restriction.
type Call struct {
	Callee   *Identifier
	Args     []Expr
	Location token.Location
}

func (e *Call) Loc() token.Location      { return e.Location }
func (e *Call) Accept(v ExprVisitor) any { return v.VisitCall(e) }

// Index is `base [ index ]`.
type Index struct {
	Base     Expr
	IndexExp Expr
	Location token.Location
}

func (e *Index) Loc() token.Location      { return e.Location }
func (e *Index) Accept(v ExprVisitor) any { return v.VisitIndex(e) }
