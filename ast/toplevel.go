package ast

import "corepy/token"

// Param is one `name: type_expr` entry in a function's parameter list.
type Param struct {
	Name     string
	TypeExpr Expr
}

// Program is the root node: an ordered list of top-level declarations.
type Program struct {
	TopLevels []TopLevel
}

// Import is `from module import name`.
type Import struct {
	Module   string
	Name     string
	Location token.Location
}

func (i *Import) Loc() token.Location          { return i.Location }
func (i *Import) Accept(v TopLevelVisitor) any { return v.VisitImport(i) }

// FunctionDef is `def name(params) -> result_type_expr?: body`.
type FunctionDef struct {
	Name       string
	Parameters []Param
	ResultExpr Expr // nil when the function is declared void
	Body       []Stmt
	Location   token.Location
}

func (f *FunctionDef) Loc() token.Location          { return f.Location }
func (f *FunctionDef) Accept(v TopLevelVisitor) any { return v.VisitFunctionDef(f) }

// ClassDef is `class name: body`. The grammar parses it; the analyzer
// rejects it with an unimplemented error.
type ClassDef struct {
	Name     string
	Body     []Stmt
	Location token.Location
}

func (c *ClassDef) Loc() token.Location          { return c.Location }
func (c *ClassDef) Accept(v TopLevelVisitor) any { return v.VisitClassDef(c) }
