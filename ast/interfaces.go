// Package ast defines the abstract syntax tree produced by the parser.
// Every node follows the Visitor pattern: behavior (printing, analysis)
// is implemented by external visitors rather than on the nodes
// themselves, so new passes can be added without touching this package.
package ast

import "corepy/token"

// Node is implemented by every AST node; it reports the source
// location of the node's leading token.
type Node interface {
	Loc() token.Location
}

// Expr is the base interface for expression nodes.
type Expr interface {
	Node
	Accept(v ExprVisitor) any
}

// Stmt is the base interface for statement nodes.
type Stmt interface {
	Node
	Accept(v StmtVisitor) any
}

// TopLevel is the base interface for Program-level declarations.
type TopLevel interface {
	Node
	Accept(v TopLevelVisitor) any
}

// ExprVisitor defines one Visit method per Expr node kind.
type ExprVisitor interface {
	VisitInt(e *IntLiteral) any
	VisitFloat(e *FloatLiteral) any
	VisitString(e *StringLiteral) any
	VisitIdentifier(e *Identifier) any
	VisitListLiteral(e *ListLiteral) any
	VisitComparison(e *Comparison) any
	VisitBinaryOp(e *BinaryOp) any
	VisitBoolOp(e *BoolOp) any
	VisitCall(e *Call) any
	VisitIndex(e *Index) any
}

// StmtVisitor defines one Visit method per Stmt node kind.
type StmtVisitor interface {
	VisitReturn(s *Return) any
	VisitIf(s *If) any
	VisitWhile(s *While) any
	VisitFor(s *For) any
	VisitAssignment(s *Assignment) any
	VisitExprStmt(s *ExprStmt) any
	VisitBreak(s *Break) any
	VisitContinue(s *Continue) any
	VisitPass(s *Pass) any
}

// TopLevelVisitor defines one Visit method per TopLevel node kind.
type TopLevelVisitor interface {
	VisitImport(i *Import) any
	VisitFunctionDef(f *FunctionDef) any
	VisitClassDef(c *ClassDef) any
}
