package ast

import "corepy/token"

// Return is `return expr`.
type Return struct {
	Value    Expr
	Location token.Location
}

func (s *Return) Loc() token.Location      { return s.Location }
func (s *Return) Accept(v StmtVisitor) any { return v.VisitReturn(s) }

// If is `if cond: then` with an optional `else: ...` branch.
type If struct {
	Cond     Expr
	Then     []Stmt
	Else     []Stmt
	Location token.Location
}

func (s *If) Loc() token.Location      { return s.Location }
func (s *If) Accept(v StmtVisitor) any { return v.VisitIf(s) }

// While is `while cond: body`.
type While struct {
	Cond     Expr
	Body     []Stmt
	Location token.Location
}

func (s *While) Loc() token.Location      { return s.Location }
func (s *While) Accept(v StmtVisitor) any { return v.VisitWhile(s) }

// For is `for target in iter: body`.
type For struct {
	TargetName string
	Iter       Expr
	Body       []Stmt
	Location   token.Location
}

func (s *For) Loc() token.Location      { return s.Location }
func (s *For) Accept(v StmtVisitor) any { return v.VisitFor(s) }

// Assignment is `target = value`, defining target as a new local the
// first time it is seen in a scope.
type Assignment struct {
	TargetName string
	Value      Expr
	Location   token.Location
}

func (s *Assignment) Loc() token.Location      { return s.Location }
func (s *Assignment) Accept(v StmtVisitor) any { return v.VisitAssignment(s) }

// ExprStmt is an expression evaluated for its side effect, its value
// discarded.
type ExprStmt struct {
	Value    Expr
	Location token.Location
}

func (s *ExprStmt) Loc() token.Location      { return s.Location }
func (s *ExprStmt) Accept(v StmtVisitor) any { return v.VisitExprStmt(s) }

// Break is the `break` statement; reserved by the grammar, rejected by
// the analyzer as unimplemented.
type Break struct {
	Location token.Location
}

func (s *Break) Loc() token.Location      { return s.Location }
func (s *Break) Accept(v StmtVisitor) any { return v.VisitBreak(s) }

// Continue is the `continue` statement; reserved, rejected.
type Continue struct {
	Location token.Location
}

func (s *Continue) Loc() token.Location      { return s.Location }
func (s *Continue) Accept(v StmtVisitor) any { return v.VisitContinue(s) }

// Pass is the `pass` statement; reserved, rejected.
type Pass struct {
	Location token.Location
}

func (s *Pass) Loc() token.Location      { return s.Location }
func (s *Pass) Accept(v StmtVisitor) any { return v.VisitPass(s) }
