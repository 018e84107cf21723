package sema

import (
	"fmt"
	"strings"

	"corepy/ast"
	"corepy/ir"
	"corepy/token"
)

// Warning is a non-fatal diagnostic raised during analysis, such as
// the import-signature inference heuristic. The compiler package
// turns these into its own Diagnostic values.
type Warning struct {
	Loc     token.Location
	Message string
}

// Analyzer performs the single pass from ast.Program to ir.Program. A
// fresh Analyzer is used per compilation; it is not safe to reuse or
// to call Analyze concurrently.
type Analyzer struct {
	scopes     *scopeStack
	imports    []*ir.ExternFunction
	functions  []*ir.Function
	warnings   []Warning
	paramCount int
}

// New constructs an Analyzer ready to analyze one Program.
func New() *Analyzer {
	return &Analyzer{scopes: newScopeStack()}
}

// Analyze walks prog once, producing a typed ir.Program and any
// warnings raised along the way. The walk uses panic/recover
// internally (matching the deeply recursive single-pass style this
// package shares with the code generator); Analyze is the one place
// that recovers, so no panic escapes this package.
func (a *Analyzer) Analyze(prog *ast.Program) (result *ir.Program, warnings []Warning, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				result, warnings = nil, a.warnings
				err = e
				return
			}
			panic(r)
		}
	}()

	a.defineIntrinsics()

	for _, top := range prog.TopLevels {
		switch t := top.(type) {
		case *ast.Import:
			a.analyzeImport(t)
		case *ast.FunctionDef:
			a.analyzeFunctionDef(t)
		case *ast.ClassDef:
			panic(UnimplementedError{Loc: t.Location, Feature: "class definitions"})
		default:
			panic(Error{Loc: top.Loc(), Message: fmt.Sprintf("unrecognized top-level node %T", top)})
		}
	}

	return &ir.Program{Imports: a.imports, Functions: a.functions}, a.warnings, nil
}

func (a *Analyzer) defineIntrinsics() {
	a.scopes.define("ord", ir.Builtin{Name: ir.BuiltinOrd})
	a.scopes.define("len", ir.Builtin{Name: ir.BuiltinLen})
}

// analyzeImport infers an unsound-by-design signature for an external
// function: a single parameter, Float if the imported name mentions
// "float" else Integer, return always Integer. The inference is
// surfaced as a warning rather than silently assumed.
func (a *Analyzer) analyzeImport(imp *ast.Import) {
	paramType := ir.Int()
	if strings.Contains(imp.Name, "float") {
		paramType = ir.Flt()
	}
	ret := ir.Int()
	ext := &ir.ExternFunction{
		Module:     imp.Module,
		Name:       imp.Name,
		Params:     []ir.Type{paramType},
		ReturnType: &ret,
		Index:      len(a.imports),
	}
	a.imports = append(a.imports, ext)
	a.scopes.defineGlobal(imp.Name, ext)
	a.warnings = append(a.warnings, Warning{
		Loc: imp.Location,
		Message: fmt.Sprintf(
			"inferred signature for import %q from %q: params=[%s] return=%s (name-substring heuristic, not sound)",
			imp.Name, imp.Module, paramType, ret),
	})
}

func (a *Analyzer) analyzeFunctionDef(fn *ast.FunctionDef) {
	var params []ir.Parameter
	for i, p := range fn.Parameters {
		params = append(params, ir.Parameter{Name: p.Name, Type: a.resolveTypeExpr(p.TypeExpr), Index: i})
	}

	var returnType *ir.Type
	if fn.ResultExpr != nil {
		t := a.resolveTypeExpr(fn.ResultExpr)
		returnType = &t
	}

	irFn := &ir.Function{
		Name:       fn.Name,
		Params:     params,
		ReturnType: returnType,
		Index:      len(a.functions),
	}
	a.functions = append(a.functions, irFn)
	// Bound in the global scope (not the function's own scope, pushed
	// next) so sibling functions, and the function itself, can call it.
	a.scopes.defineGlobal(fn.Name, irFn)

	a.scopes.push()
	savedParamCount := a.paramCount
	a.paramCount = len(params)
	for _, p := range params {
		a.scopes.define(p.Name, p)
	}

	irFn.Body = a.analyzeBlock(fn.Body)
	irFn.Locals = a.scopes.top().locals
	a.scopes.pop()
	a.paramCount = savedParamCount
}

// resolveTypeExpr maps a parsed type expression — a bare identifier or
// an indexed `list[T]`/`tuple[T]` form — to a Type.
func (a *Analyzer) resolveTypeExpr(e ast.Expr) ir.Type {
	switch t := e.(type) {
	case *ast.Identifier:
		switch t.Name {
		case "int":
			return ir.Int()
		case "float":
			return ir.Flt()
		case "bool":
			return ir.Boolean()
		case "str":
			return ir.String()
		case "bytes":
			return ir.ByteStr()
		default:
			panic(Error{Loc: t.Location, Message: fmt.Sprintf("unknown type name %q", t.Name)})
		}
	case *ast.Index:
		base, ok := t.Base.(*ast.Identifier)
		if !ok {
			panic(Error{Loc: t.Location, Message: "invalid type expression"})
		}
		elem := a.resolveTypeExpr(t.IndexExp)
		switch base.Name {
		case "list":
			return ir.ListOf(elem)
		case "tuple":
			return ir.TupleOf(elem)
		default:
			panic(Error{Loc: t.Location, Message: fmt.Sprintf("unknown parameterized type %q", base.Name)})
		}
	default:
		panic(Error{Loc: e.Loc(), Message: "invalid type expression"})
	}
}

func (a *Analyzer) analyzeBlock(stmts []ast.Stmt) []ir.Statement {
	out := make([]ir.Statement, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, a.analyzeStatement(s))
	}
	return out
}

func (a *Analyzer) analyzeStatement(s ast.Stmt) ir.Statement {
	switch st := s.(type) {
	case *ast.Return:
		return ir.Return{Value: a.analyzeExpr(st.Value)}
	case *ast.If:
		return ir.If{
			Cond: a.analyzeExpr(st.Cond),
			Then: a.analyzeBlock(st.Then),
			Else: a.analyzeBlock(st.Else),
		}
	case *ast.While:
		return ir.While{Cond: a.analyzeExpr(st.Cond), Body: a.analyzeBlock(st.Body)}
	case *ast.For:
		return a.analyzeFor(st)
	case *ast.Assignment:
		return a.analyzeAssignment(st)
	case *ast.ExprStmt:
		return ir.ExprStatement{Value: a.analyzeExpr(st.Value)}
	case *ast.Break:
		panic(UnimplementedError{Loc: st.Location, Feature: "break"})
	case *ast.Continue:
		panic(UnimplementedError{Loc: st.Location, Feature: "continue"})
	case *ast.Pass:
		panic(UnimplementedError{Loc: st.Location, Feature: "pass"})
	default:
		panic(Error{Loc: s.Loc(), Message: fmt.Sprintf("unrecognized statement %T", s)})
	}
}

func (a *Analyzer) analyzeFor(st *ast.For) ir.Statement {
	idxVar := a.scopes.allocLocal(ir.Int(), a.paramCount)
	iterVar := a.scopes.allocLocal(ir.Int(), a.paramCount)

	iter := a.analyzeExpr(st.Iter)
	iterType := iter.ExprType()
	if iterType.Kind != ir.List && iterType.Kind != ir.Tuple {
		panic(Error{Loc: st.Location, Message: fmt.Sprintf("cannot iterate over %s: expected a list or tuple", iterType)})
	}
	elemType := *iterType.Elem

	existing, existed := a.scopes.lookup(st.TargetName)
	var target ir.Local
	if existed {
		if local, ok := existing.(ir.Local); ok && local.Type.Equal(elemType) {
			target = local
		} else {
			target = a.scopes.defineLocal(st.TargetName, elemType, a.paramCount)
		}
	} else {
		target = a.scopes.defineLocal(st.TargetName, elemType, a.paramCount)
	}

	body := a.analyzeBlock(st.Body)
	return ir.For{LoopVar: target, IndexVar: idxVar, IterVar: iterVar, Iter: iter, Body: body}
}

func (a *Analyzer) analyzeAssignment(st *ast.Assignment) ir.Statement {
	value := a.analyzeExpr(st.Value)
	if existing, ok := a.scopes.top().symbols[st.TargetName]; ok {
		switch slot := existing.(type) {
		case ir.Local:
			if !slot.Type.Equal(value.ExprType()) {
				panic(Error{Loc: st.Location, Message: fmt.Sprintf(
					"cannot assign %s to %q, previously bound to %s", value.ExprType(), st.TargetName, slot.Type)})
			}
			return ir.Assignment{Target: slot, Value: value}
		case ir.Parameter:
			if !slot.Type.Equal(value.ExprType()) {
				panic(Error{Loc: st.Location, Message: fmt.Sprintf(
					"cannot assign %s to parameter %q of type %s", value.ExprType(), st.TargetName, slot.Type)})
			}
			return ir.Assignment{Target: slot, Value: value}
		}
	}
	local := a.scopes.defineLocal(st.TargetName, value.ExprType(), a.paramCount)
	return ir.Assignment{Target: local, Value: value}
}

func (a *Analyzer) analyzeExpr(e ast.Expr) ir.Expression {
	switch ex := e.(type) {
	case *ast.IntLiteral:
		return ir.IntLiteral{Value: ex.Value}
	case *ast.FloatLiteral:
		return ir.FloatLiteral{Value: ex.Value}
	case *ast.StringLiteral:
		return ir.StringLiteral{Value: ex.Value}
	case *ast.Identifier:
		return a.analyzeIdentifier(ex)
	case *ast.ListLiteral:
		return a.analyzeListLiteral(ex)
	case *ast.Comparison:
		return a.analyzeComparison(ex)
	case *ast.BinaryOp:
		return a.analyzeBinaryOp(ex)
	case *ast.BoolOp:
		return a.analyzeBoolOp(ex)
	case *ast.Call:
		return a.analyzeCall(ex)
	case *ast.Index:
		return a.analyzeIndex(ex)
	default:
		panic(Error{Loc: e.Loc(), Message: fmt.Sprintf("unrecognized expression %T", e)})
	}
}

func (a *Analyzer) analyzeIdentifier(ex *ast.Identifier) ir.Expression {
	sym, ok := a.scopes.lookup(ex.Name)
	if !ok {
		panic(Error{Loc: ex.Location, Message: fmt.Sprintf("undefined name %q", ex.Name)})
	}
	switch s := sym.(type) {
	case ir.Parameter:
		return ir.Identifier{Sym: s, Typ: s.Type}
	case ir.Local:
		return ir.Identifier{Sym: s, Typ: s.Type}
	default:
		panic(Error{Loc: ex.Location, Message: fmt.Sprintf("%q is not a value", ex.Name)})
	}
}

func (a *Analyzer) analyzeListLiteral(ex *ast.ListLiteral) ir.Expression {
	if len(ex.Elements) == 0 {
		panic(Error{Loc: ex.Location, Message: "list literal must have at least one element"})
	}
	elements := make([]ir.Expression, 0, len(ex.Elements))
	var elemType ir.Type
	for i, el := range ex.Elements {
		v := a.analyzeExpr(el)
		if i == 0 {
			elemType = v.ExprType()
		} else if !v.ExprType().Equal(elemType) {
			panic(Error{Loc: el.Loc(), Message: fmt.Sprintf(
				"list elements must share a type: element 0 is %s, element %d is %s", elemType, i, v.ExprType())})
		}
		elements = append(elements, v)
	}
	helper := a.scopes.allocLocal(ir.Int(), a.paramCount) // holds the runtime base pointer
	return ir.ListLiteral{Elements: elements, ElemType: elemType, HelperLocal: helper}
}

func (a *Analyzer) analyzeComparison(ex *ast.Comparison) ir.Expression {
	left := a.analyzeExpr(ex.Left)
	right := a.analyzeExpr(ex.Right)
	if !left.ExprType().Equal(right.ExprType()) {
		panic(Error{Loc: ex.Location, Message: fmt.Sprintf(
			"comparison operands must share a type: %s vs %s", left.ExprType(), right.ExprType())})
	}
	return ir.Comparison{Left: left, Op: comparisonOp(ex.Op), Right: right}
}

func (a *Analyzer) analyzeBinaryOp(ex *ast.BinaryOp) ir.Expression {
	left := a.analyzeExpr(ex.Left)
	right := a.analyzeExpr(ex.Right)
	if !left.ExprType().Equal(right.ExprType()) {
		panic(Error{Loc: ex.Location, Message: fmt.Sprintf(
			"arithmetic operands must share a type: %s vs %s", left.ExprType(), right.ExprType())})
	}
	return ir.BinaryOp{Left: left, Op: arithOp(ex.Op), Right: right, Typ: left.ExprType()}
}

func (a *Analyzer) analyzeBoolOp(ex *ast.BoolOp) ir.Expression {
	left := a.analyzeExpr(ex.Left)
	right := a.analyzeExpr(ex.Right)
	if !left.ExprType().Equal(ir.Boolean()) || !right.ExprType().Equal(ir.Boolean()) {
		panic(Error{Loc: ex.Location, Message: "boolean operands must both be bool"})
	}
	conn := ir.ConnAnd
	if ex.Op == token.OR {
		conn = ir.ConnOr
	}
	return ir.BoolOp{Left: left, Op: conn, Right: right}
}

func (a *Analyzer) analyzeIndex(ex *ast.Index) ir.Expression {
	base := a.analyzeExpr(ex.Base)
	baseType := base.ExprType()
	if baseType.Kind != ir.List && baseType.Kind != ir.Tuple {
		panic(Error{Loc: ex.Location, Message: fmt.Sprintf("cannot index %s: expected a list or tuple", baseType)})
	}
	index := a.analyzeExpr(ex.IndexExp)
	if !index.ExprType().Equal(ir.Int()) {
		panic(Error{Loc: ex.Location, Message: fmt.Sprintf("index must be int, got %s", index.ExprType())})
	}
	return ir.Indexed{Base: base, Index: index, Typ: *baseType.Elem}
}

func (a *Analyzer) analyzeCall(ex *ast.Call) ir.Expression {
	sym, ok := a.scopes.lookup(ex.Callee.Name)
	if !ok {
		panic(Error{Loc: ex.Location, Message: fmt.Sprintf("undefined name %q", ex.Callee.Name)})
	}
	switch s := sym.(type) {
	case *ir.Function:
		args := a.checkArguments(s.Name, s.ParamTypes(), ex.Args, ex.Location)
		if s.ReturnType == nil {
			panic(Error{Loc: ex.Location, Message: fmt.Sprintf("function %q does not return a value", s.Name)})
		}
		return ir.Call{Callee: s, Args: args, Typ: *s.ReturnType, Loc: ex.Location}
	case *ir.ExternFunction:
		args := a.checkArguments(s.Name, s.Params, ex.Args, ex.Location)
		return ir.Call{Callee: s, Args: args, Typ: *s.ReturnType, Loc: ex.Location}
	case ir.Builtin:
		return a.analyzeBuiltinCall(s, ex)
	default:
		panic(Error{Loc: ex.Location, Message: fmt.Sprintf("%q is not callable", ex.Callee.Name)})
	}
}

func (a *Analyzer) checkArguments(name string, paramTypes []ir.Type, rawArgs []ast.Expr, loc token.Location) []ir.Expression {
	if len(rawArgs) != len(paramTypes) {
		panic(Error{Loc: loc, Message: fmt.Sprintf(
			"%q expects %d argument(s), got %d", name, len(paramTypes), len(rawArgs))})
	}
	args := make([]ir.Expression, len(rawArgs))
	for i, raw := range rawArgs {
		v := a.analyzeExpr(raw)
		if !v.ExprType().Equal(paramTypes[i]) {
			panic(Error{Loc: raw.Loc(), Message: fmt.Sprintf(
				"%q argument %d: expected %s, got %s", name, i, paramTypes[i], v.ExprType())})
		}
		args[i] = v
	}
	return args
}

func (a *Analyzer) analyzeBuiltinCall(b ir.Builtin, ex *ast.Call) ir.Expression {
	switch b.Name {
	case ir.BuiltinOrd:
		if len(ex.Args) != 1 {
			panic(Error{Loc: ex.Location, Message: "ord expects exactly 1 argument"})
		}
		lit, ok := ex.Args[0].(*ast.StringLiteral)
		if !ok || len(lit.Value) != 1 {
			panic(Error{Loc: ex.Location, Message: "ord requires a compile-time string literal of length 1"})
		}
		return ir.CharLiteral{Value: int64(lit.Value[0])}
	case ir.BuiltinLen:
		if len(ex.Args) != 1 {
			panic(Error{Loc: ex.Location, Message: "len expects exactly 1 argument"})
		}
		arg := a.analyzeExpr(ex.Args[0])
		t := arg.ExprType()
		if t.Kind != ir.List && t.Kind != ir.Tuple {
			panic(Error{Loc: ex.Location, Message: fmt.Sprintf("len requires a list or tuple, got %s", t)})
		}
		return ir.Call{Callee: b, Args: []ir.Expression{arg}, Typ: ir.Int(), Loc: ex.Location}
	default:
		panic(Error{Loc: ex.Location, Message: "unrecognized builtin"})
	}
}

func comparisonOp(t token.Type) ir.CompareOp {
	switch t {
	case token.LT:
		return ir.CmpLt
	case token.GT:
		return ir.CmpGt
	case token.LE:
		return ir.CmpLe
	case token.GE:
		return ir.CmpGe
	case token.EQ:
		return ir.CmpEq
	case token.NE:
		return ir.CmpNe
	default:
		panic(fmt.Sprintf("not a comparison operator: %s", t))
	}
}

func arithOp(t token.Type) ir.ArithOp {
	switch t {
	case token.PLUS:
		return ir.ArithAdd
	case token.MINUS:
		return ir.ArithSub
	case token.STAR:
		return ir.ArithMul
	case token.SLASH:
		return ir.ArithDiv
	default:
		panic(fmt.Sprintf("not an arithmetic operator: %s", t))
	}
}
