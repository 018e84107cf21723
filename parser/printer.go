package parser

import (
	"encoding/json"
	"fmt"
	"os"

	"corepy/ast"
)

const (
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

// astPrinter implements every AST visitor and builds a JSON-friendly
// representation using maps and slices, mirroring the shape of the
// grammar rather than the Go types behind it.
type astPrinter struct{}

func (p astPrinter) VisitInt(e *ast.IntLiteral) any     { return e.Value }
func (p astPrinter) VisitFloat(e *ast.FloatLiteral) any { return e.Value }
func (p astPrinter) VisitString(e *ast.StringLiteral) any { return e.Value }

func (p astPrinter) VisitIdentifier(e *ast.Identifier) any {
	return map[string]any{"type": "Identifier", "name": e.Name}
}

func (p astPrinter) VisitListLiteral(e *ast.ListLiteral) any {
	elems := make([]any, 0, len(e.Elements))
	for _, el := range e.Elements {
		elems = append(elems, el.Accept(p))
	}
	return map[string]any{"type": "ListLiteral", "elements": elems}
}

func (p astPrinter) VisitComparison(e *ast.Comparison) any {
	return map[string]any{
		"type":     "Comparison",
		"operator": e.Op.String(),
		"left":     e.Left.Accept(p),
		"right":    e.Right.Accept(p),
	}
}

func (p astPrinter) VisitBinaryOp(e *ast.BinaryOp) any {
	return map[string]any{
		"type":     "BinaryOp",
		"operator": e.Op.String(),
		"left":     e.Left.Accept(p),
		"right":    e.Right.Accept(p),
	}
}

func (p astPrinter) VisitBoolOp(e *ast.BoolOp) any {
	return map[string]any{
		"type":     "BoolOp",
		"operator": e.Op.String(),
		"left":     e.Left.Accept(p),
		"right":    e.Right.Accept(p),
	}
}

func (p astPrinter) VisitCall(e *ast.Call) any {
	args := make([]any, 0, len(e.Args))
	for _, a := range e.Args {
		args = append(args, a.Accept(p))
	}
	return map[string]any{
		"type":   "Call",
		"callee": e.Callee.Name,
		"args":   args,
	}
}

func (p astPrinter) VisitIndex(e *ast.Index) any {
	return map[string]any{
		"type":  "Index",
		"base":  e.Base.Accept(p),
		"index": e.IndexExp.Accept(p),
	}
}

func (p astPrinter) VisitReturn(s *ast.Return) any {
	return map[string]any{"type": "Return", "value": s.Value.Accept(p)}
}

func (p astPrinter) VisitIf(s *ast.If) any {
	return map[string]any{
		"type": "If",
		"cond": s.Cond.Accept(p),
		"then": p.stmts(s.Then),
		"else": p.stmts(s.Else),
	}
}

func (p astPrinter) VisitWhile(s *ast.While) any {
	return map[string]any{
		"type": "While",
		"cond": s.Cond.Accept(p),
		"body": p.stmts(s.Body),
	}
}

func (p astPrinter) VisitFor(s *ast.For) any {
	return map[string]any{
		"type":   "For",
		"target": s.TargetName,
		"iter":   s.Iter.Accept(p),
		"body":   p.stmts(s.Body),
	}
}

func (p astPrinter) VisitAssignment(s *ast.Assignment) any {
	return map[string]any{
		"type":   "Assignment",
		"target": s.TargetName,
		"value":  s.Value.Accept(p),
	}
}

func (p astPrinter) VisitExprStmt(s *ast.ExprStmt) any {
	return map[string]any{"type": "ExprStmt", "value": s.Value.Accept(p)}
}

func (p astPrinter) VisitBreak(s *ast.Break) any    { return map[string]any{"type": "Break"} }
func (p astPrinter) VisitContinue(s *ast.Continue) any { return map[string]any{"type": "Continue"} }
func (p astPrinter) VisitPass(s *ast.Pass) any      { return map[string]any{"type": "Pass"} }

func (p astPrinter) stmts(ss []ast.Stmt) []any {
	out := make([]any, 0, len(ss))
	for _, s := range ss {
		out = append(out, s.Accept(p))
	}
	return out
}

func (p astPrinter) VisitImport(i *ast.Import) any {
	return map[string]any{"type": "Import", "module": i.Module, "name": i.Name}
}

func (p astPrinter) VisitFunctionDef(f *ast.FunctionDef) any {
	params := make([]any, 0, len(f.Parameters))
	for _, param := range f.Parameters {
		params = append(params, map[string]any{
			"name": param.Name,
			"type": param.TypeExpr.Accept(p),
		})
	}
	var result any
	if f.ResultExpr != nil {
		result = f.ResultExpr.Accept(p)
	}
	return map[string]any{
		"type":       "FunctionDef",
		"name":       f.Name,
		"parameters": params,
		"result":     result,
		"body":       p.stmts(f.Body),
	}
}

func (p astPrinter) VisitClassDef(c *ast.ClassDef) any {
	return map[string]any{
		"type": "ClassDef",
		"name": c.Name,
		"body": p.stmts(c.Body),
	}
}

// PrintASTJSON renders a Program as a prettified JSON string.
func PrintASTJSON(program *ast.Program) (string, error) {
	printer := astPrinter{}
	out := make([]any, 0, len(program.TopLevels))
	for _, top := range program.TopLevels {
		out = append(out, top.Accept(printer))
	}
	bytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}

	jsonStr := string(bytes)
	fmt.Println(colorYellow + "----- AST JSON -----")
	fmt.Println(colorYellow + jsonStr)
	fmt.Println(colorYellow + "-----" + colorReset)
	fmt.Println("")
	return jsonStr, nil
}

// WriteASTJSONToFile writes the prettified AST JSON to the given file path.
func WriteASTJSONToFile(program *ast.Program, path string) error {
	s, err := PrintASTJSON(program)
	if err != nil {
		return err
	}
	fDescriptor, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating AST file: %s", err.Error())
	}
	defer fDescriptor.Close()

	if _, err := fDescriptor.Write([]byte(s)); err != nil {
		return fmt.Errorf("error writing AST to file: %s", err.Error())
	}
	return nil
}
