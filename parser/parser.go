// Package parser turns a token stream into an AST via hand-written
// recursive descent. INDENT/DEDENT/NEWLINE are already synthesized by
// the lexer, so the grammar here stays context-free.
package parser

import (
	"fmt"

	"corepy/ast"
	"corepy/token"
)

// Parser consumes a flat token slice produced by the lexer. It is not
// reused across sources; construct a fresh one per compilation.
type Parser struct {
	tokens   []token.Token
	position int
}

// New constructs a Parser over the given token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses the entire token stream into a Program. Parsing stops
// at the first syntax error, matching the pipeline's single-pass,
// first-error-wins contract.
func (p *Parser) Parse() (*ast.Program, error) {
	var tops []ast.TopLevel
	for !p.check(token.EOF) {
		if p.match(token.NEWLINE) {
			continue
		}
		top, err := p.topLevel()
		if err != nil {
			return nil, err
		}
		tops = append(tops, top)
	}
	return &ast.Program{TopLevels: tops}, nil
}

func (p *Parser) peek() token.Token     { return p.tokens[p.position] }
func (p *Parser) previous() token.Token { return p.tokens[p.position-1] }

func (p *Parser) isFinished() bool { return p.peek().Type == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.isFinished() {
		p.position++
	}
	return p.previous()
}

func (p *Parser) check(t token.Type) bool {
	if p.isFinished() && t != token.EOF {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the expected token type, or returns a syntax
// error describing what was found instead.
func (p *Parser) consume(t token.Type, expected string) (token.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	tok := p.peek()
	if tok.Type == token.EOF {
		return token.Token{}, Error{Loc: tok.Start, Message: fmt.Sprintf("unexpected end of file, expected %s", expected)}
	}
	return token.Token{}, Error{Loc: tok.Start, Message: fmt.Sprintf("unexpected token %q, expected %s", tok.Lexeme, expected)}
}

func (p *Parser) errorAt(tok token.Token, message string) error {
	if tok.Type == token.EOF {
		return Error{Loc: tok.Start, Message: "unexpected end of file: " + message}
	}
	return Error{Loc: tok.Start, Message: message}
}

// topLevel parses one of `from`, `def`, or `class`.
func (p *Parser) topLevel() (ast.TopLevel, error) {
	switch {
	case p.match(token.FROM):
		return p.importDecl()
	case p.match(token.DEF):
		return p.functionDef()
	case p.match(token.CLASS):
		return p.classDef()
	default:
		return nil, p.errorAt(p.peek(), "expected 'from', 'def', or 'class'")
	}
}

func (p *Parser) importDecl() (ast.TopLevel, error) {
	start := p.previous().Start
	modTok, err := p.consume(token.IDENTIFIER, "a module name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.IMPORT, "'import'"); err != nil {
		return nil, err
	}
	nameTok, err := p.consume(token.IDENTIFIER, "an imported name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.NEWLINE, "a newline after import"); err != nil {
		return nil, err
	}
	return &ast.Import{Module: modTok.Lexeme, Name: nameTok.Lexeme, Location: start}, nil
}

func (p *Parser) functionDef() (ast.TopLevel, error) {
	start := p.previous().Start
	nameTok, err := p.consume(token.IDENTIFIER, "a function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LPAREN, "'('"); err != nil {
		return nil, err
	}
	params, err := p.paramList()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "')'"); err != nil {
		return nil, err
	}

	var result ast.Expr
	if p.match(token.ARROW) {
		result, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.COLON, "':'"); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDef{
		Name:       nameTok.Lexeme,
		Parameters: params,
		ResultExpr: result,
		Body:       body,
		Location:   start,
	}, nil
}

func (p *Parser) paramList() ([]ast.Param, error) {
	var params []ast.Param
	if p.check(token.RPAREN) {
		return params, nil
	}
	for {
		nameTok, err := p.consume(token.IDENTIFIER, "a parameter name")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.COLON, "':' after parameter name"); err != nil {
			return nil, err
		}
		typeExpr, err := p.expression()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: nameTok.Lexeme, TypeExpr: typeExpr})
		if !p.match(token.COMMA) {
			break
		}
	}
	return params, nil
}

func (p *Parser) classDef() (ast.TopLevel, error) {
	start := p.previous().Start
	nameTok, err := p.consume(token.IDENTIFIER, "a class name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COLON, "':'"); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}
	return &ast.ClassDef{Name: nameTok.Lexeme, Body: body, Location: start}, nil
}

// suite parses the body of a def/if/else/while/for: either a single
// simple statement on the same line, or an indented block.
func (p *Parser) suite() ([]ast.Stmt, error) {
	if p.match(token.NEWLINE) {
		if _, err := p.consume(token.INDENT, "an indented block"); err != nil {
			return nil, err
		}
		var stmts []ast.Stmt
		for !p.check(token.DEDENT) && !p.check(token.EOF) {
			stmt, err := p.statement()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, stmt)
		}
		if _, err := p.consume(token.DEDENT, "a dedent closing the block"); err != nil {
			return nil, err
		}
		return stmts, nil
	}
	stmt, err := p.simpleStatement()
	if err != nil {
		return nil, err
	}
	return []ast.Stmt{stmt}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.check(token.IF):
		return p.ifStmt()
	case p.check(token.WHILE):
		return p.whileStmt()
	case p.check(token.FOR):
		return p.forStmt()
	default:
		return p.simpleStatement()
	}
}

func (p *Parser) ifStmt() (ast.Stmt, error) {
	start := p.peek().Start
	p.advance() // 'if'
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COLON, "':'"); err != nil {
		return nil, err
	}
	thenBody, err := p.suite()
	if err != nil {
		return nil, err
	}
	var elseBody []ast.Stmt
	if p.match(token.ELSE) {
		if _, err := p.consume(token.COLON, "':'"); err != nil {
			return nil, err
		}
		elseBody, err = p.suite()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Cond: cond, Then: thenBody, Else: elseBody, Location: start}, nil
}

func (p *Parser) whileStmt() (ast.Stmt, error) {
	start := p.peek().Start
	p.advance() // 'while'
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COLON, "':'"); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body, Location: start}, nil
}

func (p *Parser) forStmt() (ast.Stmt, error) {
	start := p.peek().Start
	p.advance() // 'for'
	nameTok, err := p.consume(token.IDENTIFIER, "a loop variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.IN, "'in'"); err != nil {
		return nil, err
	}
	iter, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COLON, "':'"); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}
	return &ast.For{TargetName: nameTok.Lexeme, Iter: iter, Body: body, Location: start}, nil
}

// simpleStatement parses a statement that occupies exactly one
// logical line, consuming its terminating NEWLINE.
func (p *Parser) simpleStatement() (ast.Stmt, error) {
	var stmt ast.Stmt
	var err error

	switch {
	case p.match(token.RETURN):
		stmt, err = p.returnStmt()
	case p.match(token.BREAK):
		stmt = &ast.Break{Location: p.previous().Start}
	case p.match(token.CONTINUE):
		stmt = &ast.Continue{Location: p.previous().Start}
	case p.match(token.PASS):
		stmt = &ast.Pass{Location: p.previous().Start}
	default:
		stmt, err = p.exprOrAssignment()
	}
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.NEWLINE, "a newline after the statement"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) returnStmt() (ast.Stmt, error) {
	start := p.previous().Start
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.Return{Value: value, Location: start}, nil
}

func (p *Parser) exprOrAssignment() (ast.Stmt, error) {
	start := p.peek().Start
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.match(token.ASSIGN) {
		ident, ok := expr.(*ast.Identifier)
		if !ok {
			return nil, p.errorAt(p.previous(), "assignment target must be a name")
		}
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{TargetName: ident.Name, Value: value, Location: start}, nil
	}
	return &ast.ExprStmt{Value: expr, Location: start}, nil
}

// expression is the entry point for the expression grammar, starting
// at the lowest-precedence rule (`or`).
func (p *Parser) expression() (ast.Expr, error) {
	return p.orExpr()
}

func (p *Parser) orExpr() (ast.Expr, error) {
	left, err := p.andExpr()
	if err != nil {
		return nil, err
	}
	for p.match(token.OR) {
		op := p.previous()
		right, err := p.andExpr()
		if err != nil {
			return nil, err
		}
		left = &ast.BoolOp{Left: left, Op: op.Type, Right: right, Location: left.Loc()}
	}
	return left, nil
}

func (p *Parser) andExpr() (ast.Expr, error) {
	left, err := p.comparisonExpr()
	if err != nil {
		return nil, err
	}
	for p.match(token.AND) {
		op := p.previous()
		right, err := p.comparisonExpr()
		if err != nil {
			return nil, err
		}
		left = &ast.BoolOp{Left: left, Op: op.Type, Right: right, Location: left.Loc()}
	}
	return left, nil
}

// comparisonExpr parses a single, non-chaining comparison: spec.md
// requires `a < b < c` to be rejected rather than chained.
func (p *Parser) comparisonExpr() (ast.Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	if p.match(token.LT, token.GT, token.LE, token.GE, token.EQ, token.NE) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{Left: left, Op: op.Type, Right: right, Location: left.Loc()}, nil
	}
	return left, nil
}

func (p *Parser) term() (ast.Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.PLUS, token.MINUS) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Op: op.Type, Right: right, Location: left.Loc()}
	}
	return left, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	left, err := p.callOrIndex()
	if err != nil {
		return nil, err
	}
	for p.match(token.STAR, token.SLASH) {
		op := p.previous()
		right, err := p.callOrIndex()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Op: op.Type, Right: right, Location: left.Loc()}
	}
	return left, nil
}

func (p *Parser) callOrIndex() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(token.LPAREN):
			ident, ok := expr.(*ast.Identifier)
			if !ok {
				return nil, p.errorAt(p.previous(), "only a name can be called")
			}
			args, err := p.argList()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(token.RPAREN, "')'"); err != nil {
				return nil, err
			}
			expr = &ast.Call{Callee: ident, Args: args, Location: ident.Location}
		case p.match(token.LBRACKET):
			idx, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(token.RBRACKET, "']'"); err != nil {
				return nil, err
			}
			expr = &ast.Index{Base: expr, IndexExp: idx, Location: expr.Loc()}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) argList() ([]ast.Expr, error) {
	var args []ast.Expr
	if p.check(token.RPAREN) {
		return args, nil
	}
	for {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.match(token.COMMA) {
			break
		}
	}
	return args, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case token.INTEGER:
		p.advance()
		return &ast.IntLiteral{Value: tok.IntValue, Location: tok.Start}, nil
	case token.FLOAT:
		p.advance()
		return &ast.FloatLiteral{Value: tok.FloatValue, Location: tok.Start}, nil
	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Value: tok.StrValue, Location: tok.Start}, nil
	case token.IDENTIFIER:
		p.advance()
		return &ast.Identifier{Name: tok.Lexeme, Location: tok.Start}, nil
	case token.LPAREN:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	case token.LBRACKET:
		return p.listLiteral()
	}
	if tok.Type == token.EOF {
		return nil, Error{Loc: tok.Start, Message: "unexpected end of file in expression"}
	}
	return nil, Error{Loc: tok.Start, Message: fmt.Sprintf("unexpected token %q in expression", tok.Lexeme)}
}

func (p *Parser) listLiteral() (ast.Expr, error) {
	start := p.peek().Start
	p.advance() // '['
	var elems []ast.Expr
	if !p.check(token.RBRACKET) {
		for {
			e, err := p.expression()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RBRACKET, "']'"); err != nil {
		return nil, err
	}
	return &ast.ListLiteral{Elements: elems, Location: start}, nil
}
