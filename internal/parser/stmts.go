package parser

import (
	"github.com/mix-lang/mix/internal/ast"
	"github.com/mix-lang/mix/internal/diag"
	"github.com/mix-lang/mix/internal/lexer"
)

// parseBlock parses "{ statements }". A missing '{' is reported and the
// statements are parsed as if it were present; a missing '}' resynchronizes
// to the next '}'.
func (p *Parser) parseBlock() *ast.Block {
	start := p.peek().Span
	p.expect(lexer.LBRACE)

	var stmts []ast.Stmt
	for !p.at(lexer.RBRACE, lexer.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	if !p.accept(lexer.RBRACE) {
		p.errorExpected(lexer.RBRACE, p.peek())
		if found, ok := p.synchronize(lexer.RBRACE); ok && found == lexer.RBRACE {
			p.next()
		}
	}

	return ast.NewBlock(stmts, p.spanFrom(start))
}

func (p *Parser) parseStatement() ast.Stmt {
	switch tok := p.peek(); tok.Type {
	case lexer.LET:
		return p.parseLetStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.MATCH:
		return p.parseMatchStmt()
	case lexer.BREAK:
		p.next()
		p.expectSemicolon()
		return ast.NewBreakStmt(p.spanFrom(tok.Span))
	case lexer.CONTINUE:
		p.next()
		p.expectSemicolon()
		return ast.NewContinueStmt(p.spanFrom(tok.Span))
	case lexer.IDENT:
		return p.parseSimpleStmt()
	default:
		p.errorUnexpected(tok, "a statement")
		p.next()
		if found, ok := p.synchronize(lexer.SEMICOLON, lexer.RBRACE); ok && found == lexer.SEMICOLON {
			p.next()
		}
		return nil
	}
}

// parseLetStmt parses "let name[: Type][= value];".
func (p *Parser) parseLetStmt() ast.Stmt {
	start := p.next().Span // let

	name, ok := p.expectIdent("variable name")
	if !ok {
		if found, ok := p.synchronize(lexer.SEMICOLON, lexer.RBRACE); ok && found == lexer.SEMICOLON {
			p.next()
		}
		return nil
	}

	var typ ast.TypeExpr
	if p.accept(lexer.COLON) {
		typ = p.parseType()
	}

	var value ast.Expr
	if p.accept(lexer.ASSIGN) {
		if p.at(lexer.SEMICOLON) {
			p.errorExpectedWhat("a value expression", p.peek())
		} else {
			value = p.parseExpr()
		}
	}
	p.expectSemicolon()

	return ast.NewLetStmt(name, typ, value, p.spanFrom(start))
}

// parseReturnStmt parses "return [value];".
func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.next().Span // return

	var value ast.Expr
	if startsExpr(p.peek().Type) {
		value = p.parseExpr()
	}
	p.expectSemicolon()

	return ast.NewReturnStmt(value, p.spanFrom(start))
}

// parseIfStmt parses "if cond { ... } [else { ... }]".
func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.next().Span // if

	cond := p.parseExpr()
	then := p.parseBlock()

	var els *ast.Block
	if p.accept(lexer.ELSE) {
		els = p.parseBlock()
	}

	return ast.NewIfStmt(cond, then, els, p.spanFrom(start))
}

// parseForStmt parses "for name[: Type] in iterable { ... }".
func (p *Parser) parseForStmt() ast.Stmt {
	start := p.next().Span // for

	name, ok := p.expectIdent("loop variable")
	if !ok {
		name = ast.NewIdent("", p.peek().Span)
	}

	var typ ast.TypeExpr
	if ok && p.accept(lexer.COLON) {
		typ = p.parseType()
	}

	p.expect(lexer.IN)

	var iterable ast.Expr
	if startsExpr(p.peek().Type) {
		iterable = p.parseExpr()
	} else {
		p.errorExpectedWhat("an iterable expression", p.peek())
		iterable = ast.NewBadExpr(p.peek().Span)
	}

	body := p.parseBlock()

	return ast.NewForStmt(name, typ, iterable, body, p.spanFrom(start))
}

// parseWhileStmt parses "while cond { ... }".
func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.next().Span // while

	cond := p.parseExpr()
	body := p.parseBlock()

	return ast.NewWhileStmt(cond, body, p.spanFrom(start))
}

// parseMatchStmt parses "match subject { key { ... } ... [default { ... }] }".
// Keys are literals or identifier paths; at most one default arm is allowed.
func (p *Parser) parseMatchStmt() ast.Stmt {
	start := p.next().Span // match

	subject := p.parseExpr()
	p.expect(lexer.LBRACE)

	var (
		cases []*ast.MatchCase
		def   *ast.Block
	)

	inJunk := false
	for !p.at(lexer.RBRACE, lexer.EOF) {
		tok := p.peek()
		switch {
		case tok.Type == lexer.DEFAULT:
			inJunk = false
			p.next()
			body := p.parseBlock()
			if def != nil {
				p.emit(diag.Diagnostic{
					Code:    diag.CodeParseUnexpectedToken,
					Message: "match statement has more than one `default` arm",
					Span:    toDiagSpan(tok.Span),
				}.WithNote("the first `default` arm is kept"))
				continue
			}
			def = body

		case startsMatchKey(tok.Type):
			inJunk = false
			key := p.parseMatchKey()
			body := p.parseBlock()
			cases = append(cases, ast.NewMatchCase(key, body, p.spanFrom(tok.Span)))

		default:
			if !inJunk {
				p.errorUnexpected(tok, "a literal or `default`")
				inJunk = true
			}
			p.next()
		}
	}
	p.expect(lexer.RBRACE)

	return ast.NewMatchStmt(subject, cases, def, p.spanFrom(start))
}

// parseSimpleStmt parses an access chain used as a statement, optionally
// followed by an assignment operator and a value.
func (p *Parser) parseSimpleStmt() ast.Stmt {
	start := p.peek().Span
	target := p.parseAccessChain()

	tok := p.peek()
	switch {
	case lexer.IsAssignOp(tok.Type):
		p.next()
		value := p.parseExpr()
		p.expectSemicolon()
		return ast.NewAssignStmt(target, tok.Type, value, p.spanFrom(start))

	case tok.Is(lexer.EQ, lexer.NOT_EQ):
		// "x == y;" is reported but kept as a comparison statement.
		p.emit(diag.Diagnostic{
			Code:    diag.CodeParseUnexpectedToken,
			Message: "`" + tok.Literal + "` is a comparison, not an assignment",
			Span:    toDiagSpan(tok.Span),
		}.WithHelp("use `=` to assign a value"))
		p.next()
		value := p.parseExpr()
		p.expectSemicolon()
		cmp := ast.NewBinaryExpr(tok.Type, target, value, ast.MergeSpan(target.Span(), value.Span()))
		return ast.NewExprStmt(cmp, p.spanFrom(start))

	default:
		p.expectSemicolon()
		return ast.NewExprStmt(target, p.spanFrom(start))
	}
}
