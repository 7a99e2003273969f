package parser

import (
	"github.com/mix-lang/mix/internal/ast"
	"github.com/mix-lang/mix/internal/lexer"
)

// Binary operator levels, lowest precedence first. Each level loops over its
// own operators and takes operands from the level after it, so every binary
// operator is left-associative.
var binaryLevels = [][]lexer.TokenType{
	{lexer.OR},
	{lexer.AND},
	{lexer.EQ, lexer.NOT_EQ},
	{lexer.LT, lexer.GT, lexer.LE, lexer.GE},
	{lexer.PLUS, lexer.MINUS},
	{lexer.STAR, lexer.SLASH, lexer.PERCENT},
}

// parseExpr parses an expression starting at the lowest precedence level.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(level int) ast.Expr {
	if level == len(binaryLevels) {
		return p.parseUnary()
	}

	left := p.parseBinary(level + 1)
	for p.at(binaryLevels[level]...) {
		op := p.next()
		right := p.parseBinary(level + 1)
		left = ast.NewBinaryExpr(op.Type, left, right, ast.MergeSpan(left.Span(), right.Span()))
	}
	return left
}

// parseUnary parses the prefix operators "+", "-" and "!".
func (p *Parser) parseUnary() ast.Expr {
	if p.at(lexer.PLUS, lexer.MINUS, lexer.BANG) {
		op := p.next()
		operand := p.parseUnary()
		return ast.NewUnaryExpr(op.Type, operand, ast.MergeSpan(op.Span, operand.Span()))
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.peek()

	switch tok.Type {
	case lexer.LPAREN:
		return p.parseParenOrTuple()
	case lexer.IDENT:
		return p.parseAccessChain()
	case lexer.LBRACKET:
		return p.parseListLit()
	case lexer.LBRACE:
		return p.parseDictLit()
	case lexer.NUMBER, lexer.STRING, lexer.TRUE, lexer.FALSE, lexer.NULL:
		return p.parseLiteral()
	default:
		p.errorUnexpected(tok, "an expression")
		// Structural tokens are left for the enclosing construct.
		if !tok.Is(lexer.SEMICOLON, lexer.COMMA, lexer.RPAREN, lexer.RBRACKET, lexer.RBRACE, lexer.EOF) {
			p.next()
		}
		return ast.NewBadExpr(tok.Span)
	}
}

// parseParenOrTuple parses "(expr)" or a tuple "(a, b, ...)".
func (p *Parser) parseParenOrTuple() ast.Expr {
	start := p.next().Span // (

	first := p.parseExpr()
	if !p.accept(lexer.COMMA) {
		p.expect(lexer.RPAREN)
		return first
	}

	rest, _ := parseDelimited(p, delimitedConfig{
		Closing:   lexer.RPAREN,
		Landmarks: []lexer.TokenType{lexer.SEMICOLON},
	}, func() (ast.Expr, bool) {
		return p.parseExpr(), true
	})

	return ast.NewTupleLit(append([]ast.Expr{first}, rest...), p.spanFrom(start))
}

// parseAccessChain parses an identifier followed by any number of ".field",
// "::segment" and "(args)" suffixes, grouped to the left.
func (p *Parser) parseAccessChain() ast.Expr {
	tok := p.next()
	start := tok.Span
	var expr ast.Expr = ast.NewIdent(tok.Literal, tok.Span)

	for {
		switch {
		case p.accept(lexer.DOT):
			field, ok := p.expectIdent("field name")
			if !ok {
				return expr
			}
			expr = ast.NewFieldExpr(expr, field, p.spanFrom(start))

		case p.accept(lexer.DOUBLE_COLON):
			seg, ok := p.expectIdent("identifier")
			if !ok {
				return expr
			}
			expr = ast.NewPathExpr(expr, seg, p.spanFrom(start))

		case p.accept(lexer.LPAREN):
			args, _ := parseDelimited(p, delimitedConfig{
				Closing:   lexer.RPAREN,
				Landmarks: []lexer.TokenType{lexer.SEMICOLON, lexer.RBRACE},
			}, func() (ast.Expr, bool) {
				return p.parseExpr(), true
			})
			expr = ast.NewCallExpr(expr, args, p.spanFrom(start))

		default:
			return expr
		}
	}
}
