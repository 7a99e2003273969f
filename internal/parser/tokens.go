package parser

import (
	"github.com/mix-lang/mix/internal/ast"
	"github.com/mix-lang/mix/internal/lexer"
)

// peek returns the next token without consuming it. An unrecognized
// character stops the parse as soon as the lexer reaches it.
func (p *Parser) peek() lexer.Token {
	tok := p.lx.Peek()
	if fatal := p.lx.Fatal(); fatal != nil {
		panic(bailout{diag: fatal.ToDiagnostic()})
	}
	return tok
}

// next consumes the next token. At EOF it keeps returning EOF.
func (p *Parser) next() lexer.Token {
	p.peek()
	tok := p.lx.Next()
	if tok.Type != lexer.EOF {
		p.prev = tok
	}
	return tok
}

// at reports whether the next token has one of the given types.
func (p *Parser) at(types ...lexer.TokenType) bool {
	return p.peek().Is(types...)
}

// accept consumes the next token if it has type tt.
func (p *Parser) accept(tt lexer.TokenType) bool {
	if p.at(tt) {
		p.next()
		return true
	}
	return false
}

// expect consumes a token of type tt or records a missing-token diagnostic.
// It never consumes anything on failure.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.accept(tt) {
		return true
	}
	p.errorExpected(tt, p.peek())
	return false
}

// expectIdent consumes an identifier. what names the expected construct in
// the diagnostic ("function name", "field name", ...).
func (p *Parser) expectIdent(what string) (*ast.Ident, bool) {
	tok := p.peek()
	if tok.Type != lexer.IDENT {
		p.errorExpectedWhat(what, tok)
		return nil, false
	}
	p.next()
	return ast.NewIdent(tok.Literal, tok.Span), true
}

// expectSemicolon requires a statement terminator. When the next token sits
// on a later line the terminator is assumed to be merely missing; otherwise
// the rest of the statement is discarded up to the next ';' or '}'.
func (p *Parser) expectSemicolon() {
	if p.accept(lexer.SEMICOLON) {
		return
	}

	tok := p.peek()
	p.errorExpected(lexer.SEMICOLON, tok)
	if tok.Is(lexer.EOF, lexer.RBRACE) || tok.Span.Line > p.prev.Span.Line {
		return
	}
	if found, ok := p.synchronize(lexer.SEMICOLON, lexer.RBRACE); ok && found == lexer.SEMICOLON {
		p.next()
	}
}

// synchronize discards tokens until one of the landmarks is next, without
// consuming it. It returns false when EOF is reached first.
func (p *Parser) synchronize(landmarks ...lexer.TokenType) (lexer.TokenType, bool) {
	skipped := 0
	defer func() {
		if skipped > 0 {
			p.log.WithField("skipped", skipped).Debugf("resynchronized at %s", p.peek().Span)
		}
	}()

	for {
		tok := p.peek()
		if tok.Is(landmarks...) {
			return tok.Type, true
		}
		if tok.Type == lexer.EOF {
			return lexer.EOF, false
		}
		p.next()
		skipped++
	}
}

// spanFrom returns a span running from start to the end of the last
// consumed token.
func (p *Parser) spanFrom(start lexer.Span) lexer.Span {
	return ast.MergeSpan(start, p.prev.Span)
}

// startsExpr reports whether tt can begin an expression.
func startsExpr(tt lexer.TokenType) bool {
	switch tt {
	case lexer.IDENT, lexer.NUMBER, lexer.STRING, lexer.TRUE, lexer.FALSE, lexer.NULL,
		lexer.LPAREN, lexer.LBRACKET, lexer.LBRACE,
		lexer.PLUS, lexer.MINUS, lexer.BANG:
		return true
	default:
		return false
	}
}
