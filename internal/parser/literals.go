package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mix-lang/mix/internal/ast"
	"github.com/mix-lang/mix/internal/diag"
	"github.com/mix-lang/mix/internal/lexer"
)

// NumberKind is the narrowest representation that accepts a numeric literal.
type NumberKind int

const (
	NumberInvalid NumberKind = iota
	NumberInt32
	NumberInt64
	NumberFloat32
	NumberFloat64
)

func (k NumberKind) String() string {
	switch k {
	case NumberInt32:
		return "i32"
	case NumberInt64:
		return "i64"
	case NumberFloat32:
		return "f32"
	case NumberFloat64:
		return "f64"
	default:
		return "invalid"
	}
}

// ClassifyNumber tries, in order, a 32-bit integer, a 64-bit integer, a
// 32-bit float and a 64-bit float. The text is never evaluated beyond that
// check. Text with a dangling '.', exponent marker or sign (already reported
// by the lexer) is classified on its well-formed prefix, and integer
// representations are only tried for plain digit runs.
func ClassifyNumber(text string) NumberKind {
	trimmed := strings.TrimRight(text, ".eE+-")
	if trimmed == "" {
		return NumberInvalid
	}

	if !strings.ContainsAny(text, ".eE") {
		if _, err := strconv.ParseInt(trimmed, 10, 32); err == nil {
			return NumberInt32
		}
		if _, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return NumberInt64
		}
	}
	if _, err := strconv.ParseFloat(trimmed, 32); err == nil {
		return NumberFloat32
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return NumberFloat64
	}
	return NumberInvalid
}

// parseLiteral parses string, number (or numeric range), bool and null
// literals.
func (p *Parser) parseLiteral() ast.Expr {
	tok := p.next()

	switch tok.Type {
	case lexer.STRING:
		return ast.NewStringLit(tok.Literal, tok.Span)
	case lexer.TRUE:
		return ast.NewBoolLit(true, tok.Span)
	case lexer.FALSE:
		return ast.NewBoolLit(false, tok.Span)
	case lexer.NULL:
		return ast.NewNullLit(tok.Span)
	case lexer.NUMBER:
		lo := p.numberLit(tok)
		if !p.accept(lexer.ARROW) {
			return lo
		}
		if !p.at(lexer.NUMBER) {
			p.errorExpectedWhat("a number after `->`", p.peek())
			return lo
		}
		hi := p.numberLit(p.next())
		return ast.NewRangeExpr(lo, hi, ast.MergeSpan(tok.Span, hi.Span()))
	default:
		// Callers only dispatch literal tokens here.
		p.errorUnexpected(tok, "a literal")
		return ast.NewBadExpr(tok.Span)
	}
}

// numberLit builds the literal node for a NUMBER token. A literal that no
// supported representation accepts stops the parse.
func (p *Parser) numberLit(tok lexer.Token) ast.Expr {
	switch kind := ClassifyNumber(tok.Literal); kind {
	case NumberInt32, NumberInt64:
		return ast.NewIntLit(tok.Literal, kind == NumberInt64, tok.Span)
	case NumberFloat32, NumberFloat64:
		return ast.NewFloatLit(tok.Literal, kind == NumberFloat64, tok.Span)
	default:
		p.fatal(diag.Diagnostic{
			Code:    diag.CodeParseNumberUnrepresentable,
			Message: fmt.Sprintf("cannot represent number `%s`", tok.Literal),
			Span:    toDiagSpan(tok.Span),
			Help:    "the value is out of range for every integer and float type",
		})
		return nil
	}
}

// parseListLit parses "[e, e, ...]".
func (p *Parser) parseListLit() ast.Expr {
	start := p.next().Span // [

	elems, _ := parseDelimited(p, delimitedConfig{
		Closing:   lexer.RBRACKET,
		Landmarks: []lexer.TokenType{lexer.SEMICOLON, lexer.RBRACE},
	}, func() (ast.Expr, bool) {
		return p.parseExpr(), true
	})

	return ast.NewListLit(elems, p.spanFrom(start))
}

// parseDictLit parses "{k: v, ...}". Keys are arbitrary expressions.
func (p *Parser) parseDictLit() ast.Expr {
	start := p.next().Span // {

	entries, _ := parseDelimited(p, delimitedConfig{
		Closing:   lexer.RBRACE,
		Landmarks: []lexer.TokenType{lexer.SEMICOLON},
	}, func() (*ast.DictEntry, bool) {
		key := p.parseExpr()
		if !p.expect(lexer.COLON) {
			return nil, false
		}
		value := p.parseExpr()
		return ast.NewDictEntry(key, value, ast.MergeSpan(key.Span(), value.Span())), true
	})

	return ast.NewDictLit(entries, p.spanFrom(start))
}

func startsMatchKey(tt lexer.TokenType) bool {
	switch tt {
	case lexer.NUMBER, lexer.STRING, lexer.TRUE, lexer.FALSE, lexer.NULL, lexer.IDENT:
		return true
	default:
		return false
	}
}

// parseMatchKey parses a match arm key: a literal or an identifier path
// such as Color::Red.
func (p *Parser) parseMatchKey() ast.Expr {
	if p.at(lexer.IDENT) {
		return p.parseAccessChain()
	}
	return p.parseLiteral()
}
