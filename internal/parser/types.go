package parser

import (
	"github.com/mix-lang/mix/internal/ast"
	"github.com/mix-lang/mix/internal/diag"
	"github.com/mix-lang/mix/internal/lexer"
)

// parseType parses a type expression:
//
//	Name
//	Scope::Type
//	Name<T>
//	Name<K, T>
//
// It returns nil after reporting when no type name is present.
func (p *Parser) parseType() ast.TypeExpr {
	name, ok := p.expectIdent("type name")
	if !ok {
		return nil
	}

	switch {
	case p.accept(lexer.DOUBLE_COLON):
		inner := p.parseType()
		if inner == nil {
			return ast.NewNamedType(name, name.Span())
		}
		return ast.NewScopedType(name, inner, p.spanFrom(name.Span()))

	case p.accept(lexer.LT):
		args, _ := parseDelimited(p, delimitedConfig{
			Closing:   lexer.GT,
			Landmarks: []lexer.TokenType{lexer.LBRACE, lexer.RPAREN, lexer.SEMICOLON, lexer.ASSIGN},
		}, func() (ast.TypeExpr, bool) {
			t := p.parseType()
			return t, t != nil
		})

		span := p.spanFrom(name.Span())
		if len(args) == 0 || len(args) > 2 {
			p.reportError(diag.CodeParseUnexpectedToken, "generic type `"+name.Name+"` takes one or two type arguments", span)
		}
		return ast.NewGenericType(name, args, span)

	default:
		return ast.NewNamedType(name, name.Span())
	}
}
