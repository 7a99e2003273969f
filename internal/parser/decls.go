package parser

import (
	"github.com/mix-lang/mix/internal/ast"
	"github.com/mix-lang/mix/internal/diag"
	"github.com/mix-lang/mix/internal/lexer"
)

// parseDecls fills file with top-level declarations until EOF. A run of
// tokens that cannot start a declaration is reported once and skipped one
// token at a time.
func (p *Parser) parseDecls(file *ast.File) {
	inJunk := false
	for {
		tok := p.peek()
		switch tok.Type {
		case lexer.EOF:
			return
		case lexer.FUNC, lexer.STRUCT, lexer.ENUM, lexer.PUBLIC, lexer.IMPORT, lexer.ALIAS:
			decl := p.parseDecl()
			if decl != nil {
				file.Decls = append(file.Decls, decl)
			}
			// A dangling "public" was already reported.
			inJunk = decl == nil
		default:
			if !inJunk {
				p.errorUnexpected(tok, "`func`, `struct`, `enum`, `import` or `alias`")
				inJunk = true
			}
			p.next()
		}
	}
}

func (p *Parser) parseDecl() ast.Decl {
	start := p.peek().Span
	public := p.accept(lexer.PUBLIC)

	switch tok := p.peek(); tok.Type {
	case lexer.FUNC:
		return p.parseFuncDecl(public, start)
	case lexer.STRUCT:
		return p.parseStructDecl(public, start)
	case lexer.ENUM:
		return p.parseEnumDecl(public, start)
	case lexer.ALIAS:
		return p.parseAliasDecl(public, start)
	case lexer.IMPORT:
		if public {
			p.reportError(diag.CodeParseUnexpectedToken, "imports cannot be public", start)
		}
		return p.parseImportDecl(start)
	default:
		p.errorUnexpected(tok, "`func`, `struct`, `enum` or `alias` after `public`")
		return nil
	}
}

// parseFuncDecl parses "func name(params) [-> Type] { body }". The caller has
// consumed the optional "public"; start is the span of the first token.
func (p *Parser) parseFuncDecl(public bool, start lexer.Span) *ast.FuncDecl {
	p.next() // func

	name, ok := p.expectIdent("function name")
	if !ok {
		name = ast.NewIdent("", p.peek().Span)
	}

	params := p.parseParams()

	var ret ast.TypeExpr
	if p.accept(lexer.ARROW) {
		ret = p.parseType()
	}
	if ret == nil {
		next := p.peek().Span
		ret = ast.NewVoidType(lexer.Span{Filename: next.Filename, Line: next.Line, Column: next.Column, Start: next.Start, End: next.Start})
	}

	var body *ast.Block
	if p.at(lexer.LBRACE) {
		body = p.parseBlock()
	} else {
		p.errorExpected(lexer.LBRACE, p.peek())
		if found, ok := p.synchronize(lexer.LBRACE, lexer.FUNC, lexer.PUBLIC); ok && found == lexer.LBRACE {
			body = p.parseBlock()
		} else {
			body = ast.NewBlock(nil, p.peek().Span)
		}
	}

	return ast.NewFuncDecl(public, name, params, ret, body, p.spanFrom(start))
}

// parseParams parses "(name[: Type], ...)". Recovery inside the list resumes
// at ',', ')' or '{'; a list that is never closed resumes at ')', '->', '{',
// 'func' or 'public'.
func (p *Parser) parseParams() []*ast.Param {
	if !p.expect(lexer.LPAREN) {
		return nil
	}

	params, closed := parseDelimited(p, delimitedConfig{
		Closing:   lexer.RPAREN,
		Landmarks: []lexer.TokenType{lexer.LBRACE},
	}, p.parseParam)

	if !closed {
		if found, ok := p.synchronize(lexer.RPAREN, lexer.ARROW, lexer.LBRACE, lexer.FUNC, lexer.PUBLIC); ok && found == lexer.RPAREN {
			p.next()
		}
	}

	return params
}

func (p *Parser) parseParam() (*ast.Param, bool) {
	name, ok := p.expectIdent("parameter name")
	if !ok {
		return nil, false
	}

	var typ ast.TypeExpr
	if p.accept(lexer.COLON) {
		typ = p.parseType()
	}

	return ast.NewParam(name, typ, p.spanFrom(name.Span())), true
}

// parseStructDecl parses "struct Name { members }" where each member is a
// field "name[: Type];" or a method, either optionally public.
func (p *Parser) parseStructDecl(public bool, start lexer.Span) *ast.StructDecl {
	p.next() // struct

	name, ok := p.expectIdent("struct name")
	if !ok {
		name = ast.NewIdent("", p.peek().Span)
	}

	var (
		fields  []*ast.Field
		methods []*ast.FuncDecl
	)

	if !p.expect(lexer.LBRACE) {
		return ast.NewStructDecl(public, name, nil, nil, p.spanFrom(start))
	}

	inJunk := false
	for !p.at(lexer.RBRACE, lexer.EOF) {
		memberStart := p.peek().Span
		memberPublic := p.accept(lexer.PUBLIC)

		switch tok := p.peek(); tok.Type {
		case lexer.FUNC:
			inJunk = false
			methods = append(methods, p.parseFuncDecl(memberPublic, memberStart))
		case lexer.IDENT:
			inJunk = false
			fields = append(fields, p.parseField(memberPublic, memberStart))
		default:
			if !inJunk {
				p.errorUnexpected(tok, "a field or method declaration")
				inJunk = true
			}
			if !tok.Is(lexer.RBRACE, lexer.EOF) {
				p.next()
			}
		}
	}
	p.expect(lexer.RBRACE)

	return ast.NewStructDecl(public, name, fields, methods, p.spanFrom(start))
}

func (p *Parser) parseField(public bool, start lexer.Span) *ast.Field {
	name, _ := p.expectIdent("field name")

	var typ ast.TypeExpr
	if p.accept(lexer.COLON) {
		typ = p.parseType()
	}
	p.expectSemicolon()

	return ast.NewField(public, name, typ, p.spanFrom(start))
}

// parseEnumDecl parses "enum Name { A, B, C }".
func (p *Parser) parseEnumDecl(public bool, start lexer.Span) *ast.EnumDecl {
	p.next() // enum

	name, ok := p.expectIdent("enum name")
	if !ok {
		name = ast.NewIdent("", p.peek().Span)
	}

	if !p.expect(lexer.LBRACE) {
		return ast.NewEnumDecl(public, name, nil, p.spanFrom(start))
	}

	variants, _ := parseDelimited(p, delimitedConfig{
		Closing:   lexer.RBRACE,
		Landmarks: []lexer.TokenType{lexer.FUNC, lexer.STRUCT, lexer.ENUM, lexer.PUBLIC},
	}, func() (*ast.Ident, bool) {
		return p.expectIdent("variant name")
	})

	return ast.NewEnumDecl(public, name, variants, p.spanFrom(start))
}

// parseImportDecl parses "import a::b;" and "import a::b::{X, Y};".
func (p *Parser) parseImportDecl(start lexer.Span) *ast.ImportDecl {
	p.next() // import

	var (
		path    []*ast.Ident
		modules []*ast.Ident
		grouped bool
	)

	if first, ok := p.expectIdent("package name"); ok {
		path = append(path, first)
		for p.accept(lexer.DOUBLE_COLON) {
			if p.accept(lexer.LBRACE) {
				grouped = true
				modules, _ = parseDelimited(p, delimitedConfig{
					Closing:   lexer.RBRACE,
					Landmarks: []lexer.TokenType{lexer.SEMICOLON},
				}, func() (*ast.Ident, bool) {
					return p.expectIdent("module name")
				})
				break
			}
			seg, ok := p.expectIdent("module name")
			if !ok {
				break
			}
			path = append(path, seg)
		}
	}
	p.expectSemicolon()

	if !grouped && len(path) > 0 {
		modules = path[len(path)-1:]
		path = path[:len(path)-1]
	}

	return ast.NewImportDecl(path, modules, p.spanFrom(start))
}

// parseAliasDecl parses "alias Name = Type;".
func (p *Parser) parseAliasDecl(public bool, start lexer.Span) *ast.AliasDecl {
	p.next() // alias

	name, ok := p.expectIdent("alias name")
	if !ok {
		name = ast.NewIdent("", p.peek().Span)
	}

	var typ ast.TypeExpr
	if p.expect(lexer.ASSIGN) {
		typ = p.parseType()
	}
	p.expectSemicolon()

	return ast.NewAliasDecl(public, name, typ, p.spanFrom(start))
}
