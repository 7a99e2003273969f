package parser

import (
	"fmt"
	"strings"

	"github.com/mix-lang/mix/internal/diag"
	"github.com/mix-lang/mix/internal/lexer"
)

var tokenNames = map[lexer.TokenType]string{
	lexer.SEMICOLON: "semicolon `;`",
	lexer.COMMA:     "comma `,`",
	lexer.COLON:     "colon `:`",
	lexer.LPAREN:    "open paren `(`",
	lexer.RPAREN:    "close paren `)`",
	lexer.LBRACE:    "open brace `{`",
	lexer.RBRACE:    "close brace `}`",
	lexer.LBRACKET:  "open bracket `[`",
	lexer.RBRACKET:  "close bracket `]`",
	lexer.GT:        "greater `>`",
	lexer.IDENT:     "identifier",
	lexer.NUMBER:    "number",
	lexer.STRING:    "string",
}

func tokenName(tt lexer.TokenType) string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	if lexer.IsKeyword(tt) {
		// Keyword types are spelled as the upper-cased keyword.
		return "`" + strings.ToLower(string(tt)) + "`"
	}
	return "`" + string(tt) + "`"
}

// emit records a recoverable diagnostic without aborting parsing.
func (p *Parser) emit(d diag.Diagnostic) {
	if d.Span.Filename == "" {
		d.Span.Filename = p.filename
	}
	d.Stage = diag.StageParser
	if d.Severity == "" {
		d.Severity = diag.SeverityError
	}
	p.diags = append(p.diags, d)
	p.log.WithField("code", d.Code).Debugf("%s: %s", d.Span, d.Message)
}

// reportError reports a simple error.
func (p *Parser) reportError(code diag.Code, msg string, span lexer.Span) {
	p.emit(diag.Diagnostic{
		Code:    code,
		Message: msg,
		Span:    toDiagSpan(span),
	})
}

// errorExpected reports a missing required token. A lexer ERROR token has
// already been reported by the lexer, so it does not produce a second one.
func (p *Parser) errorExpected(expected lexer.TokenType, found lexer.Token) {
	p.errorExpectedWhat(tokenName(expected), found)
}

func (p *Parser) errorExpectedWhat(what string, found lexer.Token) {
	if found.Type == lexer.ERROR {
		return
	}

	d := diag.Diagnostic{
		Code:    diag.CodeParseMissingToken,
		Message: fmt.Sprintf("expected %s, found %s", what, lexer.Describe(found)),
		Span:    toDiagSpan(found.Span),
	}
	if found.Type == lexer.EOF {
		d = d.WithNote("the file ended early; a closing brace `}` or a semicolon `;` may be missing")
	}
	p.emit(d)
}

// errorUnexpected reports a token that cannot start or continue the current
// construct. context names what was expected instead and becomes the help text.
func (p *Parser) errorUnexpected(found lexer.Token, context string) {
	if found.Type == lexer.ERROR {
		return
	}

	d := diag.Diagnostic{
		Code:    diag.CodeParseUnexpectedToken,
		Message: "unexpected " + lexer.Describe(found),
		Span:    toDiagSpan(found.Span),
	}
	if context != "" {
		d = d.WithHelp("expected " + context)
	}
	p.emit(d)
}

// fatal records d and abandons the parse.
func (p *Parser) fatal(d diag.Diagnostic) {
	p.emit(d)
	panic(bailout{diag: p.diags[len(p.diags)-1]})
}

func toDiagSpan(s lexer.Span) diag.Span {
	return diag.Span{
		Filename: s.Filename,
		Line:     s.Line,
		Column:   s.Column,
		Start:    s.Start,
		End:      s.End,
	}
}
