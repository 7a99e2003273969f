package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token
type Span struct {
	Filename string // source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number, counted in runes
	Start    int    // byte offset of the first byte
	End      int    // exclusive byte offset
}

// String returns "file:line:col" (or "line:col" without a filename).
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string // lexeme text; decoded value for strings
	Span    Span   // source location information
}

// Is reports whether the token has any of the given types.
func (t Token) Is(types ...TokenType) bool {
	for _, tt := range types {
		if t.Type == tt {
			return true
		}
	}
	return false
}

// Token type constants
const (
	// Special tokens
	EOF   TokenType = "EOF"
	ERROR TokenType = "ERROR"

	// Identifiers and literals
	IDENT  TokenType = "IDENT"  // add, foobar, x, y, ...
	NUMBER TokenType = "NUMBER" // 42, 3.14, 1e9
	STRING TokenType = "STRING" // "hello", 'hello'
	TRUE   TokenType = "TRUE"
	FALSE  TokenType = "FALSE"
	NULL   TokenType = "NULL"

	// Keywords
	FUNC     TokenType = "FUNC"
	LET      TokenType = "LET"
	IF       TokenType = "IF"
	ELSE     TokenType = "ELSE"
	FOR      TokenType = "FOR"
	IN       TokenType = "IN"
	WHILE    TokenType = "WHILE"
	MATCH    TokenType = "MATCH"
	CASE     TokenType = "CASE"
	DEFAULT  TokenType = "DEFAULT"
	BREAK    TokenType = "BREAK"
	CONTINUE TokenType = "CONTINUE"
	ASYNC    TokenType = "ASYNC"
	AWAIT    TokenType = "AWAIT"
	RETURN   TokenType = "RETURN"
	STRUCT   TokenType = "STRUCT"
	ENUM     TokenType = "ENUM"
	PUBLIC   TokenType = "PUBLIC"
	IMPORT   TokenType = "IMPORT"
	USE      TokenType = "USE"
	ALIAS    TokenType = "ALIAS"
	IS       TokenType = "IS"
	TYPENAME TokenType = "TYPENAME"

	// Delimiters
	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACE   TokenType = "{"
	RBRACE   TokenType = "}"
	LBRACKET TokenType = "["
	RBRACKET TokenType = "]"

	// Operators
	PLUS    TokenType = "+"
	MINUS   TokenType = "-"
	STAR    TokenType = "*"
	SLASH   TokenType = "/"
	PERCENT TokenType = "%"
	POWER   TokenType = "^"
	ASSIGN  TokenType = "="
	BANG    TokenType = "!"

	EQ     TokenType = "=="
	NOT_EQ TokenType = "!="
	LT     TokenType = "<"
	GT     TokenType = ">"
	LE     TokenType = "<="
	GE     TokenType = ">="

	AND TokenType = "&&"
	OR  TokenType = "||"

	// Compound assignment
	PLUS_ASSIGN    TokenType = "+="
	MINUS_ASSIGN   TokenType = "-="
	STAR_ASSIGN    TokenType = "*="
	SLASH_ASSIGN   TokenType = "/="
	PERCENT_ASSIGN TokenType = "%="
	POWER_ASSIGN   TokenType = "^="

	// Punctuation
	DOT          TokenType = "."
	COMMA        TokenType = ","
	COLON        TokenType = ":"
	DOUBLE_COLON TokenType = "::"
	ARROW        TokenType = "->"
	SEMICOLON    TokenType = ";"
	AMPERSAND    TokenType = "&"
	DOLLAR       TokenType = "$"
	AT           TokenType = "@"
	HASH         TokenType = "#"
)

var keywords = map[string]TokenType{
	"func":     FUNC,
	"let":      LET,
	"if":       IF,
	"else":     ELSE,
	"for":      FOR,
	"in":       IN,
	"while":    WHILE,
	"match":    MATCH,
	"case":     CASE,
	"default":  DEFAULT,
	"break":    BREAK,
	"continue": CONTINUE,
	"async":    ASYNC,
	"await":    AWAIT,
	"return":   RETURN,
	"struct":   STRUCT,
	"enum":     ENUM,
	"public":   PUBLIC,
	"import":   IMPORT,
	"use":      USE,
	"alias":    ALIAS,
	"is":       IS,
	"typename": TYPENAME,
	"true":     TRUE,
	"false":    FALSE,
	"null":     NULL,
}

// twoCharOperators is consulted before singleCharOperators (maximal munch).
var twoCharOperators = map[string]TokenType{
	"==": EQ,
	"!=": NOT_EQ,
	"+=": PLUS_ASSIGN,
	"-=": MINUS_ASSIGN,
	"*=": STAR_ASSIGN,
	"%=": PERCENT_ASSIGN,
	"^=": POWER_ASSIGN,
	"/=": SLASH_ASSIGN,
	"::": DOUBLE_COLON,
	"<=": LE,
	">=": GE,
	"->": ARROW,
	"&&": AND,
	"||": OR,
}

var singleCharOperators = map[rune]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
	'%': PERCENT,
	'=': ASSIGN,
	'^': POWER,
	'!': BANG,
	'<': LT,
	'>': GT,
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	'[': LBRACKET,
	']': RBRACKET,
	';': SEMICOLON,
	':': COLON,
	',': COMMA,
	'.': DOT,
	'&': AMPERSAND,
	'$': DOLLAR,
	'@': AT,
	'#': HASH,
	'?': NULL,
}

// LookupIdent checks if the identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword reports whether tt is one of the reserved words.
func IsKeyword(tt TokenType) bool {
	for _, kw := range keywords {
		if kw == tt {
			return tt != TRUE && tt != FALSE && tt != NULL
		}
	}
	return false
}

// IsAssignOp reports whether tt may join an assignment target to its value.
func IsAssignOp(tt TokenType) bool {
	switch tt {
	case ASSIGN, PLUS_ASSIGN, MINUS_ASSIGN, STAR_ASSIGN, SLASH_ASSIGN, PERCENT_ASSIGN, POWER_ASSIGN:
		return true
	default:
		return false
	}
}

// Describe renders a token for use in diagnostics.
func Describe(tok Token) string {
	switch tok.Type {
	case EOF:
		return "end of file"
	case STRING:
		return fmt.Sprintf("string %q", tok.Literal)
	default:
		return "`" + tok.Literal + "`"
	}
}
