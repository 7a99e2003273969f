package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// eof is the sentinel held in ch once the input is exhausted. A literal NUL in
// the source is an ordinary (unrecognized) character, not the end of input.
const eof rune = -1

const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Lexer represents the lexer state. The parser drives it exclusively through
// Peek and Next; the next token is scanned once and cached until consumed.
type Lexer struct {
	input    string
	filename string
	pos      int  // byte offset of ch
	width    int  // byte width of ch
	ch       rune // current rune (eof at end of input)
	line     int  // line of ch (1-based)
	column   int  // column of ch in runes (1-based)

	peeked    Token
	hasPeeked bool

	errors []LexerError
	fatal  *LexerError
}

// New creates a new lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
	l.decode()
	return l
}

// SetFilename attributes all emitted spans to the provided filename.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

// Filename returns the name attached to emitted spans.
func (l *Lexer) Filename() string {
	return l.filename
}

// Errors returns every lexical problem recorded so far, in scan order.
func (l *Lexer) Errors() []LexerError {
	return l.errors
}

// HasErrors is the sticky flag: true once any lexical issue was recorded.
func (l *Lexer) HasErrors() bool {
	return len(l.errors) > 0
}

// Fatal returns the error that stopped the scan, or nil.
func (l *Lexer) Fatal() *LexerError {
	return l.fatal
}

// Peek returns the next token without consuming it. Repeated calls return the
// same token until Next is called.
func (l *Lexer) Peek() Token {
	if !l.hasPeeked {
		l.peeked = l.scan()
		l.hasPeeked = true
	}
	return l.peeked
}

// Next returns the next token and consumes it. Once EOF is reached every
// further call returns EOF again.
func (l *Lexer) Next() Token {
	tok := l.Peek()
	if tok.Type != EOF {
		l.hasPeeked = false
	}
	return tok
}

// Tokenize scans src completely and returns every token up to and including
// EOF. The error is non-nil only when the scan was stopped by a fatal error.
func Tokenize(filename, src string) ([]Token, []LexerError, error) {
	l := New(src)
	l.SetFilename(filename)

	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == EOF {
			break
		}
	}

	if l.fatal != nil {
		return toks, l.errors, *l.fatal
	}
	return toks, l.errors, nil
}

func (l *Lexer) addError(kind LexerErrorKind, msg string, span Span) {
	err := LexerError{
		Kind:    kind,
		Message: msg,
		Span:    span,
	}
	l.errors = append(l.errors, err)
	if kind.Fatal() && l.fatal == nil {
		l.fatal = &l.errors[len(l.errors)-1]
	}
}

// decode loads the rune at pos into ch.
func (l *Lexer) decode() {
	if l.pos >= len(l.input) {
		l.ch = eof
		l.width = 0
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.ch = r
	l.width = w
}

// read advances past ch. It never moves beyond the end of input.
func (l *Lexer) read() {
	if l.ch == eof {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos += l.width
	l.decode()
}

// peekRune returns the rune after ch without advancing.
func (l *Lexer) peekRune() rune {
	next := l.pos + l.width
	if l.ch == eof || next >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[next:])
	return r
}

func (l *Lexer) spanFrom(line, column, start int) Span {
	return Span{
		Filename: l.filename,
		Line:     line,
		Column:   column,
		Start:    start,
		End:      l.pos,
	}
}

func (l *Lexer) scan() Token {
	if l.fatal != nil {
		// Nothing after an unrecognized character is trustworthy.
		return Token{Type: EOF, Span: l.spanFrom(l.line, l.column, l.pos)}
	}

	l.skipTrivia()

	line, column, start := l.line, l.column, l.pos

	switch {
	case l.ch == eof:
		return Token{Type: EOF, Span: l.spanFrom(line, column, start)}
	case isDigit(l.ch):
		lit := l.readNumber(line, column, start)
		return Token{Type: NUMBER, Literal: lit, Span: l.spanFrom(line, column, start)}
	case l.ch == '"' || l.ch == '\'':
		value := l.readString(line, column, start)
		return Token{Type: STRING, Literal: value, Span: l.spanFrom(line, column, start)}
	case isLetter(l.ch):
		lit := l.readIdentifier()
		return Token{Type: LookupIdent(lit), Literal: lit, Span: l.spanFrom(line, column, start)}
	case l.ch < utf8.RuneSelf && strings.ContainsRune(asciiPunctuation, l.ch):
		return l.readPunctuation(line, column, start)
	default:
		raw := string(l.ch)
		l.read()
		span := l.spanFrom(line, column, start)
		l.addError(ErrUnrecognizedCharacter, fmt.Sprintf("unrecognized character %q", raw), span)
		return Token{Type: ERROR, Literal: raw, Span: span}
	}
}

// skipTrivia skips whitespace and comments. It loops instead of recursing so
// long runs of comments cannot grow the stack.
func (l *Lexer) skipTrivia() {
	for {
		switch {
		case isWhitespace(l.ch):
			l.read()
		case l.ch == '/' && l.peekRune() == '/':
			for l.ch != '\n' && l.ch != eof {
				l.read()
			}
		case l.ch == '/' && l.peekRune() == '*':
			l.skipBlockComment()
		default:
			return
		}
	}
}

// skipBlockComment consumes "/* ... */". Comments do not nest: the first "*/"
// closes the comment.
func (l *Lexer) skipBlockComment() {
	line, column, start := l.line, l.column, l.pos
	l.read() // consume '/'
	l.read() // consume '*'

	for {
		if l.ch == eof {
			l.addError(ErrUnterminatedComment, "unterminated block comment", l.spanFrom(line, column, start))
			return
		}
		if l.ch == '*' && l.peekRune() == '/' {
			l.read()
			l.read()
			return
		}
		l.read()
	}
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || unicode.IsDigit(l.ch) || unicode.IsNumber(l.ch) {
		l.read()
	}
	return l.input[start:l.pos]
}

// readNumber reads digits, an optional fraction and an optional exponent. A
// '.' or exponent marker without digits is reported and scanning continues.
func (l *Lexer) readNumber(line, column, start int) string {
	for isDigit(l.ch) {
		l.read()
	}

	if l.ch == '.' {
		l.read()
		if !isDigit(l.ch) {
			l.addError(ErrMalformedNumber, "expected digit after decimal point", l.spanFrom(line, column, start))
		}
		for isDigit(l.ch) {
			l.read()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		l.read()
		if l.ch == '+' || l.ch == '-' {
			l.read()
		}
		if !isDigit(l.ch) {
			l.addError(ErrMalformedNumber, "expected digit in exponent", l.spanFrom(line, column, start))
		}
		for isDigit(l.ch) {
			l.read()
		}
	}

	return l.input[start:l.pos]
}

// readString reads a string literal delimited by the quote under ch and
// returns its decoded value. Problems are recorded and scanning continues.
func (l *Lexer) readString(line, column, start int) string {
	quote := l.ch
	l.read() // skip opening quote

	var b strings.Builder

	for {
		if l.ch == eof {
			l.addError(ErrUnterminatedString, fmt.Sprintf("expected closing quote `%c`", quote), l.spanFrom(line, column, start))
			return b.String()
		}
		if l.ch == quote {
			l.read() // consume closing quote
			return b.String()
		}

		if l.ch == '\\' {
			escLine, escColumn, escStart := l.line, l.column, l.pos
			l.read() // skip '\'
			switch l.ch {
			case '\\':
				b.WriteRune('\\')
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case 'r':
				b.WriteRune('\r')
			case '0':
				b.WriteRune(0)
			case quote:
				b.WriteRune(quote)
			case eof:
				continue
			default:
				l.read()
				l.addError(ErrInvalidEscape, "unknown escape sequence `"+l.input[escStart:l.pos]+"`", l.spanFrom(escLine, escColumn, escStart))
				b.WriteString(l.input[escStart+1 : l.pos])
				continue
			}
			l.read()
			continue
		}

		if l.ch == '\n' || l.ch == '\r' || l.ch == '\t' || l.ch == 0 {
			ctlLine, ctlColumn, ctlStart := l.line, l.column, l.pos
			b.WriteRune(l.ch)
			l.read()
			l.addError(ErrInvalidEscape, fmt.Sprintf("unescaped control character %q in string literal", l.input[ctlStart:l.pos]), l.spanFrom(ctlLine, ctlColumn, ctlStart))
			continue
		}

		b.WriteRune(l.ch)
		l.read()
	}
}

// readPunctuation applies the two-character table first, then the single
// character one. Unmapped punctuation yields an ERROR token.
func (l *Lexer) readPunctuation(line, column, start int) Token {
	if next := l.peekRune(); next != eof {
		two := string(l.ch) + string(next)
		if tt, ok := twoCharOperators[two]; ok {
			l.read()
			l.read()
			return Token{Type: tt, Literal: two, Span: l.spanFrom(line, column, start)}
		}
	}

	raw := string(l.ch)
	tt, ok := singleCharOperators[l.ch]
	l.read()
	span := l.spanFrom(line, column, start)
	if !ok {
		l.addError(ErrUnknownSymbol, fmt.Sprintf("unknown symbol `%s`", raw), span)
		return Token{Type: ERROR, Literal: raw, Span: span}
	}
	return Token{Type: tt, Literal: raw, Span: span}
}

func isLetter(ch rune) bool {
	return ch != eof && (unicode.IsLetter(ch) || ch == '_')
}

func isDigit(ch rune) bool {
	// Numeric literals are restricted to ASCII digits.
	return ch >= '0' && ch <= '9'
}

func isWhitespace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
