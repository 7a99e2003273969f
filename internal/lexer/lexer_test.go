package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expectedToken struct {
	typ     TokenType
	literal string
}

func collect(t *testing.T, input string) ([]Token, *Lexer) {
	t.Helper()
	l := New(input)
	var toks []Token
	for i := 0; ; i++ {
		require.Less(t, i, 10000, "lexer did not reach EOF")
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks, l
		}
	}
}

func assertTokens(t *testing.T, input string, want []expectedToken) *Lexer {
	t.Helper()
	toks, l := collect(t, input)
	require.Len(t, toks, len(want), "token count for %q", input)
	for i, w := range want {
		assert.Equal(t, w.typ, toks[i].Type, "token %d type", i)
		assert.Equal(t, w.literal, toks[i].Literal, "token %d literal", i)
	}
	return l
}

func TestNextToken(t *testing.T) {
	input := `func add(a: i32, b: i32) -> i32 {
    let sum = a + b;
    return sum;
}`

	l := assertTokens(t, input, []expectedToken{
		{FUNC, "func"},
		{IDENT, "add"},
		{LPAREN, "("},
		{IDENT, "a"},
		{COLON, ":"},
		{IDENT, "i32"},
		{COMMA, ","},
		{IDENT, "b"},
		{COLON, ":"},
		{IDENT, "i32"},
		{RPAREN, ")"},
		{ARROW, "->"},
		{IDENT, "i32"},
		{LBRACE, "{"},
		{LET, "let"},
		{IDENT, "sum"},
		{ASSIGN, "="},
		{IDENT, "a"},
		{PLUS, "+"},
		{IDENT, "b"},
		{SEMICOLON, ";"},
		{RETURN, "return"},
		{IDENT, "sum"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{EOF, ""},
	})
	assert.False(t, l.HasErrors())
}

func TestOperatorsMaximalMunch(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"=", ASSIGN},
		{"==", EQ},
		{"!", BANG},
		{"!=", NOT_EQ},
		{"-", MINUS},
		{"->", ARROW},
		{"-=", MINUS_ASSIGN},
		{":", COLON},
		{"::", DOUBLE_COLON},
		{"<", LT},
		{"<=", LE},
		{">", GT},
		{">=", GE},
		{"+=", PLUS_ASSIGN},
		{"*=", STAR_ASSIGN},
		{"/=", SLASH_ASSIGN},
		{"%=", PERCENT_ASSIGN},
		{"^=", POWER_ASSIGN},
		{"^", POWER},
		{"&", AMPERSAND},
		{"&&", AND},
		{"||", OR},
		{"$", DOLLAR},
		{"@", AT},
		{"#", HASH},
		{".", DOT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assertTokens(t, tt.input, []expectedToken{
				{tt.want, tt.input},
				{EOF, ""},
			})
		})
	}
}

func TestOperatorsWithoutSpaces(t *testing.T) {
	assertTokens(t, "a==b!=-c", []expectedToken{
		{IDENT, "a"},
		{EQ, "=="},
		{IDENT, "b"},
		{NOT_EQ, "!="},
		{MINUS, "-"},
		{IDENT, "c"},
		{EOF, ""},
	})
	assertTokens(t, "std::io::println", []expectedToken{
		{IDENT, "std"},
		{DOUBLE_COLON, "::"},
		{IDENT, "io"},
		{DOUBLE_COLON, "::"},
		{IDENT, "println"},
		{EOF, ""},
	})
}

func TestKeywords(t *testing.T) {
	for word, typ := range keywords {
		t.Run(word, func(t *testing.T) {
			assertTokens(t, word, []expectedToken{{typ, word}, {EOF, ""}})
		})
	}

	assert.Equal(t, IN, LookupIdent("in"))
	assert.Equal(t, IDENT, LookupIdent("Func"))
	assert.Equal(t, IDENT, LookupIdent("inside"))
	assert.True(t, IsKeyword(WHILE))
	assert.False(t, IsKeyword(TRUE))
	assert.False(t, IsKeyword(IDENT))
}

func TestQuestionMarkIsNull(t *testing.T) {
	assertTokens(t, "let x = ?;", []expectedToken{
		{LET, "let"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{NULL, "?"},
		{SEMICOLON, ";"},
		{EOF, ""},
	})
}

func TestNumbers(t *testing.T) {
	l := assertTokens(t, "0 42 3.14 1e9 2.5E-3 7e+2 2147483648", []expectedToken{
		{NUMBER, "0"},
		{NUMBER, "42"},
		{NUMBER, "3.14"},
		{NUMBER, "1e9"},
		{NUMBER, "2.5E-3"},
		{NUMBER, "7e+2"},
		{NUMBER, "2147483648"},
		{EOF, ""},
	})
	assert.False(t, l.HasErrors())
}

func TestMalformedNumbers(t *testing.T) {
	tests := []struct {
		input   string
		literal string
		message string
	}{
		{"3.", "3.", "expected digit after decimal point"},
		{"1e", "1e", "expected digit in exponent"},
		{"4E+", "4E+", "expected digit in exponent"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := assertTokens(t, tt.input, []expectedToken{
				{NUMBER, tt.literal},
				{EOF, ""},
			})
			require.Len(t, l.Errors(), 1)
			assert.Equal(t, ErrMalformedNumber, l.Errors()[0].Kind)
			assert.Equal(t, tt.message, l.Errors()[0].Message)
			assert.Nil(t, l.Fatal())
		})
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"double quoted", `"hello"`, "hello"},
		{"single quoted", `'hello'`, "hello"},
		{"empty", `""`, ""},
		{"escaped backslash", `"x\\y"`, `x\y`},
		{"newline escape", `"a\nb"`, "a\nb"},
		{"tab and carriage return", `"\t\r"`, "\t\r"},
		{"nul", `"\0"`, "\x00"},
		{"escaped double quote", `"say \"hi\""`, `say "hi"`},
		{"escaped single quote", `'it\'s'`, "it's"},
		{"other quote kept", `"it's"`, "it's"},
		{"unicode", `"héllo wörld"`, "héllo wörld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := assertTokens(t, tt.input, []expectedToken{
				{STRING, tt.want},
				{EOF, ""},
			})
			assert.Empty(t, l.Errors())
		})
	}
}

func TestStringSpanCoversQuotes(t *testing.T) {
	toks, _ := collect(t, `x = "a\nb";`)
	require.Len(t, toks, 5)
	str := toks[2]
	assert.Equal(t, STRING, str.Type)
	assert.Equal(t, 4, str.Span.Start)
	assert.Equal(t, 10, str.Span.End)
	assert.Equal(t, 5, str.Span.Column)
}

func TestUnterminatedString(t *testing.T) {
	l := assertTokens(t, `let s = "hello`, []expectedToken{
		{LET, "let"},
		{IDENT, "s"},
		{ASSIGN, "="},
		{STRING, "hello"},
		{EOF, ""},
	})

	require.Len(t, l.Errors(), 1)
	err := l.Errors()[0]
	assert.Equal(t, ErrUnterminatedString, err.Kind)
	assert.Equal(t, "expected closing quote `\"`", err.Message)
	assert.Equal(t, 9, err.Span.Column)
	assert.Equal(t, 8, err.Span.Start)
	assert.Equal(t, 14, err.Span.End)
	assert.Nil(t, l.Fatal())
}

func TestUnterminatedSingleQuotedString(t *testing.T) {
	l := assertTokens(t, `'abc`, []expectedToken{
		{STRING, "abc"},
		{EOF, ""},
	})
	require.Len(t, l.Errors(), 1)
	assert.Equal(t, "expected closing quote `'`", l.Errors()[0].Message)
}

func TestUnterminatedStringAfterBackslash(t *testing.T) {
	l := assertTokens(t, `"abc\`, []expectedToken{
		{STRING, "abc"},
		{EOF, ""},
	})
	require.Len(t, l.Errors(), 1)
	assert.Equal(t, ErrUnterminatedString, l.Errors()[0].Kind)
}

func TestUnknownEscape(t *testing.T) {
	l := assertTokens(t, `"a\qb"`, []expectedToken{
		{STRING, "aqb"},
		{EOF, ""},
	})
	require.Len(t, l.Errors(), 1)
	err := l.Errors()[0]
	assert.Equal(t, ErrInvalidEscape, err.Kind)
	assert.Equal(t, "unknown escape sequence `\\q`", err.Message)
	assert.Equal(t, 2, err.Span.Start)
	assert.Equal(t, 4, err.Span.End)
}

func TestRawControlCharacterInString(t *testing.T) {
	l := assertTokens(t, "\"a\nb\" c", []expectedToken{
		{STRING, "a\nb"},
		{IDENT, "c"},
		{EOF, ""},
	})
	require.Len(t, l.Errors(), 1)
	err := l.Errors()[0]
	assert.Equal(t, ErrInvalidEscape, err.Kind)
	assert.Equal(t, 1, err.Span.Line)
	assert.Equal(t, 3, err.Span.Column)

	// The identifier after the literal lands on the second line.
	toks, _ := collect(t, "\"a\nb\" c")
	assert.Equal(t, 2, toks[1].Span.Line)
	assert.Equal(t, 4, toks[1].Span.Column)
}

func TestComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []expectedToken
	}{
		{
			name:  "line comment",
			input: "// nothing here\n1",
			want:  []expectedToken{{NUMBER, "1"}, {EOF, ""}},
		},
		{
			name:  "line comment at eof",
			input: "1 // trailing",
			want:  []expectedToken{{NUMBER, "1"}, {EOF, ""}},
		},
		{
			name:  "block comment containing line comment",
			input: "/* a // b */ 1",
			want:  []expectedToken{{NUMBER, "1"}, {EOF, ""}},
		},
		{
			name:  "block comments do not nest",
			input: "/* a /* b */ c",
			want:  []expectedToken{{IDENT, "c"}, {EOF, ""}},
		},
		{
			name:  "multi-line block comment",
			input: "/*\n * doc\n */\nx",
			want:  []expectedToken{{IDENT, "x"}, {EOF, ""}},
		},
		{
			name:  "slash is still division",
			input: "a / b",
			want:  []expectedToken{{IDENT, "a"}, {SLASH, "/"}, {IDENT, "b"}, {EOF, ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := assertTokens(t, tt.input, tt.want)
			assert.False(t, l.HasErrors())
		})
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	l := assertTokens(t, "x /* a", []expectedToken{
		{IDENT, "x"},
		{EOF, ""},
	})
	require.Len(t, l.Errors(), 1)
	err := l.Errors()[0]
	assert.Equal(t, ErrUnterminatedComment, err.Kind)
	assert.Nil(t, l.Fatal())
	assert.Equal(t, "warning", string(err.ToDiagnostic().Severity))
}

func TestUnicodeIdentifiers(t *testing.T) {
	l := assertTokens(t, "größe λx _tmp1 名前", []expectedToken{
		{IDENT, "größe"},
		{IDENT, "λx"},
		{IDENT, "_tmp1"},
		{IDENT, "名前"},
		{EOF, ""},
	})
	assert.False(t, l.HasErrors())
}

func TestUnknownSymbolIsRecoverable(t *testing.T) {
	for _, sym := range []string{"|", "~", "`", "\\"} {
		t.Run(sym, func(t *testing.T) {
			l := assertTokens(t, "a "+sym+" b", []expectedToken{
				{IDENT, "a"},
				{ERROR, sym},
				{IDENT, "b"},
				{EOF, ""},
			})
			require.Len(t, l.Errors(), 1)
			err := l.Errors()[0]
			assert.Equal(t, ErrUnknownSymbol, err.Kind)
			assert.Equal(t, "unknown symbol `"+sym+"`", err.Message)
			assert.Nil(t, l.Fatal())
		})
	}
}

func TestUnrecognizedCharacterIsFatal(t *testing.T) {
	l := assertTokens(t, "let x = §; let y = 1;", []expectedToken{
		{LET, "let"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{ERROR, "§"},
		{EOF, ""},
	})

	fatal := l.Fatal()
	require.NotNil(t, fatal)
	assert.Equal(t, ErrUnrecognizedCharacter, fatal.Kind)
	assert.Equal(t, 9, fatal.Span.Column)
	assert.Equal(t, 8, fatal.Span.Start)
	assert.Equal(t, 10, fatal.Span.End)
	assert.True(t, fatal.Kind.Fatal())
}

func TestPeekIsIdempotent(t *testing.T) {
	l := New("a b")

	first := l.Peek()
	assert.Equal(t, first, l.Peek())
	assert.Equal(t, first, l.Peek())
	assert.Equal(t, first, l.Next())

	assert.Equal(t, "b", l.Peek().Literal)
	assert.Equal(t, "b", l.Next().Literal)

	assert.Equal(t, EOF, l.Peek().Type)
	assert.Equal(t, EOF, l.Next().Type)
	assert.Equal(t, EOF, l.Next().Type)
	assert.Equal(t, EOF, l.Peek().Type)
}

func TestTokenizeEndsWithSingleEOF(t *testing.T) {
	inputs := []string{"", "   \n\t", "// only a comment", "let x = 1;", "a | b", "x §"}
	for _, input := range inputs {
		toks, _, _ := Tokenize("main.mx", input)
		require.NotEmpty(t, toks)
		eofs := 0
		for _, tok := range toks {
			if tok.Type == EOF {
				eofs++
			}
		}
		assert.Equal(t, 1, eofs, "input %q", input)
		assert.Equal(t, EOF, toks[len(toks)-1].Type, "input %q", input)
	}
}

func TestTokenizeReportsFatal(t *testing.T) {
	_, errs, err := Tokenize("main.mx", "x § y")
	require.Error(t, err)
	assert.Equal(t, "main.mx:1:3: unrecognized character \"§\"", err.Error())
	require.Len(t, errs, 1)

	_, errs, err = Tokenize("main.mx", "x | y")
	require.NoError(t, err)
	assert.Len(t, errs, 1)
}

func TestTokenSpans(t *testing.T) {
	toks, _, err := Tokenize("main.mx", "let x = 10;\nlet y = 20;")
	require.NoError(t, err)

	want := []Span{
		{"main.mx", 1, 1, 0, 3},
		{"main.mx", 1, 5, 4, 5},
		{"main.mx", 1, 7, 6, 7},
		{"main.mx", 1, 9, 8, 10},
		{"main.mx", 1, 11, 10, 11},
		{"main.mx", 2, 1, 12, 15},
		{"main.mx", 2, 5, 16, 17},
		{"main.mx", 2, 7, 18, 19},
		{"main.mx", 2, 9, 20, 22},
		{"main.mx", 2, 11, 22, 23},
		{"main.mx", 2, 12, 23, 23},
	}
	require.Len(t, toks, len(want))
	for i, span := range want {
		assert.Equal(t, span, toks[i].Span, "token %d (%s)", i, toks[i].Literal)
	}
}

func TestColumnsCountRunes(t *testing.T) {
	toks, _ := collect(t, "λ = \"é\" + x")
	require.Len(t, toks, 6)

	assert.Equal(t, 3, toks[1].Span.Column)
	assert.Equal(t, 3, toks[1].Span.Start)
	assert.Equal(t, 5, toks[2].Span.Column)
	assert.Equal(t, 9, toks[3].Span.Column)
	assert.Equal(t, 10, toks[3].Span.Start)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "end of file", Describe(Token{Type: EOF}))
	assert.Equal(t, `string "hi"`, Describe(Token{Type: STRING, Literal: "hi"}))
	assert.Equal(t, "`;`", Describe(Token{Type: SEMICOLON, Literal: ";"}))
}
