package parser

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/mix-lang/mix/internal/ast"
	"github.com/mix-lang/mix/internal/diag"
	"github.com/mix-lang/mix/internal/lexer"
)

// ErrFatal is wrapped by every *FatalError.
var ErrFatal = errors.New("fatal syntax error")

// FatalError reports a problem that stopped the parse: an unrecognized
// character in the source or a numeric literal no supported representation
// can hold. The same diagnostic is also present in the parser's diagnostics.
type FatalError struct {
	Diagnostic diag.Diagnostic
}

func (e *FatalError) Error() string {
	return e.Diagnostic.Error()
}

func (e *FatalError) Unwrap() error {
	return ErrFatal
}

// bailout is the panic value used to unwind from a fatal error to ParseFile.
type bailout struct {
	diag diag.Diagnostic
}

type Option func(*options)

type options struct {
	filename string
	logger   logrus.FieldLogger
}

// WithFilename configures the parser to attribute all emitted spans to the provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithLogger makes the parser emit debug events (start, finish, recovery
// resyncs) to the given logger. By default nothing is logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Parser is a recursive-descent parser for Mix with panic-mode recovery.
//   - Lookahead: the parser owns the lexer and only moves it through peek and
//     next. prev is the last consumed token and closes node spans.
//   - Diagnostics: diags is append-only. Lexer problems are merged in when
//     Diagnostics is called.
//   - Fatal errors unwind with a bailout panic that ParseFile recovers.
type Parser struct {
	lx       *lexer.Lexer
	prev     lexer.Token
	filename string
	log      logrus.FieldLogger

	diags diag.List
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		cfg.logger = discard
	}

	p := &Parser{
		lx:       lexer.New(input),
		filename: cfg.filename,
		log:      cfg.logger.WithField("file", cfg.filename),
	}
	p.lx.SetFilename(cfg.filename)

	return p
}

// Parse parses one source file. Recoverable problems are returned in the
// list; the error is a *FatalError when the parse had to stop early, in which
// case the file holds the declarations completed before that point.
func Parse(filename, src string, opts ...Option) (*ast.File, diag.List, error) {
	opts = append([]Option{WithFilename(filename)}, opts...)
	p := New(src, opts...)
	file, err := p.ParseFile()
	return file, p.Diagnostics(), err
}

// ParseFile parses a full compilation unit and returns its AST.
func (p *Parser) ParseFile() (file *ast.File, err error) {
	p.log.Debug("parse started")

	file = ast.NewFile(p.filename, lexer.Span{Filename: p.filename, Line: 1, Column: 1})

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			p.log.WithField("code", b.diag.Code).Debug("parse aborted")
			err = &FatalError{Diagnostic: b.diag}
		}
	}()

	p.parseDecls(file)
	file.SetSpan(ast.MergeSpan(file.Span(), p.peek().Span))

	p.log.WithField("decls", len(file.Decls)).Debug("parse finished")
	return file, nil
}

// Diagnostics returns lexical and syntax diagnostics ordered by position.
func (p *Parser) Diagnostics() diag.List {
	lexErrs := p.lx.Errors()
	out := make(diag.List, 0, len(lexErrs)+len(p.diags))
	for _, e := range lexErrs {
		out = append(out, e.ToDiagnostic())
	}
	out = append(out, p.diags...)
	out.Sort()
	return out
}

// HasErrors reports whether any error-severity diagnostic was recorded so far.
func (p *Parser) HasErrors() bool {
	return p.Diagnostics().HasErrors()
}
