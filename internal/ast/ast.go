package ast

import "github.com/mix-lang/mix/internal/lexer"

// Node represents any AST node with an associated source span.
type Node interface {
	Span() lexer.Span
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl represents a top-level declaration.
type Decl interface {
	Node
	declNode()
}

// TypeExpr represents a type annotation expression.
type TypeExpr interface {
	Node
	typeNode()
}

// File represents a parsed compilation unit.
type File struct {
	Name  string
	Decls []Decl
	span  lexer.Span
}

// Span returns the span covering the entire file.
func (f *File) Span() lexer.Span { return f.span }

// NewFile constructs a file node with the provided span.
func NewFile(name string, span lexer.Span) *File {
	return &File{Name: name, span: span}
}

// SetSpan updates the file span.
func (f *File) SetSpan(span lexer.Span) {
	f.span = span
}

// Funcs returns the top-level function declarations in source order.
func (f *File) Funcs() []*FuncDecl {
	var out []*FuncDecl
	for _, d := range f.Decls {
		if fn, ok := d.(*FuncDecl); ok {
			out = append(out, fn)
		}
	}
	return out
}

// Ident represents an identifier.
type Ident struct {
	Name string
	span lexer.Span
}

// Span returns the identifier span.
func (i *Ident) Span() lexer.Span { return i.span }

func (*Ident) exprNode() {}

// NewIdent constructs an identifier node.
func NewIdent(name string, span lexer.Span) *Ident {
	return &Ident{
		Name: name,
		span: span,
	}
}

// BadExpr stands in for an expression that could not be parsed. It lets the
// parser keep building the surrounding tree after reporting the problem.
type BadExpr struct {
	span lexer.Span
}

// Span returns the span of the offending tokens.
func (e *BadExpr) Span() lexer.Span { return e.span }

func (*BadExpr) exprNode() {}

// NewBadExpr constructs a placeholder expression node.
func NewBadExpr(span lexer.Span) *BadExpr {
	return &BadExpr{span: span}
}

// MergeSpan returns a span starting at from and ending at to. Either side may
// be the zero span, in which case the other one is returned unchanged.
func MergeSpan(from, to lexer.Span) lexer.Span {
	if from.Line == 0 {
		return to
	}
	if to.Line == 0 {
		return from
	}
	out := from
	if to.End > out.End {
		out.End = to.End
	}
	return out
}
