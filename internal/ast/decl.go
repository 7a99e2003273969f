package ast

import "github.com/mix-lang/mix/internal/lexer"

// FuncDecl represents a function declaration. Methods inside a struct body
// use the same node.
type FuncDecl struct {
	Public     bool
	Name       *Ident
	Params     []*Param
	ReturnType TypeExpr // *VoidType when no "->" clause is written
	Body       *Block
	span       lexer.Span
}

// Span returns the declaration span.
func (d *FuncDecl) Span() lexer.Span { return d.span }

// NewFuncDecl constructs a function declaration node.
func NewFuncDecl(public bool, name *Ident, params []*Param, returnType TypeExpr, body *Block, span lexer.Span) *FuncDecl {
	return &FuncDecl{
		Public:     public,
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		span:       span,
	}
}

// SetSpan updates the function declaration span.
func (d *FuncDecl) SetSpan(span lexer.Span) {
	d.span = span
}

func (*FuncDecl) declNode() {}

// Param represents a function parameter. Type is nil when omitted.
type Param struct {
	Name *Ident
	Type TypeExpr
	span lexer.Span
}

// Span returns the parameter span.
func (p *Param) Span() lexer.Span { return p.span }

// NewParam constructs a parameter node.
func NewParam(name *Ident, typ TypeExpr, span lexer.Span) *Param {
	return &Param{
		Name: name,
		Type: typ,
		span: span,
	}
}

// StructDecl represents a struct declaration. Fields and methods are kept in
// two separate lists, each in source order.
type StructDecl struct {
	Public  bool
	Name    *Ident
	Fields  []*Field
	Methods []*FuncDecl
	span    lexer.Span
}

// Span returns the declaration span.
func (d *StructDecl) Span() lexer.Span { return d.span }

// NewStructDecl constructs a struct declaration node.
func NewStructDecl(public bool, name *Ident, fields []*Field, methods []*FuncDecl, span lexer.Span) *StructDecl {
	return &StructDecl{
		Public:  public,
		Name:    name,
		Fields:  fields,
		Methods: methods,
		span:    span,
	}
}

func (*StructDecl) declNode() {}

// Field represents a struct field. Type is nil when omitted.
type Field struct {
	Public bool
	Name   *Ident
	Type   TypeExpr
	span   lexer.Span
}

// Span returns the field span.
func (f *Field) Span() lexer.Span { return f.span }

// NewField constructs a struct field node.
func NewField(public bool, name *Ident, typ TypeExpr, span lexer.Span) *Field {
	return &Field{
		Public: public,
		Name:   name,
		Type:   typ,
		span:   span,
	}
}

// EnumDecl represents an enum declaration. Variants are bare names; enums
// carry no associated data and no methods.
type EnumDecl struct {
	Public   bool
	Name     *Ident
	Variants []*Ident
	span     lexer.Span
}

// Span returns the declaration span.
func (d *EnumDecl) Span() lexer.Span { return d.span }

// NewEnumDecl constructs an enum declaration node.
func NewEnumDecl(public bool, name *Ident, variants []*Ident, span lexer.Span) *EnumDecl {
	return &EnumDecl{
		Public:   public,
		Name:     name,
		Variants: variants,
		span:     span,
	}
}

func (*EnumDecl) declNode() {}

// ImportDecl records an import as written. For "import std::io;" Package is
// [std] and Modules is [io]; for "import a::b::{X, Y};" Package is [a b] and
// Modules is [X Y]. Nothing is resolved.
type ImportDecl struct {
	Package []*Ident
	Modules []*Ident
	span    lexer.Span
}

// Span returns the declaration span.
func (d *ImportDecl) Span() lexer.Span { return d.span }

// NewImportDecl constructs an import declaration node.
func NewImportDecl(pkg, modules []*Ident, span lexer.Span) *ImportDecl {
	return &ImportDecl{
		Package: pkg,
		Modules: modules,
		span:    span,
	}
}

func (*ImportDecl) declNode() {}

// AliasDecl represents "alias Name = Type;".
type AliasDecl struct {
	Public bool
	Name   *Ident
	Type   TypeExpr
	span   lexer.Span
}

// Span returns the declaration span.
func (d *AliasDecl) Span() lexer.Span { return d.span }

// NewAliasDecl constructs a type alias node.
func NewAliasDecl(public bool, name *Ident, typ TypeExpr, span lexer.Span) *AliasDecl {
	return &AliasDecl{
		Public: public,
		Name:   name,
		Type:   typ,
		span:   span,
	}
}

func (*AliasDecl) declNode() {}
