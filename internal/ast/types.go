package ast

import "github.com/mix-lang/mix/internal/lexer"

// NamedType represents a plain type name such as "Int".
type NamedType struct {
	Name *Ident
	span lexer.Span
}

// Span returns the type span.
func (t *NamedType) Span() lexer.Span { return t.span }

// NewNamedType constructs a named type node.
func NewNamedType(name *Ident, span lexer.Span) *NamedType {
	return &NamedType{
		Name: name,
		span: span,
	}
}

func (*NamedType) typeNode() {}

// ScopedType represents "Scope::Type". Type may itself be scoped, so
// "a::b::C" nests to the right.
type ScopedType struct {
	Scope *Ident
	Type  TypeExpr
	span  lexer.Span
}

// Span returns the type span.
func (t *ScopedType) Span() lexer.Span { return t.span }

// NewScopedType constructs a scoped type node.
func NewScopedType(scope *Ident, typ TypeExpr, span lexer.Span) *ScopedType {
	return &ScopedType{
		Scope: scope,
		Type:  typ,
		span:  span,
	}
}

func (*ScopedType) typeNode() {}

// GenericType represents "Name<T>" or "Name<K, T>".
type GenericType struct {
	Name *Ident
	Args []TypeExpr
	span lexer.Span
}

// Span returns the type span.
func (t *GenericType) Span() lexer.Span { return t.span }

// NewGenericType constructs a generic type node.
func NewGenericType(name *Ident, args []TypeExpr, span lexer.Span) *GenericType {
	return &GenericType{
		Name: name,
		Args: args,
		span: span,
	}
}

// IsList reports whether the type has the single-parameter shape.
func (t *GenericType) IsList() bool { return len(t.Args) == 1 }

// IsDict reports whether the type has the key/value shape.
func (t *GenericType) IsDict() bool { return len(t.Args) == 2 }

func (*GenericType) typeNode() {}

// VoidType is the implicit return type of a function written without "->".
type VoidType struct {
	span lexer.Span
}

// Span returns the position where the return type would have been written.
func (t *VoidType) Span() lexer.Span { return t.span }

// NewVoidType constructs a void type node.
func NewVoidType(span lexer.Span) *VoidType {
	return &VoidType{span: span}
}

func (*VoidType) typeNode() {}
