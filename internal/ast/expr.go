package ast

import "github.com/mix-lang/mix/internal/lexer"

// IntLit is an integer literal. The text is kept verbatim; Wide is set when
// the value does not fit in 32 bits.
type IntLit struct {
	Text string
	Wide bool
	span lexer.Span
}

// Span returns the literal span.
func (l *IntLit) Span() lexer.Span { return l.span }

// NewIntLit constructs an integer literal node.
func NewIntLit(text string, wide bool, span lexer.Span) *IntLit {
	return &IntLit{
		Text: text,
		Wide: wide,
		span: span,
	}
}

func (*IntLit) exprNode() {}

// FloatLit is a floating point literal. Wide is set when the value needs
// 64-bit precision range.
type FloatLit struct {
	Text string
	Wide bool
	span lexer.Span
}

// Span returns the literal span.
func (l *FloatLit) Span() lexer.Span { return l.span }

// NewFloatLit constructs a float literal node.
func NewFloatLit(text string, wide bool, span lexer.Span) *FloatLit {
	return &FloatLit{
		Text: text,
		Wide: wide,
		span: span,
	}
}

func (*FloatLit) exprNode() {}

// StringLit is a string literal holding its decoded value.
type StringLit struct {
	Value string
	span  lexer.Span
}

// Span returns the literal span.
func (l *StringLit) Span() lexer.Span { return l.span }

// NewStringLit constructs a string literal node.
func NewStringLit(value string, span lexer.Span) *StringLit {
	return &StringLit{
		Value: value,
		span:  span,
	}
}

func (*StringLit) exprNode() {}

// BoolLit is "true" or "false".
type BoolLit struct {
	Value bool
	span  lexer.Span
}

// Span returns the literal span.
func (l *BoolLit) Span() lexer.Span { return l.span }

// NewBoolLit constructs a boolean literal node.
func NewBoolLit(value bool, span lexer.Span) *BoolLit {
	return &BoolLit{
		Value: value,
		span:  span,
	}
}

func (*BoolLit) exprNode() {}

// NullLit is "null" (also spelled "?").
type NullLit struct {
	span lexer.Span
}

// Span returns the literal span.
func (l *NullLit) Span() lexer.Span { return l.span }

// NewNullLit constructs a null literal node.
func NewNullLit(span lexer.Span) *NullLit {
	return &NullLit{span: span}
}

func (*NullLit) exprNode() {}

// ListLit is "[e, e, ...]".
type ListLit struct {
	Elements []Expr
	span     lexer.Span
}

// Span returns the literal span.
func (l *ListLit) Span() lexer.Span { return l.span }

// NewListLit constructs a list literal node.
func NewListLit(elements []Expr, span lexer.Span) *ListLit {
	return &ListLit{
		Elements: elements,
		span:     span,
	}
}

func (*ListLit) exprNode() {}

// DictLit is "{k: v, ...}". Entries keep their source order.
type DictLit struct {
	Entries []*DictEntry
	span    lexer.Span
}

// Span returns the literal span.
func (l *DictLit) Span() lexer.Span { return l.span }

// NewDictLit constructs a dict literal node.
func NewDictLit(entries []*DictEntry, span lexer.Span) *DictLit {
	return &DictLit{
		Entries: entries,
		span:    span,
	}
}

func (*DictLit) exprNode() {}

// DictEntry is a single "key: value" pair.
type DictEntry struct {
	Key   Expr
	Value Expr
	span  lexer.Span
}

// Span returns the entry span.
func (e *DictEntry) Span() lexer.Span { return e.span }

// NewDictEntry constructs a dict entry node.
func NewDictEntry(key, value Expr, span lexer.Span) *DictEntry {
	return &DictEntry{
		Key:   key,
		Value: value,
		span:  span,
	}
}

// TupleLit is "(a, b, ...)" with at least two elements.
type TupleLit struct {
	Elements []Expr
	span     lexer.Span
}

// Span returns the literal span.
func (l *TupleLit) Span() lexer.Span { return l.span }

// NewTupleLit constructs a tuple literal node.
func NewTupleLit(elements []Expr, span lexer.Span) *TupleLit {
	return &TupleLit{
		Elements: elements,
		span:     span,
	}
}

func (*TupleLit) exprNode() {}

// RangeExpr is a numeric range "lo -> hi".
type RangeExpr struct {
	Start Expr
	End   Expr
	span  lexer.Span
}

// Span returns the range span.
func (e *RangeExpr) Span() lexer.Span { return e.span }

// NewRangeExpr constructs a range expression node.
func NewRangeExpr(start, end Expr, span lexer.Span) *RangeExpr {
	return &RangeExpr{
		Start: start,
		End:   end,
		span:  span,
	}
}

func (*RangeExpr) exprNode() {}

// FieldExpr is "target.field".
type FieldExpr struct {
	Target Expr
	Field  *Ident
	span   lexer.Span
}

// Span returns the expression span.
func (e *FieldExpr) Span() lexer.Span { return e.span }

// NewFieldExpr constructs a member access node.
func NewFieldExpr(target Expr, field *Ident, span lexer.Span) *FieldExpr {
	return &FieldExpr{
		Target: target,
		Field:  field,
		span:   span,
	}
}

func (*FieldExpr) exprNode() {}

// PathExpr is "target::segment".
type PathExpr struct {
	Target  Expr
	Segment *Ident
	span    lexer.Span
}

// Span returns the expression span.
func (e *PathExpr) Span() lexer.Span { return e.span }

// NewPathExpr constructs a scoped access node.
func NewPathExpr(target Expr, segment *Ident, span lexer.Span) *PathExpr {
	return &PathExpr{
		Target:  target,
		Segment: segment,
		span:    span,
	}
}

func (*PathExpr) exprNode() {}

// CallExpr is "callee(args...)".
type CallExpr struct {
	Callee Expr
	Args   []Expr
	span   lexer.Span
}

// Span returns the expression span.
func (e *CallExpr) Span() lexer.Span { return e.span }

// NewCallExpr constructs a call expression node.
func NewCallExpr(callee Expr, args []Expr, span lexer.Span) *CallExpr {
	return &CallExpr{
		Callee: callee,
		Args:   args,
		span:   span,
	}
}

func (*CallExpr) exprNode() {}

// UnaryExpr is a prefix operator applied to an operand: "+x", "-x" or "!x".
type UnaryExpr struct {
	Op      lexer.TokenType
	Operand Expr
	span    lexer.Span
}

// Span returns the expression span.
func (e *UnaryExpr) Span() lexer.Span { return e.span }

// NewUnaryExpr constructs a unary expression node.
func NewUnaryExpr(op lexer.TokenType, operand Expr, span lexer.Span) *UnaryExpr {
	return &UnaryExpr{
		Op:      op,
		Operand: operand,
		span:    span,
	}
}

func (*UnaryExpr) exprNode() {}

// BinaryExpr is "left op right".
type BinaryExpr struct {
	Op    lexer.TokenType
	Left  Expr
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *BinaryExpr) Span() lexer.Span { return e.span }

// NewBinaryExpr constructs a binary expression node.
func NewBinaryExpr(op lexer.TokenType, left, right Expr, span lexer.Span) *BinaryExpr {
	return &BinaryExpr{
		Op:    op,
		Left:  left,
		Right: right,
		span:  span,
	}
}

func (*BinaryExpr) exprNode() {}
