package ast

import "github.com/mix-lang/mix/internal/lexer"

// Block represents a brace-delimited list of statements.
type Block struct {
	Stmts []Stmt
	span  lexer.Span
}

// Span returns the block span.
func (b *Block) Span() lexer.Span { return b.span }

// NewBlock constructs a block node.
func NewBlock(stmts []Stmt, span lexer.Span) *Block {
	return &Block{
		Stmts: stmts,
		span:  span,
	}
}

// SetSpan updates the block span.
func (b *Block) SetSpan(span lexer.Span) {
	b.span = span
}

func (*Block) stmtNode() {}

// LetStmt represents "let name[: Type][= value];".
type LetStmt struct {
	Name  *Ident
	Type  TypeExpr // nil when omitted
	Value Expr     // nil when omitted
	span  lexer.Span
}

// Span returns the statement span.
func (s *LetStmt) Span() lexer.Span { return s.span }

// NewLetStmt constructs a let statement node.
func NewLetStmt(name *Ident, typ TypeExpr, value Expr, span lexer.Span) *LetStmt {
	return &LetStmt{
		Name:  name,
		Type:  typ,
		Value: value,
		span:  span,
	}
}

func (*LetStmt) stmtNode() {}

// AssignStmt represents "target op value;" where op is "=" or a compound
// assignment operator.
type AssignStmt struct {
	Target Expr
	Op     lexer.TokenType
	Value  Expr
	span   lexer.Span
}

// Span returns the statement span.
func (s *AssignStmt) Span() lexer.Span { return s.span }

// NewAssignStmt constructs an assignment statement node.
func NewAssignStmt(target Expr, op lexer.TokenType, value Expr, span lexer.Span) *AssignStmt {
	return &AssignStmt{
		Target: target,
		Op:     op,
		Value:  value,
		span:   span,
	}
}

func (*AssignStmt) stmtNode() {}

// ExprStmt represents an expression evaluated for its effect.
type ExprStmt struct {
	Expr Expr
	span lexer.Span
}

// Span returns the statement span.
func (s *ExprStmt) Span() lexer.Span { return s.span }

// NewExprStmt constructs an expression statement node.
func NewExprStmt(expr Expr, span lexer.Span) *ExprStmt {
	return &ExprStmt{
		Expr: expr,
		span: span,
	}
}

func (*ExprStmt) stmtNode() {}

// ReturnStmt represents "return [value];".
type ReturnStmt struct {
	Value Expr // nil for a bare return
	span  lexer.Span
}

// Span returns the statement span.
func (s *ReturnStmt) Span() lexer.Span { return s.span }

// NewReturnStmt constructs a return statement node.
func NewReturnStmt(value Expr, span lexer.Span) *ReturnStmt {
	return &ReturnStmt{
		Value: value,
		span:  span,
	}
}

func (*ReturnStmt) stmtNode() {}

// IfStmt represents "if cond { ... } [else { ... }]". There is no else-if
// chaining; a nested if goes inside the else block.
type IfStmt struct {
	Cond Expr
	Then *Block
	Else *Block
	span lexer.Span
}

// Span returns the statement span.
func (s *IfStmt) Span() lexer.Span { return s.span }

// NewIfStmt constructs an if statement node.
func NewIfStmt(cond Expr, then, els *Block, span lexer.Span) *IfStmt {
	return &IfStmt{
		Cond: cond,
		Then: then,
		Else: els,
		span: span,
	}
}

func (*IfStmt) stmtNode() {}

// ForStmt represents "for name[: Type] in iterable { ... }".
type ForStmt struct {
	Name     *Ident
	Type     TypeExpr
	Iterable Expr
	Body     *Block
	span     lexer.Span
}

// Span returns the statement span.
func (s *ForStmt) Span() lexer.Span { return s.span }

// NewForStmt constructs a for statement node.
func NewForStmt(name *Ident, typ TypeExpr, iterable Expr, body *Block, span lexer.Span) *ForStmt {
	return &ForStmt{
		Name:     name,
		Type:     typ,
		Iterable: iterable,
		Body:     body,
		span:     span,
	}
}

func (*ForStmt) stmtNode() {}

// WhileStmt represents "while cond { ... }".
type WhileStmt struct {
	Cond Expr
	Body *Block
	span lexer.Span
}

// Span returns the statement span.
func (s *WhileStmt) Span() lexer.Span { return s.span }

// NewWhileStmt constructs a while statement node.
func NewWhileStmt(cond Expr, body *Block, span lexer.Span) *WhileStmt {
	return &WhileStmt{
		Cond: cond,
		Body: body,
		span: span,
	}
}

func (*WhileStmt) stmtNode() {}

// MatchStmt represents "match subject { key { ... } ... [default { ... }] }".
type MatchStmt struct {
	Subject Expr
	Cases   []*MatchCase
	Default *Block
	span    lexer.Span
}

// Span returns the statement span.
func (s *MatchStmt) Span() lexer.Span { return s.span }

// NewMatchStmt constructs a match statement node.
func NewMatchStmt(subject Expr, cases []*MatchCase, def *Block, span lexer.Span) *MatchStmt {
	return &MatchStmt{
		Subject: subject,
		Cases:   cases,
		Default: def,
		span:    span,
	}
}

func (*MatchStmt) stmtNode() {}

// MatchCase is one literal-keyed arm of a match statement.
type MatchCase struct {
	Key  Expr
	Body *Block
	span lexer.Span
}

// Span returns the arm span.
func (c *MatchCase) Span() lexer.Span { return c.span }

// NewMatchCase constructs a match arm node.
func NewMatchCase(key Expr, body *Block, span lexer.Span) *MatchCase {
	return &MatchCase{
		Key:  key,
		Body: body,
		span: span,
	}
}

// BreakStmt represents "break;".
type BreakStmt struct {
	span lexer.Span
}

// Span returns the statement span.
func (s *BreakStmt) Span() lexer.Span { return s.span }

// NewBreakStmt constructs a break statement node.
func NewBreakStmt(span lexer.Span) *BreakStmt {
	return &BreakStmt{span: span}
}

func (*BreakStmt) stmtNode() {}

// ContinueStmt represents "continue;".
type ContinueStmt struct {
	span lexer.Span
}

// Span returns the statement span.
func (s *ContinueStmt) Span() lexer.Span { return s.span }

// NewContinueStmt constructs a continue statement node.
func NewContinueStmt(span lexer.Span) *ContinueStmt {
	return &ContinueStmt{span: span}
}

func (*ContinueStmt) stmtNode() {}
