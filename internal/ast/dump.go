package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dump writes an indented outline of the tree rooted at node, one node per
// line with its source position. It backs "mix build --dump-ast".
func Dump(w io.Writer, node Node) error {
	d := &dumper{w: w}
	d.node(node, 0)
	return d.err
}

// DumpString is Dump into a string.
func DumpString(node Node) string {
	var b strings.Builder
	_ = Dump(&b, node)
	return b.String()
}

type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) node(n Node, depth int) {
	if d.err != nil || n == nil {
		return
	}
	span := n.Span()
	_, d.err = fmt.Fprintf(d.w, "%s%s @%d:%d\n", strings.Repeat("  ", depth), label(n), span.Line, span.Column)
	for _, child := range children(n) {
		d.node(child, depth+1)
	}
}

// children returns the direct children of n in Walk order.
func children(n Node) []Node {
	var out []Node
	Walk(n, func(c Node) bool {
		if c == n {
			return true
		}
		out = append(out, c)
		return false
	})
	return out
}

func label(n Node) string {
	switch n := n.(type) {
	case *File:
		return "File " + strconv.Quote(n.Name)
	case *FuncDecl:
		return visibility(n.Public) + "FuncDecl"
	case *Param:
		return "Param"
	case *StructDecl:
		return visibility(n.Public) + "StructDecl"
	case *Field:
		return visibility(n.Public) + "Field"
	case *EnumDecl:
		return visibility(n.Public) + "EnumDecl"
	case *ImportDecl:
		return fmt.Sprintf("ImportDecl package=%d modules=%d", len(n.Package), len(n.Modules))
	case *AliasDecl:
		return visibility(n.Public) + "AliasDecl"
	case *NamedType:
		return "NamedType"
	case *ScopedType:
		return "ScopedType"
	case *GenericType:
		return fmt.Sprintf("GenericType arity=%d", len(n.Args))
	case *VoidType:
		return "VoidType"
	case *Block:
		return "Block"
	case *LetStmt:
		return "LetStmt"
	case *AssignStmt:
		return "AssignStmt " + string(n.Op)
	case *ExprStmt:
		return "ExprStmt"
	case *ReturnStmt:
		return "ReturnStmt"
	case *IfStmt:
		return "IfStmt"
	case *ForStmt:
		return "ForStmt"
	case *WhileStmt:
		return "WhileStmt"
	case *MatchStmt:
		if n.Default != nil {
			return "MatchStmt default"
		}
		return "MatchStmt"
	case *MatchCase:
		return "MatchCase"
	case *BreakStmt:
		return "BreakStmt"
	case *ContinueStmt:
		return "ContinueStmt"
	case *Ident:
		return "Ident " + n.Name
	case *IntLit:
		return "IntLit " + n.Text + width(n.Wide, "i32", "i64")
	case *FloatLit:
		return "FloatLit " + n.Text + width(n.Wide, "f32", "f64")
	case *StringLit:
		return "StringLit " + strconv.Quote(n.Value)
	case *BoolLit:
		return "BoolLit " + strconv.FormatBool(n.Value)
	case *NullLit:
		return "NullLit"
	case *BadExpr:
		return "BadExpr"
	case *ListLit:
		return "ListLit"
	case *TupleLit:
		return "TupleLit"
	case *DictLit:
		return "DictLit"
	case *DictEntry:
		return "DictEntry"
	case *RangeExpr:
		return "RangeExpr"
	case *FieldExpr:
		return "FieldExpr"
	case *PathExpr:
		return "PathExpr"
	case *CallExpr:
		return fmt.Sprintf("CallExpr args=%d", len(n.Args))
	case *UnaryExpr:
		return "UnaryExpr " + string(n.Op)
	case *BinaryExpr:
		return "BinaryExpr " + string(n.Op)
	default:
		return fmt.Sprintf("%T", n)
	}
}

func visibility(public bool) string {
	if public {
		return "public "
	}
	return ""
}

func width(wide bool, narrow, wideName string) string {
	if wide {
		return " (" + wideName + ")"
	}
	return " (" + narrow + ")"
}
