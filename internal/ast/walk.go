package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		for _, decl := range n.Decls {
			Walk(decl, fn)
		}

	case *FuncDecl:
		walkIdent(n.Name, fn)
		for _, param := range n.Params {
			Walk(param, fn)
		}
		walkType(n.ReturnType, fn)
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *Param:
		walkIdent(n.Name, fn)
		walkType(n.Type, fn)

	case *StructDecl:
		walkIdent(n.Name, fn)
		for _, field := range n.Fields {
			Walk(field, fn)
		}
		for _, method := range n.Methods {
			Walk(method, fn)
		}

	case *Field:
		walkIdent(n.Name, fn)
		walkType(n.Type, fn)

	case *EnumDecl:
		walkIdent(n.Name, fn)
		for _, variant := range n.Variants {
			walkIdent(variant, fn)
		}

	case *ImportDecl:
		for _, ident := range n.Package {
			walkIdent(ident, fn)
		}
		for _, ident := range n.Modules {
			walkIdent(ident, fn)
		}

	case *AliasDecl:
		walkIdent(n.Name, fn)
		walkType(n.Type, fn)

	case *NamedType:
		walkIdent(n.Name, fn)

	case *ScopedType:
		walkIdent(n.Scope, fn)
		walkType(n.Type, fn)

	case *GenericType:
		walkIdent(n.Name, fn)
		for _, arg := range n.Args {
			walkType(arg, fn)
		}

	case *Block:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}

	case *LetStmt:
		walkIdent(n.Name, fn)
		walkType(n.Type, fn)
		walkExpr(n.Value, fn)

	case *AssignStmt:
		walkExpr(n.Target, fn)
		walkExpr(n.Value, fn)

	case *ExprStmt:
		walkExpr(n.Expr, fn)

	case *ReturnStmt:
		walkExpr(n.Value, fn)

	case *IfStmt:
		walkExpr(n.Cond, fn)
		walkBlock(n.Then, fn)
		walkBlock(n.Else, fn)

	case *ForStmt:
		walkIdent(n.Name, fn)
		walkType(n.Type, fn)
		walkExpr(n.Iterable, fn)
		walkBlock(n.Body, fn)

	case *WhileStmt:
		walkExpr(n.Cond, fn)
		walkBlock(n.Body, fn)

	case *MatchStmt:
		walkExpr(n.Subject, fn)
		for _, c := range n.Cases {
			Walk(c, fn)
		}
		walkBlock(n.Default, fn)

	case *MatchCase:
		walkExpr(n.Key, fn)
		walkBlock(n.Body, fn)

	case *ListLit:
		for _, elem := range n.Elements {
			walkExpr(elem, fn)
		}

	case *TupleLit:
		for _, elem := range n.Elements {
			walkExpr(elem, fn)
		}

	case *DictLit:
		for _, entry := range n.Entries {
			Walk(entry, fn)
		}

	case *DictEntry:
		walkExpr(n.Key, fn)
		walkExpr(n.Value, fn)

	case *RangeExpr:
		walkExpr(n.Start, fn)
		walkExpr(n.End, fn)

	case *FieldExpr:
		walkExpr(n.Target, fn)
		walkIdent(n.Field, fn)

	case *PathExpr:
		walkExpr(n.Target, fn)
		walkIdent(n.Segment, fn)

	case *CallExpr:
		walkExpr(n.Callee, fn)
		for _, arg := range n.Args {
			walkExpr(arg, fn)
		}

	case *UnaryExpr:
		walkExpr(n.Operand, fn)

	case *BinaryExpr:
		walkExpr(n.Left, fn)
		walkExpr(n.Right, fn)

	case *Ident, *IntLit, *FloatLit, *StringLit, *BoolLit, *NullLit, *BadExpr,
		*VoidType, *BreakStmt, *ContinueStmt:
		// leaves
	}
}

// Inspect calls fn for every node reachable from node, depth first.
func Inspect(node Node, fn func(Node)) {
	Walk(node, func(n Node) bool {
		fn(n)
		return true
	})
}

// Optional children are left nil by the parser; the helpers skip them.

func walkIdent(id *Ident, fn func(Node) bool) {
	if id != nil {
		Walk(id, fn)
	}
}

func walkBlock(b *Block, fn func(Node) bool) {
	if b != nil {
		Walk(b, fn)
	}
}

func walkExpr(e Expr, fn func(Node) bool) {
	if e != nil {
		Walk(e, fn)
	}
}

func walkType(t TypeExpr, fn func(Node) bool) {
	if t != nil {
		Walk(t, fn)
	}
}
