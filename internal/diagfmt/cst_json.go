package diagfmt

import (
	"encoding/json"
	"io"

	"hel/internal/ast"
	"hel/internal/source"
)

// CSTNode — одна вершина CST в JSON выводе.
type CSTNode struct {
	Kind     string      `json:"kind"`
	Name     string      `json:"name,omitempty"`
	Value    string      `json:"value,omitempty"`
	Exported bool        `json:"exported,omitempty"`
	Span     source.Span `json:"span"`
	Children []CSTNode   `json:"children,omitempty"`
}

// BuildModuleJSON строит JSON-представление модуля.
func BuildModuleJSON(b *ast.Builder, moduleID ast.ModuleID) CSTNode {
	jb := &jsonBuilder{b: b}
	return jb.module(moduleID)
}

// FormatModuleJSON выводит модуль в JSON формате.
func FormatModuleJSON(w io.Writer, b *ast.Builder, moduleID ast.ModuleID) error {
	node := BuildModuleJSON(b, moduleID)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(node)
}

type jsonBuilder struct {
	b *ast.Builder
}

func (jb *jsonBuilder) module(id ast.ModuleID) CSTNode {
	m := jb.b.Modules.Get(id)
	node := CSTNode{Kind: "Module", Span: m.Span}
	for _, entry := range m.Globals {
		g := jb.b.Items.Global(entry.Global)
		child := CSTNode{
			Kind:     "Global",
			Name:     jb.b.StringsInterner.MustLookup(g.Ident.Name),
			Exported: entry.Exported,
			Span:     g.Span,
			Children: []CSTNode{jb.typ(g.Type), jb.expr(g.Value)},
		}
		node.Children = append(node.Children, child)
	}
	for _, entry := range m.Items {
		node.Children = append(node.Children, jb.item(entry.Item, entry.Exported))
	}
	return node
}

func (jb *jsonBuilder) item(id ast.ItemID, exported bool) CSTNode {
	item := jb.b.Items.Get(id)
	switch item.Kind {
	case ast.ItemImport:
		imp, _ := jb.b.Items.Import(id)
		return CSTNode{
			Kind:     "Import",
			Name:     imp.Path.String(jb.b.StringsInterner),
			Exported: exported,
			Span:     item.Span,
		}
	case ast.ItemFn:
		fn, _ := jb.b.Items.Fn(id)
		node := CSTNode{
			Kind:     "Function",
			Name:     jb.b.StringsInterner.MustLookup(fn.Ident.Name),
			Exported: exported,
			Span:     item.Span,
		}
		for _, param := range fn.Params {
			node.Children = append(node.Children, CSTNode{
				Kind:     "Param",
				Name:     jb.b.StringsInterner.MustLookup(param.Name.Name),
				Span:     param.Name.Span,
				Children: []CSTNode{jb.typ(param.Type)},
			})
		}
		node.Children = append(node.Children,
			CSTNode{Kind: "Return", Span: jb.b.Types.Get(fn.Return).Span, Children: []CSTNode{jb.typ(fn.Return)}},
			CSTNode{Kind: "Body", Span: jb.b.Exprs.Get(fn.Body).Span, Children: []CSTNode{jb.expr(fn.Body)}},
		)
		return node
	case ast.ItemTypeDecl:
		decl, _ := jb.b.Items.TypeDecl(id)
		return CSTNode{
			Kind:     "TypeDecl",
			Name:     jb.b.StringsInterner.MustLookup(decl.Ident.Name),
			Exported: exported,
			Span:     item.Span,
			Children: []CSTNode{jb.typ(decl.Type)},
		}
	default:
		return CSTNode{Kind: "Item", Span: item.Span}
	}
}

func (jb *jsonBuilder) typ(id ast.TypeID) CSTNode {
	t := jb.b.Types.Get(id)
	if t == nil {
		return CSTNode{Kind: "NoType"}
	}
	node := CSTNode{Span: t.Span}
	switch t.Kind {
	case ast.TypePath:
		data, _ := jb.b.Types.Path(id)
		node.Kind = "Path"
		node.Name = data.Path.String(jb.b.StringsInterner)
	case ast.TypeRef:
		data, _ := jb.b.Types.Elem(id)
		node.Kind = "Reference"
		node.Children = []CSTNode{jb.typ(data.Inner)}
	case ast.TypeSlice:
		data, _ := jb.b.Types.Elem(id)
		node.Kind = "Slice"
		node.Children = []CSTNode{jb.typ(data.Inner)}
	case ast.TypeInPlaceDynArray:
		data, _ := jb.b.Types.Elem(id)
		node.Kind = "InPlaceDynamicArray"
		node.Children = []CSTNode{jb.typ(data.Inner)}
	case ast.TypeDynArray:
		data, _ := jb.b.Types.Elem(id)
		node.Kind = "DynamicArray"
		node.Children = []CSTNode{jb.typ(data.Inner)}
	case ast.TypeSizedArray:
		data, _ := jb.b.Types.SizedArray(id)
		node.Kind = "SizedArray"
		node.Children = []CSTNode{jb.typ(data.Elem), jb.expr(data.Size)}
	case ast.TypeTuple:
		data, _ := jb.b.Types.Tuple(id)
		node.Kind = "Tuple"
		for _, elem := range data.Elems {
			node.Children = append(node.Children, jb.typ(elem))
		}
	case ast.TypeFn:
		data, _ := jb.b.Types.Fn(id)
		node.Kind = "Function"
		for _, arg := range data.Args {
			node.Children = append(node.Children, jb.typ(arg))
		}
		node.Children = append(node.Children, jb.typ(data.Returns))
	case ast.TypeGenerator:
		data, _ := jb.b.Types.Generator(id)
		node.Kind = "Generator"
		node.Children = []CSTNode{jb.typ(data.Yields)}
		if data.Returns != ast.NoTypeID {
			node.Children = append(node.Children, jb.typ(data.Returns))
		}
	case ast.TypeStruct:
		data, _ := jb.b.Types.Struct(id)
		node.Kind = "Struct"
		for _, field := range data.Fields {
			node.Children = append(node.Children, CSTNode{
				Kind:     "Field",
				Name:     jb.b.StringsInterner.MustLookup(field.Name.Name),
				Span:     field.Name.Span,
				Children: []CSTNode{jb.typ(field.Type)},
			})
		}
	default:
		node.Kind = "Type"
	}
	return node
}

func (jb *jsonBuilder) expr(id ast.ExprID) CSTNode {
	e := jb.b.Exprs.Get(id)
	if e == nil {
		return CSTNode{Kind: "NoExpr"}
	}
	node := CSTNode{Span: e.Span}
	switch e.Kind {
	case ast.ExprPath:
		data, _ := jb.b.Exprs.Path(id)
		node.Kind = "Path"
		node.Name = data.Path.String(jb.b.StringsInterner)
	case ast.ExprLit:
		data, _ := jb.b.Exprs.Literal(id)
		node.Kind = "Literal"
		tp := treePrinter{b: jb.b}
		node.Value = tp.literal(data)
	case ast.ExprBinary:
		data, _ := jb.b.Exprs.Binary(id)
		node.Kind = "Binary"
		node.Value = data.Op.String()
		node.Children = []CSTNode{jb.expr(data.Left), jb.expr(data.Right)}
	case ast.ExprUnary:
		data, _ := jb.b.Exprs.Unary(id)
		node.Kind = "Unary"
		node.Value = data.Op.String()
		node.Children = []CSTNode{jb.expr(data.Operand)}
	case ast.ExprEvoc:
		data, _ := jb.b.Exprs.Evoc(id)
		node.Kind = "Evoc"
		node.Children = []CSTNode{jb.expr(data.Func)}
		for _, arg := range data.Args {
			node.Children = append(node.Children, jb.expr(arg))
		}
	case ast.ExprIndex:
		data, _ := jb.b.Exprs.Index(id)
		node.Kind = "Indexing"
		node.Children = []CSTNode{jb.expr(data.Into), jb.expr(data.Index)}
	case ast.ExprField:
		data, _ := jb.b.Exprs.Field(id)
		node.Kind = "FieldAccess"
		node.Name = jb.b.StringsInterner.MustLookup(data.Field.Name)
		node.Children = []CSTNode{jb.expr(data.On)}
	case ast.ExprTuple:
		data, _ := jb.b.Exprs.Tuple(id)
		node.Kind = "Tuple"
		for _, elem := range data.Elems {
			node.Children = append(node.Children, jb.expr(elem))
		}
	case ast.ExprDynArray:
		data, _ := jb.b.Exprs.Array(id)
		node.Kind = "DynamicArray"
		for _, elem := range data.Elems {
			node.Children = append(node.Children, jb.expr(elem))
		}
	case ast.ExprSizedArray:
		data, _ := jb.b.Exprs.Array(id)
		node.Kind = "SizedArray"
		for _, elem := range data.Elems {
			node.Children = append(node.Children, jb.expr(elem))
		}
	case ast.ExprStruct:
		data, _ := jb.b.Exprs.Struct(id)
		node.Kind = "Struct"
		node.Name = data.Type.String(jb.b.StringsInterner)
		for _, field := range data.Fields {
			node.Children = append(node.Children, CSTNode{
				Kind:     "Field",
				Name:     jb.b.StringsInterner.MustLookup(field.Name.Name),
				Span:     field.Name.Span,
				Children: []CSTNode{jb.expr(field.Value)},
			})
		}
	case ast.ExprIf:
		data, _ := jb.b.Exprs.If(id)
		node.Kind = "If"
		node.Children = []CSTNode{jb.expr(data.Cond), jb.stmt(data.Then)}
		if data.Else != ast.NoStmtID {
			node.Children = append(node.Children, jb.stmt(data.Else))
		}
	case ast.ExprLoop:
		data, _ := jb.b.Exprs.Loop(id)
		node.Kind = "Loop"
		node.Children = []CSTNode{jb.expr(data.Body)}
	case ast.ExprBlock:
		data, _ := jb.b.Exprs.Block(id)
		node.Kind = "Block"
		for _, stmt := range data.Stmts {
			node.Children = append(node.Children, jb.stmt(stmt))
		}
	case ast.ExprClosure:
		data, _ := jb.b.Exprs.Closure(id)
		node.Kind = "Closure"
		for _, param := range data.Params {
			node.Children = append(node.Children, CSTNode{
				Kind: "Param",
				Name: jb.b.StringsInterner.MustLookup(param.Name),
				Span: param.Span,
			})
		}
		node.Children = append(node.Children, jb.expr(data.Body))
	default:
		node.Kind = "Expr"
	}
	return node
}

func (jb *jsonBuilder) stmt(id ast.StmtID) CSTNode {
	s := jb.b.Stmts.Get(id)
	if s == nil {
		return CSTNode{Kind: "NoStmt"}
	}
	node := CSTNode{Span: s.Span}
	switch s.Kind {
	case ast.StmtExpr:
		data, _ := jb.b.Stmts.Expr(id)
		node.Kind = "ExprStmt"
		node.Children = []CSTNode{jb.expr(data.Expr)}
	case ast.StmtLet:
		data, _ := jb.b.Stmts.Let(id)
		node.Kind = "Let"
		node.Name = jb.b.StringsInterner.MustLookup(data.Ident.Name)
		if data.Type != ast.NoTypeID {
			node.Children = append(node.Children, jb.typ(data.Type))
		}
		node.Children = append(node.Children, jb.expr(data.Value))
	case ast.StmtAssign:
		data, _ := jb.b.Stmts.Assign(id)
		node.Kind = "Assign"
		node.Value = data.Op.String()
		node.Children = []CSTNode{jb.expr(data.Target), jb.expr(data.Value)}
	case ast.StmtFor:
		data, _ := jb.b.Stmts.For(id)
		node.Kind = "For"
		node.Name = jb.b.StringsInterner.MustLookup(data.Var.Name)
		node.Children = []CSTNode{jb.expr(data.Iter), jb.stmt(data.Body)}
	case ast.StmtWhile:
		data, _ := jb.b.Stmts.While(id)
		node.Kind = "While"
		node.Children = []CSTNode{jb.expr(data.Cond), jb.stmt(data.Body)}
	case ast.StmtReturn:
		data, _ := jb.b.Stmts.Value(id)
		node.Kind = "Return"
		node.Children = []CSTNode{jb.expr(data.Value)}
	case ast.StmtYield:
		data, _ := jb.b.Stmts.Value(id)
		node.Kind = "Yield"
		node.Children = []CSTNode{jb.expr(data.Value)}
	case ast.StmtBreak:
		data, _ := jb.b.Stmts.Value(id)
		node.Kind = "Break"
		node.Children = []CSTNode{jb.expr(data.Value)}
	default:
		node.Kind = "Stmt"
	}
	return node
}
