package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"hel/internal/ast"
	"hel/internal/source"
)

// FormatModuleTree печатает CST модуля деревом с отступами.
// Каждая строка: вид узла, полезная нагрузка и span.
func FormatModuleTree(w io.Writer, b *ast.Builder, moduleID ast.ModuleID) error {
	tp := &treePrinter{w: w, b: b}
	tp.module(moduleID)
	return tp.err
}

// FormatExprTree печатает одно выражение деревом (REPL).
func FormatExprTree(w io.Writer, b *ast.Builder, exprID ast.ExprID) error {
	tp := &treePrinter{w: w, b: b}
	tp.expr(0, exprID)
	return tp.err
}

type treePrinter struct {
	w   io.Writer
	b   *ast.Builder
	err error
}

func (tp *treePrinter) line(depth int, format string, args ...any) {
	if tp.err != nil {
		return
	}
	_, tp.err = fmt.Fprintf(tp.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (tp *treePrinter) name(id source.StringID) string {
	return tp.b.StringsInterner.MustLookup(id)
}

func (tp *treePrinter) path(p ast.Path) string {
	return p.String(tp.b.StringsInterner)
}

func (tp *treePrinter) module(id ast.ModuleID) {
	m := tp.b.Modules.Get(id)
	if m == nil {
		tp.line(0, "Module <nil>")
		return
	}
	tp.line(0, "Module %s", m.Span)
	for _, entry := range m.Globals {
		g := tp.b.Items.Global(entry.Global)
		tp.line(1, "Global%s %s %s", exportedMark(entry.Exported), tp.name(g.Ident.Name), g.Span)
		tp.typ(2, g.Type)
		tp.expr(2, g.Value)
	}
	for _, entry := range m.Items {
		tp.item(1, entry.Item, entry.Exported)
	}
}

func exportedMark(exported bool) string {
	if exported {
		return " @exported"
	}
	return ""
}

func (tp *treePrinter) item(depth int, id ast.ItemID, exported bool) {
	item := tp.b.Items.Get(id)
	if item == nil {
		tp.line(depth, "Item <nil>")
		return
	}
	switch item.Kind {
	case ast.ItemImport:
		imp, _ := tp.b.Items.Import(id)
		tp.line(depth, "Import%s %s %s", exportedMark(exported), tp.path(imp.Path), item.Span)
	case ast.ItemFn:
		fn, _ := tp.b.Items.Fn(id)
		tp.line(depth, "Function%s %s %s", exportedMark(exported), tp.name(fn.Ident.Name), item.Span)
		for _, param := range fn.Params {
			tp.line(depth+1, "param %s", tp.name(param.Name.Name))
			tp.typ(depth+2, param.Type)
		}
		tp.line(depth+1, "return")
		tp.typ(depth+2, fn.Return)
		tp.line(depth+1, "body")
		tp.expr(depth+2, fn.Body)
	case ast.ItemTypeDecl:
		decl, _ := tp.b.Items.TypeDecl(id)
		tp.line(depth, "TypeDecl%s %s %s", exportedMark(exported), tp.name(decl.Ident.Name), item.Span)
		tp.typ(depth+1, decl.Type)
	default:
		tp.line(depth, "Item?")
	}
}

func (tp *treePrinter) typ(depth int, id ast.TypeID) {
	t := tp.b.Types.Get(id)
	if t == nil {
		tp.line(depth, "Type <none>")
		return
	}
	switch t.Kind {
	case ast.TypePath:
		data, _ := tp.b.Types.Path(id)
		tp.line(depth, "Path %s %s", tp.path(data.Path), t.Span)
	case ast.TypeRef:
		data, _ := tp.b.Types.Elem(id)
		tp.line(depth, "Reference %s", t.Span)
		tp.typ(depth+1, data.Inner)
	case ast.TypeSlice:
		data, _ := tp.b.Types.Elem(id)
		tp.line(depth, "Slice %s", t.Span)
		tp.typ(depth+1, data.Inner)
	case ast.TypeInPlaceDynArray:
		data, _ := tp.b.Types.Elem(id)
		tp.line(depth, "InPlaceDynamicArray %s", t.Span)
		tp.typ(depth+1, data.Inner)
	case ast.TypeDynArray:
		data, _ := tp.b.Types.Elem(id)
		tp.line(depth, "DynamicArray %s", t.Span)
		tp.typ(depth+1, data.Inner)
	case ast.TypeSizedArray:
		data, _ := tp.b.Types.SizedArray(id)
		tp.line(depth, "SizedArray %s", t.Span)
		tp.typ(depth+1, data.Elem)
		tp.expr(depth+1, data.Size)
	case ast.TypeTuple:
		data, _ := tp.b.Types.Tuple(id)
		tp.line(depth, "Tuple(%d) %s", len(data.Elems), t.Span)
		for _, elem := range data.Elems {
			tp.typ(depth+1, elem)
		}
	case ast.TypeFn:
		data, _ := tp.b.Types.Fn(id)
		tp.line(depth, "Function %s", t.Span)
		for _, arg := range data.Args {
			tp.typ(depth+1, arg)
		}
		tp.line(depth+1, "returns")
		tp.typ(depth+2, data.Returns)
	case ast.TypeGenerator:
		data, _ := tp.b.Types.Generator(id)
		tp.line(depth, "Generator %s", t.Span)
		tp.typ(depth+1, data.Yields)
		if data.Returns != ast.NoTypeID {
			tp.typ(depth+1, data.Returns)
		}
	case ast.TypeStruct:
		data, _ := tp.b.Types.Struct(id)
		tp.line(depth, "Struct(%d) %s", len(data.Fields), t.Span)
		for _, field := range data.Fields {
			tp.line(depth+1, "field %s", tp.name(field.Name.Name))
			tp.typ(depth+2, field.Type)
		}
	default:
		tp.line(depth, "Type?")
	}
}

func (tp *treePrinter) expr(depth int, id ast.ExprID) {
	e := tp.b.Exprs.Get(id)
	if e == nil {
		tp.line(depth, "Expr <none>")
		return
	}
	switch e.Kind {
	case ast.ExprPath:
		data, _ := tp.b.Exprs.Path(id)
		tp.line(depth, "Path %s %s", tp.path(data.Path), e.Span)
	case ast.ExprLit:
		data, _ := tp.b.Exprs.Literal(id)
		tp.line(depth, "Literal %s %s", tp.literal(data), e.Span)
	case ast.ExprBinary:
		data, _ := tp.b.Exprs.Binary(id)
		tp.line(depth, "Binary %s %s", data.Op, e.Span)
		tp.expr(depth+1, data.Left)
		tp.expr(depth+1, data.Right)
	case ast.ExprUnary:
		data, _ := tp.b.Exprs.Unary(id)
		tp.line(depth, "Unary %s %s", data.Op, e.Span)
		tp.expr(depth+1, data.Operand)
	case ast.ExprEvoc:
		data, _ := tp.b.Exprs.Evoc(id)
		tp.line(depth, "Evoc(%d) %s", len(data.Args), e.Span)
		tp.expr(depth+1, data.Func)
		for _, arg := range data.Args {
			tp.expr(depth+1, arg)
		}
	case ast.ExprIndex:
		data, _ := tp.b.Exprs.Index(id)
		tp.line(depth, "Indexing %s", e.Span)
		tp.expr(depth+1, data.Into)
		tp.expr(depth+1, data.Index)
	case ast.ExprField:
		data, _ := tp.b.Exprs.Field(id)
		tp.line(depth, "FieldAccess .%s %s", tp.name(data.Field.Name), e.Span)
		tp.expr(depth+1, data.On)
	case ast.ExprTuple:
		data, _ := tp.b.Exprs.Tuple(id)
		tp.line(depth, "Tuple(%d) %s", len(data.Elems), e.Span)
		for _, elem := range data.Elems {
			tp.expr(depth+1, elem)
		}
	case ast.ExprDynArray:
		data, _ := tp.b.Exprs.Array(id)
		tp.line(depth, "DynamicArray(%d) %s", len(data.Elems), e.Span)
		for _, elem := range data.Elems {
			tp.expr(depth+1, elem)
		}
	case ast.ExprSizedArray:
		data, _ := tp.b.Exprs.Array(id)
		count := ""
		if data.HasCount {
			count = " * " + strconv.FormatUint(data.Count, 10)
		}
		tp.line(depth, "SizedArray(%d)%s %s", len(data.Elems), count, e.Span)
		for _, elem := range data.Elems {
			tp.expr(depth+1, elem)
		}
	case ast.ExprStruct:
		data, _ := tp.b.Exprs.Struct(id)
		tp.line(depth, "Struct %s %s", tp.path(data.Type), e.Span)
		for _, field := range data.Fields {
			tp.line(depth+1, "field %s", tp.name(field.Name.Name))
			tp.expr(depth+2, field.Value)
		}
	case ast.ExprIf:
		data, _ := tp.b.Exprs.If(id)
		tp.line(depth, "If %s", e.Span)
		tp.expr(depth+1, data.Cond)
		tp.line(depth+1, "then")
		tp.stmt(depth+2, data.Then)
		if data.Else != ast.NoStmtID {
			tp.line(depth+1, "else")
			tp.stmt(depth+2, data.Else)
		}
	case ast.ExprLoop:
		data, _ := tp.b.Exprs.Loop(id)
		tp.line(depth, "Loop %s", e.Span)
		tp.expr(depth+1, data.Body)
	case ast.ExprBlock:
		data, _ := tp.b.Exprs.Block(id)
		tp.line(depth, "Block(%d) %s", len(data.Stmts), e.Span)
		for _, stmt := range data.Stmts {
			tp.stmt(depth+1, stmt)
		}
	case ast.ExprClosure:
		data, _ := tp.b.Exprs.Closure(id)
		names := make([]string, 0, len(data.Params))
		for _, param := range data.Params {
			names = append(names, tp.name(param.Name))
		}
		tp.line(depth, "Closure(%s) %s", strings.Join(names, ", "), e.Span)
		tp.expr(depth+1, data.Body)
	default:
		tp.line(depth, "Expr?")
	}
}

func (tp *treePrinter) literal(data *ast.ExprLitData) string {
	switch data.Kind {
	case ast.LitString:
		return strconv.Quote(tp.b.StringsInterner.MustLookup(data.Str))
	case ast.LitInt:
		return strconv.FormatUint(data.Int, 10)
	case ast.LitFloat:
		return strconv.FormatFloat(data.Float, 'g', -1, 64)
	case ast.LitTrue:
		return "true"
	case ast.LitFalse:
		return "false"
	case ast.LitNull:
		return "null"
	default:
		return "?"
	}
}

func (tp *treePrinter) stmt(depth int, id ast.StmtID) {
	s := tp.b.Stmts.Get(id)
	if s == nil {
		tp.line(depth, "Stmt <none>")
		return
	}
	switch s.Kind {
	case ast.StmtExpr:
		data, _ := tp.b.Stmts.Expr(id)
		tp.line(depth, "ExprStmt %s", s.Span)
		tp.expr(depth+1, data.Expr)
	case ast.StmtLet:
		data, _ := tp.b.Stmts.Let(id)
		tp.line(depth, "Let %s %s", tp.name(data.Ident.Name), s.Span)
		if data.Type != ast.NoTypeID {
			tp.typ(depth+1, data.Type)
		}
		tp.expr(depth+1, data.Value)
	case ast.StmtAssign:
		data, _ := tp.b.Stmts.Assign(id)
		tp.line(depth, "Assign %s %s", data.Op, s.Span)
		tp.expr(depth+1, data.Target)
		tp.expr(depth+1, data.Value)
	case ast.StmtFor:
		data, _ := tp.b.Stmts.For(id)
		tp.line(depth, "For %s %s", tp.name(data.Var.Name), s.Span)
		tp.expr(depth+1, data.Iter)
		tp.stmt(depth+1, data.Body)
	case ast.StmtWhile:
		data, _ := tp.b.Stmts.While(id)
		tp.line(depth, "While %s", s.Span)
		tp.expr(depth+1, data.Cond)
		tp.stmt(depth+1, data.Body)
	case ast.StmtReturn:
		data, _ := tp.b.Stmts.Value(id)
		tp.line(depth, "Return %s", s.Span)
		tp.expr(depth+1, data.Value)
	case ast.StmtYield:
		data, _ := tp.b.Stmts.Value(id)
		tp.line(depth, "Yield %s", s.Span)
		tp.expr(depth+1, data.Value)
	case ast.StmtBreak:
		data, _ := tp.b.Stmts.Value(id)
		tp.line(depth, "Break %s", s.Span)
		tp.expr(depth+1, data.Value)
	default:
		tp.line(depth, "Stmt?")
	}
}
