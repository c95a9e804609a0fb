package parser_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"hel/internal/ast"
	"hel/internal/diag"
	"hel/internal/lexer"
	"hel/internal/parser"
	"hel/internal/source"
)

// makeParser создаёт парсер над виртуальным файлом.
func makeParser(t *testing.T, input string) (*parser.Parser, *ast.Builder, *diag.Bag, *lexer.Lexer) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.hel", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	p := parser.New(lx, builder, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	return p, builder, bag, lx
}

func expectClean(t *testing.T, input string, bag *diag.Bag) {
	t.Helper()
	if bag.Len() != 0 {
		msgs := make([]string, 0, bag.Len())
		for _, d := range bag.Items() {
			msgs = append(msgs, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
		}
		t.Fatalf("%q: unexpected diagnostics: %s", input, strings.Join(msgs, "; "))
	}
}

// describeType рендерит тип в каноническую строку для компактных сравнений.
func describeType(b *ast.Builder, id ast.TypeID) string {
	node := b.Types.Get(id)
	if node == nil {
		return "<nil>"
	}
	switch node.Kind {
	case ast.TypePath:
		data, _ := b.Types.Path(id)
		return data.Path.String(b.StringsInterner)
	case ast.TypeRef:
		data, _ := b.Types.Elem(id)
		return "&" + describeType(b, data.Inner)
	case ast.TypeSlice:
		data, _ := b.Types.Elem(id)
		return "&[" + describeType(b, data.Inner) + "]"
	case ast.TypeInPlaceDynArray:
		data, _ := b.Types.Elem(id)
		return "[" + describeType(b, data.Inner) + "]"
	case ast.TypeDynArray:
		data, _ := b.Types.Elem(id)
		return "[" + describeType(b, data.Inner) + "..]"
	case ast.TypeSizedArray:
		data, _ := b.Types.SizedArray(id)
		return "[" + describeType(b, data.Elem) + " * " + describeExpr(b, data.Size) + "]"
	case ast.TypeTuple:
		data, _ := b.Types.Tuple(id)
		parts := make([]string, 0, len(data.Elems))
		for _, elem := range data.Elems {
			parts = append(parts, describeType(b, elem))
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case ast.TypeFn:
		data, _ := b.Types.Fn(id)
		parts := make([]string, 0, len(data.Args))
		for _, arg := range data.Args {
			parts = append(parts, describeType(b, arg))
		}
		return "fn (" + strings.Join(parts, ", ") + ") -> " + describeType(b, data.Returns)
	case ast.TypeGenerator:
		data, _ := b.Types.Generator(id)
		if data.Returns == ast.NoTypeID {
			return "{" + describeType(b, data.Yields) + "}"
		}
		return "{" + describeType(b, data.Yields) + ", " + describeType(b, data.Returns) + "}"
	case ast.TypeStruct:
		data, _ := b.Types.Struct(id)
		parts := make([]string, 0, len(data.Fields))
		for _, field := range data.Fields {
			parts = append(parts,
				b.StringsInterner.MustLookup(field.Name.Name)+": "+describeType(b, field.Type))
		}
		return "struct { " + strings.Join(parts, ", ") + " }"
	default:
		return "<?>"
	}
}

// describeExpr рендерит выражение в s-expression строку.
func describeExpr(b *ast.Builder, id ast.ExprID) string {
	node := b.Exprs.Get(id)
	if node == nil {
		return "<nil>"
	}
	switch node.Kind {
	case ast.ExprPath:
		data, _ := b.Exprs.Path(id)
		return data.Path.String(b.StringsInterner)
	case ast.ExprLit:
		data, _ := b.Exprs.Literal(id)
		switch data.Kind {
		case ast.LitString:
			return strconv.Quote(b.StringsInterner.MustLookup(data.Str))
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
		}
		return "<lit?>"
	case ast.ExprBinary:
		data, _ := b.Exprs.Binary(id)
		return "(" + data.Op.String() + " " + describeExpr(b, data.Left) + " " + describeExpr(b, data.Right) + ")"
	case ast.ExprUnary:
		data, _ := b.Exprs.Unary(id)
		return "(" + data.Op.String() + " " + describeExpr(b, data.Operand) + ")"
	case ast.ExprEvoc:
		data, _ := b.Exprs.Evoc(id)
		parts := []string{"call", describeExpr(b, data.Func)}
		for _, arg := range data.Args {
			parts = append(parts, describeExpr(b, arg))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ast.ExprIndex:
		data, _ := b.Exprs.Index(id)
		return "(index " + describeExpr(b, data.Into) + " " + describeExpr(b, data.Index) + ")"
	case ast.ExprField:
		data, _ := b.Exprs.Field(id)
		return "(field " + describeExpr(b, data.On) + " " + b.StringsInterner.MustLookup(data.Field.Name) + ")"
	case ast.ExprTuple:
		data, _ := b.Exprs.Tuple(id)
		parts := []string{"tuple"}
		for _, elem := range data.Elems {
			parts = append(parts, describeExpr(b, elem))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ast.ExprDynArray:
		data, _ := b.Exprs.Array(id)
		parts := []string{"dynarray"}
		for _, elem := range data.Elems {
			parts = append(parts, describeExpr(b, elem))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ast.ExprSizedArray:
		data, _ := b.Exprs.Array(id)
		parts := []string{"sizedarray"}
		for _, elem := range data.Elems {
			parts = append(parts, describeExpr(b, elem))
		}
		if data.HasCount {
			parts = append(parts, "*", strconv.FormatUint(data.Count, 10))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ast.ExprStruct:
		data, _ := b.Exprs.Struct(id)
		parts := []string{"struct", data.Type.String(b.StringsInterner)}
		for _, field := range data.Fields {
			parts = append(parts,
				"("+b.StringsInterner.MustLookup(field.Name.Name)+" "+describeExpr(b, field.Value)+")")
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ast.ExprIf:
		data, _ := b.Exprs.If(id)
		s := "(if " + describeExpr(b, data.Cond) + " " + describeStmt(b, data.Then)
		if data.Else != ast.NoStmtID {
			s += " " + describeStmt(b, data.Else)
		}
		return s + ")"
	case ast.ExprLoop:
		data, _ := b.Exprs.Loop(id)
		return "(loop " + describeExpr(b, data.Body) + ")"
	case ast.ExprBlock:
		data, _ := b.Exprs.Block(id)
		parts := []string{"block"}
		for _, stmt := range data.Stmts {
			parts = append(parts, describeStmt(b, stmt))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ast.ExprClosure:
		data, _ := b.Exprs.Closure(id)
		names := make([]string, 0, len(data.Params))
		for _, param := range data.Params {
			names = append(names, b.StringsInterner.MustLookup(param.Name))
		}
		return "(closure (" + strings.Join(names, " ") + ") " + describeExpr(b, data.Body) + ")"
	default:
		return "<expr?>"
	}
}

// describeStmt рендерит statement в s-expression строку.
func describeStmt(b *ast.Builder, id ast.StmtID) string {
	node := b.Stmts.Get(id)
	if node == nil {
		return "<nil>"
	}
	switch node.Kind {
	case ast.StmtExpr:
		data, _ := b.Stmts.Expr(id)
		return describeExpr(b, data.Expr)
	case ast.StmtLet:
		data, _ := b.Stmts.Let(id)
		s := "(let " + b.StringsInterner.MustLookup(data.Ident.Name)
		if data.Type != ast.NoTypeID {
			s += " : " + describeType(b, data.Type)
		}
		return s + " = " + describeExpr(b, data.Value) + ")"
	case ast.StmtAssign:
		data, _ := b.Stmts.Assign(id)
		return "(" + data.Op.String() + " " + describeExpr(b, data.Target) + " " + describeExpr(b, data.Value) + ")"
	case ast.StmtFor:
		data, _ := b.Stmts.For(id)
		return "(for " + b.StringsInterner.MustLookup(data.Var.Name) + " " +
			describeExpr(b, data.Iter) + " " + describeStmt(b, data.Body) + ")"
	case ast.StmtWhile:
		data, _ := b.Stmts.While(id)
		return "(while " + describeExpr(b, data.Cond) + " " + describeStmt(b, data.Body) + ")"
	case ast.StmtReturn:
		data, _ := b.Stmts.Value(id)
		return "(return " + describeExpr(b, data.Value) + ")"
	case ast.StmtYield:
		data, _ := b.Stmts.Value(id)
		return "(yield " + describeExpr(b, data.Value) + ")"
	case ast.StmtBreak:
		data, _ := b.Stmts.Value(id)
		return "(break " + describeExpr(b, data.Value) + ")"
	default:
		return "<stmt?>"
	}
}
