package ast

import (
	"hel/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Paths    *Arena[ExprPathData]
	Literals *Arena[ExprLitData]
	Binaries *Arena[ExprBinaryData]
	Unaries  *Arena[ExprUnaryData]
	Evocs    *Arena[ExprEvocData]
	Indices  *Arena[ExprIndexData]
	Fields   *Arena[ExprFieldData]
	Tuples   *Arena[ExprTupleData]
	Arrays   *Arena[ExprArrayData]
	Structs  *Arena[ExprStructData]
	Ifs      *Arena[ExprIfData]
	Loops    *Arena[ExprLoopData]
	Blocks   *Arena[ExprBlockData]
	Closures *Arena[ExprClosureData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Paths:    NewArena[ExprPathData](capHint),
		Literals: NewArena[ExprLitData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
		Unaries:  NewArena[ExprUnaryData](capHint),
		Evocs:    NewArena[ExprEvocData](capHint),
		Indices:  NewArena[ExprIndexData](capHint),
		Fields:   NewArena[ExprFieldData](capHint),
		Tuples:   NewArena[ExprTupleData](capHint),
		Arrays:   NewArena[ExprArrayData](capHint),
		Structs:  NewArena[ExprStructData](capHint),
		Ifs:      NewArena[ExprIfData](capHint),
		Loops:    NewArena[ExprLoopData](capHint),
		Blocks:   NewArena[ExprBlockData](capHint),
		Closures: NewArena[ExprClosureData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewPath creates a new path expression.
func (e *Exprs) NewPath(span source.Span, path Path) ExprID {
	payload := e.Paths.Allocate(ExprPathData{Path: path})
	return e.new(ExprPath, span, PayloadID(payload))
}

// Path returns the path data for the given expression ID.
func (e *Exprs) Path(id ExprID) (*ExprPathData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprPath {
		return nil, false
	}
	return e.Paths.Get(uint32(expr.Payload)), true
}

// NewLiteral creates a new literal expression.
func (e *Exprs) NewLiteral(span source.Span, data ExprLitData) ExprID {
	payload := e.Literals.Allocate(data)
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal data for the given expression ID.
func (e *Exprs) Literal(id ExprID) (*ExprLitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewUnary creates a new unary expression.
func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the unary data for the given expression ID.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewEvoc creates a new invocation expression.
func (e *Exprs) NewEvoc(span source.Span, fn ExprID, args []ExprID) ExprID {
	payload := e.Evocs.Allocate(ExprEvocData{Func: fn, Args: args})
	return e.new(ExprEvoc, span, PayloadID(payload))
}

// Evoc returns the invocation data for the given expression ID.
func (e *Exprs) Evoc(id ExprID) (*ExprEvocData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprEvoc {
		return nil, false
	}
	return e.Evocs.Get(uint32(expr.Payload)), true
}

// NewIndex creates a new indexing expression.
func (e *Exprs) NewIndex(span source.Span, into, index ExprID) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Into: into, Index: index})
	return e.new(ExprIndex, span, PayloadID(payload))
}

// Index returns the indexing data for the given expression ID.
func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}

// NewField creates a new field access expression.
func (e *Exprs) NewField(span source.Span, on ExprID, field Ident) ExprID {
	payload := e.Fields.Allocate(ExprFieldData{On: on, Field: field})
	return e.new(ExprField, span, PayloadID(payload))
}

// Field returns the field access data for the given expression ID.
func (e *Exprs) Field(id ExprID) (*ExprFieldData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprField {
		return nil, false
	}
	return e.Fields.Get(uint32(expr.Payload)), true
}

// NewTuple creates a new tuple expression.
func (e *Exprs) NewTuple(span source.Span, elems []ExprID) ExprID {
	payload := e.Tuples.Allocate(ExprTupleData{Elems: elems})
	return e.new(ExprTuple, span, PayloadID(payload))
}

// Tuple returns the tuple data for the given expression ID.
func (e *Exprs) Tuple(id ExprID) (*ExprTupleData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTuple {
		return nil, false
	}
	return e.Tuples.Get(uint32(expr.Payload)), true
}

// NewDynArray creates a dynamic array literal.
func (e *Exprs) NewDynArray(span source.Span, elems []ExprID) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{Elems: elems})
	return e.new(ExprDynArray, span, PayloadID(payload))
}

// NewSizedArray creates a sized array literal with a repeat count.
func (e *Exprs) NewSizedArray(span source.Span, elems []ExprID, hasCount bool, count uint64) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{Elems: elems, HasCount: hasCount, Count: count})
	return e.new(ExprSizedArray, span, PayloadID(payload))
}

// Array returns the array data for dynamic and sized array literals.
func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	expr := e.Get(id)
	if expr == nil || (expr.Kind != ExprDynArray && expr.Kind != ExprSizedArray) {
		return nil, false
	}
	return e.Arrays.Get(uint32(expr.Payload)), true
}

// NewStruct creates a struct construction expression.
func (e *Exprs) NewStruct(span source.Span, ty Path, fields []FieldInit) ExprID {
	payload := e.Structs.Allocate(ExprStructData{Type: ty, Fields: fields})
	return e.new(ExprStruct, span, PayloadID(payload))
}

// Struct returns the struct construction data.
func (e *Exprs) Struct(id ExprID) (*ExprStructData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprStruct {
		return nil, false
	}
	return e.Structs.Get(uint32(expr.Payload)), true
}

// NewIf creates a conditional expression; els may be NoStmtID.
func (e *Exprs) NewIf(span source.Span, cond ExprID, then, els StmtID) ExprID {
	payload := e.Ifs.Allocate(ExprIfData{Cond: cond, Then: then, Else: els})
	return e.new(ExprIf, span, PayloadID(payload))
}

// If returns the conditional data.
func (e *Exprs) If(id ExprID) (*ExprIfData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIf {
		return nil, false
	}
	return e.Ifs.Get(uint32(expr.Payload)), true
}

// NewLoop creates a loop expression.
func (e *Exprs) NewLoop(span source.Span, body ExprID) ExprID {
	payload := e.Loops.Allocate(ExprLoopData{Body: body})
	return e.new(ExprLoop, span, PayloadID(payload))
}

// Loop returns the loop data.
func (e *Exprs) Loop(id ExprID) (*ExprLoopData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLoop {
		return nil, false
	}
	return e.Loops.Get(uint32(expr.Payload)), true
}

// NewBlock creates a block expression.
func (e *Exprs) NewBlock(span source.Span, stmts []StmtID) ExprID {
	payload := e.Blocks.Allocate(ExprBlockData{Stmts: stmts})
	return e.new(ExprBlock, span, PayloadID(payload))
}

// Block returns the block data.
func (e *Exprs) Block(id ExprID) (*ExprBlockData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBlock {
		return nil, false
	}
	return e.Blocks.Get(uint32(expr.Payload)), true
}

// NewClosure creates a closure expression.
func (e *Exprs) NewClosure(span source.Span, params []Ident, body ExprID) ExprID {
	payload := e.Closures.Allocate(ExprClosureData{Params: params, Body: body})
	return e.new(ExprClosure, span, PayloadID(payload))
}

// Closure returns the closure data.
func (e *Exprs) Closure(id ExprID) (*ExprClosureData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprClosure {
		return nil, false
	}
	return e.Closures.Get(uint32(expr.Payload)), true
}
