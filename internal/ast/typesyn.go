package ast

import "hel/internal/source"

// TypeKind enumerates kinds of type expressions.
type TypeKind uint8

const (
	// TypeInvalid represents an invalid type expression.
	TypeInvalid TypeKind = iota
	// TypePath represents a named type: path::to::type.
	TypePath
	// TypeRef represents a reference type: &T.
	TypeRef
	// TypeTuple represents a tuple type: (A, B).
	TypeTuple
	// TypeInPlaceDynArray represents an in-place dynamic array: [T].
	TypeInPlaceDynArray
	// TypeSizedArray represents a sized array: [T * n].
	TypeSizedArray
	// TypeDynArray represents a dynamic array: [T..].
	TypeDynArray
	// TypeSlice represents a slice: &[T].
	TypeSlice
	// TypeFn represents a function type: fn (A, B) -> R.
	TypeFn
	// TypeGenerator represents a generator type: {Y} or {Y, R}.
	TypeGenerator
	// TypeStruct represents a structural type: struct { x: T, ... }.
	TypeStruct
)

// TypeExpr represents a type expression in the CST.
type TypeExpr struct {
	Kind    TypeKind
	Span    source.Span
	Payload PayloadID
}

// TypePathData is the payload for TypePath.
type TypePathData struct {
	Path Path
}

// TypeElemData is the shared payload for the single-element wrappers:
// TypeRef, TypeInPlaceDynArray, TypeDynArray, and TypeSlice.
type TypeElemData struct {
	Inner TypeID
}

// TypeSizedData is the payload for TypeSizedArray; Size is an expression.
type TypeSizedData struct {
	Elem TypeID
	Size ExprID
}

// TypeTupleData is the payload for TypeTuple.
type TypeTupleData struct {
	Elems []TypeID
}

// TypeFnData is the payload for TypeFn.
type TypeFnData struct {
	Args    []TypeID
	Returns TypeID
}

// TypeGeneratorData is the payload for TypeGenerator.
// Returns == NoTypeID means the generator yields only.
type TypeGeneratorData struct {
	Yields  TypeID
	Returns TypeID
}

// TypeField is one named field of a structural type. Order is source order.
type TypeField struct {
	Name Ident
	Type TypeID
}

// TypeStructData is the payload for TypeStruct.
type TypeStructData struct {
	Fields []TypeField
}

// TypeExprs manages allocation of type expressions.
type TypeExprs struct {
	Arena      *Arena[TypeExpr]
	Paths      *Arena[TypePathData]
	Elems      *Arena[TypeElemData]
	Sized      *Arena[TypeSizedData]
	Tuples     *Arena[TypeTupleData]
	Fns        *Arena[TypeFnData]
	Generators *Arena[TypeGeneratorData]
	Structs    *Arena[TypeStructData]
}

// NewTypeExprs creates a TypeExprs with all payload arenas initialized.
func NewTypeExprs(capHint uint) *TypeExprs {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &TypeExprs{
		Arena:      NewArena[TypeExpr](capHint),
		Paths:      NewArena[TypePathData](capHint),
		Elems:      NewArena[TypeElemData](capHint),
		Sized:      NewArena[TypeSizedData](capHint),
		Tuples:     NewArena[TypeTupleData](capHint),
		Fns:        NewArena[TypeFnData](capHint),
		Generators: NewArena[TypeGeneratorData](capHint),
		Structs:    NewArena[TypeStructData](capHint),
	}
}

func (t *TypeExprs) new(kind TypeKind, span source.Span, payload PayloadID) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the type expression with the given ID.
func (t *TypeExprs) Get(id TypeID) *TypeExpr {
	return t.Arena.Get(uint32(id))
}

// NewPath creates a new path type expression.
func (t *TypeExprs) NewPath(span source.Span, path Path) TypeID {
	payload := t.Paths.Allocate(TypePathData{Path: path})
	return t.new(TypePath, span, PayloadID(payload))
}

// Path returns the path data for the given TypeID.
func (t *TypeExprs) Path(id TypeID) (*TypePathData, bool) {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypePath {
		return nil, false
	}
	return t.Paths.Get(uint32(typ.Payload)), true
}

// NewElem creates a single-element wrapper type (ref/slice/array kinds).
func (t *TypeExprs) NewElem(kind TypeKind, span source.Span, inner TypeID) TypeID {
	payload := t.Elems.Allocate(TypeElemData{Inner: inner})
	return t.new(kind, span, PayloadID(payload))
}

// Elem returns the single-element payload for ref/slice/array kinds.
func (t *TypeExprs) Elem(id TypeID) (*TypeElemData, bool) {
	typ := t.Get(id)
	if typ == nil {
		return nil, false
	}
	switch typ.Kind {
	case TypeRef, TypeInPlaceDynArray, TypeDynArray, TypeSlice:
		return t.Elems.Get(uint32(typ.Payload)), true
	default:
		return nil, false
	}
}

// NewSizedArray creates a sized array type.
func (t *TypeExprs) NewSizedArray(span source.Span, elem TypeID, size ExprID) TypeID {
	payload := t.Sized.Allocate(TypeSizedData{Elem: elem, Size: size})
	return t.new(TypeSizedArray, span, PayloadID(payload))
}

// SizedArray returns the sized array payload.
func (t *TypeExprs) SizedArray(id TypeID) (*TypeSizedData, bool) {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypeSizedArray {
		return nil, false
	}
	return t.Sized.Get(uint32(typ.Payload)), true
}

// NewTuple creates a tuple type.
func (t *TypeExprs) NewTuple(span source.Span, elems []TypeID) TypeID {
	payload := t.Tuples.Allocate(TypeTupleData{Elems: elems})
	return t.new(TypeTuple, span, PayloadID(payload))
}

// Tuple returns the tuple payload.
func (t *TypeExprs) Tuple(id TypeID) (*TypeTupleData, bool) {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypeTuple {
		return nil, false
	}
	return t.Tuples.Get(uint32(typ.Payload)), true
}

// NewFn creates a function type.
func (t *TypeExprs) NewFn(span source.Span, args []TypeID, returns TypeID) TypeID {
	payload := t.Fns.Allocate(TypeFnData{Args: args, Returns: returns})
	return t.new(TypeFn, span, PayloadID(payload))
}

// Fn returns the function type payload.
func (t *TypeExprs) Fn(id TypeID) (*TypeFnData, bool) {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypeFn {
		return nil, false
	}
	return t.Fns.Get(uint32(typ.Payload)), true
}

// NewGenerator creates a generator type; returns may be NoTypeID.
func (t *TypeExprs) NewGenerator(span source.Span, yields, returns TypeID) TypeID {
	payload := t.Generators.Allocate(TypeGeneratorData{Yields: yields, Returns: returns})
	return t.new(TypeGenerator, span, PayloadID(payload))
}

// Generator returns the generator payload.
func (t *TypeExprs) Generator(id TypeID) (*TypeGeneratorData, bool) {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypeGenerator {
		return nil, false
	}
	return t.Generators.Get(uint32(typ.Payload)), true
}

// NewStruct creates a structural type.
func (t *TypeExprs) NewStruct(span source.Span, fields []TypeField) TypeID {
	payload := t.Structs.Allocate(TypeStructData{Fields: fields})
	return t.new(TypeStruct, span, PayloadID(payload))
}

// Struct returns the structural type payload.
func (t *TypeExprs) Struct(id TypeID) (*TypeStructData, bool) {
	typ := t.Get(id)
	if typ == nil || typ.Kind != TypeStruct {
		return nil, false
	}
	return t.Structs.Get(uint32(typ.Payload)), true
}
