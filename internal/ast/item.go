package ast

import "hel/internal/source"

// ItemKind enumerates the different kinds of top-level items.
type ItemKind uint8

const (
	// ItemInvalid represents an invalid item.
	ItemInvalid ItemKind = iota
	// ItemImport represents an import declaration.
	ItemImport
	// ItemFn represents a function declaration.
	ItemFn
	// ItemTypeDecl represents a type declaration.
	ItemTypeDecl
)

// Item represents a top-level item in the CST.
type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

// ImportItem represents `import path::to::module`.
type ImportItem struct {
	Path Path
}

// FnParam is one function parameter: `name: type`.
type FnParam struct {
	Name Ident
	Type TypeID
}

// FnItem represents a function declaration.
// Return is always a valid TypeID; a missing `-> type` clause is
// materialized as an empty tuple type.
type FnItem struct {
	Ident  Ident
	Params []FnParam
	Return TypeID
	Body   ExprID
}

// TypeDeclItem represents `type Name = type` (and the `struct Name {...}` sugar).
type TypeDeclItem struct {
	Ident Ident
	Type  TypeID
}

// Global represents a top-level `let ident: type = expr` binding.
type Global struct {
	Ident Ident
	Type  TypeID
	Value ExprID
	Span  source.Span
}

// Items manages allocation of items and their associated data.
type Items struct {
	Arena     *Arena[Item]
	Imports   *Arena[ImportItem]
	Fns       *Arena[FnItem]
	TypeDecls *Arena[TypeDeclItem]
	Globals   *Arena[Global]
}

// NewItems creates a new Items with all payload arenas initialized.
func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Items{
		Arena:     NewArena[Item](capHint),
		Imports:   NewArena[ImportItem](capHint),
		Fns:       NewArena[FnItem](capHint),
		TypeDecls: NewArena[TypeDeclItem](capHint),
		Globals:   NewArena[Global](capHint),
	}
}

func (it *Items) new(kind ItemKind, span source.Span, payload PayloadID) ItemID {
	return ItemID(it.Arena.Allocate(Item{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the item with the given ID.
func (it *Items) Get(id ItemID) *Item {
	return it.Arena.Get(uint32(id))
}

// NewImport creates an import item.
func (it *Items) NewImport(span source.Span, path Path) ItemID {
	payload := it.Imports.Allocate(ImportItem{Path: path})
	return it.new(ItemImport, span, PayloadID(payload))
}

// Import returns the import payload.
func (it *Items) Import(id ItemID) (*ImportItem, bool) {
	item := it.Get(id)
	if item == nil || item.Kind != ItemImport {
		return nil, false
	}
	return it.Imports.Get(uint32(item.Payload)), true
}

// NewFn creates a function item.
func (it *Items) NewFn(span source.Span, ident Ident, params []FnParam, ret TypeID, body ExprID) ItemID {
	payload := it.Fns.Allocate(FnItem{Ident: ident, Params: params, Return: ret, Body: body})
	return it.new(ItemFn, span, PayloadID(payload))
}

// Fn returns the function payload.
func (it *Items) Fn(id ItemID) (*FnItem, bool) {
	item := it.Get(id)
	if item == nil || item.Kind != ItemFn {
		return nil, false
	}
	return it.Fns.Get(uint32(item.Payload)), true
}

// NewTypeDecl creates a type declaration item.
func (it *Items) NewTypeDecl(span source.Span, ident Ident, typ TypeID) ItemID {
	payload := it.TypeDecls.Allocate(TypeDeclItem{Ident: ident, Type: typ})
	return it.new(ItemTypeDecl, span, PayloadID(payload))
}

// TypeDecl returns the type declaration payload.
func (it *Items) TypeDecl(id ItemID) (*TypeDeclItem, bool) {
	item := it.Get(id)
	if item == nil || item.Kind != ItemTypeDecl {
		return nil, false
	}
	return it.TypeDecls.Get(uint32(item.Payload)), true
}

// NewGlobal creates a global binding.
func (it *Items) NewGlobal(span source.Span, ident Ident, typ TypeID, value ExprID) GlobalID {
	return GlobalID(it.Globals.Allocate(Global{Ident: ident, Type: typ, Value: value, Span: span}))
}

// Global returns the global with the given ID.
func (it *Items) Global(id GlobalID) *Global {
	return it.Globals.Get(uint32(id))
}
