package ast

import (
	"hel/internal/source"
)

// Hints provides capacity hints for the builder.
type Hints struct{ Modules, Items, Stmts, Exprs, Types uint }

// Builder constructs a CST.
type Builder struct {
	Modules         *Modules
	Items           *Items
	Stmts           *Stmts
	Exprs           *Exprs
	Types           *TypeExprs
	StringsInterner *source.Interner
}

// NewBuilder creates a Builder configured with capacity hints and a shared
// string interner. Zero hint fields get sensible defaults; a nil interner is
// replaced with a fresh one.
func NewBuilder(hints Hints, stringsInterner *source.Interner) *Builder {
	if hints.Modules == 0 {
		hints.Modules = 1 << 3
	}
	if hints.Items == 0 {
		hints.Items = 1 << 7
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Types == 0 {
		hints.Types = 1 << 7
	}
	if stringsInterner == nil {
		stringsInterner = source.NewInterner()
	}
	return &Builder{
		Modules:         NewModules(hints.Modules),
		Items:           NewItems(hints.Items),
		Stmts:           NewStmts(hints.Stmts),
		Exprs:           NewExprs(hints.Exprs),
		Types:           NewTypeExprs(hints.Types),
		StringsInterner: stringsInterner,
	}
}

// PushItem adds an item to a module.
func (b *Builder) PushItem(module ModuleID, item ItemID, exported bool) {
	m := b.Modules.Get(module)
	m.Items = append(m.Items, ModuleItem{Exported: exported, Item: item})
}

// PushGlobal adds a global to a module.
func (b *Builder) PushGlobal(module ModuleID, global GlobalID, exported bool) {
	m := b.Modules.Get(module)
	m.Globals = append(m.Globals, ModuleGlobal{Exported: exported, Global: global})
}
