package ast

import "hel/internal/source"

// ModuleItem pairs a top-level item with its export flag.
type ModuleItem struct {
	Exported bool
	Item     ItemID
}

// ModuleGlobal pairs a global binding with its export flag.
type ModuleGlobal struct {
	Exported bool
	Global   GlobalID
}

// Module represents one parsed source module.
type Module struct {
	Span    source.Span
	Items   []ModuleItem
	Globals []ModuleGlobal
}

// Modules manages allocation of Module nodes.
type Modules struct {
	Arena *Arena[Module]
}

// NewModules creates a new Modules arena with the given capacity hint.
func NewModules(capHint uint) *Modules {
	return &Modules{
		Arena: NewArena[Module](capHint),
	}
}

// New creates a new module in the arena.
func (m *Modules) New(sp source.Span) ModuleID {
	return ModuleID(m.Arena.Allocate(Module{
		Span:    sp,
		Items:   make([]ModuleItem, 0),
		Globals: make([]ModuleGlobal, 0),
	}))
}

// Get returns the module with the given ID.
func (m *Modules) Get(id ModuleID) *Module {
	return m.Arena.Get(uint32(id))
}

// Package pairs the manifest configuration with the root module.
type Package struct {
	Name string
	Root ModuleID
}
