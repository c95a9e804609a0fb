package ast

type (
	// ModuleID identifies a parsed module.
	ModuleID uint32
	// ItemID identifies a top-level item.
	ItemID uint32
	// GlobalID identifies a top-level global binding.
	GlobalID uint32
	// StmtID identifies a statement.
	StmtID uint32
	// ExprID identifies an expression.
	ExprID uint32
	// TypeID identifies a type expression.
	TypeID uint32
	// PayloadID indexes auxiliary per-kind payload data.
	PayloadID uint32
)

const (
	// NoModuleID indicates no module.
	NoModuleID ModuleID = 0
	// NoItemID indicates no item.
	NoItemID ItemID = 0
	// NoGlobalID indicates no global.
	NoGlobalID  GlobalID  = 0
	NoStmtID    StmtID    = 0
	NoExprID    ExprID    = 0
	NoTypeID    TypeID    = 0
	NoPayloadID PayloadID = 0
)

// IsValid reports whether the ModuleID is valid (non-zero).
func (id ModuleID) IsValid() bool { return id != NoModuleID }

// IsValid reports whether the ItemID is valid (non-zero).
func (id ItemID) IsValid() bool { return id != NoItemID }

// IsValid reports whether the GlobalID is valid (non-zero).
func (id GlobalID) IsValid() bool { return id != NoGlobalID }

// IsValid reports whether the StmtID is valid (non-zero).
func (id StmtID) IsValid() bool { return id != NoStmtID }

// IsValid reports whether the ExprID is valid (non-zero).
func (id ExprID) IsValid() bool { return id != NoExprID }

// IsValid reports whether the TypeID is valid (non-zero).
func (id TypeID) IsValid() bool { return id != NoTypeID }
