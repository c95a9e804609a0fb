package ast

import (
	"hel/internal/source"
)

// Ident is an interned identifier with its source span.
type Ident struct {
	Name source.StringID
	Span source.Span
}

// Path is a non-empty '::'-separated sequence of identifiers.
type Path struct {
	Segments []Ident
}

// Span covers the first through the last segment.
func (p Path) Span() source.Span {
	if len(p.Segments) == 0 {
		return source.Span{}
	}
	return p.Segments[0].Span.Cover(p.Segments[len(p.Segments)-1].Span)
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.Segments) }

// String renders the path through the interner, for diagnostics and printers.
func (p Path) String(interner *source.Interner) string {
	s := ""
	for i, seg := range p.Segments {
		if i > 0 {
			s += "::"
		}
		s += interner.MustLookup(seg.Name)
	}
	return s
}
