package lexer_test

import (
	"testing"

	"hel/internal/lexer"
	"hel/internal/source"
)

func makeCursor(input string) lexer.Cursor {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("cursor.hel", []byte(input))
	return lexer.NewCursor(fs.Get(fileID))
}

func TestCursorPeekBump(t *testing.T) {
	c := makeCursor("ab")
	if c.Peek() != 'a' {
		t.Fatalf("Peek = %q", c.Peek())
	}
	if c.Bump() != 'a' || c.Bump() != 'b' {
		t.Fatalf("Bump sequence wrong")
	}
	if !c.EOF() {
		t.Fatalf("cursor must be at EOF")
	}
	if c.Peek() != 0 || c.Bump() != 0 {
		t.Fatalf("Peek/Bump at EOF must return 0")
	}
}

func TestCursorPeek2Peek3(t *testing.T) {
	c := makeCursor("xyz")
	if b0, b1, ok := c.Peek2(); !ok || b0 != 'x' || b1 != 'y' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if b0, b1, b2, ok := c.Peek3(); !ok || b0 != 'x' || b1 != 'y' || b2 != 'z' {
		t.Fatalf("Peek3 = %q %q %q %v", b0, b1, b2, ok)
	}
	c.Bump()
	if _, _, _, ok := c.Peek3(); ok {
		t.Fatalf("Peek3 past the end must fail")
	}
}

func TestCursorMarkSpan(t *testing.T) {
	c := makeCursor("hello")
	mark := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(mark)
	if sp.Start != 0 || sp.End != 2 {
		t.Fatalf("span = %v, want [0,2)", sp)
	}
	c.Reset(mark)
	if c.Off != 0 {
		t.Fatalf("Reset must rewind the cursor")
	}
}

func TestCursorEat(t *testing.T) {
	c := makeCursor(":=")
	if !c.Eat(':') {
		t.Fatalf("Eat(':') must succeed")
	}
	if c.Eat(':') {
		t.Fatalf("Eat(':') must fail on '='")
	}
	if !c.Eat('=') {
		t.Fatalf("Eat('=') must succeed")
	}
}
