package source_test

import (
	"strings"
	"testing"

	"hel/internal/source"
)

func TestLineCol(t *testing.T) {
	// позиции всех '3' в тексте известны заранее
	text := "3pic story:\nth3 forc3\nis strong with\nthis on3\n"
	for _, input := range []string{text, strings.TrimSpace(text)} {
		fs := source.NewFileSet()
		id := fs.AddVirtual("test.hel", []byte(input))

		want := []source.LineCol{
			{Line: 1, Col: 1},
			{Line: 2, Col: 3},
			{Line: 2, Col: 9},
			{Line: 4, Col: 8},
		}

		got := make([]source.LineCol, 0, len(want))
		for i := 0; i < len(input); i++ {
			if input[i] == '3' {
				start, _ := fs.Resolve(source.Single(id, uint32(i)))
				got = append(got, start)
			}
		}

		if len(got) != len(want) {
			t.Fatalf("expected %d positions, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: got %v, want %v", i, got[i], want[i])
			}
		}
	}
}

func TestLineColMonotone(t *testing.T) {
	input := "ab\ncd\n\nefg"
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hel", []byte(input))

	var prev source.LineCol
	for i := 0; i < len(input); i++ {
		cur, _ := fs.Resolve(source.Single(id, uint32(i)))
		if i > 0 {
			if cur.Line < prev.Line || (cur.Line == prev.Line && cur.Col < prev.Col) {
				t.Fatalf("line_col not monotone at byte %d: %v after %v", i, cur, prev)
			}
		}
		prev = cur
	}
}

func TestLineStartsAtColumnOne(t *testing.T) {
	input := "first\nsecond\nthird"
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hel", []byte(input))

	starts := []uint32{0, 6, 13}
	for lineNo, off := range starts {
		got, _ := fs.Resolve(source.Single(id, off))
		if got.Line != uint32(lineNo+1) || got.Col != 1 {
			t.Errorf("offset %d: got %v, want line %d col 1", off, got, lineNo+1)
		}
	}
}

func TestGetLine(t *testing.T) {
	input := "first\nsecond\nthird"
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hel", []byte(input))
	f := fs.Get(id)

	cases := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, c := range cases {
		if got := f.GetLine(c.line); got != c.want {
			t.Errorf("GetLine(%d) = %q, want %q", c.line, got, c.want)
		}
	}
}

func TestAddVirtualFlags(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("repl", []byte("x"))
	f := fs.Get(id)
	if f.Flags&source.FileVirtual == 0 {
		t.Fatalf("virtual file must carry FileVirtual flag")
	}
}

func TestGetLatest(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("a.hel", []byte("old"))
	second := fs.AddVirtual("a.hel", []byte("new"))

	id, ok := fs.GetLatest("a.hel")
	if !ok {
		t.Fatalf("expected a.hel to be present")
	}
	if id != second {
		t.Fatalf("GetLatest must return the newest version")
	}
	if string(fs.Get(id).Content) != "new" {
		t.Fatalf("unexpected content: %q", fs.Get(id).Content)
	}
}
