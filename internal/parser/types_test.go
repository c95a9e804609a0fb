package parser_test

import (
	"testing"

	"hel/internal/ast"
)

func TestParseType(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"path::to::a_type", "path::to::a_type"},
		{"&stuff", "&stuff"},
		{"(&a, b)", "(&a, b)"},
		{"[a..]", "[a..]"},
		{"&[a]", "&[a]"},
		{"[a]", "[a]"},
		{"[a * 8]", "[a * 8]"},
		{"{a::b}", "{a::b}"},
		{"{a, [a..]}", "{a, [a..]}"},
		{"fn a -> b", "fn (a) -> b"},
		{"fn (a, b) -> c", "fn (a, b) -> c"},
		{"struct {call: fn a -> b,}", "struct { call: fn (a) -> b }"},
		{"&&a", "&&a"},
		{"[[a]..]", "[[a]..]"},
		{"&[[a]]", "&[[a]]"},
		{
			`struct {
				prev: &LinkedList,
				next: &LinkedList,
				value: a
			}`,
			"struct { prev: &LinkedList, next: &LinkedList, value: a }",
		},
	}

	for _, c := range cases {
		p, b, bag, _ := makeParser(t, c.input)
		id, ok := p.ParseType()
		if !ok {
			t.Fatalf("%q: parse failed: %v", c.input, bag.Items())
		}
		expectClean(t, c.input, bag)
		if got := describeType(b, id); got != c.want {
			t.Errorf("%q: got %s, want %s", c.input, got, c.want)
		}
	}
}

// TestSliceRewrite: `&[a]` — это Slice, а не Reference(InPlaceDynamicArray).
func TestSliceRewrite(t *testing.T) {
	p, b, bag, _ := makeParser(t, "&[a]")
	id, ok := p.ParseType()
	if !ok {
		t.Fatalf("parse failed")
	}
	expectClean(t, "&[a]", bag)
	if got := describeType(b, id); got != "&[a]" {
		t.Fatalf("got %s", got)
	}
	// убеждаемся в виде вершины, а не только в рендере
	if node := b.Types.Get(id); node.Kind != ast.TypeSlice {
		t.Fatalf("top node must be TypeSlice, got %d", node.Kind)
	}
}

func TestParseTypeErrors(t *testing.T) {
	cases := []string{
		"123",
		"[a b]",
		"{a; b}",
		"fn a b",
		"",
	}
	for _, input := range cases {
		p, _, bag, _ := makeParser(t, input)
		if _, ok := p.ParseType(); ok {
			t.Errorf("%q: expected failure", input)
			continue
		}
		if bag.Len() == 0 {
			t.Errorf("%q: expected at least one diagnostic", input)
		}
	}
}

func TestTypeSpans(t *testing.T) {
	input := "&[a]"
	p, b, _, _ := makeParser(t, input)
	id, ok := p.ParseType()
	if !ok {
		t.Fatalf("parse failed")
	}
	node := b.Types.Get(id)
	if node.Span.Start != 0 || int(node.Span.End) != len(input) {
		t.Fatalf("span = %v, want [0,%d)", node.Span, len(input))
	}
}
