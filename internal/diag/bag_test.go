package diag_test

import (
	"testing"

	"hel/internal/diag"
	"hel/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)
	if !bag.Add(diag.NewError(diag.LexUnknownChar, sp(0, 1), "one")) {
		t.Fatalf("first add must succeed")
	}
	if !bag.Add(diag.NewError(diag.LexUnknownChar, sp(1, 2), "two")) {
		t.Fatalf("second add must succeed")
	}
	if bag.Add(diag.NewError(diag.LexUnknownChar, sp(2, 3), "three")) {
		t.Fatalf("third add must hit the limit")
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevWarning, diag.LexInfo, sp(0, 1), "warn"))
	if bag.HasErrors() {
		t.Fatalf("warning alone must not count as error")
	}
	if !bag.HasWarnings() {
		t.Fatalf("expected warnings")
	}
	bag.Add(diag.NewError(diag.SynUnexpectedToken, sp(0, 1), "err"))
	if !bag.HasErrors() {
		t.Fatalf("expected errors")
	}
}

func TestBagSort(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, sp(10, 12), "later"))
	bag.Add(diag.NewError(diag.LexUnknownChar, sp(2, 3), "earlier"))
	bag.Add(diag.New(diag.SevWarning, diag.LexInfo, sp(2, 3), "same span warning"))

	bag.Sort()
	items := bag.Items()
	if items[0].Message != "earlier" {
		t.Fatalf("expected span order, got %q first", items[0].Message)
	}
	// при равных span ошибка идёт раньше предупреждения
	if items[1].Severity != diag.SevWarning || items[0].Severity != diag.SevError {
		t.Fatalf("severity ordering broken: %+v", items)
	}
	if items[2].Message != "later" {
		t.Fatalf("expected %q last, got %q", "later", items[2].Message)
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownChar, sp(0, 1), "dup"))
	bag.Add(diag.NewError(diag.LexUnknownChar, sp(0, 1), "dup"))
	bag.Add(diag.NewError(diag.LexUnknownChar, sp(1, 2), "other"))

	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("expected 2 after dedup, got %d", bag.Len())
	}
}

func TestBagMerge(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(diag.NewError(diag.LexUnknownChar, sp(0, 1), "a"))
	b := diag.NewBag(1)
	b.Add(diag.NewError(diag.LexUnknownChar, sp(1, 2), "b"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("expected merged len 2, got %d", a.Len())
	}
}

func TestCodeID(t *testing.T) {
	cases := map[diag.Code]string{
		diag.LexUnterminatedString: "LEX1002",
		diag.SynUnexpectedToken:    "SYN2001",
		diag.IOLoadFileError:       "IO4001",
		diag.ProjMissingModule:     "PRJ5001",
		diag.UnknownCode:           "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
}
