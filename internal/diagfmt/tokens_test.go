package diagfmt_test

import (
	"strings"
	"testing"

	"hel/internal/diagfmt"
	"hel/internal/driver"
)

func TestFormatTokensPretty(t *testing.T) {
	result := driver.TokenizeVirtual("t.hel", []byte("let x = 42"), 10)

	var sb strings.Builder
	if err := diagfmt.FormatTokensPretty(&sb, result.Tokens, result.FileSet); err != nil {
		t.Fatalf("format failed: %v", err)
	}
	out := sb.String()
	for _, want := range []string{"let", "Ident", "IntLit", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output must contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	result := driver.TokenizeVirtual("t.hel", []byte("a + b"), 10)

	var sb strings.Builder
	if err := diagfmt.FormatTokensJSON(&sb, result.Tokens); err != nil {
		t.Fatalf("format failed: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, `"kind"`) || !strings.Contains(out, `"span"`) {
		t.Fatalf("JSON output malformed:\n%s", out)
	}
}
