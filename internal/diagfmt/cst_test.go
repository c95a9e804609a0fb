package diagfmt_test

import (
	"strings"
	"testing"

	"hel/internal/diagfmt"
	"hel/internal/driver"
)

func TestFormatModuleTree(t *testing.T) {
	result := driver.ParseVirtual("t.hel", []byte("fn add(a: i32, b: i32) -> i32 = a + b"), 10)
	if result.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", result.Bag.Items())
	}

	var sb strings.Builder
	if err := diagfmt.FormatModuleTree(&sb, result.Builder, result.Module); err != nil {
		t.Fatalf("format failed: %v", err)
	}
	out := sb.String()
	for _, want := range []string{"Module", "Function add", "param a", "Binary +", "Path a", "Path b"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree must contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatModuleJSON(t *testing.T) {
	result := driver.ParseVirtual("t.hel", []byte("import std::io"), 10)

	var sb strings.Builder
	if err := diagfmt.FormatModuleJSON(&sb, result.Builder, result.Module); err != nil {
		t.Fatalf("format failed: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, `"Import"`) || !strings.Contains(out, "std::io") {
		t.Fatalf("JSON output malformed:\n%s", out)
	}
}
