package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.hel файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".hel" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func addLanguageSeeds(f *testing.F) {
	// минимальный встроенный корпус на случай пустого testdata
	seeds := []string{
		"",
		"fn main() = { let x: [u8..] = @[1, 2, 3] }\n",
		"fn add(a: i32, b: i32) -> i32 = a + b\n",
		"import std::io\n",
		"type Link = struct { prev: &Link, next: &Link, value: a }\n",
		"let answer: u64 = 42\n",
		"@fn exported() = null\n",
		"xs |> map(f) |> collect()",
		"if a then b else c",
		"loop { x = x + 1 }",
		"#- nested #- comment -# -# fn f() = 0",
		"\"unterminated",
		"1.foo",
		"a :: b",
		"@[0 * 16]",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
