package driver

import (
	"fmt"

	"fortio.org/safecast"

	"hel/internal/ast"
	"hel/internal/diag"
	"hel/internal/lexer"
	"hel/internal/parser"
	"hel/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Module  ast.ModuleID
	Bag     *diag.Bag
}

// Parse загружает файл с диска, лексит и разбирает его в CST.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fileID, maxDiagnostics)
}

// ParseVirtual разбирает содержимое из памяти (REPL, тесты).
func ParseVirtual(name string, content []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	result, err := parseLoaded(fs, fileID, maxDiagnostics)
	if err != nil {
		// parseLoaded ошибается только на переполнении maxDiagnostics
		panic(fmt.Errorf("parse virtual: %w", err))
	}
	return result
}

func parseLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) (*ParseResult, error) {
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	builder := ast.NewBuilder(ast.Hints{}, nil)

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	result := parser.ParseFile(lx, builder, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		Module:  result.Module,
		Bag:     bag,
	}, nil
}
