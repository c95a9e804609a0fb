package driver

import (
	"fortio.org/safecast"

	"hel/internal/ast"
	"hel/internal/diag"
	"hel/internal/lexer"
	"hel/internal/parser"
	"hel/internal/source"
	"hel/internal/token"
)

// tokenizeFileOf прогоняет лексер по уже загруженному файлу, складывая
// диагностики в переданный bag.
func tokenizeFileOf(fs *source.FileSet, fileID source.FileID, bag *diag.Bag) []token.Token {
	file := fs.Get(fileID)
	lx := lexer.New(file, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

type parsedFile struct {
	Builder *ast.Builder
	Module  ast.ModuleID
}

// parseFileOf разбирает уже загруженный файл в собственный Builder.
func parseFileOf(fs *source.FileSet, fileID source.FileID, bag *diag.Bag, maxDiagnostics int) (*parsedFile, error) {
	file := fs.Get(fileID)

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	lx := lexer.New(file, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	result := parser.ParseFile(lx, builder, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})

	return &parsedFile{
		Builder: builder,
		Module:  result.Module,
	}, nil
}
