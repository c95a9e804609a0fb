package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"hel/internal/ast"
	"hel/internal/diag"
	"hel/internal/source"
	"hel/internal/token"
)

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // Путь к файлу (с префиксом dir, как его вернул обход)
	FileID source.FileID // ID файла в FileSet
	Tokens []token.Token // Токены файла
	Bag    *diag.Bag     // Диагностики
}

// ParseDirResult содержит результат парсинга одного файла
type ParseDirResult struct {
	Path    string       // Путь к файлу (с префиксом dir, как его вернул обход)
	Module  ast.ModuleID // ID модуля в CST
	Builder *ast.Builder // CST builder с распарсенным файлом
	Bag     *diag.Bag    // Диагностики
}

// listHelFiles собирает все *.hel файлы в директории (рекурсивно),
// в детерминированном порядке.
func listHelFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// скрытые директории не обходим
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".hel") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.hel файлы директории, ограничивая
// параллелизм jobs воркерами. Результаты — в порядке путей.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := listHelFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	fileSet := source.NewFileSetWithBase(dir)
	results := make([]TokenizeDirResult, len(files))

	// файлы загружаем последовательно: FileSet не потокобезопасен
	fileIDs := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	for i, p := range files {
		fileIDs[i], loadErrs[i] = fileSet.Load(p)
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range files {
		g.Go(func() error {
			bag := diag.NewBag(maxDiagnostics)
			if loadErrs[i] != nil {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, loadErrs[i].Error()))
				results[i] = TokenizeDirResult{Path: files[i], Bag: bag}
				return nil
			}
			r := tokenizeFileOf(fileSet, fileIDs[i], bag)
			results[i] = TokenizeDirResult{
				Path:   files[i],
				FileID: fileIDs[i],
				Tokens: r,
				Bag:    bag,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return fileSet, results, nil
}

// ParseDir разбирает все *.hel файлы директории параллельно.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []ParseDirResult, error) {
	files, err := listHelFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	fileSet := source.NewFileSetWithBase(dir)
	results := make([]ParseDirResult, len(files))

	fileIDs := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	for i, p := range files {
		fileIDs[i], loadErrs[i] = fileSet.Load(p)
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range files {
		g.Go(func() error {
			bag := diag.NewBag(maxDiagnostics)
			if loadErrs[i] != nil {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, loadErrs[i].Error()))
				results[i] = ParseDirResult{Path: files[i], Bag: bag}
				return nil
			}
			// у каждого файла свой Builder: аренды не потокобезопасны
			r, err := parseFileOf(fileSet, fileIDs[i], bag, maxDiagnostics)
			if err != nil {
				return err
			}
			results[i] = ParseDirResult{
				Path:    files[i],
				Module:  r.Module,
				Builder: r.Builder,
				Bag:     bag,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return fileSet, results, nil
}
