package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hel/internal/ast"
	"hel/internal/diag"
	"hel/internal/lexer"
	"hel/internal/parser"
	"hel/internal/source"
)

// Module — один загруженный модуль пакета.
type Module struct {
	Name    string
	Path    string // путь к файлу на диске
	FileID  source.FileID
	CST     ast.ModuleID
	Imports []string // головные сегменты import-путей
	Broken  bool     // были ли ошибки разбора
}

// Package — результат загрузки пакета: конфигурация плюс корневой модуль
// и все достижимые по импортам модули.
type Package struct {
	Name    string
	RootDir string
	Root    *Module
	Modules map[string]*Module // имя модуля -> модуль
	Order   []string           // порядок обнаружения (BFS)
}

// Loader обходит граф импортов пакета начиная с корневого файла.
type Loader struct {
	FileSet *source.FileSet
	Builder *ast.Builder
	Bag     *diag.Bag
	Cache   *DiskCache // опционально: кэш списков импортов
}

// NewLoader создаёт загрузчик с общим FileSet, Builder и Bag.
func NewLoader(maxDiagnostics int) *Loader {
	return &Loader{
		FileSet: source.NewFileSet(),
		Builder: ast.NewBuilder(ast.Hints{}, nil),
		Bag:     diag.NewBag(maxDiagnostics),
	}
}

// LoadPackage загружает пакет: target — файл либо директория
// (тогда берётся <dir>/main.hel или корень из hel.toml).
// Обход — BFS по головным сегментам импортов; каждый модуль ищется как
// <dir>/<head>.hel рядом с импортирующим файлом. Циклы обрезаются
// посещённым множеством, отсутствующий модуль — диагностика ProjMissingModule.
func (l *Loader) LoadPackage(target string) (*Package, error) {
	pkgName := ""
	rootFile := target

	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("stat package target: %w", err)
	}
	if info.IsDir() {
		if manifestPath, ok, err := FindHelToml(target); err == nil && ok {
			manifest, err := LoadManifest(manifestPath)
			if err != nil {
				return nil, err
			}
			pkgName = manifest.Config.Package.Name
			rootFile = manifest.RootFile()
		} else {
			rootFile = filepath.Join(target, "main.hel")
		}
	}
	if pkgName == "" {
		pkgName = moduleNameOf(rootFile)
	}

	pkg := &Package{
		Name:    pkgName,
		RootDir: filepath.Dir(rootFile),
		Modules: make(map[string]*Module),
	}

	type queued struct {
		name string
		path string
		from source.Span // span импорта, приведшего сюда
	}
	queue := []queued{{name: moduleNameOf(rootFile), path: rootFile}}
	visited := make(map[string]bool)

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		normalized := filepath.Clean(next.path)
		if visited[normalized] {
			continue
		}
		visited[normalized] = true

		module, err := l.loadModule(next.name, normalized)
		if err != nil {
			l.Bag.Add(diag.NewError(diag.ProjMissingModule, next.from,
				fmt.Sprintf("module %q not found (searched at %s)", next.name, normalized)))
			continue
		}

		if existing, dup := pkg.Modules[module.Name]; dup && existing.Path != module.Path {
			l.Bag.Add(diag.NewError(diag.ProjDuplicateModule, next.from,
				fmt.Sprintf("duplicate module %q", module.Name)))
			continue
		}
		pkg.Modules[module.Name] = module
		pkg.Order = append(pkg.Order, module.Name)
		if pkg.Root == nil {
			pkg.Root = module
		}

		dir := filepath.Dir(normalized)
		for _, head := range module.Imports {
			queue = append(queue, queued{
				name: head,
				path: filepath.Join(dir, head+".hel"),
				from: importSpanOf(l.Builder, module, head),
			})
		}
	}

	return pkg, nil
}

// loadModule читает и разбирает один файл, отдавая предпочтение кэшу
// для списка импортов чистых модулей.
func (l *Loader) loadModule(name, path string) (*Module, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- пути приходят из обхода пакета
	if err != nil {
		return nil, err
	}

	key := HashBytes(content)
	if l.Cache != nil {
		if payload, hit, err := l.Cache.Load(key); err == nil && hit && !payload.Broken {
			// чистый модуль: CST всё равно нужен вызывающим, поэтому парсим,
			// но списку импортов верим из кэша
			module, err := l.parseModule(name, path)
			if err != nil {
				return nil, err
			}
			module.Imports = payload.ImportPaths
			return module, nil
		}
	}

	module, err := l.parseModule(name, path)
	if err != nil {
		return nil, err
	}

	if l.Cache != nil {
		_ = l.Cache.Store(&DiskPayload{
			Name:        name,
			Path:        path,
			ImportPaths: module.Imports,
			ContentHash: key,
			Broken:      module.Broken,
		})
	}
	return module, nil
}

func (l *Loader) parseModule(name, path string) (*Module, error) {
	fileID, err := l.FileSet.Load(path)
	if err != nil {
		return nil, err
	}
	file := l.FileSet.Get(fileID)

	before := l.Bag.Len()
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: l.Bag}})
	result := parser.ParseFile(lx, l.Builder, parser.Options{
		Reporter: &diag.BagReporter{Bag: l.Bag},
	})

	broken := false
	for _, d := range l.Bag.Items()[before:] {
		if d.Severity >= diag.SevError {
			broken = true
			break
		}
	}

	return &Module{
		Name:    name,
		Path:    path,
		FileID:  fileID,
		CST:     result.Module,
		Imports: importHeads(l.Builder, result.Module),
		Broken:  broken,
	}, nil
}

// importHeads собирает головные сегменты всех import-путей модуля.
func importHeads(b *ast.Builder, moduleID ast.ModuleID) []string {
	module := b.Modules.Get(moduleID)
	if module == nil {
		return nil
	}
	var heads []string
	seen := make(map[string]bool)
	for _, entry := range module.Items {
		imp, ok := b.Items.Import(entry.Item)
		if !ok || len(imp.Path.Segments) == 0 {
			continue
		}
		head := b.StringsInterner.MustLookup(imp.Path.Segments[0].Name)
		if !seen[head] {
			seen[head] = true
			heads = append(heads, head)
		}
	}
	return heads
}

// importSpanOf находит span импорта с данным головным сегментом.
func importSpanOf(b *ast.Builder, module *Module, head string) source.Span {
	m := b.Modules.Get(module.CST)
	if m == nil {
		return source.Span{}
	}
	for _, entry := range m.Items {
		imp, ok := b.Items.Import(entry.Item)
		if !ok || len(imp.Path.Segments) == 0 {
			continue
		}
		if b.StringsInterner.MustLookup(imp.Path.Segments[0].Name) == head {
			return imp.Path.Span()
		}
	}
	return source.Span{}
}

func moduleNameOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
