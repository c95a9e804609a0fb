package parser

import (
	"hel/internal/ast"
	"hel/internal/diag"
	"hel/internal/lexer"
	"hel/internal/source"
	"hel/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Module ast.ModuleID
	Bag    *diag.Bag
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer // поток токенов (Peek/Next)
	arenas   *ast.Builder // построитель аренных узлов
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// New создаёт парсер поверх готового лексера.
func New(lx *lexer.Lexer, arenas *ast.Builder, opts Options) *Parser {
	return &Parser{
		lx:       lx,
		arenas:   arenas,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
}

// ParseFile — входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	p := New(lx, arenas, opts)
	moduleID, _ := p.ParseModule()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		Module: moduleID,
		Bag:    bag,
	}
}

// Builder returns the arena builder backing this parser.
func (p *Parser) Builder() *ast.Builder {
	return p.arenas
}

// IsError reports whether at least one error has been emitted.
func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// parseIdent — утилита: ожидает Ident и интернирует его.
// На ошибке — репорт SynUnexpectedToken с ожиданием "identifier".
func (p *Parser) parseIdent() (ast.Ident, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		id := p.arenas.StringsInterner.Intern(tok.Text)
		return ast.Ident{Name: id, Span: tok.Span}, true
	}
	tok := p.lx.Peek()
	p.countError()
	diag.UnexpectedToken(p.reporter(), tok).Expected("identifier")
	p.advance()
	return ast.Ident{}, false
}
