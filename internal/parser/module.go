package parser

import (
	"hel/internal/ast"
	"hel/internal/diag"
	"hel/internal/token"
)

// ParseModule — основной цикл верхнего уровня: пока не EOF — parseItem.
// Ошибки item'а не останавливают модуль: прокручиваемся до следующего
// стартера и продолжаем.
func (p *Parser) ParseModule() (ast.ModuleID, bool) {
	startSpan := p.lx.Peek().Span
	moduleID := p.arenas.Modules.New(startSpan)

	for !p.at(token.EOF) {
		// Следим за прогрессом: если за итерацию не съели ни одного токена,
		// нужно его форсированно прокрутить, иначе можно зациклиться на
		// повреждённом вводе.
		before := p.lx.Peek()

		if !p.parseTopLevel(moduleID) {
			p.resyncTop()
		}

		if !p.at(token.EOF) {
			after := p.lx.Peek()
			if after.Kind == before.Kind && after.Span == before.Span {
				p.advance()
			}
		}
	}

	p.arenas.Modules.Get(moduleID).Span = startSpan.Cover(p.lastSpan)
	return moduleID, true
}

// parseTopLevel разбирает один top-level элемент и кладёт его в модуль.
// Ведущий '@' помечает элемент экспортируемым.
func (p *Parser) parseTopLevel(moduleID ast.ModuleID) bool {
	exported := false
	if p.at(token.At) {
		p.advance()
		exported = true
	}

	switch p.lx.Peek().Kind {
	case token.KwImport:
		itemID, ok := p.parseImportItem()
		if !ok {
			return false
		}
		p.arenas.PushItem(moduleID, itemID, exported)
		return true

	case token.KwLet:
		globalID, ok := p.parseGlobal()
		if !ok {
			return false
		}
		p.arenas.PushGlobal(moduleID, globalID, exported)
		return true

	case token.KwFn:
		itemID, ok := p.parseFnItem()
		if !ok {
			return false
		}
		p.arenas.PushItem(moduleID, itemID, exported)
		return true

	case token.KwType:
		itemID, ok := p.parseTypeDeclItem()
		if !ok {
			return false
		}
		p.arenas.PushItem(moduleID, itemID, exported)
		return true

	case token.KwStruct:
		itemID, ok := p.parseStructDeclItem()
		if !ok {
			return false
		}
		p.arenas.PushItem(moduleID, itemID, exported)
		return true

	default:
		p.report(diag.SynUnexpectedTopLevel, diag.SevError, p.currentErrorSpan(),
			"unexpected top-level construct")
		return false
	}
}

// parseImportItem: `import path::to::module`.
func (p *Parser) parseImportItem() (ast.ItemID, bool) {
	importTok := p.advance()
	path, ok := p.ParsePath()
	if !ok {
		return ast.NoItemID, false
	}
	span := importTok.Span.Cover(path.Span())
	return p.arenas.Items.NewImport(span, path), true
}

// parseGlobal: `let ident: type = expr` на верхнем уровне.
// В отличие от let-statement аннотация типа обязательна.
func (p *Parser) parseGlobal() (ast.GlobalID, bool) {
	letTok := p.advance()

	ident, ok := p.parseIdent()
	if !ok {
		return ast.NoGlobalID, false
	}
	if _, ok := p.expect(token.Colon); !ok {
		return ast.NoGlobalID, false
	}
	typ, ok := p.ParseType()
	if !ok {
		return ast.NoGlobalID, false
	}
	if _, ok := p.expect(token.Eq); !ok {
		return ast.NoGlobalID, false
	}
	value, ok := p.ParseExpr()
	if !ok {
		return ast.NoGlobalID, false
	}

	span := letTok.Span.Cover(p.arenas.Exprs.Get(value).Span)
	return p.arenas.Items.NewGlobal(span, ident, typ, value), true
}

// parseFnItem: `fn name(arg: type, ...) [-> type] [=] body`.
// Отсутствующий `-> type` означает пустой кортеж.
func (p *Parser) parseFnItem() (ast.ItemID, bool) {
	fnTok := p.advance()

	ident, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}

	if _, ok := p.expect(token.LParen); !ok {
		return ast.NoItemID, false
	}
	var params []ast.FnParam
	paramsSpan, ok := p.parseMany(func() bool {
		name, ok := p.parseIdent()
		if !ok {
			return false
		}
		if _, ok := p.expect(token.Colon); !ok {
			return false
		}
		typ, ok := p.ParseType()
		if !ok {
			return false
		}
		params = append(params, ast.FnParam{Name: name, Type: typ})
		return true
	}, token.RParen, token.Comma)
	if !ok {
		return ast.NoItemID, false
	}

	ret := ast.NoTypeID
	if p.at(token.Arrow) {
		p.advance()
		ret, ok = p.ParseType()
		if !ok {
			return ast.NoItemID, false
		}
	} else {
		// дефолтный возвращаемый тип — пустой кортеж
		ret = p.arenas.Types.NewTuple(paramsSpan.ZeroideToEnd(), nil)
	}

	if p.at(token.Eq) {
		p.advance()
	}

	body, ok := p.ParseExpr()
	if !ok {
		return ast.NoItemID, false
	}

	span := fnTok.Span.Cover(p.arenas.Exprs.Get(body).Span)
	return p.arenas.Items.NewFn(span, ident, params, ret, body), true
}

// parseTypeDeclItem: `type Name = type`.
func (p *Parser) parseTypeDeclItem() (ast.ItemID, bool) {
	typeTok := p.advance()

	ident, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok := p.expect(token.Eq); !ok {
		return ast.NoItemID, false
	}
	typ, ok := p.ParseType()
	if !ok {
		return ast.NoItemID, false
	}

	span := typeTok.Span.Cover(p.arenas.Types.Get(typ).Span)
	return p.arenas.Items.NewTypeDecl(span, ident, typ), true
}

// parseStructDeclItem: `struct Name { field: type, ... }` —
// сахар для `type Name = struct { ... }`.
func (p *Parser) parseStructDeclItem() (ast.ItemID, bool) {
	structTok := p.advance()

	ident, ok := p.parseIdent()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok := p.expect(token.LBrace); !ok {
		return ast.NoItemID, false
	}
	fields, finSpan, ok := p.parseTypeFields(token.RBrace)
	if !ok {
		return ast.NoItemID, false
	}

	typeSpan := structTok.Span.Cover(finSpan)
	typ := p.arenas.Types.NewStruct(typeSpan, fields)
	return p.arenas.Items.NewTypeDecl(typeSpan, ident, typ), true
}

// resyncTop — восстановление после ошибки на верхнем уровне:
// прокручиваем до стартового токена следующего item или EOF.
func (p *Parser) resyncTop() {
	prev := p.lx.Peek()

	p.resyncUntil(token.KwImport, token.KwLet, token.KwFn, token.KwType, token.KwStruct, token.At)

	// Если resync не продвинулся и это не EOF, съедаем токен, чтобы
	// гарантировать прогресс.
	if !p.at(token.EOF) && p.lx.Peek().Span == prev.Span && p.lx.Peek().Kind == prev.Kind {
		p.advance()
	}
}
