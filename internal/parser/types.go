package parser

import (
	"hel/internal/ast"
	"hel/internal/diag"
	"hel/internal/source"
	"hel/internal/token"
)

// ParseType — LL(1) диспетчеризация по первому токену типа (§ типовой
// грамматики): путь, ссылка, кортеж, массивные формы, fn-тип, генератор,
// структурный тип.
func (p *Parser) ParseType() (ast.TypeID, bool) {
	switch p.lx.Peek().Kind {
	case token.Ident:
		path, ok := p.ParsePath()
		if !ok {
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewPath(path.Span(), path), true

	case token.Amp:
		ampTok := p.advance() // &
		inner, ok := p.ParseType()
		if !ok {
			return ast.NoTypeID, false
		}
		innerNode := p.arenas.Types.Get(inner)
		span := ampTok.Span.Cover(innerNode.Span)
		if innerNode.Kind == ast.TypeInPlaceDynArray {
			// `&[T]` — это slice, а не ссылка на in-place массив
			elem, _ := p.arenas.Types.Elem(inner)
			return p.arenas.Types.NewElem(ast.TypeSlice, span, elem.Inner), true
		}
		return p.arenas.Types.NewElem(ast.TypeRef, span, inner), true

	case token.LParen:
		lparen := p.advance()
		var elems []ast.TypeID
		finSpan, ok := p.parseMany(func() bool {
			id, ok := p.ParseType()
			if ok {
				elems = append(elems, id)
			}
			return ok
		}, token.RParen, token.Comma)
		if !ok {
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewTuple(lparen.Span.Cover(finSpan), elems), true

	case token.LBracket:
		return p.parseBracketType()

	case token.KwFn:
		fnTok := p.advance()
		argType, ok := p.ParseType()
		if !ok {
			return ast.NoTypeID, false
		}
		var args []ast.TypeID
		if tuple, isTuple := p.arenas.Types.Tuple(argType); isTuple {
			args = tuple.Elems
		} else {
			args = []ast.TypeID{argType}
		}
		if _, ok := p.expect(token.Arrow); !ok {
			return ast.NoTypeID, false
		}
		returns, ok := p.ParseType()
		if !ok {
			return ast.NoTypeID, false
		}
		span := fnTok.Span.Cover(p.arenas.Types.Get(returns).Span)
		return p.arenas.Types.NewFn(span, args, returns), true

	case token.LBrace:
		return p.parseGeneratorType()

	case token.KwStruct:
		structTok := p.advance()
		if _, ok := p.expect(token.LBrace); !ok {
			return ast.NoTypeID, false
		}
		fields, finSpan, ok := p.parseTypeFields(token.RBrace)
		if !ok {
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewStruct(structTok.Span.Cover(finSpan), fields), true

	default:
		tok := p.advance()
		p.countError()
		diag.UnexpectedToken(p.reporter(), tok).Expected("type")
		return ast.NoTypeID, false
	}
}

// parseBracketType разбирает `[T]`, `[T..]` и `[T * n]`.
func (p *Parser) parseBracketType() (ast.TypeID, bool) {
	lbracket := p.advance()
	inner, ok := p.ParseType()
	if !ok {
		return ast.NoTypeID, false
	}

	var kind ast.TypeKind
	var size ast.ExprID
	switch p.lx.Peek().Kind {
	case token.DotDot:
		p.advance() // ..
		kind = ast.TypeDynArray
	case token.Star:
		p.advance() // *
		size, ok = p.ParseExpr()
		if !ok {
			return ast.NoTypeID, false
		}
		kind = ast.TypeSizedArray
	case token.RBracket:
		kind = ast.TypeInPlaceDynArray
	default:
		tok := p.advance()
		p.countError()
		diag.UnexpectedToken(p.reporter(), tok).
			ExpectedKinds(token.RBracket, token.DotDot, token.Star)
		return ast.NoTypeID, false
	}

	rbracket, ok := p.expect(token.RBracket)
	if !ok {
		return ast.NoTypeID, false
	}
	span := lbracket.Span.Cover(rbracket.Span)

	if kind == ast.TypeSizedArray {
		return p.arenas.Types.NewSizedArray(span, inner, size), true
	}
	return p.arenas.Types.NewElem(kind, span, inner), true
}

// parseGeneratorType разбирает `{Y}` и `{Y, R}`.
func (p *Parser) parseGeneratorType() (ast.TypeID, bool) {
	lbrace := p.advance()
	yields, ok := p.ParseType()
	if !ok {
		return ast.NoTypeID, false
	}

	returns := ast.NoTypeID
	switch p.lx.Peek().Kind {
	case token.Comma:
		p.advance()
		returns, ok = p.ParseType()
		if !ok {
			return ast.NoTypeID, false
		}
	case token.RBrace:
	default:
		tok := p.advance()
		p.countError()
		diag.UnexpectedToken(p.reporter(), tok).
			ExpectedKinds(token.Comma, token.RBrace)
		return ast.NoTypeID, false
	}

	rbrace, ok := p.expect(token.RBrace)
	if !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.NewGenerator(lbrace.Span.Cover(rbrace.Span), yields, returns), true
}

// parseTypeFields разбирает `name: type, ...` до финишера.
// Используется структурными типами и сахаром `struct Name {...}`.
func (p *Parser) parseTypeFields(finisher token.Kind) ([]ast.TypeField, source.Span, bool) {
	var fields []ast.TypeField
	finSpan, ok := p.parseMany(func() bool {
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
		fields = append(fields, ast.TypeField{Name: name, Type: typ})
		return true
	}, finisher, token.Comma)
	if !ok {
		return nil, source.Span{}, false
	}
	return fields, finSpan, true
}
