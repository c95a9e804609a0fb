package parser

import (
	"hel/internal/ast"
	"hel/internal/diag"
	"hel/internal/source"
	"hel/internal/token"
)

// ParseExpr - главная точка входа для парсинга выражений.
func (p *Parser) ParseExpr() (ast.ExprID, bool) {
	return p.parseExprPrec(0)
}

// parseExprPrec реализует Pratt parsing: префикс, затем постфиксный цикл,
// затем цикл бинарных операторов с порогом приоритета.
func (p *Parser) parseExprPrec(precLvl int) (ast.ExprID, bool) {
	expr, ok := p.parsePrefixExpr()
	if !ok {
		return ast.NoExprID, false
	}

	expr, ok = p.parsePostfixExpr(expr)
	if !ok {
		return ast.NoExprID, false
	}

	// Цикл бинарных операторов: продолжаем пока приоритет строго выше
	// текущего уровня (или равен для правоассоциативных).
	for {
		op, isBinary := binaryOpFromToken(p.lx.Peek().Kind)
		if !isBinary {
			break
		}
		opPrec := op.Precedence()
		if !(opPrec > precLvl || (opPrec == precLvl && op.RightAssoc())) {
			break
		}
		opTok := p.advance()

		right, ok := p.parseExprPrec(opPrec)
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after '"+opTok.Text+"'")
			return ast.NoExprID, false
		}

		leftSpan := p.arenas.Exprs.Get(expr).Span
		rightSpan := p.arenas.Exprs.Get(right).Span
		span := leftSpan.Cover(rightSpan)

		if op == ast.BinaryPipe {
			expr = p.rewritePipe(span, expr, right, rightSpan)
			continue
		}
		expr = p.arenas.Exprs.NewBinary(span, op, expr, right)
	}

	return expr, true
}

// rewritePipe переписывает `x |> f(y)` в `f(x, y)`.
// Правая часть обязана быть вызовом; иначе — диагностика, и узел остаётся
// бинарным, чтобы дерево выше было согласованным.
func (p *Parser) rewritePipe(span source.Span, left, right ast.ExprID, rightSpan source.Span) ast.ExprID {
	evoc, isEvoc := p.arenas.Exprs.Evoc(right)
	if !isEvoc {
		p.report(diag.SynPipeRightNotCall, diag.SevError, rightSpan,
			"right side of '|>' must be a function invocation")
		return p.arenas.Exprs.NewBinary(span, ast.BinaryPipe, left, right)
	}
	args := make([]ast.ExprID, 0, len(evoc.Args)+1)
	args = append(args, left)
	args = append(args, evoc.Args...)
	return p.arenas.Exprs.NewEvoc(span, evoc.Func, args)
}

// parsePrefixExpr разбирает первичное выражение, потребляя первый токен.
func (p *Parser) parsePrefixExpr() (ast.ExprID, bool) {
	tok := p.advance()
	switch tok.Kind {
	case token.KwTrue:
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitData{Kind: ast.LitTrue}), true
	case token.KwFalse:
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitData{Kind: ast.LitFalse}), true
	case token.KwNull:
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitData{Kind: ast.LitNull}), true
	case token.StringLit:
		str := p.arenas.StringsInterner.Intern(tok.Text)
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitData{Kind: ast.LitString, Str: str}), true
	case token.IntLit:
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitData{Kind: ast.LitInt, Int: tok.Int}), true
	case token.FloatLit:
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitData{Kind: ast.LitFloat, Float: tok.Float}), true

	case token.LParen:
		return p.parseParenExpr(tok)

	case token.KwLoop:
		body, ok := p.ParseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		span := tok.Span.Cover(p.arenas.Exprs.Get(body).Span)
		return p.arenas.Exprs.NewLoop(span, body), true

	case token.LBrace:
		return p.parseBlockExpr(tok)

	case token.KwIf:
		return p.parseIfExpr(tok)

	case token.KwFn:
		return p.parseClosureExpr(tok)

	case token.Ident:
		// uneat: путь разбирается целиком, включая `::`
		p.lx.Push(tok)
		path, ok := p.ParsePath()
		if !ok {
			return ast.NoExprID, false
		}
		if p.at(token.At) {
			return p.parseStructLiteral(path)
		}
		return p.arenas.Exprs.NewPath(path.Span(), path), true

	case token.At:
		return p.parseArrayLiteral(tok)

	default:
		if op, isUnary := unaryOpFromToken(tok.Kind); isUnary {
			operand, ok := p.parseExprPrec(op.Precedence())
			if !ok {
				return ast.NoExprID, false
			}
			span := tok.Span.Cover(p.arenas.Exprs.Get(operand).Span)
			return p.arenas.Exprs.NewUnary(span, op, operand), true
		}
		p.countError()
		diag.UnexpectedToken(p.reporter(), tok).Expected("expression")
		return ast.NoExprID, false
	}
}

// parseParenExpr: `(a)` разворачивается во внутреннее выражение с
// расширенным span, `(a, b)` становится кортежем, `()` — пустым кортежем.
func (p *Parser) parseParenExpr(lparen token.Token) (ast.ExprID, bool) {
	var elems []ast.ExprID
	finSpan, ok := p.parseMany(func() bool {
		id, ok := p.ParseExpr()
		if ok {
			elems = append(elems, id)
		}
		return ok
	}, token.RParen, token.Comma)
	if !ok {
		return ast.NoExprID, false
	}

	span := lparen.Span.Cover(finSpan)
	if len(elems) == 1 {
		// растягиваем span внутреннего выражения на скобки
		p.arenas.Exprs.Get(elems[0]).Span = span
		return elems[0], true
	}
	return p.arenas.Exprs.NewTuple(span, elems), true
}

// parseBlockExpr: `{ stmt* }`.
func (p *Parser) parseBlockExpr(lbrace token.Token) (ast.ExprID, bool) {
	var stmts []ast.StmtID
	finSpan, ok := p.parseMany(func() bool {
		id, ok := p.ParseStmt()
		if ok {
			stmts = append(stmts, id)
		}
		return ok
	}, token.RBrace, token.Invalid)
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewBlock(lbrace.Span.Cover(finSpan), stmts), true
}

// parseIfExpr: `if cond [then] stmt [else stmt]`.
func (p *Parser) parseIfExpr(ifTok token.Token) (ast.ExprID, bool) {
	cond, ok := p.ParseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if p.at(token.KwThen) {
		p.advance()
	}
	then, ok := p.ParseStmt()
	if !ok {
		return ast.NoExprID, false
	}
	els := ast.NoStmtID
	if p.at(token.KwElse) {
		p.advance()
		els, ok = p.ParseStmt()
		if !ok {
			return ast.NoExprID, false
		}
	}

	last := then
	if els != ast.NoStmtID {
		last = els
	}
	span := ifTok.Span.Cover(p.arenas.Stmts.Get(last).Span)
	return p.arenas.Exprs.NewIf(span, cond, then, els), true
}

// parseClosureExpr: `fn (a, b) = body`, `fn x = body` или `fn = body`.
func (p *Parser) parseClosureExpr(fnTok token.Token) (ast.ExprID, bool) {
	var params []ast.Ident
	switch p.lx.Peek().Kind {
	case token.LParen:
		p.advance()
		_, ok := p.parseMany(func() bool {
			ident, ok := p.parseIdent()
			if ok {
				params = append(params, ident)
			}
			return ok
		}, token.RParen, token.Comma)
		if !ok {
			return ast.NoExprID, false
		}
	case token.Ident:
		tok := p.advance()
		params = append(params, ast.Ident{
			Name: p.arenas.StringsInterner.Intern(tok.Text),
			Span: tok.Span,
		})
	}

	if _, ok := p.expect(token.Eq); !ok {
		return ast.NoExprID, false
	}
	body, ok := p.ParseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := fnTok.Span.Cover(p.arenas.Exprs.Get(body).Span)
	return p.arenas.Exprs.NewClosure(span, params, body), true
}

// parseStructLiteral: `Path @{ field: expr, ... }`. Токен '@' на входе.
func (p *Parser) parseStructLiteral(path ast.Path) (ast.ExprID, bool) {
	p.advance() // @
	if _, ok := p.expect(token.LBrace); !ok {
		return ast.NoExprID, false
	}

	var fields []ast.FieldInit
	finSpan, ok := p.parseMany(func() bool {
		name, ok := p.parseIdent()
		if !ok {
			return false
		}
		if _, ok := p.expect(token.Colon); !ok {
			return false
		}
		value, ok := p.ParseExpr()
		if !ok {
			return false
		}
		fields = append(fields, ast.FieldInit{Name: name, Value: value})
		return true
	}, token.RBrace, token.Comma)
	if !ok {
		return ast.NoExprID, false
	}

	span := path.Span().Cover(finSpan)
	return p.arenas.Exprs.NewStruct(span, path, fields), true
}

// parseArrayLiteral: `@[a, b, c]` — динамический массив; единственный
// элемент вида `v * n` с целочисленным n — повторитель фиксированного
// размера. Токен '@' уже съеден.
func (p *Parser) parseArrayLiteral(atTok token.Token) (ast.ExprID, bool) {
	if _, ok := p.expect(token.LBracket); !ok {
		return ast.NoExprID, false
	}

	sawComma := false
	var elems []ast.ExprID
	finSpan, ok := p.parseMany(func() bool {
		id, ok := p.ParseExpr()
		if ok {
			elems = append(elems, id)
			if p.at(token.Comma) {
				sawComma = true
			}
		}
		return ok
	}, token.RBracket, token.Comma)
	if !ok {
		return ast.NoExprID, false
	}
	span := atTok.Span.Cover(finSpan)

	// @[v * n]: произведение с целочисленным литералом справа и без
	// запятых — это повторитель, а не одноэлементный массив
	if !sawComma && len(elems) == 1 {
		if bin, isBin := p.arenas.Exprs.Binary(elems[0]); isBin && bin.Op == ast.BinaryMul {
			if lit, isLit := p.arenas.Exprs.Literal(bin.Right); isLit && lit.Kind == ast.LitInt {
				return p.arenas.Exprs.NewSizedArray(span, []ast.ExprID{bin.Left}, true, lit.Int), true
			}
		}
	}

	return p.arenas.Exprs.NewDynArray(span, elems), true
}

// parsePostfixExpr обрабатывает постфиксы: `.field`, `[index]`, `(args)`.
// Все три связывают так же туго, как и первичное выражение.
func (p *Parser) parsePostfixExpr(expr ast.ExprID) (ast.ExprID, bool) {
	for {
		switch p.lx.Peek().Kind {
		case token.Dot:
			p.advance()
			field, ok := p.parseIdent()
			if !ok {
				return ast.NoExprID, false
			}
			span := p.arenas.Exprs.Get(expr).Span.Cover(field.Span)
			expr = p.arenas.Exprs.NewField(span, expr, field)

		case token.LBracket:
			p.advance()
			index, ok := p.ParseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			rbracket, ok := p.expect(token.RBracket)
			if !ok {
				return ast.NoExprID, false
			}
			span := p.arenas.Exprs.Get(expr).Span.Cover(rbracket.Span)
			expr = p.arenas.Exprs.NewIndex(span, expr, index)

		case token.LParen:
			p.advance()
			var args []ast.ExprID
			finSpan, ok := p.parseMany(func() bool {
				id, ok := p.ParseExpr()
				if ok {
					args = append(args, id)
				}
				return ok
			}, token.RParen, token.Comma)
			if !ok {
				return ast.NoExprID, false
			}
			span := p.arenas.Exprs.Get(expr).Span.Cover(finSpan)
			expr = p.arenas.Exprs.NewEvoc(span, expr, args)

		default:
			return expr, true
		}
	}
}
