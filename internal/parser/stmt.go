package parser

import (
	"hel/internal/ast"
	"hel/internal/token"
)

// ParseStmt — диспетчеризация statement по первому токену:
// let, return, for, иначе выражение с опциональным присваиванием.
func (p *Parser) ParseStmt() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwLet:
		return p.parseLetStmt()
	case token.KwReturn:
		retTok := p.advance()
		value, ok := p.ParseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		span := retTok.Span.Cover(p.arenas.Exprs.Get(value).Span)
		return p.arenas.Stmts.NewValue(ast.StmtReturn, span, value), true
	case token.KwFor:
		return p.parseForStmt()
	default:
		return p.parseExprOrAssignStmt()
	}
}

// parseLetStmt: `let ident [: type] = expr`.
func (p *Parser) parseLetStmt() (ast.StmtID, bool) {
	letTok := p.advance()

	ident, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}

	typ := ast.NoTypeID
	if p.at(token.Colon) {
		p.advance()
		typ, ok = p.ParseType()
		if !ok {
			return ast.NoStmtID, false
		}
	}

	if _, ok := p.expect(token.Eq); !ok {
		return ast.NoStmtID, false
	}

	value, ok := p.ParseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	span := letTok.Span.Cover(p.arenas.Exprs.Get(value).Span)
	return p.arenas.Stmts.NewLet(span, ident, typ, value), true
}

// parseForStmt: `for i in expr stmt`.
func (p *Parser) parseForStmt() (ast.StmtID, bool) {
	forTok := p.advance()

	ident, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}

	if _, ok := p.expect(token.KwIn); !ok {
		return ast.NoStmtID, false
	}

	iter, ok := p.ParseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	body, ok := p.ParseStmt()
	if !ok {
		return ast.NoStmtID, false
	}

	span := forTok.Span.Cover(p.arenas.Stmts.Get(body).Span)
	return p.arenas.Stmts.NewFor(span, ident, iter, body), true
}

// parseExprOrAssignStmt: выражение; если следом идёт оператор присваивания —
// это statement-присваивание (на уровне выражений присваиваний нет).
func (p *Parser) parseExprOrAssignStmt() (ast.StmtID, bool) {
	expr, ok := p.ParseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	if op, isAssign := assignOpFromToken(p.lx.Peek().Kind); isAssign {
		p.advance()
		value, ok := p.ParseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		span := p.arenas.Exprs.Get(expr).Span.Cover(p.arenas.Exprs.Get(value).Span)
		return p.arenas.Stmts.NewAssign(span, expr, op, value), true
	}

	span := p.arenas.Exprs.Get(expr).Span
	return p.arenas.Stmts.NewExpr(span, expr), true
}
