package parser

import (
	"slices"

	"hel/internal/diag"
	"hel/internal/source"
	"hel/internal/token"
)

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// currentErrorSpan — возвращает оптимальный span для ошибок expect.
// Если Peek().Kind == EOF, возвращает позицию сразу после lastSpan.
func (p *Parser) currentErrorSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF {
		return p.lastSpan.ZeroideToEnd()
	}
	return peek.Span
}

func (p *Parser) reporter() diag.Reporter {
	return p.opts.Reporter
}

func (p *Parser) countError() {
	p.opts.CurrentErrors++
}

// err репортует ошибку на текущем span
func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.currentErrorSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() {
		return
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
}

// expect — ожидаем конкретный токен. Если нет — репортим unexpected-token
// диагностику и возвращаем (invalid, false). Токен на входе съедается в
// обоих случаях: продвижение на один токен даёт восстановление на границах
// последовательностей.
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	tok := p.advance()
	p.countError()
	diag.UnexpectedToken(p.reporter(), tok).ExpectedKind(k)
	return token.Token{Kind: token.Invalid, Span: tok.Span}, false
}

// resyncUntil — consume tokens until Peek() matches any stop token or EOF.
// Stop token остаётся на входе (не съедаем).
func (p *Parser) resyncUntil(stop ...token.Kind) {
	for !p.at(token.EOF) {
		peek := p.lx.Peek().Kind
		if slices.Contains(stop, peek) {
			return
		}
		p.advance()
	}
}

// parseMany реализует разбор последовательности до finisher-токена с
// опциональным разделителем (token.Invalid == разделителя нет).
// element возвращает false при ошибке — тогда вся последовательность
// считается проваленной. Возвращает span финишера.
func (p *Parser) parseMany(element func() bool, finisher, separator token.Kind) (source.Span, bool) {
	for !p.at(finisher) {
		if p.at(token.EOF) {
			p.countError()
			diag.UnexpectedToken(p.reporter(), p.lx.Peek()).ExpectedKind(finisher)
			return source.Span{}, false
		}
		if !element() {
			return source.Span{}, false
		}
		next := p.lx.Peek()
		if separator != token.Invalid && next.Kind == separator {
			p.advance()
			continue
		}
		if separator == token.Invalid {
			// без разделителя элементы идут подряд до finisher
			continue
		}
		if next.Kind != finisher {
			tok := p.advance()
			p.countError()
			b := diag.UnexpectedToken(p.reporter(), tok)
			if separator != token.Invalid {
				b.ExpectedKinds(finisher, separator)
			} else {
				b.ExpectedKind(finisher)
			}
			return source.Span{}, false
		}
	}
	finTok := p.advance()
	return finTok.Span, true
}
