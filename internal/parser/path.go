package parser

import (
	"hel/internal/ast"
	"hel/internal/diag"
	"hel/internal/token"
)

// ParsePath разбирает `a::b::c`. Жадный разбор с проверкой смежности:
// '::' продолжает путь только если ни слева, ни справа от него нет
// whitespace. Лексер смежность лишь сообщает — решает парсер.
func (p *Parser) ParsePath() (ast.Path, bool) {
	var segments []ast.Ident

	for {
		identTok := p.advance()
		if identTok.Kind != token.Ident {
			p.countError()
			diag.UnexpectedToken(p.reporter(), identTok).Expected("identifier")
			return ast.Path{}, false
		}
		segments = append(segments, ast.Ident{
			Name: p.arenas.StringsInterner.Intern(identTok.Text),
			Span: identTok.Span,
		})

		// `a :: b` — это конец пути `a`, а не продолжение
		if identTok.WSAfter {
			break
		}

		colonColon := p.lx.Peek()
		if colonColon.Kind == token.ColonColon && !colonColon.WSAfter {
			p.advance() // ::
		} else {
			break
		}
	}

	return ast.Path{Segments: segments}, true
}
