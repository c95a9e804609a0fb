package lexer

import (
	"strconv"

	"hel/internal/diag"
	"hel/internal/source"
	"hel/internal/token"
)

// Поддержка: 0, 123, 0b..., 0x..., 1.0, 1e-3, 1.0e+10.
// Точка поглощается только если за ней идёт цифра, иначе она остаётся
// парсеру (1.foo лексится как IntLit '.' Ident).
// Неверные формы — репорт в opts.Reporter, токен завершаем как Invalid.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	// ведущий 0 и база?
	if lx.cursor.Peek() == '0' {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'b' || b1 == 'B') {
			lx.cursor.Bump()
			lx.cursor.Bump()
			var value uint64
			for lx.cursor.Peek() == '0' || lx.cursor.Peek() == '1' {
				value = value*2 + uint64(lx.cursor.Bump()-'0')
			}
			sp := lx.cursor.SpanFrom(start)
			if sp.Len() == 2 {
				lx.errLex(diag.LexBadNumber, sp, "expected binary digit after '0b'")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.lexeme(sp)}
			}
			return token.Token{Kind: token.IntLit, Span: sp, Text: lx.lexeme(sp), Int: value}
		}
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
			lx.cursor.Bump()
			lx.cursor.Bump()
			var value uint64
			for isHex(lx.cursor.Peek()) {
				value = value*16 + uint64(hexDigit(lx.cursor.Bump()))
			}
			sp := lx.cursor.SpanFrom(start)
			if sp.Len() == 2 {
				lx.errLex(diag.LexBadNumber, sp, "expected hex digit after '0x'")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.lexeme(sp)}
			}
			return token.Token{Kind: token.IntLit, Span: sp, Text: lx.lexeme(sp), Int: value}
		}
	}

	// десятичная целая часть
	var value uint64
	for isDec(lx.cursor.Peek()) {
		value = value*10 + uint64(lx.cursor.Bump()-'0')
	}

	isFloat := false

	// дробная часть: '.' только перед цифрой
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		isFloat = true
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// экспонента
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		isFloat = true
		lx.cursor.Bump() // e/E
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.lexeme(sp)

	if !isFloat {
		return token.Token{Kind: token.IntLit, Span: sp, Text: text, Int: value}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		lx.errLex(diag.LexBadFloat, sp, "invalid float literal '"+text+"'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: token.FloatLit, Span: sp, Text: text, Float: f}
}

func hexDigit(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

// lexeme возвращает исходный текст по span.
func (lx *Lexer) lexeme(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
