package lexer

import (
	"strings"

	"hel/internal/diag"
	"hel/internal/source"
	"hel/internal/token"
)

// scanString разбирает "..." с escape-последовательностями \" \\ \n \t \r.
// Неизвестный escape — репорт на позиции обратного слэша, символ пропускается.
// EOF без закрывающей кавычки — репорт на позиции открывающей кавычки;
// токен всё равно выдаётся с уже декодированным префиксом.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var value strings.Builder
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		switch b {
		case '"':
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: value.String()}
		case '\\':
			if lx.cursor.EOF() {
				break
			}
			backslashPos := lx.cursor.Off - 1
			esc := lx.cursor.Bump()
			switch esc {
			case '"':
				value.WriteByte('"')
			case '\\':
				value.WriteByte('\\')
			case 'n':
				value.WriteByte('\n')
			case 't':
				value.WriteByte('\t')
			case 'r':
				value.WriteByte('\r')
			default:
				lx.errLex(diag.LexInvalidEscape,
					source.Single(lx.file.ID, backslashPos),
					"invalid escape character '"+string(esc)+"'")
			}
		default:
			value.WriteByte(b)
		}
	}

	// EOF без закрывающей кавычки
	lx.errLex(diag.LexUnterminatedString,
		source.Single(lx.file.ID, uint32(start)),
		"unterminated string literal")
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.StringLit, Span: sp, Text: value.String()}
}
