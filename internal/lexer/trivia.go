package lexer

import (
	"hel/internal/diag"
	"hel/internal/source"
)

// skipTrivia поглощает whitespace и комментарии перед значимым токеном.
// - ' ', '\t', '\r', '\n' съедаются молча
// - #...\n — строчный комментарий
// - #- ... -# — блочный комментарий (поддерживает вложенность;
//   если не закрыт — репорт на позиции открытия и обрезаем на EOF)
// Возвращает true, если хоть что-то было пропущено: это значение
// становится WSBefore следующего токена.
func (lx *Lexer) skipTrivia() bool {
	saw := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if isWhitespaceByte(b) {
			lx.cursor.Bump()
			saw = true
			continue
		}

		if b == '#' {
			lx.skipComment()
			saw = true
			continue
		}

		break
	}
	return saw
}

// skipComment: '#' уже на входе. '#-' открывает блочный комментарий,
// всё остальное — строчный до конца строки.
func (lx *Lexer) skipComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'

	if lx.cursor.Peek() != '-' {
		// строчный: до '\n' (сам перевод строки оставляем whitespace-циклу)
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return
	}

	lx.cursor.Bump() // '-'
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		if b0, b1, ok := lx.cursor.Peek2(); ok {
			if b0 == '#' && b1 == '-' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth++
				continue
			}
			if b0 == '-' && b1 == '#' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth--
				continue
			}
		}
		lx.cursor.Bump()
	}
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedBlockComment,
			source.Single(lx.file.ID, uint32(start)),
			"unterminated multiline comment")
	}
}
